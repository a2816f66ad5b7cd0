package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/username/vacation-hub/internal/entities"
)

type addMemberRequest struct {
	Name    string `json:"name"`
	ColorID string `json:"colorId"`
	Color   string `json:"color"`
}

type passwordRequest struct {
	Password string `json:"password"`
}

// GetTeam returns the roster, with the color palette when colors=true.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	team, err := h.svc.Team(c.UserContext())
	if err != nil {
		h.log.Error("failed to list team", zap.Error(err))
		return writeError(c, err)
	}

	if c.QueryBool("colors") {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"team":   toMemberDTOs(team),
			"colors": entities.Palette,
		})
	}
	return c.Status(http.StatusOK).JSON(toMemberDTOs(team))
}

// PostTeam adds a team member.
func (h *Handler) PostTeam(c *fiber.Ctx) error {
	var body addMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	colorID := body.ColorID
	if colorID == "" {
		colorID = body.Color
	}

	member, err := h.svc.AddMember(c.UserContext(), body.Name, colorID)
	if err != nil {
		h.log.Info("add member rejected", zap.Error(err))
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"member":  toMemberDTO(*member),
	})
}

// DeleteTeamMember removes a member and its vacations. Requires the admin password.
func (h *Handler) DeleteTeamMember(c *fiber.Ctx) error {
	var body passwordRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return invalidBody(c)
		}
	}

	member, err := h.svc.DeleteMember(c.UserContext(), c.Params("id"), body.Password)
	if err != nil {
		h.log.Info("delete member rejected", zap.Error(err))
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"member":  toMemberDTO(*member),
	})
}
