package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/username/vacation-hub/internal/vacation"
)

type vacationRequest struct {
	Name    string `json:"name"`
	Start   string `json:"start"`
	End     string `json:"end"`
	StandIn string `json:"vertreter"`
}

type moveVacationRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// GetVacations returns all stored vacations.
func (h *Handler) GetVacations(c *fiber.Ctx) error {
	vacations, err := h.svc.Vacations(c.UserContext())
	if err != nil {
		h.log.Error("failed to list vacations", zap.Error(err))
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toVacationDTOs(vacations))
}

// PostVacation books a vacation.
func (h *Handler) PostVacation(c *fiber.Ctx) error {
	var body vacationRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	v, err := h.svc.AddVacation(c.UserContext(), vacation.VacationInput{
		Name:    body.Name,
		Start:   body.Start,
		End:     body.End,
		StandIn: body.StandIn,
	})
	if err != nil {
		h.log.Info("add vacation rejected", zap.Error(err))
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"vacation": toVacationDTO(*v),
	})
}

// PutVacation moves a vacation to new dates.
func (h *Handler) PutVacation(c *fiber.Ctx) error {
	var body moveVacationRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	v, err := h.svc.UpdateVacationDates(c.UserContext(), c.Params("id"), body.Start, body.End)
	if err != nil {
		h.log.Info("move vacation rejected", zap.Error(err))
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success":  true,
		"vacation": toVacationDTO(*v),
	})
}

// DeleteVacation removes a vacation. Requires the admin password.
func (h *Handler) DeleteVacation(c *fiber.Ctx) error {
	var body passwordRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return invalidBody(c)
		}
	}

	if err := h.svc.DeleteVacation(c.UserContext(), c.Params("id"), body.Password); err != nil {
		h.log.Info("delete vacation rejected", zap.Error(err))
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"success": true})
}
