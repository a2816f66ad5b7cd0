package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetStats returns quota usage per member.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	stats, err := h.svc.Stats(c.UserContext())
	if err != nil {
		h.log.Error("failed to get stats", zap.Error(err))
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"quota":   h.svc.Quota(),
		"members": toStatsDTOs(stats),
	})
}

// GetAbsence returns the team absence ratio of a period.
func (h *Handler) GetAbsence(c *fiber.Ctx) error {
	period, err := periodFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	res, err := h.svc.Absence(c.UserContext(), period)
	if err != nil {
		h.log.Info("failed to get absence", zap.Error(err))
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toAbsenceDTO(res))
}

// GetCollisions returns overlapping vacations.
func (h *Handler) GetCollisions(c *fiber.Ctx) error {
	collisions, err := h.svc.Collisions(c.UserContext())
	if err != nil {
		h.log.Error("failed to get collisions", zap.Error(err))
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toCollisionDTOs(collisions))
}

// GetDensity returns bookings per calendar month.
func (h *Handler) GetDensity(c *fiber.Ctx) error {
	density, err := h.svc.Density(c.UserContext())
	if err != nil {
		h.log.Error("failed to get density", zap.Error(err))
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDensityDTO(density))
}

// GetDashboard returns every statistic computed from one snapshot.
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	period, err := periodFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	d, err := h.svc.Dashboard(c.UserContext(), period)
	if err != nil {
		h.log.Info("failed to get dashboard", zap.Error(err))
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dashboardDTO{
		GeneratedAt: d.GeneratedAt.Format(timestampLayout),
		Quota:       d.Quota,
		Team:        toMemberDTOs(d.Team),
		Stats:       toStatsDTOs(d.Stats),
		Absence:     toAbsenceDTO(d.Absence),
		Collisions:  toCollisionDTOs(d.Collisions),
		Density:     toDensityDTO(d.Density),
	})
}
