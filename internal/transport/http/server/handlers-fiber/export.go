package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/username/vacation-hub/internal/absence"
	"github.com/username/vacation-hub/internal/ics"
	"github.com/username/vacation-hub/internal/report"
)

// ExportICS serves roster vacations as an iCalendar file.
func (h *Handler) ExportICS(c *fiber.Ctx) error {
	snap, err := h.svc.Snapshot(c.UserContext())
	if err != nil {
		h.log.Error("failed to read snapshot", zap.Error(err))
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="vacations.ics"`)
	return c.SendString(ics.Build(snap.Team, snap.Vacations, h.now()))
}

// ExportCSV serves the quota report as CSV.
func (h *Handler) ExportCSV(c *fiber.Ctx) error {
	snap, err := h.svc.Snapshot(c.UserContext())
	if err != nil {
		h.log.Error("failed to read snapshot", zap.Error(err))
		return writeError(c, err)
	}

	quota := h.svc.Quota()
	stats := absence.Aggregate(snap.Team, snap.Vacations, quota)

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stats.csv"`)
	if err := report.WriteCSV(c, stats, quota); err != nil {
		h.log.Error("failed to write csv", zap.Error(err))
		return writeError(c, err)
	}
	return nil
}
