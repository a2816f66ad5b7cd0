package handlers_fiber

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/username/vacation-hub/internal/entities"
)

// GetHolidays returns public holidays for ?years=2026,2027 (default: current year).
func (h *Handler) GetHolidays(c *fiber.Ctx) error {
	years, err := yearsFromQuery(c.Query("years"), h.svc.CurrentYear())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toHolidayDTOs(h.svc.Holidays(years)))
}

// GetSchoolHolidays returns the school holidays of ?year= (default: current year).
func (h *Handler) GetSchoolHolidays(c *fiber.Ctx) error {
	years, err := yearsFromQuery(c.Query("year"), h.svc.CurrentYear())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toSchoolHolidayDTOs(h.svc.SchoolHolidays(years[0])))
}

// GetCalendarMonth returns the day-by-day calendar of a month.
func (h *Handler) GetCalendarMonth(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil || year < 1 || year > 9999 {
		return writeError(c, fmt.Errorf("%w: invalid year", entities.ErrInvalidArgument))
	}
	month, err := c.ParamsInt("month")
	if err != nil || month < 1 || month > 12 {
		return writeError(c, fmt.Errorf("%w: invalid month", entities.ErrInvalidArgument))
	}

	return c.Status(http.StatusOK).JSON(toMonthDTO(h.svc.Month(year, time.Month(month))))
}
