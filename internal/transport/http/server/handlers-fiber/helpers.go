package handlers_fiber

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/username/vacation-hub/internal/entities"
	"github.com/username/vacation-hub/internal/vacation"
	"github.com/username/vacation-hub/pkg/dateutil"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		msg = err.Error()
	case errors.Is(err, entities.ErrMemberNotFound):
		status = http.StatusNotFound
		msg = "team member not found"
	case errors.Is(err, entities.ErrVacationNotFound):
		status = http.StatusNotFound
		msg = "vacation not found"
	case errors.Is(err, entities.ErrMemberExists):
		status = http.StatusConflict
		msg = "team member already exists"
	case errors.Is(err, entities.ErrVacationExists):
		status = http.StatusConflict
		msg = "vacation already exists"
	}

	return c.Status(status).JSON(errorResponse(msg))
}

func errorResponse(msg string) fiber.Map {
	return fiber.Map{"success": false, "message": msg}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse("invalid body"))
}

// periodFromQuery reads optional start and end query parameters.
func periodFromQuery(c *fiber.Ctx) (vacation.Period, error) {
	var p vacation.Period

	bounds := []struct {
		key string
		dst **time.Time
	}{{"start", &p.Start}, {"end", &p.End}}

	for _, b := range bounds {
		raw := strings.TrimSpace(c.Query(b.key))
		if raw == "" {
			continue
		}
		date, err := dateutil.ParseISODate(raw)
		if err != nil {
			return p, fmt.Errorf("%w: %s: %v", entities.ErrInvalidArgument, b.key, err)
		}
		*b.dst = &date
	}

	return p, nil
}

// yearsFromQuery parses a comma separated year list, defaulting to fallback.
func yearsFromQuery(raw string, fallback int) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []int{fallback}, nil
	}

	var years []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		year, err := strconv.Atoi(part)
		if err != nil || year < 1 || year > 9999 {
			return nil, fmt.Errorf("%w: invalid year %q", entities.ErrInvalidArgument, part)
		}
		years = append(years, year)
	}

	if len(years) == 0 {
		return []int{fallback}, nil
	}
	return years, nil
}
