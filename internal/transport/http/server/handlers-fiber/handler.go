// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/username/vacation-hub/internal/absence"
	"github.com/username/vacation-hub/internal/calendar"
	"github.com/username/vacation-hub/internal/entities"
	"github.com/username/vacation-hub/internal/vacation"
)

// Service is the application layer the handlers delegate to.
type Service interface {
	Team(ctx context.Context) ([]entities.Member, error)
	Vacations(ctx context.Context) ([]entities.Vacation, error)
	Snapshot(ctx context.Context) (entities.Snapshot, error)
	AddMember(ctx context.Context, name, colorID string) (*entities.Member, error)
	DeleteMember(ctx context.Context, id, password string) (*entities.Member, error)
	AddVacation(ctx context.Context, in vacation.VacationInput) (*entities.Vacation, error)
	UpdateVacationDates(ctx context.Context, id, start, end string) (*entities.Vacation, error)
	DeleteVacation(ctx context.Context, id, password string) error

	Stats(ctx context.Context) ([]absence.MemberStats, error)
	Absence(ctx context.Context, p vacation.Period) (absence.PeriodAbsence, error)
	Collisions(ctx context.Context) ([]absence.Collision, error)
	Density(ctx context.Context) (absence.Density, error)
	Dashboard(ctx context.Context, p vacation.Period) (*vacation.Dashboard, error)

	Holidays(years []int) []calendar.Holiday
	SchoolHolidays(year int) []calendar.SchoolHoliday
	Month(year int, month time.Month) calendar.MonthInfo
	CurrentYear() int
	Quota() int
}

// Handler serves the REST API on top of Service.
type Handler struct {
	log *zap.Logger
	svc Service
	now func() time.Time
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.Logger, svc Service) *Handler {
	return &Handler{
		log: log,
		svc: svc,
		now: time.Now,
	}
}

// Register mounts all API routes on r.
func (h *Handler) Register(r fiber.Router) {
	api := r.Group("/api")

	api.Get("/team", h.GetTeam)
	api.Post("/team", h.PostTeam)
	api.Delete("/team/:id", h.DeleteTeamMember)

	api.Get("/vacations", h.GetVacations)
	api.Post("/vacations", h.PostVacation)
	api.Put("/vacations/:id", h.PutVacation)
	api.Delete("/vacations/:id", h.DeleteVacation)

	api.Get("/stats", h.GetStats)
	api.Get("/absence", h.GetAbsence)
	api.Get("/collisions", h.GetCollisions)
	api.Get("/density", h.GetDensity)
	api.Get("/dashboard", h.GetDashboard)

	api.Get("/holidays", h.GetHolidays)
	api.Get("/school-holidays", h.GetSchoolHolidays)
	api.Get("/calendar/:year/:month", h.GetCalendarMonth)

	api.Get("/export/vacations.ics", h.ExportICS)
	api.Get("/export/stats.csv", h.ExportCSV)
}
