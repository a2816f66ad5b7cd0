// Package vacation validates roster and vacation changes and serves
// absence statistics computed over consistent store snapshots.
package vacation

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/username/vacation-hub/internal/calendar"
	"github.com/username/vacation-hub/internal/config"
	"github.com/username/vacation-hub/internal/entities"
	"github.com/username/vacation-hub/internal/repository"
	"github.com/username/vacation-hub/pkg/dateutil"
	"github.com/username/vacation-hub/pkg/random"
)

// Store is the persistence the manager needs
type Store interface {
	repository.MemberInterface
	repository.VacationInterface
	repository.SnapshotInterface
}

// Manager manages roster, vacations and absence statistics
type Manager struct {
	store         Store
	calendar      calendar.Calendar
	quota         int
	adminPassword string
	now           func() time.Time
	logger        *zap.Logger
}

// NewManager creates a new vacation manager
func NewManager(cfg *config.Config, store Store, cal calendar.Calendar, logger *zap.Logger) *Manager {
	return &Manager{
		store:         store,
		calendar:      cal,
		quota:         cfg.Absence.AnnualQuota,
		adminPassword: cfg.Auth.AdminPassword,
		now:           time.Now,
		logger:        logger.Named("vacation"),
	}
}

// SetClock replaces the time source used for timestamps and default periods
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

// Quota returns the annual quota in working days
func (m *Manager) Quota() int {
	return m.quota
}

// Calendar returns the regional calendar
func (m *Manager) Calendar() calendar.Calendar {
	return m.calendar
}

// VacationInput is an unvalidated vacation request
type VacationInput struct {
	Name    string
	Start   string
	End     string
	StandIn string
}

// Team returns the roster
func (m *Manager) Team(ctx context.Context) ([]entities.Member, error) {
	return m.store.ListMembers(ctx)
}

// Vacations returns all stored vacations
func (m *Manager) Vacations(ctx context.Context) ([]entities.Vacation, error) {
	return m.store.ListVacations(ctx)
}

// AddMember adds a team member. An empty colorID picks a random color
// not yet used by the roster.
func (m *Manager) AddMember(ctx context.Context, name, colorID string) (*entities.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}

	team, err := m.store.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	for _, member := range team {
		if entities.SameName(member.Name, name) {
			return nil, entities.ErrMemberExists
		}
	}

	colorID = strings.TrimSpace(colorID)
	if colorID == "" {
		colorID = pickFreeColor(team).ID
	}

	member := entities.Member{
		ID:        uuid.NewString(),
		Name:      name,
		ColorID:   colorID,
		ColorHex:  entities.ResolveColorHex(colorID),
		CreatedAt: m.now().UTC(),
	}

	created, err := m.store.CreateMember(ctx, member)
	if err != nil {
		return nil, err
	}

	m.logger.Info("Team member added",
		zap.String("name", created.Name),
		zap.String("color", created.ColorHex))

	return created, nil
}

// DeleteMember removes a member together with its vacations
func (m *Manager) DeleteMember(ctx context.Context, id, password string) (*entities.Member, error) {
	if err := m.checkAdmin(password); err != nil {
		return nil, err
	}

	deleted, err := m.store.DeleteMember(ctx, id)
	if err != nil {
		return nil, err
	}

	m.logger.Info("Team member deleted", zap.String("name", deleted.Name))
	return deleted, nil
}

// AddVacation validates and stores a vacation.
// Owner and stand-in must be on the roster; overlaps are allowed.
func (m *Manager) AddVacation(ctx context.Context, in VacationInput) (*entities.Vacation, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Start) == "" || strings.TrimSpace(in.End) == "" {
		return nil, fmt.Errorf("%w: name, start and end are required", entities.ErrInvalidArgument)
	}

	start, end, err := parseRange(in.Start, in.End)
	if err != nil {
		return nil, err
	}

	team, err := m.store.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	owner, ok := rosterName(team, in.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not on the team", entities.ErrInvalidArgument, strings.TrimSpace(in.Name))
	}

	standIn := ""
	if strings.TrimSpace(in.StandIn) != "" {
		standIn, ok = rosterName(team, in.StandIn)
		if !ok {
			return nil, fmt.Errorf("%w: stand-in %q is not on the team", entities.ErrInvalidArgument, strings.TrimSpace(in.StandIn))
		}
		if standIn == owner {
			return nil, fmt.Errorf("%w: stand-in must be someone else", entities.ErrInvalidArgument)
		}
	}

	now := m.now().UTC()
	v := entities.Vacation{
		ID:        uuid.NewString(),
		Name:      owner,
		Start:     start,
		End:       end,
		StandIn:   standIn,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := m.store.CreateVacation(ctx, v)
	if err != nil {
		return nil, err
	}

	m.logger.Info("Vacation booked",
		zap.String("name", created.Name),
		zap.String("start", dateutil.FormatISO(created.Start)),
		zap.String("end", dateutil.FormatISO(created.End)),
		zap.Int("working_days", m.calendar.CountWorkingDays(created.Start, created.End)))

	return created, nil
}

// UpdateVacationDates moves a vacation to new dates
func (m *Manager) UpdateVacationDates(ctx context.Context, id, start, end string) (*entities.Vacation, error) {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return nil, fmt.Errorf("%w: id, start and end are required", entities.ErrInvalidArgument)
	}

	from, to, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}

	updated, err := m.store.UpdateVacationDates(ctx, id, from, to)
	if err != nil {
		return nil, err
	}

	m.logger.Info("Vacation moved",
		zap.String("id", id),
		zap.String("start", dateutil.FormatISO(from)),
		zap.String("end", dateutil.FormatISO(to)))

	return updated, nil
}

// DeleteVacation removes a vacation
func (m *Manager) DeleteVacation(ctx context.Context, id, password string) error {
	if err := m.checkAdmin(password); err != nil {
		return err
	}

	if err := m.store.DeleteVacation(ctx, id); err != nil {
		return err
	}

	m.logger.Info("Vacation deleted", zap.String("id", id))
	return nil
}

func (m *Manager) checkAdmin(password string) error {
	if m.adminPassword == "" {
		return fmt.Errorf("%w: admin password not configured", entities.ErrForbidden)
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(m.adminPassword)) != 1 {
		return fmt.Errorf("%w: wrong admin password", entities.ErrForbidden)
	}
	return nil
}

func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := dateutil.ParseISODate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start: %v", entities.ErrInvalidArgument, err)
	}
	end, err := dateutil.ParseISODate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end: %v", entities.ErrInvalidArgument, err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end is before start", entities.ErrInvalidArgument)
	}
	return start, end, nil
}

// rosterName resolves name against the roster, returning the roster spelling
func rosterName(team []entities.Member, name string) (string, bool) {
	name = strings.TrimSpace(name)
	if member, ok := entities.FindMemberByName(team, name); ok {
		return member.Name, true
	}
	for _, member := range team {
		if entities.SameName(member.Name, name) {
			return member.Name, true
		}
	}
	return "", false
}

func pickFreeColor(team []entities.Member) entities.Color {
	used := make(map[string]bool, len(team))
	for _, member := range team {
		used[member.ColorID] = true
	}

	free := make([]entities.Color, 0, len(entities.Palette))
	for _, c := range entities.Palette {
		if !used[c.ID] {
			free = append(free, c)
		}
	}

	if c, ok := random.Pick(free); ok {
		return c
	}
	c, _ := random.Pick(entities.Palette)
	return c
}
