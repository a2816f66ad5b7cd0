package vacation

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/username/vacation-hub/internal/absence"
	"github.com/username/vacation-hub/internal/calendar"
	"github.com/username/vacation-hub/internal/entities"
	"github.com/username/vacation-hub/pkg/dateutil"
)

// Period is an optional reporting window; nil bounds default to the current month
type Period struct {
	Start *time.Time
	End   *time.Time
}

// Dashboard bundles every statistic computed from one snapshot
type Dashboard struct {
	GeneratedAt time.Time
	Quota       int
	Team        []entities.Member
	Stats       []absence.MemberStats
	Absence     absence.PeriodAbsence
	Collisions  []absence.Collision
	Density     absence.Density
}

// ResolvePeriod fills missing bounds with the first and last day of the current month
func (m *Manager) ResolvePeriod(p Period) (time.Time, time.Time, error) {
	today := dateutil.Civil(m.now())

	start := dateutil.StartOfMonth(today)
	if p.Start != nil {
		start = dateutil.Civil(*p.Start)
	}

	end := dateutil.EndOfMonth(today)
	if p.End != nil {
		end = dateutil.Civil(*p.End)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: period end is before start", entities.ErrInvalidArgument)
	}

	return start, end, nil
}

// Stats returns quota usage per roster member
func (m *Manager) Stats(ctx context.Context) ([]absence.MemberStats, error) {
	snap, err := m.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return absence.Aggregate(snap.Team, snap.Vacations, m.quota), nil
}

// Absence returns the present/absent split of the team for the period
func (m *Manager) Absence(ctx context.Context, p Period) (absence.PeriodAbsence, error) {
	start, end, err := m.ResolvePeriod(p)
	if err != nil {
		return absence.PeriodAbsence{}, err
	}

	snap, err := m.snapshot(ctx)
	if err != nil {
		return absence.PeriodAbsence{}, err
	}
	return absence.ForPeriod(snap.Team, snap.Vacations, start, end), nil
}

// Collisions returns overlapping vacations of roster members
func (m *Manager) Collisions(ctx context.Context) ([]absence.Collision, error) {
	snap, err := m.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return absence.FindCollisions(absence.FilterToRoster(snap.Team, snap.Vacations)), nil
}

// Density returns the monthly booking density of roster members
func (m *Manager) Density(ctx context.Context) (absence.Density, error) {
	snap, err := m.snapshot(ctx)
	if err != nil {
		return absence.Density{}, err
	}
	return absence.MonthlyBookingDensity(absence.FilterToRoster(snap.Team, snap.Vacations)), nil
}

// Dashboard computes all statistics over a single snapshot
func (m *Manager) Dashboard(ctx context.Context, p Period) (*Dashboard, error) {
	start, end, err := m.ResolvePeriod(p)
	if err != nil {
		return nil, err
	}

	snap, err := m.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	rosterVacations := absence.FilterToRoster(snap.Team, snap.Vacations)

	d := &Dashboard{
		GeneratedAt: m.now().UTC(),
		Quota:       m.quota,
		Team:        snap.Team,
		Stats:       absence.Aggregate(snap.Team, snap.Vacations, m.quota),
		Absence:     absence.ForPeriod(snap.Team, snap.Vacations, start, end),
		Collisions:  absence.FindCollisions(rosterVacations),
		Density:     absence.MonthlyBookingDensity(rosterVacations),
	}

	m.logger.Debug("Dashboard computed",
		zap.Int("members", len(snap.Team)),
		zap.Int("vacations", len(snap.Vacations)),
		zap.Int("collisions", len(d.Collisions)))

	return d, nil
}

// Holidays returns the public holidays of the given years
func (m *Manager) Holidays(years []int) []calendar.Holiday {
	return calendar.HolidaysForYears(years)
}

// SchoolHolidays returns the school holidays of the year
func (m *Manager) SchoolHolidays(year int) []calendar.SchoolHoliday {
	return calendar.SchoolHolidayIntervals(year)
}

// Month returns the day-by-day calendar of a month
func (m *Manager) Month(year int, month time.Month) calendar.MonthInfo {
	return m.calendar.MonthInfo(year, month)
}

// CurrentYear returns the year of the manager's clock
func (m *Manager) CurrentYear() int {
	return m.now().Year()
}

// Snapshot returns roster and vacations read together
func (m *Manager) Snapshot(ctx context.Context) (entities.Snapshot, error) {
	return m.snapshot(ctx)
}

func (m *Manager) snapshot(ctx context.Context) (entities.Snapshot, error) {
	snap, err := m.store.Snapshot(ctx)
	if err != nil {
		return entities.Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return snap, nil
}
