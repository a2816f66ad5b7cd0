package absence

import (
	"time"

	"github.com/username/vacation-hub/internal/calendar"
	"github.com/username/vacation-hub/internal/entities"
)

// DefaultAnnualQuota is the number of vacation working days per member and year
const DefaultAnnualQuota = 30

// VacationDetail is one booking of a member with its quota cost
type VacationDetail struct {
	ID          string
	Start       time.Time
	End         time.Time
	WorkingDays int
	StandIn     string
}

// MemberStats summarizes the bookings of one roster member
type MemberStats struct {
	Name       string
	ColorHex   string
	DaysBooked int
	Remaining  int
	Vacations  []VacationDetail
}

// Aggregate returns one entry per roster member, in roster order.
// Vacations are matched to members by exact name; vacations of people not on
// the roster are skipped. Remaining never drops below zero while DaysBooked
// may exceed the quota.
func Aggregate(team []entities.Member, vacations []entities.Vacation, quota int) []MemberStats {
	stats := make([]MemberStats, 0, len(team))

	for _, member := range team {
		s := MemberStats{
			Name:      member.Name,
			ColorHex:  member.ColorHex,
			Vacations: make([]VacationDetail, 0),
		}

		for _, v := range vacations {
			if v.Name != member.Name {
				continue
			}

			days := calendar.CountWorkingDays(v.Start, v.End)
			s.DaysBooked += days
			s.Vacations = append(s.Vacations, VacationDetail{
				ID:          v.ID,
				Start:       v.Start,
				End:         v.End,
				WorkingDays: days,
				StandIn:     v.StandIn,
			})
		}

		s.Remaining = max(0, quota-s.DaysBooked)
		stats = append(stats, s)
	}

	return stats
}

// FilterToRoster keeps the vacations whose owner is on the roster, in input order
func FilterToRoster(team []entities.Member, vacations []entities.Vacation) []entities.Vacation {
	names := rosterNames(team)

	filtered := make([]entities.Vacation, 0, len(vacations))
	for _, v := range vacations {
		if _, ok := names[v.Name]; ok {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

func rosterNames(team []entities.Member) map[string]struct{} {
	names := make(map[string]struct{}, len(team))
	for _, m := range team {
		names[m.Name] = struct{}{}
	}
	return names
}
