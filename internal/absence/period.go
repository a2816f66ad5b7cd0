package absence

import (
	"time"

	"github.com/username/vacation-hub/internal/calendar"
	"github.com/username/vacation-hub/internal/entities"
	"github.com/username/vacation-hub/pkg/dateutil"
)

// PeriodAbsence is the team capacity split of a reporting window
type PeriodAbsence struct {
	Start              time.Time
	End                time.Time
	TeamSize           int
	WorkingDays        int // per person
	TotalWorkingDays   int // WorkingDays * TeamSize
	AbsentWorkingDays  int
	PresentWorkingDays int
	AbsenceRatio       float64
}

// ForPeriod splits the team's working-day capacity in [start, end] into
// present and absent days. Only vacations of roster members count, and only
// the part of each vacation that falls inside the window.
func ForPeriod(team []entities.Member, vacations []entities.Vacation, start, end time.Time) PeriodAbsence {
	start, end = dateutil.Civil(start), dateutil.Civil(end)

	workingDays := calendar.CountWorkingDays(start, end)
	result := PeriodAbsence{
		Start:            start,
		End:              end,
		TeamSize:         len(team),
		WorkingDays:      workingDays,
		TotalWorkingDays: workingDays * len(team),
	}

	for _, v := range FilterToRoster(team, vacations) {
		overlapStart := dateutil.MaxDate(dateutil.Civil(v.Start), start)
		overlapEnd := dateutil.MinDate(dateutil.Civil(v.End), end)
		if overlapStart.After(overlapEnd) {
			continue
		}
		result.AbsentWorkingDays += calendar.CountWorkingDays(overlapStart, overlapEnd)
	}

	result.PresentWorkingDays = max(0, result.TotalWorkingDays-result.AbsentWorkingDays)
	if result.TotalWorkingDays > 0 {
		result.AbsenceRatio = float64(result.AbsentWorkingDays) / float64(result.TotalWorkingDays)
	}

	return result
}
