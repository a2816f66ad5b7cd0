package absence

import (
	"time"

	"github.com/username/vacation-hub/internal/entities"
	"github.com/username/vacation-hub/pkg/dateutil"
)

// Collision is a pair of vacations that share at least one calendar day
type Collision struct {
	PersonA      string
	PersonB      string
	VacationA    string
	VacationB    string
	OverlapStart time.Time
	OverlapEnd   time.Time
}

// FindCollisions compares every pair (i < j) in list order.
// Weekend-only overlaps count, and two bookings of the same person are
// reported like any other pair. Callers pass a roster-filtered list.
func FindCollisions(vacations []entities.Vacation) []Collision {
	collisions := make([]Collision, 0)

	for i := 0; i < len(vacations); i++ {
		a := vacations[i]
		aStart, aEnd := dateutil.Civil(a.Start), dateutil.Civil(a.End)

		for j := i + 1; j < len(vacations); j++ {
			b := vacations[j]
			bStart, bEnd := dateutil.Civil(b.Start), dateutil.Civil(b.End)

			if aStart.After(bEnd) || aEnd.Before(bStart) {
				continue
			}

			overlapStart := dateutil.MaxDate(aStart, bStart)
			overlapEnd := dateutil.MinDate(aEnd, bEnd)
			// Inverted ranges can pass the boundary test without sharing a day
			if overlapStart.After(overlapEnd) {
				continue
			}

			collisions = append(collisions, Collision{
				PersonA:      a.Name,
				PersonB:      b.Name,
				VacationA:    a.ID,
				VacationB:    b.ID,
				OverlapStart: overlapStart,
				OverlapEnd:   overlapEnd,
			})
		}
	}

	return collisions
}
