package absence

import (
	"time"

	"github.com/username/vacation-hub/internal/entities"
	"github.com/username/vacation-hub/pkg/dateutil"
)

var monthNames = [12]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// MonthDensity is one bucket of the booking density chart
type MonthDensity struct {
	Month   time.Month
	Name    string
	Count   int
	Opacity float64
}

// Density counts bookings per calendar month across all years
type Density struct {
	Counts  [12]int
	Max     int
	Buckets []MonthDensity
}

// MonthlyBookingDensity increments a month bucket once for every (year, month)
// a vacation touches. Years collapse onto the same twelve buckets.
func MonthlyBookingDensity(vacations []entities.Vacation) Density {
	var d Density

	for _, v := range vacations {
		start, end := dateutil.Civil(v.Start), dateutil.Civil(v.End)
		if end.Before(start) {
			continue
		}

		last := dateutil.StartOfMonth(end)
		for month := dateutil.StartOfMonth(start); !month.After(last); month = month.AddDate(0, 1, 0) {
			d.Counts[month.Month()-1]++
		}
	}

	d.Max = 1
	for _, c := range d.Counts {
		d.Max = max(d.Max, c)
	}

	d.Buckets = make([]MonthDensity, 12)
	for i, c := range d.Counts {
		d.Buckets[i] = MonthDensity{
			Month:   time.Month(i + 1),
			Name:    monthNames[i],
			Count:   c,
			Opacity: float64(c) / float64(d.Max),
		}
	}

	return d
}
