// Package report renders absence statistics as CSV and plain text.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gocarina/gocsv"

	"github.com/username/vacation-hub/internal/absence"
	"github.com/username/vacation-hub/pkg/dateutil"
)

// MemberRow is one CSV line of the quota report
type MemberRow struct {
	Name       string `csv:"name"`
	Color      string `csv:"color"`
	Quota      int    `csv:"quota"`
	DaysBooked int    `csv:"days_booked"`
	Remaining  int    `csv:"remaining"`
	Vacations  int    `csv:"vacations"`
	Periods    string `csv:"periods"`
}

// Rows converts member statistics into CSV rows
func Rows(stats []absence.MemberStats, quota int) []*MemberRow {
	rows := make([]*MemberRow, 0, len(stats))
	for _, s := range stats {
		periods := make([]string, 0, len(s.Vacations))
		for _, v := range s.Vacations {
			periods = append(periods, fmt.Sprintf("%s..%s (%d)",
				dateutil.FormatISO(v.Start), dateutil.FormatISO(v.End), v.WorkingDays))
		}

		rows = append(rows, &MemberRow{
			Name:       s.Name,
			Color:      s.ColorHex,
			Quota:      quota,
			DaysBooked: s.DaysBooked,
			Remaining:  s.Remaining,
			Vacations:  len(s.Vacations),
			Periods:    strings.Join(periods, "; "),
		})
	}
	return rows
}

// WriteCSV writes the quota report as CSV with a header line
func WriteCSV(w io.Writer, stats []absence.MemberStats, quota int) error {
	rows := Rows(stats, quota)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// WriteSummary prints a human readable overview
func WriteSummary(w io.Writer, stats []absence.MemberStats, period absence.PeriodAbsence, collisions []absence.Collision) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tBOOKED\tREMAINING\tVACATIONS")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", s.Name, s.DaysBooked, s.Remaining, len(s.Vacations))
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Period %s..%s: %d working days x %d members\n",
		dateutil.FormatISO(period.Start), dateutil.FormatISO(period.End), period.WorkingDays, period.TeamSize)
	fmt.Fprintf(tw, "  present %d, absent %d (%.1f%%)\n",
		period.PresentWorkingDays, period.AbsentWorkingDays, period.AbsenceRatio*100)

	if len(collisions) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "Collisions (%d):\n", len(collisions))
		for _, c := range collisions {
			fmt.Fprintf(tw, "  %s / %s\t%s..%s\n", c.PersonA, c.PersonB,
				dateutil.FormatISO(c.OverlapStart), dateutil.FormatISO(c.OverlapEnd))
		}
	}

	return tw.Flush()
}
