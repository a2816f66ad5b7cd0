package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/username/vacation-hub/internal/calendar"
	"github.com/username/vacation-hub/internal/ics"
	"github.com/username/vacation-hub/internal/report"
	"github.com/username/vacation-hub/internal/vacation"
	"github.com/username/vacation-hub/pkg/dateutil"
)

func statsCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print quota usage, absence and collisions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, manager, closeRepo, err := openManager(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			period, err := parsePeriod(start, end)
			if err != nil {
				return err
			}

			dash, err := manager.Dashboard(ctx, period)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "📊 Annual quota: %d working days\n\n", dash.Quota)
			return report.WriteSummary(cmd.OutOrStdout(), dash.Stats, dash.Absence, dash.Collisions)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Period start (YYYY-MM-DD, default: first day of this month)")
	cmd.Flags().StringVar(&end, "end", "", "Period end (YYYY-MM-DD, default: last day of this month)")

	return cmd
}

func absenceCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "absence",
		Short: "Print the team absence ratio for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, manager, closeRepo, err := openManager(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			period, err := parsePeriod(start, end)
			if err != nil {
				return err
			}

			res, err := manager.Absence(ctx, period)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Period:          %s .. %s\n", dateutil.FormatISO(res.Start), dateutil.FormatISO(res.End))
			fmt.Fprintf(out, "Working days:    %d\n", res.WorkingDays)
			fmt.Fprintf(out, "Team size:       %d\n", res.TeamSize)
			fmt.Fprintf(out, "Person-days:     %d\n", res.TotalWorkingDays)
			fmt.Fprintf(out, "Absent:          %d\n", res.AbsentWorkingDays)
			fmt.Fprintf(out, "Present:         %d\n", res.PresentWorkingDays)
			fmt.Fprintf(out, "Absence ratio:   %.1f%%\n", res.AbsenceRatio*100)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Period end (YYYY-MM-DD)")

	return cmd
}

func collisionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collisions",
		Short: "List overlapping vacations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, manager, closeRepo, err := openManager(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			collisions, err := manager.Collisions(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(collisions) == 0 {
				fmt.Fprintln(out, "✅ No overlapping vacations")
				return nil
			}

			fmt.Fprintf(out, "⚠️  %d overlapping vacation(s)\n", len(collisions))
			for _, c := range collisions {
				fmt.Fprintf(out, "  %s / %s: %s .. %s\n", c.PersonA, c.PersonB,
					dateutil.FormatISO(c.OverlapStart), dateutil.FormatISO(c.OverlapEnd))
			}
			return nil
		},
	}
}

func holidaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "holidays [years...]",
		Short: "List public and school holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			years := []int{dateutil.Today().Year()}
			if len(args) > 0 {
				years = years[:0]
				for _, arg := range args {
					year, err := strconv.Atoi(arg)
					if err != nil || year < 1 {
						return fmt.Errorf("invalid year %q", arg)
					}
					years = append(years, year)
				}
			}

			out := cmd.OutOrStdout()
			for _, year := range years {
				fmt.Fprintf(out, "📅 %d (Easter Sunday %s)\n", year, dateutil.FormatISO(calendar.Easter(year)))
				for _, h := range calendar.HolidaysForYear(year) {
					fmt.Fprintf(out, "  %s  %-3s %s\n", dateutil.FormatISO(h.Date), weekdayShort(h.Date), h.Name)
				}

				school := calendar.SchoolHolidayIntervals(year)
				if len(school) > 0 {
					fmt.Fprintln(out, "  School holidays:")
					for _, s := range school {
						fmt.Fprintf(out, "  %s .. %s  %s\n", dateutil.FormatISO(s.Start), dateutil.FormatISO(s.End), s.Name)
					}
				}
				fmt.Fprintf(out, "  Working days: %d\n\n", calendar.CountWorkingDays(dateutil.Date(year, time.January, 1), dateutil.Date(year, time.December, 31)))
			}
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:       "export ics|csv",
		Short:     "Export vacations as iCalendar or quota report as CSV",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"ics", "csv"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, manager, closeRepo, err := openManager(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			var out io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
					return fmt.Errorf("failed to create output path: %w", err)
				}
				f, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
				if err != nil {
					return fmt.Errorf("failed to open output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			switch args[0] {
			case "ics":
				snap, err := manager.Snapshot(ctx)
				if err != nil {
					return err
				}
				_, err = io.WriteString(out, ics.Build(snap.Team, snap.Vacations, time.Now()))
				return err
			default:
				stats, err := manager.Stats(ctx)
				if err != nil {
					return err
				}
				return report.WriteCSV(out, stats, manager.Quota())
			}
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: stdout)")

	return cmd
}

func parsePeriod(start, end string) (vacation.Period, error) {
	var p vacation.Period
	if start != "" {
		date, err := dateutil.ParseISODate(start)
		if err != nil {
			return p, fmt.Errorf("invalid --start: %w", err)
		}
		p.Start = &date
	}
	if end != "" {
		date, err := dateutil.ParseISODate(end)
		if err != nil {
			return p, fmt.Errorf("invalid --end: %w", err)
		}
		p.End = &date
	}
	return p, nil
}

func weekdayShort(t time.Time) string {
	return [...]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}[t.Weekday()]
}
