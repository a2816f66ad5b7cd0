// Package ics exports vacations as an iCalendar feed.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/username/vacation-hub/internal/absence"
	"github.com/username/vacation-hub/internal/entities"
)

const productID = "-//vacation-hub//Team Vacations//DE"

// CalendarName is the display name of the exported calendar
const CalendarName = "Team-Urlaub"

// Build returns an iCalendar document with one all-day event per roster vacation.
// Vacation ends are inclusive, DTEND is exclusive, so DTEND is end + 1 day.
func Build(team []entities.Member, vacations []entities.Vacation, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(CalendarName)

	colors := make(map[string]string, len(team))
	for _, m := range team {
		colors[m.Name] = m.ColorHex
	}

	for _, v := range absence.FilterToRoster(team, vacations) {
		if v.End.Before(v.Start) {
			continue
		}

		event := cal.AddEvent(v.ID + "@vacation-hub")
		event.SetDtStampTime(stamp.UTC())
		event.SetAllDayStartAt(v.Start)
		event.SetAllDayEndAt(v.End.AddDate(0, 0, 1))
		event.SetSummary(Summary(v))
		if v.StandIn != "" {
			event.SetDescription(fmt.Sprintf("Vertretung: %s", v.StandIn))
		}
		if !v.CreatedAt.IsZero() {
			event.SetCreatedTime(v.CreatedAt.UTC())
		}
		if !v.UpdatedAt.IsZero() {
			event.SetModifiedAt(v.UpdatedAt.UTC())
		}
		event.SetProperty(ical.ComponentPropertyCategories, "Urlaub")
		if hex := colors[v.Name]; hex != "" {
			event.SetProperty(ical.ComponentProperty("COLOR"), hex)
		}
	}

	return cal.Serialize()
}

// Summary is the event title of a vacation
func Summary(v entities.Vacation) string {
	return fmt.Sprintf("Urlaub: %s", v.Name)
}
