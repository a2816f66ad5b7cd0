package handlers_fiber

import (
	"github.com/username/vacation-hub/internal/absence"
	"github.com/username/vacation-hub/internal/calendar"
	"github.com/username/vacation-hub/internal/entities"
	"github.com/username/vacation-hub/pkg/dateutil"
)

// Dates are ISO YYYY-MM-DD strings on the wire.

type memberDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	ColorID   string `json:"colorId"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type vacationDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Start     string `json:"start"`
	End       string `json:"end"`
	StandIn   string `json:"vertreter"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type vacationDetailDTO struct {
	ID          string `json:"id"`
	Start       string `json:"start"`
	End         string `json:"end"`
	WorkingDays int    `json:"workingDays"`
	StandIn     string `json:"vertreter"`
}

type memberStatsDTO struct {
	Name       string              `json:"name"`
	Color      string              `json:"color"`
	DaysBooked int                 `json:"daysBooked"`
	Remaining  int                 `json:"remaining"`
	Vacations  []vacationDetailDTO `json:"vacations"`
}

type absenceDTO struct {
	Start              string  `json:"start"`
	End                string  `json:"end"`
	TeamSize           int     `json:"teamSize"`
	WorkingDays        int     `json:"workingDays"`
	TotalWorkingDays   int     `json:"totalWorkingDays"`
	AbsentWorkingDays  int     `json:"absentWorkingDays"`
	PresentWorkingDays int     `json:"presentWorkingDays"`
	AbsenceRatio       float64 `json:"absenceRatio"`
}

type collisionDTO struct {
	PersonA      string `json:"personA"`
	PersonB      string `json:"personB"`
	VacationA    string `json:"vacationA"`
	VacationB    string `json:"vacationB"`
	OverlapStart string `json:"overlapStart"`
	OverlapEnd   string `json:"overlapEnd"`
}

type monthDensityDTO struct {
	Month   int     `json:"month"`
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Opacity float64 `json:"opacity"`
}

type densityDTO struct {
	Max    int               `json:"max"`
	Months []monthDensityDTO `json:"months"`
}

type holidayDTO struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

type schoolHolidayDTO struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type dayDTO struct {
	Date          string `json:"date"`
	Weekday       string `json:"weekday"`
	Type          string `json:"type"`
	IsWorkday     bool   `json:"isWorkday"`
	Note          string `json:"note,omitempty"`
	SchoolHoliday string `json:"schoolHoliday,omitempty"`
}

type monthDTO struct {
	Year     int      `json:"year"`
	Month    int      `json:"month"`
	WorkDays int      `json:"workDays"`
	Weekends int      `json:"weekends"`
	Holidays int      `json:"holidays"`
	Days     []dayDTO `json:"days"`
}

type dashboardDTO struct {
	GeneratedAt string           `json:"generatedAt"`
	Quota       int              `json:"quota"`
	Team        []memberDTO      `json:"team"`
	Stats       []memberStatsDTO `json:"stats"`
	Absence     absenceDTO       `json:"absence"`
	Collisions  []collisionDTO   `json:"collisions"`
	Density     densityDTO       `json:"density"`
}

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

func toMemberDTO(m entities.Member) memberDTO {
	dto := memberDTO{ID: m.ID, Name: m.Name, Color: m.ColorHex, ColorID: m.ColorID}
	if !m.CreatedAt.IsZero() {
		dto.CreatedAt = m.CreatedAt.UTC().Format(timestampLayout)
	}
	return dto
}

func toMemberDTOs(team []entities.Member) []memberDTO {
	out := make([]memberDTO, 0, len(team))
	for _, m := range team {
		out = append(out, toMemberDTO(m))
	}
	return out
}

func toVacationDTO(v entities.Vacation) vacationDTO {
	dto := vacationDTO{
		ID:      v.ID,
		Name:    v.Name,
		Start:   dateutil.FormatISO(v.Start),
		End:     dateutil.FormatISO(v.End),
		StandIn: v.StandIn,
	}
	if !v.CreatedAt.IsZero() {
		dto.CreatedAt = v.CreatedAt.UTC().Format(timestampLayout)
	}
	if !v.UpdatedAt.IsZero() {
		dto.UpdatedAt = v.UpdatedAt.UTC().Format(timestampLayout)
	}
	return dto
}

func toVacationDTOs(vacations []entities.Vacation) []vacationDTO {
	out := make([]vacationDTO, 0, len(vacations))
	for _, v := range vacations {
		out = append(out, toVacationDTO(v))
	}
	return out
}

func toStatsDTOs(stats []absence.MemberStats) []memberStatsDTO {
	out := make([]memberStatsDTO, 0, len(stats))
	for _, s := range stats {
		details := make([]vacationDetailDTO, 0, len(s.Vacations))
		for _, v := range s.Vacations {
			details = append(details, vacationDetailDTO{
				ID:          v.ID,
				Start:       dateutil.FormatISO(v.Start),
				End:         dateutil.FormatISO(v.End),
				WorkingDays: v.WorkingDays,
				StandIn:     v.StandIn,
			})
		}
		out = append(out, memberStatsDTO{
			Name:       s.Name,
			Color:      s.ColorHex,
			DaysBooked: s.DaysBooked,
			Remaining:  s.Remaining,
			Vacations:  details,
		})
	}
	return out
}

func toAbsenceDTO(p absence.PeriodAbsence) absenceDTO {
	return absenceDTO{
		Start:              dateutil.FormatISO(p.Start),
		End:                dateutil.FormatISO(p.End),
		TeamSize:           p.TeamSize,
		WorkingDays:        p.WorkingDays,
		TotalWorkingDays:   p.TotalWorkingDays,
		AbsentWorkingDays:  p.AbsentWorkingDays,
		PresentWorkingDays: p.PresentWorkingDays,
		AbsenceRatio:       p.AbsenceRatio,
	}
}

func toCollisionDTOs(collisions []absence.Collision) []collisionDTO {
	out := make([]collisionDTO, 0, len(collisions))
	for _, c := range collisions {
		out = append(out, collisionDTO{
			PersonA:      c.PersonA,
			PersonB:      c.PersonB,
			VacationA:    c.VacationA,
			VacationB:    c.VacationB,
			OverlapStart: dateutil.FormatISO(c.OverlapStart),
			OverlapEnd:   dateutil.FormatISO(c.OverlapEnd),
		})
	}
	return out
}

func toDensityDTO(d absence.Density) densityDTO {
	months := make([]monthDensityDTO, 0, len(d.Buckets))
	for _, b := range d.Buckets {
		months = append(months, monthDensityDTO{
			Month:   int(b.Month),
			Name:    b.Name,
			Count:   b.Count,
			Opacity: b.Opacity,
		})
	}
	return densityDTO{Max: d.Max, Months: months}
}

func toHolidayDTOs(holidays []calendar.Holiday) []holidayDTO {
	out := make([]holidayDTO, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, holidayDTO{Date: dateutil.FormatISO(h.Date), Name: h.Name})
	}
	return out
}

func toSchoolHolidayDTOs(holidays []calendar.SchoolHoliday) []schoolHolidayDTO {
	out := make([]schoolHolidayDTO, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, schoolHolidayDTO{
			Name:  h.Name,
			Start: dateutil.FormatISO(h.Start),
			End:   dateutil.FormatISO(h.End),
		})
	}
	return out
}

func toMonthDTO(m calendar.MonthInfo) monthDTO {
	days := make([]dayDTO, 0, len(m.Days))
	for _, d := range m.Days {
		days = append(days, dayDTO{
			Date:          dateutil.FormatISO(d.Date),
			Weekday:       d.Date.Weekday().String(),
			Type:          d.Type.String(),
			IsWorkday:     d.IsWorkday,
			Note:          d.Note,
			SchoolHoliday: d.SchoolHoliday,
		})
	}
	return monthDTO{
		Year:     m.Year,
		Month:    int(m.Month),
		WorkDays: m.WorkDays,
		Weekends: m.Weekends,
		Holidays: m.Holidays,
		Days:     days,
	}
}
