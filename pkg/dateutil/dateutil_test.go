package dateutil

import (
	"reflect"
	"testing"
	"time"
)

func TestCivil(t *testing.T) {
	berlin := time.FixedZone("CEST", 2*60*60)
	input := time.Date(2026, 6, 1, 23, 30, 0, 0, berlin)
	expected := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	result := Civil(input)

	if !result.Equal(expected) {
		t.Errorf("Civil(%v) = %v, want %v", input, result, expected)
	}
}

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "February in a leap year",
			input:     Date(2024, 2, 10),
			wantStart: Date(2024, 2, 1),
			wantEnd:   Date(2024, 2, 29),
		},
		{
			name:      "February in a common year",
			input:     Date(2026, 2, 28),
			wantStart: Date(2026, 2, 1),
			wantEnd:   Date(2026, 2, 28),
		},
		{
			name:      "December",
			input:     Date(2026, 12, 31),
			wantStart: Date(2026, 12, 1),
			wantEnd:   Date(2026, 12, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfMonth(tt.input); !got.Equal(tt.wantStart) {
				t.Errorf("StartOfMonth(%v) = %v, want %v", FormatISO(tt.input), FormatISO(got), FormatISO(tt.wantStart))
			}
			if got := EndOfMonth(tt.input); !got.Equal(tt.wantEnd) {
				t.Errorf("EndOfMonth(%v) = %v, want %v", FormatISO(tt.input), FormatISO(got), FormatISO(tt.wantEnd))
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2026, time.April); got != 30 {
		t.Errorf("DaysInMonth(2026, April) = %d, want 30", got)
	}
	if got := DaysInMonth(2028, time.February); got != 29 {
		t.Errorf("DaysInMonth(2028, February) = %d, want 29", got)
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"Monday", Date(2026, 6, 1), false},
		{"Friday", Date(2026, 6, 5), false},
		{"Saturday", Date(2026, 6, 6), true},
		{"Sunday", Date(2026, 6, 7), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekend(tt.date)
			if result != tt.expected {
				t.Errorf("IsWeekend(%v) = %v, want %v", tt.date.Format("2006-01-02 Mon"), result, tt.expected)
			}
		})
	}
}

func TestMinMaxDate(t *testing.T) {
	a := Date(2026, 7, 1)
	b := Date(2026, 7, 5)

	if got := MaxDate(a, b); !got.Equal(b) {
		t.Errorf("MaxDate = %v, want %v", got, b)
	}
	if got := MinDate(a, b); !got.Equal(a) {
		t.Errorf("MinDate = %v, want %v", got, a)
	}
}

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "plain date", input: "2026-06-01", want: Date(2026, 6, 1)},
		{name: "surrounding spaces", input: " 2026-12-24 ", want: Date(2026, 12, 24)},
		{name: "rfc3339 timestamp", input: "2026-03-30T10:15:00Z", want: Date(2026, 3, 30)},
		{name: "empty", input: "", wantErr: true},
		{name: "german format", input: "01.06.2026", wantErr: true},
		{name: "impossible day", input: "2026-02-30", wantErr: true},
		{name: "garbage", input: "next monday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISODate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseISODate(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseISODate(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseISODate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestYearsBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  []int
	}{
		{"same year", Date(2026, 1, 1), Date(2026, 12, 31), []int{2026}},
		{"year boundary", Date(2026, 12, 28), Date(2027, 1, 5), []int{2026, 2027}},
		{"three years", Date(2025, 6, 1), Date(2027, 1, 1), []int{2025, 2026, 2027}},
		{"inverted", Date(2027, 1, 1), Date(2026, 1, 1), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YearsBetween(tt.start, tt.end)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("YearsBetween(%v, %v) = %v, want %v", FormatISO(tt.start), FormatISO(tt.end), got, tt.want)
			}
		})
	}
}
