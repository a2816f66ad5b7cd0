package entities

import (
	"strings"
	"time"
)

// Member is a person on the team roster.
type Member struct {
	ID        string
	Name      string
	ColorID   string
	ColorHex  string
	CreatedAt time.Time
}

// SameName compares two member names the way the roster enforces uniqueness.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// FindMemberByName returns the roster member whose name matches exactly.
func FindMemberByName(team []Member, name string) (Member, bool) {
	for _, m := range team {
		if m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}

// Snapshot is a consistent read of roster and vacations.
type Snapshot struct {
	Team      []Member
	Vacations []Vacation
}
