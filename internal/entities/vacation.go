package entities

import "time"

// Vacation is a booked absence of one team member.
// Start and End are civil dates, both inclusive.
type Vacation struct {
	ID        string
	Name      string // owner, matched against Member.Name
	Start     time.Time
	End       time.Time
	StandIn   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
