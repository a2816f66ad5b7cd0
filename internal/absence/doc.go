// Package absence computes vacation statistics over a roster and vacation snapshot.
//
// Every function is pure: it takes the full input, returns fresh data and
// keeps no state between calls. Dates are civil dates and every range is
// inclusive on both ends. A range whose end is before its start is empty.
package absence
