// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMemberExists signals a team member name conflict.
	ErrMemberExists = errors.New("member exists")
	// ErrMemberNotFound signals a missing team member.
	ErrMemberNotFound = errors.New("member not found")
	// ErrVacationExists signals a duplicate vacation id.
	ErrVacationExists = errors.New("vacation exists")
	// ErrVacationNotFound signals a missing vacation.
	ErrVacationNotFound = errors.New("vacation not found")
	// ErrForbidden signals a wrong or missing admin password.
	ErrForbidden = errors.New("forbidden")
)
