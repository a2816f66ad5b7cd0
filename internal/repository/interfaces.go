// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"
	"time"

	"github.com/username/vacation-hub/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(ctx context.Context) error
	OnStop(ctx context.Context) error
}

// MemberInterface exposes roster operations.
// Members are returned in insertion order.
type MemberInterface interface {
	ListMembers(ctx context.Context) ([]entities.Member, error)
	// CreateMember stores m as given. A case-insensitive name clash yields ErrMemberExists.
	CreateMember(ctx context.Context, m entities.Member) (*entities.Member, error)
	// DeleteMember removes the member, its vacations and its stand-in references.
	DeleteMember(ctx context.Context, id string) (*entities.Member, error)
}

// VacationInterface exposes vacation operations.
// Vacations are returned in insertion order.
type VacationInterface interface {
	ListVacations(ctx context.Context) ([]entities.Vacation, error)
	CreateVacation(ctx context.Context, v entities.Vacation) (*entities.Vacation, error)
	UpdateVacationDates(ctx context.Context, id string, start, end time.Time) (*entities.Vacation, error)
	DeleteVacation(ctx context.Context, id string) error
}

// SnapshotInterface reads roster and vacations consistently.
type SnapshotInterface interface {
	Snapshot(ctx context.Context) (entities.Snapshot, error)
}
