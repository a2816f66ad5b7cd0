// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"github.com/username/vacation-hub/internal/config"
	"github.com/username/vacation-hub/internal/repository/jsonfile"
	"github.com/username/vacation-hub/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	MemberInterface
	VacationInterface
	SnapshotInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.Logger, cfg *config.Config) (Repository, error) {
	switch name {
	case "json":
		return jsonfile.New(cfg.Storage.DataDir, log), nil
	case "postgres":
		return postgres.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
