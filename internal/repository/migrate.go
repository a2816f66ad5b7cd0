package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/username/vacation-hub/internal/entities"
)

// CopyTarget receives copied records.
type CopyTarget interface {
	MemberInterface
	VacationInterface
}

// CopyResult counts what Copy did.
type CopyResult struct {
	MembersCopied    int
	MembersSkipped   int
	VacationsCopied  int
	VacationsSkipped int
}

// Copy transfers roster and vacations from src into dst keeping IDs and timestamps.
// Records already present in dst are skipped, so Copy can be re-run.
func Copy(ctx context.Context, src SnapshotInterface, dst CopyTarget, log *zap.Logger) (CopyResult, error) {
	var res CopyResult

	snap, err := src.Snapshot(ctx)
	if err != nil {
		return res, fmt.Errorf("read source: %w", err)
	}

	for _, m := range snap.Team {
		if _, err := dst.CreateMember(ctx, m); err != nil {
			if errors.Is(err, entities.ErrMemberExists) {
				res.MembersSkipped++
				log.Debug("member already present", zap.String("name", m.Name))
				continue
			}
			return res, fmt.Errorf("copy member %s: %w", m.Name, err)
		}
		res.MembersCopied++
	}

	for _, v := range snap.Vacations {
		if _, err := dst.CreateVacation(ctx, v); err != nil {
			if errors.Is(err, entities.ErrVacationExists) {
				res.VacationsSkipped++
				log.Debug("vacation already present", zap.String("id", v.ID))
				continue
			}
			return res, fmt.Errorf("copy vacation %s: %w", v.ID, err)
		}
		res.VacationsCopied++
	}

	log.Info("Copy completed",
		zap.Int("members_copied", res.MembersCopied),
		zap.Int("members_skipped", res.MembersSkipped),
		zap.Int("vacations_copied", res.VacationsCopied),
		zap.Int("vacations_skipped", res.VacationsSkipped))

	return res, nil
}
