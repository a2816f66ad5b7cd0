package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/username/vacation-hub/internal/entities"
	"github.com/username/vacation-hub/pkg/dateutil"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	vacationColumns      = `id, name, start_date, end_date, stand_in, created_at, updated_at`
	selectVacationsQuery = `SELECT ` + vacationColumns + ` FROM vacations ORDER BY seq`
	insertVacationQuery  = `
INSERT INTO vacations(id, name, start_date, end_date, stand_in, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	updateVacationDatesQuery = `
UPDATE vacations SET start_date=$2, end_date=$3, updated_at=now()
WHERE id=$1
RETURNING ` + vacationColumns
	deleteVacationQuery = `DELETE FROM vacations WHERE id=$1`
)

// ListVacations returns all vacations in insertion order.
func (p *Postgres) ListVacations(ctx context.Context) ([]entities.Vacation, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	return listVacations(ctx, p.db)
}

// CreateVacation inserts a vacation; a duplicate id maps to ErrVacationExists.
func (p *Postgres) CreateVacation(ctx context.Context, v entities.Vacation) (*entities.Vacation, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	if v.UpdatedAt.IsZero() {
		v.UpdatedAt = v.CreatedAt
	}

	_, err := p.db.Exec(ctx, insertVacationQuery, v.ID, v.Name, v.Start, v.End, v.StandIn, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, entities.ErrVacationExists
		}
		return nil, fmt.Errorf("insert vacation: %w", err)
	}

	p.log.Info("Vacation created",
		zap.String("id", v.ID),
		zap.String("name", v.Name),
		zap.String("start", dateutil.FormatISO(v.Start)),
		zap.String("end", dateutil.FormatISO(v.End)))

	return &v, nil
}

// UpdateVacationDates moves a vacation to new dates.
func (p *Postgres) UpdateVacationDates(ctx context.Context, id string, start, end time.Time) (*entities.Vacation, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	v, err := scanVacation(p.db.QueryRow(ctx, updateVacationDatesQuery, id, start, end))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrVacationNotFound
		}
		return nil, fmt.Errorf("update vacation: %w", err)
	}

	return &v, nil
}

// DeleteVacation removes a vacation by id.
func (p *Postgres) DeleteVacation(ctx context.Context, id string) error {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	tag, err := p.db.Exec(ctx, deleteVacationQuery, id)
	if err != nil {
		return fmt.Errorf("delete vacation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrVacationNotFound
	}

	p.log.Info("Vacation deleted", zap.String("id", id))
	return nil
}

// Snapshot reads roster and vacations inside one repeatable-read transaction.
func (p *Postgres) Snapshot(ctx context.Context) (entities.Snapshot, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return entities.Snapshot{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	team, err := listMembers(ctx, tx)
	if err != nil {
		return entities.Snapshot{}, err
	}
	vacations, err := listVacations(ctx, tx)
	if err != nil {
		return entities.Snapshot{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return entities.Snapshot{}, err
	}

	return entities.Snapshot{Team: team, Vacations: vacations}, nil
}

func listVacations(ctx context.Context, q querier) ([]entities.Vacation, error) {
	rows, err := q.Query(ctx, selectVacationsQuery)
	if err != nil {
		return nil, fmt.Errorf("list vacations: %w", err)
	}
	defer rows.Close()

	vacations := make([]entities.Vacation, 0)
	for rows.Next() {
		v, err := scanVacation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vacation: %w", err)
		}
		vacations = append(vacations, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vacations: %w", err)
	}

	return vacations, nil
}

func scanVacation(row pgx.Row) (entities.Vacation, error) {
	var v entities.Vacation
	if err := row.Scan(&v.ID, &v.Name, &v.Start, &v.End, &v.StandIn, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return entities.Vacation{}, err
	}
	v.Start = dateutil.Civil(v.Start)
	v.End = dateutil.Civil(v.End)
	return v, nil
}
