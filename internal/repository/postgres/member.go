package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/username/vacation-hub/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

const (
	selectMembersQuery = `SELECT id, name, color, color_id, created_at FROM team_members ORDER BY seq`
	insertMemberQuery  = `INSERT INTO team_members(id, name, color, color_id, created_at) VALUES ($1, $2, $3, $4, $5)`
	deleteMemberQuery  = `DELETE FROM team_members WHERE id=$1 RETURNING id, name, color, color_id, created_at`

	deleteMemberVacationsQuery = `DELETE FROM vacations WHERE name=$1`
	clearStandInQuery          = `UPDATE vacations SET stand_in='', updated_at=now() WHERE stand_in=$1`
)

// ListMembers returns the roster in insertion order.
func (p *Postgres) ListMembers(ctx context.Context) ([]entities.Member, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	return listMembers(ctx, p.db)
}

// CreateMember inserts a member; name clashes map to ErrMemberExists.
func (p *Postgres) CreateMember(ctx context.Context, m entities.Member) (*entities.Member, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	if _, err := p.db.Exec(ctx, insertMemberQuery, m.ID, m.Name, m.ColorHex, m.ColorID, m.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, entities.ErrMemberExists
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}

	p.log.Info("Member created", zap.String("id", m.ID), zap.String("name", m.Name))
	return &m, nil
}

// DeleteMember removes a member, its vacations and its stand-in references in one transaction.
func (p *Postgres) DeleteMember(ctx context.Context, id string) (*entities.Member, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var m entities.Member
	if err := tx.QueryRow(ctx, deleteMemberQuery, id).Scan(&m.ID, &m.Name, &m.ColorHex, &m.ColorID, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("delete member: %w", err)
	}

	tag, err := tx.Exec(ctx, deleteMemberVacationsQuery, m.Name)
	if err != nil {
		return nil, fmt.Errorf("delete member vacations: %w", err)
	}
	if _, err := tx.Exec(ctx, clearStandInQuery, m.Name); err != nil {
		return nil, fmt.Errorf("clear stand-in: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Info("Member deleted",
		zap.String("id", m.ID),
		zap.String("name", m.Name),
		zap.Int64("vacations_removed", tag.RowsAffected()))
	return &m, nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func listMembers(ctx context.Context, q querier) ([]entities.Member, error) {
	rows, err := q.Query(ctx, selectMembersQuery)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.Member, 0)
	for rows.Next() {
		var m entities.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.ColorHex, &m.ColorID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	return members, nil
}
