package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/ridelog/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MemberRepository struct {
	pool *pgxpool.Pool
}

func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

// CreateMember inserts m as given. Generating the id and normalizing the
// email are the caller's concern.
func (r *MemberRepository) CreateMember(ctx context.Context, m *model.Member) error {
	stmt := `
		INSERT INTO member (id, email, firstname, lastname, birthdate)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := r.pool.Exec(ctx, stmt, m.ID, m.Email, m.FirstName, m.LastName, m.Birthdate); err != nil {
		return fmt.Errorf("failed to insert member %s: %w", m.ID, err)
	}

	return nil
}

// GetMemberByID loads one member. A missing row is reported as a wrapped
// pgx.ErrNoRows carrying the "table:member" hint.
func (r *MemberRepository) GetMemberByID(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	stmt := `SELECT email, firstname, lastname, birthdate FROM member WHERE id = $1`

	m := model.Member{ID: id}
	err := r.pool.QueryRow(ctx, stmt, id).Scan(&m.Email, &m.FirstName, &m.LastName, &m.Birthdate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound("member")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member %s: %w", id, err)
	}

	return &m, nil
}

// ListMembers returns every member ordered by last name, first name, id.
func (r *MemberRepository) ListMembers(ctx context.Context) ([]model.Member, error) {
	stmt := `
		SELECT id, email, firstname, lastname, birthdate
		FROM member
		ORDER BY lastname, firstname, id
	`

	rows, err := r.pool.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}

	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Member])
	if err != nil {
		return nil, fmt.Errorf("failed to collect members: %w", err)
	}

	return members, nil
}
