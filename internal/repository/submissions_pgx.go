package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/portfolio-contact/api/internal/entity"
)

const pgCheckViolation = "23514"

type pgxPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// PGXSubmissionsRepository implements SubmissionsRepository on the contact_messages table.
type PGXSubmissionsRepository struct {
	pool pgxPool
}

// NewPGXSubmissionsRepository wires a pgx backed repository.
func NewPGXSubmissionsRepository(pool *pgxpool.Pool) *PGXSubmissionsRepository {
	return &PGXSubmissionsRepository{pool: pool}
}

var _ SubmissionsRepository = (*PGXSubmissionsRepository)(nil)

// Create inserts a new row and populates the id and timestamps from RETURNING.
func (r *PGXSubmissionsRepository) Create(ctx context.Context, submission *entity.Submission) error {
	if err := submission.Validate(); err != nil {
		return err
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO contact_messages (name, email, message, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at
    `, submission.Name, submission.Email, submission.Message, submission.CreatedAt, submission.UpdatedAt)

	var id uuid.UUID
	if err := row.Scan(&id, &submission.CreatedAt, &submission.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			return fmt.Errorf("%w: %s", ErrConstraintViolation, pgErr.ConstraintName)
		}
		return fmt.Errorf("insert submission: %w", err)
	}

	submission.ID = id.String()
	return nil
}

// Ping verifies the pool can reach the database.
func (r *PGXSubmissionsRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
