package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/internal/store"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
)

// Querier is the subset of *pgxpool.Pool the contact store needs.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// ContactStore implements store.ContactStore using PostgreSQL
type ContactStore struct {
	pool Querier
}

// NewContactStore creates a new ContactStore instance
func NewContactStore(pool Querier) *ContactStore {
	return &ContactStore{pool: pool}
}

func (s *ContactStore) CreateSubmission(ctx context.Context, sub *types.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (first_name, last_name, email, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := s.pool.QueryRow(ctx, query,
		sub.FirstName,
		sub.LastName,
		sub.Email,
		sub.Subject,
		sub.Message,
	).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.ErrEmptyResult
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return fmt.Errorf("error creating contact submission (%s): %w", pgErr.Code, err)
		}
		return fmt.Errorf("error creating contact submission: %w", err)
	}

	return nil
}

func (s *ContactStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

var _ store.ContactStore = (*ContactStore)(nil)
