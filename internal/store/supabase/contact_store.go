// Package supabase stores contact submissions in a Supabase project through
// its PostgREST endpoint.
package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/manish-reddy7/Manish-Reddy-Portfolio/internal/store"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
	supa "github.com/supabase-community/supabase-go"
)

const contactTable = "contact_submissions"

// insertRow is the column set a client may write. id and created_at are
// left to the table defaults.
type insertRow struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

type insertedRow struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactStore implements store.ContactStore on top of supabase-go.
type ContactStore struct {
	client *supa.Client
}

// NewContactStore connects with the service-role key so inserts bypass row
// level security.
func NewContactStore(url, serviceKey string) (*ContactStore, error) {
	if url == "" || serviceKey == "" {
		return nil, store.ErrNotConfigured
	}
	client, err := supa.NewClient(url, serviceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return &ContactStore{client: client}, nil
}

func (s *ContactStore) CreateSubmission(ctx context.Context, sub *types.ContactSubmission) error {
	// postgrest-go takes no context, so cancellation is only observed here.
	if err := ctx.Err(); err != nil {
		return err
	}

	row := insertRow{
		FirstName: sub.FirstName,
		LastName:  sub.LastName,
		Email:     sub.Email,
		Subject:   sub.Subject,
		Message:   sub.Message,
	}

	var inserted []insertedRow
	_, err := s.client.From(contactTable).
		Insert(row, false, "", "representation", "").
		ExecuteTo(&inserted)
	if err != nil {
		return fmt.Errorf("error inserting contact submission: %w", err)
	}
	if len(inserted) == 0 {
		return store.ErrEmptyResult
	}

	sub.ID = inserted[0].ID
	sub.CreatedAt = inserted[0].CreatedAt
	return nil
}

// Ping issues a one-row select against the contact table. Like
// CreateSubmission it can only honour ctx before the request starts.
func (s *ContactStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := s.client.From(contactTable).
		Select("id", "", false).
		Limit(1, "").
		Execute()
	if err != nil {
		return fmt.Errorf("supabase ping failed: %w", err)
	}
	return nil
}

var _ store.ContactStore = (*ContactStore)(nil)
