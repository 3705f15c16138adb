package store

import (
	"context"

	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
)

// ContactStore persists contact submissions. It is append-only: there is no
// way to update or delete a submission through it.
type ContactStore interface {
	// CreateSubmission inserts sub and fills in the store-assigned ID and CreatedAt.
	CreateSubmission(ctx context.Context, sub *types.ContactSubmission) error
	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}
