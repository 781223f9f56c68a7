package ports

import (
	"context"

	"fleetmanager/internal/core/domain/model/owner"
)

// OwnerRepository defines the persistence contract for owner accounts.
// Registry operations only need to create owners and confirm they exist.
type OwnerRepository interface {
	// Add persists a new owner and records its generated identifier on the
	// aggregate.
	Add(ctx context.Context, aggregate *owner.Owner) error

	// Get retrieves an owner by its identifier.
	Get(ctx context.Context, id int64) (*owner.Owner, error)
}
