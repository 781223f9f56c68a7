package queries

import (
	"errors"

	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"
)

var ErrGetDriversByOwnerQueryIsNotConstructed = errors.New(
	"GetDriversByOwnerQuery must be created via NewGetDriversByOwnerQuery constructor",
)

// GetDriversByOwnerQuery retrieves every driver registered under an owner.
type GetDriversByOwnerQuery struct {
	ownerID int64

	guard guard.ConstructorGuard
}

// NewGetDriversByOwnerQuery creates a query for an owner's drivers.
func NewGetDriversByOwnerQuery(ownerID int64) (GetDriversByOwnerQuery, error) {
	if ownerID <= 0 {
		return GetDriversByOwnerQuery{}, errs.NewValueIsInvalidError("ownerID")
	}

	return GetDriversByOwnerQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDriversByOwnerQueryIsNotConstructed if validation fails.
func (q GetDriversByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversByOwnerQueryIsNotConstructed)
}

// OwnerID returns the owner ID from the query.
func (q GetDriversByOwnerQuery) OwnerID() int64 {
	return q.ownerID
}
