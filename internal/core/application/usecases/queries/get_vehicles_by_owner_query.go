package queries

import (
	"errors"

	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"
)

var ErrGetVehiclesByOwnerQueryIsNotConstructed = errors.New(
	"GetVehiclesByOwnerQuery must be created via NewGetVehiclesByOwnerQuery constructor",
)

// GetVehiclesByOwnerQuery retrieves every vehicle registered under an owner.
type GetVehiclesByOwnerQuery struct {
	ownerID int64

	guard guard.ConstructorGuard
}

// NewGetVehiclesByOwnerQuery creates a query for an owner's fleet.
func NewGetVehiclesByOwnerQuery(ownerID int64) (GetVehiclesByOwnerQuery, error) {
	if ownerID <= 0 {
		return GetVehiclesByOwnerQuery{}, errs.NewValueIsInvalidError("ownerID")
	}

	return GetVehiclesByOwnerQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetVehiclesByOwnerQueryIsNotConstructed if validation fails.
func (q GetVehiclesByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetVehiclesByOwnerQueryIsNotConstructed)
}

// OwnerID returns the owner ID from the query.
func (q GetVehiclesByOwnerQuery) OwnerID() int64 {
	return q.ownerID
}
