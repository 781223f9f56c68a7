package queries

import (
	"errors"

	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"
)

var ErrGetFreeVehiclesQueryIsNotConstructed = errors.New(
	"GetFreeVehiclesQuery must be created via NewGetFreeVehiclesQuery constructor",
)

// GetFreeVehiclesQuery retrieves an owner's vehicles that currently have no
// driver and are available for assignment.
type GetFreeVehiclesQuery struct {
	ownerID int64

	guard guard.ConstructorGuard
}

// NewGetFreeVehiclesQuery creates a query for an owner's free vehicles.
func NewGetFreeVehiclesQuery(ownerID int64) (GetFreeVehiclesQuery, error) {
	if ownerID <= 0 {
		return GetFreeVehiclesQuery{}, errs.NewValueIsInvalidError("ownerID")
	}

	return GetFreeVehiclesQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFreeVehiclesQueryIsNotConstructed if validation fails.
func (q GetFreeVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetFreeVehiclesQueryIsNotConstructed)
}

// OwnerID returns the owner ID from the query.
func (q GetFreeVehiclesQuery) OwnerID() int64 {
	return q.ownerID
}
