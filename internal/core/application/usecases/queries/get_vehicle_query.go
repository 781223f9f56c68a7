package queries

import (
	"errors"

	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"
)

var ErrGetVehicleQueryIsNotConstructed = errors.New(
	"GetVehicleQuery must be created via NewGetVehicleQuery constructor",
)

// GetVehicleQuery retrieves a single vehicle by its identifier.
type GetVehicleQuery struct {
	vehicleID int64

	guard guard.ConstructorGuard
}

// NewGetVehicleQuery creates a query for one vehicle.
func NewGetVehicleQuery(vehicleID int64) (GetVehicleQuery, error) {
	if vehicleID <= 0 {
		return GetVehicleQuery{}, errs.NewValueIsInvalidError("vehicleID")
	}

	return GetVehicleQuery{
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetVehicleQueryIsNotConstructed if validation fails.
func (q GetVehicleQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleQueryIsNotConstructed)
}

// VehicleID returns the vehicle ID from the query.
func (q GetVehicleQuery) VehicleID() int64 {
	return q.vehicleID
}
