package queries

import (
	"errors"

	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"
)

var ErrGetDriverVehicleQueryIsNotConstructed = errors.New(
	"GetDriverVehicleQuery must be created via NewGetDriverVehicleQuery constructor",
)

// GetDriverVehicleQuery retrieves the vehicle currently held by a driver.
type GetDriverVehicleQuery struct {
	driverID int64

	guard guard.ConstructorGuard
}

// NewGetDriverVehicleQuery creates a query for a driver's current vehicle.
func NewGetDriverVehicleQuery(driverID int64) (GetDriverVehicleQuery, error) {
	if driverID <= 0 {
		return GetDriverVehicleQuery{}, errs.NewValueIsInvalidError("driverID")
	}

	return GetDriverVehicleQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDriverVehicleQueryIsNotConstructed if validation fails.
func (q GetDriverVehicleQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverVehicleQueryIsNotConstructed)
}

// DriverID returns the driver ID from the query.
func (q GetDriverVehicleQuery) DriverID() int64 {
	return q.driverID
}
