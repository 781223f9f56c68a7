// Package ports defines repository and unit-of-work interfaces for the fleet
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"fleetmanager/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	// Add persists a new vehicle and records its generated identifier on the
	// aggregate.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle. The write is guarded by
	// the version loaded with the aggregate: if the row changed since the
	// read, Update fails with errs.ErrVersionConflict and nothing is written.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Delete removes a vehicle unconditionally.
	Delete(ctx context.Context, id int64) error

	// Get retrieves a vehicle by its identifier.
	Get(ctx context.Context, id int64) (*vehicle.Vehicle, error)

	// GetByDriver retrieves the vehicle currently engaged by the given
	// driver. At most one such vehicle exists at any time.
	GetByDriver(ctx context.Context, driverID int64) (*vehicle.Vehicle, error)

	// GetAllExpiringWithin retrieves vehicles whose insurance or pollution
	// certificate validity ends on or before the deadline. Used by the
	// compliance-alert producer.
	GetAllExpiringWithin(ctx context.Context, deadline time.Time) ([]*vehicle.Vehicle, error)
}
