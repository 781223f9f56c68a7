package ports

import (
	"context"

	"fleetmanager/internal/core/domain/model/driver"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver and records its generated identifier on the
	// aggregate.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver, guarded by the version
	// loaded with the aggregate (errs.ErrVersionConflict on a lost race).
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Delete removes a driver.
	Delete(ctx context.Context, id int64) error

	// Get retrieves a driver by its identifier.
	Get(ctx context.Context, id int64) (*driver.Driver, error)
}
