package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request or
// command, ensuring proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the transaction.
// Client code must explicitly manage the transaction lifecycle: Begin, then
// Commit or Rollback. The assignment coordinator relies on this boundary for
// its dual-record atomicity guarantee.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// VehicleRepository returns a VehicleRepository bound to the current
	// transaction.
	VehicleRepository() VehicleRepository

	// DriverRepository returns a DriverRepository bound to the current
	// transaction.
	DriverRepository() DriverRepository

	// OwnerRepository returns an OwnerRepository bound to the current
	// transaction.
	OwnerRepository() OwnerRepository

	// NotificationRepository returns a NotificationRepository bound to the
	// current transaction.
	NotificationRepository() NotificationRepository
}
