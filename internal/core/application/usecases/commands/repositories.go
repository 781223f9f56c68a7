// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fleetmanager/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// OwnerRepoFactory provides access to the owner repository within a transaction.
	OwnerRepoFactory interface {
		OwnerRepository() ports.OwnerRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// OwnerUoW manages transactions for owner-only operations.
	OwnerUoW interface {
		TxManager
		OwnerRepoFactory
	}

	// OwnerUoWFactory creates new owner unit of work instances.
	OwnerUoWFactory interface {
		Create() OwnerUoW
	}

	// VehicleUoW manages transactions for vehicle registration.
	// Carries the owner repository so handlers can verify the owner exists
	// before persisting a vehicle.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
		OwnerRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// DriverUoW manages transactions for driver registration.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
		OwnerRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// FleetUoW manages transactions that touch both vehicle and driver
	// aggregates without producing a notification: freeing a vehicle,
	// amending vehicle details, and removing either aggregate.
	FleetUoW interface {
		TxManager
		VehicleRepoFactory
		DriverRepoFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances.
	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// AssignmentUoW manages transactions for vehicle assignment.
	// The vehicle, the driver, and the notification entry recording the
	// assignment are all written within one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   vehicleRepo := uow.VehicleRepository()
	//   driverRepo := uow.DriverRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	AssignmentUoW interface {
		TxManager
		VehicleRepoFactory
		DriverRepoFactory
		NotificationRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// ComplianceUoW manages transactions for the compliance-alert producer.
	ComplianceUoW interface {
		TxManager
		VehicleRepoFactory
		NotificationRepoFactory
	}

	// ComplianceUoWFactory creates new compliance unit of work instances.
	ComplianceUoWFactory interface {
		Create() ComplianceUoW
	}
)
