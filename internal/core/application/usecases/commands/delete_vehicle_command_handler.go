package commands

import (
	"context"
	"errors"

	"fleetmanager/internal/pkg/errs"
)

// DeleteVehicleCommandHandler removes vehicles from the registry.
// Deleting an engaged vehicle releases its driver in the same transaction,
// so no driver is ever left pointing at a vehicle that no longer exists.
type DeleteVehicleCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewDeleteVehicleCommandHandler creates a handler for vehicle removal.
func NewDeleteVehicleCommandHandler(uowFactory FleetUoWFactory) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle removal command.
func (h DeleteVehicleCommandHandler) Handle(ctx context.Context, command DeleteVehicleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()

	aggVehicle, err := vehicleRepo.Get(ctx, command.VehicleID())
	if err != nil {
		return err
	}

	if aggVehicle.DriverID() != nil {
		driverRepo := uow.DriverRepository()

		aggDriver, derr := driverRepo.Get(ctx, *aggVehicle.DriverID())
		if derr != nil && !errors.Is(derr, errs.ErrObjectNotFound) {
			return derr
		}
		if derr == nil {
			aggDriver.ReleaseVehicle()
			if derr = driverRepo.Update(ctx, aggDriver); derr != nil {
				return derr
			}
		}
	}

	if err = vehicleRepo.Delete(ctx, aggVehicle.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
