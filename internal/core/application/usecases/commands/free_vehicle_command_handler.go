package commands

import (
	"context"
	"errors"

	"fleetmanager/internal/pkg/errs"
)

// FreeVehicleCommandHandler releases a vehicle from its current driver.
// Both sides of the link are cleared in one transaction: the vehicle returns
// to the free pool and the driver no longer holds a vehicle. No notification
// entry is produced for releases.
type FreeVehicleCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewFreeVehicleCommandHandler creates a handler for vehicle release operations.
func NewFreeVehicleCommandHandler(uowFactory FleetUoWFactory) FreeVehicleCommandHandler {
	return FreeVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle release command.
// Freeing a vehicle that has no driver succeeds without writing anything.
func (h FreeVehicleCommandHandler) Handle(ctx context.Context, command FreeVehicleCommand) error {
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
	driverRepo := uow.DriverRepository()

	aggVehicle, err := vehicleRepo.Get(ctx, command.VehicleID())
	if err != nil {
		return err
	}

	if aggVehicle.DriverID() == nil {
		return uow.Commit(ctx)
	}

	aggDriver, err := driverRepo.Get(ctx, *aggVehicle.DriverID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if err == nil {
		aggDriver.ReleaseVehicle()
		if err = driverRepo.Update(ctx, aggDriver); err != nil {
			return err
		}
	}

	if err = aggVehicle.Release(); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, aggVehicle); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
