package commands

import (
	"context"
	"errors"

	"fleetmanager/internal/pkg/errs"
)

// DeleteDriverCommandHandler removes drivers from the registry.
// A vehicle held by the driver is released in the same transaction, so the
// vehicle returns to the free pool instead of staying engaged to a driver
// that no longer exists.
type DeleteDriverCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewDeleteDriverCommandHandler creates a handler for driver removal.
func NewDeleteDriverCommandHandler(uowFactory FleetUoWFactory) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver removal command.
func (h DeleteDriverCommandHandler) Handle(ctx context.Context, command DeleteDriverCommand) error {
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

	aggDriver, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return err
	}

	aggVehicle, err := vehicleRepo.GetByDriver(ctx, aggDriver.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if err == nil {
		if err = aggVehicle.Release(); err != nil {
			return err
		}
		if err = vehicleRepo.Update(ctx, aggVehicle); err != nil {
			return err
		}
	}

	if err = driverRepo.Delete(ctx, aggDriver.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
