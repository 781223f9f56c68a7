package commands

import (
	"context"

	"fleetmanager/internal/core/domain/model/vehicle"
)

// CreateVehicleCommandHandler registers new vehicles.
// The owner must already exist; the check and the insert share a transaction
// so a concurrently deleted owner cannot end up referenced.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle registration command.
// Returns the persisted vehicle with its generated identifier.
func (h CreateVehicleCommandHandler) Handle(ctx context.Context, command CreateVehicleCommand) (*vehicle.Vehicle, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OwnerRepository().Get(ctx, command.OwnerID()); err != nil {
		return nil, err
	}

	aggVehicle, err := vehicle.NewVehicle(
		command.OwnerID(),
		command.RegdNo(),
		command.ChassisNo(),
		command.EngineNo(),
		command.FuelType(),
		command.InsuranceNo(),
		command.InsuranceValidity(),
		command.PUCCNo(),
		command.PUCCValidity(),
		command.Documents(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.VehicleRepository().Add(ctx, aggVehicle); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggVehicle, nil
}
