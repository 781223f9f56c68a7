package commands

import (
	"context"

	"fleetmanager/internal/core/domain/model/vehicle"
)

// UpdateVehicleCommandHandler amends vehicle details and compliance
// documents. When the registration number of an engaged vehicle changes,
// the holding driver's vehicle class is refreshed in the same transaction
// so both records keep naming the same vehicle.
type UpdateVehicleCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewUpdateVehicleCommandHandler creates a handler for vehicle amendments.
func NewUpdateVehicleCommandHandler(uowFactory FleetUoWFactory) UpdateVehicleCommandHandler {
	return UpdateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle amendment command.
// Returns the updated vehicle.
func (h UpdateVehicleCommandHandler) Handle(ctx context.Context, command UpdateVehicleCommand) (*vehicle.Vehicle, error) {
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

	vehicleRepo := uow.VehicleRepository()

	aggVehicle, err := vehicleRepo.Get(ctx, command.VehicleID())
	if err != nil {
		return nil, err
	}

	regdNoChanged := false
	if command.RegdNo() != nil && *command.RegdNo() != aggVehicle.RegdNo() {
		if err = aggVehicle.ChangeRegdNo(*command.RegdNo()); err != nil {
			return nil, err
		}
		regdNoChanged = true
	}

	if command.FuelType() != nil {
		aggVehicle.ChangeFuelType(*command.FuelType())
	}

	if command.InsuranceNo() != nil || command.InsuranceValidity() != nil {
		insuranceNo := aggVehicle.InsuranceNo()
		if command.InsuranceNo() != nil {
			insuranceNo = *command.InsuranceNo()
		}
		validity := aggVehicle.InsuranceValidity()
		if command.InsuranceValidity() != nil {
			validity = *command.InsuranceValidity()
		}
		aggVehicle.ChangeInsurance(insuranceNo, validity)
	}

	if command.PUCCNo() != nil || command.PUCCValidity() != nil {
		puccNo := aggVehicle.PUCCNo()
		if command.PUCCNo() != nil {
			puccNo = *command.PUCCNo()
		}
		validity := aggVehicle.PUCCValidity()
		if command.PUCCValidity() != nil {
			validity = *command.PUCCValidity()
		}
		aggVehicle.ChangePUCC(puccNo, validity)
	}

	if command.Documents() != nil {
		aggVehicle.ChangeDocuments(*command.Documents())
	}

	if regdNoChanged && aggVehicle.DriverID() != nil {
		driverRepo := uow.DriverRepository()

		aggDriver, derr := driverRepo.Get(ctx, *aggVehicle.DriverID())
		if derr != nil {
			return nil, derr
		}
		if derr = aggDriver.RefreshVehicleClass(aggVehicle.RegdNo()); derr != nil {
			return nil, derr
		}
		if derr = driverRepo.Update(ctx, aggDriver); derr != nil {
			return nil, derr
		}
	}

	if err = vehicleRepo.Update(ctx, aggVehicle); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggVehicle, nil
}
