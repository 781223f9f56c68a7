package commands

import (
	"errors"

	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"
)

var ErrDeleteVehicleCommandIsNotConstructed = errors.New(
	"DeleteVehicleCommand must be created via NewDeleteVehicleCommand constructor",
)

// DeleteVehicleCommand represents a request to remove a vehicle from the
// registry. An engaged vehicle is released from its driver first.
type DeleteVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID int64

	guard guard.ConstructorGuard
}

// NewDeleteVehicleCommand creates a command to remove a vehicle.
func NewDeleteVehicleCommand(vehicleID int64) (DeleteVehicleCommand, error) {
	command := DeleteVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setVehicleID(vehicleID); err != nil {
		return DeleteVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteVehicleCommandIsNotConstructed if validation fails.
func (c DeleteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVehicleCommandIsNotConstructed)
}

// VehicleID returns the vehicle ID from the command.
func (c DeleteVehicleCommand) VehicleID() int64 {
	return c.vehicleID
}

func (c *DeleteVehicleCommand) setVehicleID(vehicleID int64) error {
	if vehicleID <= 0 {
		return errs.NewValueIsInvalidError("vehicleID")
	}

	c.vehicleID = vehicleID
	return nil
}
