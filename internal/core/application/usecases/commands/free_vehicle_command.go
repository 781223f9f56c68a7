package commands

import (
	"errors"

	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"
)

var ErrFreeVehicleCommandIsNotConstructed = errors.New(
	"FreeVehicleCommand must be created via NewFreeVehicleCommand constructor",
)

// FreeVehicleCommand represents a request to release a vehicle from its
// current driver. Freeing an already free vehicle is a no-op.
type FreeVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID int64

	guard guard.ConstructorGuard
}

// NewFreeVehicleCommand creates a command to free a vehicle.
func NewFreeVehicleCommand(vehicleID int64) (FreeVehicleCommand, error) {
	command := FreeVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setVehicleID(vehicleID); err != nil {
		return FreeVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFreeVehicleCommandIsNotConstructed if validation fails.
func (c FreeVehicleCommand) Validate() error {
	return c.guard.Validate(ErrFreeVehicleCommandIsNotConstructed)
}

// VehicleID returns the vehicle ID from the command.
func (c FreeVehicleCommand) VehicleID() int64 {
	return c.vehicleID
}

func (c *FreeVehicleCommand) setVehicleID(vehicleID int64) error {
	if vehicleID <= 0 {
		return errs.NewValueIsInvalidError("vehicleID")
	}

	c.vehicleID = vehicleID
	return nil
}
