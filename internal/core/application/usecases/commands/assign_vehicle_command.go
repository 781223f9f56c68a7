package commands

import (
	"errors"

	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"
)

var ErrAssignVehicleCommandIsNotConstructed = errors.New(
	"AssignVehicleCommand must be created via NewAssignVehicleCommand constructor",
)

// AssignVehicleCommand represents a request to assign a vehicle to a driver.
// Both identifiers must be positive; existence is checked by the handler
// inside the transaction.
type AssignVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID int64
	driverID  int64

	guard guard.ConstructorGuard
}

// NewAssignVehicleCommand creates a command to assign a vehicle to a driver.
func NewAssignVehicleCommand(vehicleID, driverID int64) (AssignVehicleCommand, error) {
	command := AssignVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehicleID(vehicleID),
		command.setDriverID(driverID),
	); err != nil {
		return AssignVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignVehicleCommandIsNotConstructed if validation fails.
func (c AssignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleCommandIsNotConstructed)
}

// VehicleID returns the vehicle ID from the command.
func (c AssignVehicleCommand) VehicleID() int64 {
	return c.vehicleID
}

// DriverID returns the driver ID from the command.
func (c AssignVehicleCommand) DriverID() int64 {
	return c.driverID
}

func (c *AssignVehicleCommand) setVehicleID(vehicleID int64) error {
	if vehicleID <= 0 {
		return errs.NewValueIsInvalidError("vehicleID")
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *AssignVehicleCommand) setDriverID(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driverID")
	}

	c.driverID = driverID
	return nil
}
