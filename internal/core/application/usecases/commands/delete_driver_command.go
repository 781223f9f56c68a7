package commands

import (
	"errors"

	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"
)

var ErrDeleteDriverCommandIsNotConstructed = errors.New(
	"DeleteDriverCommand must be created via NewDeleteDriverCommand constructor",
)

// DeleteDriverCommand represents a request to remove a driver from the
// registry. A vehicle held by the driver is returned to the free pool.
type DeleteDriverCommand struct { //nolint:recvcheck //using for validation
	driverID int64

	guard guard.ConstructorGuard
}

// NewDeleteDriverCommand creates a command to remove a driver.
func NewDeleteDriverCommand(driverID int64) (DeleteDriverCommand, error) {
	command := DeleteDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(driverID); err != nil {
		return DeleteDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteDriverCommandIsNotConstructed if validation fails.
func (c DeleteDriverCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDriverCommandIsNotConstructed)
}

// DriverID returns the driver ID from the command.
func (c DeleteDriverCommand) DriverID() int64 {
	return c.driverID
}

func (c *DeleteDriverCommand) setDriverID(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driverID")
	}

	c.driverID = driverID
	return nil
}
