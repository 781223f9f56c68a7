package commands

import (
	"errors"
	"time"

	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"
)

var ErrUpdateVehicleCommandIsNotConstructed = errors.New(
	"UpdateVehicleCommand must be created via NewUpdateVehicleCommand constructor",
)

// VehicleChanges carries the optional fields of a vehicle update as they
// arrive on the wire. Nil means the field is left untouched; validity dates
// are still strings and get parsed by the command constructor.
type VehicleChanges struct {
	RegdNo            *string
	FuelType          *string
	InsuranceNo       *string
	InsuranceValidity *string
	PUCCNo            *string
	PUCCValidity      *string
	Documents         *string
}

// UpdateVehicleCommand represents a request to amend a vehicle's details or
// compliance documents. Only the fields present in the request are changed.
type UpdateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID         int64
	regdNo            *string
	fuelType          *string
	insuranceNo       *string
	insuranceValidity *time.Time
	puccNo            *string
	puccValidity      *time.Time
	documents         *string

	guard guard.ConstructorGuard
}

// NewUpdateVehicleCommand creates a command to amend an existing vehicle.
// Present-but-empty required fields and malformed dates are rejected.
func NewUpdateVehicleCommand(vehicleID int64, changes VehicleChanges) (UpdateVehicleCommand, error) {
	command := UpdateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehicleID(vehicleID),
		command.setOptional("regdNo", changes.RegdNo, &command.regdNo),
		command.setOptional("fuelType", changes.FuelType, &command.fuelType),
		command.setOptional("insuranceNo", changes.InsuranceNo, &command.insuranceNo),
		command.setOptionalValidity("insuranceValidity", changes.InsuranceValidity, &command.insuranceValidity),
		command.setOptional("puccNo", changes.PUCCNo, &command.puccNo),
		command.setOptionalValidity("puccValidity", changes.PUCCValidity, &command.puccValidity),
	); err != nil {
		return UpdateVehicleCommand{}, err
	}

	command.documents = changes.Documents
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateVehicleCommandIsNotConstructed if validation fails.
func (c UpdateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleCommandIsNotConstructed)
}

// VehicleID returns the vehicle ID from the command.
func (c UpdateVehicleCommand) VehicleID() int64 {
	return c.vehicleID
}

// RegdNo returns the new registration number, or nil when unchanged.
func (c UpdateVehicleCommand) RegdNo() *string {
	return c.regdNo
}

// FuelType returns the new fuel type, or nil when unchanged.
func (c UpdateVehicleCommand) FuelType() *string {
	return c.fuelType
}

// InsuranceNo returns the new insurance policy number, or nil when unchanged.
func (c UpdateVehicleCommand) InsuranceNo() *string {
	return c.insuranceNo
}

// InsuranceValidity returns the new insurance expiry, or nil when unchanged.
func (c UpdateVehicleCommand) InsuranceValidity() *time.Time {
	return c.insuranceValidity
}

// PUCCNo returns the new pollution certificate number, or nil when unchanged.
func (c UpdateVehicleCommand) PUCCNo() *string {
	return c.puccNo
}

// PUCCValidity returns the new pollution certificate expiry, or nil when unchanged.
func (c UpdateVehicleCommand) PUCCValidity() *time.Time {
	return c.puccValidity
}

// Documents returns the new documents field, or nil when unchanged.
func (c UpdateVehicleCommand) Documents() *string {
	return c.documents
}

func (c *UpdateVehicleCommand) setVehicleID(vehicleID int64) error {
	if vehicleID <= 0 {
		return errs.NewValueIsInvalidError("vehicleID")
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *UpdateVehicleCommand) setOptional(paramName string, value *string, target **string) error {
	if value == nil {
		return nil
	}
	if *value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}

	*target = value
	return nil
}

func (c *UpdateVehicleCommand) setOptionalValidity(paramName string, value *string, target **time.Time) error {
	if value == nil {
		return nil
	}

	parsed, err := parseValidity(paramName, *value)
	if err != nil {
		return err
	}

	*target = &parsed
	return nil
}
