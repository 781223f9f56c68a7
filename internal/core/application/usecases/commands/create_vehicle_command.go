package commands

import (
	"errors"
	"time"

	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// validityDateLayout is the fallback layout for compliance dates submitted
// without a time component.
const validityDateLayout = "2006-01-02"

// parseValidity parses a compliance validity date from its wire form.
// Accepts RFC 3339 timestamps and bare dates.
func parseValidity(paramName, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errs.NewValueIsRequiredError(paramName)
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return parsed.UTC(), nil
	}

	parsed, err = time.Parse(validityDateLayout, value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}

	return parsed.UTC(), nil
}

// CreateVehicleCommand represents a request to register a new vehicle with
// its identity and compliance documents. Validity dates arrive as strings
// and are parsed during construction.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	ownerID           int64
	regdNo            string
	chassisNo         string
	engineNo          string
	fuelType          string
	insuranceNo       string
	insuranceValidity time.Time
	puccNo            string
	puccValidity      time.Time
	documents         string

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
// All identity fields are required; documents is free-form and optional.
func NewCreateVehicleCommand(
	ownerID int64,
	regdNo, chassisNo, engineNo, fuelType string,
	insuranceNo, insuranceValidity string,
	puccNo, puccValidity string,
	documents string,
) (CreateVehicleCommand, error) {
	command := CreateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwnerID(ownerID),
		command.setRequired("regdNo", regdNo, &command.regdNo),
		command.setRequired("chassisNo", chassisNo, &command.chassisNo),
		command.setRequired("engineNo", engineNo, &command.engineNo),
		command.setRequired("fuelType", fuelType, &command.fuelType),
		command.setRequired("insuranceNo", insuranceNo, &command.insuranceNo),
		command.setValidity("insuranceValidity", insuranceValidity, &command.insuranceValidity),
		command.setRequired("puccNo", puccNo, &command.puccNo),
		command.setValidity("puccValidity", puccValidity, &command.puccValidity),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	command.documents = documents
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateVehicleCommandIsNotConstructed if validation fails.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// OwnerID returns the owner ID from the command.
func (c CreateVehicleCommand) OwnerID() int64 {
	return c.ownerID
}

// RegdNo returns the registration number from the command.
func (c CreateVehicleCommand) RegdNo() string {
	return c.regdNo
}

// ChassisNo returns the chassis number from the command.
func (c CreateVehicleCommand) ChassisNo() string {
	return c.chassisNo
}

// EngineNo returns the engine number from the command.
func (c CreateVehicleCommand) EngineNo() string {
	return c.engineNo
}

// FuelType returns the fuel type from the command.
func (c CreateVehicleCommand) FuelType() string {
	return c.fuelType
}

// InsuranceNo returns the insurance policy number from the command.
func (c CreateVehicleCommand) InsuranceNo() string {
	return c.insuranceNo
}

// InsuranceValidity returns the parsed insurance expiry from the command.
func (c CreateVehicleCommand) InsuranceValidity() time.Time {
	return c.insuranceValidity
}

// PUCCNo returns the pollution certificate number from the command.
func (c CreateVehicleCommand) PUCCNo() string {
	return c.puccNo
}

// PUCCValidity returns the parsed pollution certificate expiry from the command.
func (c CreateVehicleCommand) PUCCValidity() time.Time {
	return c.puccValidity
}

// Documents returns the supplementary documents field from the command.
func (c CreateVehicleCommand) Documents() string {
	return c.documents
}

func (c *CreateVehicleCommand) setOwnerID(ownerID int64) error {
	if ownerID <= 0 {
		return errs.NewValueIsInvalidError("ownerID")
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateVehicleCommand) setRequired(paramName, value string, target *string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}

	*target = value
	return nil
}

func (c *CreateVehicleCommand) setValidity(paramName, value string, target *time.Time) error {
	parsed, err := parseValidity(paramName, value)
	if err != nil {
		return err
	}

	*target = parsed
	return nil
}
