package commands

import (
	"errors"

	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a new driver under a
// fleet owner.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	ownerID   int64
	name      string
	licenseNo string
	phone     string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// Validates that the owner ID is positive and that name, license number and
// phone are present.
func NewCreateDriverCommand(ownerID int64, name, licenseNo, phone string) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwnerID(ownerID),
		command.setName(name),
		command.setLicenseNo(licenseNo),
		command.setPhone(phone),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDriverCommandIsNotConstructed if validation fails.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// OwnerID returns the owner ID from the command.
func (c CreateDriverCommand) OwnerID() int64 {
	return c.ownerID
}

// Name returns the driver name from the command.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// LicenseNo returns the license number from the command.
func (c CreateDriverCommand) LicenseNo() string {
	return c.licenseNo
}

// Phone returns the contact phone from the command.
func (c CreateDriverCommand) Phone() string {
	return c.phone
}

func (c *CreateDriverCommand) setOwnerID(ownerID int64) error {
	if ownerID <= 0 {
		return errs.NewValueIsInvalidError("ownerID")
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setLicenseNo(licenseNo string) error {
	if licenseNo == "" {
		return errs.NewValueIsRequiredError("licenseNo")
	}

	c.licenseNo = licenseNo
	return nil
}

func (c *CreateDriverCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}
