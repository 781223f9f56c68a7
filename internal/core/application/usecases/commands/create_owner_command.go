package commands

import (
	"errors"
	"strings"

	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"
)

var ErrCreateOwnerCommandIsNotConstructed = errors.New(
	"CreateOwnerCommand must be created via NewCreateOwnerCommand constructor",
)

// CreateOwnerCommand represents a request to register a new fleet owner.
type CreateOwnerCommand struct { //nolint:recvcheck //using for validation
	name  string
	email string

	guard guard.ConstructorGuard
}

// NewCreateOwnerCommand creates a command to register a new owner.
// Validates that name is not empty and email looks like an address.
func NewCreateOwnerCommand(name, email string) (CreateOwnerCommand, error) {
	command := CreateOwnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setEmail(email),
	); err != nil {
		return CreateOwnerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOwnerCommandIsNotConstructed if validation fails.
func (c CreateOwnerCommand) Validate() error {
	return c.guard.Validate(ErrCreateOwnerCommandIsNotConstructed)
}

// Name returns the owner name from the command.
func (c CreateOwnerCommand) Name() string {
	return c.name
}

// Email returns the owner email from the command.
func (c CreateOwnerCommand) Email() string {
	return c.email
}

func (c *CreateOwnerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateOwnerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}

	c.email = email
	return nil
}
