// Package owner contains the Owner aggregate: the account that holds
// vehicles and employs drivers. Only the identity and contact fields the
// registries need are modeled here.
package owner

import (
	"errors"

	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"
)

var (
	// ErrOwnerIsNotConstructed is returned when using an Owner that was not
	// created via NewOwner or RestoreOwner.
	ErrOwnerIsNotConstructed = errors.New("Owner must be created via NewOwner constructor")
)

// Owner represents a fleet-operator account.
type Owner struct {
	id    int64
	name  string
	email string

	guard guard.ConstructorGuard
}

// NewOwner creates a new owner account.
func NewOwner(name, email string) (*Owner, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	return &Owner{
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreOwner reconstructs an owner from its persisted state.
func RestoreOwner(id int64, name, email string) (*Owner, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Owner{
		id:    id,
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the owner was properly constructed.
func (o *Owner) Validate() error {
	return o.guard.Validate(ErrOwnerIsNotConstructed)
}

// SetID records the store-generated identifier after the first insert.
func (o *Owner) SetID(id int64) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

// ID returns the owner identifier.
func (o *Owner) ID() int64 { return o.id }

// Name returns the account display name.
func (o *Owner) Name() string { return o.name }

// Email returns the account contact email.
func (o *Owner) Email() string { return o.email }
