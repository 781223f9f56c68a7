package notification

import (
	"fmt"

	"fleetmanager/internal/pkg/errs"
)

// Role identifies which side of the assignment relationship an actor query
// runs for. Owner-role queries see the log of their fleet; driver-role
// queries see the entries addressed to that driver.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleOwner queries the log by owner id.
	RoleOwner

	// RoleDriver queries the log by driver id.
	RoleDriver
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleOwner:   "owner",
		RoleDriver:  "driver",
	}
}

// ParseRole converts the wire value ("owner" or "driver") into a Role.
// Any other value, including the empty string, is invalid input.
func ParseRole(s string) (Role, error) {
	switch s {
	case "owner":
		return RoleOwner, nil
	case "driver":
		return RoleDriver, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a recognized role", s))
	}
}

// Validate checks that the Role is one of the recognized values.
func (r Role) Validate() error {
	if r != RoleOwner && r != RoleDriver {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase name of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}
