package vehicle

import (
	"fmt"

	"fleetmanager/internal/pkg/errs"
)

// Status represents the availability state of a vehicle.
// It implements a small state machine with defined transitions so a vehicle
// can only be linked to a driver while it is available.
//
// State transitions:
//
//	Free <──> Engaged
//
// Engage is only valid from Free; Release is valid from both states so that
// freeing an already-free vehicle is idempotent.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusFree means the vehicle is unassigned and available.
	StatusFree

	// StatusEngaged means the vehicle is currently linked to a driver.
	StatusEngaged
)

// getStatusStrings returns the wire/string representation of every Status,
// including the invalid zero value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		StatusFree:    "free",
		StatusEngaged: "engaged",
	}
}

// getValidStatusStrings returns only the statuses a stored vehicle may hold.
func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		StatusFree:    "free",
		StatusEngaged: "engaged",
	}
}

// Validate checks that the Status is one of the recognized values.
// Used to reject Status values coming from external sources (store, API)
// before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status ("free", "engaged").
// Safe to call on any Status value; invalid values yield "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateCanHaveDriver checks the consistency between the status and the
// presence of a driver reference. An engaged vehicle must reference a driver
// and a free vehicle must not; this is the core registry invariant.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if hasDriver && s != StatusEngaged {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}

	if !hasDriver && s == StatusEngaged {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}

// Engage transitions the status to Engaged.
//
// Valid transitions:
//   - Free -> Engaged
//
// Any other starting state is rejected: an engaged vehicle cannot be
// double-booked and an unknown status cannot be assigned at all.
func (s Status) Engage() (Status, error) {
	if s != StatusFree {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to engage", s.String()),
		)
	}

	return StatusEngaged, nil
}

// Release transitions the status to Free.
//
// Valid transitions:
//   - Engaged -> Free
//   - Free -> Free (idempotent)
func (s Status) Release() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return StatusFree, nil
}
