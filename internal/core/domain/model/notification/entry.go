package notification

import (
	"errors"
	"fmt"
	"time"

	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	// ErrEntryIsNotConstructed is returned when using an Entry that was not
	// created via NewEntry or RestoreEntry.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")
)

// Kind classifies a log entry by the event that produced it.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindAssignment is written by the assignment coordinator when a vehicle
	// is linked to a driver.
	KindAssignment

	// KindCompliance is written by the compliance-alert producer when a
	// vehicle's insurance or pollution certificate nears expiry.
	KindCompliance
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:    "unknown",
		KindAssignment: "assignment",
		KindCompliance: "compliance",
	}
}

// Validate checks that the Kind is one of the recognized values.
func (k Kind) Validate() error {
	if k != KindAssignment && k != KindCompliance {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Entry is a single record in the append-only notification log. Entries are
// written once (by the assignment coordinator or the compliance producer) and
// never mutated or deleted by this service.
//
// The event id is a UUID minted at creation so producers that retry can write
// idempotently against the store's unique index.
type Entry struct {
	id      int64
	eventID uuid.UUID

	ownerID   *int64
	driverID  *int64
	vehicleID *int64

	kind    Kind
	message string
	sentAt  time.Time

	guard guard.ConstructorGuard
}

// NewEntry creates a log entry. The kind must be valid, the message
// non-empty, and at least one of ownerID/driverID must be set so the entry is
// reachable by an actor query.
func NewEntry(kind Kind, message string, ownerID, driverID, vehicleID *int64, sentAt time.Time) (*Entry, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}
	if ownerID == nil && driverID == nil {
		return nil, errs.NewValueIsRequiredError("actor")
	}
	if sentAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("sentAt")
	}

	return &Entry{
		eventID:   uuid.New(),
		ownerID:   ownerID,
		driverID:  driverID,
		vehicleID: vehicleID,
		kind:      kind,
		message:   message,
		sentAt:    sentAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreEntry reconstructs an entry from its persisted state.
func RestoreEntry(id int64, eventID uuid.UUID, kind Kind, message string, ownerID, driverID, vehicleID *int64, sentAt time.Time) (*Entry, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	return &Entry{
		id:        id,
		eventID:   eventID,
		ownerID:   ownerID,
		driverID:  driverID,
		vehicleID: vehicleID,
		kind:      kind,
		message:   message,
		sentAt:    sentAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the entry was properly constructed.
func (e *Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// SetID records the store-generated identifier after the first insert.
func (e *Entry) SetID(id int64) error {
	if e.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	e.id = id
	return nil
}

// ID returns the entry identifier.
func (e *Entry) ID() int64 { return e.id }

// EventID returns the producer-minted event UUID.
func (e *Entry) EventID() uuid.UUID { return e.eventID }

// OwnerID returns the related owner id, if any.
func (e *Entry) OwnerID() *int64 { return e.ownerID }

// DriverID returns the related driver id, if any.
func (e *Entry) DriverID() *int64 { return e.driverID }

// VehicleID returns the related vehicle id, if any.
func (e *Entry) VehicleID() *int64 { return e.vehicleID }

// Kind returns the entry classification.
func (e *Entry) Kind() Kind { return e.kind }

// Message returns the human-readable event message.
func (e *Entry) Message() string { return e.message }

// SentAt returns the event timestamp.
func (e *Entry) SentAt() time.Time { return e.sentAt }
