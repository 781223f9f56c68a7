package notification_test

import (
	"testing"
	"time"

	"fleetmanager/internal/core/domain/model/notification"
	"fleetmanager/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestParseRole(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		role, err := notification.ParseRole("owner")
		require.NoError(t, err)
		assert.Equal(t, notification.RoleOwner, role)
	})

	t.Run("driver", func(t *testing.T) {
		role, err := notification.ParseRole("driver")
		require.NoError(t, err)
		assert.Equal(t, notification.RoleDriver, role)
	})

	t.Run("unrecognized_role_is_invalid", func(t *testing.T) {
		_, err := notification.ParseRole("manager")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty_role_is_invalid", func(t *testing.T) {
		_, err := notification.ParseRole("")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestKind(t *testing.T) {
	assert.Equal(t, "assignment", notification.KindAssignment.String())
	assert.Equal(t, "compliance", notification.KindCompliance.String())
	assert.Equal(t, "unknown", notification.KindUnknown.String())

	require.NoError(t, notification.KindAssignment.Validate())
	require.NoError(t, notification.KindCompliance.Validate())
	require.ErrorIs(t, notification.KindUnknown.Validate(), errs.ErrValueIsInvalid)
}

func TestNewEntry(t *testing.T) {
	sentAt := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	t.Run("creates_entry_with_event_id", func(t *testing.T) {
		e, err := notification.NewEntry(
			notification.KindAssignment,
			"vehicle KA-01-HH-1234 assigned to driver 5",
			int64Ptr(3), int64Ptr(5), int64Ptr(10),
			sentAt,
		)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.NotEqual(t, uuid.Nil, e.EventID())
		assert.Equal(t, int64(3), *e.OwnerID())
		assert.Equal(t, int64(5), *e.DriverID())
		assert.Equal(t, int64(10), *e.VehicleID())
		assert.Equal(t, sentAt, e.SentAt())
	})

	t.Run("requires_valid_kind", func(t *testing.T) {
		_, err := notification.NewEntry(notification.KindUnknown, "msg", int64Ptr(3), nil, nil, sentAt)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires_message", func(t *testing.T) {
		_, err := notification.NewEntry(notification.KindAssignment, "", int64Ptr(3), nil, nil, sentAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_an_actor_reference", func(t *testing.T) {
		_, err := notification.NewEntry(notification.KindAssignment, "msg", nil, nil, int64Ptr(10), sentAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_timestamp", func(t *testing.T) {
		_, err := notification.NewEntry(notification.KindAssignment, "msg", int64Ptr(3), nil, nil, time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var e notification.Entry
		require.ErrorIs(t, e.Validate(), notification.ErrEntryIsNotConstructed)
	})
}

func TestRestoreEntry(t *testing.T) {
	sentAt := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	eventID := uuid.New()

	e, err := notification.RestoreEntry(7, eventID, notification.KindCompliance, "insurance expiring", int64Ptr(3), nil, int64Ptr(10), sentAt)

	require.NoError(t, err)
	assert.Equal(t, int64(7), e.ID())
	assert.Equal(t, eventID, e.EventID())
	assert.Equal(t, notification.KindCompliance, e.Kind())
}
