package vehicle_test

import (
	"testing"

	"fleetmanager/internal/core/domain/model/vehicle"
	"fleetmanager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, vehicle.StatusFree.Validate())
	require.NoError(t, vehicle.StatusEngaged.Validate())

	require.ErrorIs(t, vehicle.StatusUnknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, vehicle.Status(42).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "free", vehicle.StatusFree.String())
	assert.Equal(t, "engaged", vehicle.StatusEngaged.String())
	assert.Equal(t, "unknown", vehicle.StatusUnknown.String())
	assert.Equal(t, "unknown", vehicle.Status(42).String())
}

func TestStatus_Engage(t *testing.T) {
	t.Run("free_vehicle_can_be_engaged", func(t *testing.T) {
		next, err := vehicle.StatusFree.Engage()

		require.NoError(t, err)
		assert.Equal(t, vehicle.StatusEngaged, next)
	})

	t.Run("engaged_vehicle_cannot_be_engaged_again", func(t *testing.T) {
		_, err := vehicle.StatusEngaged.Engage()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown_status_cannot_be_engaged", func(t *testing.T) {
		_, err := vehicle.StatusUnknown.Engage()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Release(t *testing.T) {
	t.Run("engaged_vehicle_releases_to_free", func(t *testing.T) {
		next, err := vehicle.StatusEngaged.Release()

		require.NoError(t, err)
		assert.Equal(t, vehicle.StatusFree, next)
	})

	t.Run("release_is_idempotent_on_free_vehicle", func(t *testing.T) {
		next, err := vehicle.StatusFree.Release()

		require.NoError(t, err)
		assert.Equal(t, vehicle.StatusFree, next)
	})

	t.Run("unknown_status_cannot_be_released", func(t *testing.T) {
		_, err := vehicle.StatusUnknown.Release()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_ValidateCanHaveDriver(t *testing.T) {
	require.NoError(t, vehicle.StatusEngaged.ValidateCanHaveDriver(true))
	require.NoError(t, vehicle.StatusFree.ValidateCanHaveDriver(false))

	require.ErrorIs(t, vehicle.StatusFree.ValidateCanHaveDriver(true), errs.ErrValueIsInvalid)
	require.ErrorIs(t, vehicle.StatusEngaged.ValidateCanHaveDriver(false), errs.ErrValueIsInvalid)
}
