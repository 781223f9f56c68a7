package guard_test

import (
	"errors"
	"testing"

	"fleetmanager/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type registration struct {
		number string
		guard  guard.ConstructorGuard
	}

	var errRegistrationNotConstructed = errors.New("registration must be created via newRegistration")

	newRegistration := func(number string) (registration, error) {
		if number == "" {
			return registration{}, errors.New("number is required")
		}
		return registration{number: number, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		r, err := newRegistration("KA-01-HH-1234")

		require.NoError(t, err)
		require.NoError(t, r.guard.Validate(errRegistrationNotConstructed))
		assert.Equal(t, "KA-01-HH-1234", r.number)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var r registration // zero value

		err := r.guard.Validate(errRegistrationNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errRegistrationNotConstructed, err)
	})
}

func TestConstructorGuard_PassedByValue(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	gCopy := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, gCopy.Validate(testError))
}
