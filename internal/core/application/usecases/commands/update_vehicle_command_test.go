package commands_test

import (
	"testing"
	"time"

	"fleetmanager/internal/core/application/usecases/commands"
	"fleetmanager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewUpdateVehicleCommand_PartialChanges(t *testing.T) {
	cmd, err := commands.NewUpdateVehicleCommand(10, commands.VehicleChanges{
		FuelType:     strPtr("cng"),
		PUCCValidity: strPtr("2027-06-01"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), cmd.VehicleID())
	assert.Nil(t, cmd.RegdNo())
	require.NotNil(t, cmd.FuelType())
	assert.Equal(t, "cng", *cmd.FuelType())
	require.NotNil(t, cmd.PUCCValidity())
	assert.Equal(t, time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC), *cmd.PUCCValidity())
	assert.Nil(t, cmd.InsuranceNo())
	assert.Nil(t, cmd.InsuranceValidity())
}

func TestNewUpdateVehicleCommand_EmptyPresentField(t *testing.T) {
	_, err := commands.NewUpdateVehicleCommand(10, commands.VehicleChanges{
		RegdNo: strPtr(""),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewUpdateVehicleCommand_MalformedValidity(t *testing.T) {
	_, err := commands.NewUpdateVehicleCommand(10, commands.VehicleChanges{
		InsuranceValidity: strPtr("soon"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdateVehicleCommand_InvalidVehicleID(t *testing.T) {
	_, err := commands.NewUpdateVehicleCommand(0, commands.VehicleChanges{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
