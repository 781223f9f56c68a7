package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleetmanager/internal/core/application/usecases/commands"
	"fleetmanager/internal/core/domain/model/notification"
	"fleetmanager/internal/core/domain/model/vehicle"
	"fleetmanager/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockComplianceUoW struct{ mock.Mock }

func (m *MockComplianceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockComplianceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockComplianceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockComplianceUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockComplianceUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockComplianceUoWFactory struct{ mock.Mock }

func (m *MockComplianceUoWFactory) Create() commands.ComplianceUoW {
	args := m.Called()
	return args.Get(0).(commands.ComplianceUoW)
}

// fakeSuppressor is an in-memory AlertSuppressor for handler tests.
type fakeSuppressor struct {
	keys map[string]bool
}

func newFakeSuppressor() *fakeSuppressor {
	return &fakeSuppressor{keys: make(map[string]bool)}
}

func (s *fakeSuppressor) Suppressed(key string) bool { return s.keys[key] }
func (s *fakeSuppressor) Suppress(key string)        { s.keys[key] = true }

func expiringTestVehicle(t *testing.T, id int64, insurance, pucc time.Time) *vehicle.Vehicle {
	t.Helper()

	v, err := vehicle.RestoreVehicle(
		id, 1, "KA01AB1234", "CH-1", "EN-1", "diesel",
		"INS-1", insurance,
		"PUCC-1", pucc,
		"", vehicle.StatusFree, nil, 1,
	)
	require.NoError(t, err)
	return v
}

func TestRaiseComplianceAlertsCommandHandler_Handle_RaisesBothDocuments(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	cmd, err := commands.NewRaiseComplianceAlertsCommand(now, 30*24*time.Hour)
	require.NoError(t, err)

	deadline := now.Add(30 * 24 * time.Hour)
	testVehicle := expiringTestVehicle(t, 10,
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
	)

	vehicleRepo := new(MockVehicleRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockComplianceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("GetAllExpiringWithin", ctx, deadline).
			Return([]*vehicle.Vehicle{testVehicle}, nil).
			Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Entry")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComplianceUoWFactory)
	factory.On("Create").Return(uow).Once()

	suppressor := newFakeSuppressor()
	handler := commands.NewRaiseComplianceAlertsCommandHandler(factory, suppressor)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	notificationRepo.AssertExpectations(t)

	first := notificationRepo.Calls[0].Arguments[1].(*notification.Entry)
	second := notificationRepo.Calls[1].Arguments[1].(*notification.Entry)
	assert.Equal(t, notification.KindCompliance, first.Kind())
	assert.Contains(t, first.Message(), "insurance policy INS-1")
	assert.Contains(t, second.Message(), "pollution certificate PUCC-1")
	assert.Equal(t, now, first.SentAt())
	require.NotNil(t, first.OwnerID())
	assert.Equal(t, int64(1), *first.OwnerID())
	assert.Nil(t, first.DriverID())

	assert.True(t, suppressor.Suppressed("insurance:10"))
	assert.True(t, suppressor.Suppressed("pucc:10"))
}

func TestRaiseComplianceAlertsCommandHandler_Handle_EngagedVehicleNamesDriver(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	cmd, err := commands.NewRaiseComplianceAlertsCommand(now, 30*24*time.Hour)
	require.NoError(t, err)

	driverID := int64(20)
	engaged, err := vehicle.RestoreVehicle(
		10, 1, "KA01AB1234", "CH-1", "EN-1", "diesel",
		"INS-1", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		"PUCC-1", time.Date(2028, 1, 1, 0, 0, 0, 0, time.UTC),
		"", vehicle.StatusEngaged, &driverID, 2,
	)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockComplianceUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(vehicleRepo).Once()
	uow.On("NotificationRepository").Return(notificationRepo).Once()
	vehicleRepo.On("GetAllExpiringWithin", ctx, mock.AnythingOfType("time.Time")).
		Return([]*vehicle.Vehicle{engaged}, nil).
		Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Entry")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockComplianceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRaiseComplianceAlertsCommandHandler(factory, newFakeSuppressor())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// Only the insurance expires inside the window; the entry names the driver.
	entry := notificationRepo.Calls[0].Arguments[1].(*notification.Entry)
	require.NotNil(t, entry.DriverID())
	assert.Equal(t, int64(20), *entry.DriverID())
	assert.Contains(t, entry.Message(), "insurance policy")
}

func TestRaiseComplianceAlertsCommandHandler_Handle_SuppressedKeysSkipped(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	cmd, err := commands.NewRaiseComplianceAlertsCommand(now, 30*24*time.Hour)
	require.NoError(t, err)

	testVehicle := expiringTestVehicle(t, 10,
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
	)

	vehicleRepo := new(MockVehicleRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockComplianceUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(vehicleRepo).Once()
	uow.On("NotificationRepository").Return(notificationRepo).Once()
	vehicleRepo.On("GetAllExpiringWithin", ctx, mock.AnythingOfType("time.Time")).
		Return([]*vehicle.Vehicle{testVehicle}, nil).
		Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Entry")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockComplianceUoWFactory)
	factory.On("Create").Return(uow).Once()

	suppressor := newFakeSuppressor()
	suppressor.Suppress("insurance:10")

	handler := commands.NewRaiseComplianceAlertsCommandHandler(factory, suppressor)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	notificationRepo.AssertExpectations(t)

	// Only the pollution certificate alert goes out.
	entry := notificationRepo.Calls[0].Arguments[1].(*notification.Entry)
	assert.Contains(t, entry.Message(), "pollution certificate")
}

func TestRaiseComplianceAlertsCommandHandler_Handle_CommitFailureKeepsKeys(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	cmd, err := commands.NewRaiseComplianceAlertsCommand(now, 30*24*time.Hour)
	require.NoError(t, err)

	testVehicle := expiringTestVehicle(t, 10,
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2028, 1, 1, 0, 0, 0, 0, time.UTC),
	)

	vehicleRepo := new(MockVehicleRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockComplianceUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(vehicleRepo).Once()
	uow.On("NotificationRepository").Return(notificationRepo).Once()
	vehicleRepo.On("GetAllExpiringWithin", ctx, mock.AnythingOfType("time.Time")).
		Return([]*vehicle.Vehicle{testVehicle}, nil).
		Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Entry")).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockComplianceUoWFactory)
	factory.On("Create").Return(uow).Once()

	suppressor := newFakeSuppressor()
	handler := commands.NewRaiseComplianceAlertsCommandHandler(factory, suppressor)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	// The failed scan must not suppress the alert; the next scan retries it.
	assert.False(t, suppressor.Suppressed("insurance:10"))
}

func TestRaiseComplianceAlertsCommandHandler_Handle_NothingExpiring(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	cmd, err := commands.NewRaiseComplianceAlertsCommand(now, 30*24*time.Hour)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockComplianceUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(vehicleRepo).Once()
	uow.On("NotificationRepository").Return(notificationRepo).Once()
	vehicleRepo.On("GetAllExpiringWithin", ctx, mock.AnythingOfType("time.Time")).
		Return([]*vehicle.Vehicle{}, nil).
		Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockComplianceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRaiseComplianceAlertsCommandHandler(factory, newFakeSuppressor())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	notificationRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}
