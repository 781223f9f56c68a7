package http_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fleetmanager/cmd"
	httpadapter "fleetmanager/internal/adapters/in/http"
	"fleetmanager/internal/adapters/out/postgres/driverrepo"
	"fleetmanager/internal/adapters/out/postgres/notificationrepo"
	"fleetmanager/internal/adapters/out/postgres/ownerrepo"
	"fleetmanager/internal/adapters/out/postgres/vehiclerepo"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer wires the full stack, commands through repositories, onto an
// in-memory database and returns the Echo instance serving the API.
func newTestServer(t *testing.T, name string) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&ownerrepo.OwnerDTO{},
		&vehiclerepo.VehicleDTO{},
		&driverrepo.DriverDTO{},
		&notificationrepo.NotificationDTO{},
	))

	app := cmd.NewCompositionRoot(cmd.Config{}, db)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOwner:   app.CreateCreateOwnerCommandHandler(),
		CreateVehicle: app.CreateCreateVehicleCommandHandler(),
		UpdateVehicle: app.CreateUpdateVehicleCommandHandler(),
		DeleteVehicle: app.CreateDeleteVehicleCommandHandler(),
		CreateDriver:  app.CreateCreateDriverCommandHandler(),
		DeleteDriver:  app.CreateDeleteDriverCommandHandler(),
		AssignVehicle: app.CreateAssignVehicleCommandHandler(),
		FreeVehicle:   app.CreateFreeVehicleCommandHandler(),

		GetVehicle:         app.CreateGetVehicleQueryHandler(),
		GetVehiclesByOwner: app.CreateGetVehiclesByOwnerQueryHandler(),
		GetFreeVehicles:    app.CreateGetFreeVehiclesQueryHandler(),
		GetDriversByOwner:  app.CreateGetDriversByOwnerQueryHandler(),
		GetDriverVehicle:   app.CreateGetDriverVehicleQueryHandler(),
		GetNotifications:   app.CreateGetNotificationsQueryHandler(),
	}, logger)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var value T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &value))
	return value
}

func createOwner(t *testing.T, e *echo.Echo) httpadapter.OwnerResponse {
	t.Helper()

	rec := doRequest(e, nethttp.MethodPost, "/api/owners",
		`{"name": "Asha Fleet Co", "email": "asha@example.com"}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code)
	return decode[httpadapter.OwnerResponse](t, rec)
}

func createVehicle(t *testing.T, e *echo.Echo, ownerID int64, regdNo string) httpadapter.VehicleResponse {
	t.Helper()

	body := fmt.Sprintf(`{
		"ownerId": %d,
		"regdNo": %q,
		"chassisNo": "CH-001",
		"engineNo": "EN-001",
		"fuelType": "diesel",
		"insuranceNo": "INS-9",
		"insuranceValidity": "2027-01-15",
		"puccNo": "PUCC-3",
		"puccValidity": "2026-12-01"
	}`, ownerID, regdNo)
	rec := doRequest(e, nethttp.MethodPost, "/api/vehicles", body)
	require.Equal(t, nethttp.StatusCreated, rec.Code)
	return decode[httpadapter.VehicleResponse](t, rec)
}

func createDriver(t *testing.T, e *echo.Echo, ownerID int64, name, licenseNo string) httpadapter.DriverResponse {
	t.Helper()

	body := fmt.Sprintf(`{
		"ownerId": %d,
		"name": %q,
		"licenseNo": %q,
		"phone": "9876500000"
	}`, ownerID, name, licenseNo)
	rec := doRequest(e, nethttp.MethodPost, "/api/drivers", body)
	require.Equal(t, nethttp.StatusCreated, rec.Code)
	return decode[httpadapter.DriverResponse](t, rec)
}

func assignVehicle(e *echo.Echo, vehicleID, driverID int64) *httptest.ResponseRecorder {
	body := fmt.Sprintf(`{"vehicleId": %d, "driverId": %d}`, vehicleID, driverID)
	return doRequest(e, nethttp.MethodPost, "/api/owners/assign-vehicle", body)
}

func TestServer_RegisterVehicle(t *testing.T) {
	e := newTestServer(t, "register_vehicle")
	owner := createOwner(t, e)

	created := createVehicle(t, e, owner.ID, "KA01AB1234")
	assert.Equal(t, "free", created.Status)
	assert.Nil(t, created.DriverID)

	rec := doRequest(e, nethttp.MethodGet, fmt.Sprintf("/api/vehicles/%d", created.ID), "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	fetched := decode[httpadapter.VehicleResponse](t, rec)
	assert.Equal(t, "KA01AB1234", fetched.RegdNo)
	assert.Equal(t, owner.ID, fetched.OwnerID)
}

func TestServer_RegisterVehicle_UnknownOwner(t *testing.T) {
	e := newTestServer(t, "register_vehicle_unknown_owner")

	body := `{
		"ownerId": 42,
		"regdNo": "KA01AB1234",
		"chassisNo": "CH-001",
		"engineNo": "EN-001",
		"fuelType": "diesel",
		"insuranceNo": "INS-9",
		"insuranceValidity": "2027-01-15",
		"puccNo": "PUCC-3",
		"puccValidity": "2026-12-01"
	}`
	rec := doRequest(e, nethttp.MethodPost, "/api/vehicles", body)

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestServer_RegisterVehicle_MalformedValidity(t *testing.T) {
	e := newTestServer(t, "register_vehicle_bad_date")
	owner := createOwner(t, e)

	body := fmt.Sprintf(`{
		"ownerId": %d,
		"regdNo": "KA01AB1234",
		"chassisNo": "CH-001",
		"engineNo": "EN-001",
		"fuelType": "diesel",
		"insuranceNo": "INS-9",
		"insuranceValidity": "15/01/2027",
		"puccNo": "PUCC-3",
		"puccValidity": "2026-12-01"
	}`, owner.ID)
	rec := doRequest(e, nethttp.MethodPost, "/api/vehicles", body)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	response := decode[httpadapter.ErrorResponse](t, rec)
	assert.Contains(t, response.Message, "insuranceValidity")
}

func TestServer_GetVehicle_NotFound(t *testing.T) {
	e := newTestServer(t, "get_vehicle_not_found")

	rec := doRequest(e, nethttp.MethodGet, "/api/vehicles/42", "")

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestServer_UpdateVehicle_CompliancePatch(t *testing.T) {
	e := newTestServer(t, "update_vehicle")
	owner := createOwner(t, e)
	created := createVehicle(t, e, owner.ID, "KA01AB1234")

	body := `{"insuranceNo": "INS-10", "insuranceValidity": "2028-06-30"}`
	rec := doRequest(e, nethttp.MethodPatch, fmt.Sprintf("/api/vehicles/%d", created.ID), body)

	require.Equal(t, nethttp.StatusOK, rec.Code)
	updated := decode[httpadapter.VehicleResponse](t, rec)
	assert.Equal(t, "INS-10", updated.InsuranceNo)
	assert.Equal(t, 2028, updated.InsuranceValidity.Year())
	// Untouched fields survive the patch.
	assert.Equal(t, "PUCC-3", updated.PUCCNo)
	assert.Equal(t, "KA01AB1234", updated.RegdNo)
}

func TestServer_UpdateVehicle_PresentButEmptyField(t *testing.T) {
	e := newTestServer(t, "update_vehicle_empty_field")
	owner := createOwner(t, e)
	created := createVehicle(t, e, owner.ID, "KA01AB1234")

	rec := doRequest(e, nethttp.MethodPatch, fmt.Sprintf("/api/vehicles/%d", created.ID), `{"regdNo": ""}`)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestServer_AssignVehicle_FullFlow(t *testing.T) {
	e := newTestServer(t, "assign_flow")
	owner := createOwner(t, e)
	vehicle := createVehicle(t, e, owner.ID, "KA01AB1234")
	driver := createDriver(t, e, owner.ID, "Ravi Kumar", "DL-42")

	rec := assignVehicle(e, vehicle.ID, driver.ID)
	require.Equal(t, nethttp.StatusOK, rec.Code)

	// The driver now holds the vehicle.
	rec = doRequest(e, nethttp.MethodGet, fmt.Sprintf("/api/drivers/%d/vehicle", driver.ID), "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	held := decode[httpadapter.VehicleResponse](t, rec)
	assert.Equal(t, "engaged", held.Status)
	require.NotNil(t, held.DriverID)
	assert.Equal(t, driver.ID, *held.DriverID)

	// The owner's only vehicle is engaged, so there is nothing free to offer.
	rec = doRequest(e, nethttp.MethodGet, fmt.Sprintf("/api/owners/%d/free-vehicles", owner.ID), "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)

	// The assignment landed in the notification log.
	rec = doRequest(e, nethttp.MethodGet,
		fmt.Sprintf("/api/owners/notifications?userId=%d&role=owner", owner.ID), "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	entries := decode[[]httpadapter.NotificationResponse](t, rec)
	require.Len(t, entries, 1)
	assert.Equal(t, "assignment", entries[0].Kind)
	assert.Contains(t, entries[0].Message, "KA01AB1234")
	assert.Contains(t, entries[0].Message, "Ravi Kumar")
}

func TestServer_AssignVehicle_VehicleAlreadyEngaged(t *testing.T) {
	e := newTestServer(t, "assign_vehicle_engaged")
	owner := createOwner(t, e)
	vehicle := createVehicle(t, e, owner.ID, "KA01AB1234")
	first := createDriver(t, e, owner.ID, "Ravi Kumar", "DL-42")
	second := createDriver(t, e, owner.ID, "Anil Singh", "DL-43")

	require.Equal(t, nethttp.StatusOK, assignVehicle(e, vehicle.ID, first.ID).Code)

	rec := assignVehicle(e, vehicle.ID, second.ID)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestServer_AssignVehicle_DriverAlreadyEngaged(t *testing.T) {
	e := newTestServer(t, "assign_driver_engaged")
	owner := createOwner(t, e)
	first := createVehicle(t, e, owner.ID, "KA01AB1234")
	second := createVehicle(t, e, owner.ID, "KA01AB5678")
	driver := createDriver(t, e, owner.ID, "Ravi Kumar", "DL-42")

	require.Equal(t, nethttp.StatusOK, assignVehicle(e, first.ID, driver.ID).Code)

	rec := assignVehicle(e, second.ID, driver.ID)

	assert.Equal(t, nethttp.StatusConflict, rec.Code)
}

func TestServer_AssignVehicle_UnknownDriver(t *testing.T) {
	e := newTestServer(t, "assign_unknown_driver")
	owner := createOwner(t, e)
	vehicle := createVehicle(t, e, owner.ID, "KA01AB1234")

	rec := assignVehicle(e, vehicle.ID, 99)

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestServer_FreeVehicle(t *testing.T) {
	e := newTestServer(t, "free_vehicle")
	owner := createOwner(t, e)
	vehicle := createVehicle(t, e, owner.ID, "KA01AB1234")
	driver := createDriver(t, e, owner.ID, "Ravi Kumar", "DL-42")
	require.Equal(t, nethttp.StatusOK, assignVehicle(e, vehicle.ID, driver.ID).Code)

	rec := doRequest(e, nethttp.MethodPatch, fmt.Sprintf("/api/drivers/vehicle/%d/free", vehicle.ID), "")
	require.Equal(t, nethttp.StatusOK, rec.Code)

	// The driver's seat is empty again.
	rec = doRequest(e, nethttp.MethodGet, fmt.Sprintf("/api/drivers/%d/vehicle", driver.ID), "")
	assert.Equal(t, nethttp.StatusNoContent, rec.Code)

	// And the vehicle is back in the free pool.
	rec = doRequest(e, nethttp.MethodGet, fmt.Sprintf("/api/owners/%d/free-vehicles", owner.ID), "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	free := decode[[]httpadapter.VehicleResponse](t, rec)
	require.Len(t, free, 1)
	assert.Equal(t, "KA01AB1234", free[0].RegdNo)
}

func TestServer_FreeVehicle_NotFound(t *testing.T) {
	e := newTestServer(t, "free_vehicle_not_found")

	rec := doRequest(e, nethttp.MethodPatch, "/api/drivers/vehicle/42/free", "")

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestServer_DeleteVehicle_ReleasesDriver(t *testing.T) {
	e := newTestServer(t, "delete_vehicle")
	owner := createOwner(t, e)
	vehicle := createVehicle(t, e, owner.ID, "KA01AB1234")
	driver := createDriver(t, e, owner.ID, "Ravi Kumar", "DL-42")
	require.Equal(t, nethttp.StatusOK, assignVehicle(e, vehicle.ID, driver.ID).Code)

	rec := doRequest(e, nethttp.MethodDelete, fmt.Sprintf("/api/vehicles/%d", vehicle.ID), "")
	require.Equal(t, nethttp.StatusNoContent, rec.Code)

	rec = doRequest(e, nethttp.MethodGet, fmt.Sprintf("/api/vehicles/%d", vehicle.ID), "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)

	rec = doRequest(e, nethttp.MethodGet, fmt.Sprintf("/api/drivers/%d/vehicle", driver.ID), "")
	assert.Equal(t, nethttp.StatusNoContent, rec.Code)
}

func TestServer_DeleteDriver_FreesVehicle(t *testing.T) {
	e := newTestServer(t, "delete_driver")
	owner := createOwner(t, e)
	vehicle := createVehicle(t, e, owner.ID, "KA01AB1234")
	driver := createDriver(t, e, owner.ID, "Ravi Kumar", "DL-42")
	require.Equal(t, nethttp.StatusOK, assignVehicle(e, vehicle.ID, driver.ID).Code)

	rec := doRequest(e, nethttp.MethodDelete, fmt.Sprintf("/api/drivers/%d", driver.ID), "")
	require.Equal(t, nethttp.StatusNoContent, rec.Code)

	rec = doRequest(e, nethttp.MethodGet, fmt.Sprintf("/api/owners/%d/free-vehicles", owner.ID), "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	free := decode[[]httpadapter.VehicleResponse](t, rec)
	require.Len(t, free, 1)
	assert.Nil(t, free[0].DriverID)
}

func TestServer_GetDriversByOwner_EmptyRoster(t *testing.T) {
	e := newTestServer(t, "drivers_empty_roster")
	owner := createOwner(t, e)

	rec := doRequest(e, nethttp.MethodGet, fmt.Sprintf("/api/owners/%d/drivers", owner.ID), "")

	require.Equal(t, nethttp.StatusOK, rec.Code)
	drivers := decode[[]httpadapter.DriverResponse](t, rec)
	assert.Empty(t, drivers)
}

func TestServer_GetNotifications_InvalidRole(t *testing.T) {
	e := newTestServer(t, "notifications_bad_role")

	rec := doRequest(e, nethttp.MethodGet, "/api/owners/notifications?userId=1&role=dispatcher", "")

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestServer_GetNotifications_MissingUserID(t *testing.T) {
	e := newTestServer(t, "notifications_missing_user")

	rec := doRequest(e, nethttp.MethodGet, "/api/owners/notifications?role=owner", "")

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestServer_PathParameterMustBeNumeric(t *testing.T) {
	e := newTestServer(t, "bad_path_param")

	rec := doRequest(e, nethttp.MethodGet, "/api/vehicles/abc", "")

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}
