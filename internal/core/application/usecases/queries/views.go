// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"database/sql"
	"time"

	"fleetmanager/internal/core/domain/model/vehicle"
)

// VehicleResponse represents vehicle information in the read model.
// Status is rendered as its wire string; DriverID is nil for free vehicles.
type VehicleResponse struct {
	ID                int64
	OwnerID           int64
	RegdNo            string
	ChassisNo         string
	EngineNo          string
	FuelType          string
	InsuranceNo       string
	InsuranceValidity time.Time
	PUCCNo            string
	PUCCValidity      time.Time
	Documents         string
	Status            string
	DriverID          *int64
}

// DriverResponse represents driver information in the read model.
// VehicleClass is empty while the driver holds no vehicle.
type DriverResponse struct {
	ID           int64
	OwnerID      int64
	Name         string
	LicenseNo    string
	Phone        string
	VehicleClass string
}

// NotificationResponse represents one notification log entry in the read
// model, enriched with the names the recipient cares about. The joined
// fields are nil when the referenced party no longer exists.
type NotificationResponse struct {
	ID            int64
	EventID       string
	Kind          string
	Message       string
	OwnerName     *string
	DriverName    *string
	VehicleRegdNo *string
	SentAt        time.Time
}

// vehicleColumns is the select list shared by the vehicle read queries.
// Keep it in sync with scanVehicleRow.
const vehicleColumns = `
	id,
	owner_id,
	regd_no,
	chassis_no,
	engine_no,
	fuel_type,
	insurance_no,
	insurance_validity,
	pucc_no,
	pucc_validity,
	documents,
	status,
	driver_id`

func scanVehicleRow(rows *sql.Rows) (VehicleResponse, error) {
	var response VehicleResponse
	var status int
	var driverID sql.NullInt64

	err := rows.Scan(
		&response.ID,
		&response.OwnerID,
		&response.RegdNo,
		&response.ChassisNo,
		&response.EngineNo,
		&response.FuelType,
		&response.InsuranceNo,
		&response.InsuranceValidity,
		&response.PUCCNo,
		&response.PUCCValidity,
		&response.Documents,
		&status,
		&driverID,
	)
	if err != nil {
		return VehicleResponse{}, err
	}

	response.Status = vehicle.Status(status).String()
	if driverID.Valid {
		response.DriverID = &driverID.Int64
	}

	return response, nil
}
