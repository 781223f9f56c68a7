package queries

import (
	"context"
	"database/sql"

	"fleetmanager/internal/core/domain/model/vehicle"
	"fleetmanager/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDriverVehicleQueryHandler retrieves the vehicle a driver currently
// operates. Drives the lookup from the drivers table so a missing driver
// and a driver without a vehicle are distinguishable.
type GetDriverVehicleQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverVehicleQueryHandler creates a handler for driver vehicle queries.
func NewGetDriverVehicleQueryHandler(db *gorm.DB) GetDriverVehicleQueryHandler {
	return GetDriverVehicleQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ErrObjectNotFound when the driver does not exist and
// (nil, nil) when the driver exists but holds no vehicle.
func (h GetDriverVehicleQueryHandler) Handle(
	ctx context.Context,
	query GetDriverVehicleQuery,
) (*VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			v.id,
			v.owner_id,
			v.regd_no,
			v.chassis_no,
			v.engine_no,
			v.fuel_type,
			v.insurance_no,
			v.insurance_validity,
			v.pucc_no,
			v.pucc_validity,
			v.documents,
			v.status,
			v.driver_id
		FROM drivers d
		LEFT JOIN vehicles v ON v.driver_id = d.id
		WHERE d.id = ?
	`, query.DriverID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("driverId", query.DriverID())
	}

	var (
		id, ownerID, status                                     sql.NullInt64
		regdNo, chassisNo, engineNo, fuelType                   sql.NullString
		insuranceNo, puccNo, documents                          sql.NullString
		insuranceValidity, puccValidity                         sql.NullTime
		driverID                                                sql.NullInt64
	)

	err = rows.Scan(
		&id,
		&ownerID,
		&regdNo,
		&chassisNo,
		&engineNo,
		&fuelType,
		&insuranceNo,
		&insuranceValidity,
		&puccNo,
		&puccValidity,
		&documents,
		&status,
		&driverID,
	)
	if err != nil {
		return nil, err
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	// The driver exists but the join found no engaged vehicle.
	if !id.Valid {
		return nil, nil
	}

	response := VehicleResponse{
		ID:                id.Int64,
		OwnerID:           ownerID.Int64,
		RegdNo:            regdNo.String,
		ChassisNo:         chassisNo.String,
		EngineNo:          engineNo.String,
		FuelType:          fuelType.String,
		InsuranceNo:       insuranceNo.String,
		InsuranceValidity: insuranceValidity.Time,
		PUCCNo:            puccNo.String,
		PUCCValidity:      puccValidity.Time,
		Documents:         documents.String,
		Status:            vehicle.Status(status.Int64).String(),
	}
	if driverID.Valid {
		response.DriverID = &driverID.Int64
	}

	return &response, nil
}
