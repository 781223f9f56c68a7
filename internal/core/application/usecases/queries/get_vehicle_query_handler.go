package queries

import (
	"context"

	"fleetmanager/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetVehicleQueryHandler retrieves one vehicle from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetVehicleQueryHandler struct {
	db *gorm.DB
}

// NewGetVehicleQueryHandler creates a handler for single-vehicle queries.
func NewGetVehicleQueryHandler(db *gorm.DB) GetVehicleQueryHandler {
	return GetVehicleQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ErrObjectNotFound when no vehicle has the requested ID.
func (h GetVehicleQueryHandler) Handle(ctx context.Context, query GetVehicleQuery) (VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return VehicleResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+vehicleColumns+`
		FROM vehicles
		WHERE id = ?
	`, query.VehicleID()).Rows()
	if err != nil {
		return VehicleResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return VehicleResponse{}, err
		}
		return VehicleResponse{}, errs.NewObjectNotFoundError("vehicleId", query.VehicleID())
	}

	response, err := scanVehicleRow(rows)
	if err != nil {
		return VehicleResponse{}, err
	}

	return response, rows.Err()
}
