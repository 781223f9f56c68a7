package queries

import (
	"context"

	"fleetmanager/internal/core/domain/model/vehicle"

	"gorm.io/gorm"
)

// GetFreeVehiclesQueryHandler retrieves the free vehicles of an owner.
type GetFreeVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetFreeVehiclesQueryHandler creates a handler for free-vehicle queries.
func NewGetFreeVehiclesQueryHandler(db *gorm.DB) GetFreeVehiclesQueryHandler {
	return GetFreeVehiclesQueryHandler{db: db}
}

// Handle executes the query.
// Returns an empty slice when every vehicle of the owner is engaged; the
// transport layer decides how to present an empty pool.
func (h GetFreeVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetFreeVehiclesQuery,
) ([]VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]VehicleResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+vehicleColumns+`
		FROM vehicles
		WHERE owner_id = ? AND status = ?
		ORDER BY id
	`, query.OwnerID(), int(vehicle.StatusFree)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		response, scanErr := scanVehicleRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		vehicles = append(vehicles, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
