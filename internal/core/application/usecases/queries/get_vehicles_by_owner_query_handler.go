package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetVehiclesByOwnerQueryHandler retrieves an owner's full fleet.
type GetVehiclesByOwnerQueryHandler struct {
	db *gorm.DB
}

// NewGetVehiclesByOwnerQueryHandler creates a handler for owner fleet queries.
func NewGetVehiclesByOwnerQueryHandler(db *gorm.DB) GetVehiclesByOwnerQueryHandler {
	return GetVehiclesByOwnerQueryHandler{db: db}
}

// Handle executes the query.
// Returns an empty slice when the owner has no vehicles.
func (h GetVehiclesByOwnerQueryHandler) Handle(
	ctx context.Context,
	query GetVehiclesByOwnerQuery,
) ([]VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]VehicleResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+vehicleColumns+`
		FROM vehicles
		WHERE owner_id = ?
		ORDER BY id
	`, query.OwnerID()).Rows()
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
