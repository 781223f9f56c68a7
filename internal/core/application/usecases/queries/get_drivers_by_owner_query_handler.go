package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDriversByOwnerQueryHandler retrieves an owner's drivers.
type GetDriversByOwnerQueryHandler struct {
	db *gorm.DB
}

// NewGetDriversByOwnerQueryHandler creates a handler for owner driver queries.
func NewGetDriversByOwnerQueryHandler(db *gorm.DB) GetDriversByOwnerQueryHandler {
	return GetDriversByOwnerQueryHandler{db: db}
}

// Handle executes the query.
// Returns an empty slice when the owner has no drivers.
func (h GetDriversByOwnerQueryHandler) Handle(
	ctx context.Context,
	query GetDriversByOwnerQuery,
) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]DriverResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			name,
			license_no,
			phone,
			vehicle_class
		FROM drivers
		WHERE owner_id = ?
		ORDER BY name
	`, query.OwnerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response DriverResponse

		err = rows.Scan(
			&response.ID,
			&response.OwnerID,
			&response.Name,
			&response.LicenseNo,
			&response.Phone,
			&response.VehicleClass,
		)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
