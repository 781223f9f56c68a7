package queries

import (
	"context"
	"database/sql"

	"fleetmanager/internal/core/domain/model/notification"

	"gorm.io/gorm"
)

// GetNotificationsQueryHandler retrieves an actor's notification feed.
// Entries come back newest first. Each row is enriched with the names of
// the other parties so the feed renders without further lookups: owners
// see the driver's name, drivers see the owner's name, and both see the
// vehicle registration number.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for notification queries.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the query.
// Returns an empty slice when no entries reference the actor.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]NotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := "n.owner_id = ?"
	if query.Role() == notification.RoleDriver {
		filter = "n.driver_id = ?"
	}

	entries := make([]NotificationResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			n.id,
			n.event_id,
			n.kind,
			n.message,
			n.sent_at,
			o.name,
			d.name,
			v.regd_no
		FROM notifications n
		LEFT JOIN owners o ON o.id = n.owner_id
		LEFT JOIN drivers d ON d.id = n.driver_id
		LEFT JOIN vehicles v ON v.id = n.vehicle_id
		WHERE `+filter+`
		ORDER BY n.sent_at DESC, n.id DESC
	`, query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response NotificationResponse
		var kind int
		var ownerName, driverName, regdNo sql.NullString

		err = rows.Scan(
			&response.ID,
			&response.EventID,
			&kind,
			&response.Message,
			&response.SentAt,
			&ownerName,
			&driverName,
			&regdNo,
		)
		if err != nil {
			return nil, err
		}

		response.Kind = notification.Kind(kind).String()
		if ownerName.Valid {
			response.OwnerName = &ownerName.String
		}
		if driverName.Valid {
			response.DriverName = &driverName.String
		}
		if regdNo.Valid {
			response.VehicleRegdNo = &regdNo.String
		}

		entries = append(entries, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
