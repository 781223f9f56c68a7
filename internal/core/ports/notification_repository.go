package ports

import (
	"context"

	"fleetmanager/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the
// append-only notification log. Entries are only ever appended by this
// service; reads go through the query side.
type NotificationRepository interface {
	// Add appends a log entry and records its generated identifier on the
	// aggregate.
	Add(ctx context.Context, aggregate *notification.Entry) error
}
