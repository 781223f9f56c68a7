// Package notificationrepo provides data transfer objects and mapping
// functions for the append-only notification log.
package notificationrepo

import (
	"time"

	"fleetmanager/internal/core/domain/model/notification"
)

// NotificationDTO represents the database structure for persisting
// notification log entries. EventID is stored as its string form so the
// schema works identically on postgres and sqlite.
type NotificationDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	EventID   string    `gorm:"type:varchar(36);not null;uniqueIndex"`
	Kind      int       `gorm:"not null"`
	Message   string    `gorm:"type:text;not null"`
	OwnerID   *int64    `gorm:"index"`
	DriverID  *int64    `gorm:"index"`
	VehicleID *int64    `gorm:"index"`
	SentAt    time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(aggregate *notification.Entry) NotificationDTO {
	return NotificationDTO{
		ID:        aggregate.ID(),
		EventID:   aggregate.EventID().String(),
		Kind:      int(aggregate.Kind()),
		Message:   aggregate.Message(),
		OwnerID:   aggregate.OwnerID(),
		DriverID:  aggregate.DriverID(),
		VehicleID: aggregate.VehicleID(),
		SentAt:    aggregate.SentAt(),
	}
}
