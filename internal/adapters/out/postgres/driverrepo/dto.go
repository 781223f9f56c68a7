// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence.
package driverrepo

import (
	"fleetmanager/internal/core/domain/model/driver"
)

// DriverDTO represents the database structure for persisting driver
// aggregates. VehicleClass carries the registration number of the held
// vehicle and is empty for free drivers; the version column guards updates.
type DriverDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	OwnerID      int64  `gorm:"not null;index"`
	Name         string `gorm:"type:varchar(255);not null"`
	LicenseNo    string `gorm:"type:varchar(64);not null;uniqueIndex"`
	Phone        string `gorm:"type:varchar(32)"`
	VehicleClass string `gorm:"type:varchar(32)"`
	Version      int64  `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:           aggregate.ID(),
		OwnerID:      aggregate.OwnerID(),
		Name:         aggregate.Name(),
		LicenseNo:    aggregate.LicenseNo(),
		Phone:        aggregate.Phone(),
		VehicleClass: aggregate.VehicleClass(),
		Version:      aggregate.Version(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	return driver.RestoreDriver(
		dto.ID,
		dto.OwnerID,
		dto.Name,
		dto.LicenseNo,
		dto.Phone,
		dto.VehicleClass,
		dto.Version,
	)
}
