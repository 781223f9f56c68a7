// Package vehiclerepo provides data transfer objects and mapping functions
// for vehicle persistence. Implements the repository pattern for the vehicle
// aggregate, handling conversion between domain entities and database rows.
package vehiclerepo

import (
	"time"

	"fleetmanager/internal/core/domain/model/vehicle"
)

// VehicleDTO represents the database structure for persisting vehicle
// aggregates. The version column backs the optimistic concurrency guard on
// updates; status and driver_id together encode the assignment state.
type VehicleDTO struct {
	ID                int64     `gorm:"primaryKey;autoIncrement"`
	OwnerID           int64     `gorm:"not null;index"`
	RegdNo            string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	ChassisNo         string    `gorm:"type:varchar(64)"`
	EngineNo          string    `gorm:"type:varchar(64)"`
	FuelType          string    `gorm:"type:varchar(32)"`
	InsuranceNo       string    `gorm:"type:varchar(64)"`
	InsuranceValidity time.Time `gorm:"index"`
	PUCCNo            string    `gorm:"type:varchar(64);column:pucc_no"`
	PUCCValidity      time.Time `gorm:"index;column:pucc_validity"`
	Documents         string    `gorm:"type:text"`
	Status            int       `gorm:"not null;index"`
	DriverID          *int64    `gorm:"index"`
	Version           int64     `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:                aggregate.ID(),
		OwnerID:           aggregate.OwnerID(),
		RegdNo:            aggregate.RegdNo(),
		ChassisNo:         aggregate.ChassisNo(),
		EngineNo:          aggregate.EngineNo(),
		FuelType:          aggregate.FuelType(),
		InsuranceNo:       aggregate.InsuranceNo(),
		InsuranceValidity: aggregate.InsuranceValidity(),
		PUCCNo:            aggregate.PUCCNo(),
		PUCCValidity:      aggregate.PUCCValidity(),
		Documents:         aggregate.Documents(),
		Status:            int(aggregate.Status()),
		DriverID:          aggregate.DriverID(),
		Version:           aggregate.Version(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	return vehicle.RestoreVehicle(
		dto.ID,
		dto.OwnerID,
		dto.RegdNo,
		dto.ChassisNo,
		dto.EngineNo,
		dto.FuelType,
		dto.InsuranceNo,
		dto.InsuranceValidity,
		dto.PUCCNo,
		dto.PUCCValidity,
		dto.Documents,
		vehicle.Status(dto.Status),
		dto.DriverID,
		dto.Version,
	)
}
