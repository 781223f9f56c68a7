package vehiclerepo

import (
	"context"
	"errors"
	"time"

	"fleetmanager/internal/core/domain/model/vehicle"
	"fleetmanager/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate interface{})
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle and records the generated ID on the aggregate.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if aggregate.ID() == 0 {
		if err := aggregate.SetID(dto.ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing vehicle, guarded by the version the aggregate was
// loaded with. When the row changed since the read the update matches zero
// rows and the caller gets errs.ErrVersionConflict; this is what serializes
// two assignments racing for the same vehicle.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]interface{}{
			"owner_id":           dto.OwnerID,
			"regd_no":            dto.RegdNo,
			"chassis_no":         dto.ChassisNo,
			"engine_no":          dto.EngineNo,
			"fuel_type":          dto.FuelType,
			"insurance_no":       dto.InsuranceNo,
			"insurance_validity": dto.InsuranceValidity,
			"pucc_no":            dto.PUCCNo,
			"pucc_validity":      dto.PUCCValidity,
			"documents":          dto.Documents,
			"status":             dto.Status,
			"driver_id":          dto.DriverID,
			"version":            dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionConflictError("vehicle", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a vehicle row.
func (r *GormVehicleRepository) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}

	result := r.db.WithContext(ctx).Delete(&VehicleDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", id)
	}

	return nil
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id int64) (*vehicle.Vehicle, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByDriver retrieves the vehicle currently engaged by the given driver.
func (r *GormVehicleRepository) GetByDriver(ctx context.Context, driverID int64) (*vehicle.Vehicle, error) {
	if driverID <= 0 {
		return nil, errs.NewValueIsInvalidError("driverID")
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "driver_id = ?", driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driverId", driverID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllExpiringWithin retrieves vehicles whose insurance or pollution
// certificate validity ends on or before the deadline.
func (r *GormVehicleRepository) GetAllExpiringWithin(ctx context.Context, deadline time.Time) ([]*vehicle.Vehicle, error) {
	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).
		Where("insurance_validity <= ? OR pucc_validity <= ?", deadline, deadline).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}
