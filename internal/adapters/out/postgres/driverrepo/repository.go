package driverrepo

import (
	"context"
	"errors"

	"fleetmanager/internal/core/domain/model/driver"
	"fleetmanager/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate interface{})
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver and records the generated ID on the aggregate.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
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

// Update saves an existing driver, guarded by the version the aggregate was
// loaded with. Returns errs.ErrVersionConflict on a lost race.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]interface{}{
			"owner_id":      dto.OwnerID,
			"name":          dto.Name,
			"license_no":    dto.LicenseNo,
			"phone":         dto.Phone,
			"vehicle_class": dto.VehicleClass,
			"version":       dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionConflictError("driver", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a driver row.
func (r *GormDriverRepository) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}

	result := r.db.WithContext(ctx).Delete(&DriverDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", id)
	}

	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id int64) (*driver.Driver, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
