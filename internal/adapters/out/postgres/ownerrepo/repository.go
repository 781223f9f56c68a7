package ownerrepo

import (
	"context"
	"errors"

	"fleetmanager/internal/core/domain/model/owner"
	"fleetmanager/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOwnerRepository implements OwnerRepository using GORM.
type GormOwnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate interface{})
}

// NewGormOwnerRepository creates a new GORM owner repository.
func NewGormOwnerRepository(db *gorm.DB, tracker aggregateTracker) *GormOwnerRepository {
	return &GormOwnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new owner and records the generated ID on the aggregate.
func (r *GormOwnerRepository) Add(ctx context.Context, aggregate *owner.Owner) error {
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

// Get retrieves an owner by ID.
func (r *GormOwnerRepository) Get(ctx context.Context, id int64) (*owner.Owner, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}

	var dto OwnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("owner", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
