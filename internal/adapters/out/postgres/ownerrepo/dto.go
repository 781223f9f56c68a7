// Package ownerrepo provides data transfer objects and mapping functions
// for owner persistence.
package ownerrepo

import (
	"fleetmanager/internal/core/domain/model/owner"
)

// OwnerDTO represents the database structure for persisting owner accounts.
type OwnerDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"type:varchar(255);not null"`
	Email string `gorm:"type:varchar(255);not null;uniqueIndex"`
}

// TableName overrides GORM's default naming to use "owners".
func (OwnerDTO) TableName() string {
	return "owners"
}

func fromDomain(aggregate *owner.Owner) OwnerDTO {
	return OwnerDTO{
		ID:    aggregate.ID(),
		Name:  aggregate.Name(),
		Email: aggregate.Email(),
	}
}

func toDomain(dto OwnerDTO) (*owner.Owner, error) {
	return owner.RestoreOwner(dto.ID, dto.Name, dto.Email)
}
