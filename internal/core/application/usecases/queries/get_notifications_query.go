package queries

import (
	"errors"

	"fleetmanager/internal/core/domain/model/notification"
	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves the notification feed of one actor, owner
// or driver, newest first.
type GetNotificationsQuery struct {
	userID int64
	role   notification.Role

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for an actor's notifications.
func NewGetNotificationsQuery(userID int64, role notification.Role) (GetNotificationsQuery, error) {
	if userID <= 0 {
		return GetNotificationsQuery{}, errs.NewValueIsInvalidError("userID")
	}
	if err := role.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}

	return GetNotificationsQuery{
		userID: userID,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNotificationsQueryIsNotConstructed if validation fails.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// UserID returns the actor ID from the query.
func (q GetNotificationsQuery) UserID() int64 {
	return q.userID
}

// Role returns the actor role from the query.
func (q GetNotificationsQuery) Role() notification.Role {
	return q.role
}
