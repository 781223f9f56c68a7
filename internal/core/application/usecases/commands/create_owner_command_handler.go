package commands

import (
	"context"

	"fleetmanager/internal/core/domain/model/owner"
)

// CreateOwnerCommandHandler registers new fleet owners.
type CreateOwnerCommandHandler struct {
	uowFactory OwnerUoWFactory
}

// NewCreateOwnerCommandHandler creates a handler for owner registration.
func NewCreateOwnerCommandHandler(uowFactory OwnerUoWFactory) CreateOwnerCommandHandler {
	return CreateOwnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the owner registration command.
// Returns the persisted owner with its generated identifier.
func (h CreateOwnerCommandHandler) Handle(ctx context.Context, command CreateOwnerCommand) (*owner.Owner, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	aggOwner, err := owner.NewOwner(command.Name(), command.Email())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OwnerRepository().Add(ctx, aggOwner); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggOwner, nil
}
