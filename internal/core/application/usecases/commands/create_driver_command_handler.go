package commands

import (
	"context"

	"fleetmanager/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler registers new drivers.
// The owner must already exist; the check and the insert share a transaction.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command.
// Returns the persisted driver with its generated identifier.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, command CreateDriverCommand) (*driver.Driver, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OwnerRepository().Get(ctx, command.OwnerID()); err != nil {
		return nil, err
	}

	aggDriver, err := driver.NewDriver(command.OwnerID(), command.Name(), command.LicenseNo(), command.Phone())
	if err != nil {
		return nil, err
	}

	if err = uow.DriverRepository().Add(ctx, aggDriver); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggDriver, nil
}
