package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleetmanager/internal/core/domain/model/driver"
	"fleetmanager/internal/core/domain/model/notification"
	"fleetmanager/internal/pkg/errs"
)

var (
	// ErrVehicleUnavailable is returned when the requested vehicle does not
	// exist, is already engaged, or was claimed by a concurrent assignment.
	ErrVehicleUnavailable = errors.New("vehicle is unavailable")

	// ErrDriverAlreadyEngaged is returned when the driver already holds a
	// vehicle. A driver operates at most one vehicle at a time.
	ErrDriverAlreadyEngaged = errors.New("driver already has an assigned vehicle")
)

// AssignVehicleCommandHandler orchestrates the vehicle assignment process.
// Marks the vehicle engaged, records the vehicle on the driver, and appends
// an assignment entry to the notification log, all within a single
// transaction. Either every record reflects the assignment or none does.
//
// Concurrent assignments of the same vehicle are serialized by the version
// guard on the vehicle row: the loser's update writes nothing and the
// handler reports the vehicle as unavailable.
//
// Example:
//
//	handler := NewAssignVehicleCommandHandler(uowFactory)
//	cmd, _ := NewAssignVehicleCommand(vehicleID, driverID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrVehicleUnavailable):
//	    log.Println("Vehicle is taken")
//	case errors.Is(err, ErrDriverAlreadyEngaged):
//	    log.Println("Driver is busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignVehicleCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignVehicleCommandHandler creates a handler for vehicle assignment operations.
func NewAssignVehicleCommandHandler(uowFactory AssignmentUoWFactory) AssignVehicleCommandHandler {
	return AssignVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle assignment command.
func (h AssignVehicleCommandHandler) Handle(ctx context.Context, command AssignVehicleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	driverRepo := uow.DriverRepository()
	notificationRepo := uow.NotificationRepository()

	aggVehicle, err := vehicleRepo.Get(ctx, command.VehicleID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrVehicleUnavailable
	}
	if err != nil {
		return err
	}

	aggDriver, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return err
	}

	if err = aggVehicle.Assign(aggDriver.ID()); err != nil {
		return ErrVehicleUnavailable
	}

	if err = aggDriver.TakeVehicle(aggVehicle.RegdNo()); err != nil {
		if errors.Is(err, driver.ErrAlreadyHoldsVehicle) {
			return ErrDriverAlreadyEngaged
		}
		return err
	}

	if err = vehicleRepo.Update(ctx, aggVehicle); err != nil {
		// Lost the race: another assignment claimed the vehicle first.
		if errors.Is(err, errs.ErrVersionConflict) {
			return ErrVehicleUnavailable
		}
		return err
	}

	if err = driverRepo.Update(ctx, aggDriver); err != nil {
		if errors.Is(err, errs.ErrVersionConflict) {
			return ErrDriverAlreadyEngaged
		}
		return err
	}

	ownerID := aggVehicle.OwnerID()
	driverID := aggDriver.ID()
	vehicleID := aggVehicle.ID()

	entry, err := notification.NewEntry(
		notification.KindAssignment,
		fmt.Sprintf("vehicle %s assigned to driver %s", aggVehicle.RegdNo(), aggDriver.Name()),
		&ownerID,
		&driverID,
		&vehicleID,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = notificationRepo.Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
