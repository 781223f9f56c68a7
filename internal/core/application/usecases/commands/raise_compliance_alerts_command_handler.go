package commands

import (
	"context"
	"fmt"
	"time"

	"fleetmanager/internal/core/domain/model/notification"
	"fleetmanager/internal/core/domain/model/vehicle"
)

// AlertSuppressor deduplicates compliance alerts across scans. A suppressed
// key means an alert for that document was raised recently and should not
// be repeated yet.
type AlertSuppressor interface {
	Suppressed(key string) bool
	Suppress(key string)
}

// expiringDocument is one compliance document nearing its expiry.
type expiringDocument struct {
	label    string
	key      string
	validity time.Time
}

// RaiseComplianceAlertsCommandHandler scans the fleet for insurance and
// pollution certificates expiring within the warning window and appends a
// compliance entry to the notification log for each. Alerts name the owner
// and, when the vehicle is engaged, the driver. All entries of one scan are
// committed together; suppression keys are recorded only after the commit
// so a failed scan retries cleanly.
type RaiseComplianceAlertsCommandHandler struct {
	uowFactory ComplianceUoWFactory
	suppressor AlertSuppressor
}

// NewRaiseComplianceAlertsCommandHandler creates a handler for compliance scans.
func NewRaiseComplianceAlertsCommandHandler(
	uowFactory ComplianceUoWFactory, suppressor AlertSuppressor,
) RaiseComplianceAlertsCommandHandler {
	return RaiseComplianceAlertsCommandHandler{
		uowFactory: uowFactory,
		suppressor: suppressor,
	}
}

// Handle processes one compliance scan.
func (h RaiseComplianceAlertsCommandHandler) Handle(ctx context.Context, command RaiseComplianceAlertsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	deadline := command.Now().Add(command.WarnWindow())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicles, err := uow.VehicleRepository().GetAllExpiringWithin(ctx, deadline)
	if err != nil {
		return err
	}

	notificationRepo := uow.NotificationRepository()

	var raisedKeys []string
	for _, aggVehicle := range vehicles {
		for _, doc := range expiringDocuments(aggVehicle, deadline) {
			if h.suppressor.Suppressed(doc.key) {
				continue
			}

			ownerID := aggVehicle.OwnerID()
			vehicleID := aggVehicle.ID()

			entry, eerr := notification.NewEntry(
				notification.KindCompliance,
				fmt.Sprintf("%s for vehicle %s is valid until %s",
					doc.label, aggVehicle.RegdNo(), doc.validity.Format(validityDateLayout)),
				&ownerID,
				aggVehicle.DriverID(),
				&vehicleID,
				command.Now(),
			)
			if eerr != nil {
				return eerr
			}

			if eerr = notificationRepo.Add(ctx, entry); eerr != nil {
				return eerr
			}

			raisedKeys = append(raisedKeys, doc.key)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, key := range raisedKeys {
		h.suppressor.Suppress(key)
	}

	return nil
}

// expiringDocuments lists the compliance documents of a vehicle whose
// validity ends on or before the deadline. Vehicles without a recorded
// validity date are skipped rather than alerted on.
func expiringDocuments(aggVehicle *vehicle.Vehicle, deadline time.Time) []expiringDocument {
	var docs []expiringDocument

	if v := aggVehicle.InsuranceValidity(); !v.IsZero() && !v.After(deadline) {
		docs = append(docs, expiringDocument{
			label:    "insurance policy " + aggVehicle.InsuranceNo(),
			key:      fmt.Sprintf("insurance:%d", aggVehicle.ID()),
			validity: v,
		})
	}

	if v := aggVehicle.PUCCValidity(); !v.IsZero() && !v.After(deadline) {
		docs = append(docs, expiringDocument{
			label:    "pollution certificate " + aggVehicle.PUCCNo(),
			key:      fmt.Sprintf("pucc:%d", aggVehicle.ID()),
			validity: v,
		})
	}

	return docs
}
