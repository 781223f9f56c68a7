// Package driver contains the Driver aggregate. A driver belongs to one
// owner and holds at most one vehicle at a time; the vehicleClass field is
// the denormalized registration number of that vehicle, kept in step with the
// vehicle record by the assignment transaction.
package driver

import (
	"errors"

	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"
)

var (
	// ErrDriverIsNotConstructed is returned when using a Driver that was not
	// created via NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

	// ErrAlreadyHoldsVehicle is returned by TakeVehicle when the driver is
	// already linked to a vehicle. The assignment coordinator translates this
	// into its double-booking failure.
	ErrAlreadyHoldsVehicle = errors.New("driver already holds a vehicle")
)

// Driver represents a rostered driver.
type Driver struct {
	id      int64
	ownerID int64

	name      string
	licenseNo string
	phone     string

	// vehicleClass mirrors the registration number of the currently held
	// vehicle; empty when the driver is unassigned.
	vehicleClass string

	version int64

	guard guard.ConstructorGuard
}

// NewDriver creates an unassigned driver on the given owner's roster.
func NewDriver(ownerID int64, name, licenseNo, phone string) (*Driver, error) {
	if ownerID <= 0 {
		return nil, errs.NewValueIsRequiredError("ownerId")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Driver{
		ownerID:   ownerID,
		name:      name,
		licenseNo: licenseNo,
		phone:     phone,
		version:   1,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreDriver reconstructs a driver from its persisted state.
func RestoreDriver(id, ownerID int64, name, licenseNo, phone, vehicleClass string, version int64) (*Driver, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if ownerID <= 0 {
		return nil, errs.NewValueIsRequiredError("ownerId")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Driver{
		id:           id,
		ownerID:      ownerID,
		name:         name,
		licenseNo:    licenseNo,
		phone:        phone,
		vehicleClass: vehicleClass,
		version:      version,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the driver was properly constructed.
func (d *Driver) Validate() error {
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// SetID records the store-generated identifier after the first insert.
func (d *Driver) SetID(id int64) error {
	if d.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	d.id = id
	return nil
}

// TakeVehicle records the registration number of the vehicle the driver is
// being assigned. Fails with ErrAlreadyHoldsVehicle if the driver is already
// linked to one.
func (d *Driver) TakeVehicle(regdNo string) error {
	if regdNo == "" {
		return errs.NewValueIsRequiredError("regdNo")
	}
	if d.vehicleClass != "" {
		return ErrAlreadyHoldsVehicle
	}

	d.vehicleClass = regdNo
	return nil
}

// ReleaseVehicle clears the held-vehicle reference. Releasing an unassigned
// driver is a valid no-op.
func (d *Driver) ReleaseVehicle() {
	d.vehicleClass = ""
}

// RefreshVehicleClass overwrites the denormalized registration number after
// the held vehicle's registration changed.
func (d *Driver) RefreshVehicleClass(regdNo string) error {
	if regdNo == "" {
		return errs.NewValueIsRequiredError("regdNo")
	}
	d.vehicleClass = regdNo
	return nil
}

// HoldsVehicle reports whether the driver is currently linked to a vehicle.
func (d *Driver) HoldsVehicle() bool {
	return d.vehicleClass != ""
}

// ID returns the driver identifier.
func (d *Driver) ID() int64 { return d.id }

// OwnerID returns the owning account identifier.
func (d *Driver) OwnerID() int64 { return d.ownerID }

// Name returns the driver's display name.
func (d *Driver) Name() string { return d.name }

// LicenseNo returns the driving license number.
func (d *Driver) LicenseNo() string { return d.licenseNo }

// Phone returns the contact phone number.
func (d *Driver) Phone() string { return d.phone }

// VehicleClass returns the registration number of the held vehicle, or the
// empty string when unassigned.
func (d *Driver) VehicleClass() string { return d.vehicleClass }

// Version returns the optimistic-concurrency version of the loaded state.
func (d *Driver) Version() int64 { return d.version }
