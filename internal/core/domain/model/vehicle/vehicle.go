package vehicle

import (
	"errors"
	"time"

	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"
)

var (
	// ErrVehicleIsNotConstructed is returned when using a Vehicle that was not
	// created via NewVehicle or RestoreVehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Vehicle is the aggregate root for a registered fleet vehicle.
// It carries the compliance record (registration, insurance, pollution
// certificate) and the assignment state machine: a vehicle is either free or
// engaged by exactly one driver.
//
// Invariants:
//   - driverID is set if and only if status is Engaged
//   - ownerID never changes after creation
//   - version increases on every persisted update (optimistic concurrency)
type Vehicle struct {
	id      int64
	ownerID int64

	regdNo    string
	chassisNo string
	engineNo  string
	fuelType  string

	insuranceNo       string
	insuranceValidity time.Time
	puccNo            string
	puccValidity      time.Time
	documents         string

	status   Status
	driverID *int64

	version int64

	guard guard.ConstructorGuard
}

// NewVehicle creates a new free vehicle owned by ownerID.
// The owner reference and registration number are required; compliance
// fields may be filled in later via the Change* methods.
func NewVehicle(
	ownerID int64,
	regdNo, chassisNo, engineNo, fuelType string,
	insuranceNo string, insuranceValidity time.Time,
	puccNo string, puccValidity time.Time,
	documents string,
) (*Vehicle, error) {
	if ownerID <= 0 {
		return nil, errs.NewValueIsRequiredError("ownerId")
	}
	if regdNo == "" {
		return nil, errs.NewValueIsRequiredError("regdNo")
	}

	return &Vehicle{
		ownerID:           ownerID,
		regdNo:            regdNo,
		chassisNo:         chassisNo,
		engineNo:          engineNo,
		fuelType:          fuelType,
		insuranceNo:       insuranceNo,
		insuranceValidity: insuranceValidity,
		puccNo:            puccNo,
		puccValidity:      puccValidity,
		documents:         documents,
		status:            StatusFree,
		version:           1,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// RestoreVehicle reconstructs a vehicle from its persisted state.
// Used by repositories; validates the status/driver invariant so corrupt
// rows are rejected at the boundary.
func RestoreVehicle(
	id, ownerID int64,
	regdNo, chassisNo, engineNo, fuelType string,
	insuranceNo string, insuranceValidity time.Time,
	puccNo string, puccValidity time.Time,
	documents string,
	status Status,
	driverID *int64,
	version int64,
) (*Vehicle, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if ownerID <= 0 {
		return nil, errs.NewValueIsRequiredError("ownerId")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveDriver(driverID != nil); err != nil {
		return nil, err
	}

	return &Vehicle{
		id:                id,
		ownerID:           ownerID,
		regdNo:            regdNo,
		chassisNo:         chassisNo,
		engineNo:          engineNo,
		fuelType:          fuelType,
		insuranceNo:       insuranceNo,
		insuranceValidity: insuranceValidity,
		puccNo:            puccNo,
		puccValidity:      puccValidity,
		documents:         documents,
		status:            status,
		driverID:          driverID,
		version:           version,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the vehicle was properly constructed and that the
// status/driver invariant holds.
func (v *Vehicle) Validate() error {
	if err := v.guard.Validate(ErrVehicleIsNotConstructed); err != nil {
		return err
	}
	if err := v.status.Validate(); err != nil {
		return err
	}
	return v.status.ValidateCanHaveDriver(v.driverID != nil)
}

// SetID records the store-generated identifier after the first insert.
// It can only be called once, on a vehicle that has no identity yet.
func (v *Vehicle) SetID(id int64) error {
	if v.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	v.id = id
	return nil
}

// Assign links the vehicle to a driver, transitioning it to Engaged.
// Fails if the vehicle is not free.
func (v *Vehicle) Assign(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsRequiredError("driverId")
	}

	next, err := v.status.Engage()
	if err != nil {
		return err
	}

	v.status = next
	v.driverID = &driverID
	return nil
}

// Release unlinks the vehicle from its driver, transitioning it to Free.
// Releasing an already-free vehicle is a valid no-op.
func (v *Vehicle) Release() error {
	next, err := v.status.Release()
	if err != nil {
		return err
	}

	v.status = next
	v.driverID = nil
	return nil
}

// ChangeRegdNo updates the registration number.
// Callers updating an engaged vehicle must also refresh the holding driver's
// denormalized vehicle class in the same transaction.
func (v *Vehicle) ChangeRegdNo(regdNo string) error {
	if regdNo == "" {
		return errs.NewValueIsRequiredError("regdNo")
	}
	v.regdNo = regdNo
	return nil
}

// ChangeFuelType updates the fuel type.
func (v *Vehicle) ChangeFuelType(fuelType string) {
	v.fuelType = fuelType
}

// ChangeInsurance updates the insurance policy number and validity.
func (v *Vehicle) ChangeInsurance(insuranceNo string, validity time.Time) {
	v.insuranceNo = insuranceNo
	v.insuranceValidity = validity
}

// ChangePUCC updates the pollution certificate number and validity.
func (v *Vehicle) ChangePUCC(puccNo string, validity time.Time) {
	v.puccNo = puccNo
	v.puccValidity = validity
}

// ChangeDocuments updates the stored document references.
func (v *Vehicle) ChangeDocuments(documents string) {
	v.documents = documents
}

// ID returns the vehicle identifier.
func (v *Vehicle) ID() int64 { return v.id }

// OwnerID returns the owning account identifier.
func (v *Vehicle) OwnerID() int64 { return v.ownerID }

// RegdNo returns the registration number.
func (v *Vehicle) RegdNo() string { return v.regdNo }

// ChassisNo returns the chassis number.
func (v *Vehicle) ChassisNo() string { return v.chassisNo }

// EngineNo returns the engine number.
func (v *Vehicle) EngineNo() string { return v.engineNo }

// FuelType returns the fuel type.
func (v *Vehicle) FuelType() string { return v.fuelType }

// InsuranceNo returns the insurance policy number.
func (v *Vehicle) InsuranceNo() string { return v.insuranceNo }

// InsuranceValidity returns the insurance expiry timestamp.
func (v *Vehicle) InsuranceValidity() time.Time { return v.insuranceValidity }

// PUCCNo returns the pollution certificate number.
func (v *Vehicle) PUCCNo() string { return v.puccNo }

// PUCCValidity returns the pollution certificate expiry timestamp.
func (v *Vehicle) PUCCValidity() time.Time { return v.puccValidity }

// Documents returns the stored document references.
func (v *Vehicle) Documents() string { return v.documents }

// Status returns the availability status.
func (v *Vehicle) Status() Status { return v.status }

// DriverID returns the holding driver's id, or nil when the vehicle is free.
func (v *Vehicle) DriverID() *int64 { return v.driverID }

// Version returns the optimistic-concurrency version of the loaded state.
func (v *Vehicle) Version() int64 { return v.version }
