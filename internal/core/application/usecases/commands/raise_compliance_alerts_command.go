package commands

import (
	"errors"
	"time"

	"fleetmanager/internal/pkg/errs"
	"fleetmanager/internal/pkg/guard"
)

var ErrRaiseComplianceAlertsCommandIsNotConstructed = errors.New(
	"RaiseComplianceAlertsCommand must be created via NewRaiseComplianceAlertsCommand constructor",
)

// RaiseComplianceAlertsCommand represents one scan of the fleet for
// documents expiring within the warning window.
type RaiseComplianceAlertsCommand struct { //nolint:recvcheck //using for validation
	now        time.Time
	warnWindow time.Duration

	guard guard.ConstructorGuard
}

// NewRaiseComplianceAlertsCommand creates a command for a compliance scan.
// The scan covers documents expiring between now and now plus warnWindow.
func NewRaiseComplianceAlertsCommand(now time.Time, warnWindow time.Duration) (RaiseComplianceAlertsCommand, error) {
	command := RaiseComplianceAlertsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setNow(now),
		command.setWarnWindow(warnWindow),
	); err != nil {
		return RaiseComplianceAlertsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRaiseComplianceAlertsCommandIsNotConstructed if validation fails.
func (c RaiseComplianceAlertsCommand) Validate() error {
	return c.guard.Validate(ErrRaiseComplianceAlertsCommandIsNotConstructed)
}

// Now returns the scan timestamp from the command.
func (c RaiseComplianceAlertsCommand) Now() time.Time {
	return c.now
}

// WarnWindow returns the warning window from the command.
func (c RaiseComplianceAlertsCommand) WarnWindow() time.Duration {
	return c.warnWindow
}

func (c *RaiseComplianceAlertsCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}

	c.now = now
	return nil
}

func (c *RaiseComplianceAlertsCommand) setWarnWindow(warnWindow time.Duration) error {
	if warnWindow <= 0 {
		return errs.NewValueIsInvalidError("warnWindow")
	}

	c.warnWindow = warnWindow
	return nil
}
