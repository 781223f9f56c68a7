package cmd

import (
	"time"

	"fleetmanager/internal/adapters/out/postgres"
	"fleetmanager/internal/core/application/usecases/commands"
	"fleetmanager/internal/core/application/usecases/queries"
	"fleetmanager/internal/jobs"

	"gorm.io/gorm"
)

// alertSuppressionTTL bounds how often the compliance scan may repeat an
// alert for the same document. One alert per document per day.
const alertSuppressionTTL = 24 * time.Hour

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	suppressor *jobs.CacheAlertSuppressor
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		suppressor: jobs.NewCacheAlertSuppressor(alertSuppressionTTL),
	}
}

func (c *CompositionRoot) CreateCreateOwnerCommandHandler() commands.CreateOwnerCommandHandler {
	var f commands.OwnerUoWFactory = FuncOwnerUoWFactory(func() commands.OwnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOwnerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateVehicleCommandHandler() commands.UpdateVehicleCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteVehicleCommandHandler() commands.DeleteVehicleCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignVehicleCommandHandler() commands.AssignVehicleCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateFreeVehicleCommandHandler() commands.FreeVehicleCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFreeVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateRaiseComplianceAlertsCommandHandler() commands.RaiseComplianceAlertsCommandHandler {
	var f commands.ComplianceUoWFactory = FuncComplianceUoWFactory(func() commands.ComplianceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRaiseComplianceAlertsCommandHandler(f, c.suppressor)
}

func (c *CompositionRoot) CreateGetVehicleQueryHandler() queries.GetVehicleQueryHandler {
	return queries.NewGetVehicleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehiclesByOwnerQueryHandler() queries.GetVehiclesByOwnerQueryHandler {
	return queries.NewGetVehiclesByOwnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFreeVehiclesQueryHandler() queries.GetFreeVehiclesQueryHandler {
	return queries.NewGetFreeVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriversByOwnerQueryHandler() queries.GetDriversByOwnerQueryHandler {
	return queries.NewGetDriversByOwnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverVehicleQueryHandler() queries.GetDriverVehicleQueryHandler {
	return queries.NewGetDriverVehicleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

type FuncOwnerUoWFactory func() commands.OwnerUoW

func (f FuncOwnerUoWFactory) Create() commands.OwnerUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncComplianceUoWFactory func() commands.ComplianceUoW

func (f FuncComplianceUoWFactory) Create() commands.ComplianceUoW {
	return f()
}
