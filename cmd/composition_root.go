package cmd

import (
	"log/slog"

	"dronedispatch/internal/adapters/out/postgres"
	"dronedispatch/internal/core/application/usecases/commands"
	"dronedispatch/internal/core/application/usecases/queries"
	"dronedispatch/internal/pkg/locker"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	loadLocker *locker.KeyedLocker
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		loadLocker: locker.NewKeyedLocker(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRegisterDroneCommandHandler() commands.RegisterDroneCommandHandler {
	var f commands.DroneUoWFactory = FuncDroneUoWFactory(func() commands.DroneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDroneCommandHandler(f)
}

func (c *CompositionRoot) CreateAcquireDroneCommandHandler() commands.AcquireDroneCommandHandler {
	var f commands.SessionUoWFactory = FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcquireDroneCommandHandler(f)
}

func (c *CompositionRoot) CreateLoadMedicationCommandHandler() commands.LoadMedicationCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoadMedicationCommandHandler(f, c.loadLocker)
}

func (c *CompositionRoot) CreateAuditBatteriesCommandHandler() commands.AuditBatteriesCommandHandler {
	var f commands.AuditUoWFactory = FuncAuditUoWFactory(func() commands.AuditUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAuditBatteriesCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetAllDronesQueryHandler() queries.GetAllDronesQueryHandler {
	return queries.NewGetAllDronesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoadedMedicationsQueryHandler() queries.GetLoadedMedicationsQueryHandler {
	return queries.NewGetLoadedMedicationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBatteryAuditsQueryHandler() queries.GetBatteryAuditsQueryHandler {
	return queries.NewGetBatteryAuditsQueryHandler(c.gormDB)
}

type FuncDroneUoWFactory func() commands.DroneUoW

func (f FuncDroneUoWFactory) Create() commands.DroneUoW {
	return f()
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncAuditUoWFactory func() commands.AuditUoW

func (f FuncAuditUoWFactory) Create() commands.AuditUoW {
	return f()
}
