package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"dronedispatch/cmd"
	httpadapter "dronedispatch/internal/adapters/in/http"
	"dronedispatch/internal/adapters/out/postgres/auditrepo"
	"dronedispatch/internal/adapters/out/postgres/dronerepo"
	"dronedispatch/internal/adapters/out/postgres/medicationrepo"
	"dronedispatch/internal/adapters/out/postgres/sessionrepo"
	"dronedispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)
	mustPrepareSchema(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(
		app.CreateAuditBatteriesCommandHandler(),
		configs.AuditCronSpec,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		AuditCronSpec: goDotEnvVariable("AUDIT_CRON_SPEC"),
	}
	if config.AuditCronSpec == "" {
		config.AuditCronSpec = jobs.DefaultAuditCronSpec
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustPrepareSchema(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&dronerepo.DroneDTO{},
		&sessionrepo.SessionDTO{},
		&sessionrepo.MedicationLoadDTO{},
		&medicationrepo.MedicationDTO{},
		&auditrepo.BatteryAuditDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err = medicationrepo.Seed(context.Background(), gormDB); err != nil {
		log.Fatalf("Failed to seed medication catalog: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateRegisterDroneCommandHandler(),
		app.CreateAcquireDroneCommandHandler(),
		app.CreateLoadMedicationCommandHandler(),
		app.CreateGetAllDronesQueryHandler(),
		app.CreateGetLoadedMedicationsQueryHandler(),
		app.CreateGetBatteryAuditsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
