package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"strconv"
	"time"

	"fleetmanager/cmd"
	httpadapter "fleetmanager/internal/adapters/in/http"
	"fleetmanager/internal/adapters/out/postgres/driverrepo"
	"fleetmanager/internal/adapters/out/postgres/notificationrepo"
	"fleetmanager/internal/adapters/out/postgres/ownerrepo"
	"fleetmanager/internal/adapters/out/postgres/vehiclerepo"
	"fleetmanager/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/time/rate"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateRaiseComplianceAlertsCommandHandler(),
		configs.ComplianceScanSchedule,
		complianceWarnWindow(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		ComplianceScanSchedule: goDotEnvVariable("COMPLIANCE_SCAN_SCHEDULE"),
		ComplianceWarnDays:     goDotEnvVariable("COMPLIANCE_WARN_DAYS"),
		RateLimitPerSecond:     goDotEnvVariable("RATE_LIMIT_PER_SECOND"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&ownerrepo.OwnerDTO{},
		&vehiclerepo.VehicleDTO{},
		&driverrepo.DriverDTO{},
		&notificationrepo.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func complianceWarnWindow(configs cmd.Config) time.Duration {
	days, err := strconv.Atoi(configs.ComplianceWarnDays)
	if err != nil || days <= 0 {
		log.Fatalf("Invalid COMPLIANCE_WARN_DAYS: %q", configs.ComplianceWarnDays)
	}
	return time.Duration(days) * 24 * time.Hour
}

func rateLimit(configs cmd.Config) rate.Limit {
	perSecond, err := strconv.ParseFloat(configs.RateLimitPerSecond, 64)
	if err != nil || perSecond <= 0 {
		log.Fatalf("Invalid RATE_LIMIT_PER_SECOND: %q", configs.RateLimitPerSecond)
	}
	return rate.Limit(perSecond)
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rateLimit(configs))))

	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOwner:   app.CreateCreateOwnerCommandHandler(),
		CreateVehicle: app.CreateCreateVehicleCommandHandler(),
		UpdateVehicle: app.CreateUpdateVehicleCommandHandler(),
		DeleteVehicle: app.CreateDeleteVehicleCommandHandler(),
		CreateDriver:  app.CreateCreateDriverCommandHandler(),
		DeleteDriver:  app.CreateDeleteDriverCommandHandler(),
		AssignVehicle: app.CreateAssignVehicleCommandHandler(),
		FreeVehicle:   app.CreateFreeVehicleCommandHandler(),

		GetVehicle:         app.CreateGetVehicleQueryHandler(),
		GetVehiclesByOwner: app.CreateGetVehiclesByOwnerQueryHandler(),
		GetFreeVehicles:    app.CreateGetFreeVehiclesQueryHandler(),
		GetDriversByOwner:  app.CreateGetDriversByOwnerQueryHandler(),
		GetDriverVehicle:   app.CreateGetDriverVehicleQueryHandler(),
		GetNotifications:   app.CreateGetNotificationsQueryHandler(),
	}, logger)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
