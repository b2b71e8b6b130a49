package main

import (
	"moim/cmd/internal/cleanup"
	"moim/cmd/internal/config"
	"moim/cmd/internal/domain/sqlite"
	"moim/cmd/internal/domain/sqlite/repository"
	"moim/cmd/internal/routes"
	"moim/cmd/internal/service"
	"moim/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/robfig/cron/v3"
)

func main() {
	validate := validator.New()
	registerValidators(validate)

	if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	// Init SQLite
	db, err := sqlite.Init(cfg.DBPath)
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	// Getting repositories
	eventRepo := repository.NewEventRepository()
	seriesRepo := repository.NewRecurringEventRepository()
	locationRepo := repository.NewLocationRepository()

	// Getting services
	locationService := service.NewLocationService(locationRepo)
	eventService := service.NewEventService(db, eventRepo, seriesRepo, locationService, validate, cfg.Windows)

	// Getting routes
	eventRoutes := routes.NewEventDefault(eventService)

	// Housekeeping: purge aged soft-deleted rows
	runner := cron.New()
	purger := cleanup.NewPurger(db, cfg.PurgeRetentionDays)
	if err := purger.Schedule(runner, cfg.PurgeSchedule); err != nil {
		log.Fatal("failed to schedule purge job", err)
	}
	runner.Start()

	e := echo.New()
	e.Use(middleware.CORS())

	// Events
	e.GET("/api/events", eventRoutes.GetEvents)
	e.POST("/api/events", eventRoutes.CreateEvent)
	e.PUT("/api/events/:id", eventRoutes.UpdateEvent)
	e.DELETE("/api/events/:id", eventRoutes.DeleteEvent)

	err = e.Start(":" + cfg.Port)
	if err != nil {
		e.Logger.Fatal(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("wallclock", validators.IsWallClock)
	_ = validate.RegisterValidation("dateonly", validators.IsDateOnly)
	_ = validate.RegisterValidation("rrule", validators.IsRRule)
}
