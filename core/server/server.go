package server

import (
	"fmt"

	"delivery-availability/core/cache"
	"delivery-availability/core/config"
	"delivery-availability/core/constants"
	"delivery-availability/core/database"
	"delivery-availability/core/logger"
	"delivery-availability/core/middleware"
	"delivery-availability/core/queue"
	"delivery-availability/core/storage"
	"delivery-availability/modules/availability"
	"delivery-availability/modules/exception"
	exceptionService "delivery-availability/modules/exception/service"
	"delivery-availability/modules/export"
	exportService "delivery-availability/modules/export/service"
	"delivery-availability/modules/frequency"
	"delivery-availability/modules/location"
	"delivery-availability/modules/schedule"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run boots the API server and the background worker and blocks until the
// HTTP listener stops.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Server.LogLevel)

	if _, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	}); err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	db := database.GetDB()

	c, err := cache.Init(cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		// Resolution reads degrade to uncached; everything else still works.
		logger.Warn("cache unavailable", "error", err.Error())
		c = nil
	}

	queueCfg := queue.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	queue.InitClient(queueCfg)

	e := echo.New()
	e.HideBanner = true

	mw := middleware.New()
	e.Use(echoMiddleware.Recover())
	e.Use(mw.RequestID())
	e.Use(mw.RequestLogger())

	location.Init(e, db, mw)
	schedule.Init(e, db, mw, c)
	excSvc := exception.Init(e, db, mw)
	frequency.Init(e, db, mw)
	resolver := availability.Init(e, db, mw, c)

	uploader := storage.NewS3Uploader(cfg.AWS)
	exportSvc := export.Init(db, resolver, uploader)

	worker := queue.NewWorker(queueCfg)
	worker.Handle(constants.TaskExceptionPrune, exceptionService.NewPruneTaskHandler(excSvc))
	worker.Handle(constants.TaskExportMatrix, exportService.NewExportTaskHandler(exportSvc))
	if err := worker.Schedule(queue.PeriodicTask{Cronspec: "0 3 * * *", Type: constants.TaskExceptionPrune}); err != nil {
		return fmt.Errorf("schedule prune task: %w", err)
	}
	if err := worker.Schedule(queue.PeriodicTask{Cronspec: "30 3 * * *", Type: constants.TaskExportMatrix}); err != nil {
		return fmt.Errorf("schedule export task: %w", err)
	}
	go func() {
		if err := worker.Start(); err != nil {
			logger.Error("worker stopped", err)
		}
	}()
	defer worker.Shutdown()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "addr", addr)
	return e.Start(addr)
}
