package main

import (
	"context"
	"log"
	"strings"

	"gorm.io/gorm"

	"campusai-be/internal/bootstrap"
	"campusai-be/internal/config"
	"campusai-be/internal/pkg/logger"
	"campusai-be/internal/server"
	"campusai-be/internal/tracer"
	"campusai-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()
	if missing := cfg.Validate(); len(missing) > 0 {
		log.Fatalf("Missing required configuration: %s", strings.Join(missing, ", "))
	}

	appLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer appLogger.Sync()

	var gormDB *gorm.DB
	if cfg.App.StorageDriver == "postgres" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Fatalf("Unable to connect to GORM DB: %v", err)
		}
		gormDB = db
	}

	container, err := bootstrap.NewContainer(cfg, appLogger, gormDB)
	if err != nil {
		log.Fatalf("Failed to build container: %v", err)
	}

	if err := container.ConsumerService.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start contact consumer: %v", err)
	}

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
