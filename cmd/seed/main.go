package main

import (
	"time"

	"github.com/petcareops/vetclinic/internal/config"
	"github.com/petcareops/vetclinic/internal/logger"
	"github.com/petcareops/vetclinic/internal/migration"
	"github.com/petcareops/vetclinic/internal/seed"
	"github.com/petcareops/vetclinic/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	dialector, err := db.Dialect(cfg)
	if err != nil {
		log.Fatal("resolve database dialect", zap.Error(err))
	}

	conn, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}

	if cfg.DBType == "postgres" {
		sqlDB, err := conn.DB()
		if err != nil {
			log.Fatal("database handle", zap.Error(err))
		}
		if err := migration.RunMigrations(sqlDB); err != nil {
			log.Fatal("run migrations", zap.Error(err))
		}
	} else {
		if err := migration.AutoMigrate(conn); err != nil {
			log.Fatal("auto migrate", zap.Error(err))
		}
	}

	if err := seed.Run(conn, time.Now().UTC()); err != nil {
		log.Fatal("seed sample data", zap.Error(err))
	}

	log.Info("seed complete")
}
