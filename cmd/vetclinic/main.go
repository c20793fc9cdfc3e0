package main

import (
	"github.com/petcareops/vetclinic/internal/clock"
	"github.com/petcareops/vetclinic/internal/config"
	"github.com/petcareops/vetclinic/internal/logger"
	"github.com/petcareops/vetclinic/internal/migration"
	"github.com/petcareops/vetclinic/internal/server"
	"github.com/petcareops/vetclinic/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		clock.Module,
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}
