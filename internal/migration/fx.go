package migration

import (
	apptdomain "github.com/petcareops/vetclinic/internal/appointment/domain"
	"github.com/petcareops/vetclinic/internal/config"
	invoicedomain "github.com/petcareops/vetclinic/internal/invoice/domain"
	medrecdomain "github.com/petcareops/vetclinic/internal/medicalrecord/domain"
	ownerdomain "github.com/petcareops/vetclinic/internal/owner/domain"
	petdomain "github.com/petcareops/vetclinic/internal/pet/domain"
	vaccinedomain "github.com/petcareops/vetclinic/internal/vaccine/domain"
	vetdomain "github.com/petcareops/vetclinic/internal/veterinarian/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, log *zap.Logger) error {
		if cfg.DBType != "postgres" {
			// The SQL chain is postgres-only; sqlite environments get the
			// final schema directly.
			log.Warn("non-postgres database, falling back to AutoMigrate",
				zap.String("db_type", cfg.DBType))
			return AutoMigrate(conn)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)

// AutoMigrate creates the end state of the migration chain from the gorm
// models. Used for sqlite in development and tests.
func AutoMigrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&vetdomain.Veterinarian{},
		&ownerdomain.Owner{},
		&petdomain.Pet{},
		&apptdomain.Appointment{},
		&medrecdomain.MedicalRecord{},
		&vaccinedomain.Vaccine{},
		&vaccinedomain.VaccinationRecord{},
		&invoicedomain.Invoice{},
	)
}
