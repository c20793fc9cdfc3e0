package seed

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	apptdomain "github.com/petcareops/vetclinic/internal/appointment/domain"
	"github.com/petcareops/vetclinic/internal/migration"
	ownerdomain "github.com/petcareops/vetclinic/internal/owner/domain"
	petdomain "github.com/petcareops/vetclinic/internal/pet/domain"
	vaccinedomain "github.com/petcareops/vetclinic/internal/vaccine/domain"
	vetdomain "github.com/petcareops/vetclinic/internal/veterinarian/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, migration.AutoMigrate(conn))
	return conn
}

func countRows(t *testing.T, conn *gorm.DB, model any) int64 {
	t.Helper()

	var count int64
	require.NoError(t, conn.Model(model).Count(&count).Error)
	return count
}

func TestRunIsIdempotent(t *testing.T) {
	conn := newTestDB(t)
	now := time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, Run(conn, now))
	require.NoError(t, Run(conn, now))

	assert.EqualValues(t, 1, countRows(t, conn, &vetdomain.Veterinarian{}))
	assert.EqualValues(t, 1, countRows(t, conn, &ownerdomain.Owner{}))
	assert.EqualValues(t, 1, countRows(t, conn, &petdomain.Pet{}))
	assert.EqualValues(t, 1, countRows(t, conn, &apptdomain.Appointment{}))
	assert.EqualValues(t, 1, countRows(t, conn, &vaccinedomain.Vaccine{}))
}

func TestGetOrCreateVeterinarianFallsBackToEmail(t *testing.T) {
	conn := newTestDB(t)

	vet := vetdomain.Veterinarian{
		LicenseNumber: "VET-8001",
		FirstName:     "Rhea",
		LastName:      "Voss",
		Email:         "rhea.voss@clinic.example",
		IsActive:      true,
	}
	created, err := GetOrCreateVeterinarian(conn, vet)
	require.NoError(t, err)

	// Same email under a different license resolves to the existing row.
	vet.LicenseNumber = "VET-8002"
	got, err := GetOrCreateVeterinarian(conn, vet)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.EqualValues(t, 1, countRows(t, conn, &vetdomain.Veterinarian{}))
}
