package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	apptdomain "github.com/petcareops/vetclinic/internal/appointment/domain"
	apptrepo "github.com/petcareops/vetclinic/internal/appointment/repository"
	"github.com/petcareops/vetclinic/internal/clock"
	"github.com/petcareops/vetclinic/internal/migration"
	ownerdomain "github.com/petcareops/vetclinic/internal/owner/domain"
	ownerrepo "github.com/petcareops/vetclinic/internal/owner/repository"
	"github.com/petcareops/vetclinic/internal/pet/domain"
	petrepo "github.com/petcareops/vetclinic/internal/pet/repository"
	vetdomain "github.com/petcareops/vetclinic/internal/veterinarian/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, migration.AutoMigrate(conn))
	return conn
}

func newTestService(t *testing.T, conn *gorm.DB, clk clock.Clock) domain.Service {
	t.Helper()

	return New(Params{
		DB:           conn,
		Log:          zap.NewNop(),
		Clock:        clk,
		Repo:         petrepo.Provide(),
		Owners:       ownerrepo.Provide(),
		Appointments: apptrepo.Provide(),
	})
}

func seedOwner(t *testing.T, conn *gorm.DB) ownerdomain.Owner {
	t.Helper()

	owner := ownerdomain.Owner{
		FirstName: "Noah",
		LastName:  "Petit",
		Email:     "noah.petit@example.com",
	}
	require.NoError(t, conn.Create(&owner).Error)
	return owner
}

func validInput(ownerID int64) domain.PetInput {
	return domain.PetInput{
		Name:    "Pixel",
		Species: domain.SpeciesRabbit,
		Weight:  1.8,
		OwnerID: ownerID,
	}
}

func TestCreateRequiresOwner(t *testing.T) {
	conn := newTestDB(t)
	clk := clock.NewFakeClock(time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC))
	svc := newTestService(t, conn, clk)
	owner := seedOwner(t, conn)

	_, err := svc.Create(context.Background(), validInput(owner.ID+100))
	assert.ErrorIs(t, err, ownerdomain.ErrNotFound)

	pet, err := svc.Create(context.Background(), validInput(owner.ID))
	require.NoError(t, err)
	assert.NotZero(t, pet.ID)
}

func TestCreateValidation(t *testing.T) {
	conn := newTestDB(t)
	clk := clock.NewFakeClock(time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC))
	svc := newTestService(t, conn, clk)
	owner := seedOwner(t, conn)

	noName := validInput(owner.ID)
	noName.Name = "  "
	_, err := svc.Create(context.Background(), noName)
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	badSpecies := validInput(owner.ID)
	badSpecies.Species = domain.Species("dragon")
	_, err = svc.Create(context.Background(), badSpecies)
	assert.ErrorIs(t, err, domain.ErrInvalidSpecies)

	badWeight := validInput(owner.ID)
	badWeight.Weight = 0
	_, err = svc.Create(context.Background(), badWeight)
	assert.ErrorIs(t, err, domain.ErrInvalidWeight)
}

func TestMicrochipUniqueness(t *testing.T) {
	conn := newTestDB(t)
	clk := clock.NewFakeClock(time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC))
	svc := newTestService(t, conn, clk)
	owner := seedOwner(t, conn)

	chip := "985112003456789"
	first := validInput(owner.ID)
	first.MicrochipNumber = &chip
	created, err := svc.Create(context.Background(), first)
	require.NoError(t, err)

	second := validInput(owner.ID)
	second.Name = "Widget"
	second.MicrochipNumber = &chip
	_, err = svc.Create(context.Background(), second)
	assert.ErrorIs(t, err, domain.ErrMicrochipExists)

	// Replacing the holder with its own chip is fine.
	update := validInput(owner.ID)
	update.MicrochipNumber = &chip
	_, err = svc.Replace(context.Background(), created.ID, update)
	assert.NoError(t, err)
}

func TestDeleteBlockedByUpcomingAppointment(t *testing.T) {
	conn := newTestDB(t)
	clk := clock.NewFakeClock(time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC))
	svc := newTestService(t, conn, clk)
	owner := seedOwner(t, conn)

	pet, err := svc.Create(context.Background(), validInput(owner.ID))
	require.NoError(t, err)

	vet := vetdomain.Veterinarian{
		LicenseNumber: "VET-5001",
		FirstName:     "Ira",
		LastName:      "Kagan",
		Email:         "ira.kagan@clinic.example",
		IsActive:      true,
	}
	require.NoError(t, conn.Create(&vet).Error)

	appt := apptdomain.Appointment{
		PetID:           pet.ID,
		VeterinarianID:  vet.ID,
		AppointmentDate: clk.Now().Add(12 * time.Hour),
		Reason:          "nail trim",
		Status:          apptdomain.StatusScheduled,
	}
	require.NoError(t, conn.Create(&appt).Error)

	err = svc.Delete(context.Background(), pet.ID)
	assert.ErrorIs(t, err, domain.ErrHasUpcomingAppointments)

	clk.Advance(24 * time.Hour)
	require.NoError(t, svc.Delete(context.Background(), pet.ID))
}
