package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	apptdomain "github.com/petcareops/vetclinic/internal/appointment/domain"
	apptrepo "github.com/petcareops/vetclinic/internal/appointment/repository"
	"github.com/petcareops/vetclinic/internal/migration"
	"github.com/petcareops/vetclinic/internal/owner/domain"
	ownerrepo "github.com/petcareops/vetclinic/internal/owner/repository"
	petdomain "github.com/petcareops/vetclinic/internal/pet/domain"
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

func newTestService(t *testing.T, conn *gorm.DB) domain.Service {
	t.Helper()

	return New(Params{
		DB:           conn,
		Log:          zap.NewNop(),
		Repo:         ownerrepo.Provide(),
		Pets:         petrepo.Provide(),
		Appointments: apptrepo.Provide(),
	})
}

func validInput() domain.OwnerInput {
	return domain.OwnerInput{
		FirstName: "Sofia",
		LastName:  "Lindqvist",
		Email:     "sofia.lindqvist@example.com",
	}
}

func TestCreateUniqueEmail(t *testing.T) {
	conn := newTestDB(t)
	svc := newTestService(t, conn)

	first, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	_, err = svc.Create(context.Background(), validInput())
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestCreateValidation(t *testing.T) {
	conn := newTestDB(t)
	svc := newTestService(t, conn)

	noName := validInput()
	noName.FirstName = " "
	_, err := svc.Create(context.Background(), noName)
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	badEmail := validInput()
	badEmail.Email = "nope"
	_, err = svc.Create(context.Background(), badEmail)
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	badMethod := validInput()
	method := domain.PaymentMethod("bitcoin")
	badMethod.PreferredPaymentMethod = &method
	_, err = svc.Create(context.Background(), badMethod)
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentMethod)
}

func TestDeleteBlockedWhileOwnerHasPets(t *testing.T) {
	conn := newTestDB(t)
	svc := newTestService(t, conn)

	owner, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	pet := petdomain.Pet{Name: "Miso", Species: petdomain.SpeciesCat, Weight: 3.5, OwnerID: owner.ID}
	require.NoError(t, conn.Create(&pet).Error)

	err = svc.Delete(context.Background(), owner.ID)
	assert.ErrorIs(t, err, domain.ErrHasPets)

	require.NoError(t, conn.Delete(&pet).Error)
	require.NoError(t, svc.Delete(context.Background(), owner.ID))

	_, err = svc.GetByID(context.Background(), owner.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPetsAndAppointmentsAccessors(t *testing.T) {
	conn := newTestDB(t)
	svc := newTestService(t, conn)

	owner, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	pet := petdomain.Pet{Name: "Miso", Species: petdomain.SpeciesCat, Weight: 3.5, OwnerID: owner.ID}
	require.NoError(t, conn.Create(&pet).Error)

	vet := vetdomain.Veterinarian{
		LicenseNumber: "VET-4001",
		FirstName:     "Per",
		LastName:      "Olsen",
		Email:         "per.olsen@clinic.example",
		IsActive:      true,
	}
	require.NoError(t, conn.Create(&vet).Error)

	appt := apptdomain.Appointment{
		PetID:           pet.ID,
		VeterinarianID:  vet.ID,
		AppointmentDate: time.Date(2026, time.July, 1, 10, 0, 0, 0, time.UTC),
		Reason:          "checkup",
		Status:          apptdomain.StatusScheduled,
	}
	require.NoError(t, conn.Create(&appt).Error)

	pets, err := svc.Pets(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, pet.ID, pets[0].ID)

	appts, err := svc.Appointments(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, appt.ID, appts[0].ID)

	_, err = svc.Pets(context.Background(), owner.ID+100)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
