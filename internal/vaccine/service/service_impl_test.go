package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/petcareops/vetclinic/internal/migration"
	ownerdomain "github.com/petcareops/vetclinic/internal/owner/domain"
	petdomain "github.com/petcareops/vetclinic/internal/pet/domain"
	petrepo "github.com/petcareops/vetclinic/internal/pet/repository"
	"github.com/petcareops/vetclinic/internal/vaccine/domain"
	vaccinerepo "github.com/petcareops/vetclinic/internal/vaccine/repository"
	vetdomain "github.com/petcareops/vetclinic/internal/veterinarian/domain"
	vetrepo "github.com/petcareops/vetclinic/internal/veterinarian/repository"
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
		DB:            conn,
		Log:           zap.NewNop(),
		Repo:          vaccinerepo.Provide(),
		Pets:          petrepo.Provide(),
		Veterinarians: vetrepo.Provide(),
	})
}

func seedPet(t *testing.T, conn *gorm.DB) petdomain.Pet {
	t.Helper()

	owner := ownerdomain.Owner{FirstName: "Yuki", LastName: "Tan", Email: "yuki.tan@example.com"}
	require.NoError(t, conn.Create(&owner).Error)

	pet := petdomain.Pet{Name: "Haru", Species: petdomain.SpeciesDog, Weight: 18.5, OwnerID: owner.ID}
	require.NoError(t, conn.Create(&pet).Error)
	return pet
}

func TestVaccineCRUD(t *testing.T) {
	conn := newTestDB(t)
	svc := newTestService(t, conn)

	created, err := svc.Create(context.Background(), domain.VaccineInput{Name: "Distemper"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	_, err = svc.Create(context.Background(), domain.VaccineInput{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Distemper", got.Name)

	manufacturer := "Merck"
	updated, err := svc.Replace(context.Background(), created.ID, domain.VaccineInput{
		Name:         "Distemper",
		Manufacturer: &manufacturer,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Manufacturer)
	assert.Equal(t, "Merck", *updated.Manufacturer)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteBlockedWhileReferenced(t *testing.T) {
	conn := newTestDB(t)
	svc := newTestService(t, conn)
	pet := seedPet(t, conn)

	vaccine, err := svc.Create(context.Background(), domain.VaccineInput{Name: "Rabies"})
	require.NoError(t, err)

	_, err = svc.Vaccinate(context.Background(), domain.VaccinationRecordInput{
		PetID:           pet.ID,
		VaccineID:       vaccine.ID,
		VaccinationDate: time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), vaccine.ID)
	assert.ErrorIs(t, err, domain.ErrInUse)
}

func TestVaccinateRequiresReferences(t *testing.T) {
	conn := newTestDB(t)
	svc := newTestService(t, conn)
	pet := seedPet(t, conn)

	vaccine, err := svc.Create(context.Background(), domain.VaccineInput{Name: "Leptospirosis"})
	require.NoError(t, err)

	date := time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC)

	_, err = svc.Vaccinate(context.Background(), domain.VaccinationRecordInput{
		PetID:           pet.ID + 100,
		VaccineID:       vaccine.ID,
		VaccinationDate: date,
	})
	assert.ErrorIs(t, err, petdomain.ErrNotFound)

	_, err = svc.Vaccinate(context.Background(), domain.VaccinationRecordInput{
		PetID:           pet.ID,
		VaccineID:       vaccine.ID + 100,
		VaccinationDate: date,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	missingVet := int64(999)
	_, err = svc.Vaccinate(context.Background(), domain.VaccinationRecordInput{
		PetID:           pet.ID,
		VaccineID:       vaccine.ID,
		VaccinationDate: date,
		VeterinarianID:  &missingVet,
	})
	assert.ErrorIs(t, err, vetdomain.ErrNotFound)
}

func TestRecordsForPet(t *testing.T) {
	conn := newTestDB(t)
	svc := newTestService(t, conn)
	pet := seedPet(t, conn)

	vaccine, err := svc.Create(context.Background(), domain.VaccineInput{Name: "Bordetella"})
	require.NoError(t, err)

	_, err = svc.Vaccinate(context.Background(), domain.VaccinationRecordInput{
		PetID:           pet.ID,
		VaccineID:       vaccine.ID,
		VaccinationDate: time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	records, err := svc.RecordsForPet(context.Background(), pet.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, vaccine.ID, records[0].VaccineID)

	_, err = svc.RecordsForPet(context.Background(), pet.ID+100)
	assert.ErrorIs(t, err, petdomain.ErrNotFound)
}
