package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	apptdomain "github.com/petcareops/vetclinic/internal/appointment/domain"
	"github.com/petcareops/vetclinic/internal/invoice/domain"
	invoicerepo "github.com/petcareops/vetclinic/internal/invoice/repository"
	"github.com/petcareops/vetclinic/internal/migration"
	ownerdomain "github.com/petcareops/vetclinic/internal/owner/domain"
	petdomain "github.com/petcareops/vetclinic/internal/pet/domain"
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
		DB:   conn,
		Log:  zap.NewNop(),
		Repo: invoicerepo.Provide(),
	})
}

func seedInvoice(t *testing.T, conn *gorm.DB, suffix string, issue time.Time, total float64, status domain.PaymentStatus) domain.Invoice {
	t.Helper()

	vet := vetdomain.Veterinarian{
		LicenseNumber: "VET-7" + suffix,
		FirstName:     "Tess",
		LastName:      "Nolan",
		Email:         "tess" + suffix + "@clinic.example",
		IsActive:      true,
	}
	require.NoError(t, conn.Create(&vet).Error)

	owner := ownerdomain.Owner{FirstName: "Ben", LastName: "Abara", Email: "ben" + suffix + "@example.com"}
	require.NoError(t, conn.Create(&owner).Error)

	pet := petdomain.Pet{Name: "P" + suffix, Species: petdomain.SpeciesDog, Weight: 7, OwnerID: owner.ID}
	require.NoError(t, conn.Create(&pet).Error)

	appt := apptdomain.Appointment{
		PetID:           pet.ID,
		VeterinarianID:  vet.ID,
		AppointmentDate: issue,
		Reason:          "visit",
		Status:          apptdomain.StatusCompleted,
	}
	require.NoError(t, conn.Create(&appt).Error)

	inv := domain.Invoice{
		AppointmentID: appt.ID,
		InvoiceNumber: domain.NumberFor(appt.ID, issue),
		IssueDate:     issue,
		Subtotal:      total,
		TotalAmount:   total,
		PaymentStatus: status,
	}
	require.NoError(t, conn.Create(&inv).Error)
	return inv
}

func TestGetByID(t *testing.T) {
	conn := newTestDB(t)
	svc := newTestService(t, conn)

	inv := seedInvoice(t, conn, "01", time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC), 120, domain.PaymentPaid)

	got, err := svc.GetByID(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, inv.InvoiceNumber, got.InvoiceNumber)

	_, err = svc.GetByID(context.Background(), inv.ID+100)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRevenueAggregatesByStatus(t *testing.T) {
	conn := newTestDB(t)
	svc := newTestService(t, conn)

	seedInvoice(t, conn, "11", time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC), 100, domain.PaymentPaid)
	seedInvoice(t, conn, "12", time.Date(2026, time.April, 2, 10, 0, 0, 0, time.UTC), 50, domain.PaymentPending)
	// Outside the requested range.
	seedInvoice(t, conn, "13", time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC), 999, domain.PaymentPaid)

	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.April, 30, 23, 59, 59, 0, time.UTC)

	report, err := svc.Revenue(context.Background(), start, end)
	require.NoError(t, err)
	assert.EqualValues(t, 2, report.InvoiceCount)
	assert.InDelta(t, 150, report.TotalRevenue, 0.001)
	assert.Len(t, report.ByStatus, 2)
}

func TestRevenueRejectsInvertedRange(t *testing.T) {
	conn := newTestDB(t)
	svc := newTestService(t, conn)

	start := time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Revenue(context.Background(), start, end)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}
