package repository

import (
	"context"
	"errors"
	"time"

	"github.com/petcareops/vetclinic/internal/invoice/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := db.WithContext(ctx).
		Order("invoice_id").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := db.WithContext(ctx).Where("invoice_id = ?", id).First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *repo) FindByAppointment(ctx context.Context, db *gorm.DB, appointmentID int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := db.WithContext(ctx).Where("appointment_id = ?", appointmentID).First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, inv *domain.Invoice) error {
	return db.WithContext(ctx).Create(inv).Error
}

func (r *repo) RevenueBetween(ctx context.Context, db *gorm.DB, from, to time.Time) ([]domain.RevenueRow, error) {
	var rows []domain.RevenueRow
	err := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Select("payment_status, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS total").
		Where("issue_date >= ? AND issue_date <= ?", from, to).
		Group("payment_status").
		Order("payment_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
