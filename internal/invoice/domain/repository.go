package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// RevenueRow is one payment_status bucket of the revenue report.
type RevenueRow struct {
	PaymentStatus PaymentStatus `json:"payment_status"`
	Count         int64         `json:"count"`
	Total         float64       `json:"total"`
}

type Repository interface {
	List(ctx context.Context, db *gorm.DB) ([]Invoice, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Invoice, error)
	FindByAppointment(ctx context.Context, db *gorm.DB, appointmentID int64) (*Invoice, error)
	Insert(ctx context.Context, db *gorm.DB, inv *Invoice) error
	RevenueBetween(ctx context.Context, db *gorm.DB, from, to time.Time) ([]RevenueRow, error)
}
