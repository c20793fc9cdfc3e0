package domain

import (
	"context"
	"errors"
	"time"
)

// RevenueReport aggregates invoice totals over an issue_date range.
type RevenueReport struct {
	StartDate    time.Time    `json:"start_date"`
	EndDate      time.Time    `json:"end_date"`
	TotalRevenue float64      `json:"total_revenue"`
	InvoiceCount int64        `json:"invoice_count"`
	ByStatus     []RevenueRow `json:"by_status"`
}

type Service interface {
	List(ctx context.Context) ([]Invoice, error)
	GetByID(ctx context.Context, id int64) (Invoice, error)
	Revenue(ctx context.Context, start, end time.Time) (RevenueReport, error)
}

var (
	ErrNotFound     = errors.New("invoice_not_found")
	ErrInvalidRange = errors.New("invalid_date_range")
)
