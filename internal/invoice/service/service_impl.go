package service

import (
	"context"
	"time"

	"github.com/petcareops/vetclinic/internal/invoice/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("invoice.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Invoice, error) {
	inv, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Invoice{}, err
	}
	if inv == nil {
		return domain.Invoice{}, domain.ErrNotFound
	}
	return *inv, nil
}

func (s *Service) Revenue(ctx context.Context, start, end time.Time) (domain.RevenueReport, error) {
	if end.Before(start) {
		return domain.RevenueReport{}, domain.ErrInvalidRange
	}

	rows, err := s.repo.RevenueBetween(ctx, s.db, start, end)
	if err != nil {
		return domain.RevenueReport{}, err
	}

	report := domain.RevenueReport{
		StartDate: start,
		EndDate:   end,
		ByStatus:  rows,
	}
	for _, row := range rows {
		report.TotalRevenue += row.Total
		report.InvoiceCount += row.Count
	}
	return report, nil
}
