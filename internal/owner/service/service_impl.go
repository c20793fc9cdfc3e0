package service

import (
	"context"
	"strings"

	apptdomain "github.com/petcareops/vetclinic/internal/appointment/domain"
	"github.com/petcareops/vetclinic/internal/owner/domain"
	petdomain "github.com/petcareops/vetclinic/internal/pet/domain"
	"github.com/petcareops/vetclinic/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	Repo         domain.Repository
	Pets         petdomain.Repository
	Appointments apptdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	repo         domain.Repository
	pets         petdomain.Repository
	appointments apptdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("owner.service"),
		repo:         p.Repo,
		pets:         p.Pets,
		appointments: p.Appointments,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Owner, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Owner, error) {
	owner, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Owner{}, err
	}
	if owner == nil {
		return domain.Owner{}, domain.ErrNotFound
	}
	return *owner, nil
}

func (s *Service) Create(ctx context.Context, input domain.OwnerInput) (domain.Owner, error) {
	input, err := normalize(input)
	if err != nil {
		return domain.Owner{}, err
	}

	var owner domain.Owner
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if existing, err := s.repo.FindByEmail(ctx, tx, input.Email); err != nil {
			return err
		} else if existing != nil {
			return domain.ErrEmailExists
		}

		owner = domain.Owner{}
		apply(&owner, input)

		if err := s.repo.Insert(ctx, tx, &owner); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Owner{}, err
	}

	s.log.Info("owner created", zap.Int64("owner_id", owner.ID))
	return owner, nil
}

func (s *Service) Replace(ctx context.Context, id int64, input domain.OwnerInput) (domain.Owner, error) {
	input, err := normalize(input)
	if err != nil {
		return domain.Owner{}, err
	}

	var owner domain.Owner
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}

		if other, err := s.repo.FindByEmail(ctx, tx, input.Email); err != nil {
			return err
		} else if other != nil && other.ID != id {
			return domain.ErrEmailExists
		}

		owner = *existing
		apply(&owner, input)

		if err := s.repo.Update(ctx, tx, &owner); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Owner{}, err
	}
	return owner, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owner, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if owner == nil {
			return domain.ErrNotFound
		}

		count, err := s.pets.CountByOwner(ctx, tx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrHasPets
		}

		return s.repo.Delete(ctx, tx, id)
	})
}

func (s *Service) Pets(ctx context.Context, id int64) ([]petdomain.Pet, error) {
	owner, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrNotFound
	}
	return s.pets.ListByOwner(ctx, s.db, id)
}

func (s *Service) Appointments(ctx context.Context, id int64) ([]apptdomain.Appointment, error) {
	owner, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrNotFound
	}
	return s.appointments.ListByOwner(ctx, s.db, id)
}

func apply(owner *domain.Owner, input domain.OwnerInput) {
	owner.FirstName = input.FirstName
	owner.LastName = input.LastName
	owner.Email = input.Email
	owner.Phone = input.Phone
	owner.Address = input.Address
	owner.EmergencyContact = input.EmergencyContact
	owner.PreferredPaymentMethod = input.PreferredPaymentMethod
}

func normalize(input domain.OwnerInput) (domain.OwnerInput, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(input.Email)

	if input.FirstName == "" || input.LastName == "" {
		return input, domain.ErrInvalidName
	}
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return input, domain.ErrInvalidEmail
	}
	if input.PreferredPaymentMethod != nil && !input.PreferredPaymentMethod.Valid() {
		return input, domain.ErrInvalidPaymentMethod
	}
	return input, nil
}
