package service

import (
	"context"
	"strings"

	apptdomain "github.com/petcareops/vetclinic/internal/appointment/domain"
	"github.com/petcareops/vetclinic/internal/clock"
	"github.com/petcareops/vetclinic/internal/veterinarian/domain"
	"github.com/petcareops/vetclinic/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	Clock        clock.Clock
	Repo         domain.Repository
	Appointments apptdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	clock        clock.Clock
	repo         domain.Repository
	appointments apptdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("veterinarian.service"),
		clock:        p.Clock,
		repo:         p.Repo,
		appointments: p.Appointments,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Veterinarian, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Veterinarian, error) {
	vet, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Veterinarian{}, err
	}
	if vet == nil {
		return domain.Veterinarian{}, domain.ErrNotFound
	}
	return *vet, nil
}

func (s *Service) Create(ctx context.Context, input domain.VeterinarianInput) (domain.Veterinarian, error) {
	input, err := normalize(input)
	if err != nil {
		return domain.Veterinarian{}, err
	}

	var vet domain.Veterinarian
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if existing, err := s.repo.FindByEmail(ctx, tx, input.Email); err != nil {
			return err
		} else if existing != nil {
			return domain.ErrEmailExists
		}
		if existing, err := s.repo.FindByLicense(ctx, tx, input.LicenseNumber); err != nil {
			return err
		} else if existing != nil {
			return domain.ErrLicenseExists
		}

		vet = domain.Veterinarian{IsActive: true}
		apply(&vet, input)

		if err := s.repo.Insert(ctx, tx, &vet); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Veterinarian{}, err
	}

	s.log.Info("veterinarian created",
		zap.Int64("veterinarian_id", vet.ID),
		zap.String("license_number", vet.LicenseNumber),
	)
	return vet, nil
}

func (s *Service) Replace(ctx context.Context, id int64, input domain.VeterinarianInput) (domain.Veterinarian, error) {
	input, err := normalize(input)
	if err != nil {
		return domain.Veterinarian{}, err
	}

	var vet domain.Veterinarian
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
		if other, err := s.repo.FindByLicense(ctx, tx, input.LicenseNumber); err != nil {
			return err
		} else if other != nil && other.ID != id {
			return domain.ErrLicenseExists
		}

		vet = *existing
		apply(&vet, input)

		if err := s.repo.Update(ctx, tx, &vet); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Veterinarian{}, err
	}
	return vet, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vet, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if vet == nil {
			return domain.ErrNotFound
		}

		upcoming, err := s.appointments.HasUpcomingForVeterinarian(ctx, tx, id, s.clock.Now())
		if err != nil {
			return err
		}
		if upcoming {
			return domain.ErrHasUpcomingAppointments
		}

		return s.repo.Delete(ctx, tx, id)
	})
}

func apply(vet *domain.Veterinarian, input domain.VeterinarianInput) {
	vet.LicenseNumber = input.LicenseNumber
	vet.FirstName = input.FirstName
	vet.LastName = input.LastName
	vet.Email = input.Email
	vet.Phone = input.Phone
	vet.Specialization = input.Specialization
	vet.HireDate = input.HireDate
	if input.IsActive != nil {
		vet.IsActive = *input.IsActive
	}
	vet.ConsultationFee = input.ConsultationFee
	vet.Rating = input.Rating
}

func normalize(input domain.VeterinarianInput) (domain.VeterinarianInput, error) {
	input.LicenseNumber = strings.TrimSpace(input.LicenseNumber)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(input.Email)

	if input.LicenseNumber == "" {
		return input, domain.ErrInvalidLicense
	}
	if input.FirstName == "" || input.LastName == "" {
		return input, domain.ErrInvalidName
	}
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return input, domain.ErrInvalidEmail
	}
	if input.ConsultationFee < 0 {
		return input, domain.ErrInvalidFee
	}
	if input.Rating != nil && (*input.Rating < 0 || *input.Rating > 5) {
		return input, domain.ErrInvalidRating
	}
	return input, nil
}
