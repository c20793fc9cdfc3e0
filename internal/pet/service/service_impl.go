package service

import (
	"context"
	"strings"

	apptdomain "github.com/petcareops/vetclinic/internal/appointment/domain"
	"github.com/petcareops/vetclinic/internal/clock"
	ownerdomain "github.com/petcareops/vetclinic/internal/owner/domain"
	"github.com/petcareops/vetclinic/internal/pet/domain"
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
	Owners       ownerdomain.Repository
	Appointments apptdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	clock        clock.Clock
	repo         domain.Repository
	owners       ownerdomain.Repository
	appointments apptdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("pet.service"),
		clock:        p.Clock,
		repo:         p.Repo,
		owners:       p.Owners,
		appointments: p.Appointments,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Pet, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Pet, error) {
	pet, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Pet{}, err
	}
	if pet == nil {
		return domain.Pet{}, domain.ErrNotFound
	}
	return *pet, nil
}

func (s *Service) Create(ctx context.Context, input domain.PetInput) (domain.Pet, error) {
	input, err := normalize(input)
	if err != nil {
		return domain.Pet{}, err
	}

	var pet domain.Pet
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owner, err := s.owners.FindByID(ctx, tx, input.OwnerID)
		if err != nil {
			return err
		}
		if owner == nil {
			return ownerdomain.ErrNotFound
		}

		if input.MicrochipNumber != nil {
			if existing, err := s.repo.FindByMicrochip(ctx, tx, *input.MicrochipNumber); err != nil {
				return err
			} else if existing != nil {
				return domain.ErrMicrochipExists
			}
		}

		pet = domain.Pet{}
		apply(&pet, input)

		if err := s.repo.Insert(ctx, tx, &pet); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Pet{}, err
	}

	s.log.Info("pet created",
		zap.Int64("pet_id", pet.ID),
		zap.Int64("owner_id", pet.OwnerID))
	return pet, nil
}

func (s *Service) Replace(ctx context.Context, id int64, input domain.PetInput) (domain.Pet, error) {
	input, err := normalize(input)
	if err != nil {
		return domain.Pet{}, err
	}

	var pet domain.Pet
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}

		owner, err := s.owners.FindByID(ctx, tx, input.OwnerID)
		if err != nil {
			return err
		}
		if owner == nil {
			return ownerdomain.ErrNotFound
		}

		if input.MicrochipNumber != nil {
			if other, err := s.repo.FindByMicrochip(ctx, tx, *input.MicrochipNumber); err != nil {
				return err
			} else if other != nil && other.ID != id {
				return domain.ErrMicrochipExists
			}
		}

		pet = *existing
		apply(&pet, input)

		if err := s.repo.Update(ctx, tx, &pet); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Pet{}, err
	}
	return pet, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pet, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if pet == nil {
			return domain.ErrNotFound
		}

		upcoming, err := s.appointments.HasUpcomingForPet(ctx, tx, id, s.clock.Now())
		if err != nil {
			return err
		}
		if upcoming {
			return domain.ErrHasUpcomingAppointments
		}

		return s.repo.Delete(ctx, tx, id)
	})
}

func apply(pet *domain.Pet, input domain.PetInput) {
	pet.Name = input.Name
	pet.Species = input.Species
	pet.Breed = input.Breed
	pet.BirthDate = input.BirthDate
	pet.Weight = input.Weight
	pet.OwnerID = input.OwnerID
	pet.MicrochipNumber = input.MicrochipNumber
	if input.IsNeutered != nil {
		pet.IsNeutered = *input.IsNeutered
	}
	pet.BloodType = input.BloodType
}

func normalize(input domain.PetInput) (domain.PetInput, error) {
	input.Name = strings.TrimSpace(input.Name)

	if input.Name == "" {
		return input, domain.ErrInvalidName
	}
	if !input.Species.Valid() {
		return input, domain.ErrInvalidSpecies
	}
	if input.Weight <= 0 {
		return input, domain.ErrInvalidWeight
	}
	return input, nil
}
