package service

import (
	"context"
	"strings"

	petdomain "github.com/petcareops/vetclinic/internal/pet/domain"
	"github.com/petcareops/vetclinic/internal/vaccine/domain"
	vetdomain "github.com/petcareops/vetclinic/internal/veterinarian/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB            *gorm.DB
	Log           *zap.Logger
	Repo          domain.Repository
	Pets          petdomain.Repository
	Veterinarians vetdomain.Repository
}

type Service struct {
	db            *gorm.DB
	log           *zap.Logger
	repo          domain.Repository
	pets          petdomain.Repository
	veterinarians vetdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:            p.DB,
		log:           p.Log.Named("vaccine.service"),
		repo:          p.Repo,
		pets:          p.Pets,
		veterinarians: p.Veterinarians,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Vaccine, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Vaccine, error) {
	v, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Vaccine{}, err
	}
	if v == nil {
		return domain.Vaccine{}, domain.ErrNotFound
	}
	return *v, nil
}

func (s *Service) Create(ctx context.Context, input domain.VaccineInput) (domain.Vaccine, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return domain.Vaccine{}, domain.ErrInvalidName
	}

	v := domain.Vaccine{
		Name:              input.Name,
		Manufacturer:      input.Manufacturer,
		SpeciesApplicable: input.SpeciesApplicable,
	}
	if err := s.repo.Insert(ctx, s.db, &v); err != nil {
		return domain.Vaccine{}, err
	}

	s.log.Info("vaccine created", zap.Int64("vaccine_id", v.ID), zap.String("name", v.Name))
	return v, nil
}

func (s *Service) Replace(ctx context.Context, id int64, input domain.VaccineInput) (domain.Vaccine, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return domain.Vaccine{}, domain.ErrInvalidName
	}

	var v domain.Vaccine
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}

		v = *existing
		v.Name = input.Name
		v.Manufacturer = input.Manufacturer
		v.SpeciesApplicable = input.SpeciesApplicable

		return s.repo.Update(ctx, tx, &v)
	})
	if err != nil {
		return domain.Vaccine{}, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		v, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.ErrNotFound
		}

		count, err := s.repo.CountRecordsByVaccine(ctx, tx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrInUse
		}

		return s.repo.Delete(ctx, tx, id)
	})
}

func (s *Service) Vaccinate(ctx context.Context, input domain.VaccinationRecordInput) (domain.VaccinationRecord, error) {
	var rec domain.VaccinationRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pet, err := s.pets.FindByID(ctx, tx, input.PetID)
		if err != nil {
			return err
		}
		if pet == nil {
			return petdomain.ErrNotFound
		}

		vaccine, err := s.repo.FindByID(ctx, tx, input.VaccineID)
		if err != nil {
			return err
		}
		if vaccine == nil {
			return domain.ErrNotFound
		}

		if input.VeterinarianID != nil {
			vet, err := s.veterinarians.FindByID(ctx, tx, *input.VeterinarianID)
			if err != nil {
				return err
			}
			if vet == nil {
				return vetdomain.ErrNotFound
			}
		}

		rec = domain.VaccinationRecord{
			PetID:           input.PetID,
			VaccineID:       input.VaccineID,
			VaccinationDate: input.VaccinationDate,
			NextDoseDate:    input.NextDoseDate,
			VeterinarianID:  input.VeterinarianID,
			BatchNumber:     input.BatchNumber,
		}
		return s.repo.InsertRecord(ctx, tx, &rec)
	})
	if err != nil {
		return domain.VaccinationRecord{}, err
	}

	s.log.Info("vaccination recorded",
		zap.Int64("vaccination_id", rec.ID),
		zap.Int64("pet_id", rec.PetID),
		zap.Int64("vaccine_id", rec.VaccineID))
	return rec, nil
}

func (s *Service) RecordsForPet(ctx context.Context, petID int64) ([]domain.VaccinationRecord, error) {
	pet, err := s.pets.FindByID(ctx, s.db, petID)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, petdomain.ErrNotFound
	}
	return s.repo.ListRecordsByPet(ctx, s.db, petID)
}
