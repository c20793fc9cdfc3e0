package service

import (
	"context"
	"strings"

	apptdomain "github.com/petcareops/vetclinic/internal/appointment/domain"
	"github.com/petcareops/vetclinic/internal/medicalrecord/domain"
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
	Appointments apptdomain.Repository
	Pets         petdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	repo         domain.Repository
	appointments apptdomain.Repository
	pets         petdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("medicalrecord.service"),
		repo:         p.Repo,
		appointments: p.Appointments,
		pets:         p.Pets,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.MedicalRecord, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.MedicalRecord, error) {
	rec, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.MedicalRecord{}, err
	}
	if rec == nil {
		return domain.MedicalRecord{}, domain.ErrNotFound
	}
	return *rec, nil
}

func (s *Service) Create(ctx context.Context, input domain.MedicalRecordInput) (domain.MedicalRecord, error) {
	input.Diagnosis = strings.TrimSpace(input.Diagnosis)
	input.Treatment = strings.TrimSpace(input.Treatment)
	if input.Diagnosis == "" {
		return domain.MedicalRecord{}, domain.ErrInvalidDiagnosis
	}
	if input.Treatment == "" {
		return domain.MedicalRecord{}, domain.ErrInvalidTreatment
	}

	var rec domain.MedicalRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		appt, err := s.appointments.FindByID(ctx, tx, input.AppointmentID)
		if err != nil {
			return err
		}
		if appt == nil {
			return apptdomain.ErrNotFound
		}

		if existing, err := s.repo.FindByAppointment(ctx, tx, input.AppointmentID); err != nil {
			return err
		} else if existing != nil {
			return domain.ErrAlreadyExists
		}

		rec = domain.MedicalRecord{
			AppointmentID:    input.AppointmentID,
			Diagnosis:        input.Diagnosis,
			Treatment:        input.Treatment,
			Prescription:     input.Prescription,
			FollowUpRequired: input.FollowUpRequired,
		}
		if err := s.repo.Insert(ctx, tx, &rec); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrAlreadyExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.MedicalRecord{}, err
	}

	s.log.Info("medical record created",
		zap.Int64("record_id", rec.ID),
		zap.Int64("appointment_id", rec.AppointmentID))
	return rec, nil
}

func (s *Service) HistoryForPet(ctx context.Context, petID int64) ([]domain.MedicalRecord, error) {
	pet, err := s.pets.FindByID(ctx, s.db, petID)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, petdomain.ErrNotFound
	}
	return s.repo.ListByPet(ctx, s.db, petID)
}
