package service

import (
	"context"
	"strings"
	"time"

	"github.com/petcareops/vetclinic/internal/appointment/domain"
	"github.com/petcareops/vetclinic/internal/clock"
	invoicedomain "github.com/petcareops/vetclinic/internal/invoice/domain"
	petdomain "github.com/petcareops/vetclinic/internal/pet/domain"
	vetdomain "github.com/petcareops/vetclinic/internal/veterinarian/domain"
	"github.com/petcareops/vetclinic/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB            *gorm.DB
	Log           *zap.Logger
	Clock         clock.Clock
	Repo          domain.Repository
	Pets          petdomain.Repository
	Veterinarians vetdomain.Repository
	Invoices      invoicedomain.Repository
}

type Service struct {
	db            *gorm.DB
	log           *zap.Logger
	clock         clock.Clock
	repo          domain.Repository
	pets          petdomain.Repository
	veterinarians vetdomain.Repository
	invoices      invoicedomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:            p.DB,
		log:           p.Log.Named("appointment.service"),
		clock:         p.Clock,
		repo:          p.Repo,
		pets:          p.Pets,
		veterinarians: p.Veterinarians,
		invoices:      p.Invoices,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Appointment, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Appointment, error) {
	appt, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Appointment{}, err
	}
	if appt == nil {
		return domain.Appointment{}, domain.ErrNotFound
	}
	return *appt, nil
}

func (s *Service) Create(ctx context.Context, input domain.AppointmentInput) (domain.Appointment, error) {
	input.Reason = strings.TrimSpace(input.Reason)
	if input.Reason == "" {
		return domain.Appointment{}, domain.ErrInvalidReason
	}
	if !input.AppointmentDate.After(s.clock.Now()) {
		return domain.Appointment{}, domain.ErrDateNotFuture
	}

	var appt domain.Appointment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.requireRefs(ctx, tx, input.PetID, input.VeterinarianID); err != nil {
			return err
		}

		appt = domain.Appointment{
			PetID:           input.PetID,
			VeterinarianID:  input.VeterinarianID,
			AppointmentDate: input.AppointmentDate,
			Reason:          input.Reason,
			Status:          domain.StatusScheduled,
			Notes:           input.Notes,
		}
		if err := s.repo.Insert(ctx, tx, &appt); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	s.log.Info("appointment created",
		zap.Int64("appointment_id", appt.ID),
		zap.Int64("pet_id", appt.PetID),
		zap.Int64("veterinarian_id", appt.VeterinarianID))
	return appt, nil
}

func (s *Service) Replace(ctx context.Context, id int64, input domain.AppointmentInput) (domain.Appointment, error) {
	input.Reason = strings.TrimSpace(input.Reason)
	if input.Reason == "" {
		return domain.Appointment{}, domain.ErrInvalidReason
	}
	if !input.Status.Valid() {
		return domain.Appointment{}, domain.ErrInvalidStatus
	}

	var appt domain.Appointment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}

		if err := s.requireRefs(ctx, tx, input.PetID, input.VeterinarianID); err != nil {
			return err
		}

		appt = *existing
		appt.PetID = input.PetID
		appt.VeterinarianID = input.VeterinarianID
		appt.AppointmentDate = input.AppointmentDate
		appt.Reason = input.Reason
		appt.Status = input.Status
		appt.Notes = input.Notes

		return s.repo.Update(ctx, tx, &appt)
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return appt, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		appt, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if appt == nil {
			return domain.ErrNotFound
		}
		return s.repo.Delete(ctx, tx, id)
	})
}

// Complete moves a scheduled appointment to completed and, in the same
// transaction, bumps the veterinarian and pet visit aggregates and issues
// the appointment's invoice if it does not exist yet.
func (s *Service) Complete(ctx context.Context, id int64) (domain.Appointment, error) {
	var appt domain.Appointment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		switch existing.Status {
		case domain.StatusScheduled:
		case domain.StatusCompleted:
			return domain.ErrAlreadyCompleted
		default:
			return domain.ErrNotCompletable
		}

		appt = *existing
		appt.Status = domain.StatusCompleted
		if err := s.repo.Update(ctx, tx, &appt); err != nil {
			return err
		}

		if err := s.recordVisit(ctx, tx, appt); err != nil {
			return err
		}
		return s.issueInvoice(ctx, tx, appt)
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	s.log.Info("appointment completed", zap.Int64("appointment_id", appt.ID))
	return appt, nil
}

func (s *Service) Cancel(ctx context.Context, id int64) (domain.Appointment, error) {
	var appt domain.Appointment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		if existing.Status != domain.StatusScheduled {
			return domain.ErrNotCancellable
		}

		appt = *existing
		appt.Status = domain.StatusCancelled
		return s.repo.Update(ctx, tx, &appt)
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	s.log.Info("appointment cancelled", zap.Int64("appointment_id", appt.ID))
	return appt, nil
}

func (s *Service) Today(ctx context.Context) ([]domain.Appointment, error) {
	start := dayStart(s.clock.Now())
	return s.repo.ListBetween(ctx, s.db, start, start.Add(24*time.Hour))
}

func (s *Service) Pending(ctx context.Context) ([]domain.Appointment, error) {
	return s.repo.ListByStatus(ctx, s.db, domain.StatusScheduled)
}

func (s *Service) Schedule(ctx context.Context, vetID int64, day *time.Time) ([]domain.Appointment, error) {
	vet, err := s.veterinarians.FindByID(ctx, s.db, vetID)
	if err != nil {
		return nil, err
	}
	if vet == nil {
		return nil, vetdomain.ErrNotFound
	}
	return s.repo.ListByVeterinarian(ctx, s.db, vetID, day)
}

func (s *Service) ListByVeterinarian(ctx context.Context, vetID int64) ([]domain.Appointment, error) {
	vet, err := s.veterinarians.FindByID(ctx, s.db, vetID)
	if err != nil {
		return nil, err
	}
	if vet == nil {
		return nil, vetdomain.ErrNotFound
	}
	return s.repo.ListByVeterinarian(ctx, s.db, vetID, nil)
}

func (s *Service) requireRefs(ctx context.Context, tx *gorm.DB, petID, vetID int64) error {
	pet, err := s.pets.FindByID(ctx, tx, petID)
	if err != nil {
		return err
	}
	if pet == nil {
		return petdomain.ErrNotFound
	}

	vet, err := s.veterinarians.FindByID(ctx, tx, vetID)
	if err != nil {
		return err
	}
	if vet == nil {
		return vetdomain.ErrNotFound
	}
	return nil
}

func (s *Service) recordVisit(ctx context.Context, tx *gorm.DB, appt domain.Appointment) error {
	vet, err := s.veterinarians.FindByID(ctx, tx, appt.VeterinarianID)
	if err != nil {
		return err
	}
	if vet != nil {
		vet.TotalAppointments++
		if err := s.veterinarians.Update(ctx, tx, vet); err != nil {
			return err
		}
	}

	pet, err := s.pets.FindByID(ctx, tx, appt.PetID)
	if err != nil {
		return err
	}
	if pet != nil {
		pet.VisitCount++
		visit := dayStart(appt.AppointmentDate)
		pet.LastVisitDate = &visit
		if err := s.pets.Update(ctx, tx, pet); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) issueInvoice(ctx context.Context, tx *gorm.DB, appt domain.Appointment) error {
	existing, err := s.invoices.FindByAppointment(ctx, tx, appt.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	inv := invoicedomain.Invoice{
		AppointmentID: appt.ID,
		InvoiceNumber: invoicedomain.NumberFor(appt.ID, appt.AppointmentDate),
		IssueDate:     appt.AppointmentDate,
		PaymentStatus: invoicedomain.PaymentPending,
	}
	if err := s.invoices.Insert(ctx, tx, &inv); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil
		}
		return err
	}
	return nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
