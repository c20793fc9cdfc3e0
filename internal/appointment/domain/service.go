package domain

import (
	"context"
	"errors"
	"time"
)

// AppointmentInput carries every mutable field; Replace overwrites them all.
// Status is honored on Replace only; Create always starts at scheduled.
type AppointmentInput struct {
	PetID           int64     `json:"pet_id"`
	VeterinarianID  int64     `json:"veterinarian_id"`
	AppointmentDate time.Time `json:"appointment_date"`
	Reason          string    `json:"reason"`
	Status          Status    `json:"status"`
	Notes           *string   `json:"notes"`
}

type Service interface {
	List(ctx context.Context) ([]Appointment, error)
	GetByID(ctx context.Context, id int64) (Appointment, error)
	Create(ctx context.Context, input AppointmentInput) (Appointment, error)
	Replace(ctx context.Context, id int64, input AppointmentInput) (Appointment, error)
	Delete(ctx context.Context, id int64) error
	Complete(ctx context.Context, id int64) (Appointment, error)
	Cancel(ctx context.Context, id int64) (Appointment, error)
	Today(ctx context.Context) ([]Appointment, error)
	Pending(ctx context.Context) ([]Appointment, error)
	Schedule(ctx context.Context, vetID int64, day *time.Time) ([]Appointment, error)
	ListByVeterinarian(ctx context.Context, vetID int64) ([]Appointment, error)
}

var (
	ErrNotFound         = errors.New("appointment_not_found")
	ErrConflict         = errors.New("appointment_conflict")
	ErrDateNotFuture    = errors.New("invalid_appointment_date")
	ErrInvalidReason    = errors.New("invalid_reason")
	ErrInvalidStatus    = errors.New("invalid_status")
	ErrAlreadyCompleted = errors.New("appointment_already_completed")
	ErrNotCompletable   = errors.New("appointment_not_completable")
	ErrNotCancellable   = errors.New("appointment_not_cancellable")
)
