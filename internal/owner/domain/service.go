package domain

import (
	"context"
	"errors"

	apptdomain "github.com/petcareops/vetclinic/internal/appointment/domain"
	petdomain "github.com/petcareops/vetclinic/internal/pet/domain"
)

// OwnerInput carries every mutable field; Replace overwrites them all.
type OwnerInput struct {
	FirstName              string         `json:"first_name"`
	LastName               string         `json:"last_name"`
	Email                  string         `json:"email"`
	Phone                  *string        `json:"phone"`
	Address                *string        `json:"address"`
	EmergencyContact       *string        `json:"emergency_contact"`
	PreferredPaymentMethod *PaymentMethod `json:"preferred_payment_method"`
}

type Service interface {
	List(ctx context.Context) ([]Owner, error)
	GetByID(ctx context.Context, id int64) (Owner, error)
	Create(ctx context.Context, input OwnerInput) (Owner, error)
	Replace(ctx context.Context, id int64, input OwnerInput) (Owner, error)
	Delete(ctx context.Context, id int64) error
	Pets(ctx context.Context, id int64) ([]petdomain.Pet, error)
	Appointments(ctx context.Context, id int64) ([]apptdomain.Appointment, error)
}

var (
	ErrNotFound             = errors.New("owner_not_found")
	ErrEmailExists          = errors.New("owner_email_taken")
	ErrConflict             = errors.New("owner_conflict")
	ErrHasPets              = errors.New("owner_has_pets")
	ErrInvalidName          = errors.New("invalid_owner_name")
	ErrInvalidEmail         = errors.New("invalid_owner_email")
	ErrInvalidPaymentMethod = errors.New("invalid_payment_method")
)
