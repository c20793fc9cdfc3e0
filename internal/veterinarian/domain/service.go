package domain

import (
	"context"
	"errors"
	"time"
)

// VeterinarianInput carries every mutable field; Replace overwrites them all.
type VeterinarianInput struct {
	LicenseNumber   string     `json:"license_number"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Email           string     `json:"email"`
	Phone           *string    `json:"phone"`
	Specialization  *string    `json:"specialization"`
	HireDate        *time.Time `json:"hire_date"`
	IsActive        *bool      `json:"is_active"`
	ConsultationFee float64    `json:"consultation_fee"`
	Rating          *float64   `json:"rating"`
}

type Service interface {
	List(ctx context.Context) ([]Veterinarian, error)
	GetByID(ctx context.Context, id int64) (Veterinarian, error)
	Create(ctx context.Context, input VeterinarianInput) (Veterinarian, error)
	Replace(ctx context.Context, id int64, input VeterinarianInput) (Veterinarian, error)
	Delete(ctx context.Context, id int64) error
}

var (
	ErrNotFound                = errors.New("veterinarian_not_found")
	ErrEmailExists             = errors.New("veterinarian_email_taken")
	ErrLicenseExists           = errors.New("license_number_taken")
	ErrConflict                = errors.New("veterinarian_conflict")
	ErrHasUpcomingAppointments = errors.New("veterinarian_has_upcoming_appointments")
	ErrInvalidLicense          = errors.New("invalid_license_number")
	ErrInvalidName             = errors.New("invalid_name")
	ErrInvalidEmail            = errors.New("invalid_email")
	ErrInvalidFee              = errors.New("invalid_consultation_fee")
	ErrInvalidRating           = errors.New("invalid_rating")
)
