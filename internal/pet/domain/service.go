package domain

import (
	"context"
	"errors"
	"time"
)

// PetInput carries every mutable field; Replace overwrites them all.
type PetInput struct {
	Name            string     `json:"name"`
	Species         Species    `json:"species"`
	Breed           *string    `json:"breed"`
	BirthDate       *time.Time `json:"birth_date"`
	Weight          float64    `json:"weight"`
	OwnerID         int64      `json:"owner_id"`
	MicrochipNumber *string    `json:"microchip_number"`
	IsNeutered      *bool      `json:"is_neutered"`
	BloodType       *string    `json:"blood_type"`
}

type Service interface {
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	Create(ctx context.Context, input PetInput) (Pet, error)
	Replace(ctx context.Context, id int64, input PetInput) (Pet, error)
	Delete(ctx context.Context, id int64) error
}

var (
	ErrNotFound                = errors.New("pet_not_found")
	ErrConflict                = errors.New("pet_conflict")
	ErrMicrochipExists         = errors.New("microchip_number_taken")
	ErrHasUpcomingAppointments = errors.New("pet_has_upcoming_appointments")
	ErrInvalidName             = errors.New("invalid_pet_name")
	ErrInvalidSpecies          = errors.New("invalid_species")
	ErrInvalidWeight           = errors.New("invalid_weight")
)
