package domain

import (
	"context"
	"errors"
	"time"
)

type VaccineInput struct {
	Name              string  `json:"name"`
	Manufacturer      *string `json:"manufacturer"`
	SpeciesApplicable *string `json:"species_applicable"`
}

type VaccinationRecordInput struct {
	PetID           int64      `json:"pet_id"`
	VaccineID       int64      `json:"vaccine_id"`
	VaccinationDate time.Time  `json:"vaccination_date"`
	NextDoseDate    *time.Time `json:"next_dose_date"`
	VeterinarianID  *int64     `json:"veterinarian_id"`
	BatchNumber     *string    `json:"batch_number"`
}

type Service interface {
	List(ctx context.Context) ([]Vaccine, error)
	GetByID(ctx context.Context, id int64) (Vaccine, error)
	Create(ctx context.Context, input VaccineInput) (Vaccine, error)
	Replace(ctx context.Context, id int64, input VaccineInput) (Vaccine, error)
	Delete(ctx context.Context, id int64) error

	Vaccinate(ctx context.Context, input VaccinationRecordInput) (VaccinationRecord, error)
	RecordsForPet(ctx context.Context, petID int64) ([]VaccinationRecord, error)
}

var (
	ErrNotFound    = errors.New("vaccine_not_found")
	ErrInUse       = errors.New("vaccine_in_use")
	ErrInvalidName = errors.New("invalid_vaccine_name")
)
