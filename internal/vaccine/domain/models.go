package domain

import "time"

type Vaccine struct {
	ID                int64   `gorm:"column:vaccine_id;primaryKey;autoIncrement" json:"vaccine_id"`
	Name              string  `gorm:"size:200;not null" json:"name"`
	Manufacturer      *string `gorm:"size:200" json:"manufacturer,omitempty"`
	SpeciesApplicable *string `gorm:"column:species_applicable;size:100" json:"species_applicable,omitempty"`
}

func (Vaccine) TableName() string {
	return "vaccines"
}

type VaccinationRecord struct {
	ID              int64      `gorm:"column:vaccination_id;primaryKey;autoIncrement" json:"vaccination_id"`
	PetID           int64      `gorm:"column:pet_id;not null;index:ix_vaccination_records_pet" json:"pet_id"`
	VaccineID       int64      `gorm:"column:vaccine_id;not null;index:ix_vaccination_records_vaccine" json:"vaccine_id"`
	VaccinationDate time.Time  `gorm:"column:vaccination_date;type:date;not null" json:"vaccination_date"`
	NextDoseDate    *time.Time `gorm:"column:next_dose_date;type:date" json:"next_dose_date,omitempty"`
	VeterinarianID  *int64     `gorm:"column:veterinarian_id;index:ix_vaccination_records_vet" json:"veterinarian_id,omitempty"`
	BatchNumber     *string    `gorm:"column:batch_number;size:50" json:"batch_number,omitempty"`
}

func (VaccinationRecord) TableName() string {
	return "vaccination_records"
}
