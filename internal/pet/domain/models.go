package domain

import "time"

type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesBird   Species = "bird"
	SpeciesRabbit Species = "rabbit"
	SpeciesOther  Species = "other"
)

func (s Species) Valid() bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesBird, SpeciesRabbit, SpeciesOther:
		return true
	default:
		return false
	}
}

type Pet struct {
	ID               int64      `gorm:"column:pet_id;primaryKey;autoIncrement" json:"pet_id"`
	Name             string     `gorm:"size:100;not null" json:"name"`
	Species          Species    `gorm:"size:20;not null" json:"species"`
	Breed            *string    `gorm:"size:100" json:"breed,omitempty"`
	BirthDate        *time.Time `gorm:"column:birth_date;type:date" json:"birth_date,omitempty"`
	Weight           float64    `gorm:"type:numeric(6,2);not null" json:"weight"`
	OwnerID          int64      `gorm:"column:owner_id;not null;index:ix_pets_owner" json:"owner_id"`
	RegistrationDate time.Time  `gorm:"column:registration_date;not null;autoCreateTime" json:"registration_date"`
	MicrochipNumber  *string    `gorm:"column:microchip_number;size:50;uniqueIndex" json:"microchip_number,omitempty"`
	IsNeutered       bool       `gorm:"column:is_neutered;not null;default:false" json:"is_neutered"`
	BloodType        *string    `gorm:"column:blood_type;size:10" json:"blood_type,omitempty"`
	LastVisitDate    *time.Time `gorm:"column:last_visit_date;type:date" json:"last_visit_date,omitempty"`
	VisitCount       int        `gorm:"column:visit_count;not null;default:0" json:"visit_count"`
}

func (Pet) TableName() string {
	return "pets"
}
