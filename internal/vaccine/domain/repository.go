package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context, db *gorm.DB) ([]Vaccine, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Vaccine, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*Vaccine, error)
	Insert(ctx context.Context, db *gorm.DB, v *Vaccine) error
	Update(ctx context.Context, db *gorm.DB, v *Vaccine) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error

	CountRecordsByVaccine(ctx context.Context, db *gorm.DB, vaccineID int64) (int64, error)
	ListRecordsByPet(ctx context.Context, db *gorm.DB, petID int64) ([]VaccinationRecord, error)
	InsertRecord(ctx context.Context, db *gorm.DB, rec *VaccinationRecord) error
}
