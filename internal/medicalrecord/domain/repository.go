package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context, db *gorm.DB) ([]MedicalRecord, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*MedicalRecord, error)
	FindByAppointment(ctx context.Context, db *gorm.DB, appointmentID int64) (*MedicalRecord, error)
	ListByPet(ctx context.Context, db *gorm.DB, petID int64) ([]MedicalRecord, error)
	Insert(ctx context.Context, db *gorm.DB, rec *MedicalRecord) error
}
