package repository

import (
	"context"
	"errors"

	"github.com/petcareops/vetclinic/internal/medicalrecord/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.MedicalRecord, error) {
	var records []domain.MedicalRecord
	err := db.WithContext(ctx).
		Order("record_id").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.MedicalRecord, error) {
	var rec domain.MedicalRecord
	err := db.WithContext(ctx).Where("record_id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repo) FindByAppointment(ctx context.Context, db *gorm.DB, appointmentID int64) (*domain.MedicalRecord, error) {
	var rec domain.MedicalRecord
	err := db.WithContext(ctx).Where("appointment_id = ?", appointmentID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repo) ListByPet(ctx context.Context, db *gorm.DB, petID int64) ([]domain.MedicalRecord, error) {
	var records []domain.MedicalRecord
	err := db.WithContext(ctx).
		Select("medical_records.*").
		Joins("JOIN appointments ON appointments.appointment_id = medical_records.appointment_id").
		Where("appointments.pet_id = ?", petID).
		Order("medical_records.created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, rec *domain.MedicalRecord) error {
	return db.WithContext(ctx).Create(rec).Error
}
