package repository

import (
	"context"
	"errors"

	"github.com/petcareops/vetclinic/internal/vaccine/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Vaccine, error) {
	var vaccines []domain.Vaccine
	err := db.WithContext(ctx).
		Order("vaccine_id").
		Find(&vaccines).Error
	if err != nil {
		return nil, err
	}
	return vaccines, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Vaccine, error) {
	var v domain.Vaccine
	err := db.WithContext(ctx).Where("vaccine_id = ?", id).First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *repo) FindByName(ctx context.Context, db *gorm.DB, name string) (*domain.Vaccine, error) {
	var v domain.Vaccine
	err := db.WithContext(ctx).Where("name = ?", name).First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, v *domain.Vaccine) error {
	return db.WithContext(ctx).Create(v).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, v *domain.Vaccine) error {
	return db.WithContext(ctx).Save(v).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).
		Where("vaccine_id = ?", id).
		Delete(&domain.Vaccine{}).Error
}

func (r *repo) CountRecordsByVaccine(ctx context.Context, db *gorm.DB, vaccineID int64) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.VaccinationRecord{}).
		Where("vaccine_id = ?", vaccineID).
		Count(&count).Error
	return count, err
}

func (r *repo) ListRecordsByPet(ctx context.Context, db *gorm.DB, petID int64) ([]domain.VaccinationRecord, error) {
	var records []domain.VaccinationRecord
	err := db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Order("vaccination_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repo) InsertRecord(ctx context.Context, db *gorm.DB, rec *domain.VaccinationRecord) error {
	return db.WithContext(ctx).Create(rec).Error
}
