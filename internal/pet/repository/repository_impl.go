package repository

import (
	"context"
	"errors"

	"github.com/petcareops/vetclinic/internal/pet/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Pet, error) {
	var pets []domain.Pet
	err := db.WithContext(ctx).
		Order("pet_id").
		Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Pet, error) {
	var pet domain.Pet
	err := db.WithContext(ctx).Where("pet_id = ?", id).First(&pet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pet, nil
}

func (r *repo) FindByMicrochip(ctx context.Context, db *gorm.DB, microchip string) (*domain.Pet, error) {
	var pet domain.Pet
	err := db.WithContext(ctx).Where("microchip_number = ?", microchip).First(&pet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pet, nil
}

func (r *repo) ListByOwner(ctx context.Context, db *gorm.DB, ownerID int64) ([]domain.Pet, error) {
	var pets []domain.Pet
	err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("pet_id").
		Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *repo) CountByOwner(ctx context.Context, db *gorm.DB, ownerID int64) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.Pet{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, pet *domain.Pet) error {
	return db.WithContext(ctx).Create(pet).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, pet *domain.Pet) error {
	return db.WithContext(ctx).Save(pet).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).
		Where("pet_id = ?", id).
		Delete(&domain.Pet{}).Error
}
