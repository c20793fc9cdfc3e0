package repository

import (
	"context"
	"errors"

	"github.com/petcareops/vetclinic/internal/veterinarian/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Veterinarian, error) {
	var vets []domain.Veterinarian
	err := db.WithContext(ctx).
		Order("veterinarian_id").
		Find(&vets).Error
	if err != nil {
		return nil, err
	}
	return vets, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Veterinarian, error) {
	return r.findOne(ctx, db, "veterinarian_id = ?", id)
}

func (r *repo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.Veterinarian, error) {
	return r.findOne(ctx, db, "email = ?", email)
}

func (r *repo) FindByLicense(ctx context.Context, db *gorm.DB, license string) (*domain.Veterinarian, error) {
	return r.findOne(ctx, db, "license_number = ?", license)
}

func (r *repo) findOne(ctx context.Context, db *gorm.DB, query string, arg any) (*domain.Veterinarian, error) {
	var vet domain.Veterinarian
	err := db.WithContext(ctx).Where(query, arg).First(&vet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vet, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, vet *domain.Veterinarian) error {
	return db.WithContext(ctx).Create(vet).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, vet *domain.Veterinarian) error {
	return db.WithContext(ctx).Save(vet).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).
		Where("veterinarian_id = ?", id).
		Delete(&domain.Veterinarian{}).Error
}
