package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context, db *gorm.DB) ([]Veterinarian, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Veterinarian, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*Veterinarian, error)
	FindByLicense(ctx context.Context, db *gorm.DB, license string) (*Veterinarian, error)
	Insert(ctx context.Context, db *gorm.DB, vet *Veterinarian) error
	Update(ctx context.Context, db *gorm.DB, vet *Veterinarian) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
