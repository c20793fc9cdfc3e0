package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context, db *gorm.DB) ([]Pet, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Pet, error)
	FindByMicrochip(ctx context.Context, db *gorm.DB, microchip string) (*Pet, error)
	ListByOwner(ctx context.Context, db *gorm.DB, ownerID int64) ([]Pet, error)
	CountByOwner(ctx context.Context, db *gorm.DB, ownerID int64) (int64, error)
	Insert(ctx context.Context, db *gorm.DB, pet *Pet) error
	Update(ctx context.Context, db *gorm.DB, pet *Pet) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
