package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context, db *gorm.DB) ([]Owner, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Owner, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*Owner, error)
	Insert(ctx context.Context, db *gorm.DB, owner *Owner) error
	Update(ctx context.Context, db *gorm.DB, owner *Owner) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
