package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context, db *gorm.DB) ([]Appointment, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Appointment, error)
	ListByVeterinarian(ctx context.Context, db *gorm.DB, vetID int64, day *time.Time) ([]Appointment, error)
	ListByPet(ctx context.Context, db *gorm.DB, petID int64) ([]Appointment, error)
	ListByOwner(ctx context.Context, db *gorm.DB, ownerID int64) ([]Appointment, error)
	ListBetween(ctx context.Context, db *gorm.DB, from, to time.Time) ([]Appointment, error)
	ListByStatus(ctx context.Context, db *gorm.DB, status Status) ([]Appointment, error)
	HasUpcomingForVeterinarian(ctx context.Context, db *gorm.DB, vetID int64, now time.Time) (bool, error)
	HasUpcomingForPet(ctx context.Context, db *gorm.DB, petID int64, now time.Time) (bool, error)
	Insert(ctx context.Context, db *gorm.DB, appt *Appointment) error
	Update(ctx context.Context, db *gorm.DB, appt *Appointment) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
