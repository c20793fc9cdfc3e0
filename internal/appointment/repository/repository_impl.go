package repository

import (
	"context"
	"errors"
	"time"

	"github.com/petcareops/vetclinic/internal/appointment/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Appointment, error) {
	var appts []domain.Appointment
	err := db.WithContext(ctx).
		Order("appointment_id").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Appointment, error) {
	var appt domain.Appointment
	err := db.WithContext(ctx).
		Where("appointment_id = ?", id).
		First(&appt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appt, nil
}

func (r *repo) ListByVeterinarian(ctx context.Context, db *gorm.DB, vetID int64, day *time.Time) ([]domain.Appointment, error) {
	stmt := db.WithContext(ctx).
		Where("veterinarian_id = ?", vetID)
	if day != nil {
		start := day.UTC().Truncate(24 * time.Hour)
		stmt = stmt.Where("appointment_date >= ? AND appointment_date < ?", start, start.Add(24*time.Hour))
	}
	var appts []domain.Appointment
	err := stmt.Order("appointment_date").Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *repo) ListByPet(ctx context.Context, db *gorm.DB, petID int64) ([]domain.Appointment, error) {
	var appts []domain.Appointment
	err := db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Order("appointment_date").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *repo) ListByOwner(ctx context.Context, db *gorm.DB, ownerID int64) ([]domain.Appointment, error) {
	var appts []domain.Appointment
	err := db.WithContext(ctx).
		Select("appointments.*").
		Joins("JOIN pets ON pets.pet_id = appointments.pet_id").
		Where("pets.owner_id = ?", ownerID).
		Order("appointments.appointment_date").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *repo) ListBetween(ctx context.Context, db *gorm.DB, from, to time.Time) ([]domain.Appointment, error) {
	var appts []domain.Appointment
	err := db.WithContext(ctx).
		Where("appointment_date >= ? AND appointment_date < ?", from, to).
		Order("appointment_date").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *repo) ListByStatus(ctx context.Context, db *gorm.DB, status domain.Status) ([]domain.Appointment, error) {
	var appts []domain.Appointment
	err := db.WithContext(ctx).
		Where("status = ?", status).
		Order("appointment_date").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *repo) HasUpcomingForVeterinarian(ctx context.Context, db *gorm.DB, vetID int64, now time.Time) (bool, error) {
	return r.hasUpcoming(ctx, db, "veterinarian_id = ?", vetID, now)
}

func (r *repo) HasUpcomingForPet(ctx context.Context, db *gorm.DB, petID int64, now time.Time) (bool, error) {
	return r.hasUpcoming(ctx, db, "pet_id = ?", petID, now)
}

func (r *repo) hasUpcoming(ctx context.Context, db *gorm.DB, query string, id int64, now time.Time) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where(query, id).
		Where("appointment_date >= ?", now).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, appt *domain.Appointment) error {
	return db.WithContext(ctx).Create(appt).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, appt *domain.Appointment) error {
	return db.WithContext(ctx).Save(appt).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).
		Where("appointment_id = ?", id).
		Delete(&domain.Appointment{}).Error
}
