package domain

import "time"

type Veterinarian struct {
	ID                int64      `gorm:"column:veterinarian_id;primaryKey;autoIncrement" json:"veterinarian_id"`
	LicenseNumber     string     `gorm:"column:license_number;size:50;not null;uniqueIndex" json:"license_number"`
	FirstName         string     `gorm:"column:first_name;size:100;not null" json:"first_name"`
	LastName          string     `gorm:"column:last_name;size:100;not null" json:"last_name"`
	Email             string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone             *string    `gorm:"size:20" json:"phone,omitempty"`
	Specialization    *string    `gorm:"size:200" json:"specialization,omitempty"`
	HireDate          *time.Time `gorm:"column:hire_date;type:date" json:"hire_date,omitempty"`
	IsActive          bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
	ConsultationFee   float64    `gorm:"column:consultation_fee;type:numeric(8,2);not null;default:0.00" json:"consultation_fee"`
	Rating            *float64   `gorm:"type:numeric(3,2)" json:"rating,omitempty"`
	TotalAppointments int        `gorm:"column:total_appointments;not null;default:0" json:"total_appointments"`
}

func (Veterinarian) TableName() string {
	return "veterinarians"
}
