package domain

import "time"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// Terminal reports whether no transition operation may leave this status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Appointment struct {
	ID              int64     `gorm:"column:appointment_id;primaryKey;autoIncrement" json:"appointment_id"`
	PetID           int64     `gorm:"column:pet_id;not null;index" json:"pet_id"`
	VeterinarianID  int64     `gorm:"column:veterinarian_id;not null;index:ix_appointments_vet_status" json:"veterinarian_id"`
	AppointmentDate time.Time `gorm:"column:appointment_date;not null" json:"appointment_date"`
	Reason          string    `gorm:"not null" json:"reason"`
	Status          Status    `gorm:"size:20;not null;default:scheduled;index:ix_appointments_vet_status" json:"status"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}
