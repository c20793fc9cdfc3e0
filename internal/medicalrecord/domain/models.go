package domain

import "time"

type MedicalRecord struct {
	ID               int64     `gorm:"column:record_id;primaryKey;autoIncrement" json:"record_id"`
	AppointmentID    int64     `gorm:"column:appointment_id;not null;uniqueIndex" json:"appointment_id"`
	Diagnosis        string    `gorm:"not null" json:"diagnosis"`
	Treatment        string    `gorm:"not null" json:"treatment"`
	Prescription     *string   `json:"prescription,omitempty"`
	FollowUpRequired bool      `gorm:"column:follow_up_required;not null;default:false" json:"follow_up_required"`
	CreatedAt        time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
