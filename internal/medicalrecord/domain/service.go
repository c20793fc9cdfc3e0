package domain

import (
	"context"
	"errors"
)

type MedicalRecordInput struct {
	AppointmentID    int64   `json:"appointment_id"`
	Diagnosis        string  `json:"diagnosis"`
	Treatment        string  `json:"treatment"`
	Prescription     *string `json:"prescription"`
	FollowUpRequired bool    `json:"follow_up_required"`
}

type Service interface {
	List(ctx context.Context) ([]MedicalRecord, error)
	GetByID(ctx context.Context, id int64) (MedicalRecord, error)
	Create(ctx context.Context, input MedicalRecordInput) (MedicalRecord, error)
	HistoryForPet(ctx context.Context, petID int64) ([]MedicalRecord, error)
}

var (
	ErrNotFound         = errors.New("medical_record_not_found")
	ErrAlreadyExists    = errors.New("medical_record_exists")
	ErrInvalidDiagnosis = errors.New("invalid_diagnosis")
	ErrInvalidTreatment = errors.New("invalid_treatment")
)
