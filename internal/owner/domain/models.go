package domain

import "time"

type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "cash"
	PaymentCredit    PaymentMethod = "credit"
	PaymentDebit     PaymentMethod = "debit"
	PaymentInsurance PaymentMethod = "insurance"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCredit, PaymentDebit, PaymentInsurance:
		return true
	default:
		return false
	}
}

type Owner struct {
	ID                     int64          `gorm:"column:owner_id;primaryKey;autoIncrement" json:"owner_id"`
	FirstName              string         `gorm:"column:first_name;size:100;not null" json:"first_name"`
	LastName               string         `gorm:"column:last_name;size:100;not null" json:"last_name"`
	Email                  string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone                  *string        `gorm:"size:20" json:"phone,omitempty"`
	Address                *string        `json:"address,omitempty"`
	RegistrationDate       time.Time      `gorm:"column:registration_date;not null;autoCreateTime" json:"registration_date"`
	EmergencyContact       *string        `gorm:"column:emergency_contact;size:20" json:"emergency_contact,omitempty"`
	PreferredPaymentMethod *PaymentMethod `gorm:"column:preferred_payment_method;size:20" json:"preferred_payment_method,omitempty"`
}

func (Owner) TableName() string {
	return "owners"
}
