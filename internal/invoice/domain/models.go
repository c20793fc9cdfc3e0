package domain

import (
	"fmt"
	"time"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPartial, PaymentPaid, PaymentOverdue:
		return true
	default:
		return false
	}
}

type Invoice struct {
	ID            int64         `gorm:"column:invoice_id;primaryKey;autoIncrement" json:"invoice_id"`
	AppointmentID int64         `gorm:"column:appointment_id;not null;uniqueIndex" json:"appointment_id"`
	InvoiceNumber string        `gorm:"column:invoice_number;size:50;not null;uniqueIndex" json:"invoice_number"`
	IssueDate     time.Time     `gorm:"column:issue_date;not null" json:"issue_date"`
	Subtotal      float64       `gorm:"column:subtotal;type:numeric(10,2);not null;default:0" json:"subtotal"`
	TaxAmount     float64       `gorm:"column:tax_amount;type:numeric(10,2);not null;default:0" json:"tax_amount"`
	TotalAmount   float64       `gorm:"column:total_amount;type:numeric(10,2);not null;default:0" json:"total_amount"`
	PaymentStatus PaymentStatus `gorm:"column:payment_status;size:20;not null;default:pending" json:"payment_status"`
	PaymentDate   *time.Time    `gorm:"column:payment_date" json:"payment_date,omitempty"`
	CreatedAt     time.Time     `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// NumberFor derives the invoice number from the appointment alone, so
// re-issuing for the same appointment always produces the same number.
func NumberFor(appointmentID int64, appointmentDate time.Time) string {
	return fmt.Sprintf("INV-%d-%s", appointmentID, appointmentDate.Format("20060102"))
}
