package model

import (
	"time"

	"github.com/google/uuid"

	"anpl_backend/internals/constants"
)

// PaymentModel records one gateway order. Exactly one of RegistrationID or
// BundleID is set, depending on which target the order pays for.
type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentRegistrationID *uuid.UUID `gorm:"column:payment_registration_id;type:uuid;index" json:"payment_registration_id,omitempty"`
	PaymentBundleID       *uuid.UUID `gorm:"column:payment_bundle_id;type:uuid;index" json:"payment_bundle_id,omitempty"`

	PaymentAmount int `gorm:"column:payment_amount;not null;check:payment_amount >= 0" json:"payment_amount"` // rupees

	PaymentRazorpayOrderID   string  `gorm:"column:payment_razorpay_order_id;type:varchar(100);not null;unique" json:"payment_razorpay_order_id"`
	PaymentRazorpayPaymentID *string `gorm:"column:payment_razorpay_payment_id;type:varchar(100)" json:"payment_razorpay_payment_id,omitempty"`
	PaymentRazorpaySignature *string `gorm:"column:payment_razorpay_signature;type:varchar(200)" json:"-"`

	PaymentStatus string     `gorm:"column:payment_status;type:varchar(20);not null;default:'PENDING'" json:"payment_status"`
	PaymentDate   *time.Time `gorm:"column:payment_date" json:"payment_date,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

// MarkCompleted stamps the payment COMPLETED with the payment timestamp.
// Guarded: only a PENDING payment moves, so replayed callbacks cannot produce
// duplicate completion writes.
func (p *PaymentModel) MarkCompleted(at time.Time) bool {
	if p.PaymentStatus != constants.PaymentPending {
		return false
	}
	p.PaymentStatus = constants.PaymentCompleted
	p.PaymentDate = &at
	return true
}

// MarkFailed moves a PENDING payment to FAILED.
func (p *PaymentModel) MarkFailed() bool {
	if p.PaymentStatus != constants.PaymentPending {
		return false
	}
	p.PaymentStatus = constants.PaymentFailed
	return true
}
