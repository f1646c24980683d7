package dto

import (
	"time"

	"github.com/google/uuid"

	"anpl_backend/internals/features/payments/model"
)

type InitiateOrderRequest struct {
	RegistrationID *string `json:"registration_id,omitempty" validate:"omitempty,uuid4"`
	BundleID       *string `json:"bundle_id,omitempty" validate:"omitempty,uuid4"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

type PaymentResponse struct {
	PaymentID       uuid.UUID  `json:"payment_id"`
	RegistrationID  *uuid.UUID `json:"registration_id,omitempty"`
	BundleID        *uuid.UUID `json:"bundle_id,omitempty"`
	Amount          int        `json:"amount"`
	RazorpayOrderID string     `json:"razorpay_order_id"`
	Status          string     `json:"status"`
	PaymentDate     *time.Time `json:"payment_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func ToPaymentResponse(p *model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:       p.PaymentID,
		RegistrationID:  p.PaymentRegistrationID,
		BundleID:        p.PaymentBundleID,
		Amount:          p.PaymentAmount,
		RazorpayOrderID: p.PaymentRazorpayOrderID,
		Status:          p.PaymentStatus,
		PaymentDate:     p.PaymentDate,
		CreatedAt:       p.CreatedAt,
	}
}
