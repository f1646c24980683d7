package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentGatewayEventModel is an append-only audit row for gateway traffic:
// order creations, status fetches and rejected signatures, with the raw
// payload kept for reconciliation disputes.
type PaymentGatewayEventModel struct {
	PaymentGatewayEventID uuid.UUID `gorm:"column:payment_gateway_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_gateway_event_id"`

	PaymentGatewayEventOrderID string         `gorm:"column:payment_gateway_event_order_id;type:varchar(100);index" json:"payment_gateway_event_order_id"`
	PaymentGatewayEventKind    string         `gorm:"column:payment_gateway_event_kind;type:varchar(30);not null" json:"payment_gateway_event_kind"`
	PaymentGatewayEventPayload datatypes.JSON `gorm:"column:payment_gateway_event_payload" json:"payment_gateway_event_payload,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PaymentGatewayEventModel) TableName() string {
	return "payment_gateway_events"
}

// Event kinds
const (
	GatewayEventOrderCreated      = "order_created"
	GatewayEventOrderFetched      = "order_fetched"
	GatewayEventSignatureRejected = "signature_rejected"
	GatewayEventSignatureMissing  = "signature_missing"
)
