package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anpl_backend/internals/constants"
)

// BadmintonBundleModel is the purchase unit grouping badminton entries for one
// payer. Entries are exclusively owned: they are created and deleted with the
// bundle and mirror its status.
type BadmintonBundleModel struct {
	BadmintonBundleID uuid.UUID `gorm:"column:badminton_bundle_id;type:uuid;default:gen_random_uuid();primaryKey" json:"badminton_bundle_id"`

	BadmintonBundleUserID  uuid.UUID `gorm:"column:badminton_bundle_user_id;type:uuid;not null;index" json:"badminton_bundle_user_id"`
	BadmintonBundleEventID uuid.UUID `gorm:"column:badminton_bundle_event_id;type:uuid;not null;index" json:"badminton_bundle_event_id"`

	BadmintonBundleTermsAccepted bool   `gorm:"column:badminton_bundle_terms_accepted;not null;default:false" json:"badminton_bundle_terms_accepted"`
	BadmintonBundleTotalAmount   int    `gorm:"column:badminton_bundle_total_amount;not null;default:0" json:"badminton_bundle_total_amount"`
	BadmintonBundleStatus        string `gorm:"column:badminton_bundle_status;type:varchar(20);not null;default:'PENDING'" json:"badminton_bundle_status"`

	BadmintonBundlePaymentOrderID   *string `gorm:"column:badminton_bundle_payment_order_id;type:varchar(100)" json:"badminton_bundle_payment_order_id,omitempty"`
	BadmintonBundlePaymentReference *string `gorm:"column:badminton_bundle_payment_reference;type:varchar(100)" json:"badminton_bundle_payment_reference,omitempty"`

	BadmintonBundleEntries []BadmintonEntryModel `gorm:"foreignKey:BadmintonEntryBundleID;references:BadmintonBundleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"badminton_bundle_entries"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (BadmintonBundleModel) TableName() string {
	return "badminton_registration_bundles"
}

// MarkStatus applies a guarded transition and mirrors it onto the entries.
// Only PENDING may move, and only to a terminal state. Returns true when the
// bundle actually changed.
func (b *BadmintonBundleModel) MarkStatus(next string) bool {
	if b.BadmintonBundleStatus != constants.RegistrationPending || !constants.IsTerminalStatus(next) {
		return false
	}
	b.BadmintonBundleStatus = next
	for i := range b.BadmintonBundleEntries {
		b.BadmintonBundleEntries[i].BadmintonEntryStatus = next
	}
	return true
}

type BadmintonEntryModel struct {
	BadmintonEntryID uuid.UUID `gorm:"column:badminton_entry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"badminton_entry_id"`

	BadmintonEntryBundleID   uuid.UUID `gorm:"column:badminton_entry_bundle_id;type:uuid;not null;index" json:"badminton_entry_bundle_id"`
	BadmintonEntryCategoryID uuid.UUID `gorm:"column:badminton_entry_category_id;type:uuid;not null" json:"badminton_entry_category_id"`

	BadmintonEntryCategoryName   string `gorm:"column:badminton_entry_category_name;type:varchar(100);not null" json:"badminton_entry_category_name"`
	BadmintonEntryCategoryType   string `gorm:"column:badminton_entry_category_type;type:varchar(20);not null" json:"badminton_entry_category_type"`
	BadmintonEntryPricePerPlayer int    `gorm:"column:badminton_entry_price_per_player;not null" json:"badminton_entry_price_per_player"`
	BadmintonEntryFee            int    `gorm:"column:badminton_entry_fee;not null" json:"badminton_entry_fee"`

	BadmintonEntrySelfRelation    *string `gorm:"column:badminton_entry_self_relation;type:varchar(30)" json:"badminton_entry_self_relation,omitempty"`
	BadmintonEntryPartnerRelation *string `gorm:"column:badminton_entry_partner_relation;type:varchar(30)" json:"badminton_entry_partner_relation,omitempty"`

	BadmintonEntryPartnerUserID   *uuid.UUID `gorm:"column:badminton_entry_partner_user_id;type:uuid" json:"badminton_entry_partner_user_id,omitempty"`
	BadmintonEntryPartnerFullName *string    `gorm:"column:badminton_entry_partner_full_name;type:varchar(100)" json:"badminton_entry_partner_full_name,omitempty"`
	BadmintonEntryPartnerAge      *int       `gorm:"column:badminton_entry_partner_age" json:"badminton_entry_partner_age,omitempty"`
	BadmintonEntryPartnerContact  *string    `gorm:"column:badminton_entry_partner_contact;type:varchar(20)" json:"badminton_entry_partner_contact,omitempty"`

	BadmintonEntryStatus string `gorm:"column:badminton_entry_status;type:varchar(20);not null;default:'PENDING'" json:"badminton_entry_status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BadmintonEntryModel) TableName() string {
	return "badminton_registration_entries"
}
