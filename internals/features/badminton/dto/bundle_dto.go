package dto

import (
	"time"

	"github.com/google/uuid"

	"anpl_backend/internals/features/badminton/model"
)

type CreateBundleRequest struct {
	EventID       string         `json:"event_id" validate:"required,uuid4"`
	TermsAccepted bool           `json:"terms_accepted"`
	ExpectedTotal *int           `json:"expected_total,omitempty"`
	Entries       []EntryRequest `json:"entries" validate:"required,min=1,dive"`
}

type EntryRequest struct {
	CategoryID    string  `json:"category_id" validate:"required,uuid4"`
	SelfRelation  *string `json:"self_relation,omitempty"`
	PartnerUserID *string `json:"partner_user_id,omitempty"`
}

type BundleResponse struct {
	BundleID       uuid.UUID       `json:"bundle_id"`
	EventID        uuid.UUID       `json:"event_id"`
	Status         string          `json:"status"`
	TotalAmount    int             `json:"total_amount"`
	PaymentOrderID *string         `json:"payment_order_id,omitempty"`
	Entries        []EntryResponse `json:"entries"`
	CreatedAt      time.Time       `json:"created_at"`
}

type EntryResponse struct {
	EntryID         uuid.UUID  `json:"entry_id"`
	CategoryID      uuid.UUID  `json:"category_id"`
	CategoryName    string     `json:"category_name"`
	CategoryType    string     `json:"category_type"`
	Fee             int        `json:"fee"`
	SelfRelation    *string    `json:"self_relation,omitempty"`
	PartnerRelation *string    `json:"partner_relation,omitempty"`
	PartnerUserID   *uuid.UUID `json:"partner_user_id,omitempty"`
	PartnerFullName *string    `json:"partner_full_name,omitempty"`
	Status          string     `json:"status"`
}

type CategoryResponse struct {
	CategoryID     uuid.UUID `json:"category_id"`
	CategoryName   string    `json:"category_name"`
	CategoryType   string    `json:"category_type"`
	AgeLimit       string    `json:"age_limit"`
	PricePerPlayer int       `json:"price_per_player"`
	EntryFee       int       `json:"entry_fee"`
}

type RelationOptionResponse struct {
	CategoryName    string `json:"category_name"`
	SelfRelation    string `json:"self_relation"`
	PartnerRelation string `json:"partner_relation"`
}

func ToBundleResponse(bundle *model.BadmintonBundleModel) BundleResponse {
	entries := make([]EntryResponse, 0, len(bundle.BadmintonBundleEntries))
	for _, entry := range bundle.BadmintonBundleEntries {
		entries = append(entries, EntryResponse{
			EntryID:         entry.BadmintonEntryID,
			CategoryID:      entry.BadmintonEntryCategoryID,
			CategoryName:    entry.BadmintonEntryCategoryName,
			CategoryType:    entry.BadmintonEntryCategoryType,
			Fee:             entry.BadmintonEntryFee,
			SelfRelation:    entry.BadmintonEntrySelfRelation,
			PartnerRelation: entry.BadmintonEntryPartnerRelation,
			PartnerUserID:   entry.BadmintonEntryPartnerUserID,
			PartnerFullName: entry.BadmintonEntryPartnerFullName,
			Status:          entry.BadmintonEntryStatus,
		})
	}
	return BundleResponse{
		BundleID:       bundle.BadmintonBundleID,
		EventID:        bundle.BadmintonBundleEventID,
		Status:         bundle.BadmintonBundleStatus,
		TotalAmount:    bundle.BadmintonBundleTotalAmount,
		PaymentOrderID: bundle.BadmintonBundlePaymentOrderID,
		Entries:        entries,
		CreatedAt:      bundle.CreatedAt,
	}
}

func ToCategoryResponse(category *model.BadmintonCategoryModel) CategoryResponse {
	return CategoryResponse{
		CategoryID:     category.BadmintonCategoryID,
		CategoryName:   category.BadmintonCategoryName,
		CategoryType:   category.BadmintonCategoryType,
		AgeLimit:       category.BadmintonCategoryAgeLimit,
		PricePerPlayer: category.BadmintonCategoryPricePerPlayer,
		EntryFee:       category.EntryFee(),
	}
}
