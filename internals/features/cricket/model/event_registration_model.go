package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"anpl_backend/internals/constants"
)

// EventRegistrationModel is the single-entry registration record (cricket and
// other non-bundle events). A user holds at most one non-FAILED row per event,
// enforced by a partial unique index.
type EventRegistrationModel struct {
	EventRegistrationID uuid.UUID `gorm:"column:event_registration_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_registration_id"`

	EventRegistrationUserID  uuid.UUID `gorm:"column:event_registration_user_id;type:uuid;not null;index" json:"event_registration_user_id"`
	EventRegistrationEventID uuid.UUID `gorm:"column:event_registration_event_id;type:uuid;not null;index" json:"event_registration_event_id"`

	EventRegistrationStatus string `gorm:"column:event_registration_status;type:varchar(20);not null;default:'PENDING'" json:"event_registration_status"`

	EventRegistrationJerseyNumber *int    `gorm:"column:event_registration_jersey_number" json:"event_registration_jersey_number,omitempty"`
	EventRegistrationTshirtName   *string `gorm:"column:event_registration_tshirt_name;type:varchar(50)" json:"event_registration_tshirt_name,omitempty"`
	EventRegistrationCategory     *string `gorm:"column:event_registration_category;type:varchar(50)" json:"event_registration_category,omitempty"`
	EventRegistrationTeamRole     *string `gorm:"column:event_registration_team_role;type:varchar(30)" json:"event_registration_team_role,omitempty"`

	EventRegistrationAvailableAllDays *bool          `gorm:"column:event_registration_available_all_days" json:"event_registration_available_all_days,omitempty"`
	EventRegistrationUnavailableDates pq.StringArray `gorm:"column:event_registration_unavailable_dates;type:text[]" json:"event_registration_unavailable_dates,omitempty"`

	EventRegistrationTermsAccepted   bool       `gorm:"column:event_registration_terms_accepted;not null;default:false" json:"event_registration_terms_accepted"`
	EventRegistrationTermsAcceptedAt *time.Time `gorm:"column:event_registration_terms_accepted_at" json:"event_registration_terms_accepted_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (EventRegistrationModel) TableName() string {
	return "event_registrations"
}

// MarkStatus applies a guarded transition. Only PENDING may move, and only to
// a terminal state; re-applying a terminal state is a no-op. Returns true when
// the row actually changed.
func (r *EventRegistrationModel) MarkStatus(next string) bool {
	if r.EventRegistrationStatus != constants.RegistrationPending || !constants.IsTerminalStatus(next) {
		return false
	}
	r.EventRegistrationStatus = next
	return true
}
