package dto

import (
	"time"

	"github.com/google/uuid"

	"anpl_backend/internals/features/cricket/model"
)

type CricketRegistrationRequest struct {
	EventID      string `json:"event_id" validate:"required,uuid4"`
	JerseyNumber int    `json:"jersey_number" validate:"required,min=0,max=999"`
	TshirtName   string `json:"tshirt_name" validate:"max=50"`
	Category     string `json:"category" validate:"max=50"`

	CricketRole    string `json:"cricket_role" validate:"omitempty,oneof=BATTING BOWLING ALL_ROUNDER WICKET_KEEPER"`
	SkillLevel     string `json:"skill_level" validate:"max=30"`
	SportsHistory  string `json:"sports_history"`
	Achievements   string `json:"achievements"`
	BattingHand    string `json:"batting_hand" validate:"omitempty,oneof=LEFT RIGHT BOTH"`
	BowlingPace    string `json:"bowling_pace" validate:"max=20"`
	BowlingArm     string `json:"bowling_arm" validate:"omitempty,oneof=LEFT RIGHT"`
	IsWicketKeeper bool   `json:"is_wicket_keeper"`
	HasCaptaincy   bool   `json:"has_captaincy"`

	AvailableAllDays *bool    `json:"available_all_days" validate:"required"`
	UnavailableDates []string `json:"unavailable_dates" validate:"dive,datetime=2006-01-02"`

	TermsAccepted  bool    `json:"terms_accepted"`
	Gender         *string `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	WhatsappNumber string  `json:"whatsapp_number" validate:"max=20"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING APPROVED FAILED"`
}

type RegistrationResponse struct {
	RegistrationID   uuid.UUID  `json:"registration_id"`
	EventID          uuid.UUID  `json:"event_id"`
	UserID           uuid.UUID  `json:"user_id"`
	Status           string     `json:"status"`
	JerseyNumber     *int       `json:"jersey_number,omitempty"`
	TshirtName       *string    `json:"tshirt_name,omitempty"`
	Category         *string    `json:"category,omitempty"`
	TeamRole         *string    `json:"team_role,omitempty"`
	AvailableAllDays *bool      `json:"available_all_days,omitempty"`
	UnavailableDates []string   `json:"unavailable_dates,omitempty"`
	TermsAcceptedAt  *time.Time `json:"terms_accepted_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func ToRegistrationResponse(r *model.EventRegistrationModel) RegistrationResponse {
	return RegistrationResponse{
		RegistrationID:   r.EventRegistrationID,
		EventID:          r.EventRegistrationEventID,
		UserID:           r.EventRegistrationUserID,
		Status:           r.EventRegistrationStatus,
		JerseyNumber:     r.EventRegistrationJerseyNumber,
		TshirtName:       r.EventRegistrationTshirtName,
		Category:         r.EventRegistrationCategory,
		TeamRole:         r.EventRegistrationTeamRole,
		AvailableAllDays: r.EventRegistrationAvailableAllDays,
		UnavailableDates: r.EventRegistrationUnavailableDates,
		TermsAcceptedAt:  r.EventRegistrationTermsAcceptedAt,
		CreatedAt:        r.CreatedAt,
	}
}
