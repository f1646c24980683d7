package dto

import (
	"time"

	"github.com/google/uuid"

	"anpl_backend/internals/features/events/model"
)

type CreateEventRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=100"`
	Description string `json:"description"`
	Type        string `json:"type" validate:"required,oneof=CRICKET BADMINTON"`
	Price       int    `json:"price" validate:"min=0"`
	Year        int    `json:"year" validate:"required,min=2020,max=2100"`
	Venue       string `json:"venue" validate:"max=255"`

	RegistrationStart *time.Time `json:"registration_start,omitempty"`
	RegistrationEnd   *time.Time `json:"registration_end,omitempty"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	MaxParticipants   *int       `json:"max_participants,omitempty" validate:"omitempty,min=1"`
}

type UpdateEventRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Description *string `json:"description,omitempty"`
	Price       *int    `json:"price,omitempty" validate:"omitempty,min=0"`
	Venue       *string `json:"venue,omitempty" validate:"omitempty,max=255"`
	IsActive    *bool   `json:"is_active,omitempty"`

	RegistrationStart *time.Time `json:"registration_start,omitempty"`
	RegistrationEnd   *time.Time `json:"registration_end,omitempty"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	MaxParticipants   *int       `json:"max_participants,omitempty" validate:"omitempty,min=1"`
}

type EventResponse struct {
	EventID     uuid.UUID `json:"event_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	Price       int       `json:"price"`
	Year        int       `json:"year"`
	Venue       string    `json:"venue,omitempty"`
	IsActive    bool      `json:"is_active"`

	RegistrationStart *time.Time `json:"registration_start,omitempty"`
	RegistrationEnd   *time.Time `json:"registration_end,omitempty"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	MaxParticipants   *int       `json:"max_participants,omitempty"`
	ScheduleDates     []string   `json:"schedule_dates,omitempty"`
}

func ToEventResponse(e *model.EventModel) EventResponse {
	return EventResponse{
		EventID:           e.EventID,
		Name:              e.EventName,
		Description:       e.EventDescription,
		Type:              e.EventType,
		Price:             e.EventPrice,
		Year:              e.EventYear,
		Venue:             e.EventVenue,
		IsActive:          e.EventIsActive,
		RegistrationStart: e.EventRegistrationStart,
		RegistrationEnd:   e.EventRegistrationEnd,
		StartDate:         e.EventStartDate,
		EndDate:           e.EventEndDate,
		MaxParticipants:   e.EventMaxParticipants,
		ScheduleDates:     e.ScheduleDates(),
	}
}
