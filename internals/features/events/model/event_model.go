package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventModel struct {
	EventID uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`

	EventName        string `gorm:"column:event_name;type:varchar(100);not null" json:"event_name"`
	EventDescription string `gorm:"column:event_description;type:text" json:"event_description"`
	EventType        string `gorm:"column:event_type;type:varchar(20);not null" json:"event_type"` // CRICKET | BADMINTON
	EventPrice       int    `gorm:"column:event_price;not null;check:event_price >= 0" json:"event_price"`
	EventYear        int    `gorm:"column:event_year;not null" json:"event_year"`
	EventVenue       string `gorm:"column:event_venue;type:varchar(255)" json:"event_venue"`
	EventIsActive    bool   `gorm:"column:event_is_active;not null;default:true" json:"event_is_active"`

	EventRegistrationStart *time.Time `gorm:"column:event_registration_start" json:"event_registration_start,omitempty"`
	EventRegistrationEnd   *time.Time `gorm:"column:event_registration_end" json:"event_registration_end,omitempty"`
	EventStartDate         *time.Time `gorm:"column:event_start_date" json:"event_start_date,omitempty"`
	EventEndDate           *time.Time `gorm:"column:event_end_date" json:"event_end_date,omitempty"`

	EventMaxParticipants *int `gorm:"column:event_max_participants" json:"event_max_participants,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}

// ScheduleDates lists every day of the event window as "2006-01-02" strings.
// Empty when the window is not configured or inverted.
func (e *EventModel) ScheduleDates() []string {
	if e.EventStartDate == nil || e.EventEndDate == nil {
		return nil
	}
	start := e.EventStartDate.Truncate(24 * time.Hour)
	end := e.EventEndDate.Truncate(24 * time.Hour)
	if end.Before(start) {
		return nil
	}
	var dates []string
	for cursor := start; !cursor.After(end); cursor = cursor.AddDate(0, 0, 1) {
		dates = append(dates, cursor.Format("2006-01-02"))
	}
	return dates
}
