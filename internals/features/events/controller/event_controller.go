package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"anpl_backend/internals/features/events/dto"
	"anpl_backend/internals/features/events/model"
	helper "anpl_backend/internals/helpers"
)

type EventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Validate: validator.New()}
}

// ListEvents handles GET /api/events (public, active events only).
func (ctrl *EventController) ListEvents(c *fiber.Ctx) error {
	query := ctrl.DB.Where("event_is_active = ?", true)
	if eventType := c.Query("type"); eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}
	var events []model.EventModel
	if err := query.Order("event_year DESC, created_at DESC").Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load events")
	}
	out := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		out = append(out, dto.ToEventResponse(&events[i]))
	}
	return helper.Success(c, "OK", out)
}

// GetEvent handles GET /api/events/:id (public).
func (ctrl *EventController) GetEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}
	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load event")
	}
	return helper.Success(c, "OK", dto.ToEventResponse(&event))
}

// CreateEvent handles POST /api/a/events (admin).
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var body dto.CreateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	event := model.EventModel{
		EventName:              body.Name,
		EventDescription:       body.Description,
		EventType:              body.Type,
		EventPrice:             body.Price,
		EventYear:              body.Year,
		EventVenue:             body.Venue,
		EventIsActive:          true,
		EventRegistrationStart: body.RegistrationStart,
		EventRegistrationEnd:   body.RegistrationEnd,
		EventStartDate:         body.StartDate,
		EventEndDate:           body.EndDate,
		EventMaxParticipants:   body.MaxParticipants,
	}
	if err := ctrl.DB.Create(&event).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event created", dto.ToEventResponse(&event))
}

// UpdateEvent handles PATCH /api/a/events/:id (admin).
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}
	var body dto.UpdateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load event")
	}

	if body.Name != nil {
		event.EventName = *body.Name
	}
	if body.Description != nil {
		event.EventDescription = *body.Description
	}
	if body.Price != nil {
		event.EventPrice = *body.Price
	}
	if body.Venue != nil {
		event.EventVenue = *body.Venue
	}
	if body.IsActive != nil {
		event.EventIsActive = *body.IsActive
	}
	if body.RegistrationStart != nil {
		event.EventRegistrationStart = body.RegistrationStart
	}
	if body.RegistrationEnd != nil {
		event.EventRegistrationEnd = body.RegistrationEnd
	}
	if body.StartDate != nil {
		event.EventStartDate = body.StartDate
	}
	if body.EndDate != nil {
		event.EventEndDate = body.EndDate
	}
	if body.MaxParticipants != nil {
		event.EventMaxParticipants = body.MaxParticipants
	}

	if err := ctrl.DB.Save(&event).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.Success(c, "Event updated", dto.ToEventResponse(&event))
}
