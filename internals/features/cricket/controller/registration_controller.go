package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"anpl_backend/internals/constants"
	"anpl_backend/internals/features/cricket/dto"
	"anpl_backend/internals/features/cricket/service"
	userModel "anpl_backend/internals/features/users/model"
	helper "anpl_backend/internals/helpers"
)

type RegistrationController struct {
	DB       *gorm.DB
	Service  *service.RegistrationService
	Validate *validator.Validate
}

func NewRegistrationController(db *gorm.DB, svc *service.RegistrationService) *RegistrationController {
	return &RegistrationController{DB: db, Service: svc, Validate: validator.New()}
}

// Register handles POST /api/u/cricket/registrations.
func (ctrl *RegistrationController) Register(c *fiber.Ctx) error {
	var body dto.CricketRegistrationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := ctrl.currentUser(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	eventID, err := uuid.Parse(body.EventID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	registration, err := ctrl.Service.RegisterForCricket(user, service.RegistrationInput{
		EventID:          eventID,
		JerseyNumber:     body.JerseyNumber,
		TshirtName:       body.TshirtName,
		Category:         body.Category,
		CricketRole:      body.CricketRole,
		SkillLevel:       body.SkillLevel,
		SportsHistory:    body.SportsHistory,
		Achievements:     body.Achievements,
		BattingHand:      body.BattingHand,
		BowlingPace:      body.BowlingPace,
		BowlingArm:       body.BowlingArm,
		IsWicketKeeper:   body.IsWicketKeeper,
		HasCaptaincy:     body.HasCaptaincy,
		AvailableAllDays: body.AvailableAllDays,
		UnavailableDates: body.UnavailableDates,
		TermsAccepted:    body.TermsAccepted,
		Gender:           body.Gender,
		WhatsappNumber:   body.WhatsappNumber,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registration saved", dto.ToRegistrationResponse(registration))
}

// GetRegistration handles GET /api/u/cricket/registrations/:id.
func (ctrl *RegistrationController) GetRegistration(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid registration id")
	}
	registration, err := ctrl.Service.GetRegistration(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, _ := c.Locals("role").(string)
	if registration.EventRegistrationUserID != userID && role != constants.RoleAdmin {
		return helper.Error(c, fiber.StatusNotFound, "Registration not found")
	}
	return helper.Success(c, "OK", dto.ToRegistrationResponse(registration))
}

// UpdateStatus handles PATCH /api/a/cricket/registrations/:id/status (admin).
func (ctrl *RegistrationController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid registration id")
	}
	var body dto.UpdateStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	registration, err := ctrl.Service.UpdateStatus(id, body.Status)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Registration status updated", dto.ToRegistrationResponse(registration))
}

// ListByEvent handles GET /api/a/cricket/events/:event_id/registrations (admin).
func (ctrl *RegistrationController) ListByEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}
	registrations, err := ctrl.Service.ListByEvent(eventID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	out := make([]dto.RegistrationResponse, 0, len(registrations))
	for i := range registrations {
		out = append(out, dto.ToRegistrationResponse(&registrations[i]))
	}
	return helper.Success(c, "OK", out)
}

func (ctrl *RegistrationController) currentUser(c *fiber.Ctx) (*userModel.UserModel, error) {
	userID, err := userIDFromLocals(c)
	if err != nil {
		return nil, err
	}
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User not found")
	}
	return &user, nil
}

func userIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return userID, nil
}
