package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"anpl_backend/internals/features/users/dto"
	"anpl_backend/internals/features/users/service"
	helper "anpl_backend/internals/helpers"
)

type UserController struct {
	Service  *service.UserService
	Validate *validator.Validate
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{Service: svc, Validate: validator.New()}
}

// GetProfile handles GET /api/u/users/me.
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	user, err := ctrl.Service.GetByID(userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "OK", dto.ToUserResponse(user))
}

// UpdateProfile handles PATCH /api/u/users/me.
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	user, err := ctrl.Service.UpdateProfile(userID, body)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Profile updated", dto.ToUserResponse(user))
}

// UploadPhoto handles POST /api/u/users/me/photos/:kind with a multipart
// "photo" field. Kind is aadhaar_front, aadhaar_back or player.
func (ctrl *UserController) UploadPhoto(c *fiber.Ctx) error {
	userID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	kind := c.Params("kind")
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Photo file is required")
	}

	path, err := helper.SavePhoto("users/"+userID.String(), fileHeader)
	if err != nil {
		log.Printf("[ERROR] photo upload failed for user %s: %v", userID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to store photo")
	}

	user, err := ctrl.Service.SetPhoto(userID, kind, path)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Photo uploaded", dto.ToUserResponse(user))
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
