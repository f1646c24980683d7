package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"anpl_backend/internals/features/users/dto"
	"anpl_backend/internals/features/users/service"
	helper "anpl_backend/internals/helpers"
)

type AuthController struct {
	Service  *service.UserService
	Validate *validator.Validate
}

func NewAuthController(svc *service.UserService) *AuthController {
	return &AuthController{Service: svc, Validate: validator.New()}
}

// Register handles POST /api/auth/register.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	user, err := ctrl.Service.Register(body)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Account created", dto.ToUserResponse(user))
}

// Login handles POST /api/auth/login.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	token, user, err := ctrl.Service.Login(body)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Login successful", dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}
