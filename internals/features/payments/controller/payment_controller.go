package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"anpl_backend/internals/features/payments/dto"
	"anpl_backend/internals/features/payments/service"
	helper "anpl_backend/internals/helpers"
)

type PaymentController struct {
	Service  *service.PaymentService
	Validate *validator.Validate
}

func NewPaymentController(svc *service.PaymentService) *PaymentController {
	return &PaymentController{Service: svc, Validate: validator.New()}
}

// InitiateOrder handles POST /api/u/payments/orders. The body names either a
// cricket registration or a badminton bundle.
func (ctrl *PaymentController) InitiateOrder(c *fiber.Ctx) error {
	var body dto.InitiateOrderRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if (body.RegistrationID == nil) == (body.BundleID == nil) {
		return helper.Error(c, fiber.StatusBadRequest, "Provide exactly one of registration_id or bundle_id")
	}

	userID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if body.RegistrationID != nil {
		registrationID, err := uuid.Parse(*body.RegistrationID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid registration id")
		}
		payment, err := ctrl.Service.InitiateRegistrationOrder(userID, registrationID)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Order created", dto.ToPaymentResponse(payment))
	}

	bundleID, err := uuid.Parse(*body.BundleID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid bundle id")
	}
	payment, err := ctrl.Service.InitiateBundleOrder(userID, bundleID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Order created", dto.ToPaymentResponse(payment))
}

// Verify handles POST /api/u/payments/verify: the checkout callback.
func (ctrl *PaymentController) Verify(c *fiber.Ctx) error {
	var body dto.VerifyPaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	userID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	payment, err := ctrl.Service.VerifyPayment(userID, service.VerifyInput{
		OrderID:   body.RazorpayOrderID,
		PaymentID: body.RazorpayPaymentID,
		Signature: body.RazorpaySignature,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Payment verified", dto.ToPaymentResponse(payment))
}

// Poll handles GET /api/u/payments/orders/:order_id: the fallback when the
// checkout never called back.
func (ctrl *PaymentController) Poll(c *fiber.Ctx) error {
	orderID := c.Params("order_id")
	if orderID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing order id")
	}
	userID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	payment, err := ctrl.Service.PollPayment(userID, orderID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "OK", dto.ToPaymentResponse(payment))
}

// PollRegistration handles GET /api/u/payments/registrations/:registration_id
// for clients that lost the order id.
func (ctrl *PaymentController) PollRegistration(c *fiber.Ctx) error {
	registrationID, err := uuid.Parse(c.Params("registration_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid registration id")
	}
	userID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	payment, err := ctrl.Service.PollRegistrationPayment(userID, registrationID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "OK", dto.ToPaymentResponse(payment))
}

// PollBundle handles GET /api/u/payments/bundles/:bundle_id.
func (ctrl *PaymentController) PollBundle(c *fiber.Ctx) error {
	bundleID, err := uuid.Parse(c.Params("bundle_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid bundle id")
	}
	userID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	payment, err := ctrl.Service.PollBundlePayment(userID, bundleID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "OK", dto.ToPaymentResponse(payment))
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
