package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"anpl_backend/internals/constants"
	"anpl_backend/internals/features/badminton/dto"
	"anpl_backend/internals/features/badminton/service"
	userModel "anpl_backend/internals/features/users/model"
	helper "anpl_backend/internals/helpers"
)

type BundleController struct {
	DB       *gorm.DB
	Service  *service.BundleService
	Validate *validator.Validate
}

func NewBundleController(db *gorm.DB, svc *service.BundleService) *BundleController {
	return &BundleController{DB: db, Service: svc, Validate: validator.New()}
}

// CreateBundle handles POST /api/u/badminton/bundles.
func (ctrl *BundleController) CreateBundle(c *fiber.Ctx) error {
	var body dto.CreateBundleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	owner, err := ctrl.currentUser(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	eventID, err := uuid.Parse(body.EventID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	entries := make([]service.EntryRequest, 0, len(body.Entries))
	for _, e := range body.Entries {
		categoryID, err := uuid.Parse(e.CategoryID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid category id")
		}
		entry := service.EntryRequest{CategoryID: categoryID}
		if e.SelfRelation != nil {
			entry.SelfRelation = *e.SelfRelation
		}
		if e.PartnerUserID != nil {
			partnerID, err := uuid.Parse(*e.PartnerUserID)
			if err != nil {
				return helper.Error(c, fiber.StatusBadRequest, "Invalid partner user id")
			}
			entry.PartnerUserID = &partnerID
		}
		entries = append(entries, entry)
	}

	bundle, err := ctrl.Service.CreateBundle(owner, eventID, body.TermsAccepted, body.ExpectedTotal, entries)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Bundle created", dto.ToBundleResponse(bundle))
}

// GetBundle handles GET /api/u/badminton/bundles/:id.
func (ctrl *BundleController) GetBundle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid bundle id")
	}
	bundle, err := ctrl.Service.GetBundle(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := userIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, _ := c.Locals("role").(string)
	if bundle.BadmintonBundleUserID != userID && role != constants.RoleAdmin {
		return helper.Error(c, fiber.StatusNotFound, "Bundle not found")
	}
	return helper.Success(c, "OK", dto.ToBundleResponse(bundle))
}

// ListCategories handles GET /api/badminton/categories (public).
func (ctrl *BundleController) ListCategories(c *fiber.Ctx) error {
	categories, err := ctrl.Service.ListCategories()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, dto.ToCategoryResponse(&categories[i]))
	}
	return helper.Success(c, "OK", out)
}

// ListRelationOptions handles GET /api/badminton/relations (public): the valid
// family pairings selectable for FAMILY categories.
func (ctrl *BundleController) ListRelationOptions(c *fiber.Ctx) error {
	relations := service.FamilyRelations()
	out := make([]dto.RelationOptionResponse, 0, len(relations))
	for _, r := range relations {
		out = append(out, dto.RelationOptionResponse{
			CategoryName:    r.CategoryName,
			SelfRelation:    r.SelfRelation,
			PartnerRelation: r.PartnerRelation,
		})
	}
	return helper.Success(c, "OK", out)
}

func (ctrl *BundleController) currentUser(c *fiber.Ctx) (*userModel.UserModel, error) {
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
