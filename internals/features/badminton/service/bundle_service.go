package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"anpl_backend/internals/constants"
	"anpl_backend/internals/features/badminton/model"
	eventModel "anpl_backend/internals/features/events/model"
	userModel "anpl_backend/internals/features/users/model"
)

// BundleStore is the persistence port of the bundle assembler. CreateBundle
// must persist the bundle and every entry as one atomic unit.
type BundleStore interface {
	FindEvent(id uuid.UUID) (*eventModel.EventModel, error)
	FindCategory(id uuid.UUID) (*model.BadmintonCategoryModel, error)
	FindUser(id uuid.UUID) (*userModel.UserModel, error)
	CreateBundle(bundle *model.BadmintonBundleModel) error
	FindBundle(id uuid.UUID) (*model.BadmintonBundleModel, error)
	ListCategories() ([]model.BadmintonCategoryModel, error)
}

// EntryRequest is one requested category entry within a bundle submission.
type EntryRequest struct {
	CategoryID    uuid.UUID
	SelfRelation  string
	PartnerUserID *uuid.UUID
}

type BundleService struct {
	store BundleStore
}

func NewBundleService(store BundleStore) *BundleService {
	return &BundleService{store: store}
}

// CreateBundle validates every entry and persists the whole bundle
// atomically: a failure in any entry persists nothing.
func (s *BundleService) CreateBundle(
	owner *userModel.UserModel,
	eventID uuid.UUID,
	termsAccepted bool,
	expectedTotal *int,
	entries []EntryRequest,
) (*model.BadmintonBundleModel, error) {
	event, err := s.store.FindEvent(eventID)
	if err != nil {
		return nil, notFoundOr(err, "Event not found")
	}
	if event.EventType != constants.SportBadminton {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Selected event is not a badminton event")
	}
	if !termsAccepted {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Terms must be accepted")
	}
	if len(entries) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "At least one entry is required")
	}
	if err := EnsureAadhaarDocuments(owner, "Player"); err != nil {
		return nil, err
	}

	bundle := &model.BadmintonBundleModel{
		BadmintonBundleUserID:        owner.UserID,
		BadmintonBundleEventID:       eventID,
		BadmintonBundleTermsAccepted: true,
		BadmintonBundleStatus:        constants.RegistrationPending,
	}

	totalAmount := 0
	for _, entryReq := range entries {
		category, err := s.store.FindCategory(entryReq.CategoryID)
		if err != nil {
			return nil, notFoundOr(err, "Category not found")
		}
		if err := ValidateCategoryFor(category, owner, "Player"); err != nil {
			return nil, err
		}

		entry := model.BadmintonEntryModel{
			BadmintonEntryCategoryID:     category.BadmintonCategoryID,
			BadmintonEntryCategoryName:   category.BadmintonCategoryName,
			BadmintonEntryCategoryType:   category.BadmintonCategoryType,
			BadmintonEntryPricePerPlayer: category.BadmintonCategoryPricePerPlayer,
			BadmintonEntryFee:            category.EntryFee(),
			BadmintonEntryStatus:         constants.RegistrationPending,
		}

		switch category.BadmintonCategoryType {
		case constants.CategorySolo:
			// solo entries only need base fields

		case constants.CategoryDouble:
			partner, err := s.fetchPartner(entryReq, owner, "double")
			if err != nil {
				return nil, err
			}
			if err := ValidateCategoryFor(category, partner, "Partner"); err != nil {
				return nil, err
			}
			attachPartner(&entry, partner)

		case constants.CategoryFamily:
			relation, err := ResolveFamilyRelation(category.BadmintonCategoryName, entryReq.SelfRelation)
			if err != nil {
				return nil, err
			}
			partner, err := s.fetchPartner(entryReq, owner, "family")
			if err != nil {
				return nil, err
			}
			if err := requireGender(relation.SelfGender, owner, "Player", relation.CategoryName); err != nil {
				return nil, err
			}
			if err := requireGender(relation.PartnerGender, partner, "Partner", relation.CategoryName); err != nil {
				return nil, err
			}
			entry.BadmintonEntrySelfRelation = &relation.SelfRelation
			entry.BadmintonEntryPartnerRelation = &relation.PartnerRelation
			attachPartner(&entry, partner)

		default:
			return nil, fiber.NewError(fiber.StatusBadRequest, "Unsupported category type")
		}

		totalAmount += entry.BadmintonEntryFee
		bundle.BadmintonBundleEntries = append(bundle.BadmintonBundleEntries, entry)
	}

	if expectedTotal != nil && *expectedTotal != totalAmount {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Total amount mismatch")
	}
	bundle.BadmintonBundleTotalAmount = totalAmount

	if err := s.store.CreateBundle(bundle); err != nil {
		log.Printf("[ERROR] bundle persist failed for user %s: %v", owner.UserID, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to save registration bundle")
	}
	return bundle, nil
}

// GetBundle is a read-only projection, entries included in insertion order.
func (s *BundleService) GetBundle(id uuid.UUID) (*model.BadmintonBundleModel, error) {
	bundle, err := s.store.FindBundle(id)
	if err != nil {
		return nil, notFoundOr(err, "Bundle not found")
	}
	return bundle, nil
}

// ListCategories returns the active categories in display order.
func (s *BundleService) ListCategories() ([]model.BadmintonCategoryModel, error) {
	return s.store.ListCategories()
}

func (s *BundleService) fetchPartner(entryReq EntryRequest, owner *userModel.UserModel, kind string) (*userModel.UserModel, error) {
	if entryReq.PartnerUserID == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Partner user is required for %s categories", kind))
	}
	if *entryReq.PartnerUserID == owner.UserID {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Partner must be a different participant")
	}
	partner, err := s.store.FindUser(*entryReq.PartnerUserID)
	if err != nil {
		return nil, notFoundOr(err, "Partner user not found")
	}
	if err := EnsureAadhaarDocuments(partner, "Partner"); err != nil {
		return nil, err
	}
	return partner, nil
}

func attachPartner(entry *model.BadmintonEntryModel, partner *userModel.UserModel) {
	age := partner.AgeOn(time.Now())
	entry.BadmintonEntryPartnerUserID = &partner.UserID
	entry.BadmintonEntryPartnerFullName = &partner.UserFullName
	entry.BadmintonEntryPartnerAge = &age
	entry.BadmintonEntryPartnerContact = &partner.UserPhoneNumber
}

// notFoundOr keeps domain errors intact and maps record-miss to 404.
func notFoundOr(err error, message string) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}
	if isRecordNotFound(err) {
		return fiber.NewError(fiber.StatusNotFound, message)
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
}
