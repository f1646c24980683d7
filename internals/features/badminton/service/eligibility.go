package service

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"anpl_backend/internals/constants"
	"anpl_backend/internals/features/badminton/model"
	userModel "anpl_backend/internals/features/users/model"
)

// ValidateAgeLimit checks an age against a category age-limit spec:
// "OPEN" always passes, "U<N>" means age <= N, "<N>+" means age >= N.
// An unparsable limit fails open (passes) with a logged warning.
func ValidateAgeLimit(spec string, age int) bool {
	normalized := strings.ToUpper(strings.TrimSpace(spec))
	if normalized == "" || normalized == "OPEN" {
		return true
	}
	if strings.HasPrefix(normalized, "U") {
		if max, err := strconv.Atoi(digitsOnly(normalized[1:])); err == nil {
			return age <= max
		}
	} else if strings.HasSuffix(normalized, "+") {
		if min, err := strconv.Atoi(digitsOnly(strings.TrimSuffix(normalized, "+"))); err == nil {
			return age >= min
		}
	}
	log.Printf("[WARN] Unable to parse badminton age limit %q, allowing entry", spec)
	return true
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RequiredGender infers the gender a non-FAMILY category requires from its
// display name. FAMILY categories return nil: the relation table decides.
// The keyword set is kept exactly as observed in production data; replace it
// with an explicit per-category column before extending it.
func RequiredGender(category *model.BadmintonCategoryModel) *string {
	if category == nil || category.BadmintonCategoryName == "" {
		return nil
	}
	if category.BadmintonCategoryType == constants.CategoryFamily {
		return nil
	}
	value := strings.ToLower(category.BadmintonCategoryName)
	if strings.Contains(value, "women") || strings.Contains(value, "womens") ||
		strings.Contains(value, "girl") || strings.Contains(value, "ladies") ||
		strings.Contains(value, "female") {
		g := constants.GenderFemale
		return &g
	}
	if strings.Contains(value, "boys") || strings.Contains(value, "men's") ||
		strings.Contains(value, "mens") || strings.Contains(value, " men") ||
		strings.HasPrefix(value, "men") || strings.Contains(value, "male") {
		g := constants.GenderMale
		return &g
	}
	return nil
}

// EnsureAadhaarDocuments fails unless both identity-document photos are on
// file for the participant.
func EnsureAadhaarDocuments(u *userModel.UserModel, participantLabel string) error {
	if !u.HasAadhaarDocuments() {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf(
			"%s must upload Aadhaar front and back images before registering for this category",
			participantLabel))
	}
	return nil
}

// ValidateCategoryFor runs the age and inferred-gender checks of a category
// against a participant. Errors are participant-labeled.
func ValidateCategoryFor(category *model.BadmintonCategoryModel, participant *userModel.UserModel, participantLabel string) error {
	age := participant.AgeOn(time.Now())
	if !ValidateAgeLimit(category.BadmintonCategoryAgeLimit, age) {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf(
			"%s does not meet the age criteria for %s",
			participantLabel, category.BadmintonCategoryName))
	}
	if required := RequiredGender(category); required != nil {
		return requireGender(*required, participant, participantLabel, category.BadmintonCategoryName)
	}
	return nil
}

func requireGender(required string, participant *userModel.UserModel, participantLabel, categoryName string) error {
	if participant.UserGender == nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf(
			"%s must update gender information to enroll in %s",
			participantLabel, categoryName))
	}
	if *participant.UserGender != required {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf(
			"%s must be %s for %s",
			participantLabel, strings.ToLower(required), categoryName))
	}
	return nil
}
