package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anpl_backend/internals/constants"
	"anpl_backend/internals/features/badminton/model"
	userModel "anpl_backend/internals/features/users/model"
)

func TestValidateAgeLimit(t *testing.T) {
	cases := []struct {
		spec string
		age  int
		want bool
	}{
		{"OPEN", 99, true},
		{"open", 5, true},
		{"", 40, true},
		{"U15", 14, true},
		{"U15", 15, true},
		{"U15", 16, false},
		{"u11", 11, true},
		{"u11", 12, false},
		{"35+", 35, true},
		{"35+", 34, false},
		{"50+", 62, true},
		{"20+", 19, false},
		// malformed specs never lock anyone out
		{"U", 40, true},
		{"+", 40, true},
		{"oldies", 40, true},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, ValidateAgeLimit(tc.spec, tc.age),
			"spec=%q age=%d", tc.spec, tc.age)
	}
}

func TestRequiredGender(t *testing.T) {
	female := constants.GenderFemale
	male := constants.GenderMale

	cases := []struct {
		name         string
		categoryType string
		want         *string
	}{
		{"Girls Single U11", constants.CategorySolo, &female},
		{"Women Single 35+", constants.CategorySolo, &female},
		{"Womens Double 35+", constants.CategoryDouble, &female},
		{"Boys Double U15", constants.CategoryDouble, &male},
		{"Mens Single 20+", constants.CategorySolo, &male},
		{"Men's Double Event", constants.CategoryDouble, &male},
		{"Men Single 50+", constants.CategorySolo, &male},
		// family pairings are decided by the relation table instead
		{"Husband & Wife", constants.CategoryFamily, nil},
		{"Saas Bahu", constants.CategoryFamily, nil},
		{"Mixed Open", constants.CategoryDouble, nil},
	}
	for _, tc := range cases {
		category := &model.BadmintonCategoryModel{
			BadmintonCategoryName: tc.name,
			BadmintonCategoryType: tc.categoryType,
		}
		got := RequiredGender(category)
		if tc.want == nil {
			assert.Nilf(t, got, "category %q", tc.name)
		} else {
			require.NotNilf(t, got, "category %q", tc.name)
			assert.Equalf(t, *tc.want, *got, "category %q", tc.name)
		}
	}
}

func TestValidateCategoryForGenderMessages(t *testing.T) {
	male := constants.GenderMale
	category := &model.BadmintonCategoryModel{
		BadmintonCategoryName:     "Women Single 35+",
		BadmintonCategoryType:     constants.CategorySolo,
		BadmintonCategoryAgeLimit: "35+",
	}

	t.Run("missing gender", func(t *testing.T) {
		participant := &userModel.UserModel{
			UserDateOfBirth: time.Now().AddDate(-40, 0, 0),
		}
		err := ValidateCategoryFor(category, participant, "Player")
		require.Error(t, err)
		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		assert.Equal(t, "Player must update gender information to enroll in Women Single 35+", fe.Message)
	})

	t.Run("wrong gender", func(t *testing.T) {
		participant := &userModel.UserModel{
			UserDateOfBirth: time.Now().AddDate(-40, 0, 0),
			UserGender:      &male,
		}
		err := ValidateCategoryFor(category, participant, "Player")
		require.Error(t, err)
		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, "Player must be female for Women Single 35+", fe.Message)
	})

	t.Run("too young", func(t *testing.T) {
		female := constants.GenderFemale
		participant := &userModel.UserModel{
			UserDateOfBirth: time.Now().AddDate(-20, 0, 0),
			UserGender:      &female,
		}
		err := ValidateCategoryFor(category, participant, "Player")
		require.Error(t, err)
		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, "Player does not meet the age criteria for Women Single 35+", fe.Message)
	})
}

func TestEnsureAadhaarDocuments(t *testing.T) {
	complete := &userModel.UserModel{
		UserAadhaarFrontPhoto: "/uploads/front.webp",
		UserAadhaarBackPhoto:  "/uploads/back.webp",
	}
	assert.NoError(t, EnsureAadhaarDocuments(complete, "Player"))

	missingBack := &userModel.UserModel{UserAadhaarFrontPhoto: "/uploads/front.webp"}
	err := EnsureAadhaarDocuments(missingBack, "Partner")
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Contains(t, fe.Message, "Partner must upload Aadhaar front and back images")
}
