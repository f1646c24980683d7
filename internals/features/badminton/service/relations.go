package service

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"anpl_backend/internals/constants"
)

// FamilyRelation is one direction of a symmetric family pairing: what the
// partner must be called and which genders both sides must have when the
// participant registers as SelfRelation in CategoryName.
type FamilyRelation struct {
	CategoryName    string
	SelfRelation    string
	PartnerRelation string
	SelfGender      string
	PartnerGender   string
}

// familyRelations is the closed relation table. Both directions of every
// pairing are distinct rows so either participant can be "self".
var familyRelations = []FamilyRelation{
	{"Husband & Wife", "Husband", "Wife", constants.GenderMale, constants.GenderFemale},
	{"Husband & Wife", "Wife", "Husband", constants.GenderFemale, constants.GenderMale},
	{"Father Daughter", "Father", "Daughter", constants.GenderMale, constants.GenderFemale},
	{"Father Daughter", "Daughter", "Father", constants.GenderFemale, constants.GenderMale},
	{"Mother Daughter", "Mother", "Daughter", constants.GenderFemale, constants.GenderFemale},
	{"Mother Daughter", "Daughter", "Mother", constants.GenderFemale, constants.GenderFemale},
	{"Mother Son", "Mother", "Son", constants.GenderFemale, constants.GenderMale},
	{"Mother Son", "Son", "Mother", constants.GenderMale, constants.GenderFemale},
	{"Father Son U15", "Father", "Son", constants.GenderMale, constants.GenderMale},
	{"Father Son U15", "Son", "Father", constants.GenderMale, constants.GenderMale},
	{"Father Son 15+", "Father", "Son", constants.GenderMale, constants.GenderMale},
	{"Father Son 15+", "Son", "Father", constants.GenderMale, constants.GenderMale},
	{"Saas Bahu", "Saas", "Bahu", constants.GenderFemale, constants.GenderFemale},
	{"Saas Bahu", "Bahu", "Saas", constants.GenderFemale, constants.GenderFemale},
}

// ResolveFamilyRelation looks up the relation definition for a participant
// registering as selfRelation in a family category. Case-insensitive.
func ResolveFamilyRelation(categoryName, selfRelation string) (*FamilyRelation, error) {
	for i := range familyRelations {
		r := &familyRelations[i]
		if strings.EqualFold(r.CategoryName, categoryName) && strings.EqualFold(r.SelfRelation, selfRelation) {
			return r, nil
		}
	}
	return nil, fiber.NewError(fiber.StatusBadRequest,
		fmt.Sprintf("Invalid relation selected for %s", categoryName))
}

// FamilyRelations exposes a copy of the relation table (category option
// listings).
func FamilyRelations() []FamilyRelation {
	out := make([]FamilyRelation, len(familyRelations))
	copy(out, familyRelations)
	return out
}
