package seeds

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"anpl_backend/internals/constants"
	"anpl_backend/internals/features/badminton/model"
)

const defaultPricePerPlayer = 800

type categorySeed struct {
	Name     string
	Type     string
	AgeLimit string
}

// The league's fixed badminton catalogue. Names are matched case-insensitively
// by the relation table and the gender rules, so they stay exactly as printed
// on the draw sheets.
var badmintonCategories = []categorySeed{
	{"Boys Single U11", constants.CategorySolo, "U11"},
	{"Boys Double U11", constants.CategoryDouble, "U11"},
	{"Girls Single U11", constants.CategorySolo, "U11"},
	{"Girls Double U11", constants.CategoryDouble, "U11"},
	{"Boys Single U15", constants.CategorySolo, "U15"},
	{"Boys Double U15", constants.CategoryDouble, "U15"},
	{"Girls Single U15", constants.CategorySolo, "U15"},
	{"Girls Double U15", constants.CategoryDouble, "U15"},
	{"Boys Single U19", constants.CategorySolo, "U19"},
	{"Boys Double U19", constants.CategoryDouble, "U19"},
	{"Girls Single U19", constants.CategorySolo, "U19"},
	{"Girls Double U19", constants.CategoryDouble, "U19"},
	{"Mens Single 20+", constants.CategorySolo, "20+"},
	{"Mens Single 35+", constants.CategorySolo, "35+"},
	{"Men Single 50+", constants.CategorySolo, "50+"},
	{"Men's Double Event", constants.CategoryDouble, "OPEN"},
	{"Mens Lucky Double Event", constants.CategoryDouble, "OPEN"},
	{"Women Single 35+", constants.CategorySolo, "35+"},
	{"Womens Double 35+", constants.CategoryDouble, "35+"},
	{"Husband & Wife", constants.CategoryFamily, "OPEN"},
	{"Father Daughter", constants.CategoryFamily, "OPEN"},
	{"Mother Daughter", constants.CategoryFamily, "OPEN"},
	{"Mother Son", constants.CategoryFamily, "OPEN"},
	{"Father Son U15", constants.CategoryFamily, "OPEN"},
	{"Father Son 15+", constants.CategoryFamily, "OPEN"},
	{"Saas Bahu", constants.CategoryFamily, "OPEN"},
}

// SeedBadmintonCategories upserts the catalogue by name; re-running is safe
// and never duplicates rows.
func SeedBadmintonCategories(db *gorm.DB) error {
	for i, seed := range badmintonCategories {
		category := model.BadmintonCategoryModel{
			BadmintonCategoryName:           seed.Name,
			BadmintonCategoryType:           seed.Type,
			BadmintonCategoryPricePerPlayer: defaultPricePerPlayer,
			BadmintonCategoryAgeLimit:       seed.AgeLimit,
			BadmintonCategoryDisplayOrder:   i + 1,
			BadmintonCategoryIsActive:       true,
		}
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "badminton_category_name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"badminton_category_type",
				"badminton_category_age_limit",
				"badminton_category_display_order",
			}),
		}).Create(&category).Error
		if err != nil {
			return err
		}
	}
	log.Printf("[INFO] Seeded %d badminton categories", len(badmintonCategories))
	return nil
}
