package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anpl_backend/internals/constants"
)

type BadmintonCategoryModel struct {
	BadmintonCategoryID uuid.UUID `gorm:"column:badminton_category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"badminton_category_id"`

	BadmintonCategoryName           string `gorm:"column:badminton_category_name;type:varchar(100);not null;unique" json:"badminton_category_name"`
	BadmintonCategoryType           string `gorm:"column:badminton_category_type;type:varchar(20);not null" json:"badminton_category_type"` // SOLO | DOUBLE | FAMILY
	BadmintonCategoryPricePerPlayer int    `gorm:"column:badminton_category_price_per_player;not null;default:800" json:"badminton_category_price_per_player"`
	BadmintonCategoryAgeLimit       string `gorm:"column:badminton_category_age_limit;type:varchar(50)" json:"badminton_category_age_limit"` // "OPEN" | "U<N>" | "<N>+"
	BadmintonCategoryDescription    string `gorm:"column:badminton_category_description;type:varchar(500)" json:"badminton_category_description"`
	BadmintonCategoryDisplayOrder   int    `gorm:"column:badminton_category_display_order;not null;default:0" json:"badminton_category_display_order"`
	BadmintonCategoryIsActive       bool   `gorm:"column:badminton_category_is_active;not null;default:true" json:"badminton_category_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (BadmintonCategoryModel) TableName() string {
	return "badminton_categories"
}

// PlayersPerEntry is 1 for SOLO, 2 for DOUBLE and FAMILY.
func (c *BadmintonCategoryModel) PlayersPerEntry() int {
	if c.BadmintonCategoryType == constants.CategorySolo {
		return 1
	}
	return 2
}

// EntryFee is the price of one entry in this category.
func (c *BadmintonCategoryModel) EntryFee() int {
	return c.BadmintonCategoryPricePerPlayer * c.PlayersPerEntry()
}
