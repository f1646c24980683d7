package seeds

import (
	"log"

	"gorm.io/gorm"
)

// Run applies all idempotent seeders.
func Run(db *gorm.DB) {
	if err := SeedBadmintonCategories(db); err != nil {
		log.Printf("[ERROR] Badminton category seed failed: %v", err)
	}
}
