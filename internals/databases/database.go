package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	badmintonModel "anpl_backend/internals/features/badminton/model"
	cricketModel "anpl_backend/internals/features/cricket/model"
	eventModel "anpl_backend/internals/features/events/model"
	paymentModel "anpl_backend/internals/features/payments/model"
	userModel "anpl_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=anpl&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // plays well with PgBouncer transaction pooling
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tuning skipped: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// Migrate creates the schema and the partial unique indexes that back the
// registration invariants (these cannot be expressed as GORM tags).
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&eventModel.EventModel{},
		&cricketModel.EventRegistrationModel{},
		&cricketModel.CricketProfileModel{},
		&badmintonModel.BadmintonCategoryModel{},
		&badmintonModel.BadmintonBundleModel{},
		&badmintonModel.BadmintonEntryModel{},
		&paymentModel.PaymentModel{},
		&paymentModel.PaymentGatewayEventModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// At most one non-FAILED registration per (user, event).
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_event_registrations_user_event
		ON event_registrations (event_registration_user_id, event_registration_event_id)
		WHERE event_registration_status <> 'FAILED' AND deleted_at IS NULL
	`).Error; err != nil {
		log.Fatalf("❌ unique index (user,event) failed: %v", err)
	}

	// Jersey number unique among non-deleted registrations of an event.
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_event_registrations_event_jersey
		ON event_registrations (event_registration_event_id, event_registration_jersey_number)
		WHERE event_registration_jersey_number IS NOT NULL AND deleted_at IS NULL
	`).Error; err != nil {
		log.Fatalf("❌ unique index (event,jersey) failed: %v", err)
	}

	log.Println("✅ Schema migrated.")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
