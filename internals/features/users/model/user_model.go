package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserFullName    string    `gorm:"column:user_full_name;type:varchar(100);not null" json:"user_full_name"`
	UserFathersName string    `gorm:"column:user_fathers_name;type:varchar(100)" json:"user_fathers_name"`
	UserEmail       string    `gorm:"column:user_email;type:varchar(100);not null;unique" json:"user_email"`
	UserPassword    string    `gorm:"column:user_password;type:varchar(100);not null" json:"-"`
	UserDateOfBirth time.Time `gorm:"column:user_date_of_birth;type:date;not null" json:"user_date_of_birth"`
	UserGender      *string   `gorm:"column:user_gender;type:varchar(10)" json:"user_gender,omitempty"`

	UserPhoneNumber        string `gorm:"column:user_phone_number;type:varchar(20);not null" json:"user_phone_number"`
	UserWhatsappNumber     string `gorm:"column:user_whatsapp_number;type:varchar(20)" json:"user_whatsapp_number"`
	UserResidentialAddress string `gorm:"column:user_residential_address;type:varchar(500)" json:"user_residential_address"`
	UserBlock              string `gorm:"column:user_block;type:varchar(20)" json:"user_block"`
	UserHouseNumber        string `gorm:"column:user_house_number;type:varchar(20)" json:"user_house_number"`

	UserRegistrationNumber string `gorm:"column:user_registration_number;type:varchar(20);not null;unique" json:"user_registration_number"`
	UserRole               string `gorm:"column:user_role;type:varchar(10);not null;default:'USER'" json:"user_role"`
	UserIsActive           bool   `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserAadhaarNumber     string `gorm:"column:user_aadhaar_number;type:varchar(12);unique" json:"user_aadhaar_number"`
	UserAadhaarFrontPhoto string `gorm:"column:user_aadhaar_front_photo;type:varchar(500)" json:"user_aadhaar_front_photo"`
	UserAadhaarBackPhoto  string `gorm:"column:user_aadhaar_back_photo;type:varchar(500)" json:"user_aadhaar_back_photo"`
	UserPlayerPhoto       string `gorm:"column:user_player_photo;type:varchar(500)" json:"user_player_photo"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

// AgeOn returns the user's age in whole years at the given date. The
// month/day comparison keeps birthdays stable across leap years.
func (u *UserModel) AgeOn(at time.Time) int {
	dob := u.UserDateOfBirth
	age := at.Year() - dob.Year()
	if at.Month() < dob.Month() || (at.Month() == dob.Month() && at.Day() < dob.Day()) {
		age--
	}
	return age
}

// HasAadhaarDocuments reports whether both identity-document photos are present.
func (u *UserModel) HasAadhaarDocuments() bool {
	return u.UserAadhaarFrontPhoto != "" && u.UserAadhaarBackPhoto != ""
}
