package dto

import (
	"time"

	"github.com/google/uuid"

	"anpl_backend/internals/features/users/model"
)

type RegisterRequest struct {
	FullName    string `json:"full_name" validate:"required,min=3,max=100"`
	FathersName string `json:"fathers_name" validate:"max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`

	PhoneNumber        string `json:"phone_number" validate:"required,min=10,max=20"`
	WhatsappNumber     string `json:"whatsapp_number" validate:"max=20"`
	ResidentialAddress string `json:"residential_address" validate:"max=500"`
	Block              string `json:"block" validate:"max=20"`
	HouseNumber        string `json:"house_number" validate:"max=20"`

	AadhaarNumber string `json:"aadhaar_number" validate:"omitempty,len=12,numeric"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FullName           *string `json:"full_name,omitempty" validate:"omitempty,min=3,max=100"`
	FathersName        *string `json:"fathers_name,omitempty" validate:"omitempty,max=100"`
	Gender             *string `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE"`
	PhoneNumber        *string `json:"phone_number,omitempty" validate:"omitempty,min=10,max=20"`
	WhatsappNumber     *string `json:"whatsapp_number,omitempty" validate:"omitempty,max=20"`
	ResidentialAddress *string `json:"residential_address,omitempty" validate:"omitempty,max=500"`
	Block              *string `json:"block,omitempty" validate:"omitempty,max=20"`
	HouseNumber        *string `json:"house_number,omitempty" validate:"omitempty,max=20"`
	AadhaarNumber      *string `json:"aadhaar_number,omitempty" validate:"omitempty,len=12,numeric"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	UserID             uuid.UUID `json:"user_id"`
	FullName           string    `json:"full_name"`
	FathersName        string    `json:"fathers_name,omitempty"`
	Email              string    `json:"email"`
	DateOfBirth        time.Time `json:"date_of_birth"`
	Gender             *string   `json:"gender,omitempty"`
	PhoneNumber        string    `json:"phone_number"`
	WhatsappNumber     string    `json:"whatsapp_number,omitempty"`
	ResidentialAddress string    `json:"residential_address,omitempty"`
	Block              string    `json:"block,omitempty"`
	HouseNumber        string    `json:"house_number,omitempty"`
	RegistrationNumber string    `json:"registration_number"`
	Role               string    `json:"role"`
	AadhaarFrontPhoto  string    `json:"aadhaar_front_photo,omitempty"`
	AadhaarBackPhoto   string    `json:"aadhaar_back_photo,omitempty"`
	PlayerPhoto        string    `json:"player_photo,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func ToUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		UserID:             u.UserID,
		FullName:           u.UserFullName,
		FathersName:        u.UserFathersName,
		Email:              u.UserEmail,
		DateOfBirth:        u.UserDateOfBirth,
		Gender:             u.UserGender,
		PhoneNumber:        u.UserPhoneNumber,
		WhatsappNumber:     u.UserWhatsappNumber,
		ResidentialAddress: u.UserResidentialAddress,
		Block:              u.UserBlock,
		HouseNumber:        u.UserHouseNumber,
		RegistrationNumber: u.UserRegistrationNumber,
		Role:               u.UserRole,
		AadhaarFrontPhoto:  u.UserAadhaarFrontPhoto,
		AadhaarBackPhoto:   u.UserAadhaarBackPhoto,
		PlayerPhoto:        u.UserPlayerPhoto,
		CreatedAt:          u.CreatedAt,
	}
}
