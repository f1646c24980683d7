package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"anpl_backend/internals/constants"
	"anpl_backend/internals/features/users/dto"
	"anpl_backend/internals/features/users/model"
	helper "anpl_backend/internals/helpers"
	authHelper "anpl_backend/internals/helpers/auth"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Register creates a participant account with a generated ANPL registration
// number.
func (s *UserService) Register(req dto.RegisterRequest) (*model.UserModel, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid date of birth")
	}
	if dob.After(time.Now()) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Date of birth cannot be in the future")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to process password")
	}

	user := &model.UserModel{
		UserFullName:           strings.TrimSpace(req.FullName),
		UserFathersName:        strings.TrimSpace(req.FathersName),
		UserEmail:              strings.ToLower(strings.TrimSpace(req.Email)),
		UserPassword:           string(hashed),
		UserDateOfBirth:        dob,
		UserPhoneNumber:        req.PhoneNumber,
		UserWhatsappNumber:     req.WhatsappNumber,
		UserResidentialAddress: req.ResidentialAddress,
		UserBlock:              req.Block,
		UserHouseNumber:        req.HouseNumber,
		UserAadhaarNumber:      req.AadhaarNumber,
		UserRegistrationNumber: generateRegistrationNumber(),
		UserRole:               constants.RoleUser,
		UserIsActive:           true,
	}
	if req.Gender != "" {
		gender := req.Gender
		user.UserGender = &gender
	}

	if err := s.DB.Create(user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "An account with this email or Aadhaar already exists")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create account")
	}
	return user, nil
}

// Login checks credentials and issues a JWT.
func (s *UserService) Login(req dto.LoginRequest) (string, *model.UserModel, error) {
	var user model.UserModel
	err := s.DB.First(&user, "user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !user.UserIsActive {
		return "", nil, fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := authHelper.CreateToken(user.UserID, user.UserRole)
	if err != nil {
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create token")
	}
	return token, &user, nil
}

// GetByID returns a user by id.
func (s *UserService) GetByID(id uuid.UUID) (*model.UserModel, error) {
	var user model.UserModel
	if err := s.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}
	return &user, nil
}

// UpdateProfile applies the provided fields only.
func (s *UserService) UpdateProfile(id uuid.UUID, req dto.UpdateProfileRequest) (*model.UserModel, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.UserFullName = strings.TrimSpace(*req.FullName)
	}
	if req.FathersName != nil {
		user.UserFathersName = strings.TrimSpace(*req.FathersName)
	}
	if req.Gender != nil {
		user.UserGender = req.Gender
	}
	if req.PhoneNumber != nil {
		user.UserPhoneNumber = *req.PhoneNumber
	}
	if req.WhatsappNumber != nil {
		user.UserWhatsappNumber = *req.WhatsappNumber
	}
	if req.ResidentialAddress != nil {
		user.UserResidentialAddress = *req.ResidentialAddress
	}
	if req.Block != nil {
		user.UserBlock = *req.Block
	}
	if req.HouseNumber != nil {
		user.UserHouseNumber = *req.HouseNumber
	}
	if req.AadhaarNumber != nil {
		user.UserAadhaarNumber = *req.AadhaarNumber
	}

	if err := s.DB.Save(user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Aadhaar number already in use")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update profile")
	}
	return user, nil
}

// SetPhoto stores the uploaded document path on the user record.
func (s *UserService) SetPhoto(id uuid.UUID, kind, path string) (*model.UserModel, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "aadhaar_front":
		user.UserAadhaarFrontPhoto = path
	case "aadhaar_back":
		user.UserAadhaarBackPhoto = path
	case "player":
		user.UserPlayerPhoto = path
	default:
		return nil, fiber.NewError(fiber.StatusBadRequest, "Unknown photo kind")
	}
	if err := s.DB.Save(user).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to save photo")
	}
	return user, nil
}

func generateRegistrationNumber() string {
	return "ANPL" + strings.ToUpper(uuid.NewString()[:8])
}
