package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"anpl_backend/internals/constants"
	"anpl_backend/internals/features/cricket/model"
	eventModel "anpl_backend/internals/features/events/model"
	userModel "anpl_backend/internals/features/users/model"
	helper "anpl_backend/internals/helpers"
)

type gormRegistrationStore struct {
	db *gorm.DB
}

func NewGormRegistrationStore(db *gorm.DB) RegistrationStore {
	return &gormRegistrationStore{db: db}
}

func (s *gormRegistrationStore) FindEvent(id uuid.UUID) (*eventModel.EventModel, error) {
	var event eventModel.EventModel
	if err := s.db.First(&event, "event_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindRegistration returns the user's current non-FAILED registration for the
// event. FAILED rows stay behind as history and never block a fresh attempt.
func (s *gormRegistrationStore) FindRegistration(userID, eventID uuid.UUID) (*model.EventRegistrationModel, error) {
	var registration model.EventRegistrationModel
	err := s.db.
		Where("event_registration_user_id = ? AND event_registration_event_id = ? AND event_registration_status <> ?",
			userID, eventID, constants.RegistrationFailed).
		Order("created_at DESC").
		First(&registration).Error
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

func (s *gormRegistrationStore) FindRegistrationByID(id uuid.UUID) (*model.EventRegistrationModel, error) {
	var registration model.EventRegistrationModel
	if err := s.db.First(&registration, "event_registration_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &registration, nil
}

func (s *gormRegistrationStore) JerseyTaken(eventID uuid.UUID, jersey int, excludeRegistrationID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&model.EventRegistrationModel{}).
		Where("event_registration_event_id = ? AND event_registration_jersey_number = ?", eventID, jersey).
		Where("event_registration_id <> ?", excludeRegistrationID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SaveCricketRegistration persists the user refresh, the cricket profile
// upsert and the registration row in one transaction.
func (s *gormRegistrationStore) SaveCricketRegistration(user *userModel.UserModel, profile *model.CricketProfileModel, registration *model.EventRegistrationModel) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cricket_profile_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"cricket_profile_skill_level",
				"cricket_profile_sports_history",
				"cricket_profile_achievements",
				"cricket_profile_primary_role",
				"cricket_profile_batting_hand",
				"cricket_profile_bowling_pace",
				"cricket_profile_bowling_arm",
				"cricket_profile_wicket_keeper",
				"cricket_profile_captaincy",
				"updated_at",
			}),
		}).Create(profile).Error; err != nil {
			return err
		}
		return tx.Save(registration).Error
	})
	if err != nil && helper.IsUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (s *gormRegistrationStore) SaveRegistration(registration *model.EventRegistrationModel) error {
	return s.db.Save(registration).Error
}

func (s *gormRegistrationStore) FindUser(id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := s.db.First(&user, "user_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormRegistrationStore) FindCricketProfile(userID uuid.UUID) (*model.CricketProfileModel, error) {
	var profile model.CricketProfileModel
	if err := s.db.First(&profile, "cricket_profile_user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *gormRegistrationStore) ListRegistrationsByEvent(eventID uuid.UUID) ([]model.EventRegistrationModel, error) {
	var registrations []model.EventRegistrationModel
	err := s.db.
		Where("event_registration_event_id = ?", eventID).
		Order("created_at ASC").
		Find(&registrations).Error
	return registrations, err
}
