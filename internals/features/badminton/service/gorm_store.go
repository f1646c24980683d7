package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anpl_backend/internals/features/badminton/model"
	eventModel "anpl_backend/internals/features/events/model"
	userModel "anpl_backend/internals/features/users/model"
)

// gormBundleStore backs BundleStore with the relational store.
type gormBundleStore struct {
	db *gorm.DB
}

func NewGormBundleStore(db *gorm.DB) BundleStore {
	return &gormBundleStore{db: db}
}

func (s *gormBundleStore) FindEvent(id uuid.UUID) (*eventModel.EventModel, error) {
	var event eventModel.EventModel
	if err := s.db.First(&event, "event_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *gormBundleStore) FindCategory(id uuid.UUID) (*model.BadmintonCategoryModel, error) {
	var category model.BadmintonCategoryModel
	if err := s.db.First(&category, "badminton_category_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *gormBundleStore) FindUser(id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := s.db.First(&user, "user_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateBundle writes the bundle and its entries in one transaction; GORM
// persists the owned entries through the association.
func (s *gormBundleStore) CreateBundle(bundle *model.BadmintonBundleModel) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(bundle).Error
	})
}

func (s *gormBundleStore) FindBundle(id uuid.UUID) (*model.BadmintonBundleModel, error) {
	var bundle model.BadmintonBundleModel
	err := s.db.
		Preload("BadmintonBundleEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&bundle, "badminton_bundle_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bundle, nil
}

func (s *gormBundleStore) ListCategories() ([]model.BadmintonCategoryModel, error) {
	var categories []model.BadmintonCategoryModel
	err := s.db.
		Where("badminton_category_is_active = ?", true).
		Order("badminton_category_display_order ASC, badminton_category_name ASC").
		Find(&categories).Error
	return categories, err
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
