package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	bundleModel "anpl_backend/internals/features/badminton/model"
	registrationModel "anpl_backend/internals/features/cricket/model"
	eventModel "anpl_backend/internals/features/events/model"
	"anpl_backend/internals/features/payments/model"
	userModel "anpl_backend/internals/features/users/model"
)

type gormPaymentStore struct {
	db *gorm.DB
}

func NewGormPaymentStore(db *gorm.DB) PaymentStore {
	return &gormPaymentStore{db: db}
}

func (s *gormPaymentStore) FindRegistration(id uuid.UUID) (*registrationModel.EventRegistrationModel, error) {
	var registration registrationModel.EventRegistrationModel
	if err := s.db.First(&registration, "event_registration_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &registration, nil
}

func (s *gormPaymentStore) FindBundle(id uuid.UUID) (*bundleModel.BadmintonBundleModel, error) {
	var bundle bundleModel.BadmintonBundleModel
	err := s.db.
		Preload("BadmintonBundleEntries", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC")
		}).
		First(&bundle, "badminton_bundle_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bundle, nil
}

func (s *gormPaymentStore) FindEvent(id uuid.UUID) (*eventModel.EventModel, error) {
	var event eventModel.EventModel
	if err := s.db.First(&event, "event_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *gormPaymentStore) FindUser(id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := s.db.First(&user, "user_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormPaymentStore) FindPaymentByOrderID(orderID string) (*model.PaymentModel, error) {
	var payment model.PaymentModel
	if err := s.db.First(&payment, "payment_razorpay_order_id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *gormPaymentStore) FindLatestPaymentForRegistration(registrationID uuid.UUID) (*model.PaymentModel, error) {
	var payment model.PaymentModel
	err := s.db.
		Where("payment_registration_id = ?", registrationID).
		Order("created_at DESC").
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *gormPaymentStore) FindLatestPaymentForBundle(bundleID uuid.UUID) (*model.PaymentModel, error) {
	var payment model.PaymentModel
	err := s.db.
		Where("payment_bundle_id = ?", bundleID).
		Order("created_at DESC").
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *gormPaymentStore) CreatePayment(payment *model.PaymentModel) error {
	return s.db.Create(payment).Error
}

func (s *gormPaymentStore) SaveBundle(bundle *bundleModel.BadmintonBundleModel) error {
	return s.db.Save(bundle).Error
}

// SavePaymentAndRegistration settles the pair in one transaction so a crash
// cannot leave a COMPLETED payment against a PENDING registration.
func (s *gormPaymentStore) SavePaymentAndRegistration(payment *model.PaymentModel, registration *registrationModel.EventRegistrationModel) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(payment).Error; err != nil {
			return err
		}
		return tx.Save(registration).Error
	})
}

func (s *gormPaymentStore) SavePaymentAndBundle(payment *model.PaymentModel, bundle *bundleModel.BadmintonBundleModel) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(payment).Error; err != nil {
			return err
		}
		if err := tx.Save(bundle).Error; err != nil {
			return err
		}
		// Save on the parent does not touch existing children; the mirrored
		// entry statuses are written explicitly.
		for i := range bundle.BadmintonBundleEntries {
			entry := &bundle.BadmintonBundleEntries[i]
			if err := tx.Model(&bundleModel.BadmintonEntryModel{}).
				Where("badminton_entry_id = ?", entry.BadmintonEntryID).
				Update("badminton_entry_status", entry.BadmintonEntryStatus).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *gormPaymentStore) RecordGatewayEvent(event *model.PaymentGatewayEventModel) error {
	return s.db.Create(event).Error
}
