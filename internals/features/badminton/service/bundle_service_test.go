package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"anpl_backend/internals/constants"
	"anpl_backend/internals/features/badminton/model"
	eventModel "anpl_backend/internals/features/events/model"
	userModel "anpl_backend/internals/features/users/model"
)

type mockBundleStore struct {
	mock.Mock
}

func (m *mockBundleStore) FindEvent(id uuid.UUID) (*eventModel.EventModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*eventModel.EventModel), args.Error(1)
}

func (m *mockBundleStore) FindCategory(id uuid.UUID) (*model.BadmintonCategoryModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BadmintonCategoryModel), args.Error(1)
}

func (m *mockBundleStore) FindUser(id uuid.UUID) (*userModel.UserModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.UserModel), args.Error(1)
}

func (m *mockBundleStore) CreateBundle(bundle *model.BadmintonBundleModel) error {
	args := m.Called(bundle)
	return args.Error(0)
}

func (m *mockBundleStore) FindBundle(id uuid.UUID) (*model.BadmintonBundleModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BadmintonBundleModel), args.Error(1)
}

func (m *mockBundleStore) ListCategories() ([]model.BadmintonCategoryModel, error) {
	args := m.Called()
	return args.Get(0).([]model.BadmintonCategoryModel), args.Error(1)
}

func badmintonEvent() *eventModel.EventModel {
	return &eventModel.EventModel{
		EventID:   uuid.New(),
		EventName: "ANPL Badminton 2026",
		EventType: constants.SportBadminton,
	}
}

func participant(name, gender string, age int) *userModel.UserModel {
	u := &userModel.UserModel{
		UserID:                uuid.New(),
		UserFullName:          name,
		UserDateOfBirth:       time.Now().AddDate(-age, 0, 0),
		UserPhoneNumber:       "9876543210",
		UserAadhaarFrontPhoto: "/uploads/front.webp",
		UserAadhaarBackPhoto:  "/uploads/back.webp",
	}
	if gender != "" {
		u.UserGender = &gender
	}
	return u
}

func soloCategory(name string) *model.BadmintonCategoryModel {
	return &model.BadmintonCategoryModel{
		BadmintonCategoryID:             uuid.New(),
		BadmintonCategoryName:           name,
		BadmintonCategoryType:           constants.CategorySolo,
		BadmintonCategoryPricePerPlayer: 800,
		BadmintonCategoryAgeLimit:       "OPEN",
	}
}

func TestCreateBundleTotals(t *testing.T) {
	store := new(mockBundleStore)
	svc := NewBundleService(store)

	event := badmintonEvent()
	owner := participant("Rohan Gupta", constants.GenderMale, 28)
	partner := participant("Amit Gupta", constants.GenderMale, 30)

	solo := soloCategory("Mens Single 20+")
	solo.BadmintonCategoryAgeLimit = "20+"
	double := &model.BadmintonCategoryModel{
		BadmintonCategoryID:             uuid.New(),
		BadmintonCategoryName:           "Men's Double Event",
		BadmintonCategoryType:           constants.CategoryDouble,
		BadmintonCategoryPricePerPlayer: 800,
		BadmintonCategoryAgeLimit:       "OPEN",
	}

	store.On("FindEvent", event.EventID).Return(event, nil)
	store.On("FindCategory", solo.BadmintonCategoryID).Return(solo, nil)
	store.On("FindCategory", double.BadmintonCategoryID).Return(double, nil)
	store.On("FindUser", partner.UserID).Return(partner, nil)
	store.On("CreateBundle", mock.AnythingOfType("*model.BadmintonBundleModel")).Return(nil)

	bundle, err := svc.CreateBundle(owner, event.EventID, true, nil, []EntryRequest{
		{CategoryID: solo.BadmintonCategoryID},
		{CategoryID: double.BadmintonCategoryID, PartnerUserID: &partner.UserID},
	})
	require.NoError(t, err)

	// 800 solo + 1600 double
	assert.Equal(t, 2400, bundle.BadmintonBundleTotalAmount)
	require.Len(t, bundle.BadmintonBundleEntries, 2)
	assert.Equal(t, 800, bundle.BadmintonBundleEntries[0].BadmintonEntryFee)
	assert.Equal(t, 1600, bundle.BadmintonBundleEntries[1].BadmintonEntryFee)
	assert.Equal(t, constants.RegistrationPending, bundle.BadmintonBundleStatus)

	// partner snapshot on the double entry
	doubleEntry := bundle.BadmintonBundleEntries[1]
	require.NotNil(t, doubleEntry.BadmintonEntryPartnerFullName)
	assert.Equal(t, "Amit Gupta", *doubleEntry.BadmintonEntryPartnerFullName)
	require.NotNil(t, doubleEntry.BadmintonEntryPartnerAge)
	assert.Equal(t, 30, *doubleEntry.BadmintonEntryPartnerAge)

	store.AssertExpectations(t)
}

func TestCreateBundleTotalMismatch(t *testing.T) {
	store := new(mockBundleStore)
	svc := NewBundleService(store)

	event := badmintonEvent()
	owner := participant("Rohan Gupta", constants.GenderMale, 28)
	solo := soloCategory("Mens Single 20+")
	solo.BadmintonCategoryAgeLimit = "20+"

	store.On("FindEvent", event.EventID).Return(event, nil)
	store.On("FindCategory", solo.BadmintonCategoryID).Return(solo, nil)

	wrongTotal := 500
	_, err := svc.CreateBundle(owner, event.EventID, true, &wrongTotal, []EntryRequest{
		{CategoryID: solo.BadmintonCategoryID},
	})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "Total amount mismatch", fe.Message)
	store.AssertNotCalled(t, "CreateBundle", mock.Anything)
}

func TestCreateBundleFamilyGenderCheck(t *testing.T) {
	store := new(mockBundleStore)
	svc := NewBundleService(store)

	event := badmintonEvent()
	owner := participant("Suresh Sharma", constants.GenderMale, 42)
	partner := participant("Priya Sharma", constants.GenderFemale, 12)

	family := &model.BadmintonCategoryModel{
		BadmintonCategoryID:             uuid.New(),
		BadmintonCategoryName:           "Father Son U15",
		BadmintonCategoryType:           constants.CategoryFamily,
		BadmintonCategoryPricePerPlayer: 800,
		BadmintonCategoryAgeLimit:       "OPEN",
	}

	store.On("FindEvent", event.EventID).Return(event, nil)
	store.On("FindCategory", family.BadmintonCategoryID).Return(family, nil)
	store.On("FindUser", partner.UserID).Return(partner, nil)

	_, err := svc.CreateBundle(owner, event.EventID, true, nil, []EntryRequest{
		{CategoryID: family.BadmintonCategoryID, SelfRelation: "Father", PartnerUserID: &partner.UserID},
	})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, "Partner must be male for Father Son U15", fe.Message)
	store.AssertNotCalled(t, "CreateBundle", mock.Anything)
}

// A failure in the second entry must persist nothing from the first.
func TestCreateBundleAtomicOnEntryFailure(t *testing.T) {
	store := new(mockBundleStore)
	svc := NewBundleService(store)

	event := badmintonEvent()
	owner := participant("Rohan Gupta", constants.GenderMale, 28)
	solo := soloCategory("Mens Single 20+")
	solo.BadmintonCategoryAgeLimit = "20+"
	missingCategoryID := uuid.New()

	store.On("FindEvent", event.EventID).Return(event, nil)
	store.On("FindCategory", solo.BadmintonCategoryID).Return(solo, nil)
	store.On("FindCategory", missingCategoryID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateBundle(owner, event.EventID, true, nil, []EntryRequest{
		{CategoryID: solo.BadmintonCategoryID},
		{CategoryID: missingCategoryID},
	})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	store.AssertNotCalled(t, "CreateBundle", mock.Anything)
}

func TestCreateBundleGuards(t *testing.T) {
	store := new(mockBundleStore)
	svc := NewBundleService(store)

	event := badmintonEvent()
	owner := participant("Rohan Gupta", constants.GenderMale, 28)
	store.On("FindEvent", event.EventID).Return(event, nil)

	t.Run("terms not accepted", func(t *testing.T) {
		_, err := svc.CreateBundle(owner, event.EventID, false, nil, []EntryRequest{{CategoryID: uuid.New()}})
		require.Error(t, err)
		assert.Equal(t, "Terms must be accepted", err.(*fiber.Error).Message)
	})

	t.Run("no entries", func(t *testing.T) {
		_, err := svc.CreateBundle(owner, event.EventID, true, nil, nil)
		require.Error(t, err)
		assert.Equal(t, "At least one entry is required", err.(*fiber.Error).Message)
	})

	t.Run("owner missing documents", func(t *testing.T) {
		undocumented := participant("Rahul Verma", constants.GenderMale, 25)
		undocumented.UserAadhaarBackPhoto = ""
		_, err := svc.CreateBundle(undocumented, event.EventID, true, nil, []EntryRequest{{CategoryID: uuid.New()}})
		require.Error(t, err)
		assert.Contains(t, err.(*fiber.Error).Message, "Player must upload Aadhaar")
	})

	t.Run("wrong event type", func(t *testing.T) {
		cricket := &eventModel.EventModel{EventID: uuid.New(), EventType: constants.SportCricket}
		store.On("FindEvent", cricket.EventID).Return(cricket, nil)
		_, err := svc.CreateBundle(owner, cricket.EventID, true, nil, []EntryRequest{{CategoryID: uuid.New()}})
		require.Error(t, err)
		assert.Equal(t, "Selected event is not a badminton event", err.(*fiber.Error).Message)
	})

	t.Run("partner required for double", func(t *testing.T) {
		double := &model.BadmintonCategoryModel{
			BadmintonCategoryID:             uuid.New(),
			BadmintonCategoryName:           "Mens Lucky Double Event",
			BadmintonCategoryType:           constants.CategoryDouble,
			BadmintonCategoryPricePerPlayer: 800,
			BadmintonCategoryAgeLimit:       "OPEN",
		}
		store.On("FindCategory", double.BadmintonCategoryID).Return(double, nil)
		_, err := svc.CreateBundle(owner, event.EventID, true, nil, []EntryRequest{
			{CategoryID: double.BadmintonCategoryID},
		})
		require.Error(t, err)
		assert.Equal(t, "Partner user is required for double categories", err.(*fiber.Error).Message)
	})

	t.Run("partner must differ from owner", func(t *testing.T) {
		double := &model.BadmintonCategoryModel{
			BadmintonCategoryID:             uuid.New(),
			BadmintonCategoryName:           "Mens Lucky Double Event",
			BadmintonCategoryType:           constants.CategoryDouble,
			BadmintonCategoryPricePerPlayer: 800,
			BadmintonCategoryAgeLimit:       "OPEN",
		}
		store.On("FindCategory", double.BadmintonCategoryID).Return(double, nil)
		_, err := svc.CreateBundle(owner, event.EventID, true, nil, []EntryRequest{
			{CategoryID: double.BadmintonCategoryID, PartnerUserID: &owner.UserID},
		})
		require.Error(t, err)
		assert.Equal(t, "Partner must be a different participant", err.(*fiber.Error).Message)
	})

	store.AssertNotCalled(t, "CreateBundle", mock.Anything)
}
