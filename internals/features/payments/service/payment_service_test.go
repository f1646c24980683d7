package service

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"anpl_backend/internals/constants"
	bundleModel "anpl_backend/internals/features/badminton/model"
	registrationModel "anpl_backend/internals/features/cricket/model"
	eventModel "anpl_backend/internals/features/events/model"
	"anpl_backend/internals/features/notifications"
	"anpl_backend/internals/features/payments/model"
	userModel "anpl_backend/internals/features/users/model"
)

type mockPaymentStore struct {
	mock.Mock
}

func (m *mockPaymentStore) FindRegistration(id uuid.UUID) (*registrationModel.EventRegistrationModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registrationModel.EventRegistrationModel), args.Error(1)
}

func (m *mockPaymentStore) FindBundle(id uuid.UUID) (*bundleModel.BadmintonBundleModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bundleModel.BadmintonBundleModel), args.Error(1)
}

func (m *mockPaymentStore) FindEvent(id uuid.UUID) (*eventModel.EventModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*eventModel.EventModel), args.Error(1)
}

func (m *mockPaymentStore) FindUser(id uuid.UUID) (*userModel.UserModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.UserModel), args.Error(1)
}

func (m *mockPaymentStore) FindPaymentByOrderID(orderID string) (*model.PaymentModel, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentModel), args.Error(1)
}

func (m *mockPaymentStore) FindLatestPaymentForRegistration(registrationID uuid.UUID) (*model.PaymentModel, error) {
	args := m.Called(registrationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentModel), args.Error(1)
}

func (m *mockPaymentStore) FindLatestPaymentForBundle(bundleID uuid.UUID) (*model.PaymentModel, error) {
	args := m.Called(bundleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentModel), args.Error(1)
}

func (m *mockPaymentStore) CreatePayment(payment *model.PaymentModel) error {
	args := m.Called(payment)
	return args.Error(0)
}

func (m *mockPaymentStore) SaveBundle(bundle *bundleModel.BadmintonBundleModel) error {
	args := m.Called(bundle)
	return args.Error(0)
}

func (m *mockPaymentStore) SavePaymentAndRegistration(payment *model.PaymentModel, registration *registrationModel.EventRegistrationModel) error {
	args := m.Called(payment, registration)
	return args.Error(0)
}

func (m *mockPaymentStore) SavePaymentAndBundle(payment *model.PaymentModel, bundle *bundleModel.BadmintonBundleModel) error {
	args := m.Called(payment, bundle)
	return args.Error(0)
}

func (m *mockPaymentStore) RecordGatewayEvent(event *model.PaymentGatewayEventModel) error {
	args := m.Called(event)
	return args.Error(0)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateOrder(amountPaise int, currency, receipt string) (string, error) {
	args := m.Called(amountPaise, currency, receipt)
	return args.String(0), args.Error(1)
}

func (m *mockGateway) FetchOrderStatus(orderID string) (string, error) {
	args := m.Called(orderID)
	return args.String(0), args.Error(1)
}

func (m *mockGateway) VerifySignature(orderID, paymentID, signature string) error {
	args := m.Called(orderID, paymentID, signature)
	return args.Error(0)
}

func (m *mockGateway) FetchLatestPaymentID(orderID string) (string, error) {
	args := m.Called(orderID)
	return args.String(0), args.Error(1)
}

func pendingRegistration(userID uuid.UUID) *registrationModel.EventRegistrationModel {
	return &registrationModel.EventRegistrationModel{
		EventRegistrationID:      uuid.New(),
		EventRegistrationUserID:  userID,
		EventRegistrationEventID: uuid.New(),
		EventRegistrationStatus:  constants.RegistrationPending,
	}
}

func pendingPaymentFor(registration *registrationModel.EventRegistrationModel, orderID string) *model.PaymentModel {
	return &model.PaymentModel{
		PaymentID:              uuid.New(),
		PaymentRegistrationID:  &registration.EventRegistrationID,
		PaymentAmount:          1500,
		PaymentRazorpayOrderID: orderID,
		PaymentStatus:          constants.PaymentPending,
	}
}

func newTestService(store *mockPaymentStore, gw *mockGateway) *PaymentService {
	return NewPaymentService(store, gw, notifications.NewTelegramNotifier("", ""))
}

func stubApprovalNotification(store *mockPaymentStore, registration *registrationModel.EventRegistrationModel) {
	store.On("FindUser", registration.EventRegistrationUserID).Return(&userModel.UserModel{
		UserID:       registration.EventRegistrationUserID,
		UserFullName: "Vikram Singh",
	}, nil).Maybe()
	store.On("FindEvent", registration.EventRegistrationEventID).Return(&eventModel.EventModel{
		EventID:   registration.EventRegistrationEventID,
		EventName: "ANPL Cricket 2026",
	}, nil).Maybe()
}

func TestVerifyPaymentBlankSignature(t *testing.T) {
	store := new(mockPaymentStore)
	gw := new(mockGateway)
	svc := newTestService(store, gw)

	userID := uuid.New()
	registration := pendingRegistration(userID)
	payment := pendingPaymentFor(registration, "order_blank")

	store.On("FindPaymentByOrderID", "order_blank").Return(payment, nil)
	store.On("FindRegistration", registration.EventRegistrationID).Return(registration, nil)
	store.On("RecordGatewayEvent", mock.Anything).Return(nil)
	store.On("SavePaymentAndRegistration", payment, registration).Return(nil)

	_, err := svc.VerifyPayment(userID, VerifyInput{
		OrderID:   "order_blank",
		PaymentID: "pay_123",
		Signature: "",
	})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "Payment verification failed: missing signature", fe.Message)

	// both rows fail; the gateway is never contacted
	assert.Equal(t, constants.PaymentFailed, payment.PaymentStatus)
	assert.Equal(t, constants.RegistrationFailed, registration.EventRegistrationStatus)
	gw.AssertNotCalled(t, "VerifySignature", mock.Anything, mock.Anything, mock.Anything)
	gw.AssertNotCalled(t, "FetchOrderStatus", mock.Anything)
}

func TestVerifyPaymentSuccess(t *testing.T) {
	store := new(mockPaymentStore)
	gw := new(mockGateway)
	svc := newTestService(store, gw)

	userID := uuid.New()
	registration := pendingRegistration(userID)
	payment := pendingPaymentFor(registration, "order_ok")

	store.On("FindPaymentByOrderID", "order_ok").Return(payment, nil)
	store.On("FindRegistration", registration.EventRegistrationID).Return(registration, nil)
	store.On("RecordGatewayEvent", mock.Anything).Return(nil)
	store.On("SavePaymentAndRegistration", payment, registration).Return(nil)
	stubApprovalNotification(store, registration)

	gw.On("VerifySignature", "order_ok", "pay_123", "sig_valid").Return(nil)
	gw.On("FetchOrderStatus", "order_ok").Return("paid", nil)

	result, err := svc.VerifyPayment(userID, VerifyInput{
		OrderID:   "order_ok",
		PaymentID: "pay_123",
		Signature: "sig_valid",
	})
	require.NoError(t, err)

	assert.Equal(t, constants.PaymentCompleted, result.PaymentStatus)
	assert.NotNil(t, result.PaymentDate)
	require.NotNil(t, result.PaymentRazorpayPaymentID)
	assert.Equal(t, "pay_123", *result.PaymentRazorpayPaymentID)
	assert.Equal(t, constants.RegistrationApproved, registration.EventRegistrationStatus)
	store.AssertCalled(t, "SavePaymentAndRegistration", payment, registration)
}

func TestVerifyPaymentInvalidSignature(t *testing.T) {
	store := new(mockPaymentStore)
	gw := new(mockGateway)
	svc := newTestService(store, gw)

	userID := uuid.New()
	registration := pendingRegistration(userID)
	payment := pendingPaymentFor(registration, "order_bad")

	store.On("FindPaymentByOrderID", "order_bad").Return(payment, nil)
	store.On("FindRegistration", registration.EventRegistrationID).Return(registration, nil)
	store.On("RecordGatewayEvent", mock.Anything).Return(nil)
	store.On("SavePaymentAndRegistration", payment, registration).Return(nil)

	gw.On("VerifySignature", "order_bad", "pay_123", "sig_forged").
		Return(fmt.Errorf("signature mismatch for order order_bad"))

	_, err := svc.VerifyPayment(userID, VerifyInput{
		OrderID:   "order_bad",
		PaymentID: "pay_123",
		Signature: "sig_forged",
	})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, "Payment verification failed: signature mismatch for order order_bad", fe.Message)
	assert.Equal(t, constants.PaymentFailed, payment.PaymentStatus)
	assert.Equal(t, constants.RegistrationFailed, registration.EventRegistrationStatus)
	gw.AssertNotCalled(t, "FetchOrderStatus", mock.Anything)
}

func TestVerifyPaymentOrderNotPaid(t *testing.T) {
	store := new(mockPaymentStore)
	gw := new(mockGateway)
	svc := newTestService(store, gw)

	userID := uuid.New()
	registration := pendingRegistration(userID)
	payment := pendingPaymentFor(registration, "order_attempted")

	store.On("FindPaymentByOrderID", "order_attempted").Return(payment, nil)
	store.On("FindRegistration", registration.EventRegistrationID).Return(registration, nil)
	store.On("RecordGatewayEvent", mock.Anything).Return(nil)
	store.On("SavePaymentAndRegistration", payment, registration).Return(nil)

	gw.On("VerifySignature", "order_attempted", "pay_123", "sig_valid").Return(nil)
	gw.On("FetchOrderStatus", "order_attempted").Return("attempted", nil)

	_, err := svc.VerifyPayment(userID, VerifyInput{
		OrderID:   "order_attempted",
		PaymentID: "pay_123",
		Signature: "sig_valid",
	})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, "Payment not completed: order status is attempted", fe.Message)
	assert.Equal(t, constants.PaymentFailed, payment.PaymentStatus)
	assert.Equal(t, constants.RegistrationFailed, registration.EventRegistrationStatus)
}

func TestVerifyPaymentWrongOwner(t *testing.T) {
	store := new(mockPaymentStore)
	gw := new(mockGateway)
	svc := newTestService(store, gw)

	registration := pendingRegistration(uuid.New())
	payment := pendingPaymentFor(registration, "order_foreign")

	store.On("FindPaymentByOrderID", "order_foreign").Return(payment, nil)
	store.On("FindRegistration", registration.EventRegistrationID).Return(registration, nil)

	_, err := svc.VerifyPayment(uuid.New(), VerifyInput{
		OrderID:   "order_foreign",
		PaymentID: "pay_123",
		Signature: "sig_valid",
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, err.(*fiber.Error).Code)
	gw.AssertNotCalled(t, "VerifySignature", mock.Anything, mock.Anything, mock.Anything)
}

func TestPollPaymentAlreadySettled(t *testing.T) {
	store := new(mockPaymentStore)
	gw := new(mockGateway)
	svc := newTestService(store, gw)

	userID := uuid.New()
	registration := pendingRegistration(userID)
	registration.EventRegistrationStatus = constants.RegistrationApproved
	payment := pendingPaymentFor(registration, "order_done")
	payment.PaymentStatus = constants.PaymentCompleted

	store.On("FindPaymentByOrderID", "order_done").Return(payment, nil)
	store.On("FindRegistration", registration.EventRegistrationID).Return(registration, nil)

	result, err := svc.PollPayment(userID, "order_done")
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentCompleted, result.PaymentStatus)
	gw.AssertNotCalled(t, "FetchOrderStatus", mock.Anything)
	gw.AssertNotCalled(t, "FetchLatestPaymentID", mock.Anything)
}

func TestPollPaymentConfirmsPaid(t *testing.T) {
	store := new(mockPaymentStore)
	gw := new(mockGateway)
	svc := newTestService(store, gw)

	userID := uuid.New()
	registration := pendingRegistration(userID)
	payment := pendingPaymentFor(registration, "order_poll")

	store.On("FindPaymentByOrderID", "order_poll").Return(payment, nil)
	store.On("FindRegistration", registration.EventRegistrationID).Return(registration, nil)
	store.On("RecordGatewayEvent", mock.Anything).Return(nil)
	store.On("SavePaymentAndRegistration", payment, registration).Return(nil)
	stubApprovalNotification(store, registration)

	gw.On("FetchLatestPaymentID", "order_poll").Return("pay_late", nil)
	gw.On("FetchOrderStatus", "order_poll").Return("paid", nil)

	result, err := svc.PollPayment(userID, "order_poll")
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentCompleted, result.PaymentStatus)
	require.NotNil(t, result.PaymentRazorpayPaymentID)
	assert.Equal(t, "pay_late", *result.PaymentRazorpayPaymentID)
	assert.Equal(t, constants.RegistrationApproved, registration.EventRegistrationStatus)
}

// Polling by registration id resolves the most recent payment attempt and
// settles it the same way an order-id poll would.
func TestPollRegistrationPaymentConfirmsPaid(t *testing.T) {
	store := new(mockPaymentStore)
	gw := new(mockGateway)
	svc := newTestService(store, gw)

	userID := uuid.New()
	registration := pendingRegistration(userID)
	payment := pendingPaymentFor(registration, "order_by_reg")

	store.On("FindLatestPaymentForRegistration", registration.EventRegistrationID).Return(payment, nil)
	store.On("FindRegistration", registration.EventRegistrationID).Return(registration, nil)
	store.On("RecordGatewayEvent", mock.Anything).Return(nil)
	store.On("SavePaymentAndRegistration", payment, registration).Return(nil)
	stubApprovalNotification(store, registration)

	gw.On("FetchLatestPaymentID", "order_by_reg").Return("pay_reg", nil)
	gw.On("FetchOrderStatus", "order_by_reg").Return("paid", nil)

	result, err := svc.PollRegistrationPayment(userID, registration.EventRegistrationID)
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentCompleted, result.PaymentStatus)
	assert.Equal(t, constants.RegistrationApproved, registration.EventRegistrationStatus)
}

// A status check on an order the buyer has not finished paying must not move
// anything; the registration stays payable.
func TestPollPaymentLeavesUnpaidPending(t *testing.T) {
	store := new(mockPaymentStore)
	gw := new(mockGateway)
	svc := newTestService(store, gw)

	userID := uuid.New()
	registration := pendingRegistration(userID)
	payment := pendingPaymentFor(registration, "order_open")

	store.On("FindPaymentByOrderID", "order_open").Return(payment, nil)
	store.On("FindRegistration", registration.EventRegistrationID).Return(registration, nil)
	store.On("RecordGatewayEvent", mock.Anything).Return(nil)

	gw.On("FetchLatestPaymentID", "order_open").Return("", nil)
	gw.On("FetchOrderStatus", "order_open").Return("created", nil)

	result, err := svc.PollPayment(userID, "order_open")
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentPending, result.PaymentStatus)
	assert.Equal(t, constants.RegistrationPending, registration.EventRegistrationStatus)
	store.AssertNotCalled(t, "SavePaymentAndRegistration", mock.Anything, mock.Anything)
}

// A fetch failure during a poll leaves everything as found: the next poll
// retries.
func TestPollPaymentGatewayErrorKeepsPending(t *testing.T) {
	store := new(mockPaymentStore)
	gw := new(mockGateway)
	svc := newTestService(store, gw)

	userID := uuid.New()
	registration := pendingRegistration(userID)
	payment := pendingPaymentFor(registration, "order_flaky")

	store.On("FindPaymentByOrderID", "order_flaky").Return(payment, nil)
	store.On("FindRegistration", registration.EventRegistrationID).Return(registration, nil)

	gw.On("FetchLatestPaymentID", "order_flaky").Return("", nil)
	gw.On("FetchOrderStatus", "order_flaky").Return("", fmt.Errorf("gateway timeout"))

	_, err := svc.PollPayment(userID, "order_flaky")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, err.(*fiber.Error).Code)
	assert.Equal(t, constants.PaymentPending, payment.PaymentStatus)
	assert.Equal(t, constants.RegistrationPending, registration.EventRegistrationStatus)
	store.AssertNotCalled(t, "SavePaymentAndRegistration", mock.Anything, mock.Anything)
}

// During callback verification a gateway outage fails the attempt instead of
// leaving the registration stuck pending.
func TestVerifyPaymentGatewayUnreachableFails(t *testing.T) {
	store := new(mockPaymentStore)
	gw := new(mockGateway)
	svc := newTestService(store, gw)

	userID := uuid.New()
	registration := pendingRegistration(userID)
	payment := pendingPaymentFor(registration, "order_down")

	store.On("FindPaymentByOrderID", "order_down").Return(payment, nil)
	store.On("FindRegistration", registration.EventRegistrationID).Return(registration, nil)
	store.On("RecordGatewayEvent", mock.Anything).Return(nil)
	store.On("SavePaymentAndRegistration", payment, registration).Return(nil)

	gw.On("VerifySignature", "order_down", "pay_123", "sig_valid").Return(nil)
	gw.On("FetchOrderStatus", "order_down").Return("", fmt.Errorf("gateway timeout"))

	_, err := svc.VerifyPayment(userID, VerifyInput{
		OrderID:   "order_down",
		PaymentID: "pay_123",
		Signature: "sig_valid",
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, err.(*fiber.Error).Code)
	assert.Equal(t, constants.PaymentFailed, payment.PaymentStatus)
	assert.Equal(t, constants.RegistrationFailed, registration.EventRegistrationStatus)
	store.AssertCalled(t, "SavePaymentAndRegistration", payment, registration)
}

func TestInitiateRegistrationOrder(t *testing.T) {
	store := new(mockPaymentStore)
	gw := new(mockGateway)
	svc := newTestService(store, gw)

	userID := uuid.New()
	registration := pendingRegistration(userID)
	event := &eventModel.EventModel{
		EventID:    registration.EventRegistrationEventID,
		EventName:  "ANPL Cricket 2026",
		EventType:  constants.SportCricket,
		EventPrice: 1500,
	}

	store.On("FindRegistration", registration.EventRegistrationID).Return(registration, nil)
	store.On("FindEvent", event.EventID).Return(event, nil)
	store.On("CreatePayment", mock.AnythingOfType("*model.PaymentModel")).Return(nil)
	store.On("RecordGatewayEvent", mock.Anything).Return(nil)

	// amount forwarded in paise
	gw.On("CreateOrder", 150000, "INR", mock.AnythingOfType("string")).Return("order_new", nil)

	payment, err := svc.InitiateRegistrationOrder(userID, registration.EventRegistrationID)
	require.NoError(t, err)
	assert.Equal(t, "order_new", payment.PaymentRazorpayOrderID)
	assert.Equal(t, 1500, payment.PaymentAmount)
	assert.Equal(t, constants.PaymentPending, payment.PaymentStatus)

	// creating an order must leave the registration untouched
	assert.Equal(t, constants.RegistrationPending, registration.EventRegistrationStatus)
}

func TestInitiateRegistrationOrderGuards(t *testing.T) {
	store := new(mockPaymentStore)
	gw := new(mockGateway)
	svc := newTestService(store, gw)

	t.Run("foreign registration reads as missing", func(t *testing.T) {
		registration := pendingRegistration(uuid.New())
		store.On("FindRegistration", registration.EventRegistrationID).Return(registration, nil)
		_, err := svc.InitiateRegistrationOrder(uuid.New(), registration.EventRegistrationID)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusNotFound, err.(*fiber.Error).Code)
	})

	t.Run("terminal registration refuses a new order", func(t *testing.T) {
		userID := uuid.New()
		registration := pendingRegistration(userID)
		registration.EventRegistrationStatus = constants.RegistrationApproved
		store.On("FindRegistration", registration.EventRegistrationID).Return(registration, nil)
		_, err := svc.InitiateRegistrationOrder(userID, registration.EventRegistrationID)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusConflict, err.(*fiber.Error).Code)
	})

	gw.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestInitiateBundleOrderStampsOrderID(t *testing.T) {
	store := new(mockPaymentStore)
	gw := new(mockGateway)
	svc := newTestService(store, gw)

	userID := uuid.New()
	bundle := &bundleModel.BadmintonBundleModel{
		BadmintonBundleID:          uuid.New(),
		BadmintonBundleUserID:      userID,
		BadmintonBundleEventID:     uuid.New(),
		BadmintonBundleStatus:      constants.RegistrationPending,
		BadmintonBundleTotalAmount: 2400,
	}

	store.On("FindBundle", bundle.BadmintonBundleID).Return(bundle, nil)
	store.On("SaveBundle", bundle).Return(nil)
	store.On("CreatePayment", mock.AnythingOfType("*model.PaymentModel")).Return(nil)
	store.On("RecordGatewayEvent", mock.Anything).Return(nil)

	gw.On("CreateOrder", 240000, "INR", mock.AnythingOfType("string")).Return("order_bundle", nil)

	payment, err := svc.InitiateBundleOrder(userID, bundle.BadmintonBundleID)
	require.NoError(t, err)
	assert.Equal(t, "order_bundle", payment.PaymentRazorpayOrderID)
	require.NotNil(t, bundle.BadmintonBundlePaymentOrderID)
	assert.Equal(t, "order_bundle", *bundle.BadmintonBundlePaymentOrderID)
	assert.Equal(t, constants.RegistrationPending, bundle.BadmintonBundleStatus)
}

// Bundle approval mirrors the status onto every entry.
func TestVerifyBundlePaymentMirrorsEntries(t *testing.T) {
	store := new(mockPaymentStore)
	gw := new(mockGateway)
	svc := newTestService(store, gw)

	userID := uuid.New()
	bundle := &bundleModel.BadmintonBundleModel{
		BadmintonBundleID:          uuid.New(),
		BadmintonBundleUserID:      userID,
		BadmintonBundleEventID:     uuid.New(),
		BadmintonBundleStatus:      constants.RegistrationPending,
		BadmintonBundleTotalAmount: 1600,
		BadmintonBundleEntries: []bundleModel.BadmintonEntryModel{
			{BadmintonEntryID: uuid.New(), BadmintonEntryStatus: constants.RegistrationPending},
			{BadmintonEntryID: uuid.New(), BadmintonEntryStatus: constants.RegistrationPending},
		},
	}
	payment := &model.PaymentModel{
		PaymentID:              uuid.New(),
		PaymentBundleID:        &bundle.BadmintonBundleID,
		PaymentAmount:          1600,
		PaymentRazorpayOrderID: "order_bundle_ok",
		PaymentStatus:          constants.PaymentPending,
	}

	store.On("FindPaymentByOrderID", "order_bundle_ok").Return(payment, nil)
	store.On("FindBundle", bundle.BadmintonBundleID).Return(bundle, nil)
	store.On("RecordGatewayEvent", mock.Anything).Return(nil)
	store.On("SavePaymentAndBundle", payment, bundle).Return(nil)
	store.On("FindUser", userID).Return(&userModel.UserModel{UserID: userID, UserFullName: "Rohan Gupta"}, nil).Maybe()
	store.On("FindEvent", bundle.BadmintonBundleEventID).Return(&eventModel.EventModel{
		EventID:   bundle.BadmintonBundleEventID,
		EventName: "ANPL Badminton 2026",
	}, nil).Maybe()

	gw.On("VerifySignature", "order_bundle_ok", "pay_b", "sig_valid").Return(nil)
	gw.On("FetchOrderStatus", "order_bundle_ok").Return("paid", nil)

	_, err := svc.VerifyPayment(userID, VerifyInput{
		OrderID:   "order_bundle_ok",
		PaymentID: "pay_b",
		Signature: "sig_valid",
	})
	require.NoError(t, err)

	assert.Equal(t, constants.RegistrationApproved, bundle.BadmintonBundleStatus)
	for _, entry := range bundle.BadmintonBundleEntries {
		assert.Equal(t, constants.RegistrationApproved, entry.BadmintonEntryStatus)
	}
}
