package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"anpl_backend/internals/constants"
	bundleModel "anpl_backend/internals/features/badminton/model"
	registrationModel "anpl_backend/internals/features/cricket/model"
	eventModel "anpl_backend/internals/features/events/model"
	"anpl_backend/internals/features/notifications"
	"anpl_backend/internals/features/payments/gateway"
	"anpl_backend/internals/features/payments/model"
	userModel "anpl_backend/internals/features/users/model"
)

// PaymentStore is the persistence port of the reconciliation engine. The
// SavePaymentAnd* methods must write the payment and its target as one atomic
// unit so the two rows never disagree after a crash.
type PaymentStore interface {
	FindRegistration(id uuid.UUID) (*registrationModel.EventRegistrationModel, error)
	FindBundle(id uuid.UUID) (*bundleModel.BadmintonBundleModel, error)
	FindEvent(id uuid.UUID) (*eventModel.EventModel, error)
	FindUser(id uuid.UUID) (*userModel.UserModel, error)
	FindPaymentByOrderID(orderID string) (*model.PaymentModel, error)
	FindLatestPaymentForRegistration(registrationID uuid.UUID) (*model.PaymentModel, error)
	FindLatestPaymentForBundle(bundleID uuid.UUID) (*model.PaymentModel, error)
	CreatePayment(payment *model.PaymentModel) error
	SaveBundle(bundle *bundleModel.BadmintonBundleModel) error
	SavePaymentAndRegistration(payment *model.PaymentModel, registration *registrationModel.EventRegistrationModel) error
	SavePaymentAndBundle(payment *model.PaymentModel, bundle *bundleModel.BadmintonBundleModel) error
	RecordGatewayEvent(event *model.PaymentGatewayEventModel) error
}

// VerifyInput is the checkout callback payload.
type VerifyInput struct {
	OrderID   string
	PaymentID string
	Signature string
}

type PaymentService struct {
	store    PaymentStore
	gateway  gateway.Gateway
	notifier notifications.Notifier
}

func NewPaymentService(store PaymentStore, gw gateway.Gateway, notifier notifications.Notifier) *PaymentService {
	return &PaymentService{store: store, gateway: gw, notifier: notifier}
}

// InitiateRegistrationOrder creates a gateway order for a pending cricket
// registration. The registration itself is never mutated here; only a
// successful verification or poll moves it.
func (s *PaymentService) InitiateRegistrationOrder(userID, registrationID uuid.UUID) (*model.PaymentModel, error) {
	registration, err := s.store.FindRegistration(registrationID)
	if err != nil {
		return nil, notFoundOr(err, "Registration not found")
	}
	if registration.EventRegistrationUserID != userID {
		return nil, fiber.NewError(fiber.StatusNotFound, "Registration not found")
	}
	if registration.EventRegistrationStatus != constants.RegistrationPending {
		return nil, fiber.NewError(fiber.StatusConflict, "Registration is not awaiting payment")
	}
	event, err := s.store.FindEvent(registration.EventRegistrationEventID)
	if err != nil {
		return nil, notFoundOr(err, "Event not found")
	}
	if event.EventPrice <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Event has no payable price configured")
	}

	receipt := fmt.Sprintf("reg_%s", registrationID.String()[:8])
	orderID, err := s.gateway.CreateOrder(event.EventPrice*100, "INR", receipt)
	if err != nil {
		log.Printf("[ERROR] gateway order create failed for registration %s: %v", registrationID, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create payment order")
	}

	payment := &model.PaymentModel{
		PaymentRegistrationID:  &registration.EventRegistrationID,
		PaymentAmount:          event.EventPrice,
		PaymentRazorpayOrderID: orderID,
		PaymentStatus:          constants.PaymentPending,
	}
	if err := s.store.CreatePayment(payment); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}
	s.audit(orderID, model.GatewayEventOrderCreated, map[string]interface{}{
		"registration_id": registrationID.String(),
		"amount":          event.EventPrice,
	})
	return payment, nil
}

// InitiateBundleOrder creates a gateway order for a pending badminton bundle
// and stamps the order id on the bundle for the polling fallback.
func (s *PaymentService) InitiateBundleOrder(userID, bundleID uuid.UUID) (*model.PaymentModel, error) {
	bundle, err := s.store.FindBundle(bundleID)
	if err != nil {
		return nil, notFoundOr(err, "Bundle not found")
	}
	if bundle.BadmintonBundleUserID != userID {
		return nil, fiber.NewError(fiber.StatusNotFound, "Bundle not found")
	}
	if bundle.BadmintonBundleStatus != constants.RegistrationPending {
		return nil, fiber.NewError(fiber.StatusConflict, "Bundle is not awaiting payment")
	}

	receipt := fmt.Sprintf("bdl_%s", bundleID.String()[:8])
	orderID, err := s.gateway.CreateOrder(bundle.BadmintonBundleTotalAmount*100, "INR", receipt)
	if err != nil {
		log.Printf("[ERROR] gateway order create failed for bundle %s: %v", bundleID, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create payment order")
	}

	bundle.BadmintonBundlePaymentOrderID = &orderID
	if err := s.store.SaveBundle(bundle); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment order")
	}

	payment := &model.PaymentModel{
		PaymentBundleID:        &bundle.BadmintonBundleID,
		PaymentAmount:          bundle.BadmintonBundleTotalAmount,
		PaymentRazorpayOrderID: orderID,
		PaymentStatus:          constants.PaymentPending,
	}
	if err := s.store.CreatePayment(payment); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}
	s.audit(orderID, model.GatewayEventOrderCreated, map[string]interface{}{
		"bundle_id": bundleID.String(),
		"amount":    bundle.BadmintonBundleTotalAmount,
	})
	return payment, nil
}

// VerifyPayment reconciles a checkout callback. A blank signature fails the
// attempt immediately without touching the gateway; an invalid signature fails
// it with the verification error surfaced. Only a gateway order in state
// "paid" approves the target.
func (s *PaymentService) VerifyPayment(userID uuid.UUID, input VerifyInput) (*model.PaymentModel, error) {
	payment, err := s.store.FindPaymentByOrderID(input.OrderID)
	if err != nil {
		return nil, notFoundOr(err, "Payment not found for this order")
	}
	target, err := s.loadTarget(payment)
	if err != nil {
		return nil, err
	}
	if target.ownerID() != userID {
		return nil, fiber.NewError(fiber.StatusNotFound, "Payment not found for this order")
	}

	if input.Signature == "" {
		s.audit(input.OrderID, model.GatewayEventSignatureMissing, map[string]interface{}{
			"payment_id": input.PaymentID,
		})
		s.fail(payment, target)
		return nil, fiber.NewError(fiber.StatusBadRequest, "Payment verification failed: missing signature")
	}

	if err := s.gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature); err != nil {
		s.audit(input.OrderID, model.GatewayEventSignatureRejected, map[string]interface{}{
			"payment_id": input.PaymentID,
			"error":      err.Error(),
		})
		s.fail(payment, target)
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Payment verification failed: %v", err))
	}

	paymentID := input.PaymentID
	payment.PaymentRazorpayPaymentID = &paymentID
	signature := input.Signature
	payment.PaymentRazorpaySignature = &signature

	status, err := s.gateway.FetchOrderStatus(input.OrderID)
	if err != nil {
		log.Printf("[ERROR] gateway order fetch failed for %s: %v", input.OrderID, err)
		s.fail(payment, target)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to confirm payment with the gateway")
	}
	s.audit(input.OrderID, model.GatewayEventOrderFetched, map[string]interface{}{
		"status": status,
	})

	if status != "paid" {
		s.fail(payment, target)
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Payment not completed: order status is %s", status))
	}

	return s.approve(payment, target, input.OrderID)
}

// PollPayment is the fallback for a checkout that never called back: look up
// the latest payment attempt at the gateway and settle from the order status.
// Only a "paid" order moves anything; an unpaid or unreachable order leaves
// payment and target exactly as they are so the buyer can still finish
// checkout. Safe to call repeatedly; terminal targets are left untouched.
func (s *PaymentService) PollPayment(userID uuid.UUID, orderID string) (*model.PaymentModel, error) {
	payment, err := s.store.FindPaymentByOrderID(orderID)
	if err != nil {
		return nil, notFoundOr(err, "Payment not found for this order")
	}
	return s.poll(userID, payment)
}

// PollRegistrationPayment polls by registration id for clients that lost the
// gateway order id. The most recent payment attempt is the one reconciled.
func (s *PaymentService) PollRegistrationPayment(userID, registrationID uuid.UUID) (*model.PaymentModel, error) {
	payment, err := s.store.FindLatestPaymentForRegistration(registrationID)
	if err != nil {
		return nil, notFoundOr(err, "No payment found for this registration")
	}
	return s.poll(userID, payment)
}

// PollBundlePayment is the bundle counterpart of PollRegistrationPayment.
func (s *PaymentService) PollBundlePayment(userID, bundleID uuid.UUID) (*model.PaymentModel, error) {
	payment, err := s.store.FindLatestPaymentForBundle(bundleID)
	if err != nil {
		return nil, notFoundOr(err, "No payment found for this bundle")
	}
	return s.poll(userID, payment)
}

func (s *PaymentService) poll(userID uuid.UUID, payment *model.PaymentModel) (*model.PaymentModel, error) {
	orderID := payment.PaymentRazorpayOrderID
	target, err := s.loadTarget(payment)
	if err != nil {
		return nil, err
	}
	if target.ownerID() != userID {
		return nil, fiber.NewError(fiber.StatusNotFound, "Payment not found for this order")
	}
	if payment.PaymentStatus != constants.PaymentPending {
		// already settled; nothing to reconcile
		return payment, nil
	}

	if payment.PaymentRazorpayPaymentID == nil {
		latest, err := s.gateway.FetchLatestPaymentID(orderID)
		if err != nil {
			log.Printf("[WARN] payment poll could not list attempts for order %s: %v", orderID, err)
		} else if latest != "" {
			payment.PaymentRazorpayPaymentID = &latest
		}
	}

	status, err := s.gateway.FetchOrderStatus(orderID)
	if err != nil {
		log.Printf("[ERROR] gateway order fetch failed for %s: %v", orderID, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to confirm payment with the gateway")
	}
	s.audit(orderID, model.GatewayEventOrderFetched, map[string]interface{}{
		"status": status,
	})

	if status != "paid" {
		return payment, nil
	}

	return s.approve(payment, target, orderID)
}

// approve settles payment and target together as the terminal success state.
func (s *PaymentService) approve(payment *model.PaymentModel, target paymentTarget, orderID string) (*model.PaymentModel, error) {
	now := time.Now()
	payment.MarkCompleted(now)
	changed := target.markStatus(constants.RegistrationApproved)
	if err := target.save(s.store, payment); err != nil {
		log.Printf("[ERROR] payment settle persist failed for order %s: %v", orderID, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment result")
	}
	if changed {
		s.notifyApproved(target)
	}
	return payment, nil
}

// fail settles payment and target as FAILED. Persistence errors are logged,
// not surfaced: the caller is already returning the verification error.
func (s *PaymentService) fail(payment *model.PaymentModel, target paymentTarget) {
	payment.MarkFailed()
	target.markStatus(constants.RegistrationFailed)
	if err := target.save(s.store, payment); err != nil {
		log.Printf("[ERROR] payment failure persist failed for order %s: %v",
			payment.PaymentRazorpayOrderID, err)
	}
}

func (s *PaymentService) notifyApproved(target paymentTarget) {
	user, err := s.store.FindUser(target.ownerID())
	if err != nil {
		return
	}
	event, err := s.store.FindEvent(target.eventID())
	eventName := "event"
	if err == nil {
		eventName = event.EventName
	}
	go target.notify(s.notifier, user.UserFullName, eventName)
}

// audit appends a gateway event row. Best effort; an audit failure never
// blocks the payment flow.
func (s *PaymentService) audit(orderID, kind string, payload map[string]interface{}) {
	raw, err := sonic.Marshal(payload)
	if err != nil {
		raw = []byte("{}")
	}
	event := &model.PaymentGatewayEventModel{
		PaymentGatewayEventOrderID: orderID,
		PaymentGatewayEventKind:    kind,
		PaymentGatewayEventPayload: datatypes.JSON(raw),
	}
	if err := s.store.RecordGatewayEvent(event); err != nil {
		log.Printf("[WARN] gateway audit write failed for order %s: %v", orderID, err)
	}
}

// paymentTarget unifies the two payable targets so the reconciliation path is
// written once.
type paymentTarget interface {
	ownerID() uuid.UUID
	eventID() uuid.UUID
	markStatus(next string) bool
	save(store PaymentStore, payment *model.PaymentModel) error
	notify(n notifications.Notifier, userName, eventName string)
}

type registrationTarget struct {
	registration *registrationModel.EventRegistrationModel
}

func (t registrationTarget) ownerID() uuid.UUID { return t.registration.EventRegistrationUserID }
func (t registrationTarget) eventID() uuid.UUID { return t.registration.EventRegistrationEventID }
func (t registrationTarget) markStatus(next string) bool {
	return t.registration.MarkStatus(next)
}
func (t registrationTarget) save(store PaymentStore, payment *model.PaymentModel) error {
	return store.SavePaymentAndRegistration(payment, t.registration)
}
func (t registrationTarget) notify(n notifications.Notifier, userName, eventName string) {
	n.NotifyRegistrationStatus(userName, eventName, t.registration.EventRegistrationStatus)
}

type bundleTarget struct {
	bundle *bundleModel.BadmintonBundleModel
}

func (t bundleTarget) ownerID() uuid.UUID { return t.bundle.BadmintonBundleUserID }
func (t bundleTarget) eventID() uuid.UUID { return t.bundle.BadmintonBundleEventID }
func (t bundleTarget) markStatus(next string) bool {
	return t.bundle.MarkStatus(next)
}
func (t bundleTarget) save(store PaymentStore, payment *model.PaymentModel) error {
	return store.SavePaymentAndBundle(payment, t.bundle)
}
func (t bundleTarget) notify(n notifications.Notifier, userName, eventName string) {
	n.NotifyBundleStatus(userName, eventName, t.bundle.BadmintonBundleTotalAmount, t.bundle.BadmintonBundleStatus)
}

func (s *PaymentService) loadTarget(payment *model.PaymentModel) (paymentTarget, error) {
	switch {
	case payment.PaymentRegistrationID != nil:
		registration, err := s.store.FindRegistration(*payment.PaymentRegistrationID)
		if err != nil {
			return nil, notFoundOr(err, "Registration not found")
		}
		return registrationTarget{registration: registration}, nil
	case payment.PaymentBundleID != nil:
		bundle, err := s.store.FindBundle(*payment.PaymentBundleID)
		if err != nil {
			return nil, notFoundOr(err, "Bundle not found")
		}
		return bundleTarget{bundle: bundle}, nil
	default:
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Payment has no target")
	}
}

func notFoundOr(err error, message string) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, message)
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
}
