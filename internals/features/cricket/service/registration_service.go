package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"anpl_backend/internals/constants"
	"anpl_backend/internals/features/cricket/model"
	eventModel "anpl_backend/internals/features/events/model"
	"anpl_backend/internals/features/notifications"
	userModel "anpl_backend/internals/features/users/model"
)

// RegistrationStore is the persistence port of the registration state
// machine. SaveCricketRegistration must persist user refresh, profile upsert
// and registration fields as one atomic unit, translating unique-constraint
// violations into ErrDuplicate.
type RegistrationStore interface {
	FindEvent(id uuid.UUID) (*eventModel.EventModel, error)
	FindRegistration(userID, eventID uuid.UUID) (*model.EventRegistrationModel, error)
	FindRegistrationByID(id uuid.UUID) (*model.EventRegistrationModel, error)
	JerseyTaken(eventID uuid.UUID, jersey int, excludeRegistrationID uuid.UUID) (bool, error)
	SaveCricketRegistration(user *userModel.UserModel, profile *model.CricketProfileModel, registration *model.EventRegistrationModel) error
	SaveRegistration(registration *model.EventRegistrationModel) error
	FindUser(id uuid.UUID) (*userModel.UserModel, error)
	FindCricketProfile(userID uuid.UUID) (*model.CricketProfileModel, error)
	ListRegistrationsByEvent(eventID uuid.UUID) ([]model.EventRegistrationModel, error)
}

// ErrDuplicate marks a backing-store uniqueness violation; the service
// translates it into the matching domain error.
var ErrDuplicate = errors.New("duplicate row")

// RegistrationInput carries the event-specific fields of a cricket
// registration submission.
type RegistrationInput struct {
	EventID          uuid.UUID
	JerseyNumber     int
	TshirtName       string
	Category         string
	CricketRole      string // BATTING | BOWLING | ALL_ROUNDER | WICKET_KEEPER
	SkillLevel       string
	SportsHistory    string
	Achievements     string
	BattingHand      string
	BowlingPace      string
	BowlingArm       string
	IsWicketKeeper   bool
	HasCaptaincy     bool
	AvailableAllDays *bool
	UnavailableDates []string
	TermsAccepted    bool
	Gender           *string
	WhatsappNumber   string
}

type RegistrationService struct {
	store    RegistrationStore
	notifier notifications.Notifier
}

func NewRegistrationService(store RegistrationStore, notifier notifications.Notifier) *RegistrationService {
	return &RegistrationService{store: store, notifier: notifier}
}

// RegisterForCricket runs the full single-entry registration: create-or-reuse
// the PENDING registration, validate jersey uniqueness and availability,
// upsert the cricket profile and stamp the terms acceptance, all before any
// payment.
func (s *RegistrationService) RegisterForCricket(user *userModel.UserModel, input RegistrationInput) (*model.EventRegistrationModel, error) {
	event, err := s.store.FindEvent(input.EventID)
	if err != nil {
		return nil, s.notFoundOr(err, "Event not found")
	}
	if event.EventType != constants.SportCricket {
		return nil, fiber.NewError(fiber.StatusBadRequest, "This endpoint is only for cricket events")
	}

	if err := validateAvailability(input, event); err != nil {
		return nil, err
	}

	// Create or reuse: an APPROVED registration blocks resubmission, a
	// PENDING one is reused so the participant can retry payment.
	registration, err := s.store.FindRegistration(user.UserID, input.EventID)
	switch {
	case err == nil:
		if registration.EventRegistrationStatus == constants.RegistrationApproved {
			return nil, fiber.NewError(fiber.StatusConflict, "You are already registered for this cricket event")
		}
		log.Printf("[INFO] Reusing registration %s with status %s",
			registration.EventRegistrationID, registration.EventRegistrationStatus)
	case errors.Is(err, gorm.ErrRecordNotFound):
		registration = &model.EventRegistrationModel{
			EventRegistrationUserID:  user.UserID,
			EventRegistrationEventID: input.EventID,
			EventRegistrationStatus:  constants.RegistrationPending,
		}
	default:
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	// Jersey number is unique per event; the participant's own prior value
	// passes untouched.
	jerseyChanged := registration.EventRegistrationJerseyNumber == nil ||
		*registration.EventRegistrationJerseyNumber != input.JerseyNumber
	if jerseyChanged {
		taken, err := s.store.JerseyTaken(input.EventID, input.JerseyNumber, registration.EventRegistrationID)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if taken {
			return nil, fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Jersey number %d is already taken for this event.", input.JerseyNumber))
		}
	}

	applyEventFields(registration, input)

	if input.Gender != nil {
		user.UserGender = input.Gender
	}
	if input.WhatsappNumber != "" {
		user.UserWhatsappNumber = input.WhatsappNumber
	}

	profile := &model.CricketProfileModel{
		CricketProfileUserID:        user.UserID,
		CricketProfileSkillLevel:    input.SkillLevel,
		CricketProfileSportsHistory: input.SportsHistory,
		CricketProfileAchievements:  input.Achievements,
		CricketProfilePrimaryRole:   mapRole(input.CricketRole),
		CricketProfileBattingHand:   input.BattingHand,
		CricketProfileBowlingPace:   input.BowlingPace,
		CricketProfileBowlingArm:    input.BowlingArm,
		CricketProfileWicketKeeper:  input.IsWicketKeeper,
		CricketProfileCaptaincy:     input.HasCaptaincy,
	}

	if err := s.store.SaveCricketRegistration(user, profile, registration); err != nil {
		if errors.Is(err, ErrDuplicate) {
			// raced with a concurrent submission; the partial unique indexes
			// decide the winner
			return nil, fiber.NewError(fiber.StatusConflict, "You are already registered for this cricket event")
		}
		log.Printf("[ERROR] cricket registration persist failed for user %s: %v", user.UserID, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to save registration")
	}
	return registration, nil
}

// GetRegistration returns a registration by id.
func (s *RegistrationService) GetRegistration(id uuid.UUID) (*model.EventRegistrationModel, error) {
	registration, err := s.store.FindRegistrationByID(id)
	if err != nil {
		return nil, s.notFoundOr(err, "Registration not found")
	}
	return registration, nil
}

// UpdateStatus is the administrative override, bypassing the payment-driven
// path. The notification collaborator is fired and never blocks.
func (s *RegistrationService) UpdateStatus(id uuid.UUID, status string) (*model.EventRegistrationModel, error) {
	if status != constants.RegistrationPending && !constants.IsTerminalStatus(status) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Unknown registration status")
	}
	registration, err := s.store.FindRegistrationByID(id)
	if err != nil {
		return nil, s.notFoundOr(err, "Registration not found")
	}

	registration.EventRegistrationStatus = status
	if err := s.store.SaveRegistration(registration); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update registration")
	}

	if user, err := s.store.FindUser(registration.EventRegistrationUserID); err == nil {
		event, eventErr := s.store.FindEvent(registration.EventRegistrationEventID)
		eventName := "event"
		if eventErr == nil {
			eventName = event.EventName
		}
		go s.notifier.NotifyRegistrationStatus(user.UserFullName, eventName, status)
	}
	return registration, nil
}

// ListByEvent returns all registrations of an event (admin listing).
func (s *RegistrationService) ListByEvent(eventID uuid.UUID) ([]model.EventRegistrationModel, error) {
	return s.store.ListRegistrationsByEvent(eventID)
}

func applyEventFields(registration *model.EventRegistrationModel, input RegistrationInput) {
	jersey := input.JerseyNumber
	registration.EventRegistrationJerseyNumber = &jersey
	if input.TshirtName != "" {
		name := input.TshirtName
		registration.EventRegistrationTshirtName = &name
	}
	if input.Category != "" {
		category := input.Category
		registration.EventRegistrationCategory = &category
	}
	if input.CricketRole != "" {
		role := input.CricketRole
		registration.EventRegistrationTeamRole = &role
	}

	registration.EventRegistrationAvailableAllDays = input.AvailableAllDays
	if input.AvailableAllDays != nil && *input.AvailableAllDays {
		registration.EventRegistrationUnavailableDates = nil
	} else {
		registration.EventRegistrationUnavailableDates = pq.StringArray(dedupe(input.UnavailableDates))
	}

	registration.EventRegistrationTermsAccepted = input.TermsAccepted
	if input.TermsAccepted && registration.EventRegistrationTermsAcceptedAt == nil {
		now := time.Now()
		registration.EventRegistrationTermsAcceptedAt = &now
	}
}

func validateAvailability(input RegistrationInput, event *eventModel.EventModel) error {
	if input.AvailableAllDays == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Availability selection is required")
	}
	if *input.AvailableAllDays {
		return nil
	}
	if len(input.UnavailableDates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Please select at least one date you are unavailable")
	}
	eventDates := event.ScheduleDates()
	if len(eventDates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Event dates are not configured. Please contact the organizers.")
	}
	allowed := make(map[string]struct{}, len(eventDates))
	for _, d := range eventDates {
		allowed[d] = struct{}{}
	}
	for _, d := range input.UnavailableDates {
		if _, ok := allowed[d]; !ok {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Selected date %s is outside the event schedule", d))
		}
	}
	return nil
}

func mapRole(preference string) string {
	switch preference {
	case "BATTING":
		return "BATSMAN"
	case "BOWLING":
		return "BOWLER"
	case "WICKET_KEEPER":
		return "WICKET_KEEPER"
	default:
		return "ALL_ROUNDER"
	}
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func (s *RegistrationService) notFoundOr(err error, message string) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, message)
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
}
