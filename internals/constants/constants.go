package constants

// User roles
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Event types
const (
	SportCricket   = "CRICKET"
	SportBadminton = "BADMINTON"
)

// Registration / bundle statuses
const (
	RegistrationPending  = "PENDING"
	RegistrationApproved = "APPROVED"
	RegistrationFailed   = "FAILED"
)

// Payment statuses
const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
)

// Genders
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)

// Badminton category types
const (
	CategorySolo   = "SOLO"
	CategoryDouble = "DOUBLE"
	CategoryFamily = "FAMILY"
)

// IsTerminalStatus reports whether a registration status can never change again.
func IsTerminalStatus(status string) bool {
	return status == RegistrationApproved || status == RegistrationFailed
}
