package domain

import "fmt"

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeUnauthorized         = "UNAUTHORIZED"
	ErrCodeConflict             = "CONFLICT"
	ErrCodeInternal             = "INTERNAL_ERROR"
	ErrCodeRequiresA2P          = "REQUIRES_A2P"
	ErrCodeRequiresPayment      = "REQUIRES_PAYMENT"
	ErrCodeRequiresSubscription = "REQUIRES_SUBSCRIPTION"
	ErrCodeInsufficientCredits  = "INSUFFICIENT_CREDITS"
)

// Error constructors

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string) error {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError creates a new validation error
func NewValidationError(msg string) error {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(msg string) error {
	return &DomainError{
		Code:    ErrCodeConflict,
		Message: msg,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(err error) error {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: "An internal error occurred",
		Err:     err,
	}
}

// NewRequiresA2PError indicates the user must complete A2P 10DLC registration
// (or connect a verified legacy account) before sending to US numbers.
func NewRequiresA2PError() error {
	return &DomainError{
		Code:    ErrCodeRequiresA2P,
		Message: "A2P 10DLC registration with an assigned number is required to message US leads",
	}
}

// NewRequiresPaymentError indicates the user has no message credits left.
func NewRequiresPaymentError() error {
	return &DomainError{
		Code:    ErrCodeRequiresPayment,
		Message: "No message credits remaining. Purchase credits or upgrade your plan.",
	}
}

// NewRequiresSubscriptionError indicates the user has no active subscription.
func NewRequiresSubscriptionError() error {
	return &DomainError{
		Code:    ErrCodeRequiresSubscription,
		Message: "An active subscription is required to start a campaign",
	}
}

// NewInsufficientCreditsError indicates a send was skipped because the
// credit balance reached zero mid-batch.
func NewInsufficientCreditsError() error {
	return &DomainError{
		Code:    ErrCodeInsufficientCredits,
		Message: "Message credits exhausted",
	}
}

// Helper functions to check error types

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeNotFound
	}
	return false
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeValidation
	}
	return false
}

// IsConflict checks if the error is a conflict error
func IsConflict(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeConflict
	}
	return false
}

// IsRequiresA2P checks if the error is an A2P gate error
func IsRequiresA2P(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeRequiresA2P
	}
	return false
}

// IsRequiresPayment checks if the error is a payment gate error
func IsRequiresPayment(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeRequiresPayment
	}
	return false
}

// IsRequiresSubscription checks if the error is a subscription gate error
func IsRequiresSubscription(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeRequiresSubscription
	}
	return false
}

// IsInsufficientCredits checks if the error is a credit exhaustion error
func IsInsufficientCredits(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeInsufficientCredits
	}
	return false
}

// GetErrorCode extracts the error code from a domain error
func GetErrorCode(err error) string {
	if de, ok := err.(*DomainError); ok {
		return de.Code
	}
	return ErrCodeInternal
}
