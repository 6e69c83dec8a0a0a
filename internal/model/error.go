package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeInvalidQuery        = "INVALID_QUERY"
	ErrCodeInvalidPrice        = "INVALID_PRICE"
	ErrCodeInvalidDiscountCode = "INVALID_DISCOUNT_CODE"
	ErrCodeInvalidUserInput    = "INVALID_USER_INPUT"
	ErrCodeInvalidCountryCode  = "INVALID_COUNTRY_CODE"
	ErrCodeInvalidCoupon       = "INVALID_COUPON"
	ErrCodeInvalidDrivingAge   = "INVALID_DRIVING_AGE"
	ErrCodeUnauthorised        = "UNAUTHORIZED"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidPrice        = NewDomainError(ErrCodeInvalidPrice, "Invalid price")
	ErrInvalidDiscountCode = NewDomainError(ErrCodeInvalidDiscountCode, "Invalid discount code")
	ErrInvalidCountryCode  = NewDomainError(ErrCodeInvalidCountryCode, "Invalid country code")
	ErrInvalidCoupon       = NewDomainError(ErrCodeInvalidCoupon, "Invalid coupon: code must be non-empty and discount strictly between 0 and 1")
	ErrInvalidDrivingAge   = NewDomainError(ErrCodeInvalidDrivingAge, "Invalid driving age entry: country code must be non-empty and age non-negative")
)
