package model

// DiscountResponse represents the response payload for a discount calculation.
type DiscountResponse struct {
	Price           float64 `json:"price"`
	Code            string  `json:"code"`
	DiscountedPrice float64 `json:"discountedPrice"`
	Applied         bool    `json:"applied"`
}

// UserValidationResponse represents the outcome of a user input validation.
type UserValidationResponse struct {
	Valid    bool     `json:"valid"`
	Message  string   `json:"message"`
	Failures []string `json:"failures,omitempty"`
}

// PriceRangeResponse represents the outcome of a price range check.
type PriceRangeResponse struct {
	Value   float64 `json:"value"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	InRange bool    `json:"inRange"`
}

// UsernameValidationResponse represents the outcome of a username length check.
type UsernameValidationResponse struct {
	Valid     bool `json:"valid"`
	MinLength int  `json:"minLength"`
	MaxLength int  `json:"maxLength"`
}

// DrivingEligibilityResponse represents the outcome of a driving age lookup.
type DrivingEligibilityResponse struct {
	CountryCode string  `json:"countryCode"`
	Age         float64 `json:"age"`
	MinimumAge  int     `json:"minimumAge"`
	CanDrive    bool    `json:"canDrive"`
}
