package rules

// Default bounds used by IsValidUsername.
const (
	DefaultUsernameMinLength = 5
	DefaultUsernameMaxLength = 15
)

// IsPriceInRange reports whether minPrice <= value <= maxPrice.
func IsPriceInRange(value, minPrice, maxPrice float64) bool {
	return value >= minPrice && value <= maxPrice
}

type usernameBounds struct {
	minLength int
	maxLength int
}

// UsernameOption adjusts the bounds applied by IsValidUsername.
type UsernameOption func(*usernameBounds)

// WithLengthBounds sets the inclusive length bounds.
func WithLengthBounds(minLength, maxLength int) UsernameOption {
	return func(b *usernameBounds) {
		b.minLength = minLength
		b.maxLength = maxLength
	}
}

// IsValidUsername reports whether name is a string whose length lies within
// the bounds, 5 to 15 characters unless overridden. Non-string input is
// never valid.
func IsValidUsername(name Value, opts ...UsernameOption) bool {
	bounds := usernameBounds{
		minLength: DefaultUsernameMinLength,
		maxLength: DefaultUsernameMaxLength,
	}
	for _, opt := range opts {
		opt(&bounds)
	}

	s, ok := name.Str().Get()
	if !ok {
		return false
	}
	return lengthWithin(s, bounds.minLength, bounds.maxLength)
}
