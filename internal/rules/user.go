package rules

import (
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"rulebook/internal/model"

	"github.com/samber/lo"
)

const (
	minUsernameInputLength = 3
	maxUsernameInputLength = 255
	minUserAge             = 18
	maxUserAge             = 100
)

// Field names reported by ValidateUserInput.
const (
	FieldUsername = "username"
	FieldAge      = "age"
)

const successMessage = "Validation successful"

// Result is the outcome of ValidateUserInput.
type Result struct {
	failures []string
}

// ValidateUserInput checks a username (a string of 3 to 255 characters) and
// an age (a number from 18 to 100). Every failing field is reported.
func ValidateUserInput(username, age Value) Result {
	var failures []string

	if name, ok := username.Str().Get(); !ok || !lengthWithin(name, minUsernameInputLength, maxUsernameInputLength) {
		failures = append(failures, FieldUsername)
	}

	if n, ok := age.Num().Get(); !ok || math.IsNaN(n) || n < minUserAge || n > maxUserAge {
		failures = append(failures, FieldAge)
	}

	return Result{failures: failures}
}

// ValidateUser is ValidateUserInput for typed inputs.
func ValidateUser(username string, age float64) Result {
	return ValidateUserInput(String(username), Number(age))
}

// Valid reports whether every field passed.
func (r Result) Valid() bool {
	return len(r.failures) == 0
}

// Failures returns the names of the fields that failed, in check order.
func (r Result) Failures() []string {
	return slices.Clone(r.failures)
}

// Message returns "Validation successful" or one "Invalid <field>" clause per
// failed field, separated by ", ".
func (r Result) Message() string {
	if r.Valid() {
		return successMessage
	}
	return strings.Join(lo.Map(r.failures, func(field string, _ int) string {
		return "Invalid " + field
	}), ", ")
}

func (r Result) String() string {
	return r.Message()
}

// Err returns nil for a valid result, otherwise a domain error carrying the message.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return model.NewDomainError(model.ErrCodeInvalidUserInput, r.Message())
}

func lengthWithin(s string, minLength, maxLength int) bool {
	n := utf8.RuneCountInString(s)
	return n >= minLength && n <= maxLength
}
