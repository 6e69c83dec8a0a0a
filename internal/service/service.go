package service

import (
	"rulebook/internal/model"
	"rulebook/internal/rules"

	"github.com/samber/mo"
)

// RulesService exposes the validation rules over the loaded reference data.
type RulesService interface {
	// Coupons returns the active coupon catalog ordered by code.
	Coupons() []model.Coupon

	// CalculateDiscount applies the coupon named by code to price.
	CalculateDiscount(price, code rules.Value) (*model.DiscountResponse, error)

	// ValidateUser checks a username/age pair.
	ValidateUser(username, age rules.Value) *model.UserValidationResponse

	// PriceInRange reports whether value lies within [min, max].
	PriceInRange(value, minPrice, maxPrice float64) *model.PriceRangeResponse

	// ValidateUsername checks the length of name against optional bounds.
	ValidateUsername(name rules.Value, minLength, maxLength mo.Option[int]) *model.UsernameValidationResponse

	// DrivingAges returns the minimum driving age table ordered by country.
	DrivingAges() []model.DrivingAge

	// CanDrive reports whether age meets the minimum for countryCode.
	CanDrive(age float64, countryCode string) (*model.DrivingEligibilityResponse, error)
}
