package service

import (
	"errors"

	"rulebook/internal/model"
	"rulebook/internal/rules"

	"github.com/rs/zerolog"
	"github.com/samber/mo"
)

type rulesService struct {
	catalog     *rules.Catalog
	drivingAges *rules.DrivingAges
	logger      zerolog.Logger
}

// NewRulesService creates a rules service. Nil tables fall back to the
// built-in defaults.
func NewRulesService(catalog *rules.Catalog, drivingAges *rules.DrivingAges, logger zerolog.Logger) RulesService {
	if catalog == nil {
		catalog = rules.DefaultCatalog()
	}
	if drivingAges == nil {
		drivingAges = rules.DefaultDrivingTable()
	}

	return &rulesService{
		catalog:     catalog,
		drivingAges: drivingAges,
		logger:      logger.With().Str("service", "rules").Logger(),
	}
}

func (s *rulesService) Coupons() []model.Coupon {
	return s.catalog.Coupons()
}

func (s *rulesService) CalculateDiscount(price, code rules.Value) (*model.DiscountResponse, error) {
	discounted, err := s.catalog.CalculateDiscountValue(price, code)
	if err != nil {
		s.logger.Debug().
			Err(err).
			Stringer("price", price).
			Stringer("code", code).
			Msg("discount rejected")
		return nil, err
	}

	p := price.Num().MustGet()
	c := code.Str().MustGet()
	applied := s.catalog.Lookup(c).IsPresent()

	s.logger.Debug().
		Float64("price", p).
		Str("code", c).
		Bool("applied", applied).
		Float64("discounted_price", discounted).
		Msg("discount calculated")

	return &model.DiscountResponse{
		Price:           p,
		Code:            c,
		DiscountedPrice: discounted,
		Applied:         applied,
	}, nil
}

func (s *rulesService) ValidateUser(username, age rules.Value) *model.UserValidationResponse {
	result := rules.ValidateUserInput(username, age)

	if !result.Valid() {
		s.logger.Debug().Strs("failures", result.Failures()).Msg("user input rejected")
	}

	return &model.UserValidationResponse{
		Valid:    result.Valid(),
		Message:  result.Message(),
		Failures: result.Failures(),
	}
}

func (s *rulesService) PriceInRange(value, minPrice, maxPrice float64) *model.PriceRangeResponse {
	return &model.PriceRangeResponse{
		Value:   value,
		Min:     minPrice,
		Max:     maxPrice,
		InRange: rules.IsPriceInRange(value, minPrice, maxPrice),
	}
}

func (s *rulesService) ValidateUsername(name rules.Value, minLength, maxLength mo.Option[int]) *model.UsernameValidationResponse {
	minLen := minLength.OrElse(rules.DefaultUsernameMinLength)
	maxLen := maxLength.OrElse(rules.DefaultUsernameMaxLength)

	return &model.UsernameValidationResponse{
		Valid:     rules.IsValidUsername(name, rules.WithLengthBounds(minLen, maxLen)),
		MinLength: minLen,
		MaxLength: maxLen,
	}
}

func (s *rulesService) DrivingAges() []model.DrivingAge {
	return s.drivingAges.Entries()
}

func (s *rulesService) CanDrive(age float64, countryCode string) (*model.DrivingEligibilityResponse, error) {
	canDrive, err := s.drivingAges.CanDrive(age, countryCode)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCountryCode) {
			s.logger.Debug().Str("country_code", countryCode).Msg("unknown country code")
		}
		return nil, err
	}

	minimum, _ := s.drivingAges.MinimumAge(countryCode)

	return &model.DrivingEligibilityResponse{
		CountryCode: countryCode,
		Age:         age,
		MinimumAge:  minimum,
		CanDrive:    canDrive,
	}, nil
}
