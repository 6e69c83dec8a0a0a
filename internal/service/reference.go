package service

import (
	"context"
	"fmt"

	"rulebook/internal/model"
	"rulebook/internal/repository"
	"rulebook/internal/rules"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// MergeStoredCoupons overlays the coupons held in the database on base.
// A nil repository leaves base untouched.
func MergeStoredCoupons(ctx context.Context, base *rules.Catalog, repo repository.CouponRepository, logger zerolog.Logger) (*rules.Catalog, error) {
	if repo == nil {
		return base, nil
	}

	coupons, err := repo.ListCoupons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stored coupons: %w", err)
	}

	catalog, err := base.With(coupons...)
	if err != nil {
		return nil, fmt.Errorf("failed to merge stored coupons: %w", err)
	}

	logger.Info().
		Str("component", "reference-data").
		Int("stored", len(coupons)).
		Int("total_coupons", catalog.Len()).
		Msg("stored coupons merged")

	return catalog, nil
}

// MergeStoredDrivingAges overlays the driving ages held in the database on base.
// A nil repository leaves base untouched.
func MergeStoredDrivingAges(ctx context.Context, base *rules.DrivingAges, repo repository.DrivingAgeRepository, logger zerolog.Logger) (*rules.DrivingAges, error) {
	if repo == nil {
		return base, nil
	}

	entries, err := repo.ListDrivingAges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stored driving ages: %w", err)
	}

	ages := lo.SliceToMap(entries, func(e model.DrivingAge) (string, int) {
		return e.CountryCode, e.MinimumAge
	})

	table, err := base.With(ages)
	if err != nil {
		return nil, fmt.Errorf("failed to merge stored driving ages: %w", err)
	}

	logger.Info().
		Str("component", "reference-data").
		Int("stored", len(entries)).
		Int("total_countries", table.Len()).
		Msg("stored driving ages merged")

	return table, nil
}
