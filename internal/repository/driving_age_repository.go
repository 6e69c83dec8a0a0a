package repository

import (
	"context"
	"fmt"

	"rulebook/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type drivingAgeRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewDrivingAgeRepository creates a new PostgreSQL-backed driving age repository.
func NewDrivingAgeRepository(pool *pgxpool.Pool, logger zerolog.Logger) DrivingAgeRepository {
	return &drivingAgeRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "driving_age").Logger(),
	}
}

func (r *drivingAgeRepository) ListDrivingAges(ctx context.Context) ([]model.DrivingAge, error) {
	query := `
		SELECT country_code, min_age
		FROM driving_ages
		ORDER BY country_code
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query driving ages")
		return nil, fmt.Errorf("failed to query driving ages: %w", err)
	}
	defer rows.Close()

	ages := []model.DrivingAge{}
	for rows.Next() {
		var a model.DrivingAge
		if err := rows.Scan(&a.CountryCode, &a.MinimumAge); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan driving age row")
			return nil, fmt.Errorf("failed to scan driving age: %w", err)
		}
		ages = append(ages, a)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating driving age rows")
		return nil, fmt.Errorf("error iterating driving ages: %w", err)
	}

	return ages, nil
}
