package coupon

import (
	"context"
	"fmt"
	"sync"

	"rulebook/internal/model"
	"rulebook/internal/rules"

	"github.com/rs/zerolog"
)

// CatalogConfig holds configuration for building a coupon catalog.
type CatalogConfig struct {
	// FilePaths is the list of catalog files to load. Files are applied in
	// order, so a code in a later file overrides the same code in an
	// earlier one.
	FilePaths []string
}

// BuildCatalog loads every configured file and overlays the coupons on base.
// Files are read concurrently; a failure in any file fails the build.
func BuildCatalog(ctx context.Context, base *rules.Catalog, config *CatalogConfig, loader Loader, logger zerolog.Logger) (*rules.Catalog, error) {
	logger = logger.With().Str("component", "coupon-catalog").Logger()

	if config == nil || len(config.FilePaths) == 0 {
		logger.Info().Int("total_coupons", base.Len()).Msg("no coupon files configured, using base catalog")
		return base, nil
	}

	logger.Info().
		Int("file_count", len(config.FilePaths)).
		Msg("building coupon catalog")

	type loadResult struct {
		index   int
		coupons []model.Coupon
		err     error
	}

	resultChan := make(chan loadResult, len(config.FilePaths))
	var wg sync.WaitGroup

	for i, filePath := range config.FilePaths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			coupons, err := loader.Load(ctx, path)
			resultChan <- loadResult{
				index:   index,
				coupons: coupons,
				err:     err,
			}
		}(i, filePath)
	}

	wg.Wait()
	close(resultChan)

	// Collect results in order
	results := make([]loadResult, len(config.FilePaths))
	for result := range resultChan {
		results[result.index] = result
	}

	catalog := base
	for i, result := range results {
		if result.err != nil {
			logger.Error().
				Err(result.err).
				Str("file", config.FilePaths[i]).
				Msg("failed to load coupon file")
			return nil, fmt.Errorf("failed to load coupon file %s: %w", config.FilePaths[i], result.err)
		}

		next, err := catalog.With(result.coupons...)
		if err != nil {
			return nil, fmt.Errorf("invalid coupon in %s: %w", config.FilePaths[i], err)
		}
		catalog = next

		logger.Info().
			Str("file", config.FilePaths[i]).
			Int("size", len(result.coupons)).
			Msg("coupon file merged")
	}

	logger.Info().
		Int("total_coupons", catalog.Len()).
		Msg("coupon catalog built successfully")

	return catalog, nil
}
