//go:build ignore

// Generates sample gzipped coupon catalogs for local runs:
//
//	go run scripts/generate_sample_coupons.go
//	COUPON_FILES=data/coupons/seasonal.gz,data/coupons/partners.gz go run ./cmd/api
package main

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"

	"rulebook/internal/model"
	"rulebook/internal/rules"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	dataDir := "data/coupons"
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		logger.Fatal().Err(err).Msg("failed to create directory")
	}

	catalogs := map[string][]model.Coupon{
		"seasonal.gz": {
			{Code: "SPRING15", Discount: 0.15},
			{Code: "SUMMER25", Discount: 0.25},
			{Code: "WINTER30", Discount: 0.30},
		},
		// Applied after seasonal.gz, so SAVE10 here overrides the built-in default.
		"partners.gz": {
			{Code: "PARTNER05", Discount: 0.05},
			{Code: "SAVE10", Discount: 0.12},
		},
	}

	for filename, coupons := range catalogs {
		path := filepath.Join(dataDir, filename)
		if err := writeCatalog(path, coupons); err != nil {
			logger.Fatal().Err(err).Str("file", path).Msg("failed to write catalog")
		}
		logger.Info().Str("file", path).Int("coupons", len(coupons)).Msg("catalog written")
	}
}

func writeCatalog(path string, coupons []model.Coupon) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	if _, err := fmt.Fprintf(gz, "# CODE,DISCOUNT\n"); err != nil {
		return err
	}

	for _, c := range coupons {
		if err := rules.ValidateCoupon(c); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(gz, "%s,%g\n", c.Code, c.Discount); err != nil {
			return fmt.Errorf("failed to write coupon %s: %w", c.Code, err)
		}
	}

	return gz.Close()
}
