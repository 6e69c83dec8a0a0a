package coupon

import (
	"context"

	"rulebook/internal/model"
)

// Loader defines the interface for loading coupon catalog files.
type Loader interface {
	// Load reads a gzipped catalog file and returns its coupons in file order.
	// Each line holds "CODE,DISCOUNT"; blank lines and lines starting with
	// '#' are skipped.
	Load(ctx context.Context, filePath string) ([]model.Coupon, error)
}
