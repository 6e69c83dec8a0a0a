package coupon

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rulebook/internal/model"
	"rulebook/internal/rules"
)

// cancelCheckInterval is how many lines are read between context checks.
const cancelCheckInterval = 10_000

// parseCatalog reads "CODE,DISCOUNT" lines from r.
// source is only used in error messages.
func parseCatalog(ctx context.Context, r io.Reader, source string) ([]model.Coupon, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var coupons []model.Coupon
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		if lineNo%cancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		coupon, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", source, lineNo, err)
		}
		coupons = append(coupons, coupon)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading coupon file %s: %w", source, err)
	}

	return coupons, nil
}

func parseLine(line string) (model.Coupon, error) {
	code, rawDiscount, found := strings.Cut(line, ",")
	if !found {
		return model.Coupon{}, fmt.Errorf("expected CODE,DISCOUNT but got %q", line)
	}

	discount, err := strconv.ParseFloat(strings.TrimSpace(rawDiscount), 64)
	if err != nil {
		return model.Coupon{}, fmt.Errorf("invalid discount %q: %w", rawDiscount, err)
	}

	coupon := model.Coupon{Code: strings.TrimSpace(code), Discount: discount}
	if err := rules.ValidateCoupon(coupon); err != nil {
		return model.Coupon{}, err
	}

	return coupon, nil
}
