// Package rules holds the pure validation and pricing rules: the coupon
// catalog, user input validation, range checks and the driving age table.
package rules

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"rulebook/internal/model"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Catalog is an immutable set of coupons keyed by exact code.
type Catalog struct {
	coupons map[string]model.Coupon
}

// DefaultCoupons returns the built-in coupon table.
func DefaultCoupons() []model.Coupon {
	return []model.Coupon{
		{Code: "SAVE10", Discount: 0.10},
		{Code: "SAVE20", Discount: 0.20},
	}
}

var defaultCatalog = lo.Must(NewCatalog(DefaultCoupons()...))

// DefaultCatalog returns the catalog built from DefaultCoupons.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// NewCatalog builds a catalog from the given coupons.
// A later coupon with the same code replaces an earlier one.
func NewCatalog(coupons ...model.Coupon) (*Catalog, error) {
	return (&Catalog{}).With(coupons...)
}

// With returns a new catalog holding the receiver's coupons overlaid with
// the given ones. The receiver is left untouched.
func (c *Catalog) With(coupons ...model.Coupon) (*Catalog, error) {
	next := &Catalog{coupons: make(map[string]model.Coupon, c.Len()+len(coupons))}
	if c != nil {
		for code, coupon := range c.coupons {
			next.coupons[code] = coupon
		}
	}

	for _, coupon := range coupons {
		if err := ValidateCoupon(coupon); err != nil {
			return nil, err
		}
		next.coupons[coupon.Code] = coupon
	}

	return next, nil
}

// ValidateCoupon checks that a coupon has a non-empty code and a discount
// strictly between 0 and 1.
func ValidateCoupon(coupon model.Coupon) error {
	if coupon.Code == "" || !(coupon.Discount > 0 && coupon.Discount < 1) {
		return fmt.Errorf("%w (code=%q, discount=%v)", model.ErrInvalidCoupon, coupon.Code, coupon.Discount)
	}
	return nil
}

// Len returns the number of coupons in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.coupons)
}

// Coupons returns a copy of the catalog ordered by code.
func (c *Catalog) Coupons() []model.Coupon {
	if c == nil {
		return []model.Coupon{}
	}

	coupons := lo.Values(c.coupons)
	slices.SortFunc(coupons, func(a, b model.Coupon) int {
		return strings.Compare(a.Code, b.Code)
	})
	return coupons
}

// Lookup finds the coupon with exactly the given code.
func (c *Catalog) Lookup(code string) mo.Option[model.Coupon] {
	if c == nil {
		return mo.None[model.Coupon]()
	}
	if coupon, ok := c.coupons[code]; ok {
		return mo.Some(coupon)
	}
	return mo.None[model.Coupon]()
}

// CalculateDiscount applies the coupon matching code to price.
// An unknown code is not an error: the price is returned unchanged.
func (c *Catalog) CalculateDiscount(price float64, code string) (float64, error) {
	if !isValidPrice(price) {
		return 0, model.ErrInvalidPrice
	}

	coupon, ok := c.Lookup(code).Get()
	if !ok {
		return price, nil
	}

	return price * (1 - coupon.Discount), nil
}

// CalculateDiscountValue is CalculateDiscount for untyped inputs. The price
// must be a Number and the code a String.
func (c *Catalog) CalculateDiscountValue(price, code Value) (float64, error) {
	p, ok := price.Num().Get()
	if !ok {
		return 0, model.ErrInvalidPrice
	}

	s, ok := code.Str().Get()
	if !ok {
		if !isValidPrice(p) {
			return 0, model.ErrInvalidPrice
		}
		return 0, model.ErrInvalidDiscountCode
	}

	return c.CalculateDiscount(p, s)
}

// GetCoupons returns the default catalog's coupons.
func GetCoupons() []model.Coupon {
	return defaultCatalog.Coupons()
}

// CalculateDiscount applies a coupon from the default catalog.
func CalculateDiscount(price float64, code string) (float64, error) {
	return defaultCatalog.CalculateDiscount(price, code)
}

// CalculateDiscountValue applies a coupon from the default catalog to untyped inputs.
func CalculateDiscountValue(price, code Value) (float64, error) {
	return defaultCatalog.CalculateDiscountValue(price, code)
}

func isValidPrice(price float64) bool {
	return !math.IsNaN(price) && !math.IsInf(price, 0) && price >= 0
}
