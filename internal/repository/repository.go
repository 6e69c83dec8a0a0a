package repository

import (
	"context"

	"rulebook/internal/model"
)

// CouponRepository reads coupon definitions stored in Postgres.
type CouponRepository interface {
	// ListCoupons returns every stored coupon ordered by code.
	ListCoupons(ctx context.Context) ([]model.Coupon, error)
}

// DrivingAgeRepository reads per-country minimum driving ages stored in Postgres.
type DrivingAgeRepository interface {
	// ListDrivingAges returns every stored entry ordered by country code.
	ListDrivingAges(ctx context.Context) ([]model.DrivingAge, error)
}
