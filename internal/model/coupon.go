package model

// Coupon is a discount code from the catalog.
type Coupon struct {
	Code     string  `json:"code" db:"code"`
	Discount float64 `json:"discount" db:"discount"`
}

// DrivingAge maps a country code to its minimum driving age.
type DrivingAge struct {
	CountryCode string `json:"countryCode" db:"country_code"`
	MinimumAge  int    `json:"minimumAge" db:"min_age"`
}
