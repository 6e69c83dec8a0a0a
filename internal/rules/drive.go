package rules

import (
	"fmt"
	"slices"

	"rulebook/internal/model"

	"github.com/samber/lo"
)

// DrivingAges is an immutable table of minimum driving ages per country code.
type DrivingAges struct {
	ages map[string]int
}

// DefaultDrivingAges returns the built-in minimum driving ages.
func DefaultDrivingAges() map[string]int {
	return map[string]int{
		"US": 16,
		"UK": 17,
	}
}

var defaultDrivingAges = lo.Must(NewDrivingAges(DefaultDrivingAges()))

// DefaultDrivingTable returns the table built from DefaultDrivingAges.
func DefaultDrivingTable() *DrivingAges {
	return defaultDrivingAges
}

// NewDrivingAges builds a table from country code to minimum age.
func NewDrivingAges(ages map[string]int) (*DrivingAges, error) {
	return (&DrivingAges{}).With(ages)
}

// With returns a new table holding the receiver's entries overlaid with ages.
func (d *DrivingAges) With(ages map[string]int) (*DrivingAges, error) {
	next := &DrivingAges{ages: make(map[string]int, d.Len()+len(ages))}
	if d != nil {
		for code, age := range d.ages {
			next.ages[code] = age
		}
	}

	for code, age := range ages {
		if code == "" || age < 0 {
			return nil, fmt.Errorf("%w (country=%q, age=%d)", model.ErrInvalidDrivingAge, code, age)
		}
		next.ages[code] = age
	}

	return next, nil
}

// Len returns the number of countries in the table.
func (d *DrivingAges) Len() int {
	if d == nil {
		return 0
	}
	return len(d.ages)
}

// MinimumAge returns the minimum driving age for an exact country code.
func (d *DrivingAges) MinimumAge(countryCode string) (int, bool) {
	if d == nil {
		return 0, false
	}
	age, ok := d.ages[countryCode]
	return age, ok
}

// Countries returns the known country codes in sorted order.
func (d *DrivingAges) Countries() []string {
	if d == nil {
		return []string{}
	}
	codes := lo.Keys(d.ages)
	slices.Sort(codes)
	return codes
}

// Entries returns the table ordered by country code.
func (d *DrivingAges) Entries() []model.DrivingAge {
	return lo.Map(d.Countries(), func(code string, _ int) model.DrivingAge {
		return model.DrivingAge{CountryCode: code, MinimumAge: d.ages[code]}
	})
}

// CanDrive reports whether age meets the minimum for countryCode.
func (d *DrivingAges) CanDrive(age float64, countryCode string) (bool, error) {
	minimum, ok := d.MinimumAge(countryCode)
	if !ok {
		return false, model.ErrInvalidCountryCode
	}
	return age >= float64(minimum), nil
}

// CanDrive checks age against the default table.
func CanDrive(age float64, countryCode string) (bool, error) {
	return defaultDrivingAges.CanDrive(age, countryCode)
}
