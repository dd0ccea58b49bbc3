// Package estimate turns abstract complexity points into committed hours and price.
//
// Everything in this package is pure: no I/O, no logging, no errors. Hours and price are
// always derived from one RateTable so the two figures for the same point total agree.
package estimate

import "math"

const (
	// DefaultHoursPerPoint is the committed effort per complexity point.
	DefaultHoursPerPoint = 4.0
	// DefaultHourlyRate is the price of one committed hour in whole currency units.
	DefaultHourlyRate = 150.0
)

// RateTable is the canonical conversion from points to hours and price.
type RateTable struct {
	HoursPerPoint float64
	HourlyRate    float64
}

// Input bounds accepted by the line item and catalog validators.
const (
	MaxQuantity             = 10000
	MaxPoints               = 1e6
	MaxComplexityMultiplier = 100.0
)

// MaxTenths is the saturation ceiling of point arithmetic (10^14 points). Totals never wrap
// past it, so aggregation stays non-negative and non-decreasing for any input.
const MaxTenths = 1e15

// DefaultRates is the rate table used when configuration does not override it.
var DefaultRates = RateTable{
	HoursPerPoint: DefaultHoursPerPoint,
	HourlyRate:    DefaultHourlyRate,
}

// NewRateTable returns a table with the given rates, falling back to the defaults for
// non-positive or non-finite values.
func NewRateTable(hoursPerPoint, hourlyRate float64) RateTable {
	t := DefaultRates
	if isPositive(hoursPerPoint) {
		t.HoursPerPoint = hoursPerPoint
	}
	if isPositive(hourlyRate) {
		t.HourlyRate = hourlyRate
	}
	return t
}

// PricePerPoint is the derived price of a single point.
func (t RateTable) PricePerPoint() float64 {
	return t.HoursPerPoint * t.HourlyRate
}

// Hours converts points to committed hours, rounded to one decimal place.
func (t RateTable) Hours(points float64) float64 {
	return RoundTenth(clampPoints(points) * t.HoursPerPoint)
}

// Price converts points to price in whole currency units. It is computed from the
// unrounded hours so that rounding hours never shifts the price.
func (t RateTable) Price(points float64) int64 {
	price := math.Round(clampPoints(points) * t.HoursPerPoint * t.HourlyRate)
	if price >= maxPriceFloat {
		return math.MaxInt64
	}
	return int64(price)
}

// HoursFromPoints converts points to hours using DefaultRates only. Callers working with a
// configured table must use RateTable.Hours or an Aggregator built from that table.
func HoursFromPoints(points float64) float64 {
	return DefaultRates.Hours(points)
}

// PriceFromPoints converts points to price using DefaultRates only. Callers working with a
// configured table must use RateTable.Price or an Aggregator built from that table.
func PriceFromPoints(points float64) int64 {
	return DefaultRates.Price(points)
}

// RoundTenth rounds half away from zero to one decimal place. Values too large to carry a
// tenth are returned unchanged.
func RoundTenth(v float64) float64 {
	if math.IsNaN(v) || math.Abs(v) >= MaxTenths/10 {
		return v
	}
	return float64(toTenths(v)) / 10
}

// tenthEpsilon absorbs binary representation error such as 3*1.15 = 3.4499999999999997.
const tenthEpsilon = 1e-9

// maxPriceFloat is the first float64 above the int64 range (2^63).
const maxPriceFloat = float64(1 << 63)

// toTenths converts to integer tenths, saturating at ±MaxTenths.
func toTenths(v float64) int64 {
	scaled := v * 10
	switch {
	case math.IsNaN(scaled):
		return 0
	case scaled >= MaxTenths:
		return MaxTenths
	case scaled <= -MaxTenths:
		return -MaxTenths
	case scaled >= 0:
		return int64(math.Round(scaled + tenthEpsilon))
	default:
		return int64(math.Round(scaled - tenthEpsilon))
	}
}

// addTenths and mulTenths saturate at MaxTenths. Both operate on non-negative tenths.
func addTenths(a, b int64) int64 {
	if a > MaxTenths-b {
		return MaxTenths
	}
	return a + b
}

func mulTenths(unit int64, qty int64) int64 {
	if unit == 0 || qty == 0 {
		return 0
	}
	if unit > MaxTenths/qty {
		return MaxTenths
	}
	return unit * qty
}

// negative, NaN and infinite inputs carry no effort
func clampPoints(points float64) float64 {
	if math.IsNaN(points) || math.IsInf(points, 0) || points < 0 {
		return 0
	}
	return points
}

func isPositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
