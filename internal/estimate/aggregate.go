package estimate

import (
	"math"

	"github.com/google/uuid"
)

// Item is the estimation view of one line item.
type Item struct {
	DeliverableID        uuid.UUID
	Quantity             int
	ComplexityMultiplier float64
	// CustomEstimatePoints replaces the multiplied base points per unit when set.
	CustomEstimatePoints *float64
}

// Lookup resolves a deliverable's base points. ok is false for dangling references;
// a resolved deliverable with no base points (bespoke, price TBD) returns nil, true.
type Lookup interface {
	BasePoints(id uuid.UUID) (points *float64, ok bool)
}

// Catalog is a map-backed Lookup.
type Catalog map[uuid.UUID]*float64

// BasePoints implements Lookup.
func (c Catalog) BasePoints(id uuid.UUID) (*float64, bool) {
	p, ok := c[id]
	return p, ok
}

// Totals is the aggregate of a line item set.
type Totals struct {
	DeliverableCount int     `json:"deliverable_count"`
	TotalPoints      float64 `json:"total_points"`
	TotalHours       float64 `json:"total_hours"`
	TotalPrice       int64   `json:"total_price"`
}

// Aggregator sums line items with a fixed rate table.
type Aggregator struct {
	rates RateTable
}

// NewAggregator creates an aggregator bound to the given rates.
func NewAggregator(rates RateTable) *Aggregator {
	return &Aggregator{rates: rates}
}

// Rates returns the rate table used by the aggregator.
func (a *Aggregator) Rates() RateTable {
	return a.rates
}

// Aggregate sums items into totals. Unresolved references and deliverables without
// base points contribute zero but are still counted. Points are summed in integer
// tenths so the result does not depend on item order.
func (a *Aggregator) Aggregate(items []Item, lookup Lookup) Totals {
	var tenths int64
	for _, item := range items {
		tenths = addTenths(tenths, itemTenths(item, lookup))
	}

	totalPoints := float64(tenths) / 10
	return Totals{
		DeliverableCount: len(items),
		TotalPoints:      totalPoints,
		TotalHours:       a.rates.Hours(totalPoints),
		TotalPrice:       a.rates.Price(totalPoints),
	}
}

// Aggregate sums items with DefaultRates.
func Aggregate(items []Item, lookup Lookup) Totals {
	return NewAggregator(DefaultRates).Aggregate(items, lookup)
}

// UnitPoints returns the effective points of one unit of the item, rounded to one
// decimal place.
func UnitPoints(item Item, lookup Lookup) float64 {
	return float64(unitTenths(item, lookup)) / 10
}

// LinePoints returns the effective points of the whole line (unit points × quantity).
func LinePoints(item Item, lookup Lookup) float64 {
	return float64(itemTenths(item, lookup)) / 10
}

func itemTenths(item Item, lookup Lookup) int64 {
	qty := item.Quantity
	if qty < 1 {
		qty = 1
	}
	return mulTenths(unitTenths(item, lookup), int64(qty))
}

func unitTenths(item Item, lookup Lookup) int64 {
	if item.CustomEstimatePoints != nil {
		return toTenths(clampPoints(*item.CustomEstimatePoints))
	}
	if lookup == nil {
		return 0
	}
	base, ok := lookup.BasePoints(item.DeliverableID)
	if !ok || base == nil {
		return 0
	}
	return toTenths(clampPoints(*base) * multiplier(item.ComplexityMultiplier))
}

// non-positive or non-finite multipliers mean "catalog norm"
func multiplier(m float64) float64 {
	if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
		return 1
	}
	return m
}
