package service

import (
	"math"

	"golang.org/x/text/currency"

	"github.com/pkordes/trip-planner/internal/domain"
)

// CostBreakdown aggregates the costs of trip. It is a pure function and is
// safe to call on any trip, including a detached one decoded from a share token.
//
// Amounts are summed as integers in the currency's minor unit (whole dong,
// cents) and converted back only for the result, so the day totals, the
// category totals and the grand total are exactly the same sum. Each
// estimate is rounded to the minor unit first.
//
// Activities with an unknown category (only reachable through hand-edited
// storage or a share token) are counted under "other" so that category
// totals still sum to the grand total.
func CostBreakdown(trip domain.Trip) domain.CostBreakdown {
	scale := minorUnitScale(trip.Currency)
	toMinor := func(v float64) int64 { return int64(math.Round(v * scale)) }
	toMajor := func(n int64) float64 { return float64(n) / scale }

	var total int64
	byDay := make([]domain.DayCost, 0, len(trip.Days))
	byCat := make(map[domain.Category]int64)

	for _, day := range trip.Days {
		var dayTotal int64
		for _, a := range day.Activities {
			c := toMinor(a.Cost())
			dayTotal += c
			cat := a.Category
			if !cat.Valid() {
				cat = domain.CategoryOther
			}
			byCat[cat] += c
		}
		total += dayTotal
		byDay = append(byDay, domain.DayCost{DayID: day.ID, Date: day.Date, Total: toMajor(dayTotal)})
	}

	byCategory := make([]domain.CategoryCost, 0, len(byCat))
	for _, cat := range domain.Categories() {
		if v := byCat[cat]; v != 0 {
			byCategory = append(byCategory, domain.CategoryCost{Category: cat, Total: toMajor(v)})
		}
	}

	// Each person's share is rounded up to the next minor unit.
	perPerson := total
	if n := int64(trip.NumberOfPeople); n > 0 {
		perPerson = int64(math.Ceil(float64(total) / float64(n)))
	}

	return domain.CostBreakdown{
		Total:      toMajor(total),
		PerPerson:  toMajor(perPerson),
		ByDay:      byDay,
		ByCategory: byCategory,
	}
}

// minorUnitScale returns 10^d where d is the number of decimals in code's
// standard rounding: 1 for VND, 100 for USD and EUR. An empty code means
// the default currency; a code x/text does not know uses cents.
func minorUnitScale(code string) float64 {
	if code == "" {
		code = domain.DefaultCurrency
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 100
	}
	scale, _ := currency.Standard.Rounding(unit)
	return math.Pow10(scale)
}
