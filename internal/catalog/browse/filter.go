// Package browse holds the catalog filter and lookup. Both are pure
// functions of the reference collection and their inputs.
package browse

import (
	"strings"

	"github.com/tair/product-catalog/internal/catalog/domain"
)

// Filter returns the records that satisfy every constraint in c, in their
// original relative order. records must be the full reference collection,
// never the result of an earlier Filter call. The input is not modified.
func Filter(records []domain.Product, c domain.Criteria) []domain.Product {
	matched := make([]domain.Product, 0, len(records))
	for _, p := range records {
		if Matches(p, c) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Matches reports whether p satisfies every constraint in c
func Matches(p domain.Product, c domain.Criteria) bool {
	return containsFold(p.Category, c.Category) &&
		containsFold(p.Company, c.Company) &&
		atLeast(p.Rating, c.MinRating) &&
		inRange(p.Price, c.MinPrice, c.MaxPrice) &&
		containsFold(p.Availability, c.Availability)
}

func containsFold(field string, want domain.Optional[string]) bool {
	s, ok := want.Get()
	if !ok {
		return true
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(s))
}

func atLeast(v float64, min domain.Optional[float64]) bool {
	m, ok := min.Get()
	return !ok || v >= m
}

func inRange(v float64, min, max domain.Optional[float64]) bool {
	if lo, ok := min.Get(); ok && v < lo {
		return false
	}
	if hi, ok := max.Get(); ok && v > hi {
		return false
	}
	return true
}
