package domain

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Optional holds a value that may be absent
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSet reports whether the value is present
func (o Optional[T]) IsSet() bool {
	return o.ok
}

// Field names a single filter input
type Field string

const (
	FieldCategory     Field = "category"
	FieldCompany      Field = "company"
	FieldRating       Field = "rating"
	FieldMinRating    Field = "minRating"
	FieldMinPrice     Field = "minPrice"
	FieldMaxPrice     Field = "maxPrice"
	FieldAvailability Field = "availability"
)

// Fields lists every recognised filter input in form order
var Fields = []Field{
	FieldCategory,
	FieldCompany,
	FieldMinPrice,
	FieldMaxPrice,
	FieldRating,
	FieldMinRating,
	FieldAvailability,
}

// Criteria is an immutable snapshot of the filter inputs. The zero value
// constrains nothing. Every change produces a new snapshot.
type Criteria struct {
	Category     Optional[string]
	Company      Optional[string]
	Availability Optional[string]
	MinRating    Optional[float64]
	MinPrice     Optional[float64]
	MaxPrice     Optional[float64]
}

// DefaultCriteria returns the all-permissive snapshot
func DefaultCriteria() Criteria {
	return Criteria{}
}

// With applies one field change event and returns the resulting snapshot.
// Empty text clears a text field. Empty, non-numeric or non-finite input
// clears a numeric field. A rating of 0 is the same as no rating.
// Unknown fields leave the snapshot unchanged.
func (c Criteria) With(field Field, raw string) Criteria {
	switch field {
	case FieldCategory:
		c.Category = text(raw)
	case FieldCompany:
		c.Company = text(raw)
	case FieldAvailability:
		c.Availability = text(raw)
	case FieldRating, FieldMinRating:
		c.MinRating = number(raw)
		if v, ok := c.MinRating.Get(); ok && v == 0 {
			c.MinRating = None[float64]()
		}
	case FieldMinPrice:
		c.MinPrice = number(raw)
	case FieldMaxPrice:
		c.MaxPrice = number(raw)
	}
	return c
}

// WithCategory returns a copy constrained to categories containing s
func (c Criteria) WithCategory(s string) Criteria {
	c.Category = Some(s)
	return c
}

// WithCompany returns a copy constrained to companies containing s
func (c Criteria) WithCompany(s string) Criteria {
	c.Company = Some(s)
	return c
}

// WithAvailability returns a copy constrained to availability containing s
func (c Criteria) WithAvailability(s string) Criteria {
	c.Availability = Some(s)
	return c
}

// WithMinRating returns a copy constrained to ratings of at least r
func (c Criteria) WithMinRating(r float64) Criteria {
	c.MinRating = Some(r)
	return c
}

// WithPriceRange returns a copy constrained to min <= price <= max
func (c Criteria) WithPriceRange(min, max float64) Criteria {
	c.MinPrice = Some(min)
	c.MaxPrice = Some(max)
	return c
}

// IsDefault reports whether no field is constrained
func (c Criteria) IsDefault() bool {
	return c == Criteria{}
}

// ParseCriteria folds the recognised query parameters into a snapshot.
// The first value of each parameter wins.
func ParseCriteria(values url.Values) Criteria {
	c := DefaultCriteria()
	for _, f := range Fields {
		if _, ok := values[string(f)]; ok {
			c = c.With(f, values.Get(string(f)))
		}
	}
	return c
}

// Values renders the snapshot back into query parameters
func (c Criteria) Values() url.Values {
	v := url.Values{}
	if s, ok := c.Category.Get(); ok {
		v.Set(string(FieldCategory), s)
	}
	if s, ok := c.Company.Get(); ok {
		v.Set(string(FieldCompany), s)
	}
	if r, ok := c.MinRating.Get(); ok {
		v.Set(string(FieldMinRating), strconv.FormatFloat(r, 'f', -1, 64))
	}
	if p, ok := c.MinPrice.Get(); ok {
		v.Set(string(FieldMinPrice), strconv.FormatFloat(p, 'f', -1, 64))
	}
	if p, ok := c.MaxPrice.Get(); ok {
		v.Set(string(FieldMaxPrice), strconv.FormatFloat(p, 'f', -1, 64))
	}
	if s, ok := c.Availability.Get(); ok {
		v.Set(string(FieldAvailability), s)
	}
	return v
}

func text(raw string) Optional[string] {
	if raw == "" {
		return None[string]()
	}
	return Some(raw)
}

func number(raw string) Optional[float64] {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return None[float64]()
	}
	return Some(f)
}
