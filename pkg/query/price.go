package query

import (
	"fmt"
	"slices"
	"strings"

	// Packages
	modelsdev "github.com/mutablelogic/go-modelsdev"
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// PriceBucket selects models by output price per million tokens
type PriceBucket uint

type bucket struct {
	id    string
	label string
	match func(price float64) bool
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	PriceAll PriceBucket = iota
	PriceFree
	PriceNonFree
	PriceUnder1
	PriceUnder2
	PriceUnder5
	PriceUnder15
	PriceOver1
	PriceOver2
	PriceOver5
	PriceOver15
	priceMax
)

// Tokens in a million, the unit prices are quoted in
const perMillion = 1_000_000

// Under is inclusive and over is exclusive, so a threshold price appears in
// exactly one of the pair
var buckets = [priceMax]bucket{
	PriceAll:     {"all", "All Prices", func(float64) bool { return true }},
	PriceFree:    {"free", "Free output", func(p float64) bool { return p == 0 }},
	PriceNonFree: {"non-free", "Paid output", func(p float64) bool { return p > 0 }},
	PriceUnder1:  {"under-1", "Under $1/M output", under(1)},
	PriceUnder2:  {"under-2", "Under $2/M output", under(2)},
	PriceUnder5:  {"under-5", "Under $5/M output", under(5)},
	PriceUnder15: {"under-15", "Under $15/M output", under(15)},
	PriceOver1:   {"over-1", "Over $1/M output", over(1)},
	PriceOver2:   {"over-2", "Over $2/M output", over(2)},
	PriceOver5:   {"over-5", "Over $5/M output", over(5)},
	PriceOver15:  {"over-15", "Over $15/M output", over(15)},
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// PriceBuckets returns every bucket in display order
func PriceBuckets() []PriceBucket {
	result := make([]PriceBucket, 0, priceMax)
	for b := range priceMax {
		result = append(result, b)
	}
	return result
}

// ParsePriceBucket returns the bucket for an identifier such as "under-5"
func ParsePriceBucket(id string) (PriceBucket, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for b := range priceMax {
		if buckets[b].id == id {
			return b, nil
		}
	}
	return 0, modelsdev.ErrBadParameter.Withf("unknown price filter %q", id)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (b PriceBucket) String() string {
	if b >= priceMax {
		return fmt.Sprintf("price(%d)", uint(b))
	}
	return buckets[b].id
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Label returns the display name of the bucket
func (b PriceBucket) Label() string {
	return b.info().label
}

// Match returns true if an output price falls in the bucket
func (b PriceBucket) Match(price float64) bool {
	return b.info().match(price)
}

func (b PriceBucket) MarshalText() ([]byte, error) {
	if b >= priceMax {
		return nil, modelsdev.ErrBadParameter.Withf("unknown price filter %d", uint(b))
	}
	return []byte(b.String()), nil
}

func (b *PriceBucket) UnmarshalText(text []byte) error {
	v, err := ParsePriceBucket(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// FilterByPrice returns the models with an output price in the bucket.
// Models without an output price are never returned, not even for PriceAll.
func FilterByPrice(models []schema.Model, b PriceBucket) []schema.Model {
	match := b.info().match
	return Filter(models, func(m schema.Model) bool {
		price, ok := m.OutputPrice()
		return ok && match(price)
	})
}

// SortByOutputPrice returns a copy of the models sorted by ascending output
// price. Models without an output price sort last, and equal prices keep
// their relative order.
func SortByOutputPrice(models []schema.Model) []schema.Model {
	result := slices.Clone(models)
	if result == nil {
		result = []schema.Model{}
	}
	slices.SortStableFunc(result, func(a, b schema.Model) int {
		pa, oka := a.OutputPrice()
		pb, okb := b.OutputPrice()
		switch {
		case oka && okb:
			if pa < pb {
				return -1
			} else if pa > pb {
				return 1
			}
			return 0
		case oka:
			return -1
		case okb:
			return 1
		}
		return 0
	})
	return result
}

// EstimateCost returns the cost in USD of a number of tokens at a price per
// million tokens
func EstimateCost(tokens uint64, pricePerMillion float64) float64 {
	return float64(tokens) * pricePerMillion / perMillion
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (b PriceBucket) info() bucket {
	if b >= priceMax {
		panic(fmt.Sprintf("query: invalid price filter %d", uint(b)))
	}
	return buckets[b]
}

func under(threshold float64) func(float64) bool {
	return func(p float64) bool { return p <= threshold }
}

func over(threshold float64) func(float64) bool {
	return func(p float64) bool { return p > threshold }
}
