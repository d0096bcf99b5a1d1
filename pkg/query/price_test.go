package query_test

import (
	"testing"

	// Packages
	query "github.com/mutablelogic/go-modelsdev/pkg/query"
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
	assert "github.com/stretchr/testify/assert"
)

func Test_price_001(t *testing.T) {
	assert := assert.New(t)
	buckets := query.PriceBuckets()
	assert.Len(buckets, 11)
	assert.Equal(query.PriceAll, buckets[0])
	for _, b := range buckets {
		assert.NotEmpty(b.Label())
		parsed, err := query.ParsePriceBucket(b.String())
		assert.NoError(err)
		assert.Equal(b, parsed)
	}
	_, err := query.ParsePriceBucket("under-3")
	assert.Error(err)

	var b query.PriceBucket
	assert.NoError(b.UnmarshalText([]byte("Over-15")))
	assert.Equal(query.PriceOver15, b)
	assert.Panics(func() { query.PriceBucket(99).Match(1) })
}

// Threshold prices are inclusive for under and exclusive for over
func Test_price_002(t *testing.T) {
	assert := assert.New(t)
	one := []schema.Model{{Id: "one", Cost: priced(1.00)}}
	more := []schema.Model{{Id: "more", Cost: priced(1.01)}}

	assert.Len(query.FilterByPrice(one, query.PriceUnder1), 1)
	assert.Empty(query.FilterByPrice(one, query.PriceOver1))
	assert.Empty(query.FilterByPrice(more, query.PriceUnder1))
	assert.Len(query.FilterByPrice(more, query.PriceOver1), 1)

	for _, threshold := range []struct {
		price       float64
		under, over query.PriceBucket
	}{
		{2, query.PriceUnder2, query.PriceOver2},
		{5, query.PriceUnder5, query.PriceOver5},
		{15, query.PriceUnder15, query.PriceOver15},
	} {
		models := []schema.Model{{Cost: priced(threshold.price)}}
		assert.Len(query.FilterByPrice(models, threshold.under), 1)
		assert.Empty(query.FilterByPrice(models, threshold.over))
	}
}

func Test_price_003(t *testing.T) {
	assert := assert.New(t)
	models := testModels()

	// Models without an output price never appear, even in all
	assert.Equal([]string{"claude-haiku", "claude-opus", "claude-2", "llama-3"}, ids(query.FilterByPrice(models, query.PriceAll)))
	assert.Equal([]string{"llama-3"}, ids(query.FilterByPrice(models, query.PriceFree)))
	assert.Equal([]string{"claude-haiku", "claude-opus", "claude-2"}, ids(query.FilterByPrice(models, query.PriceNonFree)))
	assert.Equal([]string{"claude-haiku", "llama-3"}, ids(query.FilterByPrice(models, query.PriceUnder1)))
	assert.Equal([]string{"claude-opus"}, ids(query.FilterByPrice(models, query.PriceOver15)))
	assert.Empty(query.FilterByPrice(nil, query.PriceAll))
}

func Test_price_004(t *testing.T) {
	assert := assert.New(t)
	sorted := query.SortByOutputPrice(testModels())
	assert.Equal([]string{"llama-3", "claude-haiku", "claude-2", "claude-opus", "gpt-4o-audio", "tts-1"}, ids(sorted))

	ties := []schema.Model{{Id: "a", Cost: priced(2)}, {Id: "b"}, {Id: "c", Cost: priced(2)}, {Id: "d", Cost: priced(1)}}
	assert.Equal([]string{"d", "a", "c", "b"}, ids(query.SortByOutputPrice(ties)))
	assert.Equal([]string{"a", "b", "c", "d"}, ids(ties))
}

func Test_price_005(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0.25, query.EstimateCost(100_000, 2.5))
	assert.Equal(0.0, query.EstimateCost(0, 10))
	assert.Equal(15.0, query.EstimateCost(1_000_000, 15))
	assert.InDelta(0.0003, query.EstimateCost(1_000, 0.3), 1e-12)
}

///////////////////////////////////////////////////////////////////////////////
// FORMAT

func Test_format_001(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(query.Placeholder, query.FormatPrice(nil))
	assert.Equal("Free", query.FormatPrice(types.Ptr(0.0)))
	assert.Equal("$0.0050", query.FormatPrice(types.Ptr(0.005)))
	assert.Equal("$2.50", query.FormatPrice(types.Ptr(2.5)))
	assert.Equal("$75.00", query.FormatPrice(types.Ptr(75.0)))

	assert.Equal(query.Placeholder, query.FormatPriceFixed(nil))
	assert.Equal("$0.00", query.FormatPriceFixed(types.Ptr(0.0)))
	assert.Equal("$3.00", query.FormatPriceFixed(types.Ptr(3.0)))
}

func Test_format_002(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(query.Placeholder, query.FormatContextWindow(0))
	assert.Equal("512", query.FormatContextWindow(512))
	assert.Equal("8K", query.FormatContextWindow(8192))
	assert.Equal("128K", query.FormatContextWindow(128000))
	assert.Equal("999K", query.FormatContextWindow(999_999))
	assert.Equal("1M", query.FormatContextWindow(1_000_000))
	assert.Equal("1M", query.FormatContextWindow(1_048_576))
	assert.Equal("1.5M", query.FormatContextWindow(1_500_000))
	assert.Equal("2M", query.FormatContextWindow(2_000_000))
}

func Test_format_003(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("$0.25", query.FormatCost(query.EstimateCost(100_000, 2.5)))
	assert.Equal("$0.0030", query.FormatCost(query.EstimateCost(10_000, 0.3)))
	assert.Equal("$0.00", query.FormatCost(0))
	assert.Equal("Yes", query.FormatBool(true))
	assert.Equal("No", query.FormatBool(false))
}
