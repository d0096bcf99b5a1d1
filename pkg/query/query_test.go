package query_test

import (
	"testing"

	// Packages
	query "github.com/mutablelogic/go-modelsdev/pkg/query"
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

func text() schema.Modalities {
	return schema.Modalities{
		Input:  []schema.Modality{schema.ModalityText},
		Output: []schema.Modality{schema.ModalityText},
	}
}

func priced(output float64) *schema.Cost {
	return &schema.Cost{Input: types.Ptr(output / 2), Output: types.Ptr(output)}
}

// testModels is in normalized order: provider name, then model name
func testModels() []schema.Model {
	return []schema.Model{
		{Id: "claude-haiku", Name: "Claude Haiku", Family: "claude", ProviderId: "anthropic", ProviderName: "Anthropic",
			ToolCall: true, Attachment: true, Modalities: schema.Modalities{
				Input:  []schema.Modality{schema.ModalityText, schema.ModalityImage, schema.ModalityPDF},
				Output: []schema.Modality{schema.ModalityText},
			}, Cost: priced(1), Limit: &schema.Limit{Context: 200000, Output: 8192}},
		{Id: "claude-opus", Name: "Claude Opus", Family: "claude", ProviderId: "anthropic", ProviderName: "Anthropic",
			Reasoning: true, ToolCall: true, StructuredOutput: true, Modalities: text(), Cost: priced(75)},
		{Id: "claude-2", Name: "Claude v2", ProviderId: "anthropic", ProviderName: "Anthropic",
			Status: schema.StatusDeprecated, Modalities: text(), Cost: priced(1.01)},
		{Id: "llama-3", Name: "Llama 3", Family: "llama", ProviderId: "meta", ProviderName: "Meta",
			OpenWeights: true, Modalities: text(), Cost: priced(0)},
		{Id: "gpt-4o-audio", Name: "GPT-4o Audio", ProviderId: "openai", ProviderName: "OpenAI",
			Status: schema.StatusBeta, Modalities: schema.Modalities{
				Input:  []schema.Modality{schema.ModalityText, schema.ModalityAudio},
				Output: []schema.Modality{schema.ModalityText, schema.ModalityAudio},
			}},
		{Id: "tts-1", Name: "TTS", ProviderId: "openai", ProviderName: "OpenAI",
			Modalities: schema.Modalities{
				Input:  []schema.Modality{schema.ModalityText},
				Output: []schema.Modality{schema.ModalityAudio},
			}, Cost: &schema.Cost{Input: types.Ptr(15.0)}},
	}
}

func ids(models []schema.Model) []string {
	result := make([]string, 0, len(models))
	for _, m := range models {
		result = append(result, m.Id)
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// FILTERS

func Test_filter_001(t *testing.T) {
	assert := assert.New(t)
	models := testModels()
	assert.Equal([]string{"claude-haiku", "claude-opus", "claude-2"}, ids(query.FilterByProvider(models, "anthropic")))
	assert.Equal([]string{"gpt-4o-audio", "tts-1"}, ids(query.FilterByProvider(models, "openai")))
	assert.Empty(query.FilterByProvider(models, "mistral"))
	assert.NotNil(query.FilterByProvider(nil, "openai"))
}

func Test_filter_002(t *testing.T) {
	assert := assert.New(t)
	models := testModels()
	assert.Equal([]string{"claude-opus"}, ids(query.FilterByCapability(models, schema.CapReasoning)))
	assert.Equal([]string{"claude-haiku", "claude-opus"}, ids(query.FilterByCapability(models, schema.CapToolCall)))
	assert.Equal([]string{"claude-opus"}, ids(query.FilterByCapability(models, schema.CapStructuredOutput)))
	assert.Equal([]string{"claude-haiku"}, ids(query.FilterByCapability(models, schema.CapVision)))
	assert.Equal([]string{"gpt-4o-audio", "tts-1"}, ids(query.FilterByCapability(models, schema.CapAudio)))
	assert.Equal([]string{"claude-haiku"}, ids(query.FilterByCapability(models, schema.CapAttachment)))
	assert.Equal([]string{"llama-3"}, ids(query.FilterByCapability(models, schema.CapOpenWeights)))
}

// Count is always the length of the filter, for every capability and input
func Test_filter_003(t *testing.T) {
	assert := assert.New(t)
	models := testModels()
	for _, collection := range [][]schema.Model{nil, {}, models, models[:1], models[3:]} {
		for _, c := range schema.Capabilities() {
			assert.Equal(len(query.FilterByCapability(collection, c)), query.CountByCapability(collection, c), c.String())
		}
	}
}

func Test_filter_004(t *testing.T) {
	assert := assert.New(t)
	assert.Panics(func() { query.FilterByCapability(testModels(), schema.Capability(42)) })
}

func Test_filter_005(t *testing.T) {
	assert := assert.New(t)
	models := testModels()
	result := query.FilterOutDeprecated(models)
	assert.Equal([]string{"claude-haiku", "claude-opus", "llama-3", "gpt-4o-audio", "tts-1"}, ids(result))
	for _, m := range result {
		assert.NotEqual(schema.StatusDeprecated, m.Status)
	}
	assert.Len(result, len(models)-1)
	assert.Empty(query.FilterOutDeprecated(nil))
}

func Test_filter_006(t *testing.T) {
	assert := assert.New(t)
	models := []schema.Model{
		{Id: "1", Name: "b", ProviderName: "Zeta"},
		{Id: "2", Name: "a", ProviderName: "alpha"},
		{Id: "3", Name: "B", ProviderName: "Zeta"},
		{Id: "4", Name: "a", ProviderName: "alpha"},
		{Id: "5", Name: "a", ProviderName: "Beta"},
	}
	result := query.SortByProviderThenName(models)
	assert.Equal([]string{"2", "4", "5", "1", "3"}, ids(result))

	// Input is not reordered
	assert.Equal([]string{"1", "2", "3", "4", "5"}, ids(models))
	assert.Empty(query.SortByProviderThenName(nil))
}

func Test_filter_007(t *testing.T) {
	assert := assert.New(t)
	models := testModels()
	providers := []schema.Provider{{Id: "anthropic", Name: "Anthropic"}, {Id: "openai", Name: "OpenAI"}}

	p := query.FindProvider(providers, "openai")
	require.NotNil(t, p)
	assert.Equal("OpenAI", p.Name)
	assert.Nil(query.FindProvider(providers, "meta"))

	m := query.FindModel(models, "openai/tts-1")
	require.NotNil(t, m)
	assert.Equal("TTS", m.Name)
	assert.Nil(query.FindModel(models, "meta/tts-1"))
	assert.Nil(query.FindModel(models, "tts-1"))
}

///////////////////////////////////////////////////////////////////////////////
// SEARCH

func Test_search_001(t *testing.T) {
	assert := assert.New(t)
	models := testModels()
	assert.Len(query.Search(models, ""), len(models))
	assert.Len(query.Search(models, "   "), len(models))
	assert.Equal([]string{"claude-haiku", "claude-opus", "claude-2"}, ids(query.Search(models, "CLAUDE")))
	assert.Equal([]string{"llama-3"}, ids(query.Search(models, "meta")))
	assert.Equal([]string{"gpt-4o-audio", "tts-1"}, ids(query.Search(models, "openai")))
	assert.Equal([]string{"tts-1"}, ids(query.Search(models, "tts")))
	assert.Empty(query.Search(models, "gemini"))
}

func Test_search_002(t *testing.T) {
	assert := assert.New(t)
	providers := []schema.Provider{{Id: "anthropic", Name: "Anthropic"}, {Id: "openai", Name: "OpenAI"}, {Id: "google-vertex", Name: "Vertex"}}
	assert.Len(query.SearchProviders(providers, ""), 3)
	assert.Len(query.SearchProviders(providers, "open"), 1)
	assert.Len(query.SearchProviders(providers, "GOOGLE"), 1)
	assert.Empty(query.SearchProviders(nil, "x"))
}
