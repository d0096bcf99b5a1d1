package catalog_test

import (
	"encoding/json"
	"testing"

	// Packages
	catalog "github.com/mutablelogic/go-modelsdev/pkg/catalog"
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

const testCatalog = `{
	"beta": {"name": "Beta", "models": {
		"bar": {"name": "Bar", "reasoning": true, "cost": {"input": 1, "output": 3}}
	}},
	"acme": {"name": "Acme", "doc": "https://acme.example/docs", "models": {
		"foo": {"name": "Foo"}
	}}
}`

func decode(t *testing.T, data string) schema.RawCatalog {
	t.Helper()
	var raw schema.RawCatalog
	require.NoError(t, json.Unmarshal([]byte(data), &raw))
	return raw
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

// Two providers normalize into alphabetical providers and provider-ordered models
func Test_catalog_001(t *testing.T) {
	assert := assert.New(t)
	data := catalog.Normalize(decode(t, testCatalog))

	require.Len(t, data.Providers, 2)
	assert.Equal("acme", data.Providers[0].Id)
	assert.Equal("Acme", data.Providers[0].Name)
	assert.Equal("https://acme.example/docs", data.Providers[0].Doc)
	assert.Equal(uint(1), data.Providers[0].ModelCount)
	assert.Equal("https://models.dev/logos/acme.svg", data.Providers[0].Logo)
	assert.Equal("Beta", data.Providers[1].Name)

	require.Len(t, data.Models, 2)
	foo, bar := data.Models[0], data.Models[1]
	assert.Equal("foo", foo.Id)
	assert.Equal("Foo", foo.Name)
	assert.Equal("acme", foo.ProviderId)
	assert.Equal("Acme", foo.ProviderName)
	assert.Equal("https://models.dev/logos/acme.svg", foo.ProviderLogo)
	assert.False(foo.Reasoning)
	assert.Nil(foo.Cost)
	assert.Nil(foo.Limit)

	assert.Equal("Bar", bar.Name)
	assert.Equal("Beta", bar.ProviderName)
	assert.True(bar.Reasoning)
	require.NotNil(t, bar.Cost)
	assert.Equal(1.0, *bar.Cost.Input)
	assert.Equal(3.0, *bar.Cost.Output)
}

// Absent capability flags are false and absent modalities default to text
func Test_catalog_002(t *testing.T) {
	assert := assert.New(t)
	data := catalog.Normalize(decode(t, `{"p": {"name": "P", "models": {
		"a": {"name": "A"},
		"b": {"name": "B", "modalities": {"input": ["text", "image"], "output": []}},
		"c": {"name": "C", "tool_call": false, "attachment": true, "open_weights": true, "temperature": true, "structured_output": true}
	}}}`))

	require.Len(t, data.Models, 3)
	a, b, c := data.Models[0], data.Models[1], data.Models[2]
	assert.False(a.Attachment || a.Reasoning || a.ToolCall || a.StructuredOutput || a.Temperature || a.OpenWeights)
	assert.Equal([]schema.Modality{schema.ModalityText}, a.Modalities.Input)
	assert.Equal([]schema.Modality{schema.ModalityText}, a.Modalities.Output)

	assert.Equal([]schema.Modality{schema.ModalityText, schema.ModalityImage}, b.Modalities.Input)
	assert.Equal([]schema.Modality{schema.ModalityText}, b.Modalities.Output)

	assert.True(c.Attachment)
	assert.True(c.OpenWeights)
	assert.True(c.Temperature)
	assert.True(c.StructuredOutput)
	assert.False(c.ToolCall)
}

// Normalization is idempotent and sorts regardless of input order
func Test_catalog_003(t *testing.T) {
	assert := assert.New(t)
	raw := decode(t, `{
		"z": {"name": "Zeta", "models": {"m2": {"name": "beta"}, "m1": {"name": "Alpha"}, "m3": {"name": "gamma"}}},
		"a": {"name": "alpha labs", "models": {}},
		"m": {"name": "Mu", "models": {"x": {"name": "X", "status": "deprecated"}}}
	}`)

	first := catalog.Normalize(raw)
	for i := 0; i < 10; i++ {
		assert.Equal(first, catalog.Normalize(raw))
	}

	names := make([]string, 0, len(first.Providers))
	for _, p := range first.Providers {
		names = append(names, p.Name)
	}
	assert.Equal([]string{"alpha labs", "Mu", "Zeta"}, names)

	models := make([]string, 0, len(first.Models))
	for _, m := range first.Models {
		models = append(models, m.ProviderName+":"+m.Name)
	}
	assert.Equal([]string{"Mu:X", "Zeta:Alpha", "Zeta:beta", "Zeta:gamma"}, models)
	assert.Equal(schema.StatusDeprecated, first.Models[0].Status)
	assert.Equal(uint(0), first.Providers[0].ModelCount)
}

// Normalization does not alias the input
func Test_catalog_004(t *testing.T) {
	assert := assert.New(t)
	raw := schema.RawCatalog{
		"p": {Name: "P", Models: map[string]schema.RawModel{
			"m": {
				Name:       "M",
				Modalities: &schema.RawModalities{Input: []schema.Modality{schema.ModalityImage}},
				Cost:       &schema.Cost{Output: types.Ptr(2.0)},
				Limit:      &schema.Limit{Context: 1000},
			},
		}},
	}
	data := catalog.Normalize(raw)
	data.Models[0].Modalities.Input[0] = schema.ModalityAudio
	*data.Models[0].Cost.Output = 9
	data.Models[0].Limit.Context = 5

	rawModel := raw["p"].Models["m"]
	assert.Equal(schema.ModalityImage, rawModel.Modalities.Input[0])
	assert.Equal(2.0, *rawModel.Cost.Output)
	assert.Equal(uint64(1000), rawModel.Limit.Context)
}

// Same model id under two providers stays distinct
func Test_catalog_005(t *testing.T) {
	assert := assert.New(t)
	data := catalog.NormalizeWithLogoBase(decode(t, `{
		"openai": {"name": "OpenAI", "models": {"gpt-4o": {"name": "GPT-4o"}}},
		"azure": {"name": "Azure", "models": {"gpt-4o": {"name": "GPT-4o"}}}
	}`), "https://cdn.example/logos/")

	require.Len(t, data.Models, 2)
	assert.Equal("azure/gpt-4o", data.Models[0].Key())
	assert.Equal("openai/gpt-4o", data.Models[1].Key())
	assert.Equal("https://cdn.example/logos/azure.svg", data.Models[0].ProviderLogo)
	assert.Equal(data.Providers[0].Logo, data.Models[0].ProviderLogo)
}

func Test_catalog_006(t *testing.T) {
	assert := assert.New(t)
	data := catalog.Normalize(schema.RawCatalog{})
	assert.Empty(data.Providers)
	assert.Empty(data.Models)
	assert.Equal("https://models.dev/logos/openai.svg", catalog.LogoURL(catalog.DefaultLogoBase, "openai"))
}
