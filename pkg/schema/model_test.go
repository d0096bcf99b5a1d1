package schema_test

import (
	"encoding/json"
	"testing"
	"time"

	// Packages
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
	assert "github.com/stretchr/testify/assert"
)

func Test_model_001(t *testing.T) {
	assert := assert.New(t)
	m := schema.Model{Id: "anthropic/claude-sonnet-4", ProviderId: "openrouter"}
	assert.Equal("openrouter/anthropic/claude-sonnet-4", m.Key())

	provider, model, ok := schema.ParseKey(m.Key())
	assert.True(ok)
	assert.Equal("openrouter", provider)
	assert.Equal("anthropic/claude-sonnet-4", model)

	for _, key := range []string{"", "openai", "/gpt-4o", "openai/"} {
		_, _, ok := schema.ParseKey(key)
		assert.False(ok, key)
	}
}

func Test_model_002(t *testing.T) {
	assert := assert.New(t)
	var m schema.Model
	_, ok := m.OutputPrice()
	assert.False(ok)
	assert.Zero(m.ContextWindow())

	m.Cost = &schema.Cost{Input: types.Ptr(0.5)}
	_, ok = m.OutputPrice()
	assert.False(ok)
	price, ok := m.InputPrice()
	assert.True(ok)
	assert.Equal(0.5, price)

	m.Limit = &schema.Limit{Context: 200000, Output: 8192}
	assert.Equal(uint64(200000), m.ContextWindow())
}

func Test_model_003(t *testing.T) {
	assert := assert.New(t)
	ts := time.UnixMilli(1735689600000)
	entry := schema.NewCacheEntry(schema.ModelsData{}, ts)
	assert.Equal(int64(1735689600000), entry.Timestamp)
	assert.True(entry.Time().Equal(ts))

	data, err := json.Marshal(entry)
	assert.NoError(err)
	assert.JSONEq(`{"data":{"providers":null,"models":null},"timestamp":1735689600000}`, string(data))
}

func Test_model_004(t *testing.T) {
	assert := assert.New(t)
	var raw schema.RawModel
	assert.NoError(json.Unmarshal([]byte(`{"name":"Foo","reasoning":true,"cost":{"input":1,"output":3}}`), &raw))
	assert.Equal("Foo", raw.Name)
	assert.NotNil(raw.Reasoning)
	assert.True(*raw.Reasoning)
	assert.Nil(raw.ToolCall)
	assert.Nil(raw.Modalities)
	assert.Equal(3.0, *raw.Cost.Output)
}
