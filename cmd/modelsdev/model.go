package main

import (
	"os"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	modelsdev "github.com/mutablelogic/go-modelsdev"
	query "github.com/mutablelogic/go-modelsdev/pkg/query"
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ModelCommand struct {
	Key    string `arg:"" name:"key" help:"Model key, as provider/model"`
	Tokens uint64 `name:"tokens" help:"Number of output tokens to estimate the cost of" default:"100000"`
}

// modelDetail is the document printed for a single model
type modelDetail struct {
	Key          string            `yaml:"key"`
	Name         string            `yaml:"name"`
	Family       string            `yaml:"family,omitempty"`
	Provider     string            `yaml:"provider"`
	Logo         string            `yaml:"logo,omitempty"`
	Status       schema.Status     `yaml:"status,omitempty"`
	Knowledge    string            `yaml:"knowledge,omitempty"`
	ReleaseDate  string            `yaml:"release_date,omitempty"`
	LastUpdated  string            `yaml:"last_updated,omitempty"`
	Capabilities []string          `yaml:"capabilities,flow"`
	Input        []schema.Modality `yaml:"input,flow"`
	Output       []schema.Modality `yaml:"output,flow"`
	Context      string            `yaml:"context"`
	MaxOutput    string            `yaml:"max_output"`
	Pricing      *pricingDetail    `yaml:"pricing,omitempty"`
}

type pricingDetail struct {
	Input      string `yaml:"input"`
	Output     string `yaml:"output"`
	Reasoning  string `yaml:"reasoning,omitempty"`
	CacheRead  string `yaml:"cache_read,omitempty"`
	CacheWrite string `yaml:"cache_write,omitempty"`
	Estimate   string `yaml:"estimate,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ModelCommand) Run(ctx *Globals) (err error) {
	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ModelCommand",
		attribute.String("key", cmd.Key),
	)
	defer func() { endSpan(err) }()

	if _, _, ok := schema.ParseKey(cmd.Key); !ok {
		return modelsdev.ErrBadParameter.Withf("model key %q is not provider/model", cmd.Key)
	}

	data, err := ctx.Data(parent)
	if err != nil {
		return err
	}

	model := query.FindModel(data.Models, cmd.Key)
	if model == nil {
		return modelsdev.ErrNotFound.Withf("model %q", cmd.Key)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(newModelDetail(*model, cmd.Tokens)); err != nil {
		return err
	}
	return enc.Close()
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func newModelDetail(m schema.Model, tokens uint64) modelDetail {
	detail := modelDetail{
		Key:          m.Key(),
		Name:         m.Name,
		Family:       m.Family,
		Provider:     m.ProviderName,
		Logo:         m.ProviderLogo,
		Status:       m.Status,
		Knowledge:    m.Knowledge,
		ReleaseDate:  m.ReleaseDate,
		LastUpdated:  m.LastUpdated,
		Capabilities: []string{},
		Input:        m.Modalities.Input,
		Output:       m.Modalities.Output,
		Context:      query.FormatContextWindow(m.ContextWindow()),
		MaxOutput:    query.Placeholder,
	}
	for _, c := range schema.Capabilities() {
		if c.Match(m) {
			detail.Capabilities = append(detail.Capabilities, c.String())
		}
	}
	if m.Limit != nil {
		detail.MaxOutput = query.FormatContextWindow(m.Limit.Output)
	}
	if m.Cost != nil {
		detail.Pricing = &pricingDetail{
			Input:      query.FormatPrice(m.Cost.Input),
			Output:     query.FormatPrice(m.Cost.Output),
			Reasoning:  optionalPrice(m.Cost.Reasoning),
			CacheRead:  optionalPrice(m.Cost.CacheRead),
			CacheWrite: optionalPrice(m.Cost.CacheWrite),
		}
		if price, ok := m.OutputPrice(); ok && tokens > 0 {
			detail.Pricing.Estimate = query.FormatCost(query.EstimateCost(tokens, price)) + " for " + query.FormatContextWindow(tokens) + " tokens"
		}
	}
	return detail
}

func optionalPrice(price *float64) string {
	if price == nil {
		return ""
	}
	return query.FormatPrice(price)
}
