package main

import (
	// Packages
	query "github.com/mutablelogic/go-modelsdev/pkg/query"
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
	table "github.com/mutablelogic/go-modelsdev/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type providerTable []schema.Provider

type modelTable []schema.Model

type capabilityTable struct {
	models       []schema.Model
	capabilities []schema.Capability
}

type pricingTable struct {
	models []schema.Model
	tokens uint64
}

var _ table.TableData = providerTable(nil)
var _ table.TableData = modelTable(nil)
var _ table.TableData = capabilityTable{}
var _ table.TableData = pricingTable{}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	docWidth         = 48
	descriptionWidth = 60
)

///////////////////////////////////////////////////////////////////////////////
// PROVIDERS

func (t providerTable) Header() []string {
	return []string{"Provider", "Id", "Models", "Documentation"}
}

func (t providerTable) Len() int {
	return len(t)
}

func (t providerTable) Row(i int) []any {
	p := t[i]
	return []any{table.Bold{Value: p.Name}, p.Id, p.ModelCount, table.Truncate(p.Doc, docWidth)}
}

///////////////////////////////////////////////////////////////////////////////
// MODELS

func (t modelTable) Header() []string {
	return []string{"Model", "Key", "Context", "Input $/M", "Output $/M", "Status"}
}

func (t modelTable) Len() int {
	return len(t)
}

func (t modelTable) Row(i int) []any {
	m := t[i]
	cost := costOf(m)
	return []any{
		table.Bold{Value: m.Name},
		m.Key(),
		query.FormatContextWindow(m.ContextWindow()),
		cost.Input,
		cost.Output,
		string(m.Status),
	}
}

///////////////////////////////////////////////////////////////////////////////
// CAPABILITIES

func (t capabilityTable) Header() []string {
	return []string{"Capability", "Id", "Description", "Models"}
}

func (t capabilityTable) Len() int {
	return len(t.capabilities)
}

func (t capabilityTable) Row(i int) []any {
	c := t.capabilities[i]
	return []any{
		table.Bold{Value: c.Label()},
		c.String(),
		table.Truncate(c.Description(), descriptionWidth),
		query.CountByCapability(t.models, c),
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRICING

func (t pricingTable) Header() []string {
	return []string{"Model", "Provider", "Input $/M", "Output $/M", "Cost for " + query.FormatContextWindow(t.tokens)}
}

func (t pricingTable) Len() int {
	return len(t.models)
}

func (t pricingTable) Row(i int) []any {
	m := t.models[i]
	cost := costOf(m)
	output, ok := m.OutputPrice()
	if !ok {
		return nil
	}
	return []any{
		table.Bold{Value: m.Name},
		m.ProviderName,
		query.FormatPriceFixed(cost.Input),
		query.FormatPriceFixed(cost.Output),
		query.FormatCost(query.EstimateCost(t.tokens, output)),
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func costOf(m schema.Model) schema.Cost {
	if m.Cost == nil {
		return schema.Cost{}
	}
	return *m.Cost
}
