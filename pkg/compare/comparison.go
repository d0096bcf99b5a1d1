package compare

import (
	"strings"

	// Packages
	query "github.com/mutablelogic/go-modelsdev/pkg/query"
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
	table "github.com/mutablelogic/go-modelsdev/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Comparison lays out selected models side by side, one column per model
// and one row per attribute
type Comparison struct {
	models []schema.Model
}

type attribute struct {
	label string
	value func(schema.Model) any
}

var _ table.TableData = (*Comparison)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Title is the heading of the Markdown comparison
	Title = "Model Comparison"

	// Unknown is displayed for a model without a knowledge cutoff
	Unknown = "Unknown"
)

var attributes = []attribute{
	{"Provider", func(m schema.Model) any { return m.ProviderName }},
	{"Context", func(m schema.Model) any { return query.FormatContextWindow(m.ContextWindow()) }},
	{"Input Price", func(m schema.Model) any { return query.FormatPrice(costOf(m).Input) }},
	{"Output Price", func(m schema.Model) any { return query.FormatPrice(costOf(m).Output) }},
	{"Reasoning", capability(schema.CapReasoning)},
	{"Tool Calling", capability(schema.CapToolCall)},
	{"Vision", capability(schema.CapVision)},
	{"Audio", capability(schema.CapAudio)},
	{"Structured Output", capability(schema.CapStructuredOutput)},
	{"Open Weights", capability(schema.CapOpenWeights)},
	{"Knowledge Cutoff", func(m schema.Model) any {
		if m.Knowledge == "" {
			return Unknown
		}
		return m.Knowledge
	}},
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Models returns the compared models in column order
func (c *Comparison) Models() []schema.Model {
	return c.models
}

// Header returns an empty corner cell followed by the model names
func (c *Comparison) Header() []string {
	result := make([]string, 0, len(c.models)+1)
	result = append(result, "")
	for _, m := range c.models {
		result = append(result, m.Name)
	}
	return result
}

// Len returns the number of attribute rows
func (c *Comparison) Len() int {
	return len(attributes)
}

// Row returns the attribute label in bold, followed by its value for each
// model
func (c *Comparison) Row(i int) []any {
	if i < 0 || i >= len(attributes) {
		return nil
	}
	attr := attributes[i]
	result := make([]any, 0, len(c.models)+1)
	result = append(result, table.Bold{Value: attr.label})
	for _, m := range c.models {
		result = append(result, attr.value(m))
	}
	return result
}

// Markdown returns the comparison as a Markdown document with a heading
func (c *Comparison) Markdown() string {
	var buf strings.Builder
	buf.WriteString("# " + Title + "\n\n")
	buf.WriteString(table.RenderMarkdown(c))
	buf.WriteString("\n")
	return buf.String()
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func costOf(m schema.Model) schema.Cost {
	if m.Cost == nil {
		return schema.Cost{}
	}
	return *m.Cost
}

func capability(c schema.Capability) func(schema.Model) any {
	return func(m schema.Model) any {
		return query.FormatBool(c.Match(m))
	}
}
