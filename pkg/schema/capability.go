package schema

import (
	"fmt"
	"strings"

	// Packages
	modelsdev "github.com/mutablelogic/go-modelsdev"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Capability is a named boolean or modality-derived attribute of a model
type Capability uint

type capability struct {
	id          string
	label       string
	description string
	match       func(Model) bool
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	CapReasoning Capability = iota
	CapToolCall
	CapStructuredOutput
	CapVision
	CapAudio
	CapAttachment
	CapOpenWeights
	capMax
)

var capabilities = [capMax]capability{
	CapReasoning: {
		id:          "reasoning",
		label:       "Reasoning",
		description: "Models with extended thinking and reasoning",
		match:       func(m Model) bool { return m.Reasoning },
	},
	CapToolCall: {
		id:          "tool_call",
		label:       "Tool Calling",
		description: "Models that can call functions and tools",
		match:       func(m Model) bool { return m.ToolCall },
	},
	CapStructuredOutput: {
		id:          "structured_output",
		label:       "Structured Output",
		description: "Models that can return output matching a schema",
		match:       func(m Model) bool { return m.StructuredOutput },
	},
	CapVision: {
		id:          "vision",
		label:       "Vision",
		description: "Models that accept image input",
		match:       func(m Model) bool { return m.Modalities.HasInput(ModalityImage) },
	},
	CapAudio: {
		id:          "audio",
		label:       "Audio",
		description: "Models that accept or produce audio",
		match: func(m Model) bool {
			return m.Modalities.HasInput(ModalityAudio) || m.Modalities.HasOutput(ModalityAudio)
		},
	},
	CapAttachment: {
		id:          "attachment",
		label:       "Attachments",
		description: "Models that accept file attachments",
		match:       func(m Model) bool { return m.Attachment },
	},
	CapOpenWeights: {
		id:          "open_weights",
		label:       "Open Weights",
		description: "Models with publicly available weights",
		match:       func(m Model) bool { return m.OpenWeights },
	},
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Capabilities returns every capability in display order
func Capabilities() []Capability {
	result := make([]Capability, 0, capMax)
	for c := range capMax {
		result = append(result, c)
	}
	return result
}

// ParseCapability returns the capability for an identifier such as "vision".
// Hyphens and underscores are interchangeable.
func ParseCapability(id string) (Capability, error) {
	id = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(id)), "-", "_")
	for c := range capMax {
		if capabilities[c].id == id {
			return c, nil
		}
	}
	return 0, modelsdev.ErrBadParameter.Withf("unknown capability %q", id)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Capability) String() string {
	if c >= capMax {
		return fmt.Sprintf("capability(%d)", uint(c))
	}
	return capabilities[c].id
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Label returns the display name of the capability
func (c Capability) Label() string {
	return c.info().label
}

// Description returns a one-line description of the capability
func (c Capability) Description() string {
	return c.info().description
}

// Match returns true if the model has the capability
func (c Capability) Match(m Model) bool {
	return c.info().match(m)
}

func (c Capability) MarshalText() ([]byte, error) {
	if c >= capMax {
		return nil, modelsdev.ErrBadParameter.Withf("unknown capability %d", uint(c))
	}
	return []byte(c.String()), nil
}

func (c *Capability) UnmarshalText(text []byte) error {
	v, err := ParseCapability(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// info panics on a value outside the enumeration, which can only be produced
// by a conversion in the calling code
func (c Capability) info() capability {
	if c >= capMax {
		panic(fmt.Sprintf("schema: invalid capability %d", uint(c)))
	}
	return capabilities[c]
}
