package schema

import (
	"slices"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Model is a single model offered by a provider. Identity is the pair
// (ProviderId, Id); the provider name and logo are copied from the provider
// at normalization time.
type Model struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Family       string `json:"family,omitempty"`
	ProviderId   string `json:"providerId"`
	ProviderName string `json:"providerName"`
	ProviderLogo string `json:"providerLogo"`

	// Capabilities
	Attachment       bool `json:"attachment"`
	Reasoning        bool `json:"reasoning"`
	ToolCall         bool `json:"tool_call"`
	StructuredOutput bool `json:"structured_output"`
	Temperature      bool `json:"temperature"`
	OpenWeights      bool `json:"open_weights"`

	// Metadata
	Knowledge   string `json:"knowledge,omitempty"`
	ReleaseDate string `json:"release_date,omitempty"`
	LastUpdated string `json:"last_updated,omitempty"`
	Status      Status `json:"status,omitempty"`

	Modalities Modalities `json:"modalities"`
	Cost       *Cost      `json:"cost,omitempty"`
	Limit      *Limit     `json:"limit,omitempty"`
}

// Modalities lists the supported input and output media. Neither side is
// empty after normalization.
type Modalities struct {
	Input  []Modality `json:"input"`
	Output []Modality `json:"output"`
}

// Cost is the price in USD per million tokens. Absent prices are nil.
type Cost struct {
	Input      *float64 `json:"input,omitempty"`
	Output     *float64 `json:"output,omitempty"`
	Reasoning  *float64 `json:"reasoning,omitempty"`
	CacheRead  *float64 `json:"cache_read,omitempty"`
	CacheWrite *float64 `json:"cache_write,omitempty"`
}

// Limit is the token limits of a model.
type Limit struct {
	Context uint64 `json:"context"`
	Output  uint64 `json:"output"`
}

// Status is the lifecycle status of a model. The empty value means stable.
type Status string

// Modality is an input or output medium.
type Modality string

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	StatusStable     Status = ""
	StatusAlpha      Status = "alpha"
	StatusBeta       Status = "beta"
	StatusDeprecated Status = "deprecated"
)

const (
	ModalityText  Modality = "text"
	ModalityImage Modality = "image"
	ModalityAudio Modality = "audio"
	ModalityVideo Modality = "video"
	ModalityPDF   Modality = "pdf"
)

// Separator between the provider and model identifiers in a model key
const keySeparator = "/"

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	return Stringify(m)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Key returns the composite key "provider/model" which is unique across
// the whole catalog.
func (m Model) Key() string {
	return m.ProviderId + keySeparator + m.Id
}

// ParseKey splits a composite key into provider and model identifiers.
// Model identifiers may themselves contain the separator, so only the
// first one is significant.
func ParseKey(key string) (string, string, bool) {
	provider, model, ok := strings.Cut(key, keySeparator)
	if !ok || provider == "" || model == "" {
		return "", "", false
	}
	return provider, model, true
}

// OutputPrice returns the output price, if set
func (m Model) OutputPrice() (float64, bool) {
	if m.Cost == nil || m.Cost.Output == nil {
		return 0, false
	}
	return *m.Cost.Output, true
}

// InputPrice returns the input price, if set
func (m Model) InputPrice() (float64, bool) {
	if m.Cost == nil || m.Cost.Input == nil {
		return 0, false
	}
	return *m.Cost.Input, true
}

// ContextWindow returns the context limit, or zero when unknown
func (m Model) ContextWindow() uint64 {
	if m.Limit == nil {
		return 0
	}
	return m.Limit.Context
}

// IsDeprecated returns true if the model status is deprecated
func (m Model) IsDeprecated() bool {
	return m.Status == StatusDeprecated
}

// HasInput returns true if the modality is in the input list
func (m Modalities) HasInput(modality Modality) bool {
	return slices.Contains(m.Input, modality)
}

// HasOutput returns true if the modality is in the output list
func (m Modalities) HasOutput(modality Modality) bool {
	return slices.Contains(m.Output, modality)
}
