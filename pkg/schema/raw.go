package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// RawCatalog is the response body of the catalog endpoint: provider id to
// provider record.
type RawCatalog map[string]RawProvider

// RawProvider is a provider record as published by the catalog endpoint
type RawProvider struct {
	Id     string              `json:"id,omitempty"`
	Name   string              `json:"name"`
	Doc    string              `json:"doc,omitempty"`
	Api    string              `json:"api,omitempty"`
	Env    []string            `json:"env,omitempty"`
	Npm    string              `json:"npm,omitempty"`
	Models map[string]RawModel `json:"models"`
}

// RawModel is a model record as published by the catalog endpoint. Every
// capability flag is optional; absence means false.
type RawModel struct {
	Id               string         `json:"id,omitempty"`
	Name             string         `json:"name"`
	Family           string         `json:"family,omitempty"`
	Attachment       *bool          `json:"attachment,omitempty"`
	Reasoning        *bool          `json:"reasoning,omitempty"`
	ToolCall         *bool          `json:"tool_call,omitempty"`
	StructuredOutput *bool          `json:"structured_output,omitempty"`
	Temperature      *bool          `json:"temperature,omitempty"`
	OpenWeights      *bool          `json:"open_weights,omitempty"`
	Knowledge        string         `json:"knowledge,omitempty"`
	ReleaseDate      string         `json:"release_date,omitempty"`
	LastUpdated      string         `json:"last_updated,omitempty"`
	Status           Status         `json:"status,omitempty"`
	Modalities       *RawModalities `json:"modalities,omitempty"`
	Cost             *Cost          `json:"cost,omitempty"`
	Limit            *Limit         `json:"limit,omitempty"`
}

// RawModalities are the optional modality lists of a raw model
type RawModalities struct {
	Input  []Modality `json:"input,omitempty"`
	Output []Modality `json:"output,omitempty"`
}
