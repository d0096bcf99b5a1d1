/*
catalog converts the raw catalog response into the normalized snapshot
consumed by the rest of the module.
*/
package catalog

import (
	"slices"
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
	collate "golang.org/x/text/collate"
	language "golang.org/x/text/language"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultLogoBase = "https://models.dev/logos"
	logoExt         = ".svg"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Normalize flattens a raw catalog into sorted providers and models, with
// logos derived from DefaultLogoBase.
func Normalize(raw schema.RawCatalog) schema.ModelsData {
	return NormalizeWithLogoBase(raw, DefaultLogoBase)
}

// NormalizeWithLogoBase flattens a raw catalog into sorted providers and
// models. Providers are ordered by name, models by provider name then model
// name, using root-locale collation. The input is not modified.
func NormalizeWithLogoBase(raw schema.RawCatalog, logoBase string) schema.ModelsData {
	providers := make([]schema.Provider, 0, len(raw))
	models := make([]schema.Model, 0, len(raw)*8)

	for providerId, rawProvider := range raw {
		logo := LogoURL(logoBase, providerId)
		providers = append(providers, schema.Provider{
			Id:         providerId,
			Name:       rawProvider.Name,
			Doc:        rawProvider.Doc,
			ModelCount: uint(len(rawProvider.Models)),
			Logo:       logo,
		})
		for modelId, rawModel := range rawProvider.Models {
			models = append(models, normalizeModel(rawModel, modelId, providerId, rawProvider.Name, logo))
		}
	}

	// Sort providers by name, and models by provider then name. Map iteration
	// order is random so ties fall back to the identifiers to keep the output
	// deterministic.
	cmp := NewComparator()
	slices.SortFunc(providers, func(a, b schema.Provider) int {
		if c := cmp(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Id, b.Id)
	})
	slices.SortFunc(models, func(a, b schema.Model) int {
		if c := CompareModels(cmp, a, b); c != 0 {
			return c
		}
		if c := strings.Compare(a.ProviderId, b.ProviderId); c != 0 {
			return c
		}
		return strings.Compare(a.Id, b.Id)
	})

	return schema.ModelsData{
		Providers: providers,
		Models:    models,
	}
}

// LogoURL returns the logo location for a provider
func LogoURL(base, providerId string) string {
	return strings.TrimSuffix(base, "/") + "/" + providerId + logoExt
}

// NewComparator returns a locale-aware string comparison. The returned
// function is not safe for concurrent use.
func NewComparator() func(a, b string) int {
	c := collate.New(language.Und)
	return c.CompareString
}

// CompareModels orders models by provider name, then model name
func CompareModels(cmp func(a, b string) int, a, b schema.Model) int {
	if c := cmp(a.ProviderName, b.ProviderName); c != 0 {
		return c
	}
	return cmp(a.Name, b.Name)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func normalizeModel(raw schema.RawModel, modelId, providerId, providerName, logo string) schema.Model {
	return schema.Model{
		Id:           modelId,
		Name:         raw.Name,
		Family:       raw.Family,
		ProviderId:   providerId,
		ProviderName: providerName,
		ProviderLogo: logo,

		// Capabilities default to false when absent
		Attachment:       types.Value(raw.Attachment),
		Reasoning:        types.Value(raw.Reasoning),
		ToolCall:         types.Value(raw.ToolCall),
		StructuredOutput: types.Value(raw.StructuredOutput),
		Temperature:      types.Value(raw.Temperature),
		OpenWeights:      types.Value(raw.OpenWeights),

		// Metadata
		Knowledge:   raw.Knowledge,
		ReleaseDate: raw.ReleaseDate,
		LastUpdated: raw.LastUpdated,
		Status:      raw.Status,

		Modalities: normalizeModalities(raw.Modalities),
		Cost:       copyCost(raw.Cost),
		Limit:      copyLimit(raw.Limit),
	}
}

func normalizeModalities(raw *schema.RawModalities) schema.Modalities {
	var input, output []schema.Modality
	if raw != nil {
		input, output = raw.Input, raw.Output
	}
	return schema.Modalities{
		Input:  orText(input),
		Output: orText(output),
	}
}

// orText returns a copy of the list, or ["text"] when it is empty
func orText(list []schema.Modality) []schema.Modality {
	if len(list) == 0 {
		return []schema.Modality{schema.ModalityText}
	}
	return slices.Clone(list)
}

func copyCost(cost *schema.Cost) *schema.Cost {
	if cost == nil {
		return nil
	}
	return &schema.Cost{
		Input:      copyFloat(cost.Input),
		Output:     copyFloat(cost.Output),
		Reasoning:  copyFloat(cost.Reasoning),
		CacheRead:  copyFloat(cost.CacheRead),
		CacheWrite: copyFloat(cost.CacheWrite),
	}
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return types.Ptr(*v)
}

func copyLimit(limit *schema.Limit) *schema.Limit {
	if limit == nil {
		return nil
	}
	return types.Ptr(*limit)
}
