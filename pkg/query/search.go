package query

import (
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Search returns the models whose name, identifier, provider or family
// contains text, ignoring case. Empty text matches every model.
func Search(models []schema.Model, text string) []schema.Model {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return Filter(models, func(schema.Model) bool { return true })
	}
	return Filter(models, func(m schema.Model) bool {
		return contains(text, m.Name, m.Id, m.ProviderName, m.ProviderId, m.Family)
	})
}

// SearchProviders returns the providers whose name or identifier contains
// text, ignoring case. Empty text matches every provider.
func SearchProviders(providers []schema.Provider, text string) []schema.Provider {
	text = strings.ToLower(strings.TrimSpace(text))
	result := make([]schema.Provider, 0, len(providers))
	for _, p := range providers {
		if text == "" || contains(text, p.Name, p.Id) {
			result = append(result, p)
		}
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func contains(text string, fields ...string) bool {
	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), text) {
			return true
		}
	}
	return false
}
