/*
query holds the functions list views apply to a loaded snapshot: filtering by
provider, capability, status and price, sorting, searching and formatting.

Every function is pure. Results are new slices in the order of the input,
and an empty input returns an empty result.
*/
package query

import (
	"slices"

	// Packages
	catalog "github.com/mutablelogic/go-modelsdev/pkg/catalog"
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Filter returns the models for which fn returns true
func Filter(models []schema.Model, fn func(schema.Model) bool) []schema.Model {
	result := make([]schema.Model, 0, len(models))
	for _, model := range models {
		if fn(model) {
			result = append(result, model)
		}
	}
	return result
}

// FilterByProvider returns the models offered by a provider
func FilterByProvider(models []schema.Model, providerId string) []schema.Model {
	return Filter(models, func(m schema.Model) bool {
		return m.ProviderId == providerId
	})
}

// FilterByCapability returns the models with a capability. It panics if the
// capability is not one of the enumerated values.
func FilterByCapability(models []schema.Model, capability schema.Capability) []schema.Model {
	return Filter(models, capability.Match)
}

// CountByCapability returns the number of models with a capability
func CountByCapability(models []schema.Model, capability schema.Capability) int {
	return len(FilterByCapability(models, capability))
}

// FilterOutDeprecated returns the models whose status is not deprecated
func FilterOutDeprecated(models []schema.Model) []schema.Model {
	return Filter(models, func(m schema.Model) bool {
		return !m.IsDeprecated()
	})
}

// SortByProviderThenName returns a copy of the models sorted by provider
// name then model name. Equal models keep their relative order.
func SortByProviderThenName(models []schema.Model) []schema.Model {
	result := slices.Clone(models)
	if result == nil {
		result = []schema.Model{}
	}
	cmp := catalog.NewComparator()
	slices.SortStableFunc(result, func(a, b schema.Model) int {
		return catalog.CompareModels(cmp, a, b)
	})
	return result
}

// FindProvider returns the provider with an identifier, or nil
func FindProvider(providers []schema.Provider, id string) *schema.Provider {
	for i := range providers {
		if providers[i].Id == id {
			return &providers[i]
		}
	}
	return nil
}

// FindModel returns the model with a composite "provider/model" key, or nil
func FindModel(models []schema.Model, key string) *schema.Model {
	provider, id, ok := schema.ParseKey(key)
	if !ok {
		return nil
	}
	for i := range models {
		if models[i].ProviderId == provider && models[i].Id == id {
			return &models[i]
		}
	}
	return nil
}
