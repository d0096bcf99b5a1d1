package compare

import (
	"slices"

	// Packages
	modelsdev "github.com/mutablelogic/go-modelsdev"
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Selection is an ordered set of models picked for comparison, keyed by
// the composite "provider/model" key. The zero value is an empty selection.
type Selection struct {
	models []schema.Model
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// MaxModels is the largest number of models in a selection
	MaxModels = 3

	// MinModels is the smallest number of models which can be compared
	MinModels = 2
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewSelection returns a selection holding the models in order
func NewSelection(models ...schema.Model) (*Selection, error) {
	s := new(Selection)
	for _, model := range models {
		if s.Contains(model.Key()) {
			return nil, modelsdev.ErrConflict.Withf("%q is selected twice", model.Key())
		}
		if err := s.Add(model); err != nil {
			return nil, err
		}
	}
	return s, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Len returns the number of selected models
func (s *Selection) Len() int {
	return len(s.models)
}

// Models returns the selected models in the order they were added
func (s *Selection) Models() []schema.Model {
	return slices.Clone(s.models)
}

// Contains returns true if the model with a key is selected
func (s *Selection) Contains(key string) bool {
	return s.index(key) >= 0
}

// Add selects a model. It is a no-op if the model is already selected, and
// returns ErrConflict when the selection is full.
func (s *Selection) Add(model schema.Model) error {
	if s.Contains(model.Key()) {
		return nil
	}
	if len(s.models) >= MaxModels {
		return modelsdev.ErrConflict.Withf("at most %d models can be compared, remove one before adding %q", MaxModels, model.Key())
	}
	s.models = append(s.models, model)
	return nil
}

// Toggle removes a selected model, or adds it when it is not selected.
// It returns true if the model is selected afterwards.
func (s *Selection) Toggle(model schema.Model) (bool, error) {
	if s.Remove(model.Key()) {
		return false, nil
	}
	if err := s.Add(model); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deselects the model with a key, and returns false if it was not
// selected
func (s *Selection) Remove(key string) bool {
	i := s.index(key)
	if i < 0 {
		return false
	}
	s.models = slices.Delete(s.models, i, i+1)
	return true
}

// Exclude returns the models which are not selected, in the order given
func (s *Selection) Exclude(models []schema.Model) []schema.Model {
	result := make([]schema.Model, 0, len(models))
	for _, model := range models {
		if !s.Contains(model.Key()) {
			result = append(result, model)
		}
	}
	return result
}

// Compare returns the comparison of the selected models, or ErrBadParameter
// when fewer than two are selected
func (s *Selection) Compare() (*Comparison, error) {
	if len(s.models) < MinModels {
		return nil, modelsdev.ErrBadParameter.Withf("select at least %d models to compare", MinModels)
	}
	return &Comparison{models: s.Models()}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (s *Selection) index(key string) int {
	return slices.IndexFunc(s.models, func(m schema.Model) bool {
		return m.Key() == key
	})
}
