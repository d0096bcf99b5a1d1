package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Provider is an organization offering one or more models
type Provider struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	Doc        string `json:"doc,omitempty"`
	ModelCount uint   `json:"modelCount"`
	Logo       string `json:"logo"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (p Provider) String() string {
	return Stringify(p)
}
