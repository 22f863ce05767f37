// Package schema builds the JSON-Schema descriptor and the presentation hints of the event
// filter form.
package schema

// Schema is the subset of JSON Schema draft 7 the filter form uses.
type Schema struct {
	Type        string             `json:"type,omitempty"`
	Title       *string            `json:"title,omitempty"`
	Format      string             `json:"format,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	OneOf       []Option           `json:"oneOf,omitempty"`
	Default     interface{}        `json:"default,omitempty"`
	UniqueItems bool               `json:"uniqueItems,omitempty"`
	MinItems    *int               `json:"minItems,omitempty"`
	MaxItems    *int               `json:"maxItems,omitempty"`
	Minimum     *float64           `json:"minimum,omitempty"`
	Maximum     *float64           `json:"maximum,omitempty"`
}

// Option is a single oneOf entry: a value and its display label.
type Option struct {
	Const string `json:"const"`
	Title string `json:"title"`
}

// Property returns the named property or nil.
func (s *Schema) Property(name string) *Schema {
	if s == nil || s.Properties == nil {
		return nil
	}
	return s.Properties[name]
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}
