package schema

// UISchema is the presentation hints object consumed by the form renderer.
type UISchema map[string]interface{}

// FilterUISchema returns the widget choices of the filter form. The value is fixed; a new
// copy is built on every call so callers may not alias each other.
func FilterUISchema() UISchema {
	return UISchema{
		"ui:order": FieldOrder(),
		"ui:submitButtonOptions": map[string]interface{}{
			"norender": true,
		},
		"*": map[string]interface{}{
			"classNames":     "filter-field",
			"ui:titleMargin": "0.5rem",
			"ui:titleProps": map[string]interface{}{
				"fontSize": "sm",
				"color":    "gray.600",
			},
		},
		FieldParticipantsRange: map[string]interface{}{
			"ui:widget": "range",
		},
		FieldDateRange: map[string]interface{}{
			"ui:field":   "dateRange",
			"classNames": "date-range-field",
			"ui:titleProps": map[string]interface{}{
				"fontSize":   "xs",
				"fontWeight": "500",
				"color":      "gray.600",
			},
		},
		FieldCountries: map[string]interface{}{
			"ui:widget": "checkboxes",
		},
		FieldCities: map[string]interface{}{
			"ui:widget": "checkboxes",
		},
		FieldDisciplines: map[string]interface{}{
			"ui:widget": "checkboxes",
		},
	}
}

// Widget returns the ui:widget configured for field, if any.
func (u UISchema) Widget(field string) string {
	hints, ok := u[field].(map[string]interface{})
	if !ok {
		return ""
	}
	widget, _ := hints["ui:widget"].(string)
	return widget
}
