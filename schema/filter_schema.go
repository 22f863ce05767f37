package schema

import (
	"github.com/suenot/sporthub/i18n"
	"github.com/suenot/sporthub/models"
)

// Имена полей формы фильтров.
const (
	FieldSportType         = "sportType"
	FieldPeriod            = "period"
	FieldDateRange         = "dateRange"
	FieldCountries         = "countries"
	FieldCities            = "cities"
	FieldDisciplines       = "disciplines"
	FieldParticipantsRange = "participantsRange"
	FieldGender            = "gender"
	FieldAgeGroup          = "ageGroup"
	FieldEventType         = "eventType"
	FieldStatus            = "status"
)

var fieldOrder = []string{
	FieldSportType,
	FieldPeriod,
	FieldDateRange,
	FieldCountries,
	FieldCities,
	FieldDisciplines,
	FieldParticipantsRange,
	FieldGender,
	FieldAgeGroup,
	FieldEventType,
	FieldStatus,
}

// FieldOrder returns the order the form renders its fields in. Each call returns a new slice.
func FieldOrder() []string {
	order := make([]string, len(fieldOrder))
	copy(order, fieldOrder)
	return order
}

// AllValue is the sentinel option meaning "no filter applied".
const AllValue = ""

const allLabelKey = "filter.all"

type labeledValue struct {
	value string
	key   string
}

var periodOptions = []labeledValue{
	{string(models.PeriodOneMonth), "filter.period.1month"},
	{string(models.PeriodThreeMonths), "filter.period.3months"},
	{string(models.PeriodSixMonths), "filter.period.6months"},
	{string(models.PeriodCustom), "filter.period.custom"},
}

var genderOptions = []labeledValue{
	{string(models.GenderMale), "filter.genderMale"},
	{string(models.GenderFemale), "filter.genderFemale"},
	{string(models.GenderMixed), "filter.genderMixed"},
}

var eventTypeOptions = []labeledValue{
	{string(models.EventTypeRegional), "filter.eventTypeRegional"},
	{string(models.EventTypeNational), "filter.eventTypeNational"},
	{string(models.EventTypeInternational), "filter.eventTypeInternational"},
}

var statusOptions = []labeledValue{
	{string(models.EventStatusDraft), "status.draft"},
	{string(models.EventStatusPublished), "status.published"},
	{string(models.EventStatusCancelled), "status.cancelled"},
	{string(models.EventStatusCompleted), "status.completed"},
}

// FilterSchema returns the static filter descriptor. Fields whose options come from the event
// feed (sport type, disciplines, cities, countries, age group) carry no enumeration here.
func FilterSchema(t i18n.TFunc) *Schema {
	return &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			FieldSportType: {
				Type:    "string",
				Title:   strPtr(t("filter.sportType")),
				Default: "",
			},
			FieldPeriod: fixedEnum(t, "filter.period", periodOptions),
			FieldDateRange: {
				Type:  "object",
				Title: strPtr(""),
				Properties: map[string]*Schema{
					"start": {Type: "string", Format: "date", Title: strPtr(t("filter.dateRange.start"))},
					"end":   {Type: "string", Format: "date", Title: strPtr(t("filter.dateRange.end"))},
				},
			},
			FieldCountries:   stringSet(t("filter.countries")),
			FieldCities:      stringSet(t("filter.cities")),
			FieldDisciplines: stringSet(t("filter.disciplines")),
			FieldParticipantsRange: {
				Type:  "array",
				Title: strPtr(t("filter.participants")),
				Items: &Schema{
					Type:    "number",
					Minimum: floatPtr(models.ParticipantsMin),
					Maximum: floatPtr(models.ParticipantsMax),
				},
				MinItems: intPtr(2),
				MaxItems: intPtr(2),
				Default:  []int{models.ParticipantsMin, models.ParticipantsMax},
			},
			FieldGender: fixedEnum(t, "filter.gender", genderOptions),
			FieldAgeGroup: {
				Type:    "string",
				Title:   strPtr(t("filter.ageGroup")),
				Default: "",
			},
			FieldEventType: fixedEnum(t, "filter.eventType", eventTypeOptions),
			FieldStatus:    fixedEnum(t, "filter.status", statusOptions),
		},
	}
}

// UpdatedSchema merges the option lists discovered from the event feed into the static
// descriptor. Sport and discipline labels are looked up under sports.<v> and disciplines.<v>;
// cities, countries and age groups are shown as is. Nil lists yield the sentinel only.
func UpdatedSchema(t i18n.TFunc, opts models.FilterOptions) *Schema {
	s := FilterSchema(t)

	byKey := func(prefix string) func(string) string {
		return func(v string) string { return t(prefix + v) }
	}
	literal := func(v string) string { return v }

	applyEnum(s.Properties[FieldSportType], t, opts.SportTypes, byKey("sports."))
	applyEnum(s.Properties[FieldDisciplines].Items, t, opts.Disciplines, byKey("disciplines."))
	applyEnum(s.Properties[FieldCities].Items, t, opts.Cities, literal)
	applyEnum(s.Properties[FieldCountries].Items, t, opts.Countries, literal)
	applyEnum(s.Properties[FieldAgeGroup], t, opts.AgeGroups, literal)

	return s
}

func applyEnum(target *Schema, t i18n.TFunc, values []string, label func(string) string) {
	target.Enum = make([]string, 0, len(values)+1)
	target.Enum = append(target.Enum, AllValue)
	target.Enum = append(target.Enum, values...)

	target.OneOf = make([]Option, 0, len(values)+1)
	target.OneOf = append(target.OneOf, Option{Const: AllValue, Title: t(allLabelKey)})
	for _, v := range values {
		target.OneOf = append(target.OneOf, Option{Const: v, Title: label(v)})
	}
}

func fixedEnum(t i18n.TFunc, titleKey string, options []labeledValue) *Schema {
	s := &Schema{
		Type:    "string",
		Title:   strPtr(t(titleKey)),
		Default: "",
	}
	values := make([]string, len(options))
	for i, o := range options {
		values[i] = o.value
	}
	applyEnum(s, t, values, func(v string) string {
		for _, o := range options {
			if o.value == v {
				return t(o.key)
			}
		}
		return v
	})
	return s
}

func stringSet(title string) *Schema {
	return &Schema{
		Type:        "array",
		Title:       strPtr(title),
		Items:       &Schema{Type: "string"},
		UniqueItems: true,
		Default:     []string{},
	}
}

// enumerableFields returns the fields of s that carry an enumeration, keyed by field name.
// For array fields the enumeration lives on the items schema.
func enumerableFields(s *Schema) map[string]*Schema {
	out := make(map[string]*Schema)
	for _, name := range fieldOrder {
		p := s.Property(name)
		if p == nil {
			continue
		}
		if len(p.Enum) > 0 {
			out[name] = p
		} else if p.Items != nil && len(p.Items.Enum) > 0 {
			out[name] = p.Items
		}
	}
	return out
}
