package models

import "time"

// Period is a preset date window of the filter form.
type Period string

const (
	PeriodAll         Period = ""
	PeriodOneMonth    Period = "1month"
	PeriodThreeMonths Period = "3months"
	PeriodSixMonths   Period = "6months"
	PeriodCustom      Period = "custom"
)

// Periods lists the non-sentinel periods in form order.
var Periods = []Period{PeriodOneMonth, PeriodThreeMonths, PeriodSixMonths, PeriodCustom}

// Months returns the window length of a preset period, or 0 for "all" and "custom".
func (p Period) Months() int {
	switch p {
	case PeriodOneMonth:
		return 1
	case PeriodThreeMonths:
		return 3
	case PeriodSixMonths:
		return 6
	default:
		return 0
	}
}

// Границы диапазона количества участников.
const (
	ParticipantsMin = 0
	ParticipantsMax = 1000
)

// FilterOptions holds the option lists discovered from the event feed.
type FilterOptions struct {
	SportTypes  []string `json:"sport_types"`
	Disciplines []string `json:"disciplines"`
	Cities      []string `json:"cities"`
	Countries   []string `json:"countries"`
	AgeGroups   []string `json:"age_groups"`
}

// DateRange is the dateRange field of the filter form. Either bound may be absent.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// EventFilter is a submitted filter form. Empty values mean "all".
type EventFilter struct {
	SportType         string      `json:"sportType"`
	Period            Period      `json:"period"`
	DateRange         DateRange   `json:"dateRange"`
	Countries         []string    `json:"countries"`
	Cities            []string    `json:"cities"`
	Disciplines       []string    `json:"disciplines"`
	ParticipantsRange [2]int      `json:"participantsRange"`
	Gender            Gender      `json:"gender"`
	AgeGroup          string      `json:"ageGroup"`
	EventType         EventType   `json:"eventType"`
	Status            EventStatus `json:"status"`

	Limit  int `json:"-"`
	Offset int `json:"-"`
}

// DefaultEventFilter returns a filter with nothing selected.
func DefaultEventFilter() EventFilter {
	return EventFilter{
		ParticipantsRange: [2]int{ParticipantsMin, ParticipantsMax},
	}
}
