package models

import "time"

// EventStatus представляет статус спортивного события, соответствующий ENUM в БД.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

// EventStatuses lists the statuses in the order the filter form offers them.
var EventStatuses = []EventStatus{EventStatusDraft, EventStatusPublished, EventStatusCancelled, EventStatusCompleted}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderMixed  Gender = "mixed"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderMixed}

// EventType is the competition level of an event.
type EventType string

const (
	EventTypeRegional      EventType = "regional"
	EventTypeNational      EventType = "national"
	EventTypeInternational EventType = "international"
)

var EventTypes = []EventType{EventTypeRegional, EventTypeNational, EventTypeInternational}

// Event представляет спортивное событие в ленте.
type Event struct {
	ID                int         `json:"id" db:"id"`
	Title             string      `json:"title" db:"title"`
	SportType         string      `json:"sport_type" db:"sport_type"`
	Disciplines       []string    `json:"disciplines" db:"disciplines"`
	Country           string      `json:"country" db:"country"`
	City              string      `json:"city" db:"city"`
	StartDate         time.Time   `json:"start_date" db:"start_date"`
	EndDate           time.Time   `json:"end_date" db:"end_date"`
	ParticipantsCount int         `json:"participants_count" db:"participants_count"`
	Gender            Gender      `json:"gender" db:"gender"`
	AgeGroup          *string     `json:"age_group,omitempty" db:"age_group"`
	EventType         EventType   `json:"event_type" db:"event_type"`
	Status            EventStatus `json:"status" db:"status"`
	CreatedAt         time.Time   `json:"created_at" db:"created_at"`
	LogoKey           *string     `json:"-" db:"logo_key"`
	LogoURL           *string     `json:"logo_url,omitempty" db:"-"`
}
