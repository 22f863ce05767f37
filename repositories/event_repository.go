package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/suenot/sporthub/models"
)

var ErrEventNotFound = errors.New("event not found")

// ListEventsFilter is a validated filter ready to be turned into SQL. Nil and empty fields
// are not applied.
type ListEventsFilter struct {
	SportType       string
	StartFrom       *time.Time
	StartTo         *time.Time
	Countries       []string
	Cities          []string
	Disciplines     []string
	MinParticipants *int
	MaxParticipants *int
	Gender          models.Gender
	AgeGroup        string
	EventType       models.EventType
	Status          models.EventStatus
	Limit           int
	Offset          int
}

type EventRepository interface {
	GetByID(ctx context.Context, id int) (*models.Event, error)
	List(ctx context.Context, filter ListEventsFilter) ([]models.Event, error)
}

type postgresEventRepository struct {
	db SQLExecutor
}

func NewPostgresEventRepository(db *sql.DB) EventRepository {
	return &postgresEventRepository{db: db}
}

const eventColumns = `
	id, title, sport_type, disciplines, country, city, start_date, end_date,
	participants_count, gender, age_group, event_type, status, created_at, logo_key`

func (r *postgresEventRepository) GetByID(ctx context.Context, id int) (*models.Event, error) {
	query := `SELECT` + eventColumns + ` FROM sport_events WHERE id = $1`

	e, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *postgresEventRepository) List(ctx context.Context, filter ListEventsFilter) ([]models.Event, error) {
	query, args := buildListEventsQuery(filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func buildListEventsQuery(filter ListEventsFilter) (string, []interface{}) {
	qb := newQueryBuilder(`SELECT` + eventColumns + ` FROM sport_events WHERE 1=1`)

	if filter.SportType != "" {
		qb.where("sport_type = %s", filter.SportType)
	}
	if filter.StartFrom != nil {
		qb.where("start_date >= %s", *filter.StartFrom)
	}
	if filter.StartTo != nil {
		qb.where("start_date <= %s", *filter.StartTo)
	}
	if len(filter.Countries) > 0 {
		qb.where("country = ANY(%s)", pq.Array(filter.Countries))
	}
	if len(filter.Cities) > 0 {
		qb.where("city = ANY(%s)", pq.Array(filter.Cities))
	}
	if len(filter.Disciplines) > 0 {
		// пересечение массивов: событие подходит, если есть хотя бы одна выбранная дисциплина
		qb.where("disciplines && %s", pq.Array(filter.Disciplines))
	}
	if filter.MinParticipants != nil {
		qb.where("participants_count >= %s", *filter.MinParticipants)
	}
	if filter.MaxParticipants != nil {
		qb.where("participants_count <= %s", *filter.MaxParticipants)
	}
	if filter.Gender != "" {
		qb.where("gender = %s", filter.Gender)
	}
	if filter.AgeGroup != "" {
		qb.where("age_group = %s", filter.AgeGroup)
	}
	if filter.EventType != "" {
		qb.where("event_type = %s", filter.EventType)
	}
	if filter.Status != "" {
		qb.where("status = %s", filter.Status)
	}

	qb.raw(" ORDER BY start_date ASC, id ASC")
	qb.limit(filter.Limit, filter.Offset)

	return qb.build()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var e models.Event
	var disciplines pq.StringArray
	err := row.Scan(
		&e.ID, &e.Title, &e.SportType, &disciplines, &e.Country, &e.City, &e.StartDate, &e.EndDate,
		&e.ParticipantsCount, &e.Gender, &e.AgeGroup, &e.EventType, &e.Status, &e.CreatedAt, &e.LogoKey,
	)
	if err != nil {
		return nil, err
	}
	e.Disciplines = []string(disciplines)
	if e.Disciplines == nil {
		e.Disciplines = []string{}
	}
	return &e, nil
}
