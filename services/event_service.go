package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/suenot/sporthub/models"
	"github.com/suenot/sporthub/repositories"
	"github.com/suenot/sporthub/storage"
)

const (
	DefaultEventsLimit = 20
	MaxEventsLimit     = 100
)

type EventService interface {
	ListEvents(ctx context.Context, filter models.EventFilter) (*EventList, error)
	GetEvent(ctx context.Context, id int) (*models.Event, error)
}

type EventList struct {
	Events []models.Event `json:"events"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type eventService struct {
	eventRepo repositories.EventRepository
	uploader  storage.FileUploader
	logger    *slog.Logger
	now       func() time.Time
}

// NewEventService creates the event listing service. uploader may be nil, in which case
// events are returned without logo URLs.
func NewEventService(eventRepo repositories.EventRepository, uploader storage.FileUploader, logger *slog.Logger) EventService {
	if logger == nil {
		logger = slog.Default()
	}
	return &eventService{
		eventRepo: eventRepo,
		uploader:  uploader,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *eventService) ListEvents(ctx context.Context, filter models.EventFilter) (*EventList, error) {
	repoFilter, err := buildListEventsFilter(filter, s.now())
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	if events == nil {
		events = []models.Event{}
	}
	for i := range events {
		populateEventLogoURLFunc(&events[i], s.uploader)
	}

	s.logger.DebugContext(ctx, "events listed", slog.Int("count", len(events)), slog.Int("offset", repoFilter.Offset))

	return &EventList{
		Events: events,
		Limit:  repoFilter.Limit,
		Offset: repoFilter.Offset,
	}, nil
}

func (s *eventService) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event by id %d: %w", id, err)
	}
	populateEventLogoURLFunc(event, s.uploader)
	return event, nil
}

// buildListEventsFilter validates a submitted filter form and turns it into a repository
// filter. Preset periods select events starting within [now, now+N months]; the date range is
// only honored for the custom period.
func buildListEventsFilter(f models.EventFilter, now time.Time) (repositories.ListEventsFilter, error) {
	out := repositories.ListEventsFilter{
		SportType:   f.SportType,
		Countries:   cleanSet(f.Countries),
		Cities:      cleanSet(f.Cities),
		Disciplines: cleanSet(f.Disciplines),
		AgeGroup:    f.AgeGroup,
	}

	if f.Period != models.PeriodAll && !slices.Contains(models.Periods, f.Period) {
		return out, fmt.Errorf("%w: %q", ErrInvalidPeriod, f.Period)
	}

	switch f.Period {
	case models.PeriodOneMonth, models.PeriodThreeMonths, models.PeriodSixMonths:
		from := now
		to := now.AddDate(0, f.Period.Months(), 0)
		out.StartFrom, out.StartTo = &from, &to
	case models.PeriodCustom:
		start, end := f.DateRange.Start, f.DateRange.End
		if start == nil && end == nil {
			return out, fmt.Errorf("%w: custom period requires a start or end date", ErrInvalidDateRange)
		}
		if start != nil && end != nil && start.After(*end) {
			return out, fmt.Errorf("%w: start %s is after end %s", ErrInvalidDateRange,
				start.Format(time.DateOnly), end.Format(time.DateOnly))
		}
		if start != nil {
			from := *start
			out.StartFrom = &from
		}
		if end != nil {
			// конец диапазона включительно: до конца указанного дня
			to := end.AddDate(0, 0, 1).Add(-time.Nanosecond)
			out.StartTo = &to
		}
	}

	lo, hi := f.ParticipantsRange[0], f.ParticipantsRange[1]
	if lo < models.ParticipantsMin || hi > models.ParticipantsMax || lo > hi {
		return out, fmt.Errorf("%w: got [%d, %d]", ErrInvalidParticipantsRange, lo, hi)
	}
	if lo > models.ParticipantsMin {
		out.MinParticipants = &lo
	}
	if hi < models.ParticipantsMax {
		out.MaxParticipants = &hi
	}

	if f.Gender != "" && !slices.Contains(models.Genders, f.Gender) {
		return out, fmt.Errorf("%w: %q", ErrInvalidGender, f.Gender)
	}
	out.Gender = f.Gender

	if f.EventType != "" && !slices.Contains(models.EventTypes, f.EventType) {
		return out, fmt.Errorf("%w: %q", ErrInvalidEventType, f.EventType)
	}
	out.EventType = f.EventType

	if f.Status != "" && !slices.Contains(models.EventStatuses, f.Status) {
		return out, fmt.Errorf("%w: %q", ErrInvalidEventStatus, f.Status)
	}
	out.Status = f.Status

	if f.Limit < 0 || f.Offset < 0 {
		return out, ErrInvalidPagination
	}
	out.Limit = f.Limit
	switch {
	case out.Limit == 0:
		out.Limit = DefaultEventsLimit
	case out.Limit > MaxEventsLimit:
		out.Limit = MaxEventsLimit
	}
	out.Offset = f.Offset

	return out, nil
}
