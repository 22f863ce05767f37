package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/suenot/sporthub/models"
	"github.com/suenot/sporthub/repositories"
)

var testNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestBuildListEventsFilterDefaults(t *testing.T) {
	got, err := buildListEventsFilter(models.DefaultEventFilter(), testNow)
	require.NoError(t, err)

	assert.Equal(t, repositories.ListEventsFilter{Limit: DefaultEventsLimit}, got)
}

func TestBuildListEventsFilterPresetPeriods(t *testing.T) {
	for period, months := range map[models.Period]int{
		models.PeriodOneMonth:    1,
		models.PeriodThreeMonths: 3,
		models.PeriodSixMonths:   6,
	} {
		t.Run(string(period), func(t *testing.T) {
			f := models.DefaultEventFilter()
			f.Period = period
			f.DateRange.Start = date(2020, 1, 1) // ignored for presets

			got, err := buildListEventsFilter(f, testNow)
			require.NoError(t, err)
			require.NotNil(t, got.StartFrom)
			require.NotNil(t, got.StartTo)
			assert.Equal(t, testNow, *got.StartFrom)
			assert.Equal(t, testNow.AddDate(0, months, 0), *got.StartTo)
		})
	}
}

func TestBuildListEventsFilterCustomPeriod(t *testing.T) {
	f := models.DefaultEventFilter()
	f.Period = models.PeriodCustom
	f.DateRange = models.DateRange{Start: date(2026, 11, 1), End: date(2026, 11, 30)}

	got, err := buildListEventsFilter(f, testNow)
	require.NoError(t, err)
	assert.Equal(t, *date(2026, 11, 1), *got.StartFrom)
	assert.Equal(t, date(2026, 12, 1).Add(-time.Nanosecond), *got.StartTo)

	f.DateRange = models.DateRange{End: date(2026, 11, 30)}
	got, err = buildListEventsFilter(f, testNow)
	require.NoError(t, err)
	assert.Nil(t, got.StartFrom)
	assert.NotNil(t, got.StartTo)
}

func TestBuildListEventsFilterIgnoresDateRangeWithoutCustomPeriod(t *testing.T) {
	f := models.DefaultEventFilter()
	f.DateRange = models.DateRange{Start: date(2026, 11, 1)}

	got, err := buildListEventsFilter(f, testNow)
	require.NoError(t, err)
	assert.Nil(t, got.StartFrom)
	assert.Nil(t, got.StartTo)
}

func TestBuildListEventsFilterParticipants(t *testing.T) {
	f := models.DefaultEventFilter()
	f.ParticipantsRange = [2]int{10, 1000}

	got, err := buildListEventsFilter(f, testNow)
	require.NoError(t, err)
	require.NotNil(t, got.MinParticipants)
	assert.Equal(t, 10, *got.MinParticipants)
	assert.Nil(t, got.MaxParticipants, "upper bound at the maximum is not a filter")

	f.ParticipantsRange = [2]int{0, 50}
	got, err = buildListEventsFilter(f, testNow)
	require.NoError(t, err)
	assert.Nil(t, got.MinParticipants)
	assert.Equal(t, 50, *got.MaxParticipants)
}

func TestBuildListEventsFilterCleansSets(t *testing.T) {
	f := models.DefaultEventFilter()
	f.Cities = []string{"", "Kazan", "Kazan", "Moscow"}
	f.Countries = []string{""}
	f.Disciplines = nil

	got, err := buildListEventsFilter(f, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kazan", "Moscow"}, got.Cities)
	assert.Nil(t, got.Countries, "sentinel-only selection means all")
	assert.Nil(t, got.Disciplines)
}

func TestBuildListEventsFilterLimit(t *testing.T) {
	f := models.DefaultEventFilter()
	f.Limit = 500
	f.Offset = 40

	got, err := buildListEventsFilter(f, testNow)
	require.NoError(t, err)
	assert.Equal(t, MaxEventsLimit, got.Limit)
	assert.Equal(t, 40, got.Offset)
}

func TestBuildListEventsFilterRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *models.EventFilter)
		want   error
	}{
		{"unknown period", func(f *models.EventFilter) { f.Period = "2years" }, ErrInvalidPeriod},
		{"custom without dates", func(f *models.EventFilter) { f.Period = models.PeriodCustom }, ErrInvalidDateRange},
		{"custom reversed", func(f *models.EventFilter) {
			f.Period = models.PeriodCustom
			f.DateRange = models.DateRange{Start: date(2026, 12, 1), End: date(2026, 11, 1)}
		}, ErrInvalidDateRange},
		{"participants descending", func(f *models.EventFilter) { f.ParticipantsRange = [2]int{500, 100} }, ErrInvalidParticipantsRange},
		{"participants above max", func(f *models.EventFilter) { f.ParticipantsRange = [2]int{0, 1001} }, ErrInvalidParticipantsRange},
		{"participants negative", func(f *models.EventFilter) { f.ParticipantsRange = [2]int{-1, 10} }, ErrInvalidParticipantsRange},
		{"gender", func(f *models.EventFilter) { f.Gender = "other" }, ErrInvalidGender},
		{"event type", func(f *models.EventFilter) { f.EventType = "galactic" }, ErrInvalidEventType},
		{"status", func(f *models.EventFilter) { f.Status = "archived" }, ErrInvalidEventStatus},
		{"negative offset", func(f *models.EventFilter) { f.Offset = -1 }, ErrInvalidPagination},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := models.DefaultEventFilter()
			tt.modify(&f)
			_, err := buildListEventsFilter(f, testNow)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestListEventsPopulatesLogoURL(t *testing.T) {
	repo := &mockEventRepo{}
	logoKey := "events/7.png"
	repo.On("List", mock.Anything, mock.MatchedBy(func(f repositories.ListEventsFilter) bool {
		return f.SportType == "football" && f.Limit == DefaultEventsLimit
	})).Return([]models.Event{{ID: 7, Title: "Cup", LogoKey: &logoKey}, {ID: 8, Title: "League"}}, nil).Once()

	svc := NewEventService(repo, newFakeUploader(), quietLogger())
	f := models.DefaultEventFilter()
	f.SportType = "football"

	list, err := svc.ListEvents(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, list.Events, 2)
	require.NotNil(t, list.Events[0].LogoURL)
	assert.Equal(t, "https://cdn.test/events/7.png", *list.Events[0].LogoURL)
	assert.Nil(t, list.Events[1].LogoURL)
	assert.Equal(t, DefaultEventsLimit, list.Limit)

	repo.AssertExpectations(t)
}

func TestListEventsValidationSkipsRepository(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewEventService(repo, nil, quietLogger())

	f := models.DefaultEventFilter()
	f.Gender = "unknown"
	_, err := svc.ListEvents(context.Background(), f)

	assert.ErrorIs(t, err, ErrInvalidGender)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestListEventsEmptyResult(t *testing.T) {
	repo := &mockEventRepo{}
	repo.On("List", mock.Anything, mock.Anything).Return(nil, nil).Once()
	svc := NewEventService(repo, nil, quietLogger())

	list, err := svc.ListEvents(context.Background(), models.DefaultEventFilter())
	require.NoError(t, err)
	assert.NotNil(t, list.Events)
	assert.Empty(t, list.Events)
}

func TestGetEvent(t *testing.T) {
	repo := &mockEventRepo{}
	repo.On("GetByID", mock.Anything, 1).Return(&models.Event{ID: 1}, nil).Once()
	repo.On("GetByID", mock.Anything, 2).Return(nil, repositories.ErrEventNotFound).Once()
	repo.On("GetByID", mock.Anything, 3).Return(nil, errors.New("boom")).Once()
	svc := NewEventService(repo, nil, quietLogger())
	ctx := context.Background()

	event, err := svc.GetEvent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, event.ID)

	_, err = svc.GetEvent(ctx, 2)
	assert.ErrorIs(t, err, ErrEventNotFound)

	_, err = svc.GetEvent(ctx, 3)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEventNotFound)
}
