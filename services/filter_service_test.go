package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/suenot/sporthub/i18n"
	"github.com/suenot/sporthub/models"
	"github.com/suenot/sporthub/realtime"
	"github.com/suenot/sporthub/schema"
)

func newTestCatalog(t *testing.T) *i18n.Catalog {
	t.Helper()
	c, err := i18n.NewDefaultCatalog("en")
	require.NoError(t, err)
	return c
}

func feedOptions() models.FilterOptions {
	return models.FilterOptions{
		SportTypes:  []string{"football", "tennis"},
		Disciplines: []string{"singles"},
		Cities:      []string{"Kazan"},
		Countries:   []string{"Russia"},
		AgeGroups:   []string{"U18"},
	}
}

func TestGetOptionsLoadsOnceAndCaches(t *testing.T) {
	repo := &mockOptionsRepo{}
	repo.expectOptions(feedOptions())
	notifier := &fakeNotifier{}
	svc := NewFilterService(repo, newTestCatalog(t), notifier, quietLogger())

	first, err := svc.GetOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, feedOptions(), first)

	second, err := svc.GetOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	repo.AssertExpectations(t)
	assert.Equal(t, 0, notifier.count(), "initial load is not broadcast")
}

func TestGetOptionsReturnsCopies(t *testing.T) {
	repo := &mockOptionsRepo{}
	repo.expectOptions(feedOptions())
	svc := NewFilterService(repo, newTestCatalog(t), nil, quietLogger())

	first, err := svc.GetOptions(context.Background())
	require.NoError(t, err)
	first.Cities[0] = "Sochi"

	second, err := svc.GetOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Kazan", second.Cities[0])
}

func TestRefreshOptionsNotifiesOnChange(t *testing.T) {
	repo := &mockOptionsRepo{}
	notifier := &fakeNotifier{}
	svc := NewFilterService(repo, newTestCatalog(t), notifier, quietLogger())
	ctx := context.Background()

	repo.expectOptions(feedOptions())
	_, changed, err := svc.RefreshOptions(ctx)
	require.NoError(t, err)
	assert.True(t, changed)

	repo.expectOptions(feedOptions())
	_, changed, err = svc.RefreshOptions(ctx)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 0, notifier.count())

	updated := feedOptions()
	updated.Cities = append(updated.Cities, "Moscow")
	repo.expectOptions(updated)
	got, changed, err := svc.RefreshOptions(ctx)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"Kazan", "Moscow"}, got.Cities)

	require.Equal(t, 1, notifier.count())
	msg := notifier.messages[0]
	assert.Equal(t, realtime.FiltersRoom, msg.room)
	wsMsg, ok := msg.message.(realtime.Message)
	require.True(t, ok)
	assert.Equal(t, realtime.MessageFilterOptionsUpdated, wsMsg.Type)
	assert.Equal(t, updated, wsMsg.Payload)

	repo.AssertExpectations(t)
}

func TestRefreshOptionsPropagatesErrors(t *testing.T) {
	repo := &mockOptionsRepo{}
	dbErr := errors.New("connection refused")
	repo.On("ListSportTypes", mock.Anything).Return([]string{"football"}, nil).Maybe()
	repo.On("ListDisciplines", mock.Anything).Return(nil, dbErr).Once()
	repo.On("ListCities", mock.Anything).Return([]string{}, nil).Maybe()
	repo.On("ListCountries", mock.Anything).Return([]string{}, nil).Maybe()
	repo.On("ListAgeGroups", mock.Anything).Return([]string{}, nil).Maybe()

	svc := NewFilterService(repo, newTestCatalog(t), nil, quietLogger())
	_, _, err := svc.RefreshOptions(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFilterOptionsLoadFailed)
	assert.ErrorIs(t, err, dbErr)
}

func TestGetFilterSchema(t *testing.T) {
	repo := &mockOptionsRepo{}
	repo.expectOptions(feedOptions())
	svc := NewFilterService(repo, newTestCatalog(t), nil, quietLogger())

	view, err := svc.GetFilterSchema(context.Background(), "ru")
	require.NoError(t, err)

	assert.Equal(t, "ru", view.Language)
	sport := view.Schema.Property(schema.FieldSportType)
	assert.Equal(t, []string{"", "football", "tennis"}, sport.Enum)
	assert.Equal(t, schema.Option{Const: "", Title: "Все"}, sport.OneOf[0])
	assert.Equal(t, schema.Option{Const: "football", Title: "Футбол"}, sport.OneOf[1])
	assert.Equal(t, "checkboxes", view.UISchema.Widget(schema.FieldCities))
}

func TestGetFilterSchemaDefaultsAndUnsupportedLanguage(t *testing.T) {
	repo := &mockOptionsRepo{}
	repo.expectOptions(models.FilterOptions{})
	svc := NewFilterService(repo, newTestCatalog(t), nil, quietLogger())

	view, err := svc.GetFilterSchema(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "en", view.Language)
	assert.Equal(t, []string{""}, view.Schema.Property(schema.FieldSportType).Enum)

	_, err = svc.GetFilterSchema(context.Background(), "de")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestResolveLanguage(t *testing.T) {
	svc := NewFilterService(&mockOptionsRepo{}, newTestCatalog(t), nil, quietLogger())

	assert.Equal(t, "ru", svc.ResolveLanguage("ru-RU,ru;q=0.9"))
	assert.Equal(t, "en", svc.ResolveLanguage(""))
	assert.Equal(t, []string{"en", "ru"}, svc.Languages())
}

// gatedOptionsRepo blocks the first ListSportTypes call until release is closed.
type gatedOptionsRepo struct {
	mu      sync.Mutex
	calls   int
	entered chan struct{}
	release chan struct{}
}

func newGatedOptionsRepo() *gatedOptionsRepo {
	return &gatedOptionsRepo{entered: make(chan struct{}), release: make(chan struct{})}
}

func (r *gatedOptionsRepo) ListSportTypes(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	r.calls++
	call := r.calls
	r.mu.Unlock()

	if call == 1 {
		close(r.entered)
		<-r.release
		return []string{"a"}, nil
	}
	return []string{"a", "b"}, nil
}

func (r *gatedOptionsRepo) ListDisciplines(context.Context) ([]string, error) { return nil, nil }
func (r *gatedOptionsRepo) ListCities(context.Context) ([]string, error) { return nil, nil }
func (r *gatedOptionsRepo) ListCountries(context.Context) ([]string, error) { return nil, nil }
func (r *gatedOptionsRepo) ListAgeGroups(context.Context) ([]string, error) { return nil, nil }

func TestRefreshOptionsOverlappingKeepsNewestSnapshot(t *testing.T) {
	repo := newGatedOptionsRepo()
	notifier := &fakeNotifier{}
	svc := NewFilterService(repo, newTestCatalog(t), notifier, quietLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _, err := svc.RefreshOptions(ctx)
		assert.NoError(t, err)
	}()
	<-repo.entered

	secondDone := make(chan struct{})
	go func() {
		defer wg.Done()
		defer close(secondDone)
		_, _, err := svc.RefreshOptions(ctx)
		assert.NoError(t, err)
	}()

	// the second refresh must not complete while the first still holds its load
	select {
	case <-secondDone:
		t.Fatal("second refresh finished before the first one")
	case <-time.After(50 * time.Millisecond):
	}

	close(repo.release)
	wg.Wait()

	opts, err := svc.GetOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, opts.SportTypes)

	require.Equal(t, 1, notifier.count())
	msg, ok := notifier.messages[0].message.(realtime.Message)
	require.True(t, ok)
	payload, ok := msg.Payload.(models.FilterOptions)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, payload.SportTypes)
}
