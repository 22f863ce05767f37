package handlers

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/suenot/sporthub/models"
	"github.com/suenot/sporthub/schema"
	"github.com/suenot/sporthub/services"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockFilterService struct {
	mock.Mock
}

func (m *mockFilterService) GetOptions(ctx context.Context) (models.FilterOptions, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.FilterOptions), args.Error(1)
}

func (m *mockFilterService) RefreshOptions(ctx context.Context) (models.FilterOptions, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.FilterOptions), args.Bool(1), args.Error(2)
}

func (m *mockFilterService) GetFilterSchema(ctx context.Context, lang string) (*services.FilterSchemaView, error) {
	args := m.Called(ctx, lang)
	view, _ := args.Get(0).(*services.FilterSchemaView)
	return view, args.Error(1)
}

func (m *mockFilterService) ResolveLanguage(acceptLanguage string) string {
	return m.Called(acceptLanguage).String(0)
}

func (m *mockFilterService) Languages() []string {
	return m.Called().Get(0).([]string)
}

type mockEventService struct {
	mock.Mock
}

func (m *mockEventService) ListEvents(ctx context.Context, filter models.EventFilter) (*services.EventList, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).(*services.EventList)
	return list, args.Error(1)
}

func (m *mockEventService) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*models.Event)
	return event, args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishSchemas(ctx context.Context) (*services.PublishResult, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*services.PublishResult)
	return result, args.Error(1)
}

func sampleView(lang string) *services.FilterSchemaView {
	t := func(key string) string { return key }
	return &services.FilterSchemaView{
		Language: lang,
		Schema:   schema.UpdatedSchema(t, models.FilterOptions{SportTypes: []string{"football"}}),
		UISchema: schema.FilterUISchema(),
	}
}
