package services

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/suenot/sporthub/models"
	"github.com/suenot/sporthub/repositories"
	"github.com/suenot/sporthub/storage"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockOptionsRepo struct {
	mock.Mock
}

func (m *mockOptionsRepo) ListSportTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	values, _ := args.Get(0).([]string)
	return values, args.Error(1)
}

func (m *mockOptionsRepo) ListDisciplines(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	values, _ := args.Get(0).([]string)
	return values, args.Error(1)
}

func (m *mockOptionsRepo) ListCities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	values, _ := args.Get(0).([]string)
	return values, args.Error(1)
}

func (m *mockOptionsRepo) ListCountries(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	values, _ := args.Get(0).([]string)
	return values, args.Error(1)
}

func (m *mockOptionsRepo) ListAgeGroups(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	values, _ := args.Get(0).([]string)
	return values, args.Error(1)
}

// expectOptions configures every list method to return opts once.
func (m *mockOptionsRepo) expectOptions(opts models.FilterOptions) {
	m.On("ListSportTypes", mock.Anything).Return(opts.SportTypes, nil).Once()
	m.On("ListDisciplines", mock.Anything).Return(opts.Disciplines, nil).Once()
	m.On("ListCities", mock.Anything).Return(opts.Cities, nil).Once()
	m.On("ListCountries", mock.Anything).Return(opts.Countries, nil).Once()
	m.On("ListAgeGroups", mock.Anything).Return(opts.AgeGroups, nil).Once()
}

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) GetByID(ctx context.Context, id int) (*models.Event, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*models.Event)
	return event, args.Error(1)
}

func (m *mockEventRepo) List(ctx context.Context, filter repositories.ListEventsFilter) ([]models.Event, error) {
	args := m.Called(ctx, filter)
	events, _ := args.Get(0).([]models.Event)
	return events, args.Error(1)
}

type recordedMessage struct {
	room    string
	message interface{}
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []recordedMessage
}

func (n *fakeNotifier) BroadcastToRoom(roomID string, message interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, recordedMessage{room: roomID, message: message})
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.messages)
}

type uploadedObject struct {
	contentType  string
	cacheControl string
	body         []byte
}

type fakeUploader struct {
	mu      sync.Mutex
	objects map[string]uploadedObject
	err     error
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{objects: make(map[string]uploadedObject)}
}

func (u *fakeUploader) Upload(_ context.Context, key string, contentType string, reader io.Reader, opts storage.UploadOptions) (*storage.UploadResult, error) {
	if u.err != nil {
		return nil, u.err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, err
	}
	u.mu.Lock()
	u.objects[key] = uploadedObject{contentType: contentType, cacheControl: opts.CacheControl, body: buf.Bytes()}
	u.mu.Unlock()
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.test/" + key
}
