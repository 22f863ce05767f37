package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/suenot/sporthub/i18n"
	"github.com/suenot/sporthub/models"
	"github.com/suenot/sporthub/realtime"
	"github.com/suenot/sporthub/repositories"
	"github.com/suenot/sporthub/schema"
)

// Notifier delivers a message to every subscriber of a room.
type Notifier interface {
	BroadcastToRoom(roomID string, message interface{})
}

type FilterService interface {
	GetOptions(ctx context.Context) (models.FilterOptions, error)
	RefreshOptions(ctx context.Context) (models.FilterOptions, bool, error)
	GetFilterSchema(ctx context.Context, lang string) (*FilterSchemaView, error)
	ResolveLanguage(acceptLanguage string) string
	Languages() []string
}

// FilterSchemaView is everything the form renderer needs for one language.
type FilterSchemaView struct {
	Language string          `json:"language"`
	Schema   *schema.Schema  `json:"schema"`
	UISchema schema.UISchema `json:"ui_schema"`
}

type filterService struct {
	optionsRepo repositories.FilterOptionsRepository
	catalog     *i18n.Catalog
	notifier    Notifier
	logger      *slog.Logger

	// refreshMu serializes load-and-swap so an older load never overwrites a newer snapshot.
	refreshMu sync.Mutex
	mu        sync.RWMutex
	snapshot  *models.FilterOptions
}

func NewFilterService(
	optionsRepo repositories.FilterOptionsRepository,
	catalog *i18n.Catalog,
	notifier Notifier,
	logger *slog.Logger,
) FilterService {
	if logger == nil {
		logger = slog.Default()
	}
	return &filterService{
		optionsRepo: optionsRepo,
		catalog:     catalog,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetOptions returns the cached option lists, loading them on first use.
func (s *filterService) GetOptions(ctx context.Context) (models.FilterOptions, error) {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	if snapshot != nil {
		return cloneOptions(*snapshot), nil
	}
	opts, _, err := s.RefreshOptions(ctx)
	return opts, err
}

// RefreshOptions reloads the option lists and reports whether they differ from the cached
// ones. Subscribers are notified of changes, but not of the initial load.
func (s *filterService) RefreshOptions(ctx context.Context) (models.FilterOptions, bool, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	fresh, err := s.loadOptions(ctx)
	if err != nil {
		return models.FilterOptions{}, false, err
	}

	s.mu.Lock()
	previous := s.snapshot
	changed := previous == nil || !equalOptions(*previous, fresh)
	if changed {
		s.snapshot = &fresh
	}
	s.mu.Unlock()

	if changed && previous != nil {
		s.logger.InfoContext(ctx, "filter options changed",
			slog.Int("sport_types", len(fresh.SportTypes)),
			slog.Int("disciplines", len(fresh.Disciplines)),
			slog.Int("cities", len(fresh.Cities)),
			slog.Int("countries", len(fresh.Countries)),
			slog.Int("age_groups", len(fresh.AgeGroups)),
		)
		if s.notifier != nil {
			s.notifier.BroadcastToRoom(realtime.FiltersRoom, realtime.Message{
				Type:    realtime.MessageFilterOptionsUpdated,
				Payload: cloneOptions(fresh),
				RoomID:  realtime.FiltersRoom,
			})
		}
	}

	return cloneOptions(fresh), changed, nil
}

func (s *filterService) loadOptions(ctx context.Context) (models.FilterOptions, error) {
	var opts models.FilterOptions

	g, gCtx := errgroup.WithContext(ctx)
	load := func(name string, dst *[]string, fn func(context.Context) ([]string, error)) {
		g.Go(func() error {
			values, err := fn(gCtx)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrFilterOptionsLoadFailed, name, err)
			}
			*dst = values
			return nil
		})
	}

	load("sport types", &opts.SportTypes, s.optionsRepo.ListSportTypes)
	load("disciplines", &opts.Disciplines, s.optionsRepo.ListDisciplines)
	load("cities", &opts.Cities, s.optionsRepo.ListCities)
	load("countries", &opts.Countries, s.optionsRepo.ListCountries)
	load("age groups", &opts.AgeGroups, s.optionsRepo.ListAgeGroups)

	if err := g.Wait(); err != nil {
		return models.FilterOptions{}, err
	}
	return cloneOptions(opts), nil
}

func (s *filterService) GetFilterSchema(ctx context.Context, lang string) (*FilterSchemaView, error) {
	if lang == "" {
		lang = s.catalog.Fallback()
	}
	if !slices.Contains(s.catalog.Languages(), lang) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	opts, err := s.GetOptions(ctx)
	if err != nil {
		return nil, err
	}

	return &FilterSchemaView{
		Language: lang,
		Schema:   schema.UpdatedSchema(s.catalog.Translator(lang), opts),
		UISchema: schema.FilterUISchema(),
	}, nil
}

func (s *filterService) ResolveLanguage(acceptLanguage string) string {
	return s.catalog.Match(acceptLanguage)
}

func (s *filterService) Languages() []string {
	return s.catalog.Languages()
}
