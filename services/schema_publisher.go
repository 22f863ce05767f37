package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/suenot/sporthub/realtime"
	"github.com/suenot/sporthub/schema"
	"github.com/suenot/sporthub/storage"
)

const (
	uiSchemaKey        = "filters/ui-schema.json"
	schemaCacheControl = "public, max-age=300"
)

func schemaKey(lang string) string {
	return "filters/" + lang + "/schema.json"
}

type SchemaPublisher interface {
	PublishSchemas(ctx context.Context) (*PublishResult, error)
}

type PublishedSchema struct {
	Language string `json:"language"`
	Key      string `json:"key"`
	URL      string `json:"url"`
}

type PublishResult struct {
	Schemas     []PublishedSchema `json:"schemas"`
	UISchemaURL string            `json:"ui_schema_url"`
	PublishedAt time.Time         `json:"published_at"`
}

type schemaPublisher struct {
	filterService FilterService
	uploader      storage.FileUploader
	notifier      Notifier
	logger        *slog.Logger
	now           func() time.Time
}

// NewSchemaPublisher uploads schema snapshots for CDN consumption. A nil uploader yields a
// publisher that always fails with ErrSchemaPublishingDisabled.
func NewSchemaPublisher(filterService FilterService, uploader storage.FileUploader, notifier Notifier, logger *slog.Logger) SchemaPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &schemaPublisher{
		filterService: filterService,
		uploader:      uploader,
		notifier:      notifier,
		logger:        logger,
		now:           time.Now,
	}
}

func (p *schemaPublisher) PublishSchemas(ctx context.Context) (*PublishResult, error) {
	if p.uploader == nil {
		return nil, ErrSchemaPublishingDisabled
	}

	result := &PublishResult{PublishedAt: p.now().UTC()}

	uiResult, err := p.uploadJSON(ctx, uiSchemaKey, schema.FilterUISchema())
	if err != nil {
		return nil, err
	}
	result.UISchemaURL = uiResult.Location

	for _, lang := range p.filterService.Languages() {
		view, err := p.filterService.GetFilterSchema(ctx, lang)
		if err != nil {
			return nil, fmt.Errorf("%w: build %s: %w", ErrSchemaPublishFailed, lang, err)
		}
		uploaded, err := p.uploadJSON(ctx, schemaKey(lang), view.Schema)
		if err != nil {
			return nil, err
		}
		result.Schemas = append(result.Schemas, PublishedSchema{
			Language: lang,
			Key:      uploaded.Key,
			URL:      uploaded.Location,
		})
	}

	p.logger.InfoContext(ctx, "filter schemas published",
		slog.Int("languages", len(result.Schemas)), slog.String("ui_schema_url", result.UISchemaURL))

	if p.notifier != nil {
		p.notifier.BroadcastToRoom(realtime.FiltersRoom, realtime.Message{
			Type:    realtime.MessageFilterSchemaPublished,
			Payload: result,
			RoomID:  realtime.FiltersRoom,
		})
	}

	return result, nil
}

func (p *schemaPublisher) uploadJSON(ctx context.Context, key string, v interface{}) (*storage.UploadResult, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: encode %s: %w", ErrSchemaPublishFailed, key, err)
	}
	uploaded, err := p.uploader.Upload(ctx, key, "application/json", bytes.NewReader(body), storage.UploadOptions{
		CacheControl: schemaCacheControl,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaPublishFailed, err)
	}
	return uploaded, nil
}
