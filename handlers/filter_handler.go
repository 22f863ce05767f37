package handlers

import (
	"log/slog"
	"net/http"

	"github.com/suenot/sporthub/middleware"
	"github.com/suenot/sporthub/schema"
	"github.com/suenot/sporthub/services"
)

type FilterHandler struct {
	responder
	filterService services.FilterService
	publisher     services.SchemaPublisher
}

func NewFilterHandler(fs services.FilterService, publisher services.SchemaPublisher, logger *slog.Logger) *FilterHandler {
	return &FilterHandler{
		responder:     newResponder(logger),
		filterService: fs,
		publisher:     publisher,
	}
}

// GetFilterSchema godoc
// @Summary      Filter form schema
// @Description  JSON Schema and UI schema of the event filter form, localized.
// @Tags         filters
// @Produce      json
// @Param        lang  query  string  false  "language, overrides Accept-Language"
// @Success      200  {object}  services.FilterSchemaView
// @Router       /filters/schema [get]
func (h *FilterHandler) GetFilterSchema(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = r.Header.Get("Accept-Language")
	}
	lang = h.filterService.ResolveLanguage(lang)

	view, err := h.filterService.GetFilterSchema(r.Context(), lang)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	headers := http.Header{"Content-Language": []string{view.Language}, "Vary": []string{"Accept-Language"}}
	if err := writeJSON(w, http.StatusOK, view, headers); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// GetUISchema godoc
// @Summary  Filter form widget hints
// @Tags     filters
// @Produce  json
// @Router   /filters/ui-schema [get]
func (h *FilterHandler) GetUISchema(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, schema.FilterUISchema(), nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// GetOptions godoc
// @Summary  Option lists discovered from the event feed
// @Tags     filters
// @Produce  json
// @Router   /filters/options [get]
func (h *FilterHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.filterService.GetOptions(r.Context())
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"options": opts}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// RefreshOptions godoc
// @Summary   Reload option lists
// @Tags      admin
// @Security  BearerAuth
// @Produce   json
// @Router    /admin/filters/refresh [post]
func (h *FilterHandler) RefreshOptions(w http.ResponseWriter, r *http.Request) {
	h.logAdminAction(r, "filter options refresh requested")

	opts, changed, err := h.filterService.RefreshOptions(r.Context())
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"options": opts, "changed": changed}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// PublishSchemas godoc
// @Summary   Upload schema snapshots to object storage
// @Tags      admin
// @Security  BearerAuth
// @Produce   json
// @Router    /admin/filters/publish [post]
func (h *FilterHandler) PublishSchemas(w http.ResponseWriter, r *http.Request) {
	h.logAdminAction(r, "filter schema publish requested")

	result, err := h.publisher.PublishSchemas(r.Context())
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *FilterHandler) logAdminAction(r *http.Request, msg string) {
	attrs := []any{slog.String("path", r.URL.Path)}
	if userID, err := middleware.GetUserIDFromContext(r.Context()); err == nil {
		attrs = append(attrs, slog.Int("user_id", userID))
	}
	h.logger.InfoContext(r.Context(), msg, attrs...)
}
