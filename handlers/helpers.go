package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/suenot/sporthub/services"
)

type jsonResponse map[string]interface{}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

// responder writes JSON error envelopes and logs server-side failures.
type responder struct {
	logger *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	if logger == nil {
		logger = slog.Default()
	}
	return responder{logger: logger}
}

func (rs responder) errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := jsonResponse{"error": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		rs.logger.ErrorContext(r.Context(), "failed to write error response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (rs responder) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	rs.logger.ErrorContext(r.Context(), "internal server error",
		slog.String("method", r.Method), slog.String("path", r.URL.Path), slog.Any("error", err))
	message := "the server encountered a problem and could not process your request"
	rs.errorResponse(w, r, http.StatusInternalServerError, message)
}

func (rs responder) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	rs.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (rs responder) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	rs.errorResponse(w, r, http.StatusNotFound, message)
}

func (rs responder) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, message string) {
	rs.errorResponse(w, r, http.StatusServiceUnavailable, message)
}

// mapServiceErrorToHTTP преобразует ошибки сервисного слоя в HTTP-ответы
func (rs responder) mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrEventNotFound):
		rs.notFoundResponse(w, r)

	case errors.Is(err, services.ErrInvalidPeriod),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidParticipantsRange),
		errors.Is(err, services.ErrInvalidGender),
		errors.Is(err, services.ErrInvalidEventType),
		errors.Is(err, services.ErrInvalidEventStatus),
		errors.Is(err, services.ErrInvalidPagination),
		errors.Is(err, services.ErrUnsupportedLanguage):
		rs.badRequestResponse(w, r, err)

	case errors.Is(err, services.ErrSchemaPublishingDisabled):
		rs.serviceUnavailableResponse(w, r, err.Error())

	default:
		rs.serverErrorResponse(w, r, err)
	}
}

func getIDFromURL(r *http.Request, paramName string) (int, error) {
	idStr := chi.URLParam(r, paramName)
	if idStr == "" {
		return 0, fmt.Errorf("missing %s in URL path", paramName)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format: %q", paramName, idStr)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid %s value: %d", paramName, id)
	}
	return id, nil
}

// queryList collects a multi-valued parameter. Repeated parameters (?a=x&a=y) are taken
// verbatim, so values may contain commas; a single value is split on commas (?a=x,y).
func queryList(values []string) []string {
	if len(values) != 1 {
		return values
	}
	var out []string
	for _, part := range strings.Split(values[0], ",") {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}
