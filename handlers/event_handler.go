package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/suenot/sporthub/models"
	"github.com/suenot/sporthub/services"
)

type EventHandler struct {
	responder
	eventService services.EventService
}

func NewEventHandler(es services.EventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		responder:    newResponder(logger),
		eventService: es,
	}
}

// ListEvents godoc
// @Summary  List events matching the filter form
// @Tags     events
// @Produce  json
// @Param    sportType          query  string  false  "sport type"
// @Param    period             query  string  false  "1month, 3months, 6months or custom"
// @Param    dateRange.start    query  string  false  "YYYY-MM-DD, custom period only"
// @Param    dateRange.end      query  string  false  "YYYY-MM-DD, custom period only"
// @Param    countries          query  string  false  "repeat the parameter, or one comma separated value"
// @Param    cities             query  string  false  "repeat the parameter, or one comma separated value"
// @Param    disciplines        query  string  false  "repeat the parameter, or one comma separated value"
// @Param    participantsRange  query  string  false  "min,max"
// @Param    gender             query  string  false  "male, female or mixed"
// @Param    ageGroup           query  string  false  "age group"
// @Param    eventType          query  string  false  "regional, national or international"
// @Param    status             query  string  false  "draft, published, cancelled or completed"
// @Param    limit              query  int     false  "page size"
// @Param    offset             query  int     false  "offset"
// @Success  200  {object}  services.EventList
// @Router   /events [get]
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEventFilter(r.URL.Query())
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	list, err := h.eventService.ListEvents(r.Context(), filter)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, list, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// GetEvent godoc
// @Summary  Get an event
// @Tags     events
// @Produce  json
// @Param    eventID  path  int  true  "event ID"
// @Router   /events/{eventID} [get]
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	event, err := h.eventService.GetEvent(r.Context(), eventID)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"event": event}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// parseEventFilter reads the submitted filter form from query parameters. Only syntax is
// checked here; value validation belongs to the service.
func parseEventFilter(q url.Values) (models.EventFilter, error) {
	filter := models.DefaultEventFilter()

	filter.SportType = q.Get("sportType")
	filter.Period = models.Period(q.Get("period"))
	filter.Gender = models.Gender(q.Get("gender"))
	filter.AgeGroup = q.Get("ageGroup")
	filter.EventType = models.EventType(q.Get("eventType"))
	filter.Status = models.EventStatus(q.Get("status"))
	filter.Countries = queryList(q["countries"])
	filter.Cities = queryList(q["cities"])
	filter.Disciplines = queryList(q["disciplines"])

	var err error
	if filter.DateRange.Start, err = parseDateParam(q, "dateRange.start"); err != nil {
		return filter, err
	}
	if filter.DateRange.End, err = parseDateParam(q, "dateRange.end"); err != nil {
		return filter, err
	}

	if raw := q.Get("participantsRange"); raw != "" {
		parts := strings.Split(raw, ",")
		if len(parts) != 2 {
			return filter, errors.New("participantsRange must be two comma separated numbers")
		}
		for i, part := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return filter, fmt.Errorf("invalid participantsRange value %q", part)
			}
			filter.ParticipantsRange[i] = n
		}
	}

	if filter.Limit, err = parseIntParam(q, "limit"); err != nil {
		return filter, err
	}
	if filter.Offset, err = parseIntParam(q, "offset"); err != nil {
		return filter, err
	}

	return filter, nil
}

func parseDateParam(q url.Values, name string) (*time.Time, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: expected YYYY-MM-DD, got %q", name, raw)
	}
	return &t, nil
}

func parseIntParam(q url.Values, name string) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s query parameter", name)
	}
	return n, nil
}
