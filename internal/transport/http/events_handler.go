package http

import (
	"net/http"
	"strconv"

	"github.com/satstreet/pricing-service/internal/app/pricing/queries/list_events"
)

// EventsHandler handles HTTP requests for the pricing audit trail.
type EventsHandler struct {
	query *list_events.Query
}

// NewEventsHandler creates a new HTTP events handler.
func NewEventsHandler(query *list_events.Query) *EventsHandler {
	return &EventsHandler{
		query: query,
	}
}

// Event represents a domain event in the HTTP response.
type Event struct {
	EventID     string  `json:"event_id"`
	EventType   string  `json:"event_type"`
	AggregateID string  `json:"aggregate_id"`
	Payload     string  `json:"payload"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	ProcessedAt *string `json:"processed_at,omitempty"`
}

// ListEventsResponse represents the HTTP response for listing events.
type ListEventsResponse struct {
	Events     []Event `json:"events"`
	TotalCount int64   `json:"total_count"`
}

// ServeHTTP handles GET /api/v1/events requests.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &list_events.Request{}

	if eventType := query.Get("event_type"); eventType != "" {
		req.EventType = &eventType
	}

	if aggregateID := query.Get("aggregate_id"); aggregateID != "" {
		req.AggregateID = &aggregateID
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			req.Limit = limit
		}
	}

	rows, total, err := h.query.Execute(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch events: "+err.Error())
		return
	}

	events := make([]Event, 0, len(rows))
	for _, row := range rows {
		event := Event{
			EventID:     row.EventID,
			EventType:   row.EventType,
			AggregateID: row.AggregateID,
			Status:      row.Status,
			CreatedAt:   row.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if row.Payload.Valid {
			event.Payload = row.Payload.String()
		}
		if row.ProcessedAt.Valid {
			processed := row.ProcessedAt.Time.Format("2006-01-02T15:04:05Z07:00")
			event.ProcessedAt = &processed
		}
		events = append(events, event)
	}

	writeJSON(w, http.StatusOK, ListEventsResponse{
		Events:     events,
		TotalCount: total,
	})
}
