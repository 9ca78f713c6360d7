package ingest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/HerbHall/netlens/internal/lens/normalize"
	"github.com/HerbHall/netlens/pkg/ifevent"
	"github.com/HerbHall/netlens/pkg/plugin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var eventsIngested = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "netlens_ingest_events_total",
		Help: "Total event records processed by the ingest API.",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(eventsIngested)
}

// Routes implements plugin.HTTPProvider.
func (m *Module) Routes() []plugin.Route {
	return []plugin.Route{
		{Method: "POST", Path: "/events", Handler: m.handleIngestEvents},
	}
}

// IngestRequest is the batch submission body.
type IngestRequest struct {
	Events []ifevent.RawRecord `json:"events"`
}

// IngestResponse reports the outcome of a batch submission.
type IngestResponse struct {
	Accepted          int `json:"accepted"`
	Skipped           int `json:"skipped"`
	SeverityDefaulted int `json:"severity_defaulted"`
}

// handleIngestEvents accepts a batch of raw event records.
//
//	@Summary		Ingest events
//	@Description	Normalizes and stores a batch of raw device event records. Records missing timestamp or device are skipped, not rejected wholesale.
//	@Tags			ingest
//	@Accept			json
//	@Produce		json
//	@Param			request	body		IngestRequest	true	"Event batch"
//	@Success		200		{object}	IngestResponse
//	@Failure		400		{object}	map[string]any
//	@Failure		500		{object}	map[string]any
//	@Router			/ingest/events [post]
func (m *Module) handleIngestEvents(w http.ResponseWriter, r *http.Request) {
	var req IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Events) == 0 {
		writeError(w, http.StatusBadRequest, "events is required and must be non-empty")
		return
	}
	if len(req.Events) > m.cfg.MaxBatchSize {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("batch of %d exceeds max_batch_size %d", len(req.Events), m.cfg.MaxBatchSize))
		return
	}

	events, diag := normalize.Records(req.Events)

	if err := m.store.InsertEvents(r.Context(), events); err != nil {
		m.logger.Error("failed to store event batch", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to store events")
		return
	}

	eventsIngested.WithLabelValues("accepted").Add(float64(len(events)))
	eventsIngested.WithLabelValues("skipped").Add(float64(diag.Skipped))

	if m.bus != nil && len(events) > 0 {
		m.bus.PublishAsync(r.Context(), plugin.Event{
			Topic:     TopicEventsStored,
			Source:    "ingest",
			Timestamp: time.Now(),
			Payload: &BatchStoredEvent{
				Accepted: len(events),
				Skipped:  diag.Skipped,
				Start:    events[0].Timestamp,
				End:      events[len(events)-1].Timestamp,
			},
		})
	}

	writeJSON(w, http.StatusOK, IngestResponse{
		Accepted:          len(events),
		Skipped:           diag.Skipped,
		SeverityDefaulted: diag.SeverityDefaulted,
	})
}

// -- helpers --

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   "https://netlens.dev/problems/" + http.StatusText(status),
		"title":  http.StatusText(status),
		"status": status,
		"detail": detail,
	})
}
