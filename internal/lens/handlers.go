package lens

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/HerbHall/netlens/internal/lens/activity"
	"github.com/HerbHall/netlens/internal/lens/aggregate"
	"github.com/HerbHall/netlens/internal/lens/category"
	"github.com/HerbHall/netlens/internal/lens/flap"
	"github.com/HerbHall/netlens/internal/lens/stability"
	"github.com/HerbHall/netlens/pkg/ifevent"
	"github.com/HerbHall/netlens/pkg/plugin"
)

// Routes implements plugin.HTTPProvider.
func (m *Module) Routes() []plugin.Route {
	return []plugin.Route{
		{Method: "GET", Path: "/flapping", Handler: m.handleFlapping},
		{Method: "GET", Path: "/stability", Handler: m.handleStability},
		{Method: "GET", Path: "/metrics", Handler: m.handleMetrics},
		{Method: "GET", Path: "/categories", Handler: m.handleCategories},
		{Method: "GET", Path: "/aggregate", Handler: m.handleAggregate},
	}
}

// handleFlapping returns interfaces flagged by the sliding-window
// detector for the requested range.
//
//	@Summary		Detect flapping interfaces
//	@Description	Flags interfaces whose state changes cluster within a sliding time window. Thresholds default to the configured values.
//	@Tags			lens
//	@Produce		json
//	@Param			start query string false "Range start (RFC3339 or Unix seconds), default now-24h"
//	@Param			end query string false "Range end (RFC3339 or Unix seconds), default now"
//	@Param			time_window_hours query int false "Analysis window ending at end; overrides start"
//	@Param			time_threshold_minutes query int false "Window length in minutes"
//	@Param			min_transitions query int false "State changes per window that flag an interface"
//	@Param			device query string false "Filter by device"
//	@Param			location query string false "Filter by location"
//	@Param			interface query string false "Filter by interface"
//	@Param			category query string false "Filter by upstream category"
//	@Param			severity query int false "Filter by severity (0-6)"
//	@Success		200 {array} ifevent.FlapReport
//	@Failure		400 {object} map[string]any
//	@Failure		500 {object} map[string]any
//	@Router			/lens/flapping [get]
func (m *Module) handleFlapping(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := flap.Options{
		TimeThresholdMinutes: m.cfg.FlapTimeThresholdMinutes,
		MinTransitions:       m.cfg.FlapMinTransitions,
	}
	if v, ok, err := parseIntParam(r, "time_threshold_minutes"); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	} else if ok {
		opts.TimeThresholdMinutes = v
	}
	if v, ok, err := parseIntParam(r, "min_transitions"); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	} else if ok {
		opts.MinTransitions = v
	}

	events, err := m.queryNormalized(r.Context(), f)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}

	reports, err := flap.Detect(events, opts)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}
	if reports == nil {
		reports = []ifevent.FlapReport{}
	}
	writeJSON(w, http.StatusOK, reports)
}

// handleStability returns the stability ranking for the requested
// range, least stable interfaces first.
//
//	@Summary		Rank interface stability
//	@Description	Scores each interface 0-100 from down ratio, event frequency, and configuration churn, then ranks ascending.
//	@Tags			lens
//	@Produce		json
//	@Param			start query string false "Range start (RFC3339 or Unix seconds), default now-24h"
//	@Param			end query string false "Range end (RFC3339 or Unix seconds), default now"
//	@Param			time_window_hours query int false "Analysis window ending at end; overrides start and normalizes the frequency term"
//	@Param			device query string false "Filter by device"
//	@Param			location query string false "Filter by location"
//	@Param			interface query string false "Filter by interface"
//	@Param			category query string false "Filter by upstream category"
//	@Param			severity query int false "Filter by severity (0-6)"
//	@Param			limit query int false "Maximum results" default(10)
//	@Success		200 {array} ifevent.StabilityRecord
//	@Failure		400 {object} map[string]any
//	@Failure		500 {object} map[string]any
//	@Router			/lens/stability [get]
func (m *Module) handleStability(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := m.queryNormalized(r.Context(), f)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}
	records := stability.Rank(events, f.rangeHours())

	limit := m.cfg.StabilityTopN
	if v, ok, perr := parseIntParam(r, "limit"); perr == nil && ok && v > 0 {
		limit = v
	}
	if len(records) > limit {
		records = records[:limit]
	}
	if records == nil {
		records = []ifevent.StabilityRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// handleMetrics returns fleet-wide interface activity counters.
//
//	@Summary		Interface activity metrics
//	@Description	Per-interface counters with last-seen state, plus fleet totals. Flapping counts come from the detector at configured thresholds.
//	@Tags			lens
//	@Produce		json
//	@Param			start query string false "Range start (RFC3339 or Unix seconds), default now-24h"
//	@Param			end query string false "Range end (RFC3339 or Unix seconds), default now"
//	@Param			time_window_hours query int false "Analysis window ending at end; overrides start"
//	@Param			device query string false "Filter by device"
//	@Param			location query string false "Filter by location"
//	@Param			interface query string false "Filter by interface"
//	@Param			category query string false "Filter by upstream category"
//	@Param			severity query int false "Filter by severity (0-6)"
//	@Success		200 {object} ifevent.ActivityMetrics
//	@Failure		400 {object} map[string]any
//	@Failure		500 {object} map[string]any
//	@Router			/lens/metrics [get]
func (m *Module) handleMetrics(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := m.queryNormalized(r.Context(), f)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}

	reports, err := flap.Detect(events, flap.Options{
		TimeThresholdMinutes: m.cfg.FlapTimeThresholdMinutes,
		MinTransitions:       m.cfg.FlapMinTransitions,
	})
	if err != nil {
		writeAnalysisError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, activity.Summary(events, reports))
}

// handleCategories returns event counts per semantic category.
//
//	@Summary		Category breakdown
//	@Description	Counts events per semantic category (state_up, state_down, config_change, error, informational).
//	@Tags			lens
//	@Produce		json
//	@Param			start query string false "Range start (RFC3339 or Unix seconds), default now-24h"
//	@Param			end query string false "Range end (RFC3339 or Unix seconds), default now"
//	@Param			time_window_hours query int false "Analysis window ending at end; overrides start"
//	@Param			device query string false "Filter by device"
//	@Param			location query string false "Filter by location"
//	@Param			interface query string false "Filter by interface"
//	@Param			category query string false "Filter by upstream category"
//	@Param			severity query int false "Filter by severity (0-6)"
//	@Success		200 {object} map[string]int
//	@Failure		400 {object} map[string]any
//	@Failure		500 {object} map[string]any
//	@Router			/lens/categories [get]
func (m *Module) handleCategories(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := m.queryNormalized(r.Context(), f)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category.Counts(events))
}

// handleAggregate returns heatmap and breakdown aggregates.
//
//	@Summary		Aggregate event breakdown
//	@Description	UTC weekday-by-hour heatmap plus category, severity, location, and device breakdowns with a severity-weighted health score.
//	@Tags			lens
//	@Produce		json
//	@Param			start query string false "Range start (RFC3339 or Unix seconds), default now-24h"
//	@Param			end query string false "Range end (RFC3339 or Unix seconds), default now"
//	@Param			time_window_hours query int false "Analysis window ending at end; overrides start"
//	@Param			device query string false "Filter by device"
//	@Param			location query string false "Filter by location"
//	@Param			interface query string false "Filter by interface"
//	@Param			category query string false "Filter by upstream category"
//	@Param			severity query int false "Filter by severity (0-6)"
//	@Success		200 {object} ifevent.Aggregates
//	@Failure		400 {object} map[string]any
//	@Failure		500 {object} map[string]any
//	@Router			/lens/aggregate [get]
func (m *Module) handleAggregate(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := m.queryNormalized(r.Context(), f)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, aggregate.Reduce(events))
}

// -- helpers --

// rangeHours returns the filter's time span in hours, for frequency
// normalization.
func (f Filter) rangeHours() float64 {
	return float64(f.End-f.Start) / 3600
}

// parseFilter reads the shared query parameters every analysis endpoint
// accepts: the time range (start/end or time_window_hours ending at
// end) and the event filters.
func parseFilter(r *http.Request) (Filter, error) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		return Filter{}, err
	}

	f := Filter{Start: start, End: end, Severity: -1}

	if v, ok, perr := parseIntParam(r, "time_window_hours"); perr != nil {
		return Filter{}, perr
	} else if ok {
		if v < 1 {
			return Filter{}, errors.New("time_window_hours must be positive")
		}
		f.Start = f.End - int64(v)*3600
	}

	q := r.URL.Query()
	f.Device = q.Get("device")
	f.Location = q.Get("location")
	f.Interface = q.Get("interface")
	f.Category = q.Get("category")
	if v, ok, perr := parseIntParam(r, "severity"); perr != nil {
		return Filter{}, perr
	} else if ok {
		if v < 0 || v >= ifevent.SeverityLevels {
			return Filter{}, errors.New("severity must be between 0 and 6")
		}
		f.Severity = v
	}

	return f, nil
}

// parseTimeRange reads start/end query params, each either Unix seconds
// or RFC3339. Defaults to the last 24 hours ending now.
func parseTimeRange(r *http.Request) (start, end int64, err error) {
	now := time.Now().Unix()
	end = now
	start = now - int64((24 * time.Hour).Seconds())

	if s := r.URL.Query().Get("start"); s != "" {
		start, err = parseTime(s)
		if err != nil {
			return 0, 0, errors.New("start must be Unix seconds or RFC3339")
		}
	}
	if s := r.URL.Query().Get("end"); s != "" {
		end, err = parseTime(s)
		if err != nil {
			return 0, 0, errors.New("end must be Unix seconds or RFC3339")
		}
	}
	if end < start {
		return 0, 0, errors.New("end must not precede start")
	}
	return start, end, nil
}

func parseTime(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

func parseIntParam(r *http.Request, name string) (int, bool, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, errors.New(name + " must be an integer")
	}
	return n, true, nil
}

// writeAnalysisError maps the analysis error taxonomy to HTTP statuses:
// bad parameters are the caller's fault, timeouts are distinguishable
// from store failures.
func writeAnalysisError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ifevent.ErrInvalidParameter):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ifevent.ErrQueryTimeout):
		writeError(w, http.StatusGatewayTimeout, "event query timed out")
	default:
		writeError(w, http.StatusInternalServerError, "event query failed")
	}
}

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
