package lens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/HerbHall/netlens/pkg/ifevent"
)

// Filter narrows an event query. Zero values mean "no constraint";
// End < Start is rejected with ifevent.ErrInvalidParameter.
type Filter struct {
	Start     int64 // Unix seconds, inclusive. 0 means unbounded.
	End       int64 // Unix seconds, inclusive. 0 means unbounded.
	Device    string
	Location  string
	Interface string
	Category  string
	Severity  int // -1 means any severity
	Limit     int // 0 means no limit
}

// LensStore reads the event history written by the ingest plugin.
type LensStore struct {
	db *sql.DB
}

// NewLensStore creates a new LensStore backed by the given database.
func NewLensStore(db *sql.DB) *LensStore {
	return &LensStore{db: db}
}

// QueryEvents returns the raw records matching the filter, ordered by
// timestamp ascending. Results are heterogeneous records; callers run
// them through the normalizer before analysis. Store failures are
// wrapped with ifevent.ErrQuery, and a context deadline surfaces as
// ifevent.ErrQueryTimeout so callers can tell the two apart.
func (s *LensStore) QueryEvents(ctx context.Context, f Filter) ([]ifevent.RawRecord, error) {
	if f.End != 0 && f.Start != 0 && f.End < f.Start {
		return nil, fmt.Errorf("%w: end %d precedes start %d", ifevent.ErrInvalidParameter, f.End, f.Start)
	}

	query := strings.Builder{}
	query.WriteString(`
		SELECT timestamp, device, location, interface, category, event_type, severity, raw_log
		FROM events WHERE 1=1`)
	var args []any

	if f.Start != 0 {
		query.WriteString(" AND timestamp >= ?")
		args = append(args, f.Start)
	}
	if f.End != 0 {
		query.WriteString(" AND timestamp <= ?")
		args = append(args, f.End)
	}
	if f.Device != "" {
		query.WriteString(" AND device = ?")
		args = append(args, f.Device)
	}
	if f.Location != "" {
		query.WriteString(" AND location = ?")
		args = append(args, f.Location)
	}
	if f.Interface != "" {
		query.WriteString(" AND interface = ?")
		args = append(args, f.Interface)
	}
	if f.Category != "" {
		query.WriteString(" AND category = ?")
		args = append(args, f.Category)
	}
	if f.Severity >= 0 {
		query.WriteString(" AND severity = ?")
		args = append(args, f.Severity)
	}
	query.WriteString(" ORDER BY timestamp ASC")
	if f.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, wrapQueryErr(ctx, err)
	}
	defer rows.Close()

	var records []ifevent.RawRecord
	for rows.Next() {
		var (
			ts                int64
			severity          int
			device, location  string
			iface, category   string
			eventType, rawLog string
		)
		if err := rows.Scan(&ts, &device, &location, &iface, &category, &eventType, &severity, &rawLog); err != nil {
			return nil, wrapQueryErr(ctx, err)
		}
		records = append(records, ifevent.RawRecord{
			"timestamp":  ts,
			"device":     device,
			"location":   location,
			"interface":  iface,
			"category":   category,
			"event_type": eventType,
			"severity":   severity,
			"raw_log":    rawLog,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(ctx, err)
	}
	return records, nil
}

// wrapQueryErr maps a database error onto the analysis error taxonomy.
// A deadline or cancellation is a timeout; everything else is a query
// failure. The two are never conflated.
func wrapQueryErr(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ifevent.ErrQueryTimeout, err)
	}
	return fmt.Errorf("%w: %v", ifevent.ErrQuery, err)
}
