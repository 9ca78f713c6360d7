package ingest

// Event topics published by the ingest module.
const (
	TopicEventsStored = "ingest.events.stored"
)

// BatchStoredEvent is the payload for TopicEventsStored. Start and End
// bound the timestamps of the stored batch in Unix seconds.
type BatchStoredEvent struct {
	Accepted int   `json:"accepted"`
	Skipped  int   `json:"skipped"`
	Start    int64 `json:"start"`
	End      int64 `json:"end"`
}
