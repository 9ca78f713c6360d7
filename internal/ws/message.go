package ws

import (
	"time"

	"github.com/HerbHall/netlens/pkg/ifevent"
)

// MessageType discriminates WebSocket messages.
type MessageType string

const (
	MessageFlapDetected MessageType = "flap.detected"
	MessageEventsStored MessageType = "events.stored"
	MessageStreamError  MessageType = "stream.error"
)

// Message is the envelope for all WebSocket messages.
type Message struct {
	Type      MessageType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      any         `json:"data"`
}

// FlapDetectedData is the payload for flap.detected messages.
type FlapDetectedData struct {
	Report *ifevent.FlapReport `json:"report"`
}

// EventsStoredData is the payload for events.stored messages.
type EventsStoredData struct {
	Accepted int `json:"accepted"`
	Skipped  int `json:"skipped"`
}

// StreamErrorData is the payload for stream.error messages.
type StreamErrorData struct {
	Error string `json:"error"`
}
