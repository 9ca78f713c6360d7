package ws

import (
	"context"
	"net/http"

	"github.com/HerbHall/netlens/internal/ingest"
	"github.com/HerbHall/netlens/internal/lens"
	"github.com/HerbHall/netlens/pkg/ifevent"
	"github.com/HerbHall/netlens/pkg/plugin"
	"github.com/coder/websocket"
	"go.uber.org/zap"
)

// Handler provides WebSocket endpoints for real-time analysis updates.
type Handler struct {
	hub    *Hub
	bus    plugin.EventBus
	logger *zap.Logger
}

// Compile-time check that Handler implements the server interface.
var _ interface {
	RegisterRoutes(mux *http.ServeMux)
} = (*Handler)(nil)

// NewHandler creates a WebSocket handler and subscribes to analysis events.
func NewHandler(bus plugin.EventBus, logger *zap.Logger) *Handler {
	h := &Handler{
		hub:    NewHub(logger),
		bus:    bus,
		logger: logger,
	}
	h.subscribeToEvents()
	return h
}

// RegisterRoutes registers WebSocket routes on the server mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/ws/events", h.handleEventStream)
}

// handleEventStream upgrades the connection to WebSocket and streams
// flap alerts and batch notifications.
func (h *Handler) handleEventStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.logger.Error("websocket accept failed", zap.Error(err))
		return
	}

	client := &Client{
		conn:   conn,
		remote: r.RemoteAddr,
		send:   make(chan Message, 256),
		logger: h.logger,
	}

	h.hub.Register(client)

	// Run read and write pumps. When either exits, clean up.
	ctx := r.Context()
	done := make(chan struct{})
	go func() {
		client.writePump(ctx)
		close(done)
	}()

	// readPump blocks until client disconnects.
	client.readPump(ctx)

	// Client disconnected -- stop write pump and unregister.
	h.hub.Unregister(client)
	conn.Close(websocket.StatusNormalClosure, "")
	<-done
}

// subscribeToEvents forwards flap detections and stored batches to all
// connected WebSocket clients.
func (h *Handler) subscribeToEvents() {
	if h.bus == nil {
		return
	}

	h.bus.Subscribe(lens.TopicFlapDetected, func(_ context.Context, event plugin.Event) {
		report, ok := event.Payload.(*ifevent.FlapReport)
		if !ok {
			return
		}
		h.hub.Broadcast(Message{
			Type:      MessageFlapDetected,
			Timestamp: event.Timestamp,
			Data: FlapDetectedData{
				Report: report,
			},
		})
	})

	h.bus.Subscribe(ingest.TopicEventsStored, func(_ context.Context, event plugin.Event) {
		batch, ok := event.Payload.(*ingest.BatchStoredEvent)
		if !ok {
			return
		}
		h.hub.Broadcast(Message{
			Type:      MessageEventsStored,
			Timestamp: event.Timestamp,
			Data: EventsStoredData{
				Accepted: batch.Accepted,
				Skipped:  batch.Skipped,
			},
		})
	})

	h.logger.Info("subscribed to analysis events for WebSocket broadcasting")
}
