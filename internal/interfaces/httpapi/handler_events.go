package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/pennantrace/sandlot/internal/usecase"
)

// StreamEvents pushes league events to the client as server-sent events
// until the client disconnects.
func (h *Handler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.eventHub == nil {
		writeError(ctx, w, fmt.Errorf("%w: event hub is not configured", usecase.ErrDependencyUnavailable))
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: streaming is not supported", usecase.ErrDependencyUnavailable))
		return
	}

	events, cancel := h.eventHub.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case event, open := <-events:
			if !open {
				return
			}
			payload, err := sonic.Marshal(event.Payload)
			if err != nil {
				h.logger.WarnContext(ctx, "marshal event payload", "type", event.Type, "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, payload)
			flusher.Flush()
		}
	}
}
