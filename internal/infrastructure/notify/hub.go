package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/pennantrace/sandlot/internal/usecase"
)

const subscriberBuffer = 16

// Hub fans events out to in-process subscribers over buffered channels.
// Delivery is best-effort: a subscriber that cannot keep up loses events
// instead of blocking the publisher.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[int]chan usecase.Event
	nextID      int
	pool        *ants.Pool
	logger      *slog.Logger
	closed      bool
}

func NewHub(workerCount int, logger *slog.Logger) (*Hub, error) {
	if workerCount <= 0 {
		workerCount = 4
	}
	if logger == nil {
		logger = slog.Default()
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, err
	}

	return &Hub{
		subscribers: make(map[int]chan usecase.Event),
		pool:        pool,
		logger:      logger,
	}, nil
}

// Subscribe registers a new listener. The returned cancel func removes the
// subscription and closes the channel.
func (h *Hub) Subscribe() (<-chan usecase.Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		ch := make(chan usecase.Event)
		close(ch)
		return ch, func() {}
	}

	id := h.nextID
	h.nextID++
	ch := make(chan usecase.Event, subscriberBuffer)
	h.subscribers[id] = ch

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subscribers[id]; ok {
			delete(h.subscribers, id)
			close(sub)
		}
	}
}

func (h *Hub) Publish(ctx context.Context, event usecase.Event) {
	h.mu.RLock()
	closed := h.closed
	empty := len(h.subscribers) == 0
	h.mu.RUnlock()

	if closed || empty {
		return
	}

	if err := h.pool.Submit(func() {
		// Sending under the read lock keeps unsubscribe (which closes the
		// channel under the write lock) from racing with the send.
		h.mu.RLock()
		defer h.mu.RUnlock()
		for _, ch := range h.subscribers {
			select {
			case ch <- event:
			default:
				h.logger.Debug("event dropped for slow subscriber", "type", event.Type)
			}
		}
	}); err != nil {
		h.logger.WarnContext(ctx, "submit event fan-out", "type", event.Type, "error", err)
	}
}

// Close stops accepting publishes, closes all subscriber channels and
// releases the worker pool.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	for id, ch := range h.subscribers {
		delete(h.subscribers, id)
		close(ch)
	}
	h.mu.Unlock()

	h.pool.Release()
}
