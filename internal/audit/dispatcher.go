package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/BruksfildServices01/farmergpt/internal/metrics"
)

type Event struct {
	UserID   uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

const (
	queueSize    = 100
	writeTimeout = 5 * time.Second
)

// Dispatcher writes events on a single background worker. A full queue drops
// the event so request latency never depends on audit writes.
type Dispatcher struct {
	logger *Logger
	log    *slog.Logger
	queue  chan Event
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(logger *Logger, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}

	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, queueSize),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := d.logger.Log(ctx, ev.UserID, ev.Action, ev.Entity, ev.EntityID, ev.Metadata)
		cancel()

		if err != nil {
			d.log.Error("audit write failed", "action", ev.Action, "error", err)
		}
	}
}

// Dispatch is safe on a nil dispatcher and after Close.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		metrics.AuditDropped.Inc()
		d.log.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close stops accepting events and waits for queued ones to be written.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}

	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
