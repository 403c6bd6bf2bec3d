package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/osse101/LondonTravel_Go/internal/logger"
	"github.com/osse101/LondonTravel_Go/internal/metrics"
)

type event struct {
	name   string
	userID string
	reason string
	log    *slog.Logger
}

// Sink records account-linking events on a background goroutine.
// Tracking never blocks the caller; events are dropped when the queue is full.
type Sink struct {
	events   chan event
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once

	// record is swapped in tests
	record func(event)
}

// NewSink starts a sink with the given queue size
func NewSink(bufferSize int) *Sink {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	s := &Sink{
		events:  make(chan event, bufferSize),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		record:  recordMetrics,
	}
	go s.run()
	return s
}

// TrackLinkCreated records that a user linked Alexa for the first time
func (s *Sink) TrackLinkCreated(ctx context.Context, userID string) {
	s.enqueue(ctx, event{name: EventLinkCreated, userID: userID})
}

// TrackLinkRegenerated records that a linked user was issued a new token
func (s *Sink) TrackLinkRegenerated(ctx context.Context, userID string) {
	s.enqueue(ctx, event{name: EventLinkRegenerated, userID: userID})
}

// TrackLinkFailure records a linking attempt that ended in server_error
func (s *Sink) TrackLinkFailure(ctx context.Context, userID, reason string) {
	s.enqueue(ctx, event{name: EventLinkFailure, userID: userID, reason: reason})
}

func (s *Sink) enqueue(ctx context.Context, e event) {
	select {
	case <-s.done:
		return
	default:
	}

	e.log = logger.FromContext(ctx)

	select {
	case s.events <- e:
	default:
		metrics.TelemetryDroppedTotal.Inc()
		e.log.Warn(LogMsgEventDropped, "event", e.name)
	}
}

func (s *Sink) run() {
	defer close(s.stopped)
	for {
		select {
		case e := <-s.events:
			s.handle(e)
		case <-s.done:
			s.drain()
			return
		}
	}
}

func (s *Sink) drain() {
	for {
		select {
		case e := <-s.events:
			s.handle(e)
		default:
			return
		}
	}
}

func (s *Sink) handle(e event) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error(LogMsgEventPanicked, "event", e.name, "panic", fmt.Sprint(r))
		}
	}()
	s.record(e)
}

// Shutdown stops accepting events and waits for queued ones to be recorded
func (s *Sink) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.done) })

	select {
	case <-s.stopped:
		slog.Default().Info(LogMsgSinkStopped)
		return nil
	case <-ctx.Done():
		slog.Default().Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}

func recordMetrics(e event) {
	switch e.name {
	case EventLinkCreated:
		metrics.AlexaLinksTotal.WithLabelValues(metrics.KindCreated).Inc()
	case EventLinkRegenerated:
		metrics.AlexaLinksTotal.WithLabelValues(metrics.KindRegenerated).Inc()
	case EventLinkFailure:
		metrics.AlexaLinkFailuresTotal.WithLabelValues(e.reason).Inc()
	}
	e.log.Debug(LogMsgEventRecorded, "event", e.name, "user_id", e.userID, "reason", e.reason)
}
