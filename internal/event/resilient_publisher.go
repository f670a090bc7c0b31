package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/PhoneTycoon_Go/internal/logger"
)

// ResilientPublisher wraps a Bus so that a failing subscriber never fails the
// operation that emitted the event. Failed events are retried in the
// background with exponential backoff and dead-lettered when retries run out.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	wg       sync.WaitGroup
	mu       sync.Mutex
	shutdown bool
	done     chan struct{}
}

// NewResilientPublisher creates a ResilientPublisher. An empty deadLetterPath
// disables the dead-letter file; exhausted events are then only logged.
func NewResilientPublisher(inner Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	p := &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		done:       make(chan struct{}),
	}
	if deadLetterPath != "" {
		dlw, err := NewDeadLetterWriter(deadLetterPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open dead letter file: %w", err)
		}
		p.deadLetter = dlw
	}
	return p, nil
}

// Publish delivers the event and never reports subscriber failures to the caller.
func (p *ResilientPublisher) Publish(ctx context.Context, evt Event) error {
	p.PublishWithRetry(ctx, evt)
	return nil
}

// PublishWithRetry attempts one synchronous delivery and hands failures to a
// background retry loop.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, evt Event) {
	err := p.inner.Publish(ctx, evt)
	if err == nil {
		return
	}

	log := logger.FromContext(ctx)
	p.mu.Lock()
	if p.shutdown {
		p.mu.Unlock()
		log.Warn(LogMsgEventDroppedShutdown, "event_type", evt.Type, "error", err)
		p.writeDeadLetter(evt, 1, err)
		return
	}
	p.wg.Add(1)
	p.mu.Unlock()

	log.Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err, "retries", p.maxRetries)
	go p.retryLoop(context.WithoutCancel(ctx), evt, err)
}

func (p *ResilientPublisher) retryLoop(ctx context.Context, evt Event, lastErr error) {
	defer p.wg.Done()
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		select {
		case <-time.After(CalculateRetryDelay(p.retryDelay, attempt)):
		case <-p.done:
			p.writeDeadLetter(evt, attempt, lastErr)
			return
		}

		if lastErr = p.inner.Publish(ctx, evt); lastErr == nil {
			log.Info(LogMsgEventRetrySucceeded, "event_type", evt.Type, "attempt", attempt)
			return
		}
		log.Warn(LogMsgEventRetryFailed, "event_type", evt.Type, "attempt", attempt, "error", lastErr)
	}

	log.Error(LogMsgEventRetryExhausted, "event_type", evt.Type, "attempts", p.maxRetries+1)
	p.writeDeadLetter(evt, p.maxRetries+1, lastErr)
}

func (p *ResilientPublisher) writeDeadLetter(evt Event, attempts int, lastErr error) {
	logger.Warn(LogMsgEventDeadLettered, "event_type", evt.Type, "attempts", attempts, "error", lastErr)
	p.mu.Lock()
	dlw := p.deadLetter
	p.mu.Unlock()
	if dlw == nil {
		return
	}
	if err := dlw.Write(evt, attempts, lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops accepting retries, cuts pending backoffs short and waits for
// in-flight retry loops to finish or ctx to expire.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.shutdown {
		p.shutdown = true
		close(p.done)
	}
	p.mu.Unlock()

	finished := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	p.mu.Lock()
	dlw := p.deadLetter
	p.deadLetter = nil
	p.mu.Unlock()
	if dlw != nil {
		return dlw.Close()
	}
	return nil
}
