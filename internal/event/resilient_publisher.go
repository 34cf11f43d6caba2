package event

import (
	"context"
	"sync"
	"time"

	"github.com/nt-jambaa/toktok-mini-game/internal/logger"
)

// ResilientPublisher wraps a Bus and retries failed publishes in the background.
// Events that still fail after maxRetries are appended to the dead-letter file.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	mu       sync.Mutex
	wg       sync.WaitGroup
	shutdown chan struct{}
	closed   bool
}

var _ Bus = (*ResilientPublisher)(nil)

// NewResilientPublisher creates a publisher writing exhausted events to deadLetterPath
func NewResilientPublisher(inner Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}
	if maxRetries <= 0 {
		maxRetries = RetryMaxAttempts
	}
	if retryDelay <= 0 {
		retryDelay = RetryInitialDelay
	}
	return &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dlw,
		shutdown:   make(chan struct{}),
	}, nil
}

// Publish delivers the event once synchronously. On failure it schedules
// background retries and returns nil so callers are never blocked by subscribers.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		logger.AttrKeyEventType, event.Type,
		"error", err,
		"retries", p.maxRetries)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		_ = p.deadLetter.Write(event, 1, err)
		return nil
	}

	p.wg.Add(1)
	go p.retryLoop(event, err)
	return nil
}

// PublishWithRetry is Publish without a result, for fire-and-forget call sites
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	_ = p.Publish(ctx, event)
}

func (p *ResilientPublisher) retryLoop(event Event, lastErr error) {
	defer p.wg.Done()
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		select {
		case <-time.After(CalculateRetryDelay(p.retryDelay, attempt)):
		case <-p.shutdown:
			log.Warn(LogMsgEventDroppedShutdown, logger.AttrKeyEventType, event.Type)
			_ = p.deadLetter.Write(event, attempt, lastErr)
			return
		}

		lastErr = p.inner.Publish(ctx, event)
		if lastErr == nil {
			log.Info(LogMsgEventRetrySucceeded, logger.AttrKeyEventType, event.Type, "attempt", attempt)
			return
		}
		log.Warn(LogMsgEventRetryFailed, logger.AttrKeyEventType, event.Type, "attempt", attempt, "error", lastErr)
	}

	log.Error(LogMsgEventRetryExhausted, logger.AttrKeyEventType, event.Type)
	if err := p.deadLetter.Write(event, p.maxRetries+1, lastErr); err != nil {
		log.Error(LogMsgDeadLetterFailed, "error", err)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops pending retries, dead-lettering their events, and closes the file
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.shutdown)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
	return p.deadLetter.Close()
}
