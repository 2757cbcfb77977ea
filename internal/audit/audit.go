// Package audit records planning and extraction lifecycle events. Events are
// transport-agnostic so stores and sinks can fan out; emission is best-effort
// and never fails the business operation.
package audit

import (
	"context"
	"log/slog"
	"time"
)

// Action names an auditable planning event.
type Action string

const (
	ActionPlanCreated        Action = "plan_created"
	ActionStructureGenerated Action = "structure_generated"
	ActionStructureSaved     Action = "structure_saved"
	ActionExtractionUpdated  Action = "extraction_updated"
	ActionUpdateSkipped      Action = "update_skipped"
)

// Event is emitted from domain logic to capture key actions.
type Event struct {
	Timestamp     time.Time `json:"timestamp"`
	ApplicationID string    `json:"application_id"`
	Action        Action    `json:"action"`
	ActorID       string    `json:"actor_id,omitempty"`
	Detail        string    `json:"detail,omitempty"`
	RequestID     string    `json:"request_id,omitempty"`
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByApplication(ctx context.Context, applicationID string) ([]Event, error)
}

// Publisher writes events to a store, logging failures instead of
// propagating them.
type Publisher struct {
	store  Store
	logger *slog.Logger
}

// Option configures the Publisher.
type Option func(*Publisher)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// NewPublisher creates a best-effort audit publisher.
func NewPublisher(store Store, opts ...Option) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit records an event. A nil publisher or store is a no-op so call sites
// do not need to guard.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if p == nil || p.store == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if err := p.store.Append(ctx, event); err != nil && p.logger != nil {
		p.logger.WarnContext(ctx, "audit event dropped",
			"action", event.Action,
			"application_id", event.ApplicationID,
			"error", err,
		)
	}
}
