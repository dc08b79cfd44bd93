package service

import (
	"context"
)

// Card event types published to the message queue.
const (
	CardEventClickRecorded = "click.recorded"
	CardEventQRLinkPending = "card.qr_link_pending"
)

// CardEvent is the message published when a card changes in a way
// background consumers care about.
type CardEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`
	CardID    string `json:"card_id"`
	UserID    string `json:"user_id,omitempty"`
	ClickType string `json:"click_type,omitempty"`
	TargetURL string `json:"target_url,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCardEvent publishes a card event for async processing
	PublishCardEvent(ctx context.Context, event *CardEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
