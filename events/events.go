// Package events publishes restaurant change notifications for downstream
// consumers such as realtime gateways.
package events

import (
	"context"
	"time"
)

const EntityRestaurant = "restaurant"

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event is the JSON envelope written for every change.
type Event struct {
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId"`
	Topic      string            `json:"topic"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// NewEvent builds an event for entity/action with the conventional "<entity>.<action>" topic.
func NewEvent(entity, action, resourceID string, data any) Event {
	return Event{
		Entity:     entity,
		Action:     action,
		ResourceID: resourceID,
		Topic:      entity + "." + action,
		Data:       data,
		Timestamp:  time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
	Close() error
}

// NopPublisher discards events. It is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }
