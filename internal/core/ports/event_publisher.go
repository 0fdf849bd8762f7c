package ports

import "context"

// EventPublisher emits domain events to the message broker. Publishing is
// best effort from the caller's point of view: services log failures but do
// not fail the request over them.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, event any) error
	Close() error
}
