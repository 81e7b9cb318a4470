package messaging

import (
	"context"

	"github.com/feral-file/ff-mintgate/internal/domain"
)

// Publisher defines the interface for publishing journal events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a committed journal event to the message broker
	PublishEvent(ctx context.Context, event *domain.EventRecord) error
	// Close closes the connection
	Close()
	// CloseChan returns a channel that is closed when the publisher is closed
	CloseChan() <-chan struct{}
}
