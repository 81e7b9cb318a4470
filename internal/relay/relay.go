package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-mintgate/internal/adapter"
	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/logger"
	"github.com/feral-file/ff-mintgate/internal/messaging"
	"github.com/feral-file/ff-mintgate/internal/store"
	"github.com/feral-file/ff-mintgate/internal/store/schema"
)

// Config holds the configuration for the journal relay
type Config struct {
	Consumer        string        // cursor name the relay saves its progress under
	StartAfter      uint64        // republish events with IDs above this (0 resumes from the cursor)
	BatchSize       int           // events fetched per poll
	PollInterval    time.Duration // idle wait once the journal tip is reached
	CursorSaveFreq  uint64        // Save cursor every N events
	CursorSaveDelay time.Duration // Or save cursor every N seconds
}

// Relay defines the interface for the journal relay
//
//go:generate mockgen -source=relay.go -destination=../mocks/relay.go -package=mocks -mock_names=Relay=MockRelay
type Relay interface {
	// Run starts the journal relay
	Run(ctx context.Context) error
	// Close closes the relay and cleans up resources
	Close()
}

// relay tails the journal event feed and publishes each event to NATS.
// Delivery is at-least-once: the cursor is saved periodically, so a crash
// republishes at most the events since the last save.
type relay struct {
	store     store.Store
	publisher messaging.Publisher
	config    Config
	clock     adapter.Clock
}

// NewRelay creates a new journal relay
func NewRelay(
	st store.Store,
	pub messaging.Publisher,
	cfg Config,
	clock adapter.Clock,
) Relay {
	return &relay{
		store:     st,
		publisher: pub,
		config:    cfg,
		clock:     clock,
	}
}

// Run starts the journal relay
func (r *relay) Run(ctx context.Context) error {
	// Determine starting position
	afterID := r.config.StartAfter
	if afterID == 0 {
		// Get last published event from store
		cursor, err := r.store.GetEventCursor(ctx, r.config.Consumer)
		if err != nil {
			return fmt.Errorf("failed to get event cursor: %w", err)
		}

		if cursor > 0 {
			afterID = cursor
			logger.Info("Resuming from last published event", zap.String("consumer", r.config.Consumer), zap.Uint64("event_id", afterID))
		} else {
			logger.Info("Starting from the beginning of the journal", zap.String("consumer", r.config.Consumer))
		}
	} else {
		logger.Info("Starting from configured event", zap.String("consumer", r.config.Consumer), zap.Uint64("event_id", afterID))
	}

	// Channel for poll loop errors
	errCh := make(chan error, 1)

	// Start tailing the journal
	go func() {
		logger.Info("Starting journal tail", zap.String("consumer", r.config.Consumer))

		lastSavedID := afterID
		lastSaveTime := r.clock.Now()

		for {
			events, err := r.store.ListEventsAfter(ctx, afterID, r.config.BatchSize)
			if err != nil {
				errCh <- fmt.Errorf("failed to list events after %d: %w", afterID, err)
				return
			}

			// Stop between polls once the context is cancelled
			if ctx.Err() != nil {
				return
			}

			for _, ev := range events {
				record := toEventRecord(ev)

				// Publish to NATS
				if err := r.publisher.PublishEvent(ctx, record); err != nil {
					errCh <- fmt.Errorf("failed to publish event %d: %w", record.ID, err)
					return
				}
				afterID = record.ID

				// Save cursor periodically (every N events or N seconds)
				shouldSave := record.ID-lastSavedID >= r.config.CursorSaveFreq ||
					r.clock.Since(lastSaveTime) >= r.config.CursorSaveDelay

				if shouldSave {
					if err := r.store.SetEventCursor(ctx, r.config.Consumer, record.ID); err != nil {
						fmt.Printf("[Relay] Failed to save event cursor: %v\n", err)
					} else {
						lastSavedID = record.ID
						lastSaveTime = r.clock.Now()
					}
				}
			}

			// A short batch means the journal tip is reached; idle before the next poll
			if len(events) < r.config.BatchSize {
				select {
				case <-ctx.Done():
					return
				case <-r.clock.After(r.config.PollInterval):
				}
			}
		}
	}()

	// Wait for error or context cancellation
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes the relay and cleans up resources.
// The relay owns no connections; cancelling Run's context stops the tail loop.
func (r *relay) Close() {}

// toEventRecord converts a journal event row into the published wire format
func toEventRecord(ev *schema.Event) *domain.EventRecord {
	return &domain.EventRecord{
		ID: ev.ID,
		Event: domain.Event{
			TxHash:    ev.TxHash,
			TxSeq:     ev.TxSeq,
			Index:     ev.EventIndex,
			Contract:  ev.Contract,
			Type:      domain.EventType(ev.EventType),
			Data:      json.RawMessage(ev.Data),
			Timestamp: ev.Timestamp,
		},
	}
}
