package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/feral-file/ff-mintgate/internal/store/schema"
)

// CursorStore defines the interface for storing and retrieving event cursors
type CursorStore interface {
	// GetEventCursor retrieves the last relayed event ID for a consumer
	GetEventCursor(ctx context.Context, consumer string) (uint64, error)
	// SetEventCursor stores the last relayed event ID for a consumer
	SetEventCursor(ctx context.Context, consumer string, eventID uint64) error
}

type cursorStore struct {
	db *gorm.DB
}

// NewCursorStore creates a new cursor store
func NewCursorStore(db *gorm.DB) CursorStore {
	return &cursorStore{db: db}
}

// GetEventCursor retrieves the last relayed event ID for a consumer
func (s *cursorStore) GetEventCursor(ctx context.Context, consumer string) (uint64, error) {
	key := fmt.Sprintf("event_cursor:%s", consumer)

	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil // Return 0 if no cursor exists
		}
		return 0, fmt.Errorf("failed to get event cursor: %w", err)
	}

	eventID, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse event cursor: %w", err)
	}

	return eventID, nil
}

// SetEventCursor stores the last relayed event ID for a consumer
func (s *cursorStore) SetEventCursor(ctx context.Context, consumer string, eventID uint64) error {
	key := fmt.Sprintf("event_cursor:%s", consumer)
	value := strconv.FormatUint(eventID, 10)

	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set event cursor: %w", err)
	}

	return nil
}
