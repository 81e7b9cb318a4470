package relay_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/logger"
	"github.com/feral-file/ff-mintgate/internal/mocks"
	"github.com/feral-file/ff-mintgate/internal/relay"
	"github.com/feral-file/ff-mintgate/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testRelayMocks contains all the mocks needed for testing the relay
type testRelayMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
}

// setupTestRelay creates all the mocks for testing
func setupTestRelay(t *testing.T) *testRelayMocks {
	ctrl := gomock.NewController(t)

	return &testRelayMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}
}

// tearDownTestRelay cleans up the test mocks
func tearDownTestRelay(mocks *testRelayMocks) {
	mocks.ctrl.Finish()
}

// buildJournalEvent creates a journal event row for relay tests
func buildJournalEvent(id uint64, eventType domain.EventType, data string) *schema.Event {
	return &schema.Event{
		ID:         id,
		TxSeq:      id,
		TxHash:     "0xtx",
		EventIndex: 0,
		Contract:   "0x00000000000000000000000000000000000000c1",
		EventType:  string(eventType),
		Data:       datatypes.JSON([]byte(data)),
		Timestamp:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// expectedRecord converts a journal event row into the record the relay should publish
func expectedRecord(ev *schema.Event) *domain.EventRecord {
	return &domain.EventRecord{
		ID: ev.ID,
		Event: domain.Event{
			TxHash:    ev.TxHash,
			TxSeq:     ev.TxSeq,
			Index:     ev.EventIndex,
			Contract:  ev.Contract,
			Type:      domain.EventType(ev.EventType),
			Data:      []byte(ev.Data),
			Timestamp: ev.Timestamp,
		},
	}
}

func TestRelay_Run_WithStartAfter(t *testing.T) {
	mocks := setupTestRelay(t)
	defer tearDownTestRelay(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create relay with a configured starting position
	relayInstance := relay.NewRelay(
		mocks.store,
		mocks.publisher,
		relay.Config{
			Consumer:        "jetstream",
			StartAfter:      100,
			BatchSize:       50,
			PollInterval:    time.Second,
			CursorSaveFreq:  10,
			CursorSaveDelay: 5 * time.Second,
		},
		mocks.clock,
	)

	// Mock clock for Now() calls
	now := time.Now()
	mocks.clock.EXPECT().Now().Return(now).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	// Mock store to return no events from the configured position
	mocks.store.
		EXPECT().
		ListEventsAfter(gomock.Any(), uint64(100), 50).
		DoAndReturn(func(ctx context.Context, afterID uint64, limit int) ([]*schema.Event, error) {
			// Cancel context to stop the relay
			cancel()
			return nil, nil
		})

	err := relayInstance.Run(ctx)

	// Should return context canceled error
	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestRelay_Run_WithSavedCursor(t *testing.T) {
	mocks := setupTestRelay(t)
	defer tearDownTestRelay(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create relay with no starting position configured
	relayInstance := relay.NewRelay(
		mocks.store,
		mocks.publisher,
		relay.Config{
			Consumer:        "jetstream",
			StartAfter:      0, // No starting position
			BatchSize:       50,
			PollInterval:    time.Second,
			CursorSaveFreq:  10,
			CursorSaveDelay: 5 * time.Second,
		},
		mocks.clock,
	)

	// Mock clock for Now() calls
	now := time.Now()
	mocks.clock.EXPECT().Now().Return(now).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	// Mock store to return a saved cursor
	mocks.store.
		EXPECT().
		GetEventCursor(gomock.Any(), "jetstream").
		Return(uint64(500), nil)

	// The relay should resume from the saved cursor
	mocks.store.
		EXPECT().
		ListEventsAfter(gomock.Any(), uint64(500), 50).
		DoAndReturn(func(ctx context.Context, afterID uint64, limit int) ([]*schema.Event, error) {
			// Cancel context to stop the relay
			cancel()
			return nil, nil
		})

	err := relayInstance.Run(ctx)

	// Should return context canceled error
	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestRelay_Run_WithNoSavedCursor(t *testing.T) {
	mocks := setupTestRelay(t)
	defer tearDownTestRelay(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create relay with no starting position configured
	relayInstance := relay.NewRelay(
		mocks.store,
		mocks.publisher,
		relay.Config{
			Consumer:        "jetstream",
			StartAfter:      0, // No starting position
			BatchSize:       50,
			PollInterval:    time.Second,
			CursorSaveFreq:  10,
			CursorSaveDelay: 5 * time.Second,
		},
		mocks.clock,
	)

	// Mock clock for Now() calls
	now := time.Now()
	mocks.clock.EXPECT().Now().Return(now).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	// Mock store to return no saved cursor
	mocks.store.
		EXPECT().
		GetEventCursor(gomock.Any(), "jetstream").
		Return(uint64(0), nil)

	// The relay should start from the beginning of the journal
	mocks.store.
		EXPECT().
		ListEventsAfter(gomock.Any(), uint64(0), 50).
		DoAndReturn(func(ctx context.Context, afterID uint64, limit int) ([]*schema.Event, error) {
			// Cancel context to stop the relay
			cancel()
			return nil, nil
		})

	err := relayInstance.Run(ctx)

	// Should return context canceled error
	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestRelay_Run_PublishesBatchInOrder(t *testing.T) {
	mocks := setupTestRelay(t)
	defer tearDownTestRelay(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create relay with cursor save frequency of 2 events
	relayInstance := relay.NewRelay(
		mocks.store,
		mocks.publisher,
		relay.Config{
			Consumer:        "jetstream",
			StartAfter:      0,
			BatchSize:       3,
			PollInterval:    time.Second,
			CursorSaveFreq:  2,
			CursorSaveDelay: 5 * time.Second,
		},
		mocks.clock,
	)

	now := time.Now()
	mocks.clock.EXPECT().Now().Return(now).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	mocks.store.
		EXPECT().
		GetEventCursor(gomock.Any(), "jetstream").
		Return(uint64(0), nil)

	events := []*schema.Event{
		buildJournalEvent(1, domain.EventTypeCollectionMint, `{"caller":"0xabc","quantity":1,"total_cost":"250000000000000000","first_token_number":1,"last_token_number":1}`),
		buildJournalEvent(2, domain.EventTypeNFTTransfer, `{"from":"0x0000000000000000000000000000000000000000","to":"0xabc","token_number":1}`),
		buildJournalEvent(3, domain.EventTypeCollectionPriceChanged, `{"unit_price":"500000000000000000"}`),
	}

	// First poll returns a full batch, second poll stops the relay
	mocks.store.
		EXPECT().
		ListEventsAfter(gomock.Any(), uint64(0), 3).
		Return(events, nil)
	mocks.store.
		EXPECT().
		ListEventsAfter(gomock.Any(), uint64(3), 3).
		DoAndReturn(func(ctx context.Context, afterID uint64, limit int) ([]*schema.Event, error) {
			// Cancel context to stop the relay
			cancel()
			return nil, nil
		})

	// Each event is published in journal order
	gomock.InOrder(
		mocks.publisher.EXPECT().PublishEvent(gomock.Any(), expectedRecord(events[0])).Return(nil),
		mocks.publisher.EXPECT().PublishEvent(gomock.Any(), expectedRecord(events[1])).Return(nil),
		mocks.publisher.EXPECT().PublishEvent(gomock.Any(), expectedRecord(events[2])).Return(nil),
	)

	// With CursorSaveFreq 2 the cursor is saved at event 2 only:
	// event 1: 1 - 0 < 2, event 2: 2 - 0 >= 2 (saves), event 3: 3 - 2 < 2
	mocks.store.
		EXPECT().
		SetEventCursor(gomock.Any(), "jetstream", uint64(2)).
		Return(nil)

	err := relayInstance.Run(ctx)

	// Should return context canceled error
	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestRelay_Run_CursorSaveByFrequency(t *testing.T) {
	mocks := setupTestRelay(t)
	defer tearDownTestRelay(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create relay saving the cursor every 5 events
	relayInstance := relay.NewRelay(
		mocks.store,
		mocks.publisher,
		relay.Config{
			Consumer:        "jetstream",
			StartAfter:      0,
			BatchSize:       3,
			PollInterval:    time.Second,
			CursorSaveFreq:  5,
			CursorSaveDelay: 5 * time.Second,
		},
		mocks.clock,
	)

	now := time.Now()
	mocks.clock.EXPECT().Now().Return(now).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	mocks.store.
		EXPECT().
		GetEventCursor(gomock.Any(), "jetstream").
		Return(uint64(0), nil)

	// Events at IDs 5, 10, 15 should each trigger a save:
	// event 5: 5 - 0 >= 5, event 10: 10 - 5 >= 5, event 15: 15 - 10 >= 5
	events := []*schema.Event{
		buildJournalEvent(5, domain.EventTypeCollectionMint, `{"caller":"0xabc","quantity":1,"total_cost":"250000000000000000","first_token_number":1,"last_token_number":1}`),
		buildJournalEvent(10, domain.EventTypeCollectionMint, `{"caller":"0xdef","quantity":2,"total_cost":"500000000000000000","first_token_number":2,"last_token_number":3}`),
		buildJournalEvent(15, domain.EventTypeCollectionMint, `{"caller":"0xabc","quantity":3,"total_cost":"750000000000000000","first_token_number":4,"last_token_number":6}`),
	}

	mocks.store.
		EXPECT().
		ListEventsAfter(gomock.Any(), uint64(0), 3).
		Return(events, nil)
	mocks.store.
		EXPECT().
		ListEventsAfter(gomock.Any(), uint64(15), 3).
		DoAndReturn(func(ctx context.Context, afterID uint64, limit int) ([]*schema.Event, error) {
			// Cancel context to stop the relay
			cancel()
			return nil, nil
		})

	for _, ev := range events {
		mocks.publisher.
			EXPECT().
			PublishEvent(gomock.Any(), expectedRecord(ev)).
			Return(nil)

		mocks.store.
			EXPECT().
			SetEventCursor(gomock.Any(), "jetstream", ev.ID).
			Return(nil)
	}

	err := relayInstance.Run(ctx)

	// Should return context canceled error
	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestRelay_Run_CursorSaveFailureDoesNotStopRelay(t *testing.T) {
	mocks := setupTestRelay(t)
	defer tearDownTestRelay(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create relay saving the cursor on every event
	relayInstance := relay.NewRelay(
		mocks.store,
		mocks.publisher,
		relay.Config{
			Consumer:        "jetstream",
			StartAfter:      0,
			BatchSize:       2,
			PollInterval:    time.Second,
			CursorSaveFreq:  1,
			CursorSaveDelay: 5 * time.Second,
		},
		mocks.clock,
	)

	now := time.Now()
	mocks.clock.EXPECT().Now().Return(now).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	mocks.store.
		EXPECT().
		GetEventCursor(gomock.Any(), "jetstream").
		Return(uint64(0), nil)

	events := []*schema.Event{
		buildJournalEvent(1, domain.EventTypeCollectionMint, `{"caller":"0xabc","quantity":1,"total_cost":"250000000000000000","first_token_number":1,"last_token_number":1}`),
		buildJournalEvent(2, domain.EventTypeCollectionMint, `{"caller":"0xdef","quantity":1,"total_cost":"250000000000000000","first_token_number":2,"last_token_number":2}`),
	}

	mocks.store.
		EXPECT().
		ListEventsAfter(gomock.Any(), uint64(0), 2).
		Return(events, nil)
	mocks.store.
		EXPECT().
		ListEventsAfter(gomock.Any(), uint64(2), 2).
		DoAndReturn(func(ctx context.Context, afterID uint64, limit int) ([]*schema.Event, error) {
			// Cancel context to stop the relay
			cancel()
			return nil, nil
		})

	mocks.publisher.
		EXPECT().
		PublishEvent(gomock.Any(), expectedRecord(events[0])).
		Return(nil)
	mocks.publisher.
		EXPECT().
		PublishEvent(gomock.Any(), expectedRecord(events[1])).
		Return(nil)

	// The first save fails; the relay keeps publishing and retries on the next event
	mocks.store.
		EXPECT().
		SetEventCursor(gomock.Any(), "jetstream", uint64(1)).
		Return(assert.AnError)
	mocks.store.
		EXPECT().
		SetEventCursor(gomock.Any(), "jetstream", uint64(2)).
		Return(nil)

	err := relayInstance.Run(ctx)

	// Should return context canceled error
	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestRelay_Run_IdlesAtJournalTip(t *testing.T) {
	mocks := setupTestRelay(t)
	defer tearDownTestRelay(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	relayInstance := relay.NewRelay(
		mocks.store,
		mocks.publisher,
		relay.Config{
			Consumer:        "jetstream",
			StartAfter:      7,
			BatchSize:       50,
			PollInterval:    250 * time.Millisecond,
			CursorSaveFreq:  10,
			CursorSaveDelay: 5 * time.Second,
		},
		mocks.clock,
	)

	now := time.Now()
	mocks.clock.EXPECT().Now().Return(now).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	// The idle wait elapses immediately so the relay polls again
	elapsed := make(chan time.Time, 1)
	elapsed <- now
	mocks.clock.
		EXPECT().
		After(250 * time.Millisecond).
		Return(elapsed)

	// First poll finds nothing and idles; the second poll reuses the same
	// position and stops the relay
	mocks.store.
		EXPECT().
		ListEventsAfter(gomock.Any(), uint64(7), 50).
		Return(nil, nil)
	mocks.store.
		EXPECT().
		ListEventsAfter(gomock.Any(), uint64(7), 50).
		DoAndReturn(func(ctx context.Context, afterID uint64, limit int) ([]*schema.Event, error) {
			// Cancel context to stop the relay
			cancel()
			return nil, nil
		})

	err := relayInstance.Run(ctx)

	// Should return context canceled error
	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestRelay_Run_GetEventCursorError(t *testing.T) {
	mocks := setupTestRelay(t)
	defer tearDownTestRelay(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	relayInstance := relay.NewRelay(
		mocks.store,
		mocks.publisher,
		relay.Config{
			Consumer:        "jetstream",
			StartAfter:      0,
			BatchSize:       50,
			PollInterval:    time.Second,
			CursorSaveFreq:  10,
			CursorSaveDelay: 5 * time.Second,
		},
		mocks.clock,
	)

	// Mock store to return error
	mocks.store.
		EXPECT().
		GetEventCursor(gomock.Any(), "jetstream").
		Return(uint64(0), assert.AnError)

	err := relayInstance.Run(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get event cursor")
}

func TestRelay_Run_ListEventsError(t *testing.T) {
	mocks := setupTestRelay(t)
	defer tearDownTestRelay(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	relayInstance := relay.NewRelay(
		mocks.store,
		mocks.publisher,
		relay.Config{
			Consumer:        "jetstream",
			StartAfter:      100,
			BatchSize:       50,
			PollInterval:    time.Second,
			CursorSaveFreq:  10,
			CursorSaveDelay: 5 * time.Second,
		},
		mocks.clock,
	)

	now := time.Now()
	mocks.clock.EXPECT().Now().Return(now).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	// Mock store to return error
	mocks.store.
		EXPECT().
		ListEventsAfter(gomock.Any(), uint64(100), 50).
		Return(nil, assert.AnError)

	err := relayInstance.Run(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list events after 100")
}

func TestRelay_Run_PublishEventError(t *testing.T) {
	mocks := setupTestRelay(t)
	defer tearDownTestRelay(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	relayInstance := relay.NewRelay(
		mocks.store,
		mocks.publisher,
		relay.Config{
			Consumer:        "jetstream",
			StartAfter:      0,
			BatchSize:       50,
			PollInterval:    time.Second,
			CursorSaveFreq:  10,
			CursorSaveDelay: 5 * time.Second,
		},
		mocks.clock,
	)

	now := time.Now()
	mocks.clock.EXPECT().Now().Return(now).AnyTimes()
	mocks.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	mocks.store.
		EXPECT().
		GetEventCursor(gomock.Any(), "jetstream").
		Return(uint64(0), nil)

	event := buildJournalEvent(1, domain.EventTypeCollectionMint, `{"caller":"0xabc","quantity":1,"total_cost":"250000000000000000","first_token_number":1,"last_token_number":1}`)
	mocks.store.
		EXPECT().
		ListEventsAfter(gomock.Any(), uint64(0), 50).
		Return([]*schema.Event{event}, nil)

	// Mock publisher to return error
	mocks.publisher.
		EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	err := relayInstance.Run(ctx)

	// Error should be returned from the poll loop
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event 1")
}

func TestRelay_Close(t *testing.T) {
	mocks := setupTestRelay(t)
	defer tearDownTestRelay(mocks)

	relayInstance := relay.NewRelay(
		mocks.store,
		mocks.publisher,
		relay.Config{
			Consumer:        "jetstream",
			BatchSize:       50,
			PollInterval:    time.Second,
			CursorSaveFreq:  10,
			CursorSaveDelay: 5 * time.Second,
		},
		mocks.clock,
	)

	// Close holds no resources and must not panic
	relayInstance.Close()
}
