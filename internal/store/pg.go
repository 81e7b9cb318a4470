package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/store/schema"
)

// genesisKey is the key_value_store key the genesis document lives under.
const genesisKey = "genesis"

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	// Set defaults if not provided
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// InitGenesis stores the genesis document and seeds the read models so they
// agree with the pre-journal world state
func (s *pgStore) InitGenesis(ctx context.Context, commit *GenesisCommit) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Refuse to initialize twice
		var existing schema.KeyValueStore
		err := tx.Where("key = ?", genesisKey).First(&existing).Error
		if err == nil {
			return domain.ErrGenesisExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check genesis: %w", err)
		}

		// 2. Store the document verbatim
		kv := schema.KeyValueStore{
			Key:   genesisKey,
			Value: string(commit.Document),
		}
		if err := tx.Create(&kv).Error; err != nil {
			return fmt.Errorf("failed to store genesis document: %w", err)
		}

		// 3. Seed the native allocations
		for address, balance := range commit.Balances {
			row := schema.AccountBalance{
				Address: address,
				Balance: balance,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to seed account balance: %w", err)
			}
		}

		// 4. Register the genesis contracts and their implied token holdings
		for _, seed := range commit.Contracts {
			contract := schema.Contract{
				Address: seed.Address,
				Kind:    string(seed.Kind),
				Owner:   seed.Owner,
				Name:    seed.Name,
				Symbol:  seed.Symbol,
			}
			if err := tx.Create(&contract).Error; err != nil {
				return fmt.Errorf("failed to register genesis contract: %w", err)
			}
			for holder, balance := range seed.TokenHoldings {
				row := schema.TokenBalance{
					Contract: seed.Address,
					Holder:   holder,
					Balance:  balance,
				}
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("failed to seed token balance: %w", err)
				}
			}
		}

		return nil
	})
}

// GetGenesis retrieves the stored genesis document, or nil when none exists
func (s *pgStore) GetGenesis(ctx context.Context) (json.RawMessage, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", genesisKey).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get genesis: %w", err)
	}
	return json.RawMessage(kv.Value), nil
}

// CommitTransaction seals one engine commit atomically
func (s *pgStore) CommitTransaction(ctx context.Context, commit *domain.TxCommit) error {
	receipt := commit.Receipt
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Append the journal row
		row := schema.Transaction{
			Seq:       receipt.Seq,
			TxHash:    receipt.TxHash,
			Action:    string(receipt.Action),
			Sender:    receipt.From,
			Contract:  receipt.Contract,
			Value:     receipt.Value,
			Nonce:     receipt.Nonce,
			Status:    schema.TxStatus(receipt.Status),
			Reason:    receipt.Reason,
			Envelope:  datatypes.JSON(commit.Envelope),
			Timestamp: receipt.Timestamp,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to append journal row: %w", err)
		}

		// 2. Store the emitted events in emission order
		if len(receipt.Events) > 0 {
			events := make([]schema.Event, 0, len(receipt.Events))
			for _, event := range receipt.Events {
				events = append(events, schema.Event{
					TxSeq:      event.TxSeq,
					TxHash:     event.TxHash,
					EventIndex: event.Index,
					Contract:   event.Contract,
					EventType:  string(event.Type),
					Data:       datatypes.JSON(event.Data),
					Timestamp:  event.Timestamp,
				})
			}
			if err := tx.Create(&events).Error; err != nil {
				return fmt.Errorf("failed to store events: %w", err)
			}
		}

		// 3. Upsert the touched native balances at their final values
		for address, balance := range commit.Balances {
			account := schema.AccountBalance{
				Address:      address,
				Balance:      balance,
				UpdatedAtSeq: receipt.Seq,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "address"}},
				DoUpdates: clause.AssignmentColumns([]string{"balance", "updated_at_seq", "updated_at"}),
			}).Create(&account).Error; err != nil {
				return fmt.Errorf("failed to upsert account balance: %w", err)
			}
		}

		// 4. Project the read models from the semantic events
		if receipt.Succeeded() {
			if err := s.projectTransaction(tx, commit); err != nil {
				return err
			}
		}

		return nil
	})
}

// ListTransactionRecords reads journal rows after a sequence number, oldest first
func (s *pgStore) ListTransactionRecords(ctx context.Context, afterSeq uint64, limit int) ([]domain.TxRecord, error) {
	var rows []schema.Transaction
	err := s.db.WithContext(ctx).
		Where("seq > ?", afterSeq).
		Order("seq ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list journal rows: %w", err)
	}

	records := make([]domain.TxRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.TxRecord{
			Seq:       row.Seq,
			TxHash:    row.TxHash,
			Envelope:  json.RawMessage(row.Envelope),
			Status:    domain.TxStatus(row.Status),
			Reason:    row.Reason,
			Timestamp: row.Timestamp,
		})
	}
	return records, nil
}

// GetLastSeq retrieves the highest committed journal sequence, 0 when empty
func (s *pgStore) GetLastSeq(ctx context.Context) (uint64, error) {
	var seq *uint64
	err := s.db.WithContext(ctx).
		Model(&schema.Transaction{}).
		Select("MAX(seq)").
		Scan(&seq).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get last seq: %w", err)
	}
	if seq == nil {
		return 0, nil
	}
	return *seq, nil
}

// GetTransactionByHash retrieves a committed transaction and its events,
// nil when the hash is unknown
func (s *pgStore) GetTransactionByHash(ctx context.Context, txHash string) (*schema.Transaction, []schema.Event, error) {
	var row schema.Transaction
	err := s.db.WithContext(ctx).Where("tx_hash = ?", txHash).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	events, err := s.transactionEvents(ctx, row.Seq)
	if err != nil {
		return nil, nil, err
	}
	return &row, events, nil
}

// GetTransactionBySeq retrieves a committed transaction and its events,
// nil when the sequence is unknown
func (s *pgStore) GetTransactionBySeq(ctx context.Context, seq uint64) (*schema.Transaction, []schema.Event, error) {
	var row schema.Transaction
	err := s.db.WithContext(ctx).Where("seq = ?", seq).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	events, err := s.transactionEvents(ctx, seq)
	if err != nil {
		return nil, nil, err
	}
	return &row, events, nil
}

func (s *pgStore) transactionEvents(ctx context.Context, seq uint64) ([]schema.Event, error) {
	var events []schema.Event
	err := s.db.WithContext(ctx).
		Where("tx_seq = ?", seq).
		Order("event_index ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction events: %w", err)
	}
	return events, nil
}

// ListTransactions pages committed transactions, newest first
func (s *pgStore) ListTransactions(ctx context.Context, filter TransactionQueryFilter) ([]*schema.Transaction, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Transaction{})
	if filter.Sender != nil {
		query = query.Where("sender = ?", *filter.Sender)
	}
	if filter.Contract != nil {
		query = query.Where("contract = ?", *filter.Contract)
	}
	if filter.Action != nil {
		query = query.Where("action = ?", *filter.Action)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	order := "seq DESC"
	if filter.OrderAsc {
		order = "seq ASC"
	}

	var rows []*schema.Transaction
	err := query.
		Order(order).
		Limit(filter.Limit).
		Offset(int(filter.Offset)). //nolint:gosec
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return rows, uint64(total), nil //nolint:gosec
}

// ListEvents pages committed events, newest first
func (s *pgStore) ListEvents(ctx context.Context, filter EventQueryFilter) ([]*schema.Event, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Event{})
	if filter.Contract != nil {
		query = query.Where("contract = ?", *filter.Contract)
	}
	if filter.EventType != nil {
		query = query.Where("event_type = ?", *filter.EventType)
	}
	if filter.TxHash != nil {
		query = query.Where("tx_hash = ?", *filter.TxHash)
	}
	if filter.Since != nil {
		query = query.Where("timestamp > ?", *filter.Since)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	var rows []*schema.Event
	err := query.
		Order("id DESC").
		Limit(filter.Limit).
		Offset(int(filter.Offset)). //nolint:gosec
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	return rows, uint64(total), nil //nolint:gosec
}

// ListEventsAfter reads events with an ID greater than the cursor, oldest first
func (s *pgStore) ListEventsAfter(ctx context.Context, afterID uint64, limit int) ([]*schema.Event, error) {
	var rows []*schema.Event
	err := s.db.WithContext(ctx).
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list events after cursor: %w", err)
	}
	return rows, nil
}

// GetContract retrieves a deployed contract by address, nil when unknown
func (s *pgStore) GetContract(ctx context.Context, address string) (*schema.Contract, error) {
	var row schema.Contract
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	return &row, nil
}

// ListContracts pages deployed contracts, optionally by kind
func (s *pgStore) ListContracts(ctx context.Context, kind *string, limit int, offset uint64) ([]*schema.Contract, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Contract{})
	if kind != nil {
		query = query.Where("kind = ?", *kind)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contracts: %w", err)
	}

	var rows []*schema.Contract
	err := query.
		Order("created_at ASC, address ASC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contracts: %w", err)
	}
	return rows, uint64(total), nil //nolint:gosec
}

// GetAccountBalance retrieves the native balance of an account
func (s *pgStore) GetAccountBalance(ctx context.Context, address string) (string, error) {
	var row schema.AccountBalance
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "0", nil
		}
		return "", fmt.Errorf("failed to get account balance: %w", err)
	}
	return row.Balance, nil
}

// GetTokenBalance retrieves a holder's balance on a token contract
func (s *pgStore) GetTokenBalance(ctx context.Context, contract, holder string) (string, error) {
	var row schema.TokenBalance
	err := s.db.WithContext(ctx).
		Where("contract = ? AND holder = ?", contract, holder).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "0", nil
		}
		return "", fmt.Errorf("failed to get token balance: %w", err)
	}
	return row.Balance, nil
}

// ListTokenBalances pages the holders of one token contract by descending balance
func (s *pgStore) ListTokenBalances(ctx context.Context, contract string, limit int, offset uint64) ([]*schema.TokenBalance, uint64, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.TokenBalance{}).
		Where("contract = ?", contract)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count token balances: %w", err)
	}

	var rows []*schema.TokenBalance
	err := query.
		Order("balance DESC, holder ASC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list token balances: %w", err)
	}
	return rows, uint64(total), nil //nolint:gosec
}

// GetTokenAllowance retrieves a spender allowance
func (s *pgStore) GetTokenAllowance(ctx context.Context, contract, owner, spender string) (string, error) {
	var row schema.TokenAllowance
	err := s.db.WithContext(ctx).
		Where("contract = ? AND owner = ? AND spender = ?", contract, owner, spender).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "0", nil
		}
		return "", fmt.Errorf("failed to get token allowance: %w", err)
	}
	return row.Amount, nil
}

// GetCollectionToken retrieves one minted token by contract and number,
// nil when it has not been minted
func (s *pgStore) GetCollectionToken(ctx context.Context, contract string, tokenNumber uint64) (*schema.CollectionToken, error) {
	var row schema.CollectionToken
	err := s.db.WithContext(ctx).
		Where("contract = ? AND token_number = ?", contract, tokenNumber).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection token: %w", err)
	}
	return &row, nil
}

// ListCollectionTokens pages minted tokens by contract and/or owner
func (s *pgStore) ListCollectionTokens(ctx context.Context, filter CollectionTokenQueryFilter) ([]*schema.CollectionToken, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.CollectionToken{})
	if filter.Contract != nil {
		query = query.Where("contract = ?", *filter.Contract)
	}
	if filter.Owner != nil {
		query = query.Where("owner = ?", *filter.Owner)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count collection tokens: %w", err)
	}

	var rows []*schema.CollectionToken
	err := query.
		Order("contract ASC, token_number ASC").
		Limit(filter.Limit).
		Offset(int(filter.Offset)). //nolint:gosec
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list collection tokens: %w", err)
	}
	return rows, uint64(total), nil //nolint:gosec
}

// SetKeyValue stores an arbitrary key-value pair
func (s *pgStore) SetKeyValue(ctx context.Context, key string, value string) error {
	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}
	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set key value: %w", err)
	}
	return nil
}

// GetKeyValue retrieves a value by key; missing keys return ""
func (s *pgStore) GetKeyValue(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get key value: %w", err)
	}
	return kv.Value, nil
}

// GetAllKeyValuesByPrefix retrieves all key-value pairs whose key starts with the prefix
func (s *pgStore) GetAllKeyValuesByPrefix(ctx context.Context, prefix string) (map[string]string, error) {
	var kvs []schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key LIKE ?", prefix+"%").Find(&kvs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get key-values by prefix: %w", err)
	}

	result := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		result[kv.Key] = kv.Value
	}

	return result, nil
}

// GetEventCursor retrieves the last relayed event ID for a consumer
func (s *pgStore) GetEventCursor(ctx context.Context, consumer string) (uint64, error) {
	key := fmt.Sprintf("event_cursor:%s", consumer)

	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
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
func (s *pgStore) SetEventCursor(ctx context.Context, consumer string, eventID uint64) error {
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

// GetActiveWebhookClientsByEventType retrieves active webhook clients that match the given event type
func (s *pgStore) GetActiveWebhookClientsByEventType(ctx context.Context, eventType string) ([]*schema.WebhookClient, error) {
	var clients []*schema.WebhookClient

	// Query for active clients where event_filters contains the event type or wildcard "*"
	// Using JSONB containment operator @> to check if the array contains the value
	err := s.db.WithContext(ctx).
		Where("is_active").
		Where("event_filters @> ?::jsonb OR event_filters @> ?::jsonb",
			fmt.Sprintf(`["%s"]`, eventType),
			`["*"]`).
		Find(&clients).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get webhook clients by event type: %w", err)
	}

	return clients, nil
}

// GetWebhookClientByID retrieves a webhook client by client ID
func (s *pgStore) GetWebhookClientByID(ctx context.Context, clientID string) (*schema.WebhookClient, error) {
	var client schema.WebhookClient
	err := s.db.WithContext(ctx).Where("client_id = ?", clientID).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get webhook client: %w", err)
	}
	return &client, nil
}

// CreateWebhookClient registers a new webhook client
func (s *pgStore) CreateWebhookClient(ctx context.Context, input CreateWebhookClientInput) (*schema.WebhookClient, error) {
	now := time.Now()
	client := &schema.WebhookClient{
		ClientID:         input.ClientID,
		WebhookURL:       input.WebhookURL,
		WebhookSecret:    input.WebhookSecret,
		EventFilters:     input.EventFilters,
		IsActive:         input.IsActive,
		RetryMaxAttempts: input.RetryMaxAttempts,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err := s.db.WithContext(ctx).Create(client).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook client: %w", err)
	}
	return client, nil
}

// CreateWebhookDelivery creates a new webhook delivery record
func (s *pgStore) CreateWebhookDelivery(ctx context.Context, delivery *schema.WebhookDelivery) error {
	err := s.db.WithContext(ctx).Create(delivery).Error
	if err != nil {
		return fmt.Errorf("failed to create webhook delivery: %w", err)
	}
	return nil
}

// UpdateWebhookDeliveryStatus updates the status of a webhook delivery
func (s *pgStore) UpdateWebhookDeliveryStatus(ctx context.Context, deliveryID uint64, status schema.WebhookDeliveryStatus, attempts int, responseStatus *int, responseBody, errorMessage string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"delivery_status": status,
		"attempts":        attempts,
		"last_attempt_at": &now,
		"response_body":   responseBody,
		"error_message":   errorMessage,
		"updated_at":      now,
	}
	if responseStatus != nil {
		updates["response_status"] = *responseStatus
	}

	err := s.db.WithContext(ctx).
		Model(&schema.WebhookDelivery{}).
		Where("id = ?", deliveryID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update webhook delivery: %w", err)
	}
	return nil
}
