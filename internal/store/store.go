package store

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/store/schema"
)

// GenesisCommit seeds the store with the genesis document and everything the
// read models need to agree with it: native allocations, installed contracts
// and the token balances minted at genesis.
type GenesisCommit struct {
	// Document is the raw genesis document, stored verbatim for bootstrap
	Document json.RawMessage
	// Balances maps allocation addresses to native balances
	Balances map[string]string
	// Contracts are the contracts installed before the journal starts
	Contracts []GenesisContractSeed
}

// GenesisContractSeed is one genesis contract with the read-model rows it
// implies.
type GenesisContractSeed struct {
	Address string
	Kind    domain.ContractKind
	Owner   string
	Name    string
	Symbol  string
	// TokenHoldings maps holder addresses to fungible balances minted at
	// genesis; empty for collection contracts
	TokenHoldings map[string]string
}

// TransactionQueryFilter narrows transaction listings
type TransactionQueryFilter struct {
	Sender   *string
	Contract *string
	Action   *string
	Status   *string
	Limit    int
	Offset   uint64
	// OrderAsc lists oldest first; the default is newest first
	OrderAsc bool
}

// EventQueryFilter narrows event listings
type EventQueryFilter struct {
	Contract  *string
	EventType *string
	TxHash    *string
	// Since keeps only events stamped after this time
	Since  *time.Time
	Limit  int
	Offset uint64
}

// CollectionTokenQueryFilter narrows collection token listings
type CollectionTokenQueryFilter struct {
	Contract *string
	Owner    *string
	Limit    int
	Offset   uint64
}

// CreateWebhookClientInput contains the data needed to register a webhook client
type CreateWebhookClientInput struct {
	ClientID         string
	WebhookURL       string
	WebhookSecret    string
	EventFilters     datatypes.JSON
	IsActive         bool
	RetryMaxAttempts int
}

// Store defines the interface for database operations
type Store interface {
	// InitGenesis stores the genesis document and seeds the read models in one
	// transaction; it fails with domain.ErrGenesisExists when a document is
	// already stored
	InitGenesis(ctx context.Context, commit *GenesisCommit) error
	// GetGenesis retrieves the stored genesis document, or nil when none exists
	GetGenesis(ctx context.Context) (json.RawMessage, error)
	// CommitTransaction seals one engine commit: the journal row, its events,
	// the touched native balances and every projected read model, atomically
	CommitTransaction(ctx context.Context, commit *domain.TxCommit) error
	// ListTransactionRecords reads journal rows after a sequence number, oldest
	// first, for replay
	ListTransactionRecords(ctx context.Context, afterSeq uint64, limit int) ([]domain.TxRecord, error)
	// GetLastSeq retrieves the highest committed journal sequence, 0 when empty
	GetLastSeq(ctx context.Context) (uint64, error)
	// GetTransactionByHash retrieves a committed transaction and its events,
	// nil when the hash is unknown
	GetTransactionByHash(ctx context.Context, txHash string) (*schema.Transaction, []schema.Event, error)
	// GetTransactionBySeq retrieves a committed transaction and its events,
	// nil when the sequence is unknown
	GetTransactionBySeq(ctx context.Context, seq uint64) (*schema.Transaction, []schema.Event, error)
	// ListTransactions pages committed transactions, newest first unless the
	// filter flips the order
	ListTransactions(ctx context.Context, filter TransactionQueryFilter) ([]*schema.Transaction, uint64, error)
	// ListEvents pages committed events, newest first
	ListEvents(ctx context.Context, filter EventQueryFilter) ([]*schema.Event, uint64, error)
	// ListEventsAfter reads events with an ID greater than the cursor, oldest
	// first; this is the relay feed
	ListEventsAfter(ctx context.Context, afterID uint64, limit int) ([]*schema.Event, error)
	// GetContract retrieves a deployed contract by address, nil when unknown
	GetContract(ctx context.Context, address string) (*schema.Contract, error)
	// ListContracts pages deployed contracts, optionally by kind
	ListContracts(ctx context.Context, kind *string, limit int, offset uint64) ([]*schema.Contract, uint64, error)
	// GetAccountBalance retrieves the native balance of an account, "0" for
	// accounts no transaction ever touched
	GetAccountBalance(ctx context.Context, address string) (string, error)
	// GetTokenBalance retrieves a holder's balance on a token contract, "0"
	// when no row exists
	GetTokenBalance(ctx context.Context, contract, holder string) (string, error)
	// ListTokenBalances pages the holders of one token contract by descending
	// balance
	ListTokenBalances(ctx context.Context, contract string, limit int, offset uint64) ([]*schema.TokenBalance, uint64, error)
	// GetTokenAllowance retrieves a spender allowance, "0" when no row exists
	GetTokenAllowance(ctx context.Context, contract, owner, spender string) (string, error)
	// GetCollectionToken retrieves one minted token by contract and number,
	// nil when it has not been minted
	GetCollectionToken(ctx context.Context, contract string, tokenNumber uint64) (*schema.CollectionToken, error)
	// ListCollectionTokens pages minted tokens by contract and/or owner
	ListCollectionTokens(ctx context.Context, filter CollectionTokenQueryFilter) ([]*schema.CollectionToken, uint64, error)
	// SetKeyValue stores an arbitrary key-value pair
	SetKeyValue(ctx context.Context, key string, value string) error
	// GetKeyValue retrieves a value by key; missing keys return ""
	GetKeyValue(ctx context.Context, key string) (string, error)
	// GetAllKeyValuesByPrefix retrieves all key-value pairs whose key starts
	// with the prefix
	GetAllKeyValuesByPrefix(ctx context.Context, prefix string) (map[string]string, error)
	// GetEventCursor retrieves the last relayed event ID for a consumer, 0 when
	// no cursor exists
	GetEventCursor(ctx context.Context, consumer string) (uint64, error)
	// SetEventCursor stores the last relayed event ID for a consumer
	SetEventCursor(ctx context.Context, consumer string, eventID uint64) error
	// GetActiveWebhookClientsByEventType retrieves active clients subscribed to
	// an event type, wildcard subscriptions included
	GetActiveWebhookClientsByEventType(ctx context.Context, eventType string) ([]*schema.WebhookClient, error)
	// GetWebhookClientByID retrieves a webhook client by its client ID,
	// nil when no such client exists
	GetWebhookClientByID(ctx context.Context, clientID string) (*schema.WebhookClient, error)
	// CreateWebhookClient registers a new webhook client
	CreateWebhookClient(ctx context.Context, input CreateWebhookClientInput) (*schema.WebhookClient, error)
	// CreateWebhookDelivery creates a new webhook delivery record
	CreateWebhookDelivery(ctx context.Context, delivery *schema.WebhookDelivery) error
	// UpdateWebhookDeliveryStatus updates the status of a webhook delivery
	UpdateWebhookDeliveryStatus(ctx context.Context, deliveryID uint64, status schema.WebhookDeliveryStatus, attempts int, responseStatus *int, responseBody, errorMessage string) error
}
