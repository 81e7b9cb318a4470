package executor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-mintgate/internal/api/shared/constants"
	"github.com/feral-file/ff-mintgate/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-mintgate/internal/api/shared/errors"
	"github.com/feral-file/ff-mintgate/internal/api/shared/types"
	"github.com/feral-file/ff-mintgate/internal/contract"
	"github.com/feral-file/ff-mintgate/internal/contract/collection"
	"github.com/feral-file/ff-mintgate/internal/contract/fungible"
	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/engine"
	"github.com/feral-file/ff-mintgate/internal/store"
	internalTypes "github.com/feral-file/ff-mintgate/internal/types"
	"github.com/feral-file/ff-mintgate/internal/uri"
)

// Engine is the slice of the transaction engine the API needs: synchronous
// submission, nonce lookup and read-only state snapshots
type Engine interface {
	// Submit admits, executes and commits one signed envelope
	Submit(ctx context.Context, tx *engine.Tx) (*domain.Receipt, error)
	// NextNonce returns the nonce the address's next envelope must carry
	NextNonce(address common.Address) uint64
	// View runs fn against a consistent read-only state snapshot
	View(fn func(db contract.StateDB))
}

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// SubmitTransaction submits a signed envelope and returns its receipt
	SubmitTransaction(ctx context.Context, req *dto.SubmitTransactionRequest) (*dto.ReceiptResponse, error)

	// GetTransaction retrieves a committed transaction and its events by hash
	GetTransaction(ctx context.Context, txHash string) (*dto.TransactionResponse, error)

	// GetTransactions retrieves committed transactions with optional filters
	GetTransactions(ctx context.Context, sender, contractAddress, action, status *string, order *types.Order, limit *int, offset *uint64) (*dto.TransactionListResponse, error)

	// GetEvents retrieves committed events with optional filters
	GetEvents(ctx context.Context, contractAddress, eventType, txHash *string, since *time.Time, limit *int, offset *uint64) (*dto.EventListResponse, error)

	// GetAccount retrieves an account's native balance and next nonce
	GetAccount(ctx context.Context, address string) (*dto.AccountResponse, error)

	// GetContracts retrieves deployed contracts, optionally by kind
	GetContracts(ctx context.Context, kind *string, limit *int, offset *uint64) (*dto.ContractListResponse, error)

	// GetContract retrieves a deployed contract with its live state
	GetContract(ctx context.Context, address string) (*dto.ContractResponse, error)

	// GetCollectionTokens retrieves minted tokens of a collection
	GetCollectionTokens(ctx context.Context, contractAddress string, owner *string, limit *int, offset *uint64) (*dto.CollectionTokenListResponse, error)

	// GetCollectionToken retrieves one minted token by contract and number
	GetCollectionToken(ctx context.Context, contractAddress string, tokenNumber uint64) (*dto.CollectionTokenResponse, error)

	// GetTokenMetadata resolves a token's URI and fetches its metadata document
	GetTokenMetadata(ctx context.Context, contractAddress string, tokenNumber uint64) (json.RawMessage, error)

	// GetTokenBalance retrieves a holder's balance on a token contract
	GetTokenBalance(ctx context.Context, contractAddress, holder string) (*dto.TokenBalanceResponse, error)

	// GetTokenAllowance retrieves a spender allowance on a token contract
	GetTokenAllowance(ctx context.Context, contractAddress, owner, spender string) (*dto.AllowanceResponse, error)

	// CreateWebhookClient registers a webhook client and issues its secret
	CreateWebhookClient(ctx context.Context, webhookURL string, eventFilters []string, retryMaxAttempts *int) (*dto.CreateWebhookClientResponse, error)
}

type executor struct {
	store    store.Store
	engine   Engine
	metadata uri.MetadataFetcher
}

func NewExecutor(store store.Store, engine Engine, metadata uri.MetadataFetcher) Executor {
	return &executor{store: store, engine: engine, metadata: metadata}
}

func (e *executor) SubmitTransaction(ctx context.Context, req *dto.SubmitTransactionRequest) (*dto.ReceiptResponse, error) {
	// The envelope is passed through verbatim: the signature covers the
	// canonicalized request fields, so rewriting any of them here would
	// invalidate it
	tx := &engine.Tx{
		Action:    domain.ActionType(req.Action),
		Contract:  req.Contract,
		Params:    req.Params,
		Value:     req.Value,
		Nonce:     req.Nonce,
		Signature: req.Signature,
	}

	receipt, err := e.engine.Submit(ctx, tx)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSenderDenied):
			return nil, apierrors.NewForbiddenError(err.Error())
		case errors.Is(err, domain.ErrInvalidSignature),
			errors.Is(err, domain.ErrInvalidNonce),
			errors.Is(err, domain.ErrInvalidValue),
			errors.Is(err, domain.ErrInvalidAddress),
			errors.Is(err, domain.ErrUnknownAction):
			return nil, apierrors.NewValidationError(err.Error())
		default:
			return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to submit transaction: %v", err))
		}
	}

	return dto.MapReceiptToDTO(receipt), nil
}

func (e *executor) GetTransaction(ctx context.Context, txHash string) (*dto.TransactionResponse, error) {
	tx, events, err := e.store.GetTransactionByHash(ctx, txHash)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get transaction: %v", err))
	}

	if tx == nil {
		return nil, nil
	}

	txDTO := dto.MapTransactionToDTO(tx)
	txDTO.Events = make([]dto.EventResponse, len(events))
	for i := range events {
		txDTO.Events[i] = *dto.MapEventToDTO(&events[i])
	}

	return txDTO, nil
}

func (e *executor) GetTransactions(ctx context.Context, sender, contractAddress, action, status *string, order *types.Order, limit *int, offset *uint64) (*dto.TransactionListResponse, error) {
	// Use defaults if not provided
	if limit == nil {
		defaultLimit := constants.DEFAULT_LIMIT
		limit = &defaultLimit
	}
	if offset == nil {
		defaultOffset := constants.DEFAULT_OFFSET
		offset = &defaultOffset
	}

	// Build filter
	filter := store.TransactionQueryFilter{
		Sender:   sender,
		Contract: contractAddress,
		Action:   action,
		Status:   status,
		Limit:    *limit,
		Offset:   *offset,
		OrderAsc: order != nil && order.Asc(),
	}

	results, total, err := e.store.ListTransactions(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get transactions: %v", err))
	}

	// Map to DTOs
	txDTOs := make([]dto.TransactionResponse, len(results))
	for i, result := range results {
		txDTOs[i] = *dto.MapTransactionToDTO(result)
	}

	// Build response with pagination
	var nextOffset *uint64
	if *offset+uint64(len(results)) < total { //nolint:gosec,G115
		offsetVal := *offset + uint64(len(results))
		nextOffset = &offsetVal
	}

	return &dto.TransactionListResponse{
		Transactions: txDTOs,
		Offset:       nextOffset,
		Total:        total,
	}, nil
}

func (e *executor) GetEvents(ctx context.Context, contractAddress, eventType, txHash *string, since *time.Time, limit *int, offset *uint64) (*dto.EventListResponse, error) {
	// Use defaults if not provided
	if limit == nil {
		defaultLimit := constants.DEFAULT_LIMIT
		limit = &defaultLimit
	}
	if offset == nil {
		defaultOffset := constants.DEFAULT_OFFSET
		offset = &defaultOffset
	}

	// Build filter
	filter := store.EventQueryFilter{
		Contract:  contractAddress,
		EventType: eventType,
		TxHash:    txHash,
		Since:     since,
		Limit:     *limit,
		Offset:    *offset,
	}

	results, total, err := e.store.ListEvents(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get events: %v", err))
	}

	// Map to DTOs
	eventDTOs := make([]dto.EventResponse, len(results))
	for i, result := range results {
		eventDTOs[i] = *dto.MapEventToDTO(result)
	}

	// Build response with pagination
	var nextOffset *uint64
	if *offset+uint64(len(results)) < total { //nolint:gosec,G115
		offsetVal := *offset + uint64(len(results))
		nextOffset = &offsetVal
	}

	return &dto.EventListResponse{
		Events: eventDTOs,
		Offset: nextOffset,
		Total:  total,
	}, nil
}

func (e *executor) GetAccount(ctx context.Context, address string) (*dto.AccountResponse, error) {
	balance, err := e.store.GetAccountBalance(ctx, address)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get account balance: %v", err))
	}

	// The nonce comes from the engine, not the store: it must reflect every
	// committed envelope, failed ones included
	nonce := e.engine.NextNonce(common.HexToAddress(address))

	return &dto.AccountResponse{
		Address: domain.NormalizeAddress(address),
		Balance: balance,
		Nonce:   nonce,
	}, nil
}

func (e *executor) GetContracts(ctx context.Context, kind *string, limit *int, offset *uint64) (*dto.ContractListResponse, error) {
	// Use defaults if not provided
	if limit == nil {
		defaultLimit := constants.DEFAULT_LIMIT
		limit = &defaultLimit
	}
	if offset == nil {
		defaultOffset := constants.DEFAULT_OFFSET
		offset = &defaultOffset
	}

	results, total, err := e.store.ListContracts(ctx, kind, *limit, *offset)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get contracts: %v", err))
	}

	// Map to DTOs
	contractDTOs := make([]dto.ContractResponse, len(results))
	for i, result := range results {
		contractDTOs[i] = *dto.MapContractToDTO(result)
	}

	// Fill live state for every row under one snapshot
	e.engine.View(func(db contract.StateDB) {
		for i := range contractDTOs {
			fillContractState(db, &contractDTOs[i])
		}
	})

	// Build response with pagination
	var nextOffset *uint64
	if *offset+uint64(len(results)) < total { //nolint:gosec,G115
		offsetVal := *offset + uint64(len(results))
		nextOffset = &offsetVal
	}

	return &dto.ContractListResponse{
		Contracts: contractDTOs,
		Offset:    nextOffset,
		Total:     total,
	}, nil
}

func (e *executor) GetContract(ctx context.Context, address string) (*dto.ContractResponse, error) {
	result, err := e.store.GetContract(ctx, address)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get contract: %v", err))
	}

	if result == nil {
		return nil, nil
	}

	contractDTO := dto.MapContractToDTO(result)
	e.engine.View(func(db contract.StateDB) {
		fillContractState(db, contractDTO)
	})

	return contractDTO, nil
}

func (e *executor) GetCollectionTokens(ctx context.Context, contractAddress string, owner *string, limit *int, offset *uint64) (*dto.CollectionTokenListResponse, error) {
	// Use defaults if not provided
	if limit == nil {
		defaultLimit := constants.DEFAULT_LIMIT
		limit = &defaultLimit
	}
	if offset == nil {
		defaultOffset := constants.DEFAULT_OFFSET
		offset = &defaultOffset
	}

	// Build filter
	filter := store.CollectionTokenQueryFilter{
		Contract: internalTypes.StringPtr(contractAddress),
		Owner:    owner,
		Limit:    *limit,
		Offset:   *offset,
	}

	results, total, err := e.store.ListCollectionTokens(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get collection tokens: %v", err))
	}

	// Map to DTOs
	tokenDTOs := make([]dto.CollectionTokenResponse, len(results))
	for i, result := range results {
		tokenDTOs[i] = *dto.MapCollectionTokenToDTO(result)
	}

	// Token URIs are computed from live state so base URI updates apply
	// to already minted tokens
	e.engine.View(func(db contract.StateDB) {
		addr := common.HexToAddress(contractAddress)
		for i := range tokenDTOs {
			if tokenURI, uriErr := collection.TokenURI(db, addr, tokenDTOs[i].TokenNumber); uriErr == nil {
				tokenDTOs[i].TokenURI = tokenURI
			}
		}
	})

	// Build response with pagination
	var nextOffset *uint64
	if *offset+uint64(len(results)) < total { //nolint:gosec,G115
		offsetVal := *offset + uint64(len(results))
		nextOffset = &offsetVal
	}

	return &dto.CollectionTokenListResponse{
		Tokens: tokenDTOs,
		Offset: nextOffset,
		Total:  total,
	}, nil
}

func (e *executor) GetCollectionToken(ctx context.Context, contractAddress string, tokenNumber uint64) (*dto.CollectionTokenResponse, error) {
	result, err := e.store.GetCollectionToken(ctx, contractAddress, tokenNumber)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get collection token: %v", err))
	}

	if result == nil {
		return nil, nil
	}

	tokenDTO := dto.MapCollectionTokenToDTO(result)
	e.engine.View(func(db contract.StateDB) {
		if tokenURI, uriErr := collection.TokenURI(db, common.HexToAddress(contractAddress), tokenNumber); uriErr == nil {
			tokenDTO.TokenURI = tokenURI
		}
	})

	return tokenDTO, nil
}

func (e *executor) GetTokenMetadata(ctx context.Context, contractAddress string, tokenNumber uint64) (json.RawMessage, error) {
	result, err := e.store.GetCollectionToken(ctx, contractAddress, tokenNumber)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get collection token: %v", err))
	}

	if result == nil {
		return nil, nil
	}

	var tokenURI string
	var uriErr error
	e.engine.View(func(db contract.StateDB) {
		tokenURI, uriErr = collection.TokenURI(db, common.HexToAddress(contractAddress), tokenNumber)
	})
	if uriErr != nil {
		return nil, apierrors.NewNotFoundError(fmt.Sprintf("Failed to resolve token URI: %v", uriErr))
	}
	if tokenURI == "" {
		return nil, apierrors.NewNotFoundError("token URI not set")
	}

	document, err := e.metadata.Fetch(ctx, tokenURI)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to fetch metadata: %v", err))
	}

	return document, nil
}

func (e *executor) GetTokenBalance(ctx context.Context, contractAddress, holder string) (*dto.TokenBalanceResponse, error) {
	balance, err := e.store.GetTokenBalance(ctx, contractAddress, holder)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get token balance: %v", err))
	}

	return &dto.TokenBalanceResponse{
		Contract: domain.NormalizeAddress(contractAddress),
		Holder:   domain.NormalizeAddress(holder),
		Balance:  balance,
	}, nil
}

func (e *executor) GetTokenAllowance(ctx context.Context, contractAddress, owner, spender string) (*dto.AllowanceResponse, error) {
	allowance, err := e.store.GetTokenAllowance(ctx, contractAddress, owner, spender)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get token allowance: %v", err))
	}

	return &dto.AllowanceResponse{
		Contract:  domain.NormalizeAddress(contractAddress),
		Owner:     domain.NormalizeAddress(owner),
		Spender:   domain.NormalizeAddress(spender),
		Allowance: allowance,
	}, nil
}

func (e *executor) CreateWebhookClient(ctx context.Context, webhookURL string, eventFilters []string, retryMaxAttempts *int) (*dto.CreateWebhookClientResponse, error) {
	clientID, err := internalTypes.GenerateUUID()
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to generate client ID: %v", err))
	}

	// The secret is hex-encoded; delivery signing decodes it back to raw
	// bytes for the HMAC key
	secret, err := internalTypes.GenerateSecureToken(constants.WEBHOOK_SECRET_BYTES)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to generate webhook secret: %v", err))
	}

	filtersJSON, err := json.Marshal(eventFilters)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to encode event filters: %v", err))
	}

	retry := constants.DEFAULT_RETRY_MAX_ATTEMPTS
	if retryMaxAttempts != nil && *retryMaxAttempts > 0 {
		retry = *retryMaxAttempts
	}

	client, err := e.store.CreateWebhookClient(ctx, store.CreateWebhookClientInput{
		ClientID:         clientID,
		WebhookURL:       webhookURL,
		WebhookSecret:    secret,
		EventFilters:     filtersJSON,
		IsActive:         true,
		RetryMaxAttempts: retry,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create webhook client: %v", err))
	}

	return &dto.CreateWebhookClientResponse{
		ClientID:         client.ClientID,
		WebhookURL:       client.WebhookURL,
		WebhookSecret:    client.WebhookSecret,
		EventFilters:     eventFilters,
		IsActive:         client.IsActive,
		RetryMaxAttempts: client.RetryMaxAttempts,
		CreatedAt:        client.CreatedAt,
		UpdatedAt:        client.UpdatedAt,
	}, nil
}

// fillContractState reads the live state of a contract into its DTO,
// keyed by the registry kind
func fillContractState(db contract.StateDB, c *dto.ContractResponse) {
	addr := common.HexToAddress(c.Address)

	switch c.Kind {
	case string(domain.KindToken):
		c.Token = &dto.TokenStateResponse{
			Decimals:    fungible.Decimals(db, addr),
			TotalSupply: domain.FormatAmount(fungible.TotalSupply(db, addr)),
		}
	case string(domain.KindCollection):
		c.Collection = &dto.CollectionStateResponse{
			UnitPrice:         domain.FormatAmount(collection.UnitPrice(db, addr)),
			MaxSupply:         collection.MaxSupply(db, addr),
			AbsoluteMaxSupply: collection.AbsoluteMaxSupply(db, addr),
			TotalMinted:       collection.TotalMinted(db, addr),
			RemainingSupply:   collection.RemainingSupply(db, addr),
			Paused:            contract.Paused(db, addr),
			BaseURI:           collection.BaseURI(db, addr),
			URILocked:         collection.URILocked(db, addr),
			ShardSize:         collection.ShardSize(db, addr),
			Treasury:          collection.Treasury(db, addr).Hex(),
			Balance:           domain.FormatAmount(db.GetBalance(addr)),
		}
	}
}
