package rest

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-mintgate/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-mintgate/internal/api/shared/errors"
	"github.com/feral-file/ff-mintgate/internal/api/shared/executor"
	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/ratelimit"
)

// scopeSubmit is the rate limiter scope covering envelope submission
const scopeSubmit = "submit"

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// SubmitTransaction submits a signed envelope and returns its receipt
	// POST /api/v1/transactions
	SubmitTransaction(c *gin.Context)

	// GetTransaction retrieves a committed transaction by hash
	// GET /api/v1/transactions/:hash
	GetTransaction(c *gin.Context)

	// ListTransactions retrieves committed transactions with optional filters
	// GET /api/v1/transactions?sender=<address>&contract=<address>&action=<action>&status=<status>&order=<order>&limit=<limit>&offset=<offset>
	ListTransactions(c *gin.Context)

	// ListEvents retrieves committed events with optional filters
	// GET /api/v1/events?contract=<address>&type=<type>&tx_hash=<hash>&since=<timestamp>&limit=<limit>&offset=<offset>
	ListEvents(c *gin.Context)

	// GetAccount retrieves an account's native balance and next nonce
	// GET /api/v1/accounts/:address
	GetAccount(c *gin.Context)

	// ListContracts retrieves deployed contracts
	// GET /api/v1/contracts?kind=<kind>&limit=<limit>&offset=<offset>
	ListContracts(c *gin.Context)

	// GetContract retrieves a deployed contract with its live state
	// GET /api/v1/contracts/:address
	GetContract(c *gin.Context)

	// ListCollectionTokens retrieves minted tokens of a collection
	// GET /api/v1/contracts/:address/tokens?owner=<address>&limit=<limit>&offset=<offset>
	ListCollectionTokens(c *gin.Context)

	// GetCollectionToken retrieves one minted token with its token URI
	// GET /api/v1/contracts/:address/tokens/:number
	GetCollectionToken(c *gin.Context)

	// GetTokenMetadata resolves a token's URI and returns its metadata document
	// GET /api/v1/contracts/:address/tokens/:number/metadata
	GetTokenMetadata(c *gin.Context)

	// GetTokenBalance retrieves a holder's balance on a token contract
	// GET /api/v1/contracts/:address/balances/:owner
	GetTokenBalance(c *gin.Context)

	// GetTokenAllowance retrieves a spender allowance on a token contract
	// GET /api/v1/contracts/:address/allowances?owner=<address>&spender=<address>
	GetTokenAllowance(c *gin.Context)

	// CreateWebhookClient creates a new webhook client (requires authentication via API key)
	// POST /api/v1/webhooks/clients
	CreateWebhookClient(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
	limiter  ratelimit.Proxy
}

// NewHandler creates a new REST API handler using the shared executor.
// A nil limiter disables submission rate limiting.
func NewHandler(debug bool, exec executor.Executor, limiter ratelimit.Proxy) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
		limiter:  limiter,
	}
}

// SubmitTransaction submits a signed envelope and returns its receipt
func (h *handler) SubmitTransaction(c *gin.Context) {
	var req dto.SubmitTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	// Validate request body
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	// Submission goes through the rate limiter; execution itself is
	// serialized by the engine
	result, err := h.limit(c.Request.Context(), scopeSubmit, func(ctx context.Context) (interface{}, error) {
		return h.executor.SubmitTransaction(ctx, &req)
	})

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			respondRateLimited(c, "Submission rate limit exceeded, retry later")
			return
		}
		var apiErr *apierrors.APIError
		if errors.As(err, &apiErr) {
			respondAPIError(c, apiErr)
			return
		}
		// Anything else came from the limiter itself
		respondServiceUnavailable(c, "Submission temporarily unavailable", err.Error())
		return
	}

	// A failed receipt is still a committed outcome, so it rides a 200 too
	c.JSON(http.StatusOK, result.(*dto.ReceiptResponse))
}

// GetTransaction retrieves a committed transaction by hash
func (h *handler) GetTransaction(c *gin.Context) {
	txHash := c.Param("hash")
	if !isTxHash(txHash) {
		respondBadRequest(c, "Invalid transaction hash")
		return
	}

	txDTO, err := h.executor.GetTransaction(c.Request.Context(), txHash)
	if err != nil {
		respondExecutorError(c, err, "Failed to get transaction")
		return
	}

	if txDTO == nil {
		respondNotFound(c, "Transaction not found")
		return
	}

	c.JSON(http.StatusOK, txDTO)
}

// ListTransactions retrieves committed transactions with optional filters
func (h *handler) ListTransactions(c *gin.Context) {
	queryParams, err := ParseListTransactionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetTransactions(
		c.Request.Context(),
		optionalString(queryParams.Sender),
		optionalString(queryParams.Contract),
		optionalString(queryParams.Action),
		optionalString(queryParams.Status),
		&queryParams.Order,
		&queryParams.Limit,
		&queryParams.Offset,
	)
	if err != nil {
		respondExecutorError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListEvents retrieves committed events with optional filters
func (h *handler) ListEvents(c *gin.Context) {
	queryParams, err := ParseListEventsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetEvents(
		c.Request.Context(),
		optionalString(queryParams.Contract),
		optionalString(queryParams.EventType),
		optionalString(queryParams.TxHash),
		queryParams.Since,
		&queryParams.Limit,
		&queryParams.Offset,
	)
	if err != nil {
		respondExecutorError(c, err, "Failed to list events")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetAccount retrieves an account's native balance and next nonce
func (h *handler) GetAccount(c *gin.Context) {
	address := c.Param("address")
	if !common.IsHexAddress(address) {
		respondBadRequest(c, "Invalid account address")
		return
	}

	accountDTO, err := h.executor.GetAccount(c.Request.Context(), domain.NormalizeAddress(address))
	if err != nil {
		respondExecutorError(c, err, "Failed to get account")
		return
	}

	c.JSON(http.StatusOK, accountDTO)
}

// ListContracts retrieves deployed contracts
func (h *handler) ListContracts(c *gin.Context) {
	queryParams, err := ParseListContractsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetContracts(
		c.Request.Context(),
		optionalString(queryParams.Kind),
		&queryParams.Limit,
		&queryParams.Offset,
	)
	if err != nil {
		respondExecutorError(c, err, "Failed to list contracts")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetContract retrieves a deployed contract with its live state
func (h *handler) GetContract(c *gin.Context) {
	address := c.Param("address")
	if !common.IsHexAddress(address) {
		respondBadRequest(c, "Invalid contract address")
		return
	}

	contractDTO, err := h.executor.GetContract(c.Request.Context(), domain.NormalizeAddress(address))
	if err != nil {
		respondExecutorError(c, err, "Failed to get contract")
		return
	}

	if contractDTO == nil {
		respondNotFound(c, "Contract not found")
		return
	}

	c.JSON(http.StatusOK, contractDTO)
}

// ListCollectionTokens retrieves minted tokens of a collection
func (h *handler) ListCollectionTokens(c *gin.Context) {
	address := c.Param("address")
	if !common.IsHexAddress(address) {
		respondBadRequest(c, "Invalid contract address")
		return
	}

	queryParams, err := ParseListCollectionTokensQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetCollectionTokens(
		c.Request.Context(),
		domain.NormalizeAddress(address),
		optionalString(queryParams.Owner),
		&queryParams.Limit,
		&queryParams.Offset,
	)
	if err != nil {
		respondExecutorError(c, err, "Failed to list collection tokens")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetCollectionToken retrieves one minted token with its token URI
func (h *handler) GetCollectionToken(c *gin.Context) {
	address := c.Param("address")
	if !common.IsHexAddress(address) {
		respondBadRequest(c, "Invalid contract address")
		return
	}

	number, ok := parseTokenNumber(c)
	if !ok {
		return
	}

	tokenDTO, err := h.executor.GetCollectionToken(c.Request.Context(), domain.NormalizeAddress(address), number)
	if err != nil {
		respondExecutorError(c, err, "Failed to get collection token")
		return
	}

	if tokenDTO == nil {
		respondNotFound(c, "Token not found")
		return
	}

	c.JSON(http.StatusOK, tokenDTO)
}

// GetTokenMetadata resolves a token's URI and returns its metadata document
func (h *handler) GetTokenMetadata(c *gin.Context) {
	address := c.Param("address")
	if !common.IsHexAddress(address) {
		respondBadRequest(c, "Invalid contract address")
		return
	}

	number, ok := parseTokenNumber(c)
	if !ok {
		return
	}

	document, err := h.executor.GetTokenMetadata(c.Request.Context(), domain.NormalizeAddress(address), number)
	if err != nil {
		respondExecutorError(c, err, "Failed to get token metadata")
		return
	}

	if document == nil {
		respondNotFound(c, "Token not found")
		return
	}

	c.Data(http.StatusOK, "application/json", document)
}

// GetTokenBalance retrieves a holder's balance on a token contract
func (h *handler) GetTokenBalance(c *gin.Context) {
	address := c.Param("address")
	if !common.IsHexAddress(address) {
		respondBadRequest(c, "Invalid contract address")
		return
	}

	owner := c.Param("owner")
	if !common.IsHexAddress(owner) {
		respondBadRequest(c, "Invalid owner address")
		return
	}

	balanceDTO, err := h.executor.GetTokenBalance(c.Request.Context(), domain.NormalizeAddress(address), domain.NormalizeAddress(owner))
	if err != nil {
		respondExecutorError(c, err, "Failed to get token balance")
		return
	}

	c.JSON(http.StatusOK, balanceDTO)
}

// GetTokenAllowance retrieves a spender allowance on a token contract
func (h *handler) GetTokenAllowance(c *gin.Context) {
	address := c.Param("address")
	if !common.IsHexAddress(address) {
		respondBadRequest(c, "Invalid contract address")
		return
	}

	queryParams, err := ParseAllowanceQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	allowanceDTO, err := h.executor.GetTokenAllowance(
		c.Request.Context(),
		domain.NormalizeAddress(address),
		queryParams.Owner,
		queryParams.Spender,
	)
	if err != nil {
		respondExecutorError(c, err, "Failed to get token allowance")
		return
	}

	c.JSON(http.StatusOK, allowanceDTO)
}

// CreateWebhookClient creates a new webhook client (requires authentication via API key)
func (h *handler) CreateWebhookClient(c *gin.Context) {
	var req dto.CreateWebhookClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	// Validate request body
	if err := req.Validate(h.debug); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.CreateWebhookClient(
		c.Request.Context(),
		req.WebhookURL,
		req.EventFilters,
		req.RetryMaxAttempts,
	)
	if err != nil {
		respondExecutorError(c, err, "Failed to create webhook client")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "ff-mintgate-api",
	})
}

// limit runs fn through the rate limiter when one is configured
func (h *handler) limit(ctx context.Context, scope string, fn ratelimit.RequestFunc) (interface{}, error) {
	if h.limiter == nil {
		return fn(ctx)
	}
	return h.limiter.Request(ctx, scope, fn)
}

// parseTokenNumber reads the :number path parameter; token numbers start at 1
func parseTokenNumber(c *gin.Context) (uint64, bool) {
	number, err := strconv.ParseUint(c.Param("number"), 10, 64)
	if err != nil || number == 0 {
		respondBadRequest(c, "Invalid token number")
		return 0, false
	}
	return number, true
}

// isTxHash reports whether s looks like a 0x-prefixed 32-byte hash
func isTxHash(s string) bool {
	if len(s) != 66 || !strings.HasPrefix(s, "0x") {
		return false
	}
	_, err := hex.DecodeString(s[2:])
	return err == nil
}
