package rest

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-mintgate/internal/api/shared/constants"
	apitypes "github.com/feral-file/ff-mintgate/internal/api/shared/types"
	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/store/schema"
)

// ListTransactionsQueryParams holds query parameters for GET /transactions
type ListTransactionsQueryParams struct {
	// Filters
	Sender   string `form:"sender"`
	Contract string `form:"contract"`
	Action   string `form:"action"`
	Status   string `form:"status"`

	// Pagination
	Limit  int            `form:"limit,default=20"`
	Offset uint64         `form:"offset,default=0"`
	Order  apitypes.Order `form:"order,default=desc"` // asc or desc (based on seq)
}

// ListEventsQueryParams holds query parameters for GET /events
type ListEventsQueryParams struct {
	// Filters
	Contract  string     `form:"contract"`
	EventType string     `form:"type"`
	TxHash    string     `form:"tx_hash"`
	Since     *time.Time `form:"since" time_format:"2006-01-02T15:04:05Z07:00"` // only events stamped after this time

	// Pagination
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// ListContractsQueryParams holds query parameters for GET /contracts
type ListContractsQueryParams struct {
	Kind string `form:"kind"`

	// Pagination
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// ListCollectionTokensQueryParams holds query parameters for
// GET /collections/:address/tokens
type ListCollectionTokensQueryParams struct {
	Owner string `form:"owner"`

	// Pagination
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// AllowanceQueryParams holds query parameters for GET /tokens/:address/allowance
type AllowanceQueryParams struct {
	Owner   string `form:"owner"`
	Spender string `form:"spender"`
}

// ParseListTransactionsQuery parses query parameters for GET /transactions
func ParseListTransactionsQuery(c *gin.Context) (*ListTransactionsQueryParams, error) {
	var params ListTransactionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Normalize addresses
	params.Sender = domain.NormalizeAddress(params.Sender)
	params.Contract = domain.NormalizeAddress(params.Contract)

	// Cap limit
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	// Validate order
	if !params.Order.Valid() {
		params.Order = apitypes.OrderDesc
	}

	// Reject typo'd filters instead of silently matching nothing
	if params.Action != "" && !domain.ActionType(params.Action).Valid() {
		return nil, fmt.Errorf("unknown action: %s", params.Action)
	}
	if params.Status != "" && params.Status != string(schema.TxStatusSuccess) && params.Status != string(schema.TxStatusFailed) {
		return nil, fmt.Errorf("unknown status: %s", params.Status)
	}

	return &params, nil
}

// ParseListEventsQuery parses query parameters for GET /events
func ParseListEventsQuery(c *gin.Context) (*ListEventsQueryParams, error) {
	var params ListEventsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Normalize address
	params.Contract = domain.NormalizeAddress(params.Contract)

	// Cap limit
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// ParseListContractsQuery parses query parameters for GET /contracts
func ParseListContractsQuery(c *gin.Context) (*ListContractsQueryParams, error) {
	var params ListContractsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limit
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	if params.Kind != "" && !domain.IsValidContractKind(domain.ContractKind(params.Kind)) {
		return nil, fmt.Errorf("unknown contract kind: %s", params.Kind)
	}

	return &params, nil
}

// ParseListCollectionTokensQuery parses query parameters for
// GET /collections/:address/tokens
func ParseListCollectionTokensQuery(c *gin.Context) (*ListCollectionTokensQueryParams, error) {
	var params ListCollectionTokensQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Normalize address
	params.Owner = domain.NormalizeAddress(params.Owner)

	// Cap limit
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// ParseAllowanceQuery parses query parameters for GET /tokens/:address/allowance
func ParseAllowanceQuery(c *gin.Context) (*AllowanceQueryParams, error) {
	var params AllowanceQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if !common.IsHexAddress(params.Owner) {
		return nil, fmt.Errorf("invalid owner address: %s", params.Owner)
	}
	if !common.IsHexAddress(params.Spender) {
		return nil, fmt.Errorf("invalid spender address: %s", params.Spender)
	}

	params.Owner = domain.NormalizeAddress(params.Owner)
	params.Spender = domain.NormalizeAddress(params.Spender)

	return &params, nil
}

// optionalString returns nil for an empty filter value
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
