package dto

import (
	"time"

	"github.com/feral-file/ff-mintgate/internal/store/schema"
)

// ContractResponse represents a deployed contract instance. The registry
// fields come from the read model; Token and Collection are live state read
// under an engine snapshot and exactly one of them is set, keyed by Kind.
type ContractResponse struct {
	Address       string                   `json:"address"`
	Kind          string                   `json:"kind"`
	Owner         string                   `json:"owner"`
	Name          string                   `json:"name"`
	Symbol        string                   `json:"symbol"`
	DeployedAtSeq uint64                   `json:"deployed_at_seq"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
	Token         *TokenStateResponse      `json:"token,omitempty"`
	Collection    *CollectionStateResponse `json:"collection,omitempty"`
}

// TokenStateResponse is the live state of a fungible token contract
type TokenStateResponse struct {
	Decimals    uint8  `json:"decimals"`
	TotalSupply string `json:"total_supply"`
}

// CollectionStateResponse is the live state of a collection contract
type CollectionStateResponse struct {
	UnitPrice         string `json:"unit_price"`
	MaxSupply         uint64 `json:"max_supply"`
	AbsoluteMaxSupply uint64 `json:"absolute_max_supply"`
	TotalMinted       uint64 `json:"total_minted"`
	RemainingSupply   uint64 `json:"remaining_supply"`
	Paused            bool   `json:"paused"`
	BaseURI           string `json:"base_uri"`
	URILocked         bool   `json:"uri_locked"`
	ShardSize         uint64 `json:"shard_size,omitempty"`
	Treasury          string `json:"treasury"`
	Balance           string `json:"balance"`
}

// ContractListResponse represents a paginated list of contracts
type ContractListResponse struct {
	Contracts []ContractResponse `json:"items"`
	Offset    *uint64            `json:"offset,omitempty"`
	Total     uint64             `json:"total"`
}

// MapContractToDTO maps a schema.Contract registry row to ContractResponse.
// Live contract state is filled separately by the caller.
func MapContractToDTO(contract *schema.Contract) *ContractResponse {
	if contract == nil {
		return nil
	}

	return &ContractResponse{
		Address:       contract.Address,
		Kind:          contract.Kind,
		Owner:         contract.Owner,
		Name:          contract.Name,
		Symbol:        contract.Symbol,
		DeployedAtSeq: contract.DeployedAtSeq,
		CreatedAt:     contract.CreatedAt,
		UpdatedAt:     contract.UpdatedAt,
	}
}
