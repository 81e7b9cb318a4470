package dto

import (
	"time"

	"github.com/feral-file/ff-mintgate/internal/store/schema"
)

// CollectionTokenResponse represents a minted NFT with its current owner.
// TokenURI is computed live from the collection's base URI and shard layout,
// so a base URI update is reflected on every token immediately.
type CollectionTokenResponse struct {
	Contract    string    `json:"contract"`
	TokenNumber uint64    `json:"token_number"`
	Owner       string    `json:"owner"`
	TokenURI    string    `json:"token_uri,omitempty"`
	MintedAtSeq uint64    `json:"minted_at_seq"`
	MintedAt    time.Time `json:"minted_at"`
}

// CollectionTokenListResponse represents a paginated list of collection tokens
type CollectionTokenListResponse struct {
	Tokens []CollectionTokenResponse `json:"items"`
	Offset *uint64                   `json:"offset,omitempty"`
	Total  uint64                    `json:"total"`
}

// MapCollectionTokenToDTO maps a schema.CollectionToken to
// CollectionTokenResponse. TokenURI is filled separately by the caller.
func MapCollectionTokenToDTO(token *schema.CollectionToken) *CollectionTokenResponse {
	if token == nil {
		return nil
	}

	return &CollectionTokenResponse{
		Contract:    token.Contract,
		TokenNumber: token.TokenNumber,
		Owner:       token.Owner,
		MintedAtSeq: token.MintedAtSeq,
		MintedAt:    token.MintedAt,
	}
}
