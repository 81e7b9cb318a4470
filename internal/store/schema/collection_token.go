package schema

import "time"

// CollectionToken represents the collection_tokens table - every NFT minted
// by a collection contract with its current owner, projected from
// nft.transfer events
type CollectionToken struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Contract is the collection contract address
	Contract string `gorm:"column:contract;not null;type:varchar(42);uniqueIndex:idx_collection_tokens_contract_number,priority:1"`
	// TokenNumber is the sequential token number within the collection, starting at 1
	TokenNumber uint64 `gorm:"column:token_number;not null;uniqueIndex:idx_collection_tokens_contract_number,priority:2"`
	// Owner is the current owner address
	Owner string `gorm:"column:owner;not null;type:varchar(42);index:idx_collection_tokens_owner"`
	// MintedAtSeq is the journal sequence of the minting transaction, or 0 for genesis
	MintedAtSeq uint64 `gorm:"column:minted_at_seq;not null;default:0"`
	// MintedAt is the acceptance time of the minting transaction
	MintedAt time.Time `gorm:"column:minted_at;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CollectionToken model
func (CollectionToken) TableName() string {
	return "collection_tokens"
}
