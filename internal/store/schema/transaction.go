package schema

import (
	"time"

	"gorm.io/datatypes"
)

// TxStatus mirrors the committed outcome of a transaction
type TxStatus string

const (
	// TxStatusSuccess means the action applied all of its effects
	TxStatusSuccess TxStatus = "success"
	// TxStatusFailed means the action reverted and only the nonce was consumed
	TxStatusFailed TxStatus = "failed"
)

// Transaction represents the transactions table - the append-only journal of
// every envelope the engine admitted, successes and failures alike
type Transaction struct {
	// Seq is the engine-assigned journal sequence number; it is the total order of the system
	Seq uint64 `gorm:"column:seq;primaryKey;autoIncrement:false"`
	// TxHash is the Keccak-256 digest of the canonicalized envelope
	TxHash string `gorm:"column:tx_hash;not null;unique;type:varchar(66)"`
	// Action is the dispatched action type (e.g. "collection.mint")
	Action string `gorm:"column:action;not null;type:varchar(50)"`
	// Sender is the address recovered from the envelope signature
	Sender string `gorm:"column:sender;not null;type:varchar(42);index:idx_transactions_sender"`
	// Contract is the target contract address, or the deployed address for deploys
	Contract string `gorm:"column:contract;type:varchar(42);index:idx_transactions_contract"`
	// Value is the native amount attached to the call (stored as string to support up to 78 digits)
	Value string `gorm:"column:value;not null;default:0;type:numeric(78,0)"`
	// Nonce is the sender nonce the envelope consumed
	Nonce uint64 `gorm:"column:nonce;not null"`
	// Status is the committed outcome: success or failed
	Status TxStatus `gorm:"column:status;not null;type:varchar(10)"`
	// Reason is the revert reason when Status is failed
	Reason string `gorm:"column:reason;type:text"`
	// Envelope is the raw signed envelope, kept verbatim for replay
	Envelope datatypes.JSON `gorm:"column:envelope;not null;type:jsonb"`
	// Timestamp is the acceptance time stamped by the engine clock
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
