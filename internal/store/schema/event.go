package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Event represents the events table - the semantic events emitted by
// committed transactions, in emission order. The auto-incrementing ID doubles
// as the relay cursor.
type Event struct {
	// ID is an auto-incrementing sequence number for ordering and relay pagination
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TxSeq is the journal sequence of the emitting transaction
	TxSeq uint64 `gorm:"column:tx_seq;not null;uniqueIndex:idx_events_tx_seq_index,priority:1"`
	// TxHash is the hash of the emitting transaction
	TxHash string `gorm:"column:tx_hash;not null;type:varchar(66)"`
	// EventIndex is the position of the event within its transaction
	EventIndex uint `gorm:"column:event_index;not null;uniqueIndex:idx_events_tx_seq_index,priority:2"`
	// Contract is the emitting contract address
	Contract string `gorm:"column:contract;not null;type:varchar(42);index:idx_events_contract"`
	// EventType is the semantic event type (e.g. "nft.transfer")
	EventType string `gorm:"column:event_type;not null;type:varchar(50);index:idx_events_type"`
	// Data is the event payload, schema fixed per event type
	Data datatypes.JSON `gorm:"column:data;not null;type:jsonb"`
	// Timestamp is the acceptance time of the emitting transaction
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "events"
}
