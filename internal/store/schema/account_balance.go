package schema

import "time"

// AccountBalance represents the account_balances table - the current native
// balance of every account a committed transaction ever touched
type AccountBalance struct {
	// Address is the account address
	Address string `gorm:"column:address;primaryKey;type:varchar(42)"`
	// Balance is the current native balance (stored as string to support up to 78 digits)
	Balance string `gorm:"column:balance;not null;default:0;type:numeric(78,0)"`
	// UpdatedAtSeq is the journal sequence of the last transaction that touched this account
	UpdatedAtSeq uint64 `gorm:"column:updated_at_seq;not null;default:0"`
	// CreatedAt is the timestamp when this row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AccountBalance model
func (AccountBalance) TableName() string {
	return "account_balances"
}
