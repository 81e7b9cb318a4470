package schema

import "time"

// TokenBalance represents the token_balances table - per-holder balances of
// fungible token contracts, projected from token.transfer events
type TokenBalance struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Contract is the token contract address
	Contract string `gorm:"column:contract;not null;type:varchar(42);uniqueIndex:idx_token_balances_contract_holder,priority:1"`
	// Holder is the balance owner address
	Holder string `gorm:"column:holder;not null;type:varchar(42);uniqueIndex:idx_token_balances_contract_holder,priority:2;index:idx_token_balances_holder"`
	// Balance is the current token balance (stored as string to support up to 78 digits)
	Balance string `gorm:"column:balance;not null;default:0;type:numeric(78,0)"`
	// CreatedAt is the timestamp when this balance was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this balance was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TokenBalance model
func (TokenBalance) TableName() string {
	return "token_balances"
}
