package schema

import "time"

// TokenAllowance represents the token_allowances table - spender allowances
// of fungible token contracts, projected from token.approval events. Each
// approval overwrites, so the projected value is always absolute.
type TokenAllowance struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Contract is the token contract address
	Contract string `gorm:"column:contract;not null;type:varchar(42);uniqueIndex:idx_token_allowances_key,priority:1"`
	// Owner is the holder who granted the allowance
	Owner string `gorm:"column:owner;not null;type:varchar(42);uniqueIndex:idx_token_allowances_key,priority:2"`
	// Spender is the address allowed to move the owner's tokens
	Spender string `gorm:"column:spender;not null;type:varchar(42);uniqueIndex:idx_token_allowances_key,priority:3"`
	// Amount is the remaining allowance (stored as string to support up to 78 digits)
	Amount string `gorm:"column:amount;not null;default:0;type:numeric(78,0)"`
	// CreatedAt is the timestamp when this allowance was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this allowance was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TokenAllowance model
func (TokenAllowance) TableName() string {
	return "token_allowances"
}
