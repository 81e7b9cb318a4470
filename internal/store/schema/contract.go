package schema

import "time"

// Contract represents the contracts table - the registry of deployed
// contract instances, projected from genesis and from successful deploys
type Contract struct {
	// Address is the contract address
	Address string `gorm:"column:address;primaryKey;type:varchar(42)"`
	// Kind is the contract kind: token or collection
	Kind string `gorm:"column:kind;not null;type:varchar(20);index:idx_contracts_kind"`
	// Owner is the current administrative owner, kept current from ownership events
	Owner string `gorm:"column:owner;not null;type:varchar(42)"`
	// Name is the display name passed at deploy time
	Name string `gorm:"column:name;not null;type:text"`
	// Symbol is the ticker passed at deploy time
	Symbol string `gorm:"column:symbol;not null;type:text"`
	// DeployedAtSeq is the journal sequence of the deploy, or 0 for genesis contracts
	DeployedAtSeq uint64 `gorm:"column:deployed_at_seq;not null;default:0"`
	// CreatedAt is the timestamp when this contract was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Contract model
func (Contract) TableName() string {
	return "contracts"
}
