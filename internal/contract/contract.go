// Package contract provides the building blocks shared by the concrete
// contracts: the state interface they execute against, the call context,
// storage slot codecs and the ownable/pausable/guard primitives.
package contract

import (
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-mintgate/internal/domain"
)

// StateDB is the slice of the world state visible to contract code.
type StateDB interface {
	GetBalance(addr common.Address) *big.Int
	AddBalance(addr common.Address, amount *big.Int)
	SubBalance(addr common.Address, amount *big.Int)
	GetState(addr common.Address, key common.Hash) common.Hash
	SetState(addr common.Address, key, value common.Hash)
	AddLog(event *domain.Event)
}

// Context carries the per-call environment into a contract action: who is
// calling, which contract instance is being called, the native value
// attached to the call and the timestamp stamped onto emitted events.
type Context struct {
	State  StateDB
	Self   common.Address
	Caller common.Address
	Value  *big.Int
	Now    time.Time
}

// Emit records an event against the executing action. Payloads are the
// fixed structs from the domain package, so marshaling cannot fail on any
// reachable path.
func (c *Context) Emit(event domain.EventType, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		panic(fmt.Errorf("marshal %s event: %w", event, err))
	}
	c.State.AddLog(&domain.Event{
		Contract:  c.Self.String(),
		Type:      event,
		Data:      data,
		Timestamp: c.Now,
	})
}

// Transfer moves native value between two accounts. It fails when the
// source balance does not cover the amount and moves nothing in that case.
func Transfer(db StateDB, from, to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() == 0 {
		return nil
	}
	if db.GetBalance(from).Cmp(amount) < 0 {
		return domain.ErrInsufficientFunds
	}
	db.SubBalance(from, amount)
	db.AddBalance(to, amount)
	return nil
}
