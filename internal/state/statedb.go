// Package state implements the journaled in-memory ledger the contract
// engine executes against. Every mutation is recorded as a revertible
// journal entry so a failed action can be rolled back to a snapshot
// without touching the committed portion of the state.
package state

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-mintgate/internal/domain"
)

// StateDB holds the full mutable world state: native balances, per-account
// storage slots, nonces and the event logs emitted by the action currently
// being executed. It is the single source of truth between commits; the
// persistent journal in PostgreSQL is derived from it, never the other way
// around except during replay.
type StateDB struct {
	balances map[common.Address]*big.Int
	storage  map[common.Address]map[common.Hash]common.Hash
	nonces   map[common.Address]uint64

	thash   common.Hash
	txSeq   uint64
	logs    map[common.Hash][]*domain.Event
	logSize uint

	// Journal of state modifications. This is the backbone of
	// Snapshot and RevertToSnapshot.
	journal        *journal
	validRevisions []revision
	nextRevisionID int
}

func New() *StateDB {
	return &StateDB{
		balances: make(map[common.Address]*big.Int),
		storage:  make(map[common.Address]map[common.Hash]common.Hash),
		nonces:   make(map[common.Address]uint64),
		logs:     make(map[common.Hash][]*domain.Event),
		journal:  newJournal(),
	}
}

// Prepare sets the hash and sequence of the action about to execute. The
// values are stamped onto every event emitted through AddLog.
func (s *StateDB) Prepare(thash common.Hash, seq uint64) {
	s.thash = thash
	s.txSeq = seq
	s.logSize = 0
}

// AddLog records an event emitted by the executing action. The event is
// journaled and dropped again if the action reverts.
func (s *StateDB) AddLog(event *domain.Event) {
	s.journal.append(addLogChange{txhash: s.thash})

	event.TxHash = s.thash.Hex()
	event.TxSeq = s.txSeq
	event.Index = s.logSize
	s.logs[s.thash] = append(s.logs[s.thash], event)
	s.logSize++
}

// GetLogs returns the events emitted by the action with the given hash.
func (s *StateDB) GetLogs(hash common.Hash) []*domain.Event {
	return s.logs[hash]
}

// GetBalance returns a copy of the native balance of the account. Missing
// accounts read as zero.
func (s *StateDB) GetBalance(addr common.Address) *big.Int {
	if b, ok := s.balances[addr]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

// AddBalance adds amount to the native balance of the account.
func (s *StateDB) AddBalance(addr common.Address, amount *big.Int) {
	if amount.Sign() == 0 {
		return
	}
	s.journal.append(balanceChange{account: &addr, prev: s.GetBalance(addr)})
	s.setBalance(addr, new(big.Int).Add(s.GetBalance(addr), amount))
}

// SubBalance subtracts amount from the native balance of the account. The
// caller is responsible for checking sufficiency first.
func (s *StateDB) SubBalance(addr common.Address, amount *big.Int) {
	if amount.Sign() == 0 {
		return
	}
	s.journal.append(balanceChange{account: &addr, prev: s.GetBalance(addr)})
	s.setBalance(addr, new(big.Int).Sub(s.GetBalance(addr), amount))
}

// SetBalance overwrites the native balance of the account. Used by the
// genesis allocation only.
func (s *StateDB) SetBalance(addr common.Address, amount *big.Int) {
	s.journal.append(balanceChange{account: &addr, prev: s.GetBalance(addr)})
	s.setBalance(addr, new(big.Int).Set(amount))
}

func (s *StateDB) setBalance(addr common.Address, amount *big.Int) {
	s.balances[addr] = amount
}

// GetNonce returns the next expected nonce for the account.
func (s *StateDB) GetNonce(addr common.Address) uint64 {
	return s.nonces[addr]
}

func (s *StateDB) SetNonce(addr common.Address, nonce uint64) {
	s.journal.append(nonceChange{account: &addr, prev: s.nonces[addr]})
	s.setNonce(addr, nonce)
}

func (s *StateDB) setNonce(addr common.Address, nonce uint64) {
	s.nonces[addr] = nonce
}

// GetState retrieves a value from the account's storage. Missing slots read
// as the zero hash.
func (s *StateDB) GetState(addr common.Address, key common.Hash) common.Hash {
	if slots, ok := s.storage[addr]; ok {
		return slots[key]
	}
	return common.Hash{}
}

// SetState writes a value into the account's storage.
func (s *StateDB) SetState(addr common.Address, key, value common.Hash) {
	s.journal.append(storageChange{
		account:  &addr,
		key:      key,
		prevalue: s.GetState(addr, key),
	})
	s.setState(addr, key, value)
}

func (s *StateDB) setState(addr common.Address, key, value common.Hash) {
	slots, ok := s.storage[addr]
	if !ok {
		slots = make(map[common.Hash]common.Hash)
		s.storage[addr] = slots
	}
	if value == (common.Hash{}) {
		delete(slots, key)
		return
	}
	slots[key] = value
}

// Snapshot returns an identifier for the current revision of the state.
func (s *StateDB) Snapshot() int {
	id := s.nextRevisionID
	s.nextRevisionID++
	s.validRevisions = append(s.validRevisions, revision{id, s.journal.length()})
	return id
}

// RevertToSnapshot reverts all state changes made since the given revision.
func (s *StateDB) RevertToSnapshot(revid int) {
	// Find the snapshot in the stack of valid snapshots.
	idx := sort.Search(len(s.validRevisions), func(i int) bool {
		return s.validRevisions[i].id >= revid
	})
	if idx == len(s.validRevisions) || s.validRevisions[idx].id != revid {
		panic(fmt.Errorf("revision id %v cannot be reverted", revid))
	}
	snapshot := s.validRevisions[idx].journalIndex

	// Replay the journal to undo changes and remove invalidated snapshots
	s.journal.revert(s, snapshot)
	s.validRevisions = s.validRevisions[:idx]
}

// DirtyBalances returns the accounts whose native balance changed since the
// last Finalise, with their current values. The engine projects these into
// the account_balances read model before sealing the action.
func (s *StateDB) DirtyBalances() map[common.Address]*big.Int {
	dirty := make(map[common.Address]*big.Int)
	for _, entry := range s.journal.entries {
		if _, ok := entry.(balanceChange); !ok {
			continue
		}
		addr := *entry.dirtied()
		if _, seen := dirty[addr]; !seen {
			dirty[addr] = s.GetBalance(addr)
		}
	}
	return dirty
}

// Finalise seals the current action: the journal is cleared so the applied
// changes can no longer be reverted. Reverting across actions is not
// allowed.
func (s *StateDB) Finalise() {
	if len(s.journal.entries) > 0 {
		s.journal = newJournal()
	}
	s.validRevisions = s.validRevisions[:0]
}
