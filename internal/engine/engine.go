package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/feral-file/ff-mintgate/internal/adapter"
	"github.com/feral-file/ff-mintgate/internal/contract"
	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/logger"
	"github.com/feral-file/ff-mintgate/internal/state"
)

// Store is the slice of persistence the engine needs: sealing commits and
// reading the journal back for replay.
type Store interface {
	CommitTransaction(ctx context.Context, commit *domain.TxCommit) error
	ListTransactionRecords(ctx context.Context, afterSeq uint64, limit int) ([]domain.TxRecord, error)
	GetGenesis(ctx context.Context) (json.RawMessage, error)
}

// Denylist screens senders before their envelopes are admitted.
type Denylist interface {
	IsDenied(address string) bool
}

// Engine is the single writer over the world state. Submissions are
// serialized by its mutex, which is the total ordering the contract
// invariants rely on.
type Engine struct {
	mu       sync.Mutex
	state    *state.StateDB
	store    Store
	canon    adapter.JCS
	clock    adapter.Clock
	registry *Registry
	denylist Denylist

	// seq is the sequence number of the last committed transaction.
	seq uint64
}

// New assembles an engine over the given state. The denylist may be nil.
func New(st *state.StateDB, store Store, canon adapter.JCS, clock adapter.Clock, denylist Denylist) *Engine {
	registry := NewRegistry()
	registry.Register(&nativeHandler{})
	registry.Register(&tokenHandler{})
	registry.Register(&collectionHandler{})
	return &Engine{
		state:    st,
		store:    store,
		canon:    canon,
		clock:    clock,
		registry: registry,
		denylist: denylist,
	}
}

// Submit admits, executes and seals one signed envelope. Admission failures
// (bad signature, wrong nonce, malformed value, denied sender) reject the
// envelope outright and leave no trace in the journal. An admitted envelope
// always consumes the sender's nonce and always lands in the journal, as a
// success or as a failure with its revert reason.
func (e *Engine) Submit(ctx context.Context, tx *Tx) (*domain.Receipt, error) {
	if !tx.Action.Valid() {
		return nil, domain.ErrUnknownAction
	}
	digest, err := tx.Digest(e.canon)
	if err != nil {
		return nil, err
	}
	sender, err := tx.RecoverSender(digest)
	if err != nil {
		return nil, err
	}
	if e.denylist != nil && e.denylist.IsDenied(sender.String()) {
		return nil, domain.ErrSenderDenied
	}
	value := new(big.Int)
	if tx.Value != "" {
		v, ok := domain.ParseAmount(tx.Value)
		if !ok {
			return nil, domain.ErrInvalidValue
		}
		value = v
	}
	if !tx.Action.IsDeploy() && !common.IsHexAddress(tx.Contract) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, tx.Contract)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if expected := e.state.GetNonce(sender); tx.Nonce != expected {
		return nil, fmt.Errorf("%w: expected %d", domain.ErrInvalidNonce, expected)
	}

	seq := e.seq + 1
	now := e.clock.Now()

	// The outer snapshot covers the nonce increment too, so a persistence
	// failure unwinds the transaction completely.
	outer := e.state.Snapshot()
	receipt := e.execute(tx, sender, digest, seq, now, value)

	envelope, err := json.Marshal(tx)
	if err != nil {
		e.state.RevertToSnapshot(outer)
		return nil, fmt.Errorf("failed to marshal envelope: %w", err)
	}
	commit := &domain.TxCommit{
		Receipt:  receipt,
		Envelope: envelope,
		Balances: formatBalances(e.state.DirtyBalances()),
	}
	if err := e.store.CommitTransaction(ctx, commit); err != nil {
		e.state.RevertToSnapshot(outer)
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}
	e.seq = seq
	e.state.Finalise()

	if receipt.Succeeded() {
		logger.InfoCtx(ctx, "transaction committed",
			zap.Uint64("seq", seq),
			zap.String("txHash", receipt.TxHash),
			zap.String("action", string(tx.Action)),
			zap.String("sender", receipt.From))
	} else {
		logger.InfoCtx(ctx, "transaction reverted",
			zap.Uint64("seq", seq),
			zap.String("txHash", receipt.TxHash),
			zap.String("action", string(tx.Action)),
			zap.String("sender", receipt.From),
			zap.String("reason", receipt.Reason))
	}
	return receipt, nil
}

// execute runs the in-memory state transition for an admitted envelope and
// returns its receipt. The caller owns persistence and finalisation.
func (e *Engine) execute(tx *Tx, sender common.Address, digest common.Hash, seq uint64, now time.Time, value *big.Int) *domain.Receipt {
	e.state.Prepare(digest, seq)
	// The nonce is consumed before the revert point: failed transactions
	// burn it too.
	e.state.SetNonce(sender, tx.Nonce+1)
	snap := e.state.Snapshot()

	target := e.target(tx, sender, seq)
	execErr := e.apply(tx, sender, target, value, now)

	receipt := &domain.Receipt{
		TxHash:    digest.Hex(),
		Seq:       seq,
		Action:    tx.Action,
		From:      sender.String(),
		Value:     domain.FormatAmount(value),
		Nonce:     tx.Nonce,
		Timestamp: now,
	}
	if !domain.IsZeroAddress(target) {
		receipt.Contract = target.String()
	}
	if execErr != nil {
		e.state.RevertToSnapshot(snap)
		receipt.Status = domain.TxStatusFailed
		receipt.Reason = execErr.Error()
		return receipt
	}
	receipt.Status = domain.TxStatusSuccess
	for _, event := range e.state.GetLogs(digest) {
		receipt.Events = append(receipt.Events, *event)
	}
	return receipt
}

// target resolves the address an action runs against. Deploys get a fresh
// address derived from the sender and the journal sequence, everything else
// names its target in the envelope. Admission has already checked that the
// envelope address parses.
func (e *Engine) target(tx *Tx, sender common.Address, seq uint64) common.Address {
	if tx.Action.IsDeploy() {
		return contract.DeriveAddress(sender, seq)
	}
	return common.HexToAddress(tx.Contract)
}

func (e *Engine) apply(tx *Tx, sender, target common.Address, value *big.Int, now time.Time) error {
	if value.Sign() > 0 {
		if !Payable(tx.Action) {
			return domain.ErrNonPayable
		}
		// The attached value moves to the target before dispatch; contract
		// code sees it on its own balance, mirroring how payable calls
		// receive funds.
		if err := contract.Transfer(e.state, sender, target, value); err != nil {
			return err
		}
	}
	if kind := tx.Action.Kind(); kind != "" && !tx.Action.IsDeploy() {
		if err := contract.RequireKind(e.state, target, kind); err != nil {
			return err
		}
	}
	h := e.registry.handlerFor(tx.Action)
	if h == nil {
		return domain.ErrUnknownAction
	}
	cctx := &contract.Context{
		State:  e.state,
		Self:   target,
		Caller: sender,
		Value:  value,
		Now:    now,
	}
	return h.Handle(cctx, tx)
}

// Seq returns the sequence number of the last committed transaction.
func (e *Engine) Seq() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.seq
}

// NextNonce returns the nonce the account's next envelope must carry.
func (e *Engine) NextNonce(address common.Address) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.GetNonce(address)
}

// View runs a read-only function against the state under the engine lock.
// Queries served straight from contract storage go through here so they
// never observe a half-applied transaction.
func (e *Engine) View(fn func(db contract.StateDB)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.state)
}

func formatBalances(dirty map[common.Address]*big.Int) map[string]string {
	if len(dirty) == 0 {
		return nil
	}
	out := make(map[string]string, len(dirty))
	for addr, amount := range dirty {
		out[addr.String()] = amount.String()
	}
	return out
}
