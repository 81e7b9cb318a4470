package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/logger"
)

const replayBatchSize = 500

// Bootstrap brings a fresh in-memory state up to date. It applies the genesis
// document, then re-executes the committed journal in order. Replay runs the
// exact code path of the original execution with the recorded timestamps, so
// any divergence from the journaled outcome means the journal and the code
// no longer agree and the node refuses to serve.
func (e *Engine) Bootstrap(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	raw, err := e.store.GetGenesis(ctx)
	if err != nil {
		return fmt.Errorf("failed to load genesis: %w", err)
	}
	if len(raw) == 0 {
		return domain.ErrGenesisNotFound
	}
	var gen Genesis
	if err := json.Unmarshal(raw, &gen); err != nil {
		return fmt.Errorf("failed to decode genesis: %w", err)
	}
	if err := ApplyGenesis(e.state, &gen, e.clock.Now()); err != nil {
		return err
	}
	if err := e.replay(ctx); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "state bootstrapped", zap.Uint64("seq", e.seq))
	return nil
}

func (e *Engine) replay(ctx context.Context) error {
	for {
		records, err := e.store.ListTransactionRecords(ctx, e.seq, replayBatchSize)
		if err != nil {
			return fmt.Errorf("failed to read journal: %w", err)
		}
		for i := range records {
			if err := e.replayOne(&records[i]); err != nil {
				return err
			}
		}
		if len(records) < replayBatchSize {
			return nil
		}
	}
}

// replayOne re-executes a single journal record and checks the outcome
// against what was committed.
func (e *Engine) replayOne(rec *domain.TxRecord) error {
	if rec.Seq != e.seq+1 {
		return fmt.Errorf("%w: journal gap at seq %d, expected %d", domain.ErrReplayDivergence, rec.Seq, e.seq+1)
	}
	var tx Tx
	if err := json.Unmarshal(rec.Envelope, &tx); err != nil {
		return fmt.Errorf("%w: seq %d: malformed envelope: %v", domain.ErrReplayDivergence, rec.Seq, err)
	}
	if !tx.Action.Valid() {
		return fmt.Errorf("%w: seq %d: unknown action %q", domain.ErrReplayDivergence, rec.Seq, tx.Action)
	}
	if !tx.Action.IsDeploy() && !common.IsHexAddress(tx.Contract) {
		return fmt.Errorf("%w: seq %d: invalid contract address %q", domain.ErrReplayDivergence, rec.Seq, tx.Contract)
	}
	digest, err := tx.Digest(e.canon)
	if err != nil {
		return fmt.Errorf("%w: seq %d: %v", domain.ErrReplayDivergence, rec.Seq, err)
	}
	if digest.Hex() != rec.TxHash {
		return fmt.Errorf("%w: seq %d: digest %s does not match journaled hash %s", domain.ErrReplayDivergence, rec.Seq, digest.Hex(), rec.TxHash)
	}
	sender, err := tx.RecoverSender(digest)
	if err != nil {
		return fmt.Errorf("%w: seq %d: %v", domain.ErrReplayDivergence, rec.Seq, err)
	}
	if expected := e.state.GetNonce(sender); tx.Nonce != expected {
		return fmt.Errorf("%w: seq %d: nonce %d, expected %d", domain.ErrReplayDivergence, rec.Seq, tx.Nonce, expected)
	}
	value := new(big.Int)
	if tx.Value != "" {
		v, ok := domain.ParseAmount(tx.Value)
		if !ok {
			return fmt.Errorf("%w: seq %d: malformed value %q", domain.ErrReplayDivergence, rec.Seq, tx.Value)
		}
		value = v
	}

	receipt := e.execute(&tx, sender, digest, rec.Seq, rec.Timestamp, value)
	if receipt.Status != rec.Status || receipt.Reason != rec.Reason {
		return fmt.Errorf("%w: seq %d: got %s (%q), journal has %s (%q)",
			domain.ErrReplayDivergence, rec.Seq, receipt.Status, receipt.Reason, rec.Status, rec.Reason)
	}
	e.seq = rec.Seq
	e.state.Finalise()
	return nil
}
