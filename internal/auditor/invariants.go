package auditor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/oklog/ulid/v2"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/feral-file/ff-mintgate/internal/adapter"
	"github.com/feral-file/ff-mintgate/internal/contract"
	"github.com/feral-file/ff-mintgate/internal/contract/collection"
	"github.com/feral-file/ff-mintgate/internal/contract/fungible"
	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/engine"
	"github.com/feral-file/ff-mintgate/internal/logger"
	"github.com/feral-file/ff-mintgate/internal/providers/temporal"
	"github.com/feral-file/ff-mintgate/internal/state"
	"github.com/feral-file/ff-mintgate/internal/store"
	"github.com/feral-file/ff-mintgate/internal/store/schema"
	"github.com/feral-file/ff-mintgate/internal/webhook"
	"github.com/feral-file/ff-mintgate/internal/workflows"
)

// Check names carried in audit.violation payloads
const (
	CheckJournalIntegrity = "journal_integrity"
	CheckTokenSupply      = "token_supply"
	CheckCollectionCaps   = "collection_caps"
	CheckCollectionRows   = "collection_rows"
)

// Violation describes one failed invariant check. It is the payload of
// an audit.violation webhook event
type Violation struct {
	// Check is the name of the failed check
	Check string `json:"check"`
	// Contract is the audited contract address, empty for journal-level checks
	Contract string `json:"contract,omitempty"`
	// Detail is a human-readable description of the finding
	Detail string `json:"detail"`
	// Expected is the value the invariant requires, when applicable
	Expected string `json:"expected,omitempty"`
	// Actual is the value observed, when applicable
	Actual string `json:"actual,omitempty"`
	// Seq is the journal sequence the replica was audited at
	Seq uint64 `json:"seq"`
}

// InvariantAuditorConfig holds configuration for the invariant auditor
type InvariantAuditorConfig struct {
	Interval       time.Duration // Time to sleep between audit cycles
	BatchSize      int           // Rows per read-model page
	WorkerPoolSize int           // Concurrent per-contract checks
}

// invariantAuditor implements the Auditor interface. Each cycle replays
// the journal into a fresh replica and cross-checks it against the read
// models, so any divergence between the two pipelines surfaces as a finding
type invariantAuditor struct {
	config                *InvariantAuditorConfig
	store                 store.Store
	replicas              ReplicaBuilder
	pool                  pond.Pool
	clock                 adapter.Clock
	orchestrator          temporal.TemporalOrchestrator
	orchestratorTaskQueue string
	running               atomic.Bool
	stopChan              chan struct{}
	stoppedCh             chan struct{}
}

// NewInvariantAuditor creates a new invariant auditor
func NewInvariantAuditor(
	config *InvariantAuditorConfig,
	st store.Store,
	replicas ReplicaBuilder,
	clock adapter.Clock,
	orchestrator temporal.TemporalOrchestrator,
	orchestratorTaskQueue string,
) Auditor {
	return &invariantAuditor{
		config:                config,
		store:                 st,
		replicas:              replicas,
		clock:                 clock,
		orchestrator:          orchestrator,
		orchestratorTaskQueue: orchestratorTaskQueue,
		stopChan:              make(chan struct{}),
		stoppedCh:             make(chan struct{}),
	}
}

// Name returns the auditor's name
func (a *invariantAuditor) Name() string {
	return "invariant-auditor"
}

// Start begins the auditor's main loop
func (a *invariantAuditor) Start(ctx context.Context) error {
	if !a.running.CompareAndSwap(false, true) {
		return fmt.Errorf("auditor already running")
	}
	defer func() {
		a.running.Store(false)
		close(a.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting invariant auditor",
		zap.Duration("interval", a.config.Interval),
		zap.Int("batch_size", a.config.BatchSize),
		zap.Int("worker_pool_size", a.config.WorkerPoolSize),
	)

	// Create worker pool
	a.pool = pond.NewPool(
		a.config.WorkerPoolSize,
		pond.WithQueueSize(a.config.BatchSize),
		pond.WithContext(ctx),
	)

	// Continuous loop - stops when context is canceled or stop is requested
	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Invariant auditor stopping due to context cancellation", zap.Error(ctx.Err()))
			a.cleanup()
			return nil
		case <-a.stopChan:
			logger.InfoCtx(ctx, "Invariant auditor stop requested")
			a.cleanup()
			return nil
		default:
			if err := a.runAuditCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// cleanup stops the worker pool and waits for in-flight checks to complete
func (a *invariantAuditor) cleanup() {
	if a.pool != nil {
		a.pool.StopAndWait()
	}
}

// Stop gracefully stops the auditor with timeout support
func (a *invariantAuditor) Stop(ctx context.Context) error {
	if !a.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping invariant auditor")

	// Signal stop to the main loop
	close(a.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-a.stoppedCh:
		logger.InfoCtx(ctx, "Invariant auditor stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Invariant auditor stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runAuditCycle runs a single audit cycle
func (a *invariantAuditor) runAuditCycle(ctx context.Context) error {
	startTime := a.clock.Now()
	logger.InfoCtx(ctx, "Starting audit cycle")

	// Read the journal tip before replaying so a replica that comes up
	// short is caught even while writers keep appending
	lastSeq, err := a.store.GetLastSeq(ctx)
	if err != nil {
		return fmt.Errorf("failed to read journal tip: %w", err)
	}

	replica, err := a.replicas.Build(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrGenesisNotFound) {
			logger.InfoCtx(ctx, "Journal has no genesis yet, nothing to audit")
			if !a.sleep(ctx, a.config.Interval) {
				return ctx.Err()
			}
			return nil
		}

		// A journal that no longer replays is the most serious finding
		// the auditor can make
		a.reportViolation(ctx, Violation{
			Check:  CheckJournalIntegrity,
			Detail: fmt.Sprintf("journal replay failed: %v", err),
			Seq:    lastSeq,
		})
		if !a.sleep(ctx, a.config.Interval) {
			return ctx.Err()
		}
		return nil
	}

	var violations atomic.Int32
	report := func(v Violation) {
		violations.Add(1)
		a.reportViolation(ctx, v)
	}

	if replica.Seq() < lastSeq {
		report(Violation{
			Check:    CheckJournalIntegrity,
			Detail:   "replay stopped short of the journal tip",
			Expected: strconv.FormatUint(lastSeq, 10),
			Actual:   strconv.FormatUint(replica.Seq(), 10),
			Seq:      replica.Seq(),
		})
	}

	// Page through the contracts read model and audit each contract in
	// the worker pool
	checked := 0
	var offset uint64
	for {
		contracts, total, err := a.store.ListContracts(ctx, nil, a.config.BatchSize, offset)
		if err != nil {
			return fmt.Errorf("failed to list contracts: %w", err)
		}
		if len(contracts) == 0 {
			break
		}

		for _, row := range contracts {
			a.pool.Submit(func() {
				a.auditContract(ctx, replica, row, report)
			})
		}

		checked += len(contracts)
		offset += uint64(len(contracts))
		if offset >= total {
			break
		}
	}

	// Wait for all checks to complete
	a.pool.StopAndWait()

	// Recreate pool for next cycle
	a.pool = pond.NewPool(
		a.config.WorkerPoolSize,
		pond.WithQueueSize(a.config.BatchSize),
		pond.WithContext(ctx),
	)

	duration := a.clock.Since(startTime)
	logger.InfoCtx(ctx, "Audit cycle completed",
		zap.Duration("duration", duration),
		zap.Uint64("seq", replica.Seq()),
		zap.Int("contracts_checked", checked),
		zap.Int32("violations", violations.Load()),
	)

	// Sleep until the next cycle
	// Use context-aware sleep so we can be interrupted
	if !a.sleep(ctx, a.config.Interval) {
		return ctx.Err()
	}

	return nil
}

// sleep sleeps for the given duration but can be interrupted by context cancellation
// Returns true if sleep completed normally, false if interrupted
func (a *invariantAuditor) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-a.clock.After(duration):
		return true // Sleep completed
	case <-ctx.Done():
		return false // Interrupted by context cancellation
	case <-a.stopChan:
		return false // Interrupted by stop signal
	}
}

// auditContract runs the kind-specific checks for one contract row
func (a *invariantAuditor) auditContract(ctx context.Context, replica Replica, row *schema.Contract, report func(Violation)) {
	switch row.Kind {
	case string(domain.KindToken):
		a.auditTokenSupply(ctx, replica, row.Address, report)
	case string(domain.KindCollection):
		a.auditCollection(ctx, replica, row.Address, report)
	}
}

// auditTokenSupply verifies that the token_balances read model sums to
// the replica's total supply
func (a *invariantAuditor) auditTokenSupply(ctx context.Context, replica Replica, address string, report func(Violation)) {
	addr := common.HexToAddress(address)

	var totalSupply *big.Int
	replica.View(func(db contract.StateDB) {
		totalSupply = fungible.TotalSupply(db, addr)
	})

	sum := new(big.Int)
	var offset uint64
	for {
		balances, total, err := a.store.ListTokenBalances(ctx, address, a.config.BatchSize, offset)
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to list token balances: %w", err), zap.String("contract", address))
			return
		}
		if len(balances) == 0 {
			break
		}

		for _, b := range balances {
			amount, ok := new(big.Int).SetString(b.Balance, 10)
			if !ok {
				report(Violation{
					Check:    CheckTokenSupply,
					Contract: address,
					Detail:   fmt.Sprintf("unparseable balance for holder %s", b.Holder),
					Actual:   b.Balance,
					Seq:      replica.Seq(),
				})
				return
			}
			sum.Add(sum, amount)
		}

		offset += uint64(len(balances))
		if offset >= total {
			break
		}
	}

	if sum.Cmp(totalSupply) != 0 {
		report(Violation{
			Check:    CheckTokenSupply,
			Contract: address,
			Detail:   "sum of holder balances diverges from total supply",
			Expected: totalSupply.String(),
			Actual:   sum.String(),
			Seq:      replica.Seq(),
		})
	}
}

// auditCollection verifies the collection's cap ordering in live state
// and that the collection_tokens read model tracks the minted count
// with gap-free numbering
func (a *invariantAuditor) auditCollection(ctx context.Context, replica Replica, address string, report func(Violation)) {
	addr := common.HexToAddress(address)

	var minted, maxSupply, absoluteMax uint64
	replica.View(func(db contract.StateDB) {
		minted = collection.TotalMinted(db, addr)
		maxSupply = collection.MaxSupply(db, addr)
		absoluteMax = collection.AbsoluteMaxSupply(db, addr)
	})

	if minted > maxSupply {
		report(Violation{
			Check:    CheckCollectionCaps,
			Contract: address,
			Detail:   "minted count exceeds max supply",
			Expected: strconv.FormatUint(maxSupply, 10),
			Actual:   strconv.FormatUint(minted, 10),
			Seq:      replica.Seq(),
		})
	}
	if maxSupply > absoluteMax {
		report(Violation{
			Check:    CheckCollectionCaps,
			Contract: address,
			Detail:   "max supply exceeds the absolute cap",
			Expected: strconv.FormatUint(absoluteMax, 10),
			Actual:   strconv.FormatUint(maxSupply, 10),
			Seq:      replica.Seq(),
		})
	}

	filter := store.CollectionTokenQueryFilter{
		Contract: &address,
		Limit:    1,
	}
	_, total, err := a.store.ListCollectionTokens(ctx, filter)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to count collection tokens: %w", err), zap.String("contract", address))
		return
	}
	if total != minted {
		report(Violation{
			Check:    CheckCollectionRows,
			Contract: address,
			Detail:   "token rows diverge from the minted count",
			Expected: strconv.FormatUint(minted, 10),
			Actual:   strconv.FormatUint(total, 10),
			Seq:      replica.Seq(),
		})
	}

	// Token numbers are issued sequentially from 1, so row `minted` must
	// exist and row `minted+1` must not
	if minted > 0 {
		row, err := a.store.GetCollectionToken(ctx, address, minted)
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to get collection token: %w", err), zap.String("contract", address))
			return
		}
		if row == nil {
			report(Violation{
				Check:    CheckCollectionRows,
				Contract: address,
				Detail:   "missing row for the highest minted token",
				Expected: strconv.FormatUint(minted, 10),
				Seq:      replica.Seq(),
			})
		}
	}
	row, err := a.store.GetCollectionToken(ctx, address, minted+1)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to get collection token: %w", err), zap.String("contract", address))
		return
	}
	if row != nil {
		report(Violation{
			Check:    CheckCollectionRows,
			Contract: address,
			Detail:   "token row exists beyond the minted count",
			Actual:   strconv.FormatUint(minted+1, 10),
			Seq:      replica.Seq(),
		})
	}
}

// reportViolation logs a finding and fires an audit.violation webhook
// event. Audit findings have no journal row, so event IDs are generated
// ULIDs seeded from the clock to stay time-sortable
func (a *invariantAuditor) reportViolation(ctx context.Context, v Violation) {
	logger.ErrorCtx(ctx, fmt.Errorf("invariant violation: %s: %s", v.Check, v.Detail),
		zap.String("check", v.Check),
		zap.String("contract", v.Contract),
		zap.String("expected", v.Expected),
		zap.String("actual", v.Actual),
		zap.Uint64("seq", v.Seq),
	)

	payload, err := json.Marshal(v)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to marshal violation: %w", err))
		return
	}

	eventID := ulid.MustNewDefault(a.clock.Now()).String()

	webhookEvent := webhook.WebhookEvent{
		EventID:   eventID,
		EventType: webhook.EventTypeAuditViolation,
		Timestamp: a.clock.Now(),
		Data: webhook.EventData{
			Contract: v.Contract,
			Payload:  payload,
		},
	}

	// Start webhook notification workflow (fire-and-forget)
	workflowOptions := client.StartWorkflowOptions{
		ID:                    fmt.Sprintf("webhook-notify-%s-%s", webhookEvent.EventType, webhookEvent.EventID),
		TaskQueue:             a.orchestratorTaskQueue,
		WorkflowRunTimeout:    30 * time.Minute,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}

	w := workflows.NewWorkerCore(nil)
	workflowRun, err := a.orchestrator.ExecuteWorkflow(ctx, workflowOptions, w.NotifyWebhookClients, webhookEvent)
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("check", v.Check),
			zap.String("event_type", webhookEvent.EventType),
			zap.String("event_id", webhookEvent.EventID),
		)
		return
	}

	// Log workflow start (handle nil workflowRun from tests)
	if workflowRun != nil {
		logger.InfoCtx(ctx, "Audit violation workflow started",
			zap.String("check", v.Check),
			zap.String("event_type", webhookEvent.EventType),
			zap.String("workflow_id", workflowRun.GetID()),
			zap.String("run_id", workflowRun.GetRunID()),
		)
	}
}

// engineReplicaBuilder replays the journal through the transaction engine
// into an in-memory state replica
type engineReplicaBuilder struct {
	store store.Store
	canon adapter.JCS
	clock adapter.Clock
}

// NewEngineReplicaBuilder creates a replica builder backed by the journal store
func NewEngineReplicaBuilder(st store.Store, canon adapter.JCS, clock adapter.Clock) ReplicaBuilder {
	return &engineReplicaBuilder{
		store: st,
		canon: canon,
		clock: clock,
	}
}

func (b *engineReplicaBuilder) Build(ctx context.Context) (Replica, error) {
	eng := engine.New(state.New(), b.store, b.canon, b.clock, nil)
	if err := eng.Bootstrap(ctx); err != nil {
		return nil, err
	}
	return eng, nil
}
