package auditor

import (
	"context"

	"github.com/feral-file/ff-mintgate/internal/contract"
)

// Auditor defines the interface for invariant auditor implementations
// Auditors are long-running background tasks that periodically verify
// journal, live state and read models against each other
//
//go:generate mockgen -source=auditor.go -destination=../mocks/auditor.go -package=mocks -mock_names=Auditor=MockAuditor,Replica=MockReplica,ReplicaBuilder=MockReplicaBuilder
type Auditor interface {
	// Start begins the auditor's main loop
	// This is a blocking call that runs until the context is canceled
	Start(ctx context.Context) error

	// Stop gracefully stops the auditor
	// This should wait for any in-progress audit work to complete
	Stop(ctx context.Context) error

	// Name returns the auditor's name for logging and identification
	Name() string
}

// Replica is an isolated state snapshot replayed from the journal.
// Checks read it instead of the serving engine so an audit cycle never
// contends with transaction submission
type Replica interface {
	// Seq returns the journal sequence the replica was replayed up to
	Seq() uint64

	// View runs fn against the replica under a read snapshot
	View(fn func(db contract.StateDB))
}

// ReplicaBuilder replays the journal into a fresh Replica
type ReplicaBuilder interface {
	Build(ctx context.Context) (Replica, error)
}
