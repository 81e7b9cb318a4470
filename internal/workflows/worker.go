package workflows

import (
	"go.temporal.io/sdk/workflow"

	"github.com/feral-file/ff-mintgate/internal/webhook"
)

// WorkerCore defines the interface for webhook notification workflows
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockCoreWorker
type WorkerCore interface {
	// NotifyWebhookClients fans a committed journal event out to all
	// webhook clients subscribed to its event type
	NotifyWebhookClients(ctx workflow.Context, event webhook.WebhookEvent) error

	// DeliverWebhook delivers a journal event to a single webhook client
	DeliverWebhook(ctx workflow.Context, clientID string, event webhook.WebhookEvent) error
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor) WorkerCore {
	return &workerCore{
		executor: executor,
	}
}
