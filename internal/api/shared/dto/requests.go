package dto

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-mintgate/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-mintgate/internal/api/shared/errors"
	"github.com/feral-file/ff-mintgate/internal/domain"
	internalTypes "github.com/feral-file/ff-mintgate/internal/types"
	"github.com/feral-file/ff-mintgate/internal/webhook"
)

// SubmitTransactionRequest is the signed action envelope body of
// POST /transactions. Contract is the target contract address, or the
// recipient for native transfers; deploys leave it empty.
type SubmitTransactionRequest struct {
	Action    string          `json:"action"`
	Contract  string          `json:"contract,omitempty"`
	Params    json.RawMessage `json:"params,omitempty"`
	Value     string          `json:"value,omitempty"`
	Nonce     uint64          `json:"nonce"`
	Signature string          `json:"signature"`
}

// Validate checks the envelope shape before it reaches the engine. The
// engine re-verifies everything during admission; this keeps obviously
// malformed envelopes out of the submission path.
func (r *SubmitTransactionRequest) Validate() error {
	// Validate: action must be provided and known
	if r.Action == "" {
		return apierrors.NewValidationError("action is required")
	}
	action := domain.ActionType(r.Action)
	if !action.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("unknown action: %s", r.Action))
	}

	// Validate: signature must be provided
	if r.Signature == "" {
		return apierrors.NewValidationError("signature is required")
	}

	// Validate: non-deploy actions must name a target address
	if !action.IsDeploy() && !common.IsHexAddress(r.Contract) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid contract address: %s", r.Contract))
	}

	// Validate: the attached value must be a decimal amount
	if r.Value != "" {
		if _, ok := domain.ParseAmount(r.Value); !ok {
			return apierrors.NewValidationError(fmt.Sprintf("invalid value amount: %s", r.Value))
		}
	}

	return nil
}

// CreateWebhookClientRequest represents the request body for creating a webhook client
type CreateWebhookClientRequest struct {
	WebhookURL       string   `json:"webhook_url"`
	EventFilters     []string `json:"event_filters"`
	RetryMaxAttempts *int     `json:"retry_max_attempts,omitempty"`
}

// Validate validates the request body
func (r *CreateWebhookClientRequest) Validate(debug bool) error {
	// Validate: webhook URL must be provided
	if r.WebhookURL == "" {
		return apierrors.NewValidationError("webhook_url is required")
	}

	// Validate: webhook URL must be valid; plain HTTP is only accepted in debug
	if debug {
		if !internalTypes.IsValidURL(r.WebhookURL) {
			return apierrors.NewValidationError("webhook_url must be a valid URL")
		}
	} else {
		if !internalTypes.IsHTTPSURL(r.WebhookURL) {
			return apierrors.NewValidationError("webhook_url must be a valid HTTPS URL")
		}
	}

	// Validate: event filters must be provided
	if len(r.EventFilters) == 0 {
		return apierrors.NewValidationError("event_filters is required and must not be empty")
	}

	// Validate: bounded number of filters
	if len(r.EventFilters) > constants.MAX_EVENT_FILTERS {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d event filters allowed", constants.MAX_EVENT_FILTERS))
	}

	// Validate: each event filter must be supported
	for _, eventType := range r.EventFilters {
		if !webhook.IsValidEventType(eventType) {
			return apierrors.NewValidationError(fmt.Sprintf("unsupported event type: %s. Supported types: %v", eventType, webhook.SupportedEventTypes))
		}
	}

	// Validate: retry_max_attempts must be valid if provided
	if r.RetryMaxAttempts != nil {
		if *r.RetryMaxAttempts < 0 || *r.RetryMaxAttempts > constants.MAX_RETRY_MAX_ATTEMPTS {
			return apierrors.NewValidationError(fmt.Sprintf("retry_max_attempts must be between 0 and %d", constants.MAX_RETRY_MAX_ATTEMPTS))
		}
	}

	return nil
}
