package webhook

import (
	"encoding/json"
	"time"

	"github.com/feral-file/ff-mintgate/internal/domain"
)

// Event filter constants. Client filters name journal event types
// (e.g. "collection.mint", "nft.transfer", "token.transfer").
const (
	// EventTypeAuditViolation is fired by the auditor when an invariant
	// check fails; it is the one event type with no journal row
	EventTypeAuditViolation = "audit.violation"

	// EventTypeWildcard is a special filter that matches all event types
	EventTypeWildcard = "*"
)

// SupportedEventTypes lists every event type a client filter may name.
// Journal event types are defined by the domain package; audit.violation
// is emitted by the auditor on top of them.
var SupportedEventTypes = []string{
	string(domain.EventTypeTokenTransfer),
	string(domain.EventTypeTokenApproval),
	string(domain.EventTypeNFTTransfer),
	string(domain.EventTypeNFTApproval),
	string(domain.EventTypeNFTApprovalForAll),
	string(domain.EventTypeCollectionMint),
	string(domain.EventTypeCollectionPriceChanged),
	string(domain.EventTypeCollectionCapChanged),
	string(domain.EventTypeCollectionBaseURIChanged),
	string(domain.EventTypeCollectionURILocked),
	string(domain.EventTypeCollectionTreasuryChanged),
	string(domain.EventTypeCollectionSwept),
	string(domain.EventTypeCollectionPaused),
	string(domain.EventTypeCollectionUnpaused),
	string(domain.EventTypeOwnershipTransferred),
	EventTypeAuditViolation,
	EventTypeWildcard,
}

// IsValidEventType checks whether an event type can be used as a client filter
func IsValidEventType(eventType string) bool {
	for _, t := range SupportedEventTypes {
		if t == eventType {
			return true
		}
	}
	return false
}

// WebhookEvent represents a webhook event to be delivered to clients
type WebhookEvent struct {
	// EventID is a unique identifier for this event (journal event ID, strictly increasing)
	EventID string `json:"event_id"`
	// EventType is the type of event (e.g., "collection.mint")
	EventType string `json:"event_type"`
	// Timestamp is when the event was generated
	Timestamp time.Time `json:"timestamp"`
	// Data contains the event-specific payload
	Data EventData `json:"data"`
}

// EventData contains the webhook event payload
type EventData struct {
	// Contract is the address of the emitting contract
	Contract string `json:"contract"`
	// TxHash is the hash of the transaction that emitted the event
	TxHash string `json:"tx_hash"`
	// TxSeq is the journal sequence of the emitting transaction
	TxSeq uint64 `json:"tx_seq"`
	// Payload is the event payload as emitted by the contract
	Payload json.RawMessage `json:"payload"`
}

// DeliveryResult represents the result of a webhook delivery attempt
type DeliveryResult struct {
	// Success indicates whether the delivery was successful
	Success bool
	// StatusCode is the HTTP status code returned by the webhook endpoint
	StatusCode int
	// Body is the response body (limited to 4KB)
	Body string
	// Error contains error details if delivery failed
	Error string
}
