package dto

import (
	"encoding/json"
	"time"

	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/store/schema"
)

// ReceiptResponse is the synchronous outcome of a submitted envelope. A
// failed receipt is a committed outcome too: the envelope is in the journal
// with its revert reason and a consumed nonce.
type ReceiptResponse struct {
	TxHash    string                 `json:"tx_hash"`
	Seq       uint64                 `json:"seq"`
	Action    string                 `json:"action"`
	From      string                 `json:"from"`
	Contract  string                 `json:"contract,omitempty"`
	Value     string                 `json:"value"`
	Nonce     uint64                 `json:"nonce"`
	Status    string                 `json:"status"`
	Reason    string                 `json:"reason,omitempty"`
	Events    []ReceiptEventResponse `json:"events"`
	Timestamp time.Time              `json:"timestamp"`
}

// ReceiptEventResponse is an event as it appears on a fresh receipt, before
// its journal row ID is known
type ReceiptEventResponse struct {
	EventIndex uint            `json:"event_index"`
	Contract   string          `json:"contract"`
	EventType  string          `json:"event_type"`
	Data       json.RawMessage `json:"data"`
}

// TransactionResponse represents a committed journal row
type TransactionResponse struct {
	Seq       uint64          `json:"seq"`
	TxHash    string          `json:"tx_hash"`
	Action    string          `json:"action"`
	Sender    string          `json:"sender"`
	Contract  string          `json:"contract,omitempty"`
	Value     string          `json:"value"`
	Nonce     uint64          `json:"nonce"`
	Status    string          `json:"status"`
	Reason    string          `json:"reason,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	Events    []EventResponse `json:"events,omitempty"`
}

// TransactionListResponse represents a paginated list of transactions
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"items"`
	Offset       *uint64               `json:"offset,omitempty"`
	Total        uint64                `json:"total"`
}

// EventResponse represents a committed event row
type EventResponse struct {
	ID         uint64          `json:"id"`
	TxSeq      uint64          `json:"tx_seq"`
	TxHash     string          `json:"tx_hash"`
	EventIndex uint            `json:"event_index"`
	Contract   string          `json:"contract"`
	EventType  string          `json:"event_type"`
	Data       json.RawMessage `json:"data"`
	Timestamp  time.Time       `json:"timestamp"`
}

// EventListResponse represents a paginated list of events
type EventListResponse struct {
	Events []EventResponse `json:"items"`
	Offset *uint64         `json:"offset,omitempty"`
	Total  uint64          `json:"total"`
}

// AccountResponse represents the native view of an account: its balance
// and the nonce its next envelope must carry
type AccountResponse struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
	Nonce   uint64 `json:"nonce"`
}

// TokenBalanceResponse represents a holder's balance on a token contract
type TokenBalanceResponse struct {
	Contract string `json:"contract"`
	Holder   string `json:"holder"`
	Balance  string `json:"balance"`
}

// AllowanceResponse represents a spender allowance on a token contract
type AllowanceResponse struct {
	Contract  string `json:"contract"`
	Owner     string `json:"owner"`
	Spender   string `json:"spender"`
	Allowance string `json:"allowance"`
}

// CreateWebhookClientResponse represents the response for creating a webhook
// client. The secret is only ever returned here.
type CreateWebhookClientResponse struct {
	ClientID         string    `json:"client_id"`
	WebhookURL       string    `json:"webhook_url"`
	WebhookSecret    string    `json:"webhook_secret"`
	EventFilters     []string  `json:"event_filters"`
	IsActive         bool      `json:"is_active"`
	RetryMaxAttempts int       `json:"retry_max_attempts"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// MapReceiptToDTO maps a domain.Receipt to ReceiptResponse
func MapReceiptToDTO(receipt *domain.Receipt) *ReceiptResponse {
	if receipt == nil {
		return nil
	}

	events := make([]ReceiptEventResponse, len(receipt.Events))
	for i, event := range receipt.Events {
		events[i] = ReceiptEventResponse{
			EventIndex: event.Index,
			Contract:   event.Contract,
			EventType:  string(event.Type),
			Data:       event.Data,
		}
	}

	return &ReceiptResponse{
		TxHash:    receipt.TxHash,
		Seq:       receipt.Seq,
		Action:    string(receipt.Action),
		From:      receipt.From,
		Contract:  receipt.Contract,
		Value:     receipt.Value,
		Nonce:     receipt.Nonce,
		Status:    string(receipt.Status),
		Reason:    receipt.Reason,
		Events:    events,
		Timestamp: receipt.Timestamp,
	}
}

// MapTransactionToDTO maps a schema.Transaction to TransactionResponse
func MapTransactionToDTO(tx *schema.Transaction) *TransactionResponse {
	if tx == nil {
		return nil
	}

	return &TransactionResponse{
		Seq:       tx.Seq,
		TxHash:    tx.TxHash,
		Action:    tx.Action,
		Sender:    tx.Sender,
		Contract:  tx.Contract,
		Value:     tx.Value,
		Nonce:     tx.Nonce,
		Status:    string(tx.Status),
		Reason:    tx.Reason,
		Timestamp: tx.Timestamp,
	}
}

// MapEventToDTO maps a schema.Event to EventResponse
func MapEventToDTO(event *schema.Event) *EventResponse {
	if event == nil {
		return nil
	}

	return &EventResponse{
		ID:         event.ID,
		TxSeq:      event.TxSeq,
		TxHash:     event.TxHash,
		EventIndex: event.EventIndex,
		Contract:   event.Contract,
		EventType:  event.EventType,
		Data:       json.RawMessage(event.Data),
		Timestamp:  event.Timestamp,
	}
}
