package domain

import (
	"encoding/json"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ContractKind represents the kind of a deployed contract
type ContractKind string

const (
	// KindToken is the fixed-supply fungible token contract
	KindToken ContractKind = "token"
	// KindCollection is the capped, price-gated NFT minting contract
	KindCollection ContractKind = "collection"
)

// IsValidContractKind checks if a contract kind is valid
func IsValidContractKind(kind ContractKind) bool {
	return kind == KindToken || kind == KindCollection
}

// ActionType identifies a transaction action dispatched by the engine
type ActionType string

const (
	ActionNativeTransfer ActionType = "native.transfer"

	ActionTokenDeploy            ActionType = "token.deploy"
	ActionTokenTransfer          ActionType = "token.transfer"
	ActionTokenApprove           ActionType = "token.approve"
	ActionTokenTransferFrom      ActionType = "token.transfer_from"
	ActionTokenTransferOwnership ActionType = "token.transfer_ownership"

	ActionCollectionDeploy            ActionType = "collection.deploy"
	ActionCollectionMint              ActionType = "collection.mint"
	ActionCollectionSetPrice          ActionType = "collection.set_price"
	ActionCollectionSetMaxSupply      ActionType = "collection.set_max_supply"
	ActionCollectionSetTreasury       ActionType = "collection.set_treasury"
	ActionCollectionSetBaseURI        ActionType = "collection.set_base_uri"
	ActionCollectionLockBaseURI       ActionType = "collection.lock_base_uri"
	ActionCollectionPause             ActionType = "collection.pause"
	ActionCollectionUnpause           ActionType = "collection.unpause"
	ActionCollectionSweep             ActionType = "collection.sweep"
	ActionCollectionTransferOwnership ActionType = "collection.transfer_ownership"
)

// Valid checks if an action type is known to the engine
func (a ActionType) Valid() bool {
	switch a {
	case ActionNativeTransfer,
		ActionTokenDeploy, ActionTokenTransfer, ActionTokenApprove,
		ActionTokenTransferFrom, ActionTokenTransferOwnership,
		ActionCollectionDeploy, ActionCollectionMint, ActionCollectionSetPrice,
		ActionCollectionSetMaxSupply, ActionCollectionSetTreasury,
		ActionCollectionSetBaseURI, ActionCollectionLockBaseURI,
		ActionCollectionPause, ActionCollectionUnpause, ActionCollectionSweep,
		ActionCollectionTransferOwnership:
		return true
	default:
		return false
	}
}

// IsDeploy reports whether the action creates a new contract instance
func (a ActionType) IsDeploy() bool {
	return a == ActionTokenDeploy || a == ActionCollectionDeploy
}

// Kind returns the contract kind an action addresses, or "" for native actions
func (a ActionType) Kind() ContractKind {
	prefix, _, ok := strings.Cut(string(a), ".")
	if !ok {
		return ""
	}
	switch ContractKind(prefix) {
	case KindToken:
		return KindToken
	case KindCollection:
		return KindCollection
	default:
		return ""
	}
}

// EventType represents the type of a contract event
type EventType string

const (
	EventTypeTokenTransfer EventType = "token.transfer"
	EventTypeTokenApproval EventType = "token.approval"

	EventTypeNFTTransfer       EventType = "nft.transfer"
	EventTypeNFTApproval       EventType = "nft.approval"
	EventTypeNFTApprovalForAll EventType = "nft.approval_for_all"

	EventTypeCollectionMint            EventType = "collection.mint"
	EventTypeCollectionPriceChanged    EventType = "collection.price_changed"
	EventTypeCollectionCapChanged      EventType = "collection.cap_changed"
	EventTypeCollectionBaseURIChanged  EventType = "collection.base_uri_changed"
	EventTypeCollectionURILocked       EventType = "collection.uri_locked"
	EventTypeCollectionTreasuryChanged EventType = "collection.treasury_changed"
	EventTypeCollectionSwept           EventType = "collection.swept"
	EventTypeCollectionPaused          EventType = "collection.paused"
	EventTypeCollectionUnpaused        EventType = "collection.unpaused"

	EventTypeOwnershipTransferred EventType = "contract.ownership_transferred"
)

// Subject returns the NATS subject for an event type, e.g. "events.collection.mint"
func (e EventType) Subject() string {
	return "events." + string(e)
}

// Event represents a committed contract event
// This is the standard format stored in the journal and published to NATS
type Event struct {
	TxHash    string          `json:"tx_hash"`   // hash of the transaction that emitted the event
	TxSeq     uint64          `json:"tx_seq"`    // journal sequence of the transaction
	Index     uint            `json:"index"`     // position of the event within the transaction
	Contract  string          `json:"contract"`  // emitting contract address
	Type      EventType       `json:"type"`      // event type
	Data      json.RawMessage `json:"data"`      // event payload, schema fixed per type
	Timestamp time.Time       `json:"timestamp"` // acceptance timestamp of the transaction
}

// EventRecord is an Event together with its journal ID.
// The ID is assigned when the event row is written and is the cursor
// position the relay tracks, so downstream consumers can resume and
// de-duplicate on it.
type EventRecord struct {
	ID uint64 `json:"id"`
	Event
}

// TokenTransferData is the payload of token.transfer events.
// From is the zero address for the construction-time supply mint.
type TokenTransferData struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// TokenApprovalData is the payload of token.approval events
type TokenApprovalData struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
	Amount  string `json:"amount"`
}

// NFTTransferData is the payload of nft.transfer events.
// From is the zero address for mints.
type NFTTransferData struct {
	From        string `json:"from"`
	To          string `json:"to"`
	TokenNumber uint64 `json:"token_number"`
}

// NFTApprovalData is the payload of nft.approval events
type NFTApprovalData struct {
	Owner       string `json:"owner"`
	Approved    string `json:"approved"`
	TokenNumber uint64 `json:"token_number"`
}

// NFTApprovalForAllData is the payload of nft.approval_for_all events
type NFTApprovalForAllData struct {
	Owner    string `json:"owner"`
	Operator string `json:"operator"`
	Approved bool   `json:"approved"`
}

// CollectionMintData is the payload of collection.mint events
type CollectionMintData struct {
	Caller           string `json:"caller"`
	Quantity         uint64 `json:"quantity"`
	TotalCost        string `json:"total_cost"`
	FirstTokenNumber uint64 `json:"first_token_number"`
	LastTokenNumber  uint64 `json:"last_token_number"`
}

// PriceChangedData is the payload of collection.price_changed events
type PriceChangedData struct {
	UnitPrice string `json:"unit_price"`
}

// CapChangedData is the payload of collection.cap_changed events
type CapChangedData struct {
	MaxSupply uint64 `json:"max_supply"`
}

// BaseURIChangedData is the payload of collection.base_uri_changed events
type BaseURIChangedData struct {
	BaseURI string `json:"base_uri"`
}

// URILockedData is the payload of collection.uri_locked events. It carries
// the base URI frozen by the lock.
type URILockedData struct {
	BaseURI string `json:"base_uri"`
}

// TreasuryChangedData is the payload of collection.treasury_changed events
type TreasuryChangedData struct {
	OldTreasury string `json:"old_treasury"`
	NewTreasury string `json:"new_treasury"`
}

// SweptData is the payload of collection.swept events
type SweptData struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

// PausedData is the payload of collection.paused and collection.unpaused
// events
type PausedData struct {
	Account string `json:"account"`
}

// OwnershipTransferredData is the payload of contract.ownership_transferred events
type OwnershipTransferredData struct {
	OldOwner string `json:"old_owner"`
	NewOwner string `json:"new_owner"`
}

// TxStatus represents the terminal status of a committed transaction
type TxStatus string

const (
	// TxStatusSuccess means the action applied all of its effects
	TxStatusSuccess TxStatus = "success"
	// TxStatusFailed means the action reverted; only the nonce was consumed
	TxStatusFailed TxStatus = "failed"
)

// Receipt is the committed outcome of a transaction
type Receipt struct {
	TxHash    string     `json:"tx_hash"`
	Seq       uint64     `json:"seq"`
	Action    ActionType `json:"action"`
	From      string     `json:"from"`
	Contract  string     `json:"contract,omitempty"` // target contract, or the deployed address for deploys
	Value     string     `json:"value"`
	Nonce     uint64     `json:"nonce"`
	Status    TxStatus   `json:"status"`
	Reason    string     `json:"reason,omitempty"` // revert reason when Status is failed
	Events    []Event    `json:"events"`
	Timestamp time.Time  `json:"timestamp"`
}

// Succeeded reports whether the receipt committed its effects
func (r *Receipt) Succeeded() bool {
	return r.Status == TxStatusSuccess
}

// TxCommit is everything the engine hands to the store when sealing one
// transaction: the receipt, the raw signed envelope for replay, and the
// native balances the transaction touched.
type TxCommit struct {
	Receipt  *Receipt
	Envelope json.RawMessage
	// Balances maps touched accounts to their post-transaction native
	// balance, as decimal strings.
	Balances map[string]string
}

// TxRecord is one committed journal row as read back for replay.
type TxRecord struct {
	Seq       uint64
	TxHash    string
	Envelope  json.RawMessage
	Status    TxStatus
	Reason    string
	Timestamp time.Time
}

// NormalizeAddresses normalizes a list of addresses to checksum format
func NormalizeAddresses(addresses []string) []string {
	for i, address := range addresses {
		addresses[i] = NormalizeAddress(address)
	}
	return addresses
}

// NormalizeAddress normalizes an address to checksum format
func NormalizeAddress(address string) string {
	if common.IsHexAddress(address) {
		return common.HexToAddress(address).String()
	}
	return address
}

// IsZeroAddress reports whether an address is unset or the zero address
func IsZeroAddress(address common.Address) bool {
	return address == (common.Address{})
}

// ParseAmount parses a non-negative decimal amount string into a big integer
func ParseAmount(s string) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, false
	}
	return v, true
}

// FormatAmount formats a big integer amount as a decimal string.
// A nil amount formats as "0".
func FormatAmount(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
