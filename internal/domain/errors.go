package domain

import "errors"

// Host errors surfaced before an action reaches contract code.
var (
	// ErrInvalidSignature is returned when a transaction signature does not verify
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrInvalidNonce is returned when a transaction nonce does not match the sender's next nonce
	ErrInvalidNonce = errors.New("invalid nonce")

	// ErrUnknownAction is returned when no handler is registered for an action
	ErrUnknownAction = errors.New("unknown action")

	// ErrInvalidValue is returned when the attached value is not a valid amount
	ErrInvalidValue = errors.New("invalid value amount")

	// ErrInvalidAddress is returned when the target contract address does not parse
	ErrInvalidAddress = errors.New("invalid contract address")

	// ErrContractNotFound is returned when an action addresses a contract that was never deployed
	ErrContractNotFound = errors.New("contract not found")

	// ErrWrongContractKind is returned when an action addresses a contract of another kind
	ErrWrongContractKind = errors.New("wrong contract kind")

	// ErrInsufficientFunds is returned when the sender cannot cover the attached value
	ErrInsufficientFunds = errors.New("insufficient balance for transfer")

	// ErrNonPayable is returned when value is attached to an action that does not accept payment
	ErrNonPayable = errors.New("action does not accept payment")

	// ErrSenderDenied is returned when the sender address is on the denylist
	ErrSenderDenied = errors.New("sender address denied")

	// ErrGenesisExists is returned when initializing genesis over an existing one
	ErrGenesisExists = errors.New("genesis already initialized")

	// ErrGenesisNotFound is returned when the host starts without a genesis document
	ErrGenesisNotFound = errors.New("genesis not initialized")

	// ErrReplayDivergence is returned when re-executing the journal produces a different outcome
	ErrReplayDivergence = errors.New("replay divergence detected")
)

// Contract revert reasons. Each failure class carries a distinct reason
// so callers can tell rejections apart from the receipt alone.
var (
	// ErrNotOwner is returned when an owner-gated action is called by another address
	ErrNotOwner = errors.New("caller is not the owner")

	// ErrZeroAddress is returned when an address argument is the zero address
	ErrZeroAddress = errors.New("zero address not allowed")

	// ErrPaused is returned when a paused contract receives a gated action
	ErrPaused = errors.New("paused")

	// ErrNotPaused is returned when unpausing a contract that is not paused
	ErrNotPaused = errors.New("not paused")

	// ErrReentrantCall is returned when a guarded operation is re-entered
	ErrReentrantCall = errors.New("reentrant call")

	// ErrInvalidSupply is returned when deploying a token with a non-positive supply
	ErrInvalidSupply = errors.New("total supply must be positive")

	// ErrInsufficientBalance is returned when a token transfer exceeds the sender's balance
	ErrInsufficientBalance = errors.New("transfer amount exceeds balance")

	// ErrInsufficientAllowance is returned when transferFrom exceeds the approved amount
	ErrInsufficientAllowance = errors.New("insufficient allowance")

	// ErrTokenNotFound is returned when querying or moving a token that was never minted
	ErrTokenNotFound = errors.New("token not found")

	// ErrNotApproved is returned when moving an NFT without ownership or approval
	ErrNotApproved = errors.New("caller is not owner nor approved")

	// ErrInvalidQuantity is returned when minting zero tokens
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrExceedsMaxPerMint is returned when a mint exceeds the per-transaction limit
	ErrExceedsMaxPerMint = errors.New("exceeds max per mint")

	// ErrExceedsMaxSupply is returned when a mint would pass the supply cap
	ErrExceedsMaxSupply = errors.New("exceeds max supply")

	// ErrWrongPayment is returned when the attached value is not exactly price times quantity
	ErrWrongPayment = errors.New("incorrect payment")

	// ErrTreasuryTransferFailed is returned when forwarding mint proceeds to the treasury fails
	ErrTreasuryTransferFailed = errors.New("treasury transfer failed")

	// ErrZeroPrice is returned when setting a zero unit price
	ErrZeroPrice = errors.New("price must be nonzero")

	// ErrCapBelowMinted is returned when setting the supply cap under the minted count
	ErrCapBelowMinted = errors.New("below current supply")

	// ErrCapExceedsAbsolute is returned when the supply cap would pass the absolute ceiling
	ErrCapExceedsAbsolute = errors.New("exceeds absolute max supply")

	// ErrInvalidAbsoluteSupply is returned when deploying with a non-positive absolute cap
	ErrInvalidAbsoluteSupply = errors.New("absolute max supply must be positive")

	// ErrZeroTreasury is returned when the treasury would become the zero address
	ErrZeroTreasury = errors.New("treasury is the zero address")

	// ErrURILocked is returned when changing the base URI after it was locked
	ErrURILocked = errors.New("base uri is locked")

	// ErrURIAlreadyLocked is returned when locking an already locked base URI
	ErrURIAlreadyLocked = errors.New("base uri already locked")

	// ErrURINotSet is returned when locking before any base URI was set
	ErrURINotSet = errors.New("base uri not set")

	// ErrNothingToSweep is returned when sweeping a contract that holds no balance
	ErrNothingToSweep = errors.New("no balance to sweep")

	// ErrSweepTransferFailed is returned when forwarding swept funds to the owner fails
	ErrSweepTransferFailed = errors.New("sweep transfer failed")
)
