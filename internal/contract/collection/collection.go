// Package collection implements the capped, price-gated NFT minting
// contract. A single payable entry point mints batches against strict
// payment matching and forwards proceeds to a treasury; everything else is
// owner-gated configuration.
package collection

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-mintgate/internal/contract"
	"github.com/feral-file/ff-mintgate/internal/contract/nft"
	"github.com/feral-file/ff-mintgate/internal/domain"
)

// MaxPerMint caps how many tokens one mint call may issue.
const MaxPerMint = 300

var (
	nameSlot      = contract.FieldSlot("name")
	symbolSlot    = contract.FieldSlot("symbol")
	unitPriceSlot = contract.FieldSlot("unitPrice")
	maxSupplySlot = contract.FieldSlot("maxSupply")
	absoluteSlot  = contract.FieldSlot("absoluteMaxSupply")
	treasurySlot  = contract.FieldSlot("treasury")
	baseURISlot   = contract.FieldSlot("baseURI")
	uriLockedSlot = contract.FieldSlot("uriLocked")
	shardSizeSlot = contract.FieldSlot("shardSize")
)

// DeployParams are the constructor arguments of the collection contract.
// ShardSize of zero disables metadata folder sharding.
type DeployParams struct {
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	UnitPrice         string `json:"unitPrice"`
	MaxSupply         uint64 `json:"maxSupply"`
	AbsoluteMaxSupply uint64 `json:"absoluteMaxSupply"`
	Treasury          string `json:"treasury"`
	BaseURI           string `json:"baseURI,omitempty"`
	ShardSize         uint64 `json:"shardSize,omitempty"`
}

// MintParams is the payload of the payable mint action.
type MintParams struct {
	Quantity uint64 `json:"quantity"`
}

// SetPriceParams updates the per-token mint price.
type SetPriceParams struct {
	UnitPrice string `json:"unitPrice"`
}

// SetMaxSupplyParams updates the mutable supply cap.
type SetMaxSupplyParams struct {
	MaxSupply uint64 `json:"maxSupply"`
}

// SetTreasuryParams points proceeds at a new treasury.
type SetTreasuryParams struct {
	Treasury string `json:"treasury"`
}

// SetBaseURIParams updates the metadata base URI.
type SetBaseURIParams struct {
	BaseURI string `json:"baseURI"`
}

// TransferOwnershipParams hands contract administration to a new owner.
type TransferOwnershipParams struct {
	NewOwner string `json:"newOwner"`
}

// Deploy initializes the collection at ctx.Self. The treasury must be a
// real address, the unit price nonzero and the mutable cap must fit under
// the immutable absolute cap.
func Deploy(ctx *contract.Context, p DeployParams) error {
	treasury := common.HexToAddress(p.Treasury)
	if domain.IsZeroAddress(treasury) {
		return domain.ErrZeroTreasury
	}
	if p.AbsoluteMaxSupply == 0 {
		return domain.ErrInvalidAbsoluteSupply
	}
	if p.MaxSupply > p.AbsoluteMaxSupply {
		return domain.ErrCapExceedsAbsolute
	}
	price, ok := domain.ParseAmount(p.UnitPrice)
	if !ok || price.Sign() <= 0 {
		return domain.ErrZeroPrice
	}

	contract.SetKind(ctx.State, ctx.Self, domain.KindCollection)
	contract.SetOwner(ctx.State, ctx.Self, ctx.Caller)
	contract.SetString(ctx.State, ctx.Self, nameSlot, p.Name)
	contract.SetString(ctx.State, ctx.Self, symbolSlot, p.Symbol)
	contract.SetBig(ctx.State, ctx.Self, unitPriceSlot, price)
	contract.SetUint64(ctx.State, ctx.Self, maxSupplySlot, p.MaxSupply)
	contract.SetUint64(ctx.State, ctx.Self, absoluteSlot, p.AbsoluteMaxSupply)
	contract.SetAddress(ctx.State, ctx.Self, treasurySlot, treasury)
	contract.SetString(ctx.State, ctx.Self, baseURISlot, p.BaseURI)
	contract.SetUint64(ctx.State, ctx.Self, shardSizeSlot, p.ShardSize)
	return nil
}

// Mint is the single payable entry point. It admits the call through the
// guard and the checks below, forwards the payment to the treasury and only
// then issues the tokens. Any failure reverts the whole operation.
func Mint(ctx *contract.Context, quantity uint64) error {
	if err := contract.EnterGuard(ctx.State, ctx.Self); err != nil {
		return err
	}
	defer contract.ExitGuard(ctx.State, ctx.Self)

	if err := contract.RequireNotPaused(ctx.State, ctx.Self); err != nil {
		return err
	}
	if quantity == 0 {
		return domain.ErrInvalidQuantity
	}
	if quantity > MaxPerMint {
		return domain.ErrExceedsMaxPerMint
	}
	minted := nft.TotalMinted(ctx.State, ctx.Self)
	if minted+quantity > MaxSupply(ctx.State, ctx.Self) {
		return domain.ErrExceedsMaxSupply
	}

	cost := new(big.Int).Mul(UnitPrice(ctx.State, ctx.Self), new(big.Int).SetUint64(quantity))
	value := ctx.Value
	if value == nil {
		value = new(big.Int)
	}
	if value.Cmp(cost) != 0 {
		return domain.ErrWrongPayment
	}

	// Proceeds are forwarded before issuance. The attached value was
	// credited to the contract by the engine, so it moves straight through
	// and never rests here.
	treasury := Treasury(ctx.State, ctx.Self)
	if err := contract.Transfer(ctx.State, ctx.Self, treasury, cost); err != nil {
		return domain.ErrTreasuryTransferFailed
	}

	ids, err := nft.MintBatch(ctx, ctx.Caller, quantity)
	if err != nil {
		return err
	}

	ctx.Emit(domain.EventTypeCollectionMint, domain.CollectionMintData{
		Caller:           ctx.Caller.String(),
		Quantity:         quantity,
		TotalCost:        cost.String(),
		FirstTokenNumber: ids[0],
		LastTokenNumber:  ids[len(ids)-1],
	})
	return nil
}

// SetUnitPrice updates the per-token price. Owner only, price must stay
// nonzero.
func SetUnitPrice(ctx *contract.Context, price *big.Int) error {
	if err := contract.RequireOwner(ctx.State, ctx.Self, ctx.Caller); err != nil {
		return err
	}
	if price == nil || price.Sign() <= 0 {
		return domain.ErrZeroPrice
	}
	contract.SetBig(ctx.State, ctx.Self, unitPriceSlot, price)
	ctx.Emit(domain.EventTypeCollectionPriceChanged, domain.PriceChangedData{
		UnitPrice: price.String(),
	})
	return nil
}

// SetMaxSupply moves the mutable cap. It can never go below what has
// already been minted nor above the immutable absolute cap.
func SetMaxSupply(ctx *contract.Context, cap uint64) error {
	if err := contract.RequireOwner(ctx.State, ctx.Self, ctx.Caller); err != nil {
		return err
	}
	if cap < nft.TotalMinted(ctx.State, ctx.Self) {
		return domain.ErrCapBelowMinted
	}
	if cap > AbsoluteMaxSupply(ctx.State, ctx.Self) {
		return domain.ErrCapExceedsAbsolute
	}
	contract.SetUint64(ctx.State, ctx.Self, maxSupplySlot, cap)
	ctx.Emit(domain.EventTypeCollectionCapChanged, domain.CapChangedData{
		MaxSupply: cap,
	})
	return nil
}

// SetTreasury points future proceeds at a new address.
func SetTreasury(ctx *contract.Context, treasury common.Address) error {
	if err := contract.RequireOwner(ctx.State, ctx.Self, ctx.Caller); err != nil {
		return err
	}
	if domain.IsZeroAddress(treasury) {
		return domain.ErrZeroTreasury
	}
	old := Treasury(ctx.State, ctx.Self)
	contract.SetAddress(ctx.State, ctx.Self, treasurySlot, treasury)
	ctx.Emit(domain.EventTypeCollectionTreasuryChanged, domain.TreasuryChangedData{
		OldTreasury: old.String(),
		NewTreasury: treasury.String(),
	})
	return nil
}

// SetBaseURI replaces the metadata base URI. Rejected once the URI has been
// locked.
func SetBaseURI(ctx *contract.Context, uri string) error {
	if err := contract.RequireOwner(ctx.State, ctx.Self, ctx.Caller); err != nil {
		return err
	}
	if URILocked(ctx.State, ctx.Self) {
		return domain.ErrURILocked
	}
	contract.SetString(ctx.State, ctx.Self, baseURISlot, uri)
	ctx.Emit(domain.EventTypeCollectionBaseURIChanged, domain.BaseURIChangedData{
		BaseURI: uri,
	})
	return nil
}

// LockBaseURI freezes the base URI forever. It needs a URI to freeze and
// can only happen once.
func LockBaseURI(ctx *contract.Context) error {
	if err := contract.RequireOwner(ctx.State, ctx.Self, ctx.Caller); err != nil {
		return err
	}
	if URILocked(ctx.State, ctx.Self) {
		return domain.ErrURIAlreadyLocked
	}
	uri := BaseURI(ctx.State, ctx.Self)
	if uri == "" {
		return domain.ErrURINotSet
	}
	contract.SetBool(ctx.State, ctx.Self, uriLockedSlot, true)
	ctx.Emit(domain.EventTypeCollectionURILocked, domain.URILockedData{
		BaseURI: uri,
	})
	return nil
}

// Pause stops minting. Pausing an already paused collection is rejected.
func Pause(ctx *contract.Context) error {
	if err := contract.RequireOwner(ctx.State, ctx.Self, ctx.Caller); err != nil {
		return err
	}
	if err := contract.RequireNotPaused(ctx.State, ctx.Self); err != nil {
		return err
	}
	contract.SetPaused(ctx.State, ctx.Self, true)
	ctx.Emit(domain.EventTypeCollectionPaused, domain.PausedData{
		Account: ctx.Caller.String(),
	})
	return nil
}

// Unpause resumes minting. Unpausing a running collection is rejected.
func Unpause(ctx *contract.Context) error {
	if err := contract.RequireOwner(ctx.State, ctx.Self, ctx.Caller); err != nil {
		return err
	}
	if err := contract.RequirePaused(ctx.State, ctx.Self); err != nil {
		return err
	}
	contract.SetPaused(ctx.State, ctx.Self, false)
	ctx.Emit(domain.EventTypeCollectionUnpaused, domain.PausedData{
		Account: ctx.Caller.String(),
	})
	return nil
}

// Sweep pays out any balance the contract accidentally holds to the owner.
// Minting forwards proceeds immediately, so in the normal course of
// business there is nothing to sweep and the call is rejected.
func Sweep(ctx *contract.Context) error {
	if err := contract.RequireOwner(ctx.State, ctx.Self, ctx.Caller); err != nil {
		return err
	}
	balance := ctx.State.GetBalance(ctx.Self)
	if balance.Sign() == 0 {
		return domain.ErrNothingToSweep
	}
	owner := contract.Owner(ctx.State, ctx.Self)
	if err := contract.Transfer(ctx.State, ctx.Self, owner, balance); err != nil {
		return domain.ErrSweepTransferFailed
	}
	ctx.Emit(domain.EventTypeCollectionSwept, domain.SweptData{
		Recipient: owner.String(),
		Amount:    balance.String(),
	})
	return nil
}

// --- queries ---

func Name(db contract.StateDB, addr common.Address) string {
	return contract.GetString(db, addr, nameSlot)
}

func Symbol(db contract.StateDB, addr common.Address) string {
	return contract.GetString(db, addr, symbolSlot)
}

func UnitPrice(db contract.StateDB, addr common.Address) *big.Int {
	return contract.GetBig(db, addr, unitPriceSlot)
}

func MaxSupply(db contract.StateDB, addr common.Address) uint64 {
	return contract.GetUint64(db, addr, maxSupplySlot)
}

func AbsoluteMaxSupply(db contract.StateDB, addr common.Address) uint64 {
	return contract.GetUint64(db, addr, absoluteSlot)
}

func Treasury(db contract.StateDB, addr common.Address) common.Address {
	return contract.GetAddress(db, addr, treasurySlot)
}

func BaseURI(db contract.StateDB, addr common.Address) string {
	return contract.GetString(db, addr, baseURISlot)
}

func URILocked(db contract.StateDB, addr common.Address) bool {
	return contract.GetBool(db, addr, uriLockedSlot)
}

func ShardSize(db contract.StateDB, addr common.Address) uint64 {
	return contract.GetUint64(db, addr, shardSizeSlot)
}

// TotalMinted returns how many tokens have been issued.
func TotalMinted(db contract.StateDB, addr common.Address) uint64 {
	return nft.TotalMinted(db, addr)
}

// RemainingSupply returns how many tokens can still be minted under the
// current cap.
func RemainingSupply(db contract.StateDB, addr common.Address) uint64 {
	minted := nft.TotalMinted(db, addr)
	cap := MaxSupply(db, addr)
	if minted >= cap {
		return 0
	}
	return cap - minted
}

// TokenURI computes the metadata location of a minted token: the base URI,
// an optional shard folder derived from the token number, then the number
// itself. The base URI carries its own trailing separator. An empty base
// URI yields an empty result.
func TokenURI(db contract.StateDB, addr common.Address, tokenID uint64) (string, error) {
	if !nft.Exists(db, addr, tokenID) {
		return "", domain.ErrTokenNotFound
	}
	base := BaseURI(db, addr)
	if base == "" {
		return "", nil
	}
	if shardSize := ShardSize(db, addr); shardSize > 0 {
		shard := (tokenID - 1) / shardSize
		return fmt.Sprintf("%s%d/%d", base, shard, tokenID), nil
	}
	return fmt.Sprintf("%s%d", base, tokenID), nil
}
