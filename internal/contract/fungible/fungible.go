// Package fungible implements the fixed-supply fungible token contract.
// The entire supply is minted to a recipient at deploy time; afterwards the
// contract only moves balances around, it never mints or burns.
package fungible

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-mintgate/internal/contract"
	"github.com/feral-file/ff-mintgate/internal/domain"
)

var (
	nameSlot        = contract.FieldSlot("name")
	symbolSlot      = contract.FieldSlot("symbol")
	decimalsSlot    = contract.FieldSlot("decimals")
	totalSupplySlot = contract.FieldSlot("totalSupply")
)

func balanceSlot(holder common.Address) common.Hash {
	return contract.MappingSlot("balance", holder.Bytes())
}

func allowanceSlot(owner, spender common.Address) common.Hash {
	return contract.MappingSlot("allowance", owner.Bytes(), spender.Bytes())
}

// DeployParams are the constructor arguments of the token contract.
type DeployParams struct {
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	Decimals      *uint8 `json:"decimals,omitempty"`
	InitialSupply string `json:"initialSupply"`
	Recipient     string `json:"recipient"`
}

// TransferParams moves tokens from the caller to a recipient.
type TransferParams struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// ApproveParams grants a spender the right to move the caller's tokens.
type ApproveParams struct {
	Spender string `json:"spender"`
	Amount  string `json:"amount"`
}

// TransferFromParams moves tokens on behalf of a holder who approved the
// caller beforehand.
type TransferFromParams struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// TransferOwnershipParams hands contract administration to a new owner.
type TransferOwnershipParams struct {
	NewOwner string `json:"newOwner"`
}

// Deploy initializes the token at ctx.Self and mints the full supply to the
// recipient. The supply must be positive and the recipient must not be the
// zero address.
func Deploy(ctx *contract.Context, name, symbol string, decimals uint8, supply *big.Int, recipient common.Address) error {
	if supply == nil || supply.Sign() <= 0 {
		return domain.ErrInvalidSupply
	}
	if domain.IsZeroAddress(recipient) {
		return domain.ErrZeroAddress
	}

	contract.SetKind(ctx.State, ctx.Self, domain.KindToken)
	contract.SetOwner(ctx.State, ctx.Self, ctx.Caller)
	contract.SetString(ctx.State, ctx.Self, nameSlot, name)
	contract.SetString(ctx.State, ctx.Self, symbolSlot, symbol)
	contract.SetUint64(ctx.State, ctx.Self, decimalsSlot, uint64(decimals))
	contract.SetBig(ctx.State, ctx.Self, totalSupplySlot, supply)
	contract.SetBig(ctx.State, ctx.Self, balanceSlot(recipient), supply)

	ctx.Emit(domain.EventTypeTokenTransfer, domain.TokenTransferData{
		From:   domain.ZERO_ADDRESS,
		To:     recipient.String(),
		Amount: supply.String(),
	})
	return nil
}

// Transfer moves amount from the caller to the recipient.
func Transfer(ctx *contract.Context, to common.Address, amount *big.Int) error {
	return transfer(ctx, ctx.Caller, to, amount)
}

// Approve lets spender move up to amount of the caller's tokens. A second
// call overwrites the previous allowance.
func Approve(ctx *contract.Context, spender common.Address, amount *big.Int) error {
	if domain.IsZeroAddress(spender) {
		return domain.ErrZeroAddress
	}
	contract.SetBig(ctx.State, ctx.Self, allowanceSlot(ctx.Caller, spender), amount)
	ctx.Emit(domain.EventTypeTokenApproval, domain.TokenApprovalData{
		Owner:   ctx.Caller.String(),
		Spender: spender.String(),
		Amount:  amount.String(),
	})
	return nil
}

// TransferFrom moves amount from a holder to a recipient, spending the
// caller's allowance. The allowance is checked before the balance.
func TransferFrom(ctx *contract.Context, from, to common.Address, amount *big.Int) error {
	allowance := contract.GetBig(ctx.State, ctx.Self, allowanceSlot(from, ctx.Caller))
	if allowance.Cmp(amount) < 0 {
		return domain.ErrInsufficientAllowance
	}
	if err := transfer(ctx, from, to, amount); err != nil {
		return err
	}
	contract.SetBig(ctx.State, ctx.Self, allowanceSlot(from, ctx.Caller), allowance.Sub(allowance, amount))
	return nil
}

func transfer(ctx *contract.Context, from, to common.Address, amount *big.Int) error {
	if domain.IsZeroAddress(to) {
		return domain.ErrZeroAddress
	}
	fromBalance := contract.GetBig(ctx.State, ctx.Self, balanceSlot(from))
	if fromBalance.Cmp(amount) < 0 {
		return domain.ErrInsufficientBalance
	}
	contract.SetBig(ctx.State, ctx.Self, balanceSlot(from), fromBalance.Sub(fromBalance, amount))
	toBalance := contract.GetBig(ctx.State, ctx.Self, balanceSlot(to))
	contract.SetBig(ctx.State, ctx.Self, balanceSlot(to), toBalance.Add(toBalance, amount))

	ctx.Emit(domain.EventTypeTokenTransfer, domain.TokenTransferData{
		From:   from.String(),
		To:     to.String(),
		Amount: amount.String(),
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

func Decimals(db contract.StateDB, addr common.Address) uint8 {
	return uint8(contract.GetUint64(db, addr, decimalsSlot))
}

func TotalSupply(db contract.StateDB, addr common.Address) *big.Int {
	return contract.GetBig(db, addr, totalSupplySlot)
}

func BalanceOf(db contract.StateDB, addr, holder common.Address) *big.Int {
	return contract.GetBig(db, addr, balanceSlot(holder))
}

func Allowance(db contract.StateDB, addr, owner, spender common.Address) *big.Int {
	return contract.GetBig(db, addr, allowanceSlot(owner, spender))
}
