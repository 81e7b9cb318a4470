// Package nft implements the non-fungible ownership ledger the collection
// contract mints into. Tokens are numbered sequentially starting at one,
// token zero never exists.
package nft

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-mintgate/internal/contract"
	"github.com/feral-file/ff-mintgate/internal/domain"
)

var totalMintedSlot = contract.FieldSlot("totalMinted")

func tokenKey(tokenID uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], tokenID)
	return buf[:]
}

func ownerSlot(tokenID uint64) common.Hash {
	return contract.MappingSlot("tokenOwner", tokenKey(tokenID))
}

func holdingsSlot(holder common.Address) common.Hash {
	return contract.MappingSlot("holdings", holder.Bytes())
}

func approvalSlot(tokenID uint64) common.Hash {
	return contract.MappingSlot("tokenApproval", tokenKey(tokenID))
}

func operatorSlot(owner, operator common.Address) common.Hash {
	return contract.MappingSlot("operatorApproval", owner.Bytes(), operator.Bytes())
}

// MintBatch issues quantity sequential tokens to the recipient and returns
// their numbers. The first token of a fresh ledger is number one. Supply
// limits are the caller's responsibility, the ledger itself is unbounded.
func MintBatch(ctx *contract.Context, to common.Address, quantity uint64) ([]uint64, error) {
	if domain.IsZeroAddress(to) {
		return nil, domain.ErrZeroAddress
	}
	if quantity == 0 {
		return nil, domain.ErrInvalidQuantity
	}

	minted := contract.GetUint64(ctx.State, ctx.Self, totalMintedSlot)
	ids := make([]uint64, 0, quantity)
	for i := uint64(1); i <= quantity; i++ {
		id := minted + i
		contract.SetAddress(ctx.State, ctx.Self, ownerSlot(id), to)
		ids = append(ids, id)
		ctx.Emit(domain.EventTypeNFTTransfer, domain.NFTTransferData{
			From:        domain.ZERO_ADDRESS,
			To:          to.String(),
			TokenNumber: id,
		})
	}
	contract.SetUint64(ctx.State, ctx.Self, totalMintedSlot, minted+quantity)
	contract.SetUint64(ctx.State, ctx.Self, holdingsSlot(to),
		contract.GetUint64(ctx.State, ctx.Self, holdingsSlot(to))+quantity)
	return ids, nil
}

// TransferFrom moves a token between holders. The caller must be the owner,
// the per-token approved account or an approved operator. Any per-token
// approval is cleared by the transfer.
func TransferFrom(ctx *contract.Context, from, to common.Address, tokenID uint64) error {
	owner, err := OwnerOf(ctx.State, ctx.Self, tokenID)
	if err != nil {
		return err
	}
	if owner != from {
		return domain.ErrNotApproved
	}
	if !canOperate(ctx.State, ctx.Self, owner, ctx.Caller, tokenID) {
		return domain.ErrNotApproved
	}
	if domain.IsZeroAddress(to) {
		return domain.ErrZeroAddress
	}

	contract.SetAddress(ctx.State, ctx.Self, approvalSlot(tokenID), common.Address{})
	contract.SetAddress(ctx.State, ctx.Self, ownerSlot(tokenID), to)
	contract.SetUint64(ctx.State, ctx.Self, holdingsSlot(from),
		contract.GetUint64(ctx.State, ctx.Self, holdingsSlot(from))-1)
	contract.SetUint64(ctx.State, ctx.Self, holdingsSlot(to),
		contract.GetUint64(ctx.State, ctx.Self, holdingsSlot(to))+1)

	ctx.Emit(domain.EventTypeNFTTransfer, domain.NFTTransferData{
		From:        from.String(),
		To:          to.String(),
		TokenNumber: tokenID,
	})
	return nil
}

// Approve lets the spender move one specific token. Passing the zero
// address clears a previous approval. Only the token owner or an approved
// operator may call it.
func Approve(ctx *contract.Context, spender common.Address, tokenID uint64) error {
	owner, err := OwnerOf(ctx.State, ctx.Self, tokenID)
	if err != nil {
		return err
	}
	if ctx.Caller != owner && !IsApprovedForAll(ctx.State, ctx.Self, owner, ctx.Caller) {
		return domain.ErrNotApproved
	}

	contract.SetAddress(ctx.State, ctx.Self, approvalSlot(tokenID), spender)
	ctx.Emit(domain.EventTypeNFTApproval, domain.NFTApprovalData{
		Owner:       owner.String(),
		Approved:    spender.String(),
		TokenNumber: tokenID,
	})
	return nil
}

// SetApprovalForAll grants or revokes an operator over all of the caller's
// tokens in this ledger.
func SetApprovalForAll(ctx *contract.Context, operator common.Address, approved bool) error {
	if domain.IsZeroAddress(operator) {
		return domain.ErrZeroAddress
	}
	contract.SetBool(ctx.State, ctx.Self, operatorSlot(ctx.Caller, operator), approved)
	ctx.Emit(domain.EventTypeNFTApprovalForAll, domain.NFTApprovalForAllData{
		Owner:    ctx.Caller.String(),
		Operator: operator.String(),
		Approved: approved,
	})
	return nil
}

func canOperate(db contract.StateDB, addr common.Address, owner, caller common.Address, tokenID uint64) bool {
	if caller == owner {
		return true
	}
	if GetApproved(db, addr, tokenID) == caller {
		return true
	}
	return IsApprovedForAll(db, addr, owner, caller)
}

// --- queries ---

// OwnerOf returns the holder of a token, or ErrTokenNotFound for numbers
// that were never minted.
func OwnerOf(db contract.StateDB, addr common.Address, tokenID uint64) (common.Address, error) {
	owner := contract.GetAddress(db, addr, ownerSlot(tokenID))
	if domain.IsZeroAddress(owner) {
		return common.Address{}, domain.ErrTokenNotFound
	}
	return owner, nil
}

// Exists reports whether the token number has been minted.
func Exists(db contract.StateDB, addr common.Address, tokenID uint64) bool {
	_, err := OwnerOf(db, addr, tokenID)
	return err == nil
}

// BalanceOf returns how many tokens of this ledger the holder owns.
func BalanceOf(db contract.StateDB, addr, holder common.Address) uint64 {
	return contract.GetUint64(db, addr, holdingsSlot(holder))
}

// TotalMinted returns how many tokens have been issued so far. It is also
// the number of the most recently minted token.
func TotalMinted(db contract.StateDB, addr common.Address) uint64 {
	return contract.GetUint64(db, addr, totalMintedSlot)
}

// GetApproved returns the per-token approved spender, the zero address when
// there is none.
func GetApproved(db contract.StateDB, addr common.Address, tokenID uint64) common.Address {
	return contract.GetAddress(db, addr, approvalSlot(tokenID))
}

// IsApprovedForAll reports whether operator may move all of owner's tokens.
func IsApprovedForAll(db contract.StateDB, addr common.Address, owner, operator common.Address) bool {
	return contract.GetBool(db, addr, operatorSlot(owner, operator))
}

// TokensOfOwnerIn scans the inclusive token number range and returns the
// ones held by the holder. The auditor uses it to cross-check the
// projected read models against ledger truth.
func TokensOfOwnerIn(db contract.StateDB, addr, holder common.Address, start, stop uint64) []uint64 {
	var owned []uint64
	for id := start; id <= stop; id++ {
		if contract.GetAddress(db, addr, ownerSlot(id)) == holder {
			owned = append(owned, id)
		}
	}
	return owned
}
