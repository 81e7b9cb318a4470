package contract

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-mintgate/internal/domain"
)

var ownerSlot = FieldSlot("owner")

// Owner returns the account that administers the contract at addr.
func Owner(db StateDB, addr common.Address) common.Address {
	return GetAddress(db, addr, ownerSlot)
}

// SetOwner records the administering account without any checks. Deploy
// paths use it to install the initial owner.
func SetOwner(db StateDB, addr common.Address, owner common.Address) {
	SetAddress(db, addr, ownerSlot, owner)
}

// RequireOwner fails unless caller is the contract owner.
func RequireOwner(db StateDB, addr common.Address, caller common.Address) error {
	if Owner(db, addr) != caller {
		return domain.ErrNotOwner
	}
	return nil
}

// TransferOwnership hands the contract to a new owner. Only the current
// owner may call it and the new owner must not be the zero address.
func TransferOwnership(ctx *Context, newOwner common.Address) error {
	if err := RequireOwner(ctx.State, ctx.Self, ctx.Caller); err != nil {
		return err
	}
	if domain.IsZeroAddress(newOwner) {
		return domain.ErrZeroAddress
	}
	prev := Owner(ctx.State, ctx.Self)
	SetOwner(ctx.State, ctx.Self, newOwner)
	ctx.Emit(domain.EventTypeOwnershipTransferred, domain.OwnershipTransferredData{
		OldOwner: prev.String(),
		NewOwner: newOwner.String(),
	})
	return nil
}
