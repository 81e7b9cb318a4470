package contract

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-mintgate/internal/domain"
)

var guardSlot = FieldSlot("reentrancyGuard")

// EnterGuard takes the reentrancy lock of the contract at addr. It fails
// when the lock is already held, which means the same contract is being
// entered again within one action.
func EnterGuard(db StateDB, addr common.Address) error {
	if GetBool(db, addr, guardSlot) {
		return domain.ErrReentrantCall
	}
	SetBool(db, addr, guardSlot, true)
	return nil
}

// ExitGuard releases the reentrancy lock. Callers pair it with EnterGuard
// via defer so the lock is released on every exit path.
func ExitGuard(db StateDB, addr common.Address) {
	SetBool(db, addr, guardSlot, false)
}
