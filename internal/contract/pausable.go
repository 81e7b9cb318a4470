package contract

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-mintgate/internal/domain"
)

var pausedSlot = FieldSlot("paused")

// Paused reports whether the contract at addr is paused.
func Paused(db StateDB, addr common.Address) bool {
	return GetBool(db, addr, pausedSlot)
}

// SetPaused records the paused flag without any checks.
func SetPaused(db StateDB, addr common.Address, paused bool) {
	SetBool(db, addr, pausedSlot, paused)
}

// RequireNotPaused fails when the contract is paused.
func RequireNotPaused(db StateDB, addr common.Address) error {
	if Paused(db, addr) {
		return domain.ErrPaused
	}
	return nil
}

// RequirePaused fails when the contract is not paused.
func RequirePaused(db StateDB, addr common.Address) error {
	if !Paused(db, addr) {
		return domain.ErrNotPaused
	}
	return nil
}
