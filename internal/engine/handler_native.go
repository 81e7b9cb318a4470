package engine

import (
	"github.com/feral-file/ff-mintgate/internal/contract"
	"github.com/feral-file/ff-mintgate/internal/domain"
)

// nativeHandler covers plain native currency movement. The engine credits
// the attached value to the target before dispatch, which for a native
// transfer is the entire effect, so the handler itself has nothing left to
// do. This is also the path that lets funds land directly on a contract
// address, which is what the collection's sweep recovers from.
type nativeHandler struct{}

func (h *nativeHandler) CanHandle(action domain.ActionType) bool {
	return action == domain.ActionNativeTransfer
}

func (h *nativeHandler) Handle(ctx *contract.Context, tx *Tx) error {
	return nil
}
