package engine

import (
	"github.com/feral-file/ff-mintgate/internal/contract"
	"github.com/feral-file/ff-mintgate/internal/domain"
)

// Handler executes the actions of one contract family.
type Handler interface {
	CanHandle(action domain.ActionType) bool
	Handle(ctx *contract.Context, tx *Tx) error
}

// Registry holds the registered action handlers.
type Registry struct {
	handlers []Handler
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a handler to the registry.
func (r *Registry) Register(h Handler) {
	r.handlers = append(r.handlers, h)
}

func (r *Registry) handlerFor(action domain.ActionType) Handler {
	for _, h := range r.handlers {
		if h.CanHandle(action) {
			return h
		}
	}
	return nil
}

// Payable reports whether an action accepts attached native value. Value
// sent with any other action fails the transaction.
func Payable(action domain.ActionType) bool {
	switch action {
	case domain.ActionNativeTransfer, domain.ActionCollectionMint:
		return true
	}
	return false
}
