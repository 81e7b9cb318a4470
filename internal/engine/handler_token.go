package engine

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-mintgate/internal/contract"
	"github.com/feral-file/ff-mintgate/internal/contract/fungible"
	"github.com/feral-file/ff-mintgate/internal/domain"
)

// tokenHandler dispatches the fungible token actions.
type tokenHandler struct{}

func (h *tokenHandler) CanHandle(action domain.ActionType) bool {
	switch action {
	case domain.ActionTokenDeploy,
		domain.ActionTokenTransfer,
		domain.ActionTokenApprove,
		domain.ActionTokenTransferFrom,
		domain.ActionTokenTransferOwnership:
		return true
	}
	return false
}

func (h *tokenHandler) Handle(ctx *contract.Context, tx *Tx) error {
	switch tx.Action {
	case domain.ActionTokenDeploy:
		var p fungible.DeployParams
		if err := json.Unmarshal(tx.Params, &p); err != nil {
			return fmt.Errorf("%s: %w", tx.Action, err)
		}
		if !common.IsHexAddress(p.Recipient) {
			return fmt.Errorf("%s: invalid recipient address: %q", tx.Action, p.Recipient)
		}
		supply, ok := domain.ParseAmount(p.InitialSupply)
		if !ok {
			return domain.ErrInvalidSupply
		}
		decimals := uint8(domain.DEFAULT_TOKEN_DECIMALS)
		if p.Decimals != nil {
			decimals = *p.Decimals
		}
		return fungible.Deploy(ctx, p.Name, p.Symbol, decimals, supply, common.HexToAddress(p.Recipient))

	case domain.ActionTokenTransfer:
		var p fungible.TransferParams
		if err := json.Unmarshal(tx.Params, &p); err != nil {
			return fmt.Errorf("%s: %w", tx.Action, err)
		}
		if !common.IsHexAddress(p.To) {
			return fmt.Errorf("%s: invalid recipient address: %q", tx.Action, p.To)
		}
		amount, ok := domain.ParseAmount(p.Amount)
		if !ok {
			return domain.ErrInvalidValue
		}
		return fungible.Transfer(ctx, common.HexToAddress(p.To), amount)

	case domain.ActionTokenApprove:
		var p fungible.ApproveParams
		if err := json.Unmarshal(tx.Params, &p); err != nil {
			return fmt.Errorf("%s: %w", tx.Action, err)
		}
		if !common.IsHexAddress(p.Spender) {
			return fmt.Errorf("%s: invalid spender address: %q", tx.Action, p.Spender)
		}
		amount, ok := domain.ParseAmount(p.Amount)
		if !ok {
			return domain.ErrInvalidValue
		}
		return fungible.Approve(ctx, common.HexToAddress(p.Spender), amount)

	case domain.ActionTokenTransferFrom:
		var p fungible.TransferFromParams
		if err := json.Unmarshal(tx.Params, &p); err != nil {
			return fmt.Errorf("%s: %w", tx.Action, err)
		}
		if !common.IsHexAddress(p.From) {
			return fmt.Errorf("%s: invalid holder address: %q", tx.Action, p.From)
		}
		if !common.IsHexAddress(p.To) {
			return fmt.Errorf("%s: invalid recipient address: %q", tx.Action, p.To)
		}
		amount, ok := domain.ParseAmount(p.Amount)
		if !ok {
			return domain.ErrInvalidValue
		}
		return fungible.TransferFrom(ctx, common.HexToAddress(p.From), common.HexToAddress(p.To), amount)

	case domain.ActionTokenTransferOwnership:
		var p fungible.TransferOwnershipParams
		if err := json.Unmarshal(tx.Params, &p); err != nil {
			return fmt.Errorf("%s: %w", tx.Action, err)
		}
		if !common.IsHexAddress(p.NewOwner) {
			return fmt.Errorf("%s: invalid owner address: %q", tx.Action, p.NewOwner)
		}
		return contract.TransferOwnership(ctx, common.HexToAddress(p.NewOwner))
	}
	return domain.ErrUnknownAction
}
