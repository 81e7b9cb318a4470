package engine

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-mintgate/internal/contract"
	"github.com/feral-file/ff-mintgate/internal/contract/collection"
	"github.com/feral-file/ff-mintgate/internal/domain"
)

// collectionHandler dispatches the NFT collection actions.
type collectionHandler struct{}

func (h *collectionHandler) CanHandle(action domain.ActionType) bool {
	return action.Kind() == domain.KindCollection
}

func (h *collectionHandler) Handle(ctx *contract.Context, tx *Tx) error {
	switch tx.Action {
	case domain.ActionCollectionDeploy:
		var p collection.DeployParams
		if err := json.Unmarshal(tx.Params, &p); err != nil {
			return fmt.Errorf("%s: %w", tx.Action, err)
		}
		return collection.Deploy(ctx, p)

	case domain.ActionCollectionMint:
		var p collection.MintParams
		if err := json.Unmarshal(tx.Params, &p); err != nil {
			return fmt.Errorf("%s: %w", tx.Action, err)
		}
		return collection.Mint(ctx, p.Quantity)

	case domain.ActionCollectionSetPrice:
		var p collection.SetPriceParams
		if err := json.Unmarshal(tx.Params, &p); err != nil {
			return fmt.Errorf("%s: %w", tx.Action, err)
		}
		price, ok := domain.ParseAmount(p.UnitPrice)
		if !ok {
			return domain.ErrZeroPrice
		}
		return collection.SetUnitPrice(ctx, price)

	case domain.ActionCollectionSetMaxSupply:
		var p collection.SetMaxSupplyParams
		if err := json.Unmarshal(tx.Params, &p); err != nil {
			return fmt.Errorf("%s: %w", tx.Action, err)
		}
		return collection.SetMaxSupply(ctx, p.MaxSupply)

	case domain.ActionCollectionSetTreasury:
		var p collection.SetTreasuryParams
		if err := json.Unmarshal(tx.Params, &p); err != nil {
			return fmt.Errorf("%s: %w", tx.Action, err)
		}
		if !common.IsHexAddress(p.Treasury) {
			return fmt.Errorf("%s: invalid treasury address: %q", tx.Action, p.Treasury)
		}
		return collection.SetTreasury(ctx, common.HexToAddress(p.Treasury))

	case domain.ActionCollectionSetBaseURI:
		var p collection.SetBaseURIParams
		if err := json.Unmarshal(tx.Params, &p); err != nil {
			return fmt.Errorf("%s: %w", tx.Action, err)
		}
		return collection.SetBaseURI(ctx, p.BaseURI)

	case domain.ActionCollectionLockBaseURI:
		return collection.LockBaseURI(ctx)

	case domain.ActionCollectionPause:
		return collection.Pause(ctx)

	case domain.ActionCollectionUnpause:
		return collection.Unpause(ctx)

	case domain.ActionCollectionSweep:
		return collection.Sweep(ctx)

	case domain.ActionCollectionTransferOwnership:
		var p collection.TransferOwnershipParams
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
