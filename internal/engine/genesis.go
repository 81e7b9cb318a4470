package engine

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-mintgate/internal/contract"
	"github.com/feral-file/ff-mintgate/internal/contract/collection"
	"github.com/feral-file/ff-mintgate/internal/contract/fungible"
	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/state"
)

// ApplyGenesis seeds a state with the allocations and contracts of a genesis
// document and finalises it. Genesis effects predate the journal, so the
// events emitted while deploying are discarded with the scratch log space.
func ApplyGenesis(st *state.StateDB, gen *Genesis, now time.Time) error {
	st.Prepare(common.Hash{}, 0)
	for address, amount := range gen.Allocations {
		if !common.IsHexAddress(address) {
			return fmt.Errorf("genesis: invalid allocation address: %q", address)
		}
		v, ok := domain.ParseAmount(amount)
		if !ok {
			return fmt.Errorf("genesis: invalid allocation amount for %s: %q", address, amount)
		}
		st.SetBalance(common.HexToAddress(address), v)
	}
	for _, gc := range gen.Contracts {
		if err := deployGenesisContract(st, gc, now); err != nil {
			return err
		}
	}
	st.Finalise()
	return nil
}

func deployGenesisContract(st *state.StateDB, gc GenesisContract, now time.Time) error {
	if !common.IsHexAddress(gc.Address) {
		return fmt.Errorf("genesis: invalid contract address: %q", gc.Address)
	}
	if !common.IsHexAddress(gc.Owner) {
		return fmt.Errorf("genesis: invalid owner address for %s: %q", gc.Address, gc.Owner)
	}
	ctx := &contract.Context{
		State:  st,
		Self:   common.HexToAddress(gc.Address),
		Caller: common.HexToAddress(gc.Owner),
		Now:    now,
	}
	switch gc.Kind {
	case domain.KindToken:
		var p fungible.DeployParams
		if err := json.Unmarshal(gc.Params, &p); err != nil {
			return fmt.Errorf("genesis: contract %s: %w", gc.Address, err)
		}
		if !common.IsHexAddress(p.Recipient) {
			return fmt.Errorf("genesis: contract %s: invalid recipient address: %q", gc.Address, p.Recipient)
		}
		supply, ok := domain.ParseAmount(p.InitialSupply)
		if !ok {
			return fmt.Errorf("genesis: contract %s: %w", gc.Address, domain.ErrInvalidSupply)
		}
		decimals := uint8(domain.DEFAULT_TOKEN_DECIMALS)
		if p.Decimals != nil {
			decimals = *p.Decimals
		}
		if err := fungible.Deploy(ctx, p.Name, p.Symbol, decimals, supply, common.HexToAddress(p.Recipient)); err != nil {
			return fmt.Errorf("genesis: contract %s: %w", gc.Address, err)
		}
	case domain.KindCollection:
		var p collection.DeployParams
		if err := json.Unmarshal(gc.Params, &p); err != nil {
			return fmt.Errorf("genesis: contract %s: %w", gc.Address, err)
		}
		if err := collection.Deploy(ctx, p); err != nil {
			return fmt.Errorf("genesis: contract %s: %w", gc.Address, err)
		}
	default:
		return fmt.Errorf("genesis: contract %s: unknown kind %q", gc.Address, gc.Kind)
	}
	return nil
}
