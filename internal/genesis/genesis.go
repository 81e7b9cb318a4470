package genesis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-mintgate/internal/adapter"
	"github.com/feral-file/ff-mintgate/internal/contract"
	"github.com/feral-file/ff-mintgate/internal/contract/collection"
	"github.com/feral-file/ff-mintgate/internal/contract/fungible"
	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/engine"
	"github.com/feral-file/ff-mintgate/internal/store"
)

// Input is the deployment parameter document the deploy tool reads: native
// allocations plus the contracts to install before the journal starts.
// Contract addresses are not part of the input, the planner derives them.
type Input struct {
	Allocations map[string]string `json:"allocations,omitempty"`
	Contracts   []ContractInput   `json:"contracts,omitempty"`
}

// ContractInput describes one contract to install at genesis with its full
// constructor parameters.
type ContractInput struct {
	Kind   domain.ContractKind `json:"kind"`
	Owner  string              `json:"owner"`
	Params json.RawMessage     `json:"params"`
}

// PlannedContract pairs a genesis contract with its derived address.
type PlannedContract struct {
	Address string
	Kind    domain.ContractKind
	Owner   string
	Name    string
	Symbol  string
}

// Plan is a validated genesis ready to be written: the document the engine
// bootstraps from, the store commit that seeds the read models to agree with
// it, and the derived addresses for the operator.
type Plan struct {
	Document  json.RawMessage
	Commit    *store.GenesisCommit
	Contracts []PlannedContract
	Warnings  []string
}

// resolvableSchemes are the URI schemes the metadata fetcher can follow.
var resolvableSchemes = []string{"https://", "http://", "ipfs://", "ar://", "data:"}

// PlanGenesis validates the input, derives contract addresses and assembles
// the genesis document together with its store commit. Validation runs the
// same checks the engine applies at bootstrap, so a plan that passes here
// will not fail genesis replay later. Genesis addresses are derived from the
// zero caller, a namespace no recovered transaction sender can occupy.
func PlanGenesis(input *Input) (*Plan, error) {
	if input == nil || (len(input.Allocations) == 0 && len(input.Contracts) == 0) {
		return nil, fmt.Errorf("genesis input is empty")
	}

	plan := &Plan{}

	var balances map[string]string
	if len(input.Allocations) > 0 {
		balances = make(map[string]string, len(input.Allocations))
		for address, amount := range input.Allocations {
			if !common.IsHexAddress(address) {
				return nil, fmt.Errorf("invalid allocation address: %q", address)
			}
			if _, ok := domain.ParseAmount(amount); !ok {
				return nil, fmt.Errorf("invalid allocation amount for %s: %q", address, amount)
			}
			normalized := domain.NormalizeAddress(address)
			if _, exists := balances[normalized]; exists {
				return nil, fmt.Errorf("duplicate allocation for %s", normalized)
			}
			balances[normalized] = amount
		}
	}

	gen := engine.Genesis{Allocations: balances}
	seeds := make([]store.GenesisContractSeed, 0, len(input.Contracts))
	for i, in := range input.Contracts {
		if !common.IsHexAddress(in.Owner) {
			return nil, fmt.Errorf("contract %d: invalid owner address: %q", i, in.Owner)
		}
		owner := common.HexToAddress(in.Owner)
		if domain.IsZeroAddress(owner) {
			return nil, fmt.Errorf("contract %d: owner is the zero address", i)
		}
		address := contract.DeriveAddress(common.Address{}, uint64(i)+1)

		seed := store.GenesisContractSeed{
			Address: address.String(),
			Kind:    in.Kind,
			Owner:   owner.String(),
		}
		switch in.Kind {
		case domain.KindToken:
			var p fungible.DeployParams
			if err := json.Unmarshal(in.Params, &p); err != nil {
				return nil, fmt.Errorf("contract %d: %w", i, err)
			}
			if !common.IsHexAddress(p.Recipient) || domain.IsZeroAddress(common.HexToAddress(p.Recipient)) {
				return nil, fmt.Errorf("contract %d: invalid recipient address: %q", i, p.Recipient)
			}
			supply, ok := domain.ParseAmount(p.InitialSupply)
			if !ok || supply.Sign() <= 0 {
				return nil, fmt.Errorf("contract %d: %w: %q", i, domain.ErrInvalidSupply, p.InitialSupply)
			}
			seed.Name = p.Name
			seed.Symbol = p.Symbol
			seed.TokenHoldings = map[string]string{
				domain.NormalizeAddress(p.Recipient): supply.String(),
			}
		case domain.KindCollection:
			var p collection.DeployParams
			if err := json.Unmarshal(in.Params, &p); err != nil {
				return nil, fmt.Errorf("contract %d: %w", i, err)
			}
			if !common.IsHexAddress(p.Treasury) || domain.IsZeroAddress(common.HexToAddress(p.Treasury)) {
				return nil, fmt.Errorf("contract %d: %w", i, domain.ErrZeroTreasury)
			}
			if p.AbsoluteMaxSupply == 0 {
				return nil, fmt.Errorf("contract %d: %w", i, domain.ErrInvalidAbsoluteSupply)
			}
			if p.MaxSupply > p.AbsoluteMaxSupply {
				return nil, fmt.Errorf("contract %d: %w: %d > %d", i, domain.ErrCapExceedsAbsolute, p.MaxSupply, p.AbsoluteMaxSupply)
			}
			if price, ok := domain.ParseAmount(p.UnitPrice); !ok || price.Sign() <= 0 {
				return nil, fmt.Errorf("contract %d: %w: %q", i, domain.ErrZeroPrice, p.UnitPrice)
			}
			if p.BaseURI != "" && !resolvable(p.BaseURI) {
				plan.Warnings = append(plan.Warnings,
					fmt.Sprintf("contract %d: base URI %q has no resolvable scheme, token metadata will not be fetchable", i, p.BaseURI))
			}
			seed.Name = p.Name
			seed.Symbol = p.Symbol
		default:
			return nil, fmt.Errorf("contract %d: unknown kind %q", i, in.Kind)
		}

		gen.Contracts = append(gen.Contracts, engine.GenesisContract{
			Address: address.String(),
			Kind:    in.Kind,
			Owner:   owner.String(),
			Params:  in.Params,
		})
		seeds = append(seeds, seed)
		plan.Contracts = append(plan.Contracts, PlannedContract{
			Address: address.String(),
			Kind:    in.Kind,
			Owner:   owner.String(),
			Name:    seed.Name,
			Symbol:  seed.Symbol,
		})
	}

	document, err := json.Marshal(&gen)
	if err != nil {
		return nil, fmt.Errorf("failed to encode genesis document: %w", err)
	}
	plan.Document = document
	plan.Commit = &store.GenesisCommit{
		Document:  document,
		Balances:  balances,
		Contracts: seeds,
	}
	return plan, nil
}

func resolvable(uri string) bool {
	for _, scheme := range resolvableSchemes {
		if strings.HasPrefix(uri, scheme) {
			return true
		}
	}
	return false
}

// Loader reads genesis input documents from JSON files
type Loader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewLoader creates a new genesis input loader
func NewLoader(fs adapter.FileSystem, json adapter.JSON) *Loader {
	return &Loader{fs: fs, json: json}
}

// Load reads and parses the genesis input document at the given path
func (l *Loader) Load(filePath string) (*Input, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read genesis input: %w", err)
	}
	var input Input
	if err := l.json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse genesis input: %w", err)
	}
	return &input, nil
}
