package engine_test

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-mintgate/internal/adapter"
	"github.com/feral-file/ff-mintgate/internal/contract"
	"github.com/feral-file/ff-mintgate/internal/contract/collection"
	"github.com/feral-file/ff-mintgate/internal/contract/fungible"
	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/engine"
	"github.com/feral-file/ff-mintgate/internal/logger"
	"github.com/feral-file/ff-mintgate/internal/mocks"
	"github.com/feral-file/ff-mintgate/internal/state"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const (
	collectionAddr = "0x00000000000000000000000000000000000000c1"
	treasuryAddr   = "0x00000000000000000000000000000000000000e7"
)

// memStore is an in-memory journal used to exercise the engine without a
// database.
type memStore struct {
	genesis  json.RawMessage
	records  []domain.TxRecord
	commits  []*domain.TxCommit
	failNext error
}

func (s *memStore) CommitTransaction(_ context.Context, commit *domain.TxCommit) error {
	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		return err
	}
	s.commits = append(s.commits, commit)
	s.records = append(s.records, domain.TxRecord{
		Seq:       commit.Receipt.Seq,
		TxHash:    commit.Receipt.TxHash,
		Envelope:  commit.Envelope,
		Status:    commit.Receipt.Status,
		Reason:    commit.Receipt.Reason,
		Timestamp: commit.Receipt.Timestamp,
	})
	return nil
}

func (s *memStore) ListTransactionRecords(_ context.Context, afterSeq uint64, limit int) ([]domain.TxRecord, error) {
	var out []domain.TxRecord
	for _, rec := range s.records {
		if rec.Seq <= afterSeq {
			continue
		}
		out = append(out, rec)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *memStore) GetGenesis(_ context.Context) (json.RawMessage, error) {
	return s.genesis, nil
}

type env struct {
	t      *testing.T
	engine *engine.Engine
	store  *memStore
	canon  adapter.JCS
	now    time.Time
	key    *ecdsa.PrivateKey
	sender common.Address
}

func newEnv(t *testing.T) *env {
	ctrl := gomock.NewController(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	store := &memStore{}
	canon := adapter.NewJCS()
	return &env{
		t:      t,
		engine: engine.New(state.New(), store, canon, clock, nil),
		store:  store,
		canon:  canon,
		now:    now,
		key:    key,
		sender: crypto.PubkeyToAddress(key.PublicKey),
	}
}

// bootstrapped seeds the store with a genesis document and boots the engine
// from it.
func bootstrapped(t *testing.T, build func(e *env) *engine.Genesis) *env {
	e := newEnv(t)
	raw, err := json.Marshal(build(e))
	require.NoError(t, err)
	e.store.genesis = raw
	require.NoError(t, e.engine.Bootstrap(context.Background()))
	return e
}

// collectionGenesis allocates native funds to the env sender and installs a
// collection it owns: price 1000, cap 5 under an absolute cap of 10.
func collectionGenesis(allocation string) func(e *env) *engine.Genesis {
	return func(e *env) *engine.Genesis {
		params, err := json.Marshal(collection.DeployParams{
			Name:              "Field Notes",
			Symbol:            "FNOTE",
			UnitPrice:         "1000",
			MaxSupply:         5,
			AbsoluteMaxSupply: 10,
			Treasury:          treasuryAddr,
			BaseURI:           "ipfs://QmMeta/",
		})
		require.NoError(e.t, err)
		return &engine.Genesis{
			Allocations: map[string]string{e.sender.String(): allocation},
			Contracts: []engine.GenesisContract{{
				Address: collectionAddr,
				Kind:    domain.KindCollection,
				Owner:   e.sender.String(),
				Params:  params,
			}},
		}
	}
}

func (e *env) signedAs(key *ecdsa.PrivateKey, action domain.ActionType, contractAddr string, params interface{}, value string, nonce uint64) *engine.Tx {
	var raw json.RawMessage
	if params != nil {
		b, err := json.Marshal(params)
		require.NoError(e.t, err)
		raw = b
	}
	tx := &engine.Tx{
		Action:   action,
		Contract: contractAddr,
		Params:   raw,
		Value:    value,
		Nonce:    nonce,
	}
	require.NoError(e.t, tx.Sign(key, e.canon))
	return tx
}

func (e *env) signed(action domain.ActionType, contractAddr string, params interface{}, value string, nonce uint64) *engine.Tx {
	return e.signedAs(e.key, action, contractAddr, params, value, nonce)
}

func (e *env) submit(tx *engine.Tx) (*domain.Receipt, error) {
	return e.engine.Submit(context.Background(), tx)
}

func (e *env) balanceOf(addr common.Address) string {
	var out string
	e.engine.View(func(db contract.StateDB) {
		out = db.GetBalance(addr).String()
	})
	return out
}

func (e *env) deployToken(supply string) string {
	receipt, err := e.submit(e.signed(domain.ActionTokenDeploy, "", fungible.DeployParams{
		Name:          "Mint Credits",
		Symbol:        "MC",
		InitialSupply: supply,
		Recipient:     e.sender.String(),
	}, "", e.engine.NextNonce(e.sender)))
	require.NoError(e.t, err)
	require.Equal(e.t, domain.TxStatusSuccess, receipt.Status)
	require.NotEmpty(e.t, receipt.Contract)
	return receipt.Contract
}

func TestSubmitTokenDeploy(t *testing.T) {
	e := newEnv(t)

	receipt, err := e.submit(e.signed(domain.ActionTokenDeploy, "", fungible.DeployParams{
		Name:          "Mint Credits",
		Symbol:        "MC",
		InitialSupply: "1000000",
		Recipient:     e.sender.String(),
	}, "", 0))
	require.NoError(t, err)

	assert.Equal(t, domain.TxStatusSuccess, receipt.Status)
	assert.Equal(t, uint64(1), receipt.Seq)
	assert.Equal(t, e.sender.String(), receipt.From)
	assert.Equal(t, e.now, receipt.Timestamp)

	// Deploys land on an address derived from the sender and the sequence.
	expected := contract.DeriveAddress(e.sender, 1)
	assert.Equal(t, expected.String(), receipt.Contract)

	require.Len(t, receipt.Events, 1)
	event := receipt.Events[0]
	assert.Equal(t, domain.EventTypeTokenTransfer, event.Type)
	assert.Equal(t, receipt.Contract, event.Contract)
	assert.Equal(t, receipt.TxHash, event.TxHash)
	assert.Equal(t, uint64(1), event.TxSeq)
	assert.JSONEq(t, `{"from":"`+domain.ZERO_ADDRESS+`","to":"`+e.sender.String()+`","amount":"1000000"}`, string(event.Data))

	require.Len(t, e.store.commits, 1)
	assert.Equal(t, uint64(1), e.engine.Seq())
	assert.Equal(t, uint64(1), e.engine.NextNonce(e.sender))

	// The journaled envelope carries the signature for replay.
	var stored engine.Tx
	require.NoError(t, json.Unmarshal(e.store.commits[0].Envelope, &stored))
	assert.NotEmpty(t, stored.Signature)

	e.engine.View(func(db contract.StateDB) {
		token := common.HexToAddress(receipt.Contract)
		assert.Equal(t, "Mint Credits", fungible.Name(db, token))
		assert.Equal(t, "1000000", fungible.BalanceOf(db, token, e.sender).String())
	})
}

func TestSubmitTokenTransfer(t *testing.T) {
	e := newEnv(t)
	token := e.deployToken("500")
	bob := common.HexToAddress("0x00000000000000000000000000000000000000b0")

	receipt, err := e.submit(e.signed(domain.ActionTokenTransfer, token, fungible.TransferParams{
		To:     bob.String(),
		Amount: "120",
	}, "", 1))
	require.NoError(t, err)
	require.Equal(t, domain.TxStatusSuccess, receipt.Status)

	e.engine.View(func(db contract.StateDB) {
		addr := common.HexToAddress(token)
		assert.Equal(t, "380", fungible.BalanceOf(db, addr, e.sender).String())
		assert.Equal(t, "120", fungible.BalanceOf(db, addr, bob).String())
	})
	assert.Len(t, e.store.commits, 2)
}

func TestSubmitRejections(t *testing.T) {
	bogus := "0x00000000000000000000000000000000000000aa"

	tests := []struct {
		name    string
		mutate  func(e *env) *engine.Tx
		wantErr error
	}{
		{
			name: "malformed signature",
			mutate: func(e *env) *engine.Tx {
				tx := e.signed(domain.ActionNativeTransfer, bogus, nil, "1", 0)
				tx.Signature = "0xdead"
				return tx
			},
			wantErr: domain.ErrInvalidSignature,
		},
		{
			name: "tampered envelope",
			mutate: func(e *env) *engine.Tx {
				tx := e.signed(domain.ActionNativeTransfer, bogus, nil, "1", 5)
				// Editing a signed field shifts the recovered sender to some
				// fresh address, which then fails the nonce check.
				tx.Value = "2"
				return tx
			},
			wantErr: domain.ErrInvalidNonce,
		},
		{
			name: "wrong nonce",
			mutate: func(e *env) *engine.Tx {
				return e.signed(domain.ActionNativeTransfer, bogus, nil, "1", 7)
			},
			wantErr: domain.ErrInvalidNonce,
		},
		{
			name: "unknown action",
			mutate: func(e *env) *engine.Tx {
				return e.signed(domain.ActionType("token.burn"), bogus, nil, "", 0)
			},
			wantErr: domain.ErrUnknownAction,
		},
		{
			name: "malformed value",
			mutate: func(e *env) *engine.Tx {
				return e.signed(domain.ActionNativeTransfer, bogus, nil, "12.5", 0)
			},
			wantErr: domain.ErrInvalidValue,
		},
		{
			name: "negative value",
			mutate: func(e *env) *engine.Tx {
				return e.signed(domain.ActionNativeTransfer, bogus, nil, "-3", 0)
			},
			wantErr: domain.ErrInvalidValue,
		},
		{
			name: "unparseable contract address",
			mutate: func(e *env) *engine.Tx {
				return e.signed(domain.ActionTokenTransfer, "not-an-address", fungible.TransferParams{To: bogus, Amount: "1"}, "", 0)
			},
			wantErr: domain.ErrInvalidAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			receipt, err := e.submit(tt.mutate(e))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, receipt)

			// Rejections leave no trace: no journal entry, no nonce burn.
			assert.Empty(t, e.store.commits)
			assert.Equal(t, uint64(0), e.engine.Seq())
			assert.Equal(t, uint64(0), e.engine.NextNonce(e.sender))
		})
	}
}

func TestSubmitDeniedSender(t *testing.T) {
	e := newEnv(t)

	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(e.now).AnyTimes()
	denied := engine.New(state.New(), e.store, e.canon, clock, denylistOf(e.sender.String()))

	tx := e.signed(domain.ActionTokenDeploy, "", fungible.DeployParams{
		Name: "T", Symbol: "T", InitialSupply: "1", Recipient: e.sender.String(),
	}, "", 0)
	receipt, err := denied.Submit(context.Background(), tx)
	assert.ErrorIs(t, err, domain.ErrSenderDenied)
	assert.Nil(t, receipt)
	assert.Empty(t, e.store.commits)
}

type denylistOf string

func (d denylistOf) IsDenied(address string) bool {
	return address == string(d)
}

func TestSubmitJournaledFailure(t *testing.T) {
	e := newEnv(t)
	token := e.deployToken("100")

	bobKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	bob := crypto.PubkeyToAddress(bobKey.PublicKey)

	receipt, err := e.submit(e.signedAs(bobKey, domain.ActionTokenTransfer, token, fungible.TransferParams{
		To:     e.sender.String(),
		Amount: "1",
	}, "", 0))
	require.NoError(t, err)

	assert.Equal(t, domain.TxStatusFailed, receipt.Status)
	assert.Equal(t, "transfer amount exceeds balance", receipt.Reason)
	assert.Empty(t, receipt.Events)

	// A failed action still consumes the nonce and still lands in the
	// journal.
	assert.Equal(t, uint64(1), e.engine.NextNonce(bob))
	assert.Equal(t, uint64(2), e.engine.Seq())
	require.Len(t, e.store.commits, 2)
	assert.Equal(t, domain.TxStatusFailed, e.store.records[1].Status)

	e.engine.View(func(db contract.StateDB) {
		assert.Equal(t, "100", fungible.BalanceOf(db, common.HexToAddress(token), e.sender).String())
	})
}

func TestSubmitNonPayableValue(t *testing.T) {
	e := newEnv(t)
	token := e.deployToken("100")

	receipt, err := e.submit(e.signed(domain.ActionTokenTransfer, token, fungible.TransferParams{
		To:     treasuryAddr,
		Amount: "1",
	}, "5", 1))
	require.NoError(t, err)
	assert.Equal(t, domain.TxStatusFailed, receipt.Status)
	assert.Equal(t, domain.ErrNonPayable.Error(), receipt.Reason)
}

func TestSubmitValueWithoutFunds(t *testing.T) {
	e := newEnv(t)

	receipt, err := e.submit(e.signed(domain.ActionNativeTransfer, treasuryAddr, nil, "100", 0))
	require.NoError(t, err)
	assert.Equal(t, domain.TxStatusFailed, receipt.Status)
	assert.Equal(t, domain.ErrInsufficientFunds.Error(), receipt.Reason)
	assert.Equal(t, "0", e.balanceOf(common.HexToAddress(treasuryAddr)))
}

func TestSubmitNativeTransfer(t *testing.T) {
	e := bootstrapped(t, func(e *env) *engine.Genesis {
		return &engine.Genesis{Allocations: map[string]string{e.sender.String(): "100"}}
	})
	bob := common.HexToAddress("0x00000000000000000000000000000000000000b0")

	receipt, err := e.submit(e.signed(domain.ActionNativeTransfer, bob.String(), nil, "40", 0))
	require.NoError(t, err)
	require.Equal(t, domain.TxStatusSuccess, receipt.Status)

	assert.Equal(t, "60", e.balanceOf(e.sender))
	assert.Equal(t, "40", e.balanceOf(bob))

	// The commit reports every touched native balance at its final value.
	require.Len(t, e.store.commits, 1)
	assert.Equal(t, map[string]string{
		e.sender.String(): "60",
		bob.String():      "40",
	}, e.store.commits[0].Balances)
}

func TestSubmitKindChecks(t *testing.T) {
	e := newEnv(t)
	token := e.deployToken("100")

	// Collection action against a token contract.
	receipt, err := e.submit(e.signed(domain.ActionCollectionPause, token, nil, "", 1))
	require.NoError(t, err)
	assert.Equal(t, domain.TxStatusFailed, receipt.Status)
	assert.Equal(t, domain.ErrWrongContractKind.Error(), receipt.Reason)

	// Token action against an address nothing was deployed to.
	receipt, err = e.submit(e.signed(domain.ActionTokenTransfer, treasuryAddr, fungible.TransferParams{
		To:     e.sender.String(),
		Amount: "1",
	}, "", 2))
	require.NoError(t, err)
	assert.Equal(t, domain.TxStatusFailed, receipt.Status)
	assert.Equal(t, domain.ErrContractNotFound.Error(), receipt.Reason)
}

func TestSubmitPersistFailureUnwinds(t *testing.T) {
	e := newEnv(t)
	e.store.failNext = errors.New("connection reset")

	tx := e.signed(domain.ActionTokenDeploy, "", fungible.DeployParams{
		Name: "T", Symbol: "T", InitialSupply: "50", Recipient: e.sender.String(),
	}, "", 0)
	_, err := e.submit(tx)
	require.ErrorContains(t, err, "failed to persist transaction")

	// The whole transition unwound, nonce included.
	assert.Equal(t, uint64(0), e.engine.Seq())
	assert.Equal(t, uint64(0), e.engine.NextNonce(e.sender))
	assert.Empty(t, e.store.commits)

	// The identical envelope goes through once the store recovers.
	receipt, err := e.submit(tx)
	require.NoError(t, err)
	assert.Equal(t, domain.TxStatusSuccess, receipt.Status)
	assert.Equal(t, uint64(1), e.engine.Seq())
}

func TestSubmitCollectionMint(t *testing.T) {
	e := bootstrapped(t, collectionGenesis("10000"))

	receipt, err := e.submit(e.signed(domain.ActionCollectionMint, collectionAddr, collection.MintParams{
		Quantity: 2,
	}, "2000", 0))
	require.NoError(t, err)
	require.Equal(t, domain.TxStatusSuccess, receipt.Status)

	// Two per-token transfers, then the mint summary.
	require.Len(t, receipt.Events, 3)
	assert.Equal(t, domain.EventTypeNFTTransfer, receipt.Events[0].Type)
	assert.Equal(t, domain.EventTypeNFTTransfer, receipt.Events[1].Type)
	assert.Equal(t, domain.EventTypeCollectionMint, receipt.Events[2].Type)
	assert.JSONEq(t, `{
		"caller": "`+e.sender.String()+`",
		"quantity": 2,
		"total_cost": "2000",
		"first_token_number": 1,
		"last_token_number": 2
	}`, string(receipt.Events[2].Data))

	// Proceeds are with the treasury; nothing sticks to the contract.
	assert.Equal(t, "8000", e.balanceOf(e.sender))
	assert.Equal(t, "2000", e.balanceOf(common.HexToAddress(treasuryAddr)))
	assert.Equal(t, "0", e.balanceOf(common.HexToAddress(collectionAddr)))

	require.Len(t, e.store.commits, 1)
	assert.Equal(t, map[string]string{
		e.sender.String():                            "8000",
		common.HexToAddress(treasuryAddr).String():   "2000",
		common.HexToAddress(collectionAddr).String(): "0",
	}, e.store.commits[0].Balances)
}

func TestSubmitCollectionMintFailureRefunds(t *testing.T) {
	e := bootstrapped(t, collectionGenesis("10000"))

	// Wrong payment: the value credit is unwound with the rest.
	receipt, err := e.submit(e.signed(domain.ActionCollectionMint, collectionAddr, collection.MintParams{
		Quantity: 2,
	}, "1999", 0))
	require.NoError(t, err)
	assert.Equal(t, domain.TxStatusFailed, receipt.Status)
	assert.Equal(t, "incorrect payment", receipt.Reason)
	assert.Equal(t, "10000", e.balanceOf(e.sender))
	assert.Equal(t, "0", e.balanceOf(common.HexToAddress(treasuryAddr)))

	// Batch size gate fires before the payment check.
	receipt, err = e.submit(e.signed(domain.ActionCollectionMint, collectionAddr, collection.MintParams{
		Quantity: 301,
	}, "", 1))
	require.NoError(t, err)
	assert.Equal(t, domain.TxStatusFailed, receipt.Status)
	assert.Equal(t, "exceeds max per mint", receipt.Reason)

	e.engine.View(func(db contract.StateDB) {
		assert.Equal(t, uint64(0), collection.TotalMinted(db, common.HexToAddress(collectionAddr)))
	})
}

func TestSubmitCollectionSweep(t *testing.T) {
	e := bootstrapped(t, collectionGenesis("500"))

	// Stray funds reach the contract through a plain native transfer.
	receipt, err := e.submit(e.signed(domain.ActionNativeTransfer, collectionAddr, nil, "500", 0))
	require.NoError(t, err)
	require.Equal(t, domain.TxStatusSuccess, receipt.Status)
	assert.Equal(t, "500", e.balanceOf(common.HexToAddress(collectionAddr)))

	receipt, err = e.submit(e.signed(domain.ActionCollectionSweep, collectionAddr, nil, "", 1))
	require.NoError(t, err)
	require.Equal(t, domain.TxStatusSuccess, receipt.Status)
	assert.Equal(t, "0", e.balanceOf(common.HexToAddress(collectionAddr)))
	assert.Equal(t, "500", e.balanceOf(e.sender))
}

func TestSubmitCollectionOwnership(t *testing.T) {
	e := bootstrapped(t, collectionGenesis("0"))

	strangerKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	stranger := crypto.PubkeyToAddress(strangerKey.PublicKey)

	// Owner-gated setter from a stranger reverts with the owner reason.
	receipt, err := e.submit(e.signedAs(strangerKey, domain.ActionCollectionSetPrice, collectionAddr, collection.SetPriceParams{
		UnitPrice: "2000",
	}, "", 0))
	require.NoError(t, err)
	assert.Equal(t, domain.TxStatusFailed, receipt.Status)
	assert.Equal(t, "caller is not the owner", receipt.Reason)

	// The owner hands the contract over, then loses access.
	receipt, err = e.submit(e.signed(domain.ActionCollectionTransferOwnership, collectionAddr, collection.TransferOwnershipParams{
		NewOwner: stranger.String(),
	}, "", 0))
	require.NoError(t, err)
	require.Equal(t, domain.TxStatusSuccess, receipt.Status)

	receipt, err = e.submit(e.signed(domain.ActionCollectionSetPrice, collectionAddr, collection.SetPriceParams{
		UnitPrice: "2000",
	}, "", 1))
	require.NoError(t, err)
	assert.Equal(t, domain.TxStatusFailed, receipt.Status)
	assert.Equal(t, "caller is not the owner", receipt.Reason)

	receipt, err = e.submit(e.signedAs(strangerKey, domain.ActionCollectionSetPrice, collectionAddr, collection.SetPriceParams{
		UnitPrice: "2000",
	}, "", 1))
	require.NoError(t, err)
	assert.Equal(t, domain.TxStatusSuccess, receipt.Status)

	e.engine.View(func(db contract.StateDB) {
		assert.Equal(t, "2000", collection.UnitPrice(db, common.HexToAddress(collectionAddr)).String())
	})
}

func TestBootstrapRequiresGenesis(t *testing.T) {
	e := newEnv(t)
	err := e.engine.Bootstrap(context.Background())
	assert.ErrorIs(t, err, domain.ErrGenesisNotFound)

	e.store.genesis = json.RawMessage(`{"allocations"`)
	err = e.engine.Bootstrap(context.Background())
	assert.ErrorContains(t, err, "failed to decode genesis")
}

func TestBootstrapAppliesGenesis(t *testing.T) {
	e := bootstrapped(t, collectionGenesis("750"))

	assert.Equal(t, uint64(0), e.engine.Seq())
	assert.Equal(t, "750", e.balanceOf(e.sender))
	e.engine.View(func(db contract.StateDB) {
		addr := common.HexToAddress(collectionAddr)
		assert.Equal(t, "Field Notes", collection.Name(db, addr))
		assert.Equal(t, "1000", collection.UnitPrice(db, addr).String())
		assert.Equal(t, uint64(5), collection.MaxSupply(db, addr))
		assert.Equal(t, e.sender, contract.Owner(db, addr))
	})
}

// rebuild boots a second engine from the same journal with a clock that
// disagrees with the original, proving replay leans on recorded timestamps.
func rebuild(t *testing.T, e *env) *engine.Engine {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(e.now.Add(48 * time.Hour)).AnyTimes()

	eng := engine.New(state.New(), e.store, e.canon, clock, nil)
	require.NoError(t, eng.Bootstrap(context.Background()))
	return eng
}

func TestBootstrapReplaysJournal(t *testing.T) {
	e := bootstrapped(t, collectionGenesis("10000"))

	// A mixed history: a mint, a failed mint, a native transfer.
	_, err := e.submit(e.signed(domain.ActionCollectionMint, collectionAddr, collection.MintParams{Quantity: 3}, "3000", 0))
	require.NoError(t, err)
	_, err = e.submit(e.signed(domain.ActionCollectionMint, collectionAddr, collection.MintParams{Quantity: 1}, "55", 1))
	require.NoError(t, err)
	_, err = e.submit(e.signed(domain.ActionNativeTransfer, treasuryAddr, nil, "100", 2))
	require.NoError(t, err)
	require.Equal(t, uint64(3), e.engine.Seq())

	replica := rebuild(t, e)

	assert.Equal(t, e.engine.Seq(), replica.Seq())
	assert.Equal(t, e.engine.NextNonce(e.sender), replica.NextNonce(e.sender))

	var minted uint64
	var senderBalance, treasuryBalance string
	replica.View(func(db contract.StateDB) {
		addr := common.HexToAddress(collectionAddr)
		minted = collection.TotalMinted(db, addr)
		senderBalance = db.GetBalance(e.sender).String()
		treasuryBalance = db.GetBalance(common.HexToAddress(treasuryAddr)).String()
	})
	assert.Equal(t, uint64(3), minted)
	assert.Equal(t, "6900", senderBalance)
	assert.Equal(t, "3100", treasuryBalance)
}

func TestBootstrapDetectsDivergence(t *testing.T) {
	seed := func(t *testing.T) *env {
		e := bootstrapped(t, collectionGenesis("10000"))
		_, err := e.submit(e.signed(domain.ActionCollectionMint, collectionAddr, collection.MintParams{Quantity: 1}, "1000", 0))
		require.NoError(t, err)
		_, err = e.submit(e.signed(domain.ActionNativeTransfer, treasuryAddr, nil, "1", 1))
		require.NoError(t, err)
		return e
	}

	tests := []struct {
		name   string
		tamper func(s *memStore)
	}{
		{
			name: "journaled outcome edited",
			tamper: func(s *memStore) {
				s.records[0].Status = domain.TxStatusFailed
				s.records[0].Reason = "incorrect payment"
			},
		},
		{
			name: "envelope edited without re-signing",
			tamper: func(s *memStore) {
				var tx engine.Tx
				if err := json.Unmarshal(s.records[0].Envelope, &tx); err != nil {
					panic(err)
				}
				tx.Value = "2000"
				raw, err := json.Marshal(tx)
				if err != nil {
					panic(err)
				}
				s.records[0].Envelope = raw
			},
		},
		{
			name: "journal gap",
			tamper: func(s *memStore) {
				s.records = s.records[1:]
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := seed(t)
			tt.tamper(e.store)

			ctrl := gomock.NewController(t)
			clock := mocks.NewMockClock(ctrl)
			clock.EXPECT().Now().Return(e.now).AnyTimes()

			replica := engine.New(state.New(), e.store, e.canon, clock, nil)
			err := replica.Bootstrap(context.Background())
			assert.ErrorIs(t, err, domain.ErrReplayDivergence)
		})
	}
}

func TestPayable(t *testing.T) {
	payable := map[domain.ActionType]bool{
		domain.ActionNativeTransfer: true,
		domain.ActionCollectionMint: true,
	}
	all := []domain.ActionType{
		domain.ActionNativeTransfer,
		domain.ActionTokenDeploy, domain.ActionTokenTransfer, domain.ActionTokenApprove,
		domain.ActionTokenTransferFrom, domain.ActionTokenTransferOwnership,
		domain.ActionCollectionDeploy, domain.ActionCollectionMint, domain.ActionCollectionSetPrice,
		domain.ActionCollectionSetMaxSupply, domain.ActionCollectionSetTreasury,
		domain.ActionCollectionSetBaseURI, domain.ActionCollectionLockBaseURI,
		domain.ActionCollectionPause, domain.ActionCollectionUnpause, domain.ActionCollectionSweep,
		domain.ActionCollectionTransferOwnership,
	}
	for _, action := range all {
		assert.Equal(t, payable[action], engine.Payable(action), "action %s", action)
	}
}
