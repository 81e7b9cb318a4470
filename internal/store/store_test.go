package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/store/schema"
)

// StoreTestSuite provides the interface for running store tests against different implementations
type StoreTestSuite struct {
	Store Store
	// InitDB should be called before each test to initialize the database
	InitDB func(t *testing.T) Store
	// CleanupDB should be called after each test to clean up the database
	CleanupDB func(t *testing.T)
}

const (
	testTokenAddr      = "0x00000000000000000000000000000000000000a1"
	testCollectionAddr = "0x00000000000000000000000000000000000000c1"
	testAlice          = "0x1111111111111111111111111111111111111111"
	testBob            = "0x2222222222222222222222222222222222222222"
	testCarol          = "0x3333333333333333333333333333333333333333"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestReceipt creates a successful receipt for one committed action
func buildTestReceipt(seq uint64, action domain.ActionType, sender, contract string) *domain.Receipt {
	return &domain.Receipt{
		TxHash:    fmt.Sprintf("0x%064x", seq),
		Seq:       seq,
		Action:    action,
		From:      sender,
		Contract:  contract,
		Value:     "0",
		Nonce:     seq - 1,
		Status:    domain.TxStatusSuccess,
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(seq) * time.Second),
	}
}

// buildTestEvent creates one event emitted by a receipt
func buildTestEvent(receipt *domain.Receipt, index uint, contract string, eventType domain.EventType, data string) domain.Event {
	return domain.Event{
		TxHash:    receipt.TxHash,
		TxSeq:     receipt.Seq,
		Index:     index,
		Contract:  contract,
		Type:      eventType,
		Data:      json.RawMessage(data),
		Timestamp: receipt.Timestamp,
	}
}

// buildTestCommit wraps a receipt in a commit with a matching envelope
func buildTestCommit(receipt *domain.Receipt, params string) *domain.TxCommit {
	if params == "" {
		params = "{}"
	}
	envelopeContract := receipt.Contract
	if receipt.Action.IsDeploy() {
		// Deploy envelopes carry no target, the address is engine-derived
		envelopeContract = ""
	}
	envelope := fmt.Sprintf(
		`{"action":%q,"contract":%q,"params":%s,"value":%q,"nonce":%d,"signature":"0xtestsig"}`,
		receipt.Action, envelopeContract, params, receipt.Value, receipt.Nonce,
	)
	return &domain.TxCommit{
		Receipt:  receipt,
		Envelope: json.RawMessage(envelope),
	}
}

// commitTokenDeploy seeds a deployed token with its construction-time supply mint
func commitTokenDeploy(t *testing.T, store Store, seq uint64, recipient, supply string) *domain.TxCommit {
	receipt := buildTestReceipt(seq, domain.ActionTokenDeploy, testAlice, testTokenAddr)
	receipt.Events = []domain.Event{
		buildTestEvent(receipt, 0, testTokenAddr, domain.EventTypeTokenTransfer,
			fmt.Sprintf(`{"from":%q,"to":%q,"amount":%q}`, domain.ZERO_ADDRESS, recipient, supply)),
	}
	commit := buildTestCommit(receipt, `{"name":"Settlement Credits","symbol":"SETL","initialSupply":"1000000"}`)
	require.NoError(t, store.CommitTransaction(context.Background(), commit))
	return commit
}

func stringPtr(s string) *string {
	return &s
}

// =============================================================================
// Test: InitGenesis
// =============================================================================

func testInitGenesis(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("no genesis stored returns nil", func(t *testing.T) {
		doc, err := store.GetGenesis(ctx)
		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	document := json.RawMessage(fmt.Sprintf(
		`{"allocations":{%q:"500000"},"contracts":[{"address":%q,"kind":"collection"}]}`,
		testAlice, testCollectionAddr))

	t.Run("stores the document and seeds the read models", func(t *testing.T) {
		err := store.InitGenesis(ctx, &GenesisCommit{
			Document: document,
			Balances: map[string]string{testAlice: "500000"},
			Contracts: []GenesisContractSeed{
				{
					Address: testCollectionAddr,
					Kind:    domain.KindCollection,
					Owner:   testAlice,
					Name:    "Field Notes",
					Symbol:  "FNOTE",
				},
				{
					Address:       testTokenAddr,
					Kind:          domain.KindToken,
					Owner:         testAlice,
					Name:          "Settlement Credits",
					Symbol:        "SETL",
					TokenHoldings: map[string]string{testAlice: "1000000"},
				},
			},
		})
		require.NoError(t, err)

		doc, err := store.GetGenesis(ctx)
		require.NoError(t, err)
		assert.JSONEq(t, string(document), string(doc))

		balance, err := store.GetAccountBalance(ctx, testAlice)
		require.NoError(t, err)
		assert.Equal(t, "500000", balance)

		contract, err := store.GetContract(ctx, testCollectionAddr)
		require.NoError(t, err)
		require.NotNil(t, contract)
		assert.Equal(t, "collection", contract.Kind)
		assert.Equal(t, testAlice, contract.Owner)
		assert.Equal(t, "Field Notes", contract.Name)
		assert.Equal(t, "FNOTE", contract.Symbol)
		assert.Equal(t, uint64(0), contract.DeployedAtSeq)

		tokenBalance, err := store.GetTokenBalance(ctx, testTokenAddr, testAlice)
		require.NoError(t, err)
		assert.Equal(t, "1000000", tokenBalance)
	})

	t.Run("second init is rejected", func(t *testing.T) {
		err := store.InitGenesis(ctx, &GenesisCommit{Document: document})
		assert.ErrorIs(t, err, domain.ErrGenesisExists)
	})
}

// =============================================================================
// Test: CommitTransaction
// =============================================================================

func testCommitTransaction(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("token deploy writes the journal row and registers the contract", func(t *testing.T) {
		commit := commitTokenDeploy(t, store, 1, testAlice, "1000000")

		row, events, err := store.GetTransactionByHash(ctx, commit.Receipt.TxHash)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, uint64(1), row.Seq)
		assert.Equal(t, "token.deploy", row.Action)
		assert.Equal(t, testAlice, row.Sender)
		assert.Equal(t, testTokenAddr, row.Contract)
		assert.Equal(t, schema.TxStatusSuccess, row.Status)
		assert.JSONEq(t, string(commit.Envelope), string(row.Envelope))

		require.Len(t, events, 1)
		assert.Equal(t, "token.transfer", events[0].EventType)
		assert.Equal(t, testTokenAddr, events[0].Contract)
		assert.Equal(t, uint64(1), events[0].TxSeq)

		contract, err := store.GetContract(ctx, testTokenAddr)
		require.NoError(t, err)
		require.NotNil(t, contract)
		assert.Equal(t, "token", contract.Kind)
		assert.Equal(t, testAlice, contract.Owner)
		assert.Equal(t, "Settlement Credits", contract.Name)
		assert.Equal(t, "SETL", contract.Symbol)
		assert.Equal(t, uint64(1), contract.DeployedAtSeq)

		balance, err := store.GetTokenBalance(ctx, testTokenAddr, testAlice)
		require.NoError(t, err)
		assert.Equal(t, "1000000", balance)
	})

	t.Run("native transfer upserts the touched balances", func(t *testing.T) {
		receipt := buildTestReceipt(2, domain.ActionNativeTransfer, testAlice, testBob)
		receipt.Value = "100"
		commit := buildTestCommit(receipt, "")
		commit.Balances = map[string]string{testAlice: "400", testBob: "100"}
		require.NoError(t, store.CommitTransaction(ctx, commit))

		aliceBalance, err := store.GetAccountBalance(ctx, testAlice)
		require.NoError(t, err)
		assert.Equal(t, "400", aliceBalance)

		bobBalance, err := store.GetAccountBalance(ctx, testBob)
		require.NoError(t, err)
		assert.Equal(t, "100", bobBalance)

		// A later transfer overwrites the existing rows
		receipt = buildTestReceipt(3, domain.ActionNativeTransfer, testAlice, testCarol)
		receipt.Value = "20"
		commit = buildTestCommit(receipt, "")
		commit.Balances = map[string]string{testAlice: "380", testCarol: "20"}
		require.NoError(t, store.CommitTransaction(ctx, commit))

		aliceBalance, err = store.GetAccountBalance(ctx, testAlice)
		require.NoError(t, err)
		assert.Equal(t, "380", aliceBalance)

		carolBalance, err := store.GetAccountBalance(ctx, testCarol)
		require.NoError(t, err)
		assert.Equal(t, "20", carolBalance)
	})

	t.Run("untouched accounts read as zero", func(t *testing.T) {
		balance, err := store.GetAccountBalance(ctx, "0x9999999999999999999999999999999999999999")
		require.NoError(t, err)
		assert.Equal(t, "0", balance)
	})

	t.Run("failed transaction journals the reason and projects nothing", func(t *testing.T) {
		receipt := buildTestReceipt(4, domain.ActionCollectionMint, testBob, testCollectionAddr)
		receipt.Status = domain.TxStatusFailed
		receipt.Reason = "incorrect payment"
		commit := buildTestCommit(receipt, `{"quantity":2}`)
		require.NoError(t, store.CommitTransaction(ctx, commit))

		row, events, err := store.GetTransactionByHash(ctx, receipt.TxHash)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, schema.TxStatusFailed, row.Status)
		assert.Equal(t, "incorrect payment", row.Reason)
		assert.Empty(t, events)

		contract, err := store.GetContract(ctx, testCollectionAddr)
		require.NoError(t, err)
		assert.Nil(t, contract)
	})

	t.Run("duplicate sequence is rejected", func(t *testing.T) {
		receipt := buildTestReceipt(5, domain.ActionNativeTransfer, testAlice, testBob)
		commit := buildTestCommit(receipt, "")
		require.NoError(t, store.CommitTransaction(ctx, commit))

		duplicate := buildTestReceipt(5, domain.ActionNativeTransfer, testAlice, testCarol)
		duplicate.TxHash = "0x" + fmt.Sprintf("%064x", 999)
		err := store.CommitTransaction(ctx, buildTestCommit(duplicate, ""))
		assert.Error(t, err)
	})
}

// =============================================================================
// Test: ListTransactionRecords / GetLastSeq
// =============================================================================

func testListTransactionRecords(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("empty journal has no last seq", func(t *testing.T) {
		seq, err := store.GetLastSeq(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), seq)
	})

	// Seed three journal rows, the middle one a failure
	first := buildTestCommit(buildTestReceipt(1, domain.ActionNativeTransfer, testAlice, testBob), "")
	require.NoError(t, store.CommitTransaction(ctx, first))

	failed := buildTestReceipt(2, domain.ActionTokenTransfer, testBob, testTokenAddr)
	failed.Status = domain.TxStatusFailed
	failed.Reason = "transfer amount exceeds balance"
	require.NoError(t, store.CommitTransaction(ctx, buildTestCommit(failed, `{"to":"0xdead","amount":"10"}`)))

	third := buildTestCommit(buildTestReceipt(3, domain.ActionNativeTransfer, testAlice, testCarol), "")
	require.NoError(t, store.CommitTransaction(ctx, third))

	t.Run("reads records after a sequence in order", func(t *testing.T) {
		records, err := store.ListTransactionRecords(ctx, 0, 2)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, uint64(1), records[0].Seq)
		assert.Equal(t, uint64(2), records[1].Seq)
		assert.JSONEq(t, string(first.Envelope), string(records[0].Envelope))
		assert.Equal(t, domain.TxStatusFailed, records[1].Status)
		assert.Equal(t, "transfer amount exceeds balance", records[1].Reason)

		records, err = store.ListTransactionRecords(ctx, 2, 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, uint64(3), records[0].Seq)
	})

	t.Run("last seq tracks the journal head", func(t *testing.T) {
		seq, err := store.GetLastSeq(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), seq)
	})
}

// =============================================================================
// Test: Transaction Queries
// =============================================================================

func testTransactionQueries(t *testing.T, store Store) {
	ctx := context.Background()

	// Seed a small history: two senders, two contracts, one failure
	require.NoError(t, store.CommitTransaction(ctx,
		buildTestCommit(buildTestReceipt(1, domain.ActionTokenTransfer, testAlice, testTokenAddr), `{"to":"0xdead","amount":"10"}`)))
	require.NoError(t, store.CommitTransaction(ctx,
		buildTestCommit(buildTestReceipt(2, domain.ActionCollectionMint, testBob, testCollectionAddr), `{"quantity":1}`)))
	failed := buildTestReceipt(3, domain.ActionCollectionMint, testAlice, testCollectionAddr)
	failed.Status = domain.TxStatusFailed
	failed.Reason = "mint is paused"
	require.NoError(t, store.CommitTransaction(ctx, buildTestCommit(failed, `{"quantity":1}`)))

	t.Run("lists newest first with total", func(t *testing.T) {
		rows, total, err := store.ListTransactions(ctx, TransactionQueryFilter{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, rows, 3)
		assert.Equal(t, uint64(3), rows[0].Seq)
		assert.Equal(t, uint64(1), rows[2].Seq)
	})

	t.Run("filters by sender", func(t *testing.T) {
		rows, total, err := store.ListTransactions(ctx, TransactionQueryFilter{Sender: stringPtr(testAlice), Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, rows, 2)
		assert.Equal(t, uint64(3), rows[0].Seq)
		assert.Equal(t, uint64(1), rows[1].Seq)
	})

	t.Run("filters by contract, action, and status", func(t *testing.T) {
		rows, total, err := store.ListTransactions(ctx, TransactionQueryFilter{Contract: stringPtr(testTokenAddr), Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, rows, 1)

		rows, total, err = store.ListTransactions(ctx, TransactionQueryFilter{Action: stringPtr("collection.mint"), Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, rows, 2)

		rows, total, err = store.ListTransactions(ctx, TransactionQueryFilter{Status: stringPtr("failed"), Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, "mint is paused", rows[0].Reason)
	})

	t.Run("pages with limit and offset", func(t *testing.T) {
		rows, total, err := store.ListTransactions(ctx, TransactionQueryFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, rows, 1)
		assert.Equal(t, uint64(2), rows[0].Seq)
	})

	t.Run("gets by sequence", func(t *testing.T) {
		row, events, err := store.GetTransactionBySeq(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, testBob, row.Sender)
		assert.Empty(t, events)
	})

	t.Run("unknown hash and sequence return nil", func(t *testing.T) {
		row, events, err := store.GetTransactionByHash(ctx, "0xunknown")
		require.NoError(t, err)
		assert.Nil(t, row)
		assert.Nil(t, events)

		row, events, err = store.GetTransactionBySeq(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, row)
		assert.Nil(t, events)
	})
}

// =============================================================================
// Test: Event Queries
// =============================================================================

func testEventQueries(t *testing.T, store Store) {
	ctx := context.Background()

	// Seed one transaction with two events and one with a single event
	mint := buildTestReceipt(1, domain.ActionCollectionMint, testAlice, testCollectionAddr)
	mint.Events = []domain.Event{
		buildTestEvent(mint, 0, testCollectionAddr, domain.EventTypeNFTTransfer,
			fmt.Sprintf(`{"from":%q,"to":%q,"token_number":1}`, domain.ZERO_ADDRESS, testAlice)),
		buildTestEvent(mint, 1, testCollectionAddr, domain.EventTypeCollectionMint,
			fmt.Sprintf(`{"caller":%q,"quantity":1,"total_cost":"1000","first_token_number":1,"last_token_number":1}`, testAlice)),
	}
	require.NoError(t, store.CommitTransaction(ctx, buildTestCommit(mint, `{"quantity":1}`)))

	transfer := buildTestReceipt(2, domain.ActionTokenDeploy, testAlice, testTokenAddr)
	transfer.Events = []domain.Event{
		buildTestEvent(transfer, 0, testTokenAddr, domain.EventTypeTokenTransfer,
			fmt.Sprintf(`{"from":%q,"to":%q,"amount":"100"}`, domain.ZERO_ADDRESS, testBob)),
	}
	require.NoError(t, store.CommitTransaction(ctx,
		buildTestCommit(transfer, `{"name":"Settlement Credits","symbol":"SETL","initialSupply":"100"}`)))

	t.Run("lists newest first with total", func(t *testing.T) {
		rows, total, err := store.ListEvents(ctx, EventQueryFilter{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, rows, 3)
		assert.Equal(t, "token.transfer", rows[0].EventType)
	})

	t.Run("filters by contract, event type, and tx hash", func(t *testing.T) {
		rows, total, err := store.ListEvents(ctx, EventQueryFilter{Contract: stringPtr(testCollectionAddr), Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, rows, 2)

		rows, total, err = store.ListEvents(ctx, EventQueryFilter{EventType: stringPtr("collection.mint"), Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, rows, 1)

		rows, total, err = store.ListEvents(ctx, EventQueryFilter{TxHash: stringPtr(mint.TxHash), Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, rows, 2)
	})

	t.Run("relay feed walks the cursor oldest first", func(t *testing.T) {
		page, err := store.ListEventsAfter(ctx, 0, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Less(t, page[0].ID, page[1].ID)
		assert.Equal(t, "nft.transfer", page[0].EventType)

		rest, err := store.ListEventsAfter(ctx, page[1].ID, 10)
		require.NoError(t, err)
		require.Len(t, rest, 1)
		assert.Equal(t, "token.transfer", rest[0].EventType)

		empty, err := store.ListEventsAfter(ctx, rest[0].ID, 10)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}

// =============================================================================
// Test: Token Read Model Projection
// =============================================================================

func testTokenProjection(t *testing.T, store Store) {
	ctx := context.Background()

	// Construction-time supply mint credits the recipient
	commitTokenDeploy(t, store, 1, testAlice, "1000")

	t.Run("transfer debits the sender and credits the receiver", func(t *testing.T) {
		receipt := buildTestReceipt(2, domain.ActionTokenTransfer, testAlice, testTokenAddr)
		receipt.Events = []domain.Event{
			buildTestEvent(receipt, 0, testTokenAddr, domain.EventTypeTokenTransfer,
				fmt.Sprintf(`{"from":%q,"to":%q,"amount":"300"}`, testAlice, testBob)),
		}
		require.NoError(t, store.CommitTransaction(ctx, buildTestCommit(receipt, `{"to":"0xdead","amount":"300"}`)))

		aliceBalance, err := store.GetTokenBalance(ctx, testTokenAddr, testAlice)
		require.NoError(t, err)
		assert.Equal(t, "700", aliceBalance)

		bobBalance, err := store.GetTokenBalance(ctx, testTokenAddr, testBob)
		require.NoError(t, err)
		assert.Equal(t, "300", bobBalance)
	})

	t.Run("lists holders by descending balance", func(t *testing.T) {
		rows, total, err := store.ListTokenBalances(ctx, testTokenAddr, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, rows, 2)
		assert.Equal(t, testAlice, rows[0].Holder)
		assert.Equal(t, "700", rows[0].Balance)
		assert.Equal(t, testBob, rows[1].Holder)
	})

	t.Run("approvals are absolute", func(t *testing.T) {
		receipt := buildTestReceipt(3, domain.ActionTokenApprove, testAlice, testTokenAddr)
		receipt.Events = []domain.Event{
			buildTestEvent(receipt, 0, testTokenAddr, domain.EventTypeTokenApproval,
				fmt.Sprintf(`{"owner":%q,"spender":%q,"amount":"500"}`, testAlice, testBob)),
		}
		require.NoError(t, store.CommitTransaction(ctx, buildTestCommit(receipt, `{"spender":"0xdead","amount":"500"}`)))

		allowance, err := store.GetTokenAllowance(ctx, testTokenAddr, testAlice, testBob)
		require.NoError(t, err)
		assert.Equal(t, "500", allowance)

		// A second approval overwrites rather than accumulates
		receipt = buildTestReceipt(4, domain.ActionTokenApprove, testAlice, testTokenAddr)
		receipt.Events = []domain.Event{
			buildTestEvent(receipt, 0, testTokenAddr, domain.EventTypeTokenApproval,
				fmt.Sprintf(`{"owner":%q,"spender":%q,"amount":"200"}`, testAlice, testBob)),
		}
		require.NoError(t, store.CommitTransaction(ctx, buildTestCommit(receipt, `{"spender":"0xdead","amount":"200"}`)))

		allowance, err = store.GetTokenAllowance(ctx, testTokenAddr, testAlice, testBob)
		require.NoError(t, err)
		assert.Equal(t, "200", allowance)
	})

	t.Run("unknown allowance reads as zero", func(t *testing.T) {
		allowance, err := store.GetTokenAllowance(ctx, testTokenAddr, testBob, testCarol)
		require.NoError(t, err)
		assert.Equal(t, "0", allowance)
	})

	t.Run("debit from an untracked holder fails the commit", func(t *testing.T) {
		receipt := buildTestReceipt(5, domain.ActionTokenTransfer, testCarol, testTokenAddr)
		receipt.Events = []domain.Event{
			buildTestEvent(receipt, 0, testTokenAddr, domain.EventTypeTokenTransfer,
				fmt.Sprintf(`{"from":%q,"to":%q,"amount":"10"}`, testCarol, testBob)),
		}
		err := store.CommitTransaction(ctx, buildTestCommit(receipt, `{"to":"0xdead","amount":"10"}`))
		assert.Error(t, err)

		// The whole commit rolled back, journal row included
		row, _, err := store.GetTransactionBySeq(ctx, 5)
		require.NoError(t, err)
		assert.Nil(t, row)

		bobBalance, err := store.GetTokenBalance(ctx, testTokenAddr, testBob)
		require.NoError(t, err)
		assert.Equal(t, "300", bobBalance)
	})
}

// =============================================================================
// Test: Collection Read Model Projection
// =============================================================================

func testCollectionProjection(t *testing.T, store Store) {
	ctx := context.Background()

	// Deploy the collection so ownership updates have a contract row
	deploy := buildTestReceipt(1, domain.ActionCollectionDeploy, testAlice, testCollectionAddr)
	require.NoError(t, store.CommitTransaction(ctx,
		buildTestCommit(deploy, `{"name":"Field Notes","symbol":"FNOTE","unitPrice":"1000","maxSupply":5}`)))

	t.Run("mints create numbered token rows", func(t *testing.T) {
		receipt := buildTestReceipt(2, domain.ActionCollectionMint, testAlice, testCollectionAddr)
		receipt.Value = "2000"
		receipt.Events = []domain.Event{
			buildTestEvent(receipt, 0, testCollectionAddr, domain.EventTypeNFTTransfer,
				fmt.Sprintf(`{"from":%q,"to":%q,"token_number":1}`, domain.ZERO_ADDRESS, testAlice)),
			buildTestEvent(receipt, 1, testCollectionAddr, domain.EventTypeNFTTransfer,
				fmt.Sprintf(`{"from":%q,"to":%q,"token_number":2}`, domain.ZERO_ADDRESS, testAlice)),
			buildTestEvent(receipt, 2, testCollectionAddr, domain.EventTypeCollectionMint,
				fmt.Sprintf(`{"caller":%q,"quantity":2,"total_cost":"2000","first_token_number":1,"last_token_number":2}`, testAlice)),
		}
		require.NoError(t, store.CommitTransaction(ctx, buildTestCommit(receipt, `{"quantity":2}`)))

		token, err := store.GetCollectionToken(ctx, testCollectionAddr, 1)
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, testAlice, token.Owner)
		assert.Equal(t, uint64(2), token.MintedAtSeq)

		rows, total, err := store.ListCollectionTokens(ctx, CollectionTokenQueryFilter{
			Contract: stringPtr(testCollectionAddr),
			Limit:    10,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, rows, 2)
		assert.Equal(t, uint64(1), rows[0].TokenNumber)
		assert.Equal(t, uint64(2), rows[1].TokenNumber)
	})

	t.Run("transfers move token ownership", func(t *testing.T) {
		receipt := buildTestReceipt(3, domain.ActionCollectionMint, testAlice, testCollectionAddr)
		receipt.Events = []domain.Event{
			buildTestEvent(receipt, 0, testCollectionAddr, domain.EventTypeNFTTransfer,
				fmt.Sprintf(`{"from":%q,"to":%q,"token_number":1}`, testAlice, testBob)),
		}
		require.NoError(t, store.CommitTransaction(ctx, buildTestCommit(receipt, `{}`)))

		token, err := store.GetCollectionToken(ctx, testCollectionAddr, 1)
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, testBob, token.Owner)

		rows, total, err := store.ListCollectionTokens(ctx, CollectionTokenQueryFilter{
			Owner: stringPtr(testBob),
			Limit: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, uint64(1), rows[0].TokenNumber)
	})

	t.Run("unminted token reads as nil", func(t *testing.T) {
		token, err := store.GetCollectionToken(ctx, testCollectionAddr, 99)
		require.NoError(t, err)
		assert.Nil(t, token)
	})

	t.Run("ownership transfer updates the contract row", func(t *testing.T) {
		receipt := buildTestReceipt(4, domain.ActionCollectionTransferOwnership, testAlice, testCollectionAddr)
		receipt.Events = []domain.Event{
			buildTestEvent(receipt, 0, testCollectionAddr, domain.EventTypeOwnershipTransferred,
				fmt.Sprintf(`{"old_owner":%q,"new_owner":%q}`, testAlice, testBob)),
		}
		require.NoError(t, store.CommitTransaction(ctx, buildTestCommit(receipt, fmt.Sprintf(`{"newOwner":%q}`, testBob))))

		contract, err := store.GetContract(ctx, testCollectionAddr)
		require.NoError(t, err)
		require.NotNil(t, contract)
		assert.Equal(t, testBob, contract.Owner)
	})

	t.Run("lists contracts by kind", func(t *testing.T) {
		rows, total, err := store.ListContracts(ctx, stringPtr("collection"), 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, testCollectionAddr, rows[0].Address)

		rows, total, err = store.ListContracts(ctx, stringPtr("token"), 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), total)
		assert.Empty(t, rows)
	})
}

// =============================================================================
// Test: Key-Value Store
// =============================================================================

func testKeyValueStore(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("set and get key-value", func(t *testing.T) {
		key := "test:key1"
		value := "value1"

		err := store.SetKeyValue(ctx, key, value)
		require.NoError(t, err)

		retrievedValue, err := store.GetKeyValue(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, value, retrievedValue)
	})

	t.Run("get non-existent key returns empty string", func(t *testing.T) {
		value, err := store.GetKeyValue(ctx, "nonexistent:key")
		require.NoError(t, err)
		assert.Equal(t, "", value)
	})

	t.Run("update existing key", func(t *testing.T) {
		key := "test:key2"

		err := store.SetKeyValue(ctx, key, "value1")
		require.NoError(t, err)

		err = store.SetKeyValue(ctx, key, "value2")
		require.NoError(t, err)

		value, err := store.GetKeyValue(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "value2", value)
	})

	t.Run("get all key-values by prefix", func(t *testing.T) {
		prefix := "test:kv:prefix"

		err := store.SetKeyValue(ctx, prefix+":key1", "value1")
		require.NoError(t, err)
		err = store.SetKeyValue(ctx, prefix+":key2", "value2")
		require.NoError(t, err)
		err = store.SetKeyValue(ctx, "other:key", "value3")
		require.NoError(t, err)

		kvMap, err := store.GetAllKeyValuesByPrefix(ctx, prefix)
		require.NoError(t, err)
		assert.Len(t, kvMap, 2)
		assert.Equal(t, "value1", kvMap[prefix+":key1"])
		assert.Equal(t, "value2", kvMap[prefix+":key2"])
	})
}

// =============================================================================
// Test: Event Cursor
// =============================================================================

func testEventCursor(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get non-existent cursor returns 0", func(t *testing.T) {
		cursor, err := store.GetEventCursor(ctx, "relay_nonexistent")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), cursor)
	})

	t.Run("set and get cursor", func(t *testing.T) {
		consumer := "relay_nats"
		eventID := uint64(12345)

		err := store.SetEventCursor(ctx, consumer, eventID)
		require.NoError(t, err)

		cursor, err := store.GetEventCursor(ctx, consumer)
		require.NoError(t, err)
		assert.Equal(t, eventID, cursor)
	})

	t.Run("update existing cursor", func(t *testing.T) {
		consumer := "relay_update"

		err := store.SetEventCursor(ctx, consumer, 100)
		require.NoError(t, err)

		err = store.SetEventCursor(ctx, consumer, 200)
		require.NoError(t, err)

		cursor, err := store.GetEventCursor(ctx, consumer)
		require.NoError(t, err)
		assert.Equal(t, uint64(200), cursor)
	})
}

// =============================================================================
// Test: Webhook Clients
// =============================================================================

func testWebhookClients(t *testing.T, store Store) {
	ctx := context.Background()

	wildcard, err := store.CreateWebhookClient(ctx, CreateWebhookClientInput{
		ClientID:         "client-wildcard-123",
		WebhookURL:       "https://webhook.example.com/all",
		WebhookSecret:    "secret-all",
		EventFilters:     datatypes.JSON(`["*"]`),
		IsActive:         true,
		RetryMaxAttempts: 5,
	})
	require.NoError(t, err)
	require.NotZero(t, wildcard.ID)

	_, err = store.CreateWebhookClient(ctx, CreateWebhookClientInput{
		ClientID:         "client-mint-only-456",
		WebhookURL:       "https://webhook.example.com/mints",
		WebhookSecret:    "secret-mints",
		EventFilters:     datatypes.JSON(`["collection.mint", "nft.transfer"]`),
		IsActive:         true,
		RetryMaxAttempts: 3,
	})
	require.NoError(t, err)

	_, err = store.CreateWebhookClient(ctx, CreateWebhookClientInput{
		ClientID:         "client-inactive-789",
		WebhookURL:       "https://webhook.example.com/inactive",
		WebhookSecret:    "secret-inactive",
		EventFilters:     datatypes.JSON(`["*"]`),
		IsActive:         false,
		RetryMaxAttempts: 5,
	})
	require.NoError(t, err)

	t.Run("matches wildcard and specific filters", func(t *testing.T) {
		clients, err := store.GetActiveWebhookClientsByEventType(ctx, "collection.mint")
		require.NoError(t, err)
		require.Len(t, clients, 2)

		ids := []string{clients[0].ClientID, clients[1].ClientID}
		assert.Contains(t, ids, "client-wildcard-123")
		assert.Contains(t, ids, "client-mint-only-456")
	})

	t.Run("non-matching event type only hits the wildcard", func(t *testing.T) {
		clients, err := store.GetActiveWebhookClientsByEventType(ctx, "token.transfer")
		require.NoError(t, err)
		require.Len(t, clients, 1)
		assert.Equal(t, "client-wildcard-123", clients[0].ClientID)
	})

	t.Run("inactive clients are excluded", func(t *testing.T) {
		clients, err := store.GetActiveWebhookClientsByEventType(ctx, "collection.swept")
		require.NoError(t, err)
		for _, c := range clients {
			assert.NotEqual(t, "client-inactive-789", c.ClientID)
		}
	})

	t.Run("GetWebhookClientByID", func(t *testing.T) {
		client, err := store.GetWebhookClientByID(ctx, "client-wildcard-123")
		require.NoError(t, err)
		require.NotNil(t, client)
		assert.Equal(t, "https://webhook.example.com/all", client.WebhookURL)
		assert.True(t, client.IsActive)
		assert.Equal(t, 5, client.RetryMaxAttempts)

		client, err = store.GetWebhookClientByID(ctx, "non-existent-client")
		require.NoError(t, err)
		assert.Nil(t, client)
	})

	t.Run("duplicate client ID is rejected", func(t *testing.T) {
		_, err := store.CreateWebhookClient(ctx, CreateWebhookClientInput{
			ClientID:      "client-wildcard-123",
			WebhookURL:    "https://webhook.example.com/dup",
			WebhookSecret: "secret-dup",
			EventFilters:  datatypes.JSON(`["*"]`),
			IsActive:      true,
		})
		assert.Error(t, err)
	})
}

// =============================================================================
// Test: Webhook Deliveries
// =============================================================================

func testWebhookDeliveries(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateWebhookClient(ctx, CreateWebhookClientInput{
		ClientID:         "client-delivery-123",
		WebhookURL:       "https://webhook.example.com/deliveries",
		WebhookSecret:    "secret-deliveries",
		EventFilters:     datatypes.JSON(`["*"]`),
		IsActive:         true,
		RetryMaxAttempts: 5,
	})
	require.NoError(t, err)

	t.Run("CreateWebhookDelivery", func(t *testing.T) {
		payload := []byte(`{"event_id":"42","event_type":"collection.mint","data":{"quantity":2}}`)
		delivery := &schema.WebhookDelivery{
			ClientID:       "client-delivery-123",
			EventID:        "42",
			EventType:      "collection.mint",
			Payload:        payload,
			WorkflowID:     "webhook-delivery-42-client-delivery-123",
			WorkflowRunID:  "run-test-456",
			DeliveryStatus: schema.WebhookDeliveryStatusPending,
			Attempts:       0,
		}
		err := store.CreateWebhookDelivery(ctx, delivery)
		assert.NoError(t, err)
		assert.NotZero(t, delivery.ID)
		assert.Equal(t, schema.WebhookDeliveryStatusPending, delivery.DeliveryStatus)
	})

	t.Run("UpdateWebhookDeliveryStatus - success", func(t *testing.T) {
		delivery := &schema.WebhookDelivery{
			ClientID:       "client-delivery-123",
			EventID:        "43",
			EventType:      "nft.transfer",
			Payload:        []byte(`{"event_id":"43"}`),
			WorkflowID:     "webhook-delivery-43-client-delivery-123",
			DeliveryStatus: schema.WebhookDeliveryStatusPending,
		}
		require.NoError(t, store.CreateWebhookDelivery(ctx, delivery))

		statusCode := 200
		err := store.UpdateWebhookDeliveryStatus(
			ctx,
			delivery.ID,
			schema.WebhookDeliveryStatusSuccess,
			1,
			&statusCode,
			`{"status":"received"}`,
			"",
		)
		assert.NoError(t, err)
	})

	t.Run("UpdateWebhookDeliveryStatus - failed", func(t *testing.T) {
		delivery := &schema.WebhookDelivery{
			ClientID:       "client-delivery-123",
			EventID:        "44",
			EventType:      "collection.swept",
			Payload:        []byte(`{"event_id":"44"}`),
			WorkflowID:     "webhook-delivery-44-client-delivery-123",
			DeliveryStatus: schema.WebhookDeliveryStatusPending,
		}
		require.NoError(t, store.CreateWebhookDelivery(ctx, delivery))

		statusCode := 500
		err := store.UpdateWebhookDeliveryStatus(
			ctx,
			delivery.ID,
			schema.WebhookDeliveryStatusFailed,
			3,
			&statusCode,
			`{"error":"internal server error"}`,
			"HTTP 500",
		)
		assert.NoError(t, err)
	})

	t.Run("CreateWebhookDelivery - invalid client_id", func(t *testing.T) {
		delivery := &schema.WebhookDelivery{
			ClientID:       "non-existent-client",
			EventID:        "45",
			EventType:      "collection.mint",
			Payload:        []byte(`{"event_id":"45"}`),
			WorkflowID:     "workflow-invalid",
			DeliveryStatus: schema.WebhookDeliveryStatusPending,
		}
		err := store.CreateWebhookDelivery(ctx, delivery)
		assert.Error(t, err, "Should reject invalid client_id due to foreign key constraint")
	})
}

// =============================================================================
// Test Runner - runs all tests against a given store implementation
// =============================================================================

func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"InitGenesis", testInitGenesis},
		{"CommitTransaction", testCommitTransaction},
		{"ListTransactionRecords", testListTransactionRecords},
		{"TransactionQueries", testTransactionQueries},
		{"EventQueries", testEventQueries},
		{"TokenProjection", testTokenProjection},
		{"CollectionProjection", testCollectionProjection},
		{"KeyValueStore", testKeyValueStore},
		{"EventCursor", testEventCursor},
		{"WebhookClients", testWebhookClients},
		{"WebhookDeliveries", testWebhookDeliveries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
