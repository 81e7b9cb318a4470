package fungible

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-mintgate/internal/contract"
	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/state"
)

var (
	tokenAddr = common.HexToAddress("0xaaaa000000000000000000000000000000000001")
	deployer  = common.HexToAddress("0x1111111111111111111111111111111111111111")
	holder    = common.HexToAddress("0x2222222222222222222222222222222222222222")
	spender   = common.HexToAddress("0x3333333333333333333333333333333333333333")
	receiver  = common.HexToAddress("0x4444444444444444444444444444444444444444")
)

func deployed(t *testing.T) (*state.StateDB, *big.Int) {
	t.Helper()
	db := state.New()
	db.Prepare(common.HexToHash("0x01"), 1)
	supply := big.NewInt(1_000_000)
	ctx := &contract.Context{State: db, Self: tokenAddr, Caller: deployer, Now: time.Now()}
	require.NoError(t, Deploy(ctx, "Feral Token", "FERAL", 18, supply, holder))
	db.Finalise()
	return db, supply
}

func callCtx(db *state.StateDB, caller common.Address) *contract.Context {
	return &contract.Context{State: db, Self: tokenAddr, Caller: caller, Now: time.Now()}
}

func TestDeploy(t *testing.T) {
	db, supply := deployed(t)

	assert.Equal(t, "Feral Token", Name(db, tokenAddr))
	assert.Equal(t, "FERAL", Symbol(db, tokenAddr))
	assert.Equal(t, uint8(18), Decimals(db, tokenAddr))
	assert.Equal(t, 0, supply.Cmp(TotalSupply(db, tokenAddr)))
	assert.Equal(t, 0, supply.Cmp(BalanceOf(db, tokenAddr, holder)))
	assert.Equal(t, 0, BalanceOf(db, tokenAddr, deployer).Sign())
	assert.Equal(t, deployer, contract.Owner(db, tokenAddr))
	assert.Equal(t, domain.KindToken, contract.Kind(db, tokenAddr))
}

func TestDeploy_EmitsMintTransfer(t *testing.T) {
	db := state.New()
	thash := common.HexToHash("0x02")
	db.Prepare(thash, 1)
	ctx := &contract.Context{State: db, Self: tokenAddr, Caller: deployer, Now: time.Now()}
	require.NoError(t, Deploy(ctx, "T", "T", 18, big.NewInt(42), holder))

	logs := db.GetLogs(thash)
	require.Len(t, logs, 1)
	assert.Equal(t, domain.EventTypeTokenTransfer, logs[0].Type)
	assert.JSONEq(t,
		`{"from":"`+domain.ZERO_ADDRESS+`","to":"`+holder.String()+`","amount":"42"}`,
		string(logs[0].Data))
}

func TestDeploy_Validation(t *testing.T) {
	db := state.New()
	ctx := &contract.Context{State: db, Self: tokenAddr, Caller: deployer, Now: time.Now()}

	assert.ErrorIs(t, Deploy(ctx, "T", "T", 18, big.NewInt(0), holder), domain.ErrInvalidSupply)
	assert.ErrorIs(t, Deploy(ctx, "T", "T", 18, nil, holder), domain.ErrInvalidSupply)
	assert.ErrorIs(t, Deploy(ctx, "T", "T", 18, big.NewInt(1), common.Address{}), domain.ErrZeroAddress)
}

func TestTransfer(t *testing.T) {
	db, supply := deployed(t)

	require.NoError(t, Transfer(callCtx(db, holder), receiver, big.NewInt(300)))

	assert.Equal(t, int64(300), BalanceOf(db, tokenAddr, receiver).Int64())
	expected := new(big.Int).Sub(supply, big.NewInt(300))
	assert.Equal(t, 0, expected.Cmp(BalanceOf(db, tokenAddr, holder)))
	// supply is conserved
	assert.Equal(t, 0, supply.Cmp(TotalSupply(db, tokenAddr)))
}

func TestTransfer_Failures(t *testing.T) {
	db, supply := deployed(t)

	tests := []struct {
		name     string
		caller   common.Address
		to       common.Address
		amount   *big.Int
		expected error
	}{
		{
			name:     "exceeds balance",
			caller:   holder,
			to:       receiver,
			amount:   new(big.Int).Add(supply, big.NewInt(1)),
			expected: domain.ErrInsufficientBalance,
		},
		{
			name:     "empty account",
			caller:   receiver,
			to:       holder,
			amount:   big.NewInt(1),
			expected: domain.ErrInsufficientBalance,
		},
		{
			name:     "zero address recipient",
			caller:   holder,
			to:       common.Address{},
			amount:   big.NewInt(1),
			expected: domain.ErrZeroAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Transfer(callCtx(db, tt.caller), tt.to, tt.amount), tt.expected)
		})
	}
}

func TestApprove(t *testing.T) {
	db, _ := deployed(t)

	require.NoError(t, Approve(callCtx(db, holder), spender, big.NewInt(500)))
	assert.Equal(t, int64(500), Allowance(db, tokenAddr, holder, spender).Int64())

	// second approve overwrites, it does not accumulate
	require.NoError(t, Approve(callCtx(db, holder), spender, big.NewInt(10)))
	assert.Equal(t, int64(10), Allowance(db, tokenAddr, holder, spender).Int64())

	assert.ErrorIs(t, Approve(callCtx(db, holder), common.Address{}, big.NewInt(1)), domain.ErrZeroAddress)
}

func TestTransferFrom(t *testing.T) {
	db, _ := deployed(t)
	require.NoError(t, Approve(callCtx(db, holder), spender, big.NewInt(500)))

	require.NoError(t, TransferFrom(callCtx(db, spender), holder, receiver, big.NewInt(200)))

	assert.Equal(t, int64(200), BalanceOf(db, tokenAddr, receiver).Int64())
	assert.Equal(t, int64(300), Allowance(db, tokenAddr, holder, spender).Int64())
}

func TestTransferFrom_InsufficientAllowance(t *testing.T) {
	db, _ := deployed(t)
	require.NoError(t, Approve(callCtx(db, holder), spender, big.NewInt(100)))

	err := TransferFrom(callCtx(db, spender), holder, receiver, big.NewInt(101))
	assert.ErrorIs(t, err, domain.ErrInsufficientAllowance)

	// an unapproved caller has no allowance at all
	err = TransferFrom(callCtx(db, receiver), holder, receiver, big.NewInt(1))
	assert.ErrorIs(t, err, domain.ErrInsufficientAllowance)
}

func TestTransferFrom_InsufficientBalance(t *testing.T) {
	db, supply := deployed(t)
	over := new(big.Int).Add(supply, big.NewInt(1))
	require.NoError(t, Approve(callCtx(db, holder), spender, over))

	err := TransferFrom(callCtx(db, spender), holder, receiver, over)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	// the allowance must not be spent on a failed transfer
	assert.Equal(t, 0, over.Cmp(Allowance(db, tokenAddr, holder, spender)))
}
