package usecase

import (
	"context"
	"testing"

	"github.com/aurumx/goldmarket/src/logger"
	"github.com/aurumx/goldmarket/src/storage"
	"github.com/aurumx/goldmarket/src/token/domain"
	"github.com/aurumx/goldmarket/src/token/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	repo := repository.NewMemoryLedgerRepo()
	tx := storage.NewMemoryManager(repo)
	return NewService(repo, tx, logger.New("local"))
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestInitGenesisMintsToDeployer(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.InitGenesis(ctx, "deployer", amount("100000")))

	bal, err := svc.BalanceOf(ctx, "deployer")
	require.NoError(t, err)
	assert.Equal(t, "100000", bal.String())

	supply, err := svc.TotalSupply(ctx)
	require.NoError(t, err)
	assert.Equal(t, "100000", supply.String())
}

func TestInitGenesisIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.InitGenesis(ctx, "deployer", amount("100000")))
	require.NoError(t, svc.InitGenesis(ctx, "deployer", amount("100000")))

	bal, err := svc.BalanceOf(ctx, "deployer")
	require.NoError(t, err)
	assert.Equal(t, "100000", bal.String())
}

func TestTransferMovesFunds(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	require.NoError(t, svc.InitGenesis(ctx, "alice", amount("1000")))

	require.NoError(t, svc.Transfer(ctx, "alice", "bob", amount("300")))

	aliceBal, _ := svc.BalanceOf(ctx, "alice")
	bobBal, _ := svc.BalanceOf(ctx, "bob")
	assert.Equal(t, "700", aliceBal.String())
	assert.Equal(t, "300", bobBal.String())
}

func TestTransferInsufficientBalance(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	require.NoError(t, svc.InitGenesis(ctx, "alice", amount("100")))

	err := svc.Transfer(ctx, "alice", "bob", amount("200"))
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	aliceBal, _ := svc.BalanceOf(ctx, "alice")
	bobBal, _ := svc.BalanceOf(ctx, "bob")
	assert.Equal(t, "100", aliceBal.String())
	assert.True(t, bobBal.IsZero())
}

func TestTransferRejectsNonPositiveOrFractionalAmounts(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	require.NoError(t, svc.InitGenesis(ctx, "alice", amount("100")))

	assert.ErrorIs(t, svc.Transfer(ctx, "alice", "bob", amount("0")), domain.ErrInvalidAmount)
	assert.ErrorIs(t, svc.Transfer(ctx, "alice", "bob", amount("-5")), domain.ErrInvalidAmount)
	assert.ErrorIs(t, svc.Transfer(ctx, "alice", "bob", amount("1.5")), domain.ErrInvalidAmount)
}

func TestApproveOverwritesNotAccumulates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.Approve(ctx, "alice", "market", amount("100")))
	require.NoError(t, svc.Approve(ctx, "alice", "market", amount("40")))

	limit, err := svc.Allowance(ctx, "alice", "market")
	require.NoError(t, err)
	assert.Equal(t, "40", limit.String())
}

func TestTransferFromConsumesAllowance(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	require.NoError(t, svc.InitGenesis(ctx, "alice", amount("1000")))
	require.NoError(t, svc.Approve(ctx, "alice", "market", amount("500")))

	require.NoError(t, svc.TransferFrom(ctx, "market", "alice", "bob", amount("200")))

	limit, _ := svc.Allowance(ctx, "alice", "market")
	assert.Equal(t, "300", limit.String())

	bobBal, _ := svc.BalanceOf(ctx, "bob")
	assert.Equal(t, "200", bobBal.String())
}

func TestTransferFromInsufficientAllowance(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	require.NoError(t, svc.InitGenesis(ctx, "alice", amount("1000")))
	require.NoError(t, svc.Approve(ctx, "alice", "market", amount("100")))

	err := svc.TransferFrom(ctx, "market", "alice", "bob", amount("200"))
	require.ErrorIs(t, err, domain.ErrInsufficientAllowance)

	// nothing moved, allowance intact
	limit, _ := svc.Allowance(ctx, "alice", "market")
	assert.Equal(t, "100", limit.String())
	aliceBal, _ := svc.BalanceOf(ctx, "alice")
	assert.Equal(t, "1000", aliceBal.String())
}

func TestTransferFromInsufficientBalanceRollsBackAllowance(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	require.NoError(t, svc.InitGenesis(ctx, "alice", amount("100")))
	require.NoError(t, svc.Approve(ctx, "alice", "market", amount("500")))

	err := svc.TransferFrom(ctx, "market", "alice", "bob", amount("200"))
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	// the allowance decrement must not survive the failed transfer
	limit, _ := svc.Allowance(ctx, "alice", "market")
	assert.Equal(t, "500", limit.String())
}

func TestSupplyUnchangedByTransfers(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	require.NoError(t, svc.InitGenesis(ctx, "alice", amount("1000")))

	require.NoError(t, svc.Transfer(ctx, "alice", "bob", amount("400")))
	require.NoError(t, svc.Transfer(ctx, "bob", "carol", amount("150")))

	supply, _ := svc.TotalSupply(ctx)
	assert.Equal(t, "1000", supply.String())

	balances, err := svc.AllBalances(ctx)
	require.NoError(t, err)
	sum := decimal.Zero
	for _, b := range balances {
		sum = sum.Add(b.Amount)
	}
	assert.Equal(t, "1000", sum.String())
}
