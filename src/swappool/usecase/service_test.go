package usecase

import (
	"context"
	"testing"

	"github.com/aurumx/goldmarket/src/logger"
	"github.com/aurumx/goldmarket/src/storage"
	adapter "github.com/aurumx/goldmarket/src/swappool/adapter/token"
	"github.com/aurumx/goldmarket/src/swappool/domain"
	"github.com/aurumx/goldmarket/src/swappool/repository"
	tokenrepo "github.com/aurumx/goldmarket/src/token/repository"
	tokenusecase "github.com/aurumx/goldmarket/src/token/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const poolAccount = "pool"

type harness struct {
	tokens *tokenusecase.Service
	pool   *Service
}

// newHarness wires the pool at rate 100 tokens per value unit, with the pool
// account holding poolTokens of the genesis supply as its token reserve.
func newHarness(t *testing.T, poolTokens int64) *harness {
	t.Helper()
	ctx := context.Background()
	ledgerRepo := tokenrepo.NewMemoryLedgerRepo()
	poolRepo := repository.NewMemoryPoolRepo()
	tx := storage.NewMemoryManager(ledgerRepo, poolRepo)
	logg := logger.New("local")

	tokens := tokenusecase.NewService(ledgerRepo, tx, logg)
	pool := NewService(poolRepo, adapter.NewLedgerPort(tokens), tx, poolAccount, decimal.NewFromInt(100), logg)

	require.NoError(t, tokens.InitGenesis(ctx, "deployer", decimal.NewFromInt(100000)))
	if poolTokens > 0 {
		require.NoError(t, tokens.Transfer(ctx, "deployer", poolAccount, decimal.NewFromInt(poolTokens)))
	}
	return &harness{tokens: tokens, pool: pool}
}

func TestDepositValueCreditsAccount(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, 0)

	require.NoError(t, h.pool.DepositValue(ctx, "alice", decimal.NewFromInt(50)))
	require.NoError(t, h.pool.DepositValue(ctx, "alice", decimal.NewFromInt(25)))

	bal, err := h.pool.ValueBalanceOf(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "75", bal.String())
}

func TestDepositValueRejectsInvalidAmounts(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, 0)

	assert.ErrorIs(t, h.pool.DepositValue(ctx, "alice", decimal.Zero), domain.ErrInvalidAmount)
	assert.ErrorIs(t, h.pool.DepositValue(ctx, "alice", decimal.NewFromInt(-1)), domain.ErrInvalidAmount)
}

func TestAddLiquidityIsOneSided(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, 0)
	require.NoError(t, h.pool.DepositValue(ctx, "lp", decimal.NewFromInt(100)))

	require.NoError(t, h.pool.AddLiquidity(ctx, "lp", decimal.NewFromInt(60)))

	reserves, err := h.pool.Reserves(ctx)
	require.NoError(t, err)
	assert.Equal(t, "60", reserves.ValueReserve.String())
	assert.True(t, reserves.TokenReserve.IsZero())

	bal, _ := h.pool.ValueBalanceOf(ctx, "lp")
	assert.Equal(t, "40", bal.String())
}

func TestAddLiquidityInsufficientValue(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, 0)
	require.NoError(t, h.pool.DepositValue(ctx, "lp", decimal.NewFromInt(10)))

	err := h.pool.AddLiquidity(ctx, "lp", decimal.NewFromInt(60))
	require.ErrorIs(t, err, domain.ErrInsufficientValue)

	reserves, _ := h.pool.Reserves(ctx)
	assert.True(t, reserves.ValueReserve.IsZero())
	bal, _ := h.pool.ValueBalanceOf(ctx, "lp")
	assert.Equal(t, "10", bal.String())
}

func TestBuyTokensAtFixedRate(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, 10000)
	require.NoError(t, h.pool.DepositValue(ctx, "alice", decimal.NewFromInt(10)))

	out, err := h.pool.BuyTokens(ctx, "alice", decimal.NewFromInt(7))
	require.NoError(t, err)
	assert.Equal(t, "700", out.String())

	tokenBal, _ := h.tokens.BalanceOf(ctx, "alice")
	assert.Equal(t, "700", tokenBal.String())
	valueBal, _ := h.pool.ValueBalanceOf(ctx, "alice")
	assert.Equal(t, "3", valueBal.String())

	reserves, _ := h.pool.Reserves(ctx)
	assert.Equal(t, "7", reserves.ValueReserve.String())
	assert.Equal(t, "9300", reserves.TokenReserve.String())
}

func TestBuyTokensInsufficientLiquidity(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, 500)
	require.NoError(t, h.pool.DepositValue(ctx, "alice", decimal.NewFromInt(10)))

	// 10 value units would need 1000 tokens; the reserve holds only 500
	_, err := h.pool.BuyTokens(ctx, "alice", decimal.NewFromInt(10))
	require.ErrorIs(t, err, domain.ErrInsufficientLiquidity)

	valueBal, _ := h.pool.ValueBalanceOf(ctx, "alice")
	assert.Equal(t, "10", valueBal.String())
	reserves, _ := h.pool.Reserves(ctx)
	assert.Equal(t, "500", reserves.TokenReserve.String())
	assert.True(t, reserves.ValueReserve.IsZero())
}

func TestBuyTokensInsufficientValue(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, 10000)

	_, err := h.pool.BuyTokens(ctx, "alice", decimal.NewFromInt(5))
	assert.ErrorIs(t, err, domain.ErrInsufficientValue)
}

func TestSellTokensRoundTrip(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, 10000)
	require.NoError(t, h.pool.DepositValue(ctx, "alice", decimal.NewFromInt(10)))

	bought, err := h.pool.BuyTokens(ctx, "alice", decimal.NewFromInt(10))
	require.NoError(t, err)
	require.Equal(t, "1000", bought.String())

	require.NoError(t, h.tokens.Approve(ctx, "alice", poolAccount, bought))
	back, err := h.pool.SellTokens(ctx, "alice", bought)
	require.NoError(t, err)

	// selling everything bought returns exactly the value spent
	assert.Equal(t, "10", back.String())
	valueBal, _ := h.pool.ValueBalanceOf(ctx, "alice")
	assert.Equal(t, "10", valueBal.String())
	tokenBal, _ := h.tokens.BalanceOf(ctx, "alice")
	assert.True(t, tokenBal.IsZero())

	reserves, _ := h.pool.Reserves(ctx)
	assert.True(t, reserves.ValueReserve.IsZero())
	assert.Equal(t, "10000", reserves.TokenReserve.String())
}

func TestSellTokensFloorsValueOut(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, 10000)
	require.NoError(t, h.pool.DepositValue(ctx, "lp", decimal.NewFromInt(100)))
	require.NoError(t, h.pool.AddLiquidity(ctx, "lp", decimal.NewFromInt(100)))
	require.NoError(t, h.tokens.Transfer(ctx, "deployer", "alice", decimal.NewFromInt(150)))
	require.NoError(t, h.tokens.Approve(ctx, "alice", poolAccount, decimal.NewFromInt(150)))

	// 150 tokens / rate 100 = 1.5, floored to 1 value unit
	out, err := h.pool.SellTokens(ctx, "alice", decimal.NewFromInt(150))
	require.NoError(t, err)
	assert.Equal(t, "1", out.String())
}

func TestSellTokensInsufficientLiquidityRollsBack(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, 10000)
	require.NoError(t, h.tokens.Transfer(ctx, "deployer", "alice", decimal.NewFromInt(500)))
	require.NoError(t, h.tokens.Approve(ctx, "alice", poolAccount, decimal.NewFromInt(500)))

	// empty value reserve cannot pay out 5 value units
	_, err := h.pool.SellTokens(ctx, "alice", decimal.NewFromInt(500))
	require.ErrorIs(t, err, domain.ErrInsufficientLiquidity)

	tokenBal, _ := h.tokens.BalanceOf(ctx, "alice")
	assert.Equal(t, "500", tokenBal.String())
	limit, _ := h.tokens.Allowance(ctx, "alice", poolAccount)
	assert.Equal(t, "500", limit.String())
}

func TestRateIsConstantAcrossReserveSizes(t *testing.T) {
	ctx := context.Background()
	for _, poolTokens := range []int64{1000, 50000} {
		h := newHarness(t, poolTokens)
		require.NoError(t, h.pool.DepositValue(ctx, "alice", decimal.NewFromInt(5)))

		out, err := h.pool.BuyTokens(ctx, "alice", decimal.NewFromInt(5))
		require.NoError(t, err)
		assert.Equal(t, "500", out.String())
	}
}
