package usecase

import (
	"context"
	"fmt"

	"github.com/aurumx/goldmarket/src/logger"
	"github.com/aurumx/goldmarket/src/storage"
	"github.com/aurumx/goldmarket/src/swappool/domain"
	"github.com/shopspring/decimal"
)

// Service converts between the native value unit and the settlement token at
// a fixed rate (tokens per value unit), backed by reserves. Liquidity
// provisioning is one-sided: AddLiquidity tops up the value reserve only, and
// the token reserve is topped up by plain token transfers to the pool
// account.
type Service struct {
	pool    domain.PoolRepository
	ledger  domain.TokenLedger
	tx      storage.TxManager
	account string
	rate    decimal.Decimal
	logger  *logger.Logger
}

func NewService(pool domain.PoolRepository, ledger domain.TokenLedger, tx storage.TxManager, account string, rate decimal.Decimal, logg *logger.Logger) *Service {
	return &Service{
		pool:    pool,
		ledger:  ledger,
		tx:      tx,
		account: account,
		rate:    rate,
		logger:  logg,
	}
}

// Account is the identity holding the pool's token reserve; sellers approve
// it on the token ledger before SellTokens.
func (s *Service) Account() string { return s.account }

func (s *Service) Rate() decimal.Decimal { return s.rate }

// DepositValue credits value units to an account. Administrative operation:
// it stands in for the substrate funding accounts with the native unit.
func (s *Service) DepositValue(ctx context.Context, account string, amount decimal.Decimal) error {
	if !validAmount(amount) {
		return domain.ErrInvalidAmount
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		bal, err := s.pool.GetValueBalance(ctx, account)
		if err != nil {
			return err
		}
		return s.pool.SetValueBalance(ctx, account, bal.Add(amount))
	})
}

func (s *Service) ValueBalanceOf(ctx context.Context, account string) (decimal.Decimal, error) {
	return s.pool.GetValueBalance(ctx, account)
}

// Reserves returns the pool's current value and token reserves.
func (s *Service) Reserves(ctx context.Context) (*domain.Pool, error) {
	valueReserve, err := s.pool.GetValueReserve(ctx)
	if err != nil {
		return nil, err
	}
	tokenReserve, err := s.ledger.BalanceOf(ctx, s.account)
	if err != nil {
		return nil, err
	}
	return &domain.Pool{ValueReserve: valueReserve, TokenReserve: tokenReserve, Rate: s.rate}, nil
}

// AddLiquidity deposits caller value units into the value reserve. One-sided:
// no matching token deposit is required.
func (s *Service) AddLiquidity(ctx context.Context, caller string, valueAmount decimal.Decimal) error {
	if !validAmount(valueAmount) {
		return domain.ErrInvalidAmount
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.debitValue(ctx, caller, valueAmount); err != nil {
			return err
		}
		reserve, err := s.pool.GetValueReserve(ctx)
		if err != nil {
			return err
		}
		return s.pool.SetValueReserve(ctx, reserve.Add(valueAmount))
	})
}

// BuyTokens converts valueAmount value units into tokens at the fixed rate.
// Returns the token amount paid out.
func (s *Service) BuyTokens(ctx context.Context, caller string, valueAmount decimal.Decimal) (decimal.Decimal, error) {
	if !validAmount(valueAmount) {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	tokenOut := valueAmount.Mul(s.rate)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		tokenReserve, err := s.ledger.BalanceOf(ctx, s.account)
		if err != nil {
			return err
		}
		if tokenReserve.LessThan(tokenOut) {
			return fmt.Errorf("%w: token reserve=%s needed=%s",
				domain.ErrInsufficientLiquidity, tokenReserve, tokenOut)
		}
		if err := s.debitValue(ctx, caller, valueAmount); err != nil {
			return err
		}
		reserve, err := s.pool.GetValueReserve(ctx)
		if err != nil {
			return err
		}
		if err := s.pool.SetValueReserve(ctx, reserve.Add(valueAmount)); err != nil {
			return err
		}
		return s.ledger.Transfer(ctx, s.account, caller, tokenOut)
	})
	if err != nil {
		return decimal.Zero, err
	}
	s.logger.Infof("buy: %s value -> %s tokens for %s", valueAmount, tokenOut, caller)
	return tokenOut, nil
}

// SellTokens converts tokenAmount tokens back into value units at the fixed
// rate. The caller must have pre-authorized the pool for tokenAmount.
// Returns the value amount paid out (integer division floors).
func (s *Service) SellTokens(ctx context.Context, caller string, tokenAmount decimal.Decimal) (decimal.Decimal, error) {
	if !validAmount(tokenAmount) {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	valueOut := tokenAmount.Div(s.rate).Floor()
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		reserve, err := s.pool.GetValueReserve(ctx)
		if err != nil {
			return err
		}
		if reserve.LessThan(valueOut) {
			return fmt.Errorf("%w: value reserve=%s needed=%s",
				domain.ErrInsufficientLiquidity, reserve, valueOut)
		}
		if err := s.ledger.TransferFrom(ctx, s.account, caller, s.account, tokenAmount); err != nil {
			return err
		}
		if err := s.pool.SetValueReserve(ctx, reserve.Sub(valueOut)); err != nil {
			return err
		}
		bal, err := s.pool.GetValueBalance(ctx, caller)
		if err != nil {
			return err
		}
		return s.pool.SetValueBalance(ctx, caller, bal.Add(valueOut))
	})
	if err != nil {
		return decimal.Zero, err
	}
	s.logger.Infof("sell: %s tokens -> %s value for %s", tokenAmount, valueOut, caller)
	return valueOut, nil
}

func (s *Service) debitValue(ctx context.Context, account string, amount decimal.Decimal) error {
	bal, err := s.pool.GetValueBalance(ctx, account)
	if err != nil {
		return err
	}
	if bal.LessThan(amount) {
		return fmt.Errorf("%w: account=%s balance=%s amount=%s",
			domain.ErrInsufficientValue, account, bal, amount)
	}
	return s.pool.SetValueBalance(ctx, account, bal.Sub(amount))
}

func validAmount(d decimal.Decimal) bool {
	return d.Sign() > 0 && d.IsInteger()
}
