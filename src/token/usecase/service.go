package usecase

import (
	"context"
	"fmt"

	"github.com/aurumx/goldmarket/src/logger"
	"github.com/aurumx/goldmarket/src/storage"
	"github.com/aurumx/goldmarket/src/token/domain"
	"github.com/shopspring/decimal"
)

var _ domain.TokenUseCase = (*Service)(nil)

// Service implements the settlement-token ledger: fungible balances with the
// approve/transferFrom pull pattern. Every mutation runs inside a TxManager
// transaction so a failure leaves no partial state.
type Service struct {
	ledger domain.LedgerRepository
	tx     storage.TxManager
	logger *logger.Logger
}

func NewService(ledger domain.LedgerRepository, tx storage.TxManager, logg *logger.Logger) *Service {
	return &Service{ledger: ledger, tx: tx, logger: logg}
}

// InitGenesis issues the initial supply to the deployer account. Idempotent:
// a second call on an already-initialized ledger is a no-op.
func (s *Service) InitGenesis(ctx context.Context, deployer string, supply decimal.Decimal) error {
	if !domain.ValidLimit(supply) {
		return domain.ErrInvalidAmount
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.ledger.GetSupply(ctx)
		if err != nil {
			return err
		}
		if existing.Sign() > 0 {
			s.logger.Debugf("genesis already issued, supply=%s", existing)
			return nil
		}
		if err := s.ledger.SetSupply(ctx, supply); err != nil {
			return err
		}
		if err := s.ledger.SetBalance(ctx, deployer, supply); err != nil {
			return err
		}
		s.logger.Infof("genesis: minted %s settlement tokens to %s", supply, deployer)
		return nil
	})
}

func (s *Service) BalanceOf(ctx context.Context, account string) (decimal.Decimal, error) {
	return s.ledger.GetBalance(ctx, account)
}

func (s *Service) TotalSupply(ctx context.Context) (decimal.Decimal, error) {
	return s.ledger.GetSupply(ctx)
}

func (s *Service) Allowance(ctx context.Context, owner, spender string) (decimal.Decimal, error) {
	return s.ledger.GetAllowance(ctx, owner, spender)
}

// AllBalances returns every balance row; used by the conservation auditor.
func (s *Service) AllBalances(ctx context.Context) ([]domain.Balance, error) {
	return s.ledger.AllBalances(ctx)
}

// Transfer moves amount from one account to another, debiting and crediting
// atomically.
func (s *Service) Transfer(ctx context.Context, from, to string, amount decimal.Decimal) error {
	if !domain.ValidAmount(amount) {
		return domain.ErrInvalidAmount
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.move(ctx, from, to, amount)
	})
}

// Approve overwrites the (owner, spender) authorization; it never accumulates.
// A zero limit revokes the authorization.
func (s *Service) Approve(ctx context.Context, owner, spender string, limit decimal.Decimal) error {
	if !domain.ValidLimit(limit) {
		return domain.ErrInvalidAmount
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.ledger.SetAllowance(ctx, owner, spender, limit)
	})
}

// TransferFrom pulls amount from owner to to, consuming spender's allowance.
func (s *Service) TransferFrom(ctx context.Context, spender, owner, to string, amount decimal.Decimal) error {
	if !domain.ValidAmount(amount) {
		return domain.ErrInvalidAmount
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		limit, err := s.ledger.GetAllowance(ctx, owner, spender)
		if err != nil {
			return err
		}
		if limit.LessThan(amount) {
			return fmt.Errorf("%w: spender=%s owner=%s limit=%s amount=%s",
				domain.ErrInsufficientAllowance, spender, owner, limit, amount)
		}
		if err := s.ledger.SetAllowance(ctx, owner, spender, limit.Sub(amount)); err != nil {
			return err
		}
		return s.move(ctx, owner, to, amount)
	})
}

// move performs the debit/credit pair. Callers must already hold a
// transaction.
func (s *Service) move(ctx context.Context, from, to string, amount decimal.Decimal) error {
	fromBal, err := s.ledger.GetBalance(ctx, from)
	if err != nil {
		return err
	}
	if fromBal.LessThan(amount) {
		return fmt.Errorf("%w: account=%s balance=%s amount=%s",
			domain.ErrInsufficientBalance, from, fromBal, amount)
	}
	if from == to {
		return nil
	}
	toBal, err := s.ledger.GetBalance(ctx, to)
	if err != nil {
		return err
	}
	if err := s.ledger.SetBalance(ctx, from, fromBal.Sub(amount)); err != nil {
		return err
	}
	return s.ledger.SetBalance(ctx, to, toBal.Add(amount))
}
