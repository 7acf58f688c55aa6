package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// LedgerRepository persistence port
type LedgerRepository interface {
	GetBalance(ctx context.Context, account string) (decimal.Decimal, error)
	SetBalance(ctx context.Context, account string, amount decimal.Decimal) error
	AllBalances(ctx context.Context) ([]Balance, error)

	GetAllowance(ctx context.Context, owner, spender string) (decimal.Decimal, error)
	SetAllowance(ctx context.Context, owner, spender string, limit decimal.Decimal) error

	GetSupply(ctx context.Context) (decimal.Decimal, error)
	SetSupply(ctx context.Context, total decimal.Decimal) error
}

// TokenUseCase is the settlement-token surface other contexts depend on.
type TokenUseCase interface {
	BalanceOf(ctx context.Context, account string) (decimal.Decimal, error)
	TotalSupply(ctx context.Context) (decimal.Decimal, error)
	Allowance(ctx context.Context, owner, spender string) (decimal.Decimal, error)
	Transfer(ctx context.Context, from, to string, amount decimal.Decimal) error
	Approve(ctx context.Context, owner, spender string, limit decimal.Decimal) error
	TransferFrom(ctx context.Context, spender, owner, to string, amount decimal.Decimal) error
}
