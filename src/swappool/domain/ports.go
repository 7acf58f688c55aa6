package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// PoolRepository persistence port: the value-unit side of the pool (the
// value reserve plus per-account value balances).
type PoolRepository interface {
	GetValueReserve(ctx context.Context) (decimal.Decimal, error)
	SetValueReserve(ctx context.Context, amount decimal.Decimal) error

	GetValueBalance(ctx context.Context, account string) (decimal.Decimal, error)
	SetValueBalance(ctx context.Context, account string, amount decimal.Decimal) error
}

// TokenLedger is the slice of the token context the pool settles through.
type TokenLedger interface {
	BalanceOf(ctx context.Context, account string) (decimal.Decimal, error)
	Transfer(ctx context.Context, from, to string, amount decimal.Decimal) error
	TransferFrom(ctx context.Context, spender, owner, to string, amount decimal.Decimal) error
}
