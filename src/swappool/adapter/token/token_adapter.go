package token

import (
	"context"

	"github.com/aurumx/goldmarket/src/swappool/domain"
	tokendomain "github.com/aurumx/goldmarket/src/token/domain"
	"github.com/shopspring/decimal"
)

var _ domain.TokenLedger = (*LedgerPort)(nil)

// NewLedgerPort exposes the token usecase to the pool as its token ledger.
func NewLedgerPort(tokenService tokendomain.TokenUseCase) domain.TokenLedger {
	return &LedgerPort{tokenService: tokenService}
}

type LedgerPort struct {
	tokenService tokendomain.TokenUseCase
}

func (p *LedgerPort) BalanceOf(ctx context.Context, account string) (decimal.Decimal, error) {
	return p.tokenService.BalanceOf(ctx, account)
}

func (p *LedgerPort) Transfer(ctx context.Context, from, to string, amount decimal.Decimal) error {
	return p.tokenService.Transfer(ctx, from, to, amount)
}

func (p *LedgerPort) TransferFrom(ctx context.Context, spender, owner, to string, amount decimal.Decimal) error {
	return p.tokenService.TransferFrom(ctx, spender, owner, to, amount)
}
