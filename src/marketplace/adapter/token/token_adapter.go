package token

import (
	"context"

	"github.com/aurumx/goldmarket/src/marketplace/domain"
	tokendomain "github.com/aurumx/goldmarket/src/token/domain"
	"github.com/shopspring/decimal"
)

var _ domain.SettlementLedger = (*LedgerPort)(nil)

// NewLedgerPort exposes the token usecase to the marketplace as its
// settlement ledger.
func NewLedgerPort(tokenService tokendomain.TokenUseCase) domain.SettlementLedger {
	return &LedgerPort{tokenService: tokenService}
}

type LedgerPort struct {
	tokenService tokendomain.TokenUseCase
}

func (p *LedgerPort) BalanceOf(ctx context.Context, account string) (decimal.Decimal, error) {
	return p.tokenService.BalanceOf(ctx, account)
}

func (p *LedgerPort) Allowance(ctx context.Context, owner, spender string) (decimal.Decimal, error) {
	return p.tokenService.Allowance(ctx, owner, spender)
}

func (p *LedgerPort) TransferFrom(ctx context.Context, spender, owner, to string, amount decimal.Decimal) error {
	return p.tokenService.TransferFrom(ctx, spender, owner, to, amount)
}
