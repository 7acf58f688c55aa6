package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// ListingRepository persistence port. Create allocates the next sequential
// listing id, starting at 1.
type ListingRepository interface {
	Create(ctx context.Context, l *Listing) (uint64, error)
	Get(ctx context.Context, id uint64) (*Listing, error)
	MarkSold(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]Listing, error)
}

// SettlementLedger is the slice of the token context the marketplace settles
// through.
type SettlementLedger interface {
	BalanceOf(ctx context.Context, account string) (decimal.Decimal, error)
	Allowance(ctx context.Context, owner, spender string) (decimal.Decimal, error)
	TransferFrom(ctx context.Context, spender, owner, to string, amount decimal.Decimal) error
}

// AssetRegistry is the slice of the asset context the marketplace moves
// ownership through.
type AssetRegistry interface {
	OwnerOf(ctx context.Context, id uint64) (string, error)
	Approved(ctx context.Context, id uint64) (string, error)
	TransferFrom(ctx context.Context, operator string, id uint64, from, to string) error
}
