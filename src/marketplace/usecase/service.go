package usecase

import (
	"context"
	"fmt"

	assetdomain "github.com/aurumx/goldmarket/src/asset/domain"
	"github.com/aurumx/goldmarket/src/logger"
	"github.com/aurumx/goldmarket/src/marketplace/domain"
	"github.com/aurumx/goldmarket/src/storage"
	tokendomain "github.com/aurumx/goldmarket/src/token/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Service lists assets for sale priced in settlement tokens and executes
// atomic purchases, diverting a fee percentage to the fee account.
//
// Settlement is pull-based: the asset stays with the seller at listing time,
// and at purchase time the marketplace pulls the buyer's tokens and moves the
// asset in one transaction. Either every leg lands or none does.
type Service struct {
	listings   domain.ListingRepository
	registries map[string]domain.AssetRegistry
	ledger     domain.SettlementLedger
	tx         storage.TxManager
	account    string
	feeAccount string
	feePercent int64
	logger     *logger.Logger
}

func NewService(
	listings domain.ListingRepository,
	ledger domain.SettlementLedger,
	tx storage.TxManager,
	account, feeAccount string,
	feePercent int64,
	logg *logger.Logger,
) *Service {
	return &Service{
		listings:   listings,
		registries: make(map[string]domain.AssetRegistry),
		ledger:     ledger,
		tx:         tx,
		account:    account,
		feeAccount: feeAccount,
		feePercent: feePercent,
		logger:     logg,
	}
}

// RegisterRegistry makes an asset registry resolvable under ref. Wire all
// registries during startup.
func (s *Service) RegisterRegistry(ref string, reg domain.AssetRegistry) {
	s.registries[ref] = reg
}

// Account is the identity buyers and sellers authorize: buyers approve it on
// the token ledger, sellers approve it on the asset registry.
func (s *Service) Account() string { return s.account }

func (s *Service) FeeAccount() string { return s.feeAccount }

func (s *Service) FeePercent() int64 { return s.feePercent }

// MakeItem lists an asset for sale and returns the sequential listing id.
// The asset is not escrowed; seller authorization is checked at purchase
// time, not here.
func (s *Service) MakeItem(ctx context.Context, seller, registryRef string, assetID uint64, price decimal.Decimal) (uint64, error) {
	if price.Sign() <= 0 || !price.IsInteger() {
		return 0, fmt.Errorf("%w: price=%s", domain.ErrInvalidPrice, price)
	}
	reg, ok := s.registries[registryRef]
	if !ok {
		return 0, fmt.Errorf("%w: ref=%q", domain.ErrInvalidAssetReference, registryRef)
	}

	var id uint64
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		// listing a nonexistent asset is rejected up front
		if _, err := reg.OwnerOf(ctx, assetID); err != nil {
			return err
		}
		var err error
		id, err = s.listings.Create(ctx, &domain.Listing{
			RegistryRef: registryRef,
			AssetID:     assetID,
			Seller:      seller,
			Price:       price,
		})
		return err
	})
	if err != nil {
		return 0, err
	}
	s.logger.Infof("listed asset=%d registry=%s seller=%s price=%s listing=%d", assetID, registryRef, seller, price, id)
	return id, nil
}

// PurchaseItem settles a listing for buyer: pulls the price from the buyer,
// splits it into seller proceeds and fee, moves the asset, and marks the
// listing sold. All checks complete before any effect; any failure rolls the
// whole transaction back with zero balance or ownership drift.
func (s *Service) PurchaseItem(ctx context.Context, buyer string, listingID uint64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		l, err := s.listings.Get(ctx, listingID)
		if err != nil {
			return err
		}
		if l == nil {
			return fmt.Errorf("%w: id=%d", domain.ErrUnknownListing, listingID)
		}
		if l.Sold {
			return fmt.Errorf("%w: id=%d", domain.ErrAlreadySold, listingID)
		}
		reg, ok := s.registries[l.RegistryRef]
		if !ok {
			return fmt.Errorf("%w: ref=%q", domain.ErrInvalidAssetReference, l.RegistryRef)
		}

		// buyer side: allowance first, then balance
		limit, err := s.ledger.Allowance(ctx, buyer, s.account)
		if err != nil {
			return err
		}
		if limit.LessThan(l.Price) {
			return fmt.Errorf("%w: buyer=%s limit=%s price=%s",
				tokendomain.ErrInsufficientAllowance, buyer, limit, l.Price)
		}
		balance, err := s.ledger.BalanceOf(ctx, buyer)
		if err != nil {
			return err
		}
		if balance.LessThan(l.Price) {
			return fmt.Errorf("%w: buyer=%s balance=%s price=%s",
				domain.ErrInsufficientFunds, buyer, balance, l.Price)
		}

		// seller side: must still own the asset and have authorized us
		owner, err := reg.OwnerOf(ctx, l.AssetID)
		if err != nil {
			return err
		}
		if owner != l.Seller {
			return fmt.Errorf("%w: asset=%d owner=%s seller=%s",
				assetdomain.ErrTransferNotAuthorized, l.AssetID, owner, l.Seller)
		}
		approved, err := reg.Approved(ctx, l.AssetID)
		if err != nil {
			return err
		}
		if approved != s.account {
			return fmt.Errorf("%w: asset=%d approved=%q", assetdomain.ErrTransferNotAuthorized, l.AssetID, approved)
		}

		fee := l.Price.Mul(decimal.NewFromInt(s.feePercent)).Div(hundred).Floor()
		proceeds := l.Price.Sub(fee)

		// settle: buyer pays exactly price, split between seller and fee account
		if proceeds.Sign() > 0 {
			if err := s.ledger.TransferFrom(ctx, s.account, buyer, l.Seller, proceeds); err != nil {
				return err
			}
		}
		if fee.Sign() > 0 {
			if err := s.ledger.TransferFrom(ctx, s.account, buyer, s.feeAccount, fee); err != nil {
				return err
			}
		}
		if err := reg.TransferFrom(ctx, s.account, l.AssetID, l.Seller, buyer); err != nil {
			return err
		}
		return s.listings.MarkSold(ctx, listingID)
	})
	if err != nil {
		return err
	}
	s.logger.Infof("purchased listing=%d buyer=%s", listingID, buyer)
	return nil
}

// GetListing returns a listing by id.
func (s *Service) GetListing(ctx context.Context, id uint64) (*domain.Listing, error) {
	l, err := s.listings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("%w: id=%d", domain.ErrUnknownListing, id)
	}
	return l, nil
}

func (s *Service) ListListings(ctx context.Context) ([]domain.Listing, error) {
	return s.listings.List(ctx)
}
