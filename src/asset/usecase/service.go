package usecase

import (
	"context"
	"fmt"

	"github.com/aurumx/goldmarket/src/asset/domain"
	"github.com/aurumx/goldmarket/src/logger"
	"github.com/aurumx/goldmarket/src/storage"
)

var _ domain.RegistryUseCase = (*Service)(nil)

// Service owns unique-asset identity and ownership transfer.
type Service struct {
	assets domain.AssetRepository
	tx     storage.TxManager
	logger *logger.Logger
}

func NewService(assets domain.AssetRepository, tx storage.TxManager, logg *logger.Logger) *Service {
	return &Service{assets: assets, tx: tx, logger: logg}
}

// Mint records a new asset under owner and returns its sequential id.
func (s *Service) Mint(ctx context.Context, owner, metadataRef string) (uint64, error) {
	var id uint64
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.assets.Create(ctx, owner, metadataRef)
		return err
	})
	if err != nil {
		return 0, err
	}
	s.logger.Debugf("minted asset id=%d owner=%s", id, owner)
	return id, nil
}

// Get returns the full asset record; used by the read API.
func (s *Service) Get(ctx context.Context, id uint64) (*domain.Asset, error) {
	return s.get(ctx, id)
}

func (s *Service) OwnerOf(ctx context.Context, id uint64) (string, error) {
	a, err := s.get(ctx, id)
	if err != nil {
		return "", err
	}
	return a.Owner, nil
}

func (s *Service) Metadata(ctx context.Context, id uint64) (string, error) {
	a, err := s.get(ctx, id)
	if err != nil {
		return "", err
	}
	return a.MetadataRef, nil
}

// Approve lets spender move the asset on the owner's behalf. Last-write-wins:
// one approved party per asset; an empty spender revokes.
func (s *Service) Approve(ctx context.Context, caller string, id uint64, spender string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		a, err := s.get(ctx, id)
		if err != nil {
			return err
		}
		if a.Owner != caller {
			return fmt.Errorf("%w: asset=%d caller=%s owner=%s", domain.ErrNotOwner, id, caller, a.Owner)
		}
		a.Approved = spender
		return s.assets.Update(ctx, a)
	})
}

func (s *Service) Approved(ctx context.Context, id uint64) (string, error) {
	a, err := s.get(ctx, id)
	if err != nil {
		return "", err
	}
	return a.Approved, nil
}

// Transfer reassigns ownership. from must be the current owner.
func (s *Service) Transfer(ctx context.Context, id uint64, from, to string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.reassign(ctx, id, from, to)
	})
}

// TransferFrom is Transfer on behalf of the owner: operator must be the owner
// or the approved party for the asset.
func (s *Service) TransferFrom(ctx context.Context, operator string, id uint64, from, to string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		a, err := s.get(ctx, id)
		if err != nil {
			return err
		}
		if operator != a.Owner && operator != a.Approved {
			return fmt.Errorf("%w: asset=%d operator=%s", domain.ErrTransferNotAuthorized, id, operator)
		}
		return s.reassign(ctx, id, from, to)
	})
}

func (s *Service) reassign(ctx context.Context, id uint64, from, to string) error {
	a, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if a.Owner != from {
		return fmt.Errorf("%w: asset=%d from=%s owner=%s", domain.ErrNotOwner, id, from, a.Owner)
	}
	a.Owner = to
	a.Approved = ""
	return s.assets.Update(ctx, a)
}

func (s *Service) get(ctx context.Context, id uint64) (*domain.Asset, error) {
	a, err := s.assets.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("%w: id=%d", domain.ErrUnknownAsset, id)
	}
	return a, nil
}
