package domain

import "context"

// AssetRepository persistence port. Create allocates the next sequential id,
// starting at 1.
type AssetRepository interface {
	Create(ctx context.Context, owner, metadataRef string) (uint64, error)
	Get(ctx context.Context, id uint64) (*Asset, error)
	Update(ctx context.Context, a *Asset) error
}

// RegistryUseCase is the asset-registry surface other contexts depend on.
type RegistryUseCase interface {
	Mint(ctx context.Context, owner, metadataRef string) (uint64, error)
	OwnerOf(ctx context.Context, id uint64) (string, error)
	Metadata(ctx context.Context, id uint64) (string, error)
	Approve(ctx context.Context, caller string, id uint64, spender string) error
	Approved(ctx context.Context, id uint64) (string, error)
	Transfer(ctx context.Context, id uint64, from, to string) error
	TransferFrom(ctx context.Context, operator string, id uint64, from, to string) error
}
