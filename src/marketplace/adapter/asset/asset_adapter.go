package asset

import (
	"context"

	assetdomain "github.com/aurumx/goldmarket/src/asset/domain"
	"github.com/aurumx/goldmarket/src/marketplace/domain"
)

var _ domain.AssetRegistry = (*RegistryPort)(nil)

// NewRegistryPort exposes the asset usecase to the marketplace as one of its
// resolvable registries.
func NewRegistryPort(registryService assetdomain.RegistryUseCase) domain.AssetRegistry {
	return &RegistryPort{registryService: registryService}
}

type RegistryPort struct {
	registryService assetdomain.RegistryUseCase
}

func (p *RegistryPort) OwnerOf(ctx context.Context, id uint64) (string, error) {
	return p.registryService.OwnerOf(ctx, id)
}

func (p *RegistryPort) Approved(ctx context.Context, id uint64) (string, error) {
	return p.registryService.Approved(ctx, id)
}

func (p *RegistryPort) TransferFrom(ctx context.Context, operator string, id uint64, from, to string) error {
	return p.registryService.TransferFrom(ctx, operator, id, from, to)
}
