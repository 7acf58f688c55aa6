package repository

import (
	"context"
	"sync"

	"github.com/aurumx/goldmarket/src/asset/domain"
	"github.com/aurumx/goldmarket/src/storage"
)

var (
	_ domain.AssetRepository = (*MemoryAssetRepo)(nil)
	_ storage.Snapshotter    = (*MemoryAssetRepo)(nil)
)

// MemoryAssetRepo keeps the registry in a mutex-guarded map; use for local
// mode and tests.
type MemoryAssetRepo struct {
	mu     sync.RWMutex
	assets map[uint64]domain.Asset
	nextID uint64
}

func NewMemoryAssetRepo() *MemoryAssetRepo {
	return &MemoryAssetRepo{assets: make(map[uint64]domain.Asset), nextID: 1}
}

func (r *MemoryAssetRepo) Create(ctx context.Context, owner, metadataRef string) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.assets[id] = domain.Asset{ID: id, Owner: owner, MetadataRef: metadataRef}
	return id, nil
}

func (r *MemoryAssetRepo) Get(ctx context.Context, id uint64) (*domain.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.assets[id]
	if !ok {
		return nil, nil
	}
	copied := a
	return &copied, nil
}

func (r *MemoryAssetRepo) Update(ctx context.Context, a *domain.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assets[a.ID] = *a
	return nil
}

// ---------- SNAPSHOT ----------

type assetSnapshot struct {
	assets map[uint64]domain.Asset
	nextID uint64
}

func (r *MemoryAssetRepo) Snapshot() interface{} {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap := assetSnapshot{assets: make(map[uint64]domain.Asset, len(r.assets)), nextID: r.nextID}
	for k, v := range r.assets {
		snap.assets[k] = v
	}
	return snap
}

func (r *MemoryAssetRepo) Restore(s interface{}) {
	snap, ok := s.(assetSnapshot)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assets = snap.assets
	r.nextID = snap.nextID
}
