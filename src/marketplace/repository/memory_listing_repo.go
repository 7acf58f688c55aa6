package repository

import (
	"context"
	"sync"

	"github.com/aurumx/goldmarket/src/marketplace/domain"
	"github.com/aurumx/goldmarket/src/storage"
)

var (
	_ domain.ListingRepository = (*MemoryListingRepo)(nil)
	_ storage.Snapshotter      = (*MemoryListingRepo)(nil)
)

// MemoryListingRepo keeps listings in a mutex-guarded map; use for local mode
// and tests.
type MemoryListingRepo struct {
	mu       sync.RWMutex
	listings map[uint64]domain.Listing
	nextID   uint64
}

func NewMemoryListingRepo() *MemoryListingRepo {
	return &MemoryListingRepo{listings: make(map[uint64]domain.Listing), nextID: 1}
}

func (r *MemoryListingRepo) Create(ctx context.Context, l *domain.Listing) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	stored := *l
	stored.ID = id
	r.listings[id] = stored
	return id, nil
}

func (r *MemoryListingRepo) Get(ctx context.Context, id uint64) (*domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.listings[id]
	if !ok {
		return nil, nil
	}
	copied := l
	return &copied, nil
}

func (r *MemoryListingRepo) MarkSold(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return nil
	}
	l.Sold = true
	r.listings[id] = l
	return nil
}

func (r *MemoryListingRepo) List(ctx context.Context) ([]domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Listing, 0, len(r.listings))
	for id := uint64(1); id < r.nextID; id++ {
		if l, ok := r.listings[id]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

// ---------- SNAPSHOT ----------

type listingSnapshot struct {
	listings map[uint64]domain.Listing
	nextID   uint64
}

func (r *MemoryListingRepo) Snapshot() interface{} {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap := listingSnapshot{listings: make(map[uint64]domain.Listing, len(r.listings)), nextID: r.nextID}
	for k, v := range r.listings {
		snap.listings[k] = v
	}
	return snap
}

func (r *MemoryListingRepo) Restore(s interface{}) {
	snap, ok := s.(listingSnapshot)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings = snap.listings
	r.nextID = snap.nextID
}
