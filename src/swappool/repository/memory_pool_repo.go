package repository

import (
	"context"
	"sync"

	"github.com/aurumx/goldmarket/src/storage"
	"github.com/aurumx/goldmarket/src/swappool/domain"
	"github.com/shopspring/decimal"
)

var (
	_ domain.PoolRepository = (*MemoryPoolRepo)(nil)
	_ storage.Snapshotter   = (*MemoryPoolRepo)(nil)
)

// MemoryPoolRepo keeps pool state in mutex-guarded maps; use for local mode
// and tests.
type MemoryPoolRepo struct {
	mu           sync.RWMutex
	valueReserve decimal.Decimal
	balances     map[string]decimal.Decimal
}

func NewMemoryPoolRepo() *MemoryPoolRepo {
	return &MemoryPoolRepo{balances: make(map[string]decimal.Decimal)}
}

func (r *MemoryPoolRepo) GetValueReserve(ctx context.Context) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.valueReserve, nil
}

func (r *MemoryPoolRepo) SetValueReserve(ctx context.Context, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.valueReserve = amount
	return nil
}

func (r *MemoryPoolRepo) GetValueBalance(ctx context.Context, account string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.balances[account]
	if !ok {
		return decimal.Zero, nil
	}
	return b, nil
}

func (r *MemoryPoolRepo) SetValueBalance(ctx context.Context, account string, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances[account] = amount
	return nil
}

// ---------- SNAPSHOT ----------

type poolSnapshot struct {
	valueReserve decimal.Decimal
	balances     map[string]decimal.Decimal
}

func (r *MemoryPoolRepo) Snapshot() interface{} {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap := poolSnapshot{
		valueReserve: r.valueReserve,
		balances:     make(map[string]decimal.Decimal, len(r.balances)),
	}
	for k, v := range r.balances {
		snap.balances[k] = v
	}
	return snap
}

func (r *MemoryPoolRepo) Restore(s interface{}) {
	snap, ok := s.(poolSnapshot)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.valueReserve = snap.valueReserve
	r.balances = snap.balances
}
