package repository

import (
	"context"
	"sync"

	"github.com/aurumx/goldmarket/src/storage"
	"github.com/aurumx/goldmarket/src/token/domain"
	"github.com/shopspring/decimal"
)

var (
	_ domain.LedgerRepository = (*MemoryLedgerRepo)(nil)
	_ storage.Snapshotter     = (*MemoryLedgerRepo)(nil)
)

type allowanceKey struct {
	owner   string
	spender string
}

// MemoryLedgerRepo keeps the token ledger in mutex-guarded maps; use for
// local mode and tests.
type MemoryLedgerRepo struct {
	mu         sync.RWMutex
	balances   map[string]decimal.Decimal
	allowances map[allowanceKey]decimal.Decimal
	supply     decimal.Decimal
}

func NewMemoryLedgerRepo() *MemoryLedgerRepo {
	return &MemoryLedgerRepo{
		balances:   make(map[string]decimal.Decimal),
		allowances: make(map[allowanceKey]decimal.Decimal),
	}
}

func (r *MemoryLedgerRepo) GetBalance(ctx context.Context, account string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.balances[account]
	if !ok {
		return decimal.Zero, nil
	}
	return b, nil
}

func (r *MemoryLedgerRepo) SetBalance(ctx context.Context, account string, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances[account] = amount
	return nil
}

func (r *MemoryLedgerRepo) AllBalances(ctx context.Context) ([]domain.Balance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Balance, 0, len(r.balances))
	for account, amount := range r.balances {
		out = append(out, domain.Balance{Account: account, Amount: amount})
	}
	return out, nil
}

func (r *MemoryLedgerRepo) GetAllowance(ctx context.Context, owner, spender string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.allowances[allowanceKey{owner, spender}]
	if !ok {
		return decimal.Zero, nil
	}
	return a, nil
}

func (r *MemoryLedgerRepo) SetAllowance(ctx context.Context, owner, spender string, limit decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.allowances[allowanceKey{owner, spender}] = limit
	return nil
}

func (r *MemoryLedgerRepo) GetSupply(ctx context.Context) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.supply, nil
}

func (r *MemoryLedgerRepo) SetSupply(ctx context.Context, total decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.supply = total
	return nil
}

// ---------- SNAPSHOT ----------

type ledgerSnapshot struct {
	balances   map[string]decimal.Decimal
	allowances map[allowanceKey]decimal.Decimal
	supply     decimal.Decimal
}

func (r *MemoryLedgerRepo) Snapshot() interface{} {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap := ledgerSnapshot{
		balances:   make(map[string]decimal.Decimal, len(r.balances)),
		allowances: make(map[allowanceKey]decimal.Decimal, len(r.allowances)),
		supply:     r.supply,
	}
	for k, v := range r.balances {
		snap.balances[k] = v
	}
	for k, v := range r.allowances {
		snap.allowances[k] = v
	}
	return snap
}

func (r *MemoryLedgerRepo) Restore(s interface{}) {
	snap, ok := s.(ledgerSnapshot)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances = snap.balances
	r.allowances = snap.allowances
	r.supply = snap.supply
}
