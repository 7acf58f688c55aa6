package storage

import (
	"context"
	"sync"
)

// Snapshotter is implemented by in-memory repositories so the MemoryManager
// can roll their state back when a transaction fails.
type Snapshotter interface {
	Snapshot() interface{}
	Restore(interface{})
}

type memTxKey struct{}

var _ TxManager = (*MemoryManager)(nil)

// MemoryManager implements TxManager over in-memory repositories; use for
// local mode and tests. A global mutex serializes transactions and every
// registered store is snapshotted up front, so a failing transaction restores
// the exact pre-transaction state.
type MemoryManager struct {
	mu     sync.Mutex
	stores []Snapshotter
}

func NewMemoryManager(stores ...Snapshotter) *MemoryManager {
	return &MemoryManager{stores: stores}
}

// Register adds a store to the rollback set. Not safe to call concurrently
// with WithinTx; wire all stores during startup.
func (m *MemoryManager) Register(s Snapshotter) {
	m.stores = append(m.stores, s)
}

func (m *MemoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		// already inside a transaction, join it
		return fn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	snaps := make([]interface{}, len(m.stores))
	for i, s := range m.stores {
		snaps[i] = s.Snapshot()
	}

	if err := fn(context.WithValue(ctx, memTxKey{}, struct{}{})); err != nil {
		for i, s := range m.stores {
			s.Restore(snaps[i])
		}
		return err
	}
	return nil
}
