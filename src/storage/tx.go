package storage

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

// TxManager is the transaction boundary for every mutating engine operation.
// WithinTx runs fn atomically: either every repository write inside fn is
// committed, or none is. Nested calls join the enclosing transaction, so a
// usecase can compose other usecases without opening a second transaction.
//
// Mutating operations are additionally serialized through the manager: the
// engine is a single-writer state machine and no two transactions ever
// interleave.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type gormTxKey struct{}

var _ TxManager = (*GormManager)(nil)

// GormManager implements TxManager on a gorm database connection. The
// transaction handle travels in the context; repositories pick it up via DB.
type GormManager struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewGormManager(db *gorm.DB) *GormManager {
	return &GormManager{db: db}
}

func (m *GormManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(gormTxKey{}).(*gorm.DB); ok {
		// already inside a transaction, join it
		return fn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, gormTxKey{}, tx))
	})
}

// DB resolves the connection a repository should use: the in-flight
// transaction if the context carries one, the fallback connection otherwise.
func DB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(gormTxKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
