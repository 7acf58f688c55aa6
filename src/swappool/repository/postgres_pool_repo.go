package repository

import (
	"context"
	"errors"

	"github.com/aurumx/goldmarket/src/logger"
	"github.com/aurumx/goldmarket/src/storage"
	"github.com/aurumx/goldmarket/src/swappool/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ domain.PoolRepository = (*PoolRepo)(nil)

// ---------- MODELS ----------

// PoolState is a single-row table holding the value reserve.
type PoolState struct {
	ID           uint            `gorm:"primaryKey"`
	ValueReserve decimal.Decimal `gorm:"not null;type:numeric"`
}

// gorm.Model includes:
// ID        uint `gorm:"primarykey"`
// CreatedAt time.Time
// UpdatedAt time.Time
// DeletedAt gorm.DeletedAt `gorm:"index"`
type ValueBalance struct {
	gorm.Model
	Account string          `gorm:"not null;uniqueIndex:uidx_value_account"`
	Amount  decimal.Decimal `gorm:"not null;type:numeric"`
}

// ---------- REPO ----------

type PoolRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPoolRepo(db *gorm.DB, log *logger.Logger) *PoolRepo {
	if err := db.AutoMigrate(&PoolState{}, &ValueBalance{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}
	return &PoolRepo{db: db, log: log}
}

// ---------- RESERVE ----------

func (r *PoolRepo) GetValueReserve(ctx context.Context) (decimal.Decimal, error) {
	var p PoolState
	if err := storage.DB(ctx, r.db).First(&p, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return p.ValueReserve, nil
}

func (r *PoolRepo) SetValueReserve(ctx context.Context, amount decimal.Decimal) error {
	return storage.DB(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value_reserve"}),
		}).
		Create(&PoolState{ID: 1, ValueReserve: amount}).Error
}

// ---------- VALUE BALANCES ----------

func (r *PoolRepo) GetValueBalance(ctx context.Context, account string) (decimal.Decimal, error) {
	var b ValueBalance
	if err := storage.DB(ctx, r.db).Where("account = ?", account).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return b.Amount, nil
}

func (r *PoolRepo) SetValueBalance(ctx context.Context, account string, amount decimal.Decimal) error {
	return storage.DB(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
		}).
		Create(&ValueBalance{Account: account, Amount: amount}).Error
}
