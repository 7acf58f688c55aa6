package repository

import (
	"context"
	"errors"

	"github.com/aurumx/goldmarket/src/logger"
	"github.com/aurumx/goldmarket/src/storage"
	"github.com/aurumx/goldmarket/src/token/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ domain.LedgerRepository = (*LedgerRepo)(nil)

// ---------- MODELS ----------
// gorm.Model includes:
// ID        uint `gorm:"primarykey"`
// CreatedAt time.Time
// UpdatedAt time.Time
// DeletedAt gorm.DeletedAt `gorm:"index"`
type Balance struct {
	gorm.Model
	Account string          `gorm:"not null;uniqueIndex:uidx_balance_account"`
	Amount  decimal.Decimal `gorm:"not null;type:numeric"`
}

type Allowance struct {
	gorm.Model
	Owner   string          `gorm:"not null;uniqueIndex:uidx_allowance_pair"`
	Spender string          `gorm:"not null;uniqueIndex:uidx_allowance_pair"`
	Limit   decimal.Decimal `gorm:"not null;type:numeric;column:spend_limit"`
}

// Supply is a single-row table holding the issued token supply.
type Supply struct {
	ID    uint            `gorm:"primaryKey"`
	Total decimal.Decimal `gorm:"not null;type:numeric"`
}

// ---------- REPO ----------

type LedgerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLedgerRepo(db *gorm.DB, log *logger.Logger) *LedgerRepo {
	if err := db.AutoMigrate(&Balance{}, &Allowance{}, &Supply{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}
	return &LedgerRepo{db: db, log: log}
}

// ---------- BALANCES ----------

func (r *LedgerRepo) GetBalance(ctx context.Context, account string) (decimal.Decimal, error) {
	var b Balance
	if err := storage.DB(ctx, r.db).Where("account = ?", account).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return b.Amount, nil
}

func (r *LedgerRepo) SetBalance(ctx context.Context, account string, amount decimal.Decimal) error {
	return storage.DB(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
		}).
		Create(&Balance{Account: account, Amount: amount}).Error
}

func (r *LedgerRepo) AllBalances(ctx context.Context) ([]domain.Balance, error) {
	var models []Balance
	if err := storage.DB(ctx, r.db).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Balance, 0, len(models))
	for _, m := range models {
		out = append(out, domain.Balance{Account: m.Account, Amount: m.Amount})
	}
	return out, nil
}

// ---------- ALLOWANCES ----------

func (r *LedgerRepo) GetAllowance(ctx context.Context, owner, spender string) (decimal.Decimal, error) {
	var a Allowance
	if err := storage.DB(ctx, r.db).
		Where("owner = ? AND spender = ?", owner, spender).
		First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return a.Limit, nil
}

func (r *LedgerRepo) SetAllowance(ctx context.Context, owner, spender string, limit decimal.Decimal) error {
	return storage.DB(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner"}, {Name: "spender"}},
			DoUpdates: clause.AssignmentColumns([]string{"spend_limit", "updated_at"}),
		}).
		Create(&Allowance{Owner: owner, Spender: spender, Limit: limit}).Error
}

// ---------- SUPPLY ----------

func (r *LedgerRepo) GetSupply(ctx context.Context) (decimal.Decimal, error) {
	var s Supply
	if err := storage.DB(ctx, r.db).First(&s, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return s.Total, nil
}

func (r *LedgerRepo) SetSupply(ctx context.Context, total decimal.Decimal) error {
	return storage.DB(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"total"}),
		}).
		Create(&Supply{ID: 1, Total: total}).Error
}
