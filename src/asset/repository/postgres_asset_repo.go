package repository

import (
	"context"
	"errors"

	"github.com/aurumx/goldmarket/src/asset/domain"
	"github.com/aurumx/goldmarket/src/logger"
	"github.com/aurumx/goldmarket/src/storage"
	"gorm.io/gorm"
)

var _ domain.AssetRepository = (*AssetRepo)(nil)

// ---------- MODELS ----------
// gorm.Model includes:
// ID        uint `gorm:"primarykey"`
// CreatedAt time.Time
// UpdatedAt time.Time
// DeletedAt gorm.DeletedAt `gorm:"index"`
type Asset struct {
	gorm.Model
	Owner       string `gorm:"not null;index:idx_asset_owner"`
	MetadataRef string `gorm:"not null"`
	Approved    string `gorm:"not null;default:''"`
}

// ---------- REPO ----------

type AssetRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssetRepo(db *gorm.DB, log *logger.Logger) *AssetRepo {
	if err := db.AutoMigrate(&Asset{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}
	return &AssetRepo{db: db, log: log}
}

// ---------- ASSET CRUD ----------

func (r *AssetRepo) Create(ctx context.Context, owner, metadataRef string) (uint64, error) {
	model := Asset{Owner: owner, MetadataRef: metadataRef}
	if err := storage.DB(ctx, r.db).Create(&model).Error; err != nil {
		return 0, err
	}
	return uint64(model.ID), nil
}

func (r *AssetRepo) Get(ctx context.Context, id uint64) (*domain.Asset, error) {
	var a Asset
	if err := storage.DB(ctx, r.db).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomainAsset(&a), nil
}

func (r *AssetRepo) Update(ctx context.Context, a *domain.Asset) error {
	return storage.DB(ctx, r.db).Model(&Asset{}).
		Where("id = ?", a.ID).
		Updates(map[string]interface{}{
			"owner":    a.Owner,
			"approved": a.Approved,
		}).Error
}

// ---------- HELPERS ----------

func (r *AssetRepo) toDomainAsset(a *Asset) *domain.Asset {
	return &domain.Asset{
		ID:          uint64(a.ID),
		Owner:       a.Owner,
		MetadataRef: a.MetadataRef,
		Approved:    a.Approved,
	}
}
