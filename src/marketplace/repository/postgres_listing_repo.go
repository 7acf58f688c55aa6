package repository

import (
	"context"
	"errors"

	"github.com/aurumx/goldmarket/src/logger"
	"github.com/aurumx/goldmarket/src/marketplace/domain"
	"github.com/aurumx/goldmarket/src/storage"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var _ domain.ListingRepository = (*ListingRepo)(nil)

// ---------- MODELS ----------
// gorm.Model includes:
// ID        uint `gorm:"primarykey"`
// CreatedAt time.Time
// UpdatedAt time.Time
// DeletedAt gorm.DeletedAt `gorm:"index"`
type Listing struct {
	gorm.Model
	RegistryRef string          `gorm:"not null"`
	AssetID     uint64          `gorm:"not null;index:idx_listing_asset"`
	Seller      string          `gorm:"not null;index:idx_listing_seller"`
	Price       decimal.Decimal `gorm:"not null;type:numeric"`
	Sold        bool            `gorm:"not null;default:false"`
}

// ---------- REPO ----------

type ListingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewListingRepo(db *gorm.DB, log *logger.Logger) *ListingRepo {
	if err := db.AutoMigrate(&Listing{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}
	return &ListingRepo{db: db, log: log}
}

// ---------- LISTING CRUD ----------

func (r *ListingRepo) Create(ctx context.Context, l *domain.Listing) (uint64, error) {
	model := Listing{
		RegistryRef: l.RegistryRef,
		AssetID:     l.AssetID,
		Seller:      l.Seller,
		Price:       l.Price,
		Sold:        l.Sold,
	}
	if err := storage.DB(ctx, r.db).Create(&model).Error; err != nil {
		return 0, err
	}
	return uint64(model.ID), nil
}

func (r *ListingRepo) Get(ctx context.Context, id uint64) (*domain.Listing, error) {
	var l Listing
	if err := storage.DB(ctx, r.db).First(&l, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomainListing(&l), nil
}

func (r *ListingRepo) MarkSold(ctx context.Context, id uint64) error {
	return storage.DB(ctx, r.db).Model(&Listing{}).
		Where("id = ?", id).
		Update("sold", true).Error
}

func (r *ListingRepo) List(ctx context.Context) ([]domain.Listing, error) {
	var models []Listing
	if err := storage.DB(ctx, r.db).Order("id asc").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Listing, 0, len(models))
	for _, l := range models {
		out = append(out, *r.toDomainListing(&l))
	}
	return out, nil
}

// ---------- HELPERS ----------

func (r *ListingRepo) toDomainListing(l *Listing) *domain.Listing {
	return &domain.Listing{
		ID:          uint64(l.ID),
		RegistryRef: l.RegistryRef,
		AssetID:     l.AssetID,
		Seller:      l.Seller,
		Price:       l.Price,
		Sold:        l.Sold,
	}
}
