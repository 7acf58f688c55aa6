package http

import (
	"github.com/aurumx/goldmarket/src/marketplace/domain"
	"github.com/shopspring/decimal"
)

// MakeItemRequestBody lists an asset for sale
// swagger:model MakeItemRequestBody
type MakeItemRequestBody struct {
	Seller      string `json:"seller" example:"alice"`
	RegistryRef string `json:"registry_ref" example:"main"`
	AssetID     uint64 `json:"asset_id" example:"1"`
	Price       string `json:"price" example:"200"` // decimal string
}

// MakeItemResponse returns the new listing id
// swagger:model MakeItemResponse
type MakeItemResponse struct {
	ListingID uint64 `json:"listing_id" example:"1"`
}

// PurchaseRequestBody buys a listing
// swagger:model PurchaseRequestBody
type PurchaseRequestBody struct {
	Buyer string `json:"buyer" example:"bob"`
}

// ListingDto describes one listing
// swagger:model ListingDto
type ListingDto struct {
	ID          uint64          `json:"id" example:"1"`
	RegistryRef string          `json:"registry_ref" example:"main"`
	AssetID     uint64          `json:"asset_id" example:"1"`
	Seller      string          `json:"seller" example:"alice"`
	Price       decimal.Decimal `json:"price" example:"200"`
	Sold        bool            `json:"sold" example:"false"`
}

// ListListingsResponse lists all listings
// swagger:model ListListingsResponse
type ListListingsResponse struct {
	Listings []ListingDto `json:"listings"`
}

// ConfigResponse exposes the marketplace construction parameters
// swagger:model MarketplaceConfigResponse
type ConfigResponse struct {
	Account    string `json:"account" example:"marketplace"`
	FeeAccount string `json:"fee_account" example:"deployer"`
	FeePercent int64  `json:"fee_percent" example:"5"`
}

func ListingDtoFromDomain(l *domain.Listing) ListingDto {
	return ListingDto{
		ID:          l.ID,
		RegistryRef: l.RegistryRef,
		AssetID:     l.AssetID,
		Seller:      l.Seller,
		Price:       l.Price,
		Sold:        l.Sold,
	}
}

func ListListingsResponseFromDomain(ls []domain.Listing) ListListingsResponse {
	dtos := make([]ListingDto, len(ls))
	for i := range ls {
		dtos[i] = ListingDtoFromDomain(&ls[i])
	}
	return ListListingsResponse{Listings: dtos}
}
