package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Errors
var (
	ErrInvalidPrice          = errors.New("price must be greater than zero")
	ErrInvalidAssetReference = errors.New("asset registry reference does not resolve")
	ErrUnknownListing        = errors.New("unknown listing")
	ErrAlreadySold           = errors.New("item is already sold")
	ErrInsufficientFunds     = errors.New("not enough settlement tokens to cover the item price")
)

// Listing is an offer to sell one asset at a fixed settlement-token price.
// Sold transitions false -> true exactly once; listings are never deleted and
// there is no cancelled state.
type Listing struct {
	ID          uint64          `json:"id"`
	RegistryRef string          `json:"registry_ref"`
	AssetID     uint64          `json:"asset_id"`
	Seller      string          `json:"seller"`
	Price       decimal.Decimal `json:"price"`
	Sold        bool            `json:"sold"`
}
