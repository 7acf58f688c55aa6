package http

import "github.com/aurumx/goldmarket/src/asset/domain"

// MintRequestBody mints a new asset
// swagger:model MintRequestBody
type MintRequestBody struct {
	Owner       string `json:"owner" example:"alice"`
	MetadataRef string `json:"metadata_ref" example:"https://ipfs.io/ipfs/Qm..."`
}

// MintResponse returns the new asset id
// swagger:model MintResponse
type MintResponse struct {
	ID uint64 `json:"id" example:"1"`
}

// AssetDto describes one registered asset
// swagger:model AssetDto
type AssetDto struct {
	ID          uint64 `json:"id" example:"1"`
	Owner       string `json:"owner" example:"alice"`
	MetadataRef string `json:"metadata_ref" example:"https://ipfs.io/ipfs/Qm..."`
	Approved    string `json:"approved,omitempty" example:"marketplace"`
}

// ApproveRequestBody authorizes a spender for one asset
// swagger:model AssetApproveRequestBody
type ApproveRequestBody struct {
	Caller  string `json:"caller" example:"alice"`
	Spender string `json:"spender" example:"marketplace"`
}

// TransferRequestBody reassigns ownership
// swagger:model AssetTransferRequestBody
type TransferRequestBody struct {
	Operator string `json:"operator,omitempty" example:"marketplace"` // empty: from acts for itself
	From     string `json:"from" example:"alice"`
	To       string `json:"to" example:"bob"`
}

func AssetDtoFromDomain(a *domain.Asset) AssetDto {
	return AssetDto{
		ID:          a.ID,
		Owner:       a.Owner,
		MetadataRef: a.MetadataRef,
		Approved:    a.Approved,
	}
}
