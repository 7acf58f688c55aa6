package domain

import "errors"

// Errors
var (
	ErrUnknownAsset          = errors.New("unknown asset")
	ErrNotOwner              = errors.New("caller is not the asset owner")
	ErrTransferNotAuthorized = errors.New("transfer not authorized")
)

// Asset is a unique, non-fungible entry in the registry. Ownership is the
// only mutable identity fact; assets are never destroyed. Approved names at
// most one party allowed to move the asset on the owner's behalf; it is
// cleared on every transfer.
type Asset struct {
	ID          uint64 `json:"id"`
	Owner       string `json:"owner"`
	MetadataRef string `json:"metadata_ref"`
	Approved    string `json:"approved,omitempty"`
}
