package http

import (
	"github.com/aurumx/goldmarket/src/token/domain"
	"github.com/shopspring/decimal"
)

// BalanceResponse returns one account balance
// swagger:model BalanceResponse
type BalanceResponse struct {
	Account string          `json:"account" example:"alice"`
	Amount  decimal.Decimal `json:"amount" example:"100000"`
}

// SupplyResponse returns the issued supply
// swagger:model SupplyResponse
type SupplyResponse struct {
	Total decimal.Decimal `json:"total" example:"100000"`
}

// AllowanceResponse returns one authorization entry
// swagger:model AllowanceResponse
type AllowanceResponse struct {
	Owner   string          `json:"owner" example:"alice"`
	Spender string          `json:"spender" example:"marketplace"`
	Limit   decimal.Decimal `json:"limit" example:"200"`
}

// TransferRequestBody moves tokens between accounts
// swagger:model TransferRequestBody
type TransferRequestBody struct {
	From   string `json:"from" example:"alice"`
	To     string `json:"to" example:"bob"`
	Amount string `json:"amount" example:"200"` // decimal string
}

// ApproveRequestBody sets an authorization limit
// swagger:model ApproveRequestBody
type ApproveRequestBody struct {
	Owner   string `json:"owner" example:"alice"`
	Spender string `json:"spender" example:"marketplace"`
	Limit   string `json:"limit" example:"200"` // decimal string
}

// TransferFromRequestBody pulls tokens under an authorization
// swagger:model TransferFromRequestBody
type TransferFromRequestBody struct {
	Spender string `json:"spender" example:"marketplace"`
	Owner   string `json:"owner" example:"alice"`
	To      string `json:"to" example:"bob"`
	Amount  string `json:"amount" example:"200"` // decimal string
}

func AllowanceResponseFromDomain(a domain.Authorization) AllowanceResponse {
	return AllowanceResponse{Owner: a.Owner, Spender: a.Spender, Limit: a.Limit}
}
