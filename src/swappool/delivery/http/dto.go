package http

import (
	"github.com/aurumx/goldmarket/src/swappool/domain"
	"github.com/shopspring/decimal"
)

// ReservesResponse returns the pool reserves and rate
// swagger:model ReservesResponse
type ReservesResponse struct {
	ValueReserve decimal.Decimal `json:"value_reserve" example:"1000"`
	TokenReserve decimal.Decimal `json:"token_reserve" example:"100000"`
	Rate         decimal.Decimal `json:"rate" example:"100"`
}

// ValueBalanceResponse returns one account's value-unit balance
// swagger:model ValueBalanceResponse
type ValueBalanceResponse struct {
	Account string          `json:"account" example:"alice"`
	Amount  decimal.Decimal `json:"amount" example:"500"`
}

// DepositRequestBody credits value units to an account (administrative)
// swagger:model DepositRequestBody
type DepositRequestBody struct {
	Account string `json:"account" example:"alice"`
	Amount  string `json:"amount" example:"500"` // decimal string
}

// AddLiquidityRequestBody deposits value units into the reserve
// swagger:model AddLiquidityRequestBody
type AddLiquidityRequestBody struct {
	Caller string `json:"caller" example:"deployer"`
	Amount string `json:"amount" example:"1000"` // decimal string
}

// BuyTokensRequestBody converts value units into tokens
// swagger:model BuyTokensRequestBody
type BuyTokensRequestBody struct {
	Caller      string `json:"caller" example:"alice"`
	ValueAmount string `json:"value_amount" example:"2"` // decimal string
}

// BuyTokensResponse returns the tokens paid out
// swagger:model BuyTokensResponse
type BuyTokensResponse struct {
	TokenOut decimal.Decimal `json:"token_out" example:"200"`
}

// SellTokensRequestBody converts tokens back into value units
// swagger:model SellTokensRequestBody
type SellTokensRequestBody struct {
	Caller      string `json:"caller" example:"alice"`
	TokenAmount string `json:"token_amount" example:"200"` // decimal string
}

// SellTokensResponse returns the value units paid out
// swagger:model SellTokensResponse
type SellTokensResponse struct {
	ValueOut decimal.Decimal `json:"value_out" example:"2"`
}

func ReservesResponseFromDomain(p *domain.Pool) ReservesResponse {
	return ReservesResponse{
		ValueReserve: p.ValueReserve,
		TokenReserve: p.TokenReserve,
		Rate:         p.Rate,
	}
}
