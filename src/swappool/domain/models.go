package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Errors
var (
	ErrInsufficientLiquidity = errors.New("insufficient pool liquidity")
	ErrInsufficientValue     = errors.New("insufficient value balance")
	ErrInvalidAmount         = errors.New("amount must be a positive integer")
)

// Pool is the fixed-rate conversion facility between the native value unit
// and the settlement token. Rate never changes and there is no slippage; a
// conversion either settles at the fixed rate or fails on an exhausted
// reserve. The token reserve is the pool account's settlement-token balance.
type Pool struct {
	ValueReserve decimal.Decimal `json:"value_reserve"`
	TokenReserve decimal.Decimal `json:"token_reserve"`
	Rate         decimal.Decimal `json:"rate"`
}

// ValueBalance is one account's holding of the native value unit.
type ValueBalance struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}
