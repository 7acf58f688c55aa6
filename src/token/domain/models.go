package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Errors
var (
	ErrInsufficientBalance   = errors.New("insufficient token balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrInvalidAmount         = errors.New("amount must be a positive integer")
)

// Balance is one row of the settlement-token ledger.
type Balance struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

// Authorization lets spender pull up to Limit from Owner's balance. Approve
// overwrites the limit (last-write-wins); TransferFrom decrements it.
type Authorization struct {
	Owner   string          `json:"owner"`
	Spender string          `json:"spender"`
	Limit   decimal.Decimal `json:"limit"`
}

// ValidAmount reports whether d is usable as a transfer or approval amount:
// integral and strictly positive. Approvals also accept zero (revocation).
func ValidAmount(d decimal.Decimal) bool {
	return d.Sign() > 0 && d.IsInteger()
}

// ValidLimit is ValidAmount relaxed to allow zero.
func ValidLimit(d decimal.Decimal) bool {
	return d.Sign() >= 0 && d.IsInteger()
}
