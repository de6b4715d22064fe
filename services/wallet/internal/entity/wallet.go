package entity

import (
	"time"

	"tiktok-shop/pkg/apperr"
	"tiktok-shop/pkg/money"
)

var (
	ErrWalletNotFound      = apperr.NotFound("wallet not found")
	ErrSellerNotFound      = apperr.NotFound("seller not found")
	ErrUserNotFound        = apperr.NotFound("user not found")
	ErrBankInfoMissing     = apperr.NotFound("bank info missing")
	ErrWithdrawalNotFound  = apperr.NotFound("withdrawal not found")
	ErrInvalidAmount       = apperr.Validation("amount must be positive")
	ErrInsufficientBalance = apperr.Validation("insufficient balance")
	ErrAlreadyProcessed    = apperr.InvalidState("already processed")
)

// Wallet holds a user's withdrawable balance. PendingBalance and TotalEarnings are
// derived from orders on every read and never stored.
type Wallet struct {
	ID             string       `json:"id"`
	UserID         string       `json:"user_id"`
	Balance        money.Amount `json:"balance"`
	PendingBalance money.Amount `json:"pending_balance"`
	TotalEarnings  money.Amount `json:"total_earnings"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

type Seller struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ShopName  string    `json:"shop_name"`
	CreatedAt time.Time `json:"created_at"`
}

type BankingProfile struct {
	ID            string    `json:"id"`
	SellerID      string    `json:"seller_id"`
	BankName      string    `json:"bank_name"`
	AccountNumber string    `json:"account_number"`
	AccountName   string    `json:"account_name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
