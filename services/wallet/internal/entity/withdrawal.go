package entity

import (
	"time"

	"tiktok-shop/pkg/money"
)

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

// Withdrawal is a request to move Amount from a wallet to a banking profile.
// The amount is debited when the request is created.
type Withdrawal struct {
	ID         string           `json:"id"`
	WalletID   string           `json:"wallet_id"`
	UserID     string           `json:"user_id,omitempty"`
	BankingID  string           `json:"banking_id"`
	Amount     money.Amount     `json:"amount"`
	Status     WithdrawalStatus `json:"status"`
	ReviewedBy string           `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time       `json:"reviewed_at,omitempty"`
	Note       string           `json:"note,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// StatementLine is one approved payout in an exported statement.
type StatementLine struct {
	WithdrawalID  string
	SellerID      string
	ShopName      string
	BankName      string
	AccountNumber string
	AccountName   string
	Amount        money.Amount
	ReviewedAt    time.Time
}

type Statement struct {
	URL   string `json:"url"`
	Key   string `json:"key"`
	Count int    `json:"count"`
}
