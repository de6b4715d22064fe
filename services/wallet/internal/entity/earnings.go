package entity

import (
	"time"

	"tiktok-shop/pkg/money"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Seller keeps 9/10 of every order total.
const (
	SellerShareNumerator   = 9
	SellerShareDenominator = 10
)

func SellerShare(total money.Amount) money.Amount {
	return total.Share(SellerShareNumerator, SellerShareDenominator)
}

// SellerOrder is an order that contains at least one item of the seller.
type SellerOrder struct {
	ID          string       `json:"id"`
	Status      OrderStatus  `json:"status"`
	TotalAmount money.Amount `json:"total_amount"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type TransactionType string

const (
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionEarning    TransactionType = "earning"
)

// Transaction is one entry of the merged history feed.
type Transaction struct {
	ID        string          `json:"id"`
	Type      TransactionType `json:"type"`
	Amount    money.Amount    `json:"amount"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}
