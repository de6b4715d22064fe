package entity

import (
	"fmt"
	"time"

	"tiktok-shop/pkg/apperr"
	"tiktok-shop/pkg/money"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from s to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

var (
	ErrOrderNotFound  = apperr.NotFound("order not found")
	ErrSellerNotFound = apperr.NotFound("seller not found")
	ErrEmptyOrder     = apperr.Validation("order must contain at least one item")
	ErrInvalidItem    = apperr.Validation("item price and quantity must be positive")
	ErrTotalTooLarge  = apperr.Validation("order total out of range")
	ErrNotOrderSeller = apperr.Forbidden("order does not contain your items")
	ErrStatusConflict = apperr.InvalidState("order status changed concurrently")
	ErrUnknownStatus  = apperr.Validation("unknown order status")
)

func InvalidTransition(from, to OrderStatus) error {
	return apperr.InvalidState(fmt.Sprintf("cannot change order status from %s to %s", from, to))
}

type Order struct {
	ID              string       `json:"id"`
	CustomerID      string       `json:"customer_id"`
	Status          OrderStatus  `json:"status"`
	TotalAmount     money.Amount `json:"total_amount"`
	ShippingAddress string       `json:"shipping_address"`
	Items           []OrderItem  `json:"items"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type OrderItem struct {
	ID          string       `json:"id"`
	OrderID     string       `json:"order_id"`
	SellerID    string       `json:"seller_id"`
	ProductID   string       `json:"product_id"`
	ProductName string       `json:"product_name"`
	Price       money.Amount `json:"price"`
	Quantity    int          `json:"quantity"`
}

// Subtotal returns price times quantity, or false when it overflows.
func (i OrderItem) Subtotal() (money.Amount, bool) {
	return i.Price.Mul(int64(i.Quantity))
}

// HasSeller reports whether any item of the order belongs to sellerID.
func (o *Order) HasSeller(sellerID string) bool {
	for _, item := range o.Items {
		if item.SellerID == sellerID {
			return true
		}
	}
	return false
}
