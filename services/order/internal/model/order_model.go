package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderModel struct {
	ID              string           `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID      string           `gorm:"type:uuid;not null;index" json:"customer_id"`
	Status          string           `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalAmount     int64            `gorm:"not null" json:"total_amount"`
	ShippingAddress string           `gorm:"type:text" json:"shipping_address"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func (OrderModel) TableName() string {
	return "orders"
}

func (o *OrderModel) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}

type OrderItemModel struct {
	ID          string `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     string `gorm:"type:uuid;not null;index" json:"order_id"`
	SellerID    string `gorm:"type:uuid;not null;index" json:"seller_id"`
	ProductID   string `gorm:"type:varchar(64);not null" json:"product_id"`
	ProductName string `gorm:"type:varchar(255);not null" json:"product_name"`
	Price       int64  `gorm:"not null" json:"price"`
	Quantity    int    `gorm:"not null" json:"quantity"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}

func (i *OrderItemModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}

// SellerModel maps users to seller identities.
type SellerModel struct {
	ID     string `gorm:"type:uuid;primary_key"`
	UserID string `gorm:"type:uuid"`
}

func (SellerModel) TableName() string {
	return "sellers"
}

// WalletModel is written only to open seller wallets on delivery.
type WalletModel struct {
	ID     string `gorm:"type:uuid;primary_key"`
	UserID string `gorm:"type:uuid"`
}

func (WalletModel) TableName() string {
	return "wallets"
}

func (w *WalletModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}
