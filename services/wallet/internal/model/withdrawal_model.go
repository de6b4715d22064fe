package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WithdrawalModel struct {
	ID         string     `gorm:"type:uuid;primary_key" json:"id"`
	WalletID   string     `gorm:"type:uuid;not null;index" json:"wallet_id"`
	BankingID  string     `gorm:"type:uuid;not null" json:"banking_id"`
	Amount     int64      `gorm:"not null" json:"amount"`
	Status     string     `gorm:"type:varchar(20);not null;index" json:"status"`
	ReviewedBy *string    `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	Note       string     `gorm:"type:text" json:"note"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (WithdrawalModel) TableName() string {
	return "withdrawals"
}

func (w *WithdrawalModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}

// WithdrawalRow is a withdrawal joined with the owning wallet's user.
type WithdrawalRow struct {
	WithdrawalModel `gorm:"embedded"`
	UserID          string
}

// OrderModel is the read-only view of orders used for earnings.
type OrderModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	Status      string `gorm:"type:varchar(20)"`
	TotalAmount int64  `gorm:"column:total_amount"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

type StatementRow struct {
	WithdrawalID  string
	SellerID      string
	ShopName      string
	BankName      string
	AccountNumber string
	AccountName   string
	Amount        int64
	ReviewedAt    time.Time
}
