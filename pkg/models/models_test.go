package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeforeCreate_AssignsMissingIDs(t *testing.T) {
	user := &User{Email: "test@example.com", Username: "testuser", Role: RoleSeller}
	seller := &Seller{ShopName: "Test Shop"}
	wallet := &Wallet{}
	order := &Order{Status: OrderPending}

	assert.NoError(t, user.BeforeCreate(nil))
	assert.NoError(t, seller.BeforeCreate(nil))
	assert.NoError(t, wallet.BeforeCreate(nil))
	assert.NoError(t, order.BeforeCreate(nil))

	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, seller.ID)
	assert.NotEmpty(t, wallet.ID)
	assert.NotEmpty(t, order.ID)
}

func TestBeforeCreate_KeepsExistingID(t *testing.T) {
	user := &User{ID: "existing-id-123"}

	assert.NoError(t, user.BeforeCreate(nil))
	assert.Equal(t, "existing-id-123", user.ID)
}

func TestOrder_Total(t *testing.T) {
	order := &Order{Items: []OrderItem{
		{Price: 15000, Quantity: 2},
		{Price: 999, Quantity: 1},
	}}

	assert.Equal(t, int64(30999), order.Total())
	assert.Equal(t, int64(0), (&Order{}).Total())
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "banking_profiles", BankingProfile{}.TableName())
}
