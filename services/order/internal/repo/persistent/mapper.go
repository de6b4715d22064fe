package persistent

import (
	"tiktok-shop/pkg/money"
	"tiktok-shop/services/order/internal/entity"
	"tiktok-shop/services/order/internal/model"
)

func ToOrderEntity(m *model.OrderModel) *entity.Order {
	if m == nil {
		return nil
	}

	items := make([]entity.OrderItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = entity.OrderItem{
			ID:          item.ID,
			OrderID:     item.OrderID,
			SellerID:    item.SellerID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       money.Amount(item.Price),
			Quantity:    item.Quantity,
		}
	}

	return &entity.Order{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		Status:          entity.OrderStatus(m.Status),
		TotalAmount:     money.Amount(m.TotalAmount),
		ShippingAddress: m.ShippingAddress,
		Items:           items,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToOrderModel(e *entity.Order) *model.OrderModel {
	if e == nil {
		return nil
	}

	items := make([]model.OrderItemModel, len(e.Items))
	for i, item := range e.Items {
		items[i] = model.OrderItemModel{
			ID:          item.ID,
			OrderID:     item.OrderID,
			SellerID:    item.SellerID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       int64(item.Price),
			Quantity:    item.Quantity,
		}
	}

	return &model.OrderModel{
		ID:              e.ID,
		CustomerID:      e.CustomerID,
		Status:          string(e.Status),
		TotalAmount:     int64(e.TotalAmount),
		ShippingAddress: e.ShippingAddress,
		Items:           items,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
