package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"tiktok-shop/pkg/apperr"
	"tiktok-shop/pkg/logger"
	"tiktok-shop/pkg/middleware"
	"tiktok-shop/pkg/money"
	"tiktok-shop/pkg/queue"
	"tiktok-shop/services/order/internal/entity"
	"tiktok-shop/services/order/internal/repo/persistent"
)

type ItemInput struct {
	SellerID    string
	ProductID   string
	ProductName string
	Price       money.Amount
	Quantity    int
}

type PlaceOrderInput struct {
	ShippingAddress string
	Items           []ItemInput
}

type OrderUseCase interface {
	PlaceOrder(ctx context.Context, customerID string, input PlaceOrderInput) (*entity.Order, error)
	ListCustomerOrders(ctx context.Context, customerID string) ([]*entity.Order, error)
	ListSellerOrders(ctx context.Context, userID string) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, orderID, actorID, actorRole string, status entity.OrderStatus) (*entity.Order, error)
}

type orderUseCase struct {
	orderRepo persistent.OrderRepository
	publisher queue.Publisher
	logger    *logger.Logger
}

func NewOrderUseCase(orderRepo persistent.OrderRepository, publisher queue.Publisher, logger *logger.Logger) OrderUseCase {
	return &orderUseCase{
		orderRepo: orderRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// PlaceOrder stores a pending order whose total is the sum of item subtotals.
func (uc *orderUseCase) PlaceOrder(ctx context.Context, customerID string, input PlaceOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, entity.ErrEmptyOrder
	}

	order := &entity.Order{
		CustomerID:      customerID,
		Status:          entity.StatusPending,
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
	}
	sellerIDs := make([]string, 0, len(input.Items))
	seen := make(map[string]struct{})
	for _, in := range input.Items {
		if !in.Price.IsPositive() || in.Quantity <= 0 {
			return nil, entity.ErrInvalidItem
		}
		item := entity.OrderItem{
			SellerID:    in.SellerID,
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Price:       in.Price,
			Quantity:    in.Quantity,
		}
		subtotal, ok := item.Subtotal()
		if !ok {
			return nil, entity.ErrTotalTooLarge
		}
		if order.TotalAmount, ok = order.TotalAmount.Add(subtotal); !ok {
			return nil, entity.ErrTotalTooLarge
		}
		order.Items = append(order.Items, item)
		if _, ok := seen[in.SellerID]; !ok {
			seen[in.SellerID] = struct{}{}
			sellerIDs = append(sellerIDs, in.SellerID)
		}
	}

	missing, err := uc.orderRepo.MissingSellers(ctx, sellerIDs)
	if err != nil {
		uc.logger.Error("Failed to check sellers: %v", err)
		return nil, fmt.Errorf("failed to place order: %w", err)
	}
	if len(missing) > 0 {
		return nil, apperr.NotFound(fmt.Sprintf("seller not found: %s", strings.Join(missing, ", ")))
	}

	created, err := uc.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		uc.logger.Error("Failed to create order: %v", err)
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	uc.logger.Info("Order %s placed by %s for %s", created.ID, customerID, created.TotalAmount)
	return created, nil
}

func (uc *orderUseCase) ListCustomerOrders(ctx context.Context, customerID string) ([]*entity.Order, error) {
	orders, err := uc.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		uc.logger.Error("Failed to list customer orders: %v", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (uc *orderUseCase) ListSellerOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	sellerID, err := uc.orderRepo.GetSellerIDByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders, err := uc.orderRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		uc.logger.Error("Failed to list seller orders: %v", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus advances an order along pending, processing, shipped, delivered or cancels it.
// Sellers may only move orders that contain their items.
func (uc *orderUseCase) UpdateStatus(ctx context.Context, orderID, actorID, actorRole string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, entity.ErrUnknownStatus
	}

	order, err := uc.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	if actorRole != middleware.RoleAdmin {
		sellerID, err := uc.orderRepo.GetSellerIDByUserID(ctx, actorID)
		if err != nil {
			return nil, fmt.Errorf("failed to update order: %w", err)
		}
		if !order.HasSeller(sellerID) {
			return nil, entity.ErrNotOrderSeller
		}
	}

	if !order.Status.CanTransition(status) {
		return nil, entity.InvalidTransition(order.Status, status)
	}

	updated, err := uc.orderRepo.UpdateStatus(ctx, orderID, order.Status, status)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindStorage {
			uc.logger.Error("Failed to update order status: %v", err)
		}
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	uc.logger.Info("Order %s moved from %s to %s by %s", orderID, order.Status, status, actorID)
	uc.notify(ctx, updated, order.Status)
	return updated, nil
}

// notify tells the customer and every seller of the order about a status change.
func (uc *orderUseCase) notify(ctx context.Context, order *entity.Order, previous entity.OrderStatus) {
	if uc.publisher == nil {
		return
	}

	recipients := []string{order.CustomerID}
	sellerIDs := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		sellerIDs = append(sellerIDs, item.SellerID)
	}
	slices.Sort(sellerIDs)
	sellerIDs = slices.Compact(sellerIDs)

	if len(sellerIDs) > 0 {
		userIDs, err := uc.orderRepo.SellerUserIDs(ctx, sellerIDs)
		if err != nil {
			uc.logger.Warn("Failed to resolve sellers of order %s: %v", order.ID, err)
		}
		recipients = append(recipients, userIDs...)
	}

	for _, userID := range recipients {
		event := queue.NewEvent(queue.OrderStatusChanged, userID, map[string]interface{}{
			"order_id":        order.ID,
			"previous_status": string(previous),
			"status":          string(order.Status),
			"total_amount":    order.TotalAmount,
		})
		if err := uc.publisher.Publish(ctx, event); err != nil {
			uc.logger.Warn("Failed to publish %s event: %v", event.Type, err)
		}
	}
}
