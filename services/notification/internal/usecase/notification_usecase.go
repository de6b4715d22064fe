package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tiktok-shop/pkg/logger"
	"tiktok-shop/pkg/queue"
	"tiktok-shop/services/notification/internal/entity"
	"tiktok-shop/services/notification/internal/repo/persistent"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultLimit = 50
	MaxLimit     = persistent.MaxNotifications
)

type NotificationUseCase interface {
	// HandleEvent renders a ledger event and stores it in the recipient's inbox.
	HandleEvent(ctx context.Context, event queue.Event) error
	GetNotifications(ctx context.Context, userID string, limit, offset int) (*entity.Page, error)
	Subscribe(ctx context.Context, userID string) persistent.Subscription
}

type notificationUseCase struct {
	notificationRepo persistent.NotificationRepository
	logger           *logger.Logger
}

func NewNotificationUseCase(notificationRepo persistent.NotificationRepository, logger *logger.Logger) NotificationUseCase {
	return &notificationUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *notificationUseCase) HandleEvent(ctx context.Context, event queue.Event) error {
	if event.UserID == "" {
		return fmt.Errorf("%w: %s without user_id", queue.ErrMalformed, event.Type)
	}

	title, message, ok := render(event)
	if !ok {
		return fmt.Errorf("%w: unknown event type %s", queue.ErrMalformed, event.Type)
	}

	createdAt := event.OccurredAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	notification := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    event.UserID,
		Title:     title,
		Message:   message,
		Type:      event.Type,
		Data:      event.Payload,
		CreatedAt: createdAt,
	}

	if err := uc.notificationRepo.Push(ctx, notification); err != nil {
		return err
	}

	uc.logger.Info("Notification %s sent to user %s: %s", event.Type, event.UserID, title)
	return nil
}

// GetNotifications clamps limit to (0, MaxLimit] and offset to >= 0.
func (uc *notificationUseCase) GetNotifications(ctx context.Context, userID string, limit, offset int) (*entity.Page, error) {
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	notifications, total, err := uc.notificationRepo.List(ctx, userID, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to get notifications for %s: %v", userID, err)
		return nil, err
	}

	return &entity.Page{
		Notifications: notifications,
		Count:         len(notifications),
		Total:         total,
		Offset:        offset,
	}, nil
}

func (uc *notificationUseCase) Subscribe(ctx context.Context, userID string) persistent.Subscription {
	return uc.notificationRepo.Subscribe(ctx, userID)
}

func render(event queue.Event) (title, message string, ok bool) {
	p := event.Payload
	switch event.Type {
	case queue.WithdrawalRequested:
		return "Withdrawal requested",
			fmt.Sprintf("Your withdrawal of %s is waiting for review.", amountText(p["amount"])), true
	case queue.WithdrawalApproved:
		return "Withdrawal approved",
			fmt.Sprintf("Your withdrawal of %s has been approved.", amountText(p["amount"])), true
	case queue.WithdrawalRejected:
		message = fmt.Sprintf("Your withdrawal of %s was rejected and returned to your balance.", amountText(p["amount"]))
		if note, _ := p["note"].(string); note != "" {
			message += " Reason: " + note
		}
		return "Withdrawal rejected", message, true
	case queue.WalletAdjusted:
		return "Wallet adjusted",
			fmt.Sprintf("Your balance was adjusted by %s. New balance: %s.", amountText(p["amount"]), amountText(p["balance"])), true
	case queue.OrderStatusChanged:
		orderID, _ := p["order_id"].(string)
		status, _ := p["status"].(string)
		return "Order updated",
			fmt.Sprintf("Order %s is now %s.", shortID(orderID), status), true
	}
	return "", "", false
}

// amountText formats a payload amount, which arrives as a JSON number in currency units.
func amountText(v interface{}) string {
	var s string
	switch a := v.(type) {
	case json.Number:
		s = a.String()
	case string:
		s = a
	default:
		return "an amount"
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return d.StringFixed(2)
	}
	return s
}

func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
