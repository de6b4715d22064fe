package persistent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tiktok-shop/services/notification/internal/entity"

	"github.com/redis/go-redis/v9"
)

const (
	// MaxNotifications is how many entries an inbox keeps; older ones are trimmed.
	MaxNotifications = 100
	notificationTTL  = 30 * 24 * time.Hour
)

// Subscription is a live feed of notification JSON documents. *redis.PubSub satisfies it.
type Subscription interface {
	Channel(opts ...redis.ChannelOption) <-chan *redis.Message
	Close() error
}

type NotificationRepository interface {
	// Push stores n at the head of its user's inbox and announces it to live subscribers.
	Push(ctx context.Context, n *entity.Notification) error
	List(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, int64, error)
	Subscribe(ctx context.Context, userID string) Subscription
}

type notificationRepository struct {
	redisClient redis.UniversalClient
}

func NewNotificationRepository(redisClient redis.UniversalClient) NotificationRepository {
	return &notificationRepository{redisClient: redisClient}
}

func InboxKey(userID string) string {
	return fmt.Sprintf("notifications:%s", userID)
}

func (r *notificationRepository) Push(ctx context.Context, n *entity.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	key := InboxKey(n.UserID)
	_, err = r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, body)
		pipe.LTrim(ctx, key, 0, MaxNotifications-1)
		pipe.Expire(ctx, key, notificationTTL)
		pipe.Publish(ctx, key, body)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store notification for %s: %w", n.UserID, err)
	}
	return nil
}

// List returns up to limit notifications newest first, skipping offset, and the inbox size.
// Entries that no longer decode are skipped.
func (r *notificationRepository) List(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, int64, error) {
	key := InboxKey(userID)

	var (
		rangeCmd *redis.StringSliceCmd
		lenCmd   *redis.IntCmd
	)
	_, err := r.redisClient.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		rangeCmd = pipe.LRange(ctx, key, int64(offset), int64(offset+limit-1))
		lenCmd = pipe.LLen(ctx, key)
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get notifications: %w", err)
	}

	notifications := make([]entity.Notification, 0, len(rangeCmd.Val()))
	for _, raw := range rangeCmd.Val() {
		var n entity.Notification
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			continue
		}
		notifications = append(notifications, n)
	}

	return notifications, lenCmd.Val(), nil
}

func (r *notificationRepository) Subscribe(ctx context.Context, userID string) Subscription {
	return r.redisClient.Subscribe(ctx, InboxKey(userID))
}
