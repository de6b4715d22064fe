package http

import (
	"context"

	"tiktok-shop/pkg/queue"
	"tiktok-shop/services/notification/internal/entity"
	"tiktok-shop/services/notification/internal/repo/persistent"
	"tiktok-shop/services/notification/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

type MockNotificationUseCase struct {
	mock.Mock
}

func (m *MockNotificationUseCase) HandleEvent(ctx context.Context, event queue.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockNotificationUseCase) GetNotifications(ctx context.Context, userID string, limit, offset int) (*entity.Page, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page), args.Error(1)
}

func (m *MockNotificationUseCase) Subscribe(ctx context.Context, userID string) persistent.Subscription {
	args := m.Called(ctx, userID)
	return args.Get(0).(persistent.Subscription)
}

var _ usecase.NotificationUseCase = (*MockNotificationUseCase)(nil)

// fakeSubscription feeds messages pushed onto ch.
type fakeSubscription struct {
	ch     chan *redis.Message
	closed chan struct{}
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{ch: make(chan *redis.Message, 4), closed: make(chan struct{})}
}

func (f *fakeSubscription) Channel(...redis.ChannelOption) <-chan *redis.Message {
	return f.ch
}

func (f *fakeSubscription) Close() error {
	close(f.closed)
	return nil
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}
