package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tiktok-shop/pkg/jwt"
	"tiktok-shop/pkg/logger"
	"tiktok-shop/services/notification/internal/entity"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func newTestHandler() (*MockNotificationUseCase, *NotificationHandler) {
	mockUseCase := new(MockNotificationUseCase)
	return mockUseCase, NewNotificationHandler(mockUseCase, jwt.NewService(testSecret), logger.NewWithLevel("error"))
}

func TestGetNotifications_Success(t *testing.T) {
	mockUseCase, handler := newTestHandler()
	mockUseCase.On("GetNotifications", mock.Anything, "user-1", 10, 20).Return(&entity.Page{
		Notifications: []entity.Notification{{ID: "n-1", Title: "Withdrawal approved"}},
		Count:         1,
		Total:         21,
		Offset:        20,
	}, nil)

	router := setupTestRouter()
	router.GET("/notifications", asUser("user-1"), handler.GetNotifications)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications?limit=10&offset=20", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(21), response["total"])
	assert.Equal(t, float64(1), response["count"])
	assert.Len(t, response["notifications"], 1)
}

func TestGetNotifications_BadQueryFallsBackToDefaults(t *testing.T) {
	mockUseCase, handler := newTestHandler()
	mockUseCase.On("GetNotifications", mock.Anything, "user-1", 0, 0).Return(&entity.Page{Notifications: []entity.Notification{}}, nil)

	router := setupTestRouter()
	router.GET("/notifications", asUser("user-1"), handler.GetNotifications)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications?limit=abc&offset=", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetNotifications_StoreDown(t *testing.T) {
	mockUseCase, handler := newTestHandler()
	mockUseCase.On("GetNotifications", mock.Anything, "user-1", 0, 0).Return(nil, errors.New("redis down"))

	router := setupTestRouter()
	router.GET("/notifications", asUser("user-1"), handler.GetNotifications)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStreamNotifications_Unauthorized(t *testing.T) {
	_, handler := newTestHandler()
	router := setupTestRouter()
	router.GET("/notifications/ws", handler.StreamNotifications)

	for _, target := range []string{"/notifications/ws", "/notifications/ws?token=garbage"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", target, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, target)
	}
}

func TestStreamNotifications_ForwardsMessages(t *testing.T) {
	mockUseCase, handler := newTestHandler()
	sub := newFakeSubscription()
	mockUseCase.On("Subscribe", mock.Anything, "user-1").Return(sub)

	router := setupTestRouter()
	router.GET("/notifications/ws", handler.StreamNotifications)
	server := httptest.NewServer(router)
	defer server.Close()

	token, err := jwt.NewService(testSecret).GenerateToken("user-1", "seller")
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/notifications/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	sub.ch <- &redis.Message{Channel: "notifications:user-1", Payload: `{"id":"n-1","title":"Withdrawal approved"}`}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"n-1","title":"Withdrawal approved"}`, string(payload))

	require.NoError(t, conn.Close())
	select {
	case <-sub.closed:
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not closed after the client went away")
	}
}
