package http

import (
	"net/http"
	"strconv"
	"time"

	"tiktok-shop/pkg/jwt"
	"tiktok-shop/pkg/logger"
	"tiktok-shop/pkg/middleware"
	"tiktok-shop/services/notification/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const pingInterval = 30 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NotificationHandler struct {
	notificationUseCase usecase.NotificationUseCase
	jwtService          *jwt.Service
	logger              *logger.Logger
}

func NewNotificationHandler(notificationUseCase usecase.NotificationUseCase, jwtService *jwt.Service, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
		jwtService:          jwtService,
		logger:              logger,
	}
}

// GetNotifications godoc
// @Summary      Get user notifications
// @Description  Newest first. The inbox keeps the last 100 notifications for 30 days.
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Number of notifications to return (max 100)"
// @Param        offset  query  int  false  "Offset for pagination"
// @Success      200  {object}  entity.Page
// @Failure      500  {object}  map[string]string
// @Router       /notifications [get]
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	page, err := h.notificationUseCase.GetNotifications(c.Request.Context(), c.GetString(middleware.UserIDKey), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get notifications"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// StreamNotifications godoc
// @Summary      Stream notifications over WebSocket
// @Description  Browsers cannot set headers on upgrade requests, so the JWT is passed as ?token=.
// @Tags         notifications
// @Param        token  query  string  true  "JWT"
// @Success      101
// @Failure      401  {object}  map[string]string
// @Router       /notifications/ws [get]
func (h *NotificationHandler) StreamNotifications(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade connection to WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	sub := h.notificationUseCase.Subscribe(ctx, userID)
	defer sub.Close()

	h.logger.Info("WebSocket connected for user %s", userID)

	// The read loop only watches for the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	messages := sub.Channel()
	for {
		select {
		case <-closed:
			h.logger.Info("WebSocket disconnected for user %s", userID)
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				return
			}
		case msg, ok := <-messages:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				h.logger.Warn("Failed to write WebSocket message: %v", err)
				return
			}
		}
	}
}
