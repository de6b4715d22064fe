package http

import (
	"net/http"

	"tiktok-shop/pkg/logger"
	"tiktok-shop/pkg/middleware"
	"tiktok-shop/pkg/money"
	"tiktok-shop/services/order/internal/entity"
	"tiktok-shop/services/order/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderUseCase usecase.OrderUseCase
	logger       *logger.Logger
}

func NewOrderHandler(orderUseCase usecase.OrderUseCase, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
		logger:       logger,
	}
}

type OrderItemRequest struct {
	SellerID    string       `json:"seller_id" binding:"required,uuid"`
	ProductID   string       `json:"product_id" binding:"required,max=64"`
	ProductName string       `json:"product_name" binding:"required,max=255"`
	Price       money.Amount `json:"price"`
	Quantity    int          `json:"quantity"`
}

type CreateOrderRequest struct {
	ShippingAddress string             `json:"shipping_address" binding:"required,max=1000"`
	Items           []OrderItemRequest `json:"items" binding:"dive"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateOrder godoc
// @Summary      Place an order
// @Description  Total is computed from item prices and quantities. The order starts as pending.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  CreateOrderRequest  true  "Order"
// @Success      201  {object}  entity.Order
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.PlaceOrderInput{ShippingAddress: req.ShippingAddress}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.ItemInput{
			SellerID:    item.SellerID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	order, err := h.orderUseCase.PlaceOrder(c.Request.Context(), c.GetString(middleware.UserIDKey), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ListOrders godoc
// @Summary      List my orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Order
// @Failure      500  {object}  map[string]string
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderUseCase.ListCustomerOrders(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// ListSellerOrders godoc
// @Summary      List orders containing my items
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Order
// @Failure      404  {object}  map[string]string
// @Router       /seller/orders [get]
func (h *OrderHandler) ListSellerOrders(c *gin.Context) {
	orders, err := h.orderUseCase.ListSellerOrders(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateStatus godoc
// @Summary      Change order status
// @Description  pending -> processing -> shipped -> delivered, or pending/processing -> cancelled.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string               true  "Order ID"
// @Param        request  body  UpdateStatusRequest  true  "New status"
// @Success      200  {object}  entity.Order
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderUseCase.UpdateStatus(
		c.Request.Context(),
		c.Param("id"),
		c.GetString(middleware.UserIDKey),
		c.GetString(middleware.RoleKey),
		entity.OrderStatus(req.Status),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
