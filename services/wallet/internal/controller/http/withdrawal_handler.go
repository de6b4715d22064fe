package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"tiktok-shop/pkg/logger"
	"tiktok-shop/pkg/middleware"
	"tiktok-shop/pkg/money"
	"tiktok-shop/services/wallet/internal/entity"
	"tiktok-shop/services/wallet/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WithdrawalHandler struct {
	withdrawalUseCase usecase.WithdrawalUseCase
	statementUseCase  usecase.StatementUseCase
	logger            *logger.Logger
}

func NewWithdrawalHandler(withdrawalUseCase usecase.WithdrawalUseCase, statementUseCase usecase.StatementUseCase, logger *logger.Logger) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalUseCase: withdrawalUseCase,
		statementUseCase:  statementUseCase,
		logger:            logger,
	}
}

type CreateWithdrawalRequest struct {
	Amount money.Amount `json:"amount" binding:"required"`
}

type ReviewWithdrawalRequest struct {
	Note string `json:"note" binding:"max=500"`
}

type ExportStatementRequest struct {
	From time.Time `json:"from" binding:"required"`
	To   time.Time `json:"to" binding:"required"`
}

// CreateWithdrawal godoc
// @Summary      Request withdrawal
// @Description  Files a pending withdrawal to the seller's banking profile. The wallet is debited immediately.
// @Tags         withdrawals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  CreateWithdrawalRequest  true  "Amount in currency units"
// @Success      201  {object}  entity.Withdrawal
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /withdrawals [post]
func (h *WithdrawalHandler) CreateWithdrawal(c *gin.Context) {
	var req CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	withdrawal, err := h.withdrawalUseCase.RequestWithdrawal(c.Request.Context(), c.GetString(middleware.UserIDKey), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, withdrawal)
}

// ListWithdrawals godoc
// @Summary      List own withdrawals
// @Tags         withdrawals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Withdrawal
// @Failure      404  {object}  map[string]string
// @Router       /withdrawals [get]
func (h *WithdrawalHandler) ListWithdrawals(c *gin.Context) {
	withdrawals, err := h.withdrawalUseCase.ListWithdrawals(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, withdrawals)
}

// ListPendingWithdrawals godoc
// @Summary      List pending withdrawals
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Withdrawal
// @Router       /admin/withdrawals/pending [get]
func (h *WithdrawalHandler) ListPendingWithdrawals(c *gin.Context) {
	withdrawals, err := h.withdrawalUseCase.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, withdrawals)
}

// ApproveWithdrawal godoc
// @Summary      Approve withdrawal
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                   true   "Withdrawal ID"
// @Param        request  body  ReviewWithdrawalRequest  false  "Review note"
// @Success      200  {object}  entity.Withdrawal
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/withdrawals/{id}/approve [patch]
func (h *WithdrawalHandler) ApproveWithdrawal(c *gin.Context) {
	h.review(c, h.withdrawalUseCase.Approve)
}

// RejectWithdrawal godoc
// @Summary      Reject withdrawal
// @Description  Rejects a pending withdrawal and refunds its amount to the wallet
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                   true   "Withdrawal ID"
// @Param        request  body  ReviewWithdrawalRequest  false  "Review note"
// @Success      200  {object}  entity.Withdrawal
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/withdrawals/{id}/reject [patch]
func (h *WithdrawalHandler) RejectWithdrawal(c *gin.Context) {
	h.review(c, h.withdrawalUseCase.Reject)
}

type reviewFunc func(ctx context.Context, id, adminID, note string) (*entity.Withdrawal, error)

func (h *WithdrawalHandler) review(c *gin.Context, resolve reviewFunc) {
	var req ReviewWithdrawalRequest
	// The body is optional and may be chunked, so an empty stream is not an error.
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	withdrawal, err := resolve(c.Request.Context(), c.Param("id"), c.GetString(middleware.UserIDKey), req.Note)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, withdrawal)
}

// ExportStatement godoc
// @Summary      Export payout statement
// @Description  Uploads a CSV of withdrawals approved in [from, to) and returns its URL
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  ExportStatementRequest  true  "RFC3339 window"
// @Success      200  {object}  entity.Statement
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/withdrawals/statements [post]
func (h *WithdrawalHandler) ExportStatement(c *gin.Context) {
	var req ExportStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	statement, err := h.statementUseCase.ExportStatement(c.Request.Context(), req.From, req.To)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, statement)
}
