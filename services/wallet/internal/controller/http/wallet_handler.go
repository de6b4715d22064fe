package http

import (
	"net/http"

	"tiktok-shop/pkg/logger"
	"tiktok-shop/pkg/middleware"
	"tiktok-shop/pkg/money"
	"tiktok-shop/services/wallet/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletUseCase usecase.WalletUseCase
	logger        *logger.Logger
}

func NewWalletHandler(walletUseCase usecase.WalletUseCase, logger *logger.Logger) *WalletHandler {
	return &WalletHandler{
		walletUseCase: walletUseCase,
		logger:        logger,
	}
}

type AdjustWalletRequest struct {
	Amount money.Amount `json:"amount" binding:"required"`
	Note   string       `json:"note" binding:"required,max=500"`
}

// GetWallet godoc
// @Summary      Get wallet
// @Description  Wallet of the authenticated user with pending balance and total earnings computed from orders
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Wallet
// @Failure      404  {object}  map[string]string
// @Router       /wallet [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	wallet, err := h.walletUseCase.GetWallet(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, wallet)
}

// GetTransactions godoc
// @Summary      Get transaction history
// @Description  Withdrawals and delivered-order earnings, newest first
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Transaction
// @Router       /wallet/transactions [get]
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	c.JSON(http.StatusOK, h.walletUseCase.GetTransactions(c.Request.Context(), userID))
}

// AdjustWallet godoc
// @Summary      Adjust wallet balance
// @Description  Credit or debit a user's wallet manually. The balance may not go negative.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path  string               true  "User ID"
// @Param        request  body  AdjustWalletRequest  true  "Signed amount and reason"
// @Success      200  {object}  entity.Wallet
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/wallets/{user_id}/adjust [post]
func (h *WalletHandler) AdjustWallet(c *gin.Context) {
	var req AdjustWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wallet, err := h.walletUseCase.AdjustBalance(c.Request.Context(), c.Param("user_id"), req.Amount,
		c.GetString(middleware.UserIDKey), req.Note)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, wallet)
}
