package http

import (
	"net/http"

	"tiktok-shop/pkg/logger"
	"tiktok-shop/pkg/middleware"
	"tiktok-shop/services/wallet/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BankingHandler struct {
	bankingUseCase usecase.BankingUseCase
	logger         *logger.Logger
}

func NewBankingHandler(bankingUseCase usecase.BankingUseCase, logger *logger.Logger) *BankingHandler {
	return &BankingHandler{
		bankingUseCase: bankingUseCase,
		logger:         logger,
	}
}

type BankingRequest struct {
	BankName      string `json:"bank_name" binding:"required,max=255"`
	AccountNumber string `json:"account_number" binding:"required,account_number"`
	AccountName   string `json:"account_name" binding:"required,max=255"`
}

// GetBanking godoc
// @Summary      Get banking profile
// @Tags         banking
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.BankingProfile
// @Failure      404  {object}  map[string]string
// @Router       /banking [get]
func (h *BankingHandler) GetBanking(c *gin.Context) {
	profile, err := h.bankingUseCase.GetBankingProfile(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SaveBanking godoc
// @Summary      Create or update banking profile
// @Tags         banking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  BankingRequest  true  "Bank account"
// @Success      200  {object}  entity.BankingProfile
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /banking [put]
func (h *BankingHandler) SaveBanking(c *gin.Context) {
	var req BankingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.bankingUseCase.SaveBankingProfile(c.Request.Context(), c.GetString(middleware.UserIDKey), usecase.BankingInput{
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
