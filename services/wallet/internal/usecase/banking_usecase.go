package usecase

import (
	"context"
	"fmt"
	"strings"

	"tiktok-shop/pkg/apperr"
	"tiktok-shop/pkg/logger"
	"tiktok-shop/services/wallet/internal/entity"
	"tiktok-shop/services/wallet/internal/repo/persistent"
)

type BankingInput struct {
	BankName      string
	AccountNumber string
	AccountName   string
}

type BankingUseCase interface {
	GetBankingProfile(ctx context.Context, userID string) (*entity.BankingProfile, error)
	SaveBankingProfile(ctx context.Context, userID string, input BankingInput) (*entity.BankingProfile, error)
}

type bankingUseCase struct {
	ledgerRepo persistent.LedgerRepository
	logger     *logger.Logger
}

func NewBankingUseCase(ledgerRepo persistent.LedgerRepository, logger *logger.Logger) BankingUseCase {
	return &bankingUseCase{
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

func (uc *bankingUseCase) GetBankingProfile(ctx context.Context, userID string) (*entity.BankingProfile, error) {
	seller, err := uc.ledgerRepo.GetSellerByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get banking profile: %w", err)
	}

	profile, err := uc.ledgerRepo.GetBankingProfile(ctx, seller.ID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindStorage {
			uc.logger.Error("Failed to get banking profile: %v", err)
		}
		return nil, fmt.Errorf("failed to get banking profile: %w", err)
	}
	return profile, nil
}

// SaveBankingProfile creates the seller's banking profile or updates it in place.
func (uc *bankingUseCase) SaveBankingProfile(ctx context.Context, userID string, input BankingInput) (*entity.BankingProfile, error) {
	input.BankName = strings.TrimSpace(input.BankName)
	input.AccountName = strings.TrimSpace(input.AccountName)
	input.AccountNumber = strings.TrimSpace(input.AccountNumber)
	if input.BankName == "" || input.AccountName == "" || input.AccountNumber == "" {
		return nil, apperr.Validation("bank name, account number and account name are required")
	}

	seller, err := uc.ledgerRepo.GetSellerByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to save banking profile: %w", err)
	}

	profile, err := uc.ledgerRepo.UpsertBankingProfile(ctx, &entity.BankingProfile{
		SellerID:      seller.ID,
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		AccountName:   input.AccountName,
	})
	if err != nil {
		uc.logger.Error("Failed to save banking profile: %v", err)
		return nil, fmt.Errorf("failed to save banking profile: %w", err)
	}

	uc.logger.Info("Banking profile saved for seller %s", seller.ID)
	return profile, nil
}
