package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"tiktok-shop/pkg/apperr"
	"tiktok-shop/pkg/logger"
	"tiktok-shop/services/wallet/internal/entity"
	"tiktok-shop/services/wallet/internal/repo/persistent"

	"github.com/google/uuid"
)

// ObjectStorage is where rendered statements are uploaded.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type StatementUseCase interface {
	ExportStatement(ctx context.Context, from, to time.Time) (*entity.Statement, error)
}

type statementUseCase struct {
	ledgerRepo persistent.LedgerRepository
	storage    ObjectStorage
	logger     *logger.Logger
}

func NewStatementUseCase(ledgerRepo persistent.LedgerRepository, storage ObjectStorage, logger *logger.Logger) StatementUseCase {
	return &statementUseCase{
		ledgerRepo: ledgerRepo,
		storage:    storage,
		logger:     logger,
	}
}

var statementHeader = []string{"withdrawal_id", "seller_id", "shop_name", "bank_name", "account_number", "account_name", "amount", "reviewed_at"}

// ExportStatement uploads a CSV of withdrawals approved in [from, to).
func (uc *statementUseCase) ExportStatement(ctx context.Context, from, to time.Time) (*entity.Statement, error) {
	if !from.Before(to) {
		return nil, apperr.Validation("from must be before to")
	}
	if uc.storage == nil {
		return nil, apperr.Storage("statement storage unavailable", nil)
	}

	lines, err := uc.ledgerRepo.ListStatementLines(ctx, from, to)
	if err != nil {
		uc.logger.Error("Failed to list approved withdrawals: %v", err)
		return nil, fmt.Errorf("failed to export statement: %w", err)
	}

	body, err := RenderStatement(lines)
	if err != nil {
		return nil, apperr.Storage("failed to render statement", err)
	}

	key := fmt.Sprintf("statements/%s_%s_%s.csv", from.UTC().Format("20060102"), to.UTC().Format("20060102"), uuid.New().String())
	url, err := uc.storage.Upload(ctx, key, body, "text/csv")
	if err != nil {
		uc.logger.Error("Failed to upload statement %s: %v", key, err)
		return nil, apperr.Storage("failed to upload statement", err)
	}

	uc.logger.Info("Exported statement %s with %d payouts", key, len(lines))
	return &entity.Statement{URL: url, Key: key, Count: len(lines)}, nil
}

func RenderStatement(lines []*entity.StatementLine) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(statementHeader); err != nil {
		return nil, err
	}
	for _, l := range lines {
		record := []string{
			l.WithdrawalID,
			l.SellerID,
			l.ShopName,
			l.BankName,
			l.AccountNumber,
			l.AccountName,
			l.Amount.String(),
			l.ReviewedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
