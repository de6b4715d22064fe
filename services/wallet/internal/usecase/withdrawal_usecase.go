package usecase

import (
	"context"
	"fmt"

	"tiktok-shop/pkg/apperr"
	"tiktok-shop/pkg/logger"
	"tiktok-shop/pkg/money"
	"tiktok-shop/pkg/queue"
	"tiktok-shop/services/wallet/internal/entity"
	"tiktok-shop/services/wallet/internal/repo/persistent"
)

type WithdrawalUseCase interface {
	RequestWithdrawal(ctx context.Context, userID string, amount money.Amount) (*entity.Withdrawal, error)
	ListWithdrawals(ctx context.Context, userID string) ([]*entity.Withdrawal, error)
	ListPending(ctx context.Context) ([]*entity.Withdrawal, error)
	Approve(ctx context.Context, id, adminID, note string) (*entity.Withdrawal, error)
	Reject(ctx context.Context, id, adminID, note string) (*entity.Withdrawal, error)
}

type withdrawalUseCase struct {
	ledgerRepo persistent.LedgerRepository
	publisher  queue.Publisher
	logger     *logger.Logger
}

func NewWithdrawalUseCase(ledgerRepo persistent.LedgerRepository, publisher queue.Publisher, logger *logger.Logger) WithdrawalUseCase {
	return &withdrawalUseCase{
		ledgerRepo: ledgerRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// RequestWithdrawal files a pending withdrawal and debits the wallet by amount.
func (uc *withdrawalUseCase) RequestWithdrawal(ctx context.Context, userID string, amount money.Amount) (*entity.Withdrawal, error) {
	if !amount.IsPositive() {
		return nil, entity.ErrInvalidAmount
	}

	seller, err := uc.ledgerRepo.GetSellerByUserID(ctx, userID)
	if err != nil {
		return nil, uc.fail("failed to request withdrawal", err)
	}

	wallet, err := uc.ledgerRepo.GetWalletByUserID(ctx, userID)
	if err != nil {
		return nil, uc.fail("failed to request withdrawal", err)
	}

	banking, err := uc.ledgerRepo.GetBankingProfile(ctx, seller.ID)
	if err != nil {
		return nil, uc.fail("failed to request withdrawal", err)
	}

	if amount > wallet.Balance {
		return nil, entity.ErrInsufficientBalance
	}

	withdrawal, err := uc.ledgerRepo.CreateWithdrawal(ctx, &entity.Withdrawal{
		WalletID:  wallet.ID,
		BankingID: banking.ID,
		Amount:    amount,
		Status:    entity.WithdrawalPending,
	})
	if err != nil {
		return nil, uc.fail("failed to request withdrawal", err)
	}

	uc.logger.Info("Withdrawal %s of %s requested by seller %s", withdrawal.ID, amount, seller.ID)
	publish(ctx, uc.publisher, uc.logger, queue.NewEvent(queue.WithdrawalRequested, userID, withdrawalPayload(withdrawal)))
	return withdrawal, nil
}

func (uc *withdrawalUseCase) ListWithdrawals(ctx context.Context, userID string) ([]*entity.Withdrawal, error) {
	if _, err := uc.ledgerRepo.GetSellerByUserID(ctx, userID); err != nil {
		return nil, uc.fail("failed to list withdrawals", err)
	}

	wallet, err := uc.ledgerRepo.GetWalletByUserID(ctx, userID)
	if err != nil {
		return nil, uc.fail("failed to list withdrawals", err)
	}

	withdrawals, err := uc.ledgerRepo.ListWithdrawalsByWallet(ctx, wallet.ID)
	if err != nil {
		return nil, uc.fail("failed to list withdrawals", err)
	}
	return withdrawals, nil
}

func (uc *withdrawalUseCase) ListPending(ctx context.Context) ([]*entity.Withdrawal, error) {
	withdrawals, err := uc.ledgerRepo.ListWithdrawalsByStatus(ctx, entity.WithdrawalPending)
	if err != nil {
		return nil, uc.fail("failed to list pending withdrawals", err)
	}
	return withdrawals, nil
}

// Approve confirms a pending withdrawal. The balance was already debited at request time.
func (uc *withdrawalUseCase) Approve(ctx context.Context, id, adminID, note string) (*entity.Withdrawal, error) {
	return uc.resolve(ctx, id, entity.WithdrawalApproved, adminID, note, queue.WithdrawalApproved)
}

// Reject cancels a pending withdrawal and credits its amount back to the wallet.
func (uc *withdrawalUseCase) Reject(ctx context.Context, id, adminID, note string) (*entity.Withdrawal, error) {
	return uc.resolve(ctx, id, entity.WithdrawalRejected, adminID, note, queue.WithdrawalRejected)
}

func (uc *withdrawalUseCase) resolve(ctx context.Context, id string, status entity.WithdrawalStatus, adminID, note, eventType string) (*entity.Withdrawal, error) {
	withdrawal, err := uc.ledgerRepo.ResolveWithdrawal(ctx, id, status, adminID, note)
	if err != nil {
		return nil, uc.fail(fmt.Sprintf("failed to mark withdrawal %s", status), err)
	}

	uc.logger.Info("Withdrawal %s %s by admin %s", withdrawal.ID, status, adminID)
	publish(ctx, uc.publisher, uc.logger, queue.NewEvent(eventType, withdrawal.UserID, withdrawalPayload(withdrawal)))
	return withdrawal, nil
}

// fail logs storage failures and wraps err with msg. Client errors are not logged.
func (uc *withdrawalUseCase) fail(msg string, err error) error {
	if apperr.KindOf(err) == apperr.KindStorage || apperr.KindOf(err) == apperr.KindUnknown {
		uc.logger.Error("%s: %v", msg, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func withdrawalPayload(w *entity.Withdrawal) map[string]interface{} {
	payload := map[string]interface{}{
		"withdrawal_id": w.ID,
		"wallet_id":     w.WalletID,
		"amount":        w.Amount,
		"status":        string(w.Status),
	}
	if w.Note != "" {
		payload["note"] = w.Note
	}
	return payload
}
