package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"tiktok-shop/pkg/apperr"
	"tiktok-shop/pkg/logger"
	"tiktok-shop/pkg/money"
	"tiktok-shop/pkg/queue"
	"tiktok-shop/services/wallet/internal/entity"
	"tiktok-shop/services/wallet/internal/repo/persistent"
)

type WalletUseCase interface {
	GetWallet(ctx context.Context, userID string) (*entity.Wallet, error)
	GetTransactions(ctx context.Context, userID string) []*entity.Transaction
	AdjustBalance(ctx context.Context, userID string, delta money.Amount, adminID, note string) (*entity.Wallet, error)
}

type walletUseCase struct {
	ledgerRepo persistent.LedgerRepository
	publisher  queue.Publisher
	logger     *logger.Logger
}

func NewWalletUseCase(ledgerRepo persistent.LedgerRepository, publisher queue.Publisher, logger *logger.Logger) WalletUseCase {
	return &walletUseCase{
		ledgerRepo: ledgerRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// GetWallet returns the caller's wallet with earnings computed from their orders.
// Sellers get a wallet created on first read; other users must already have one.
func (uc *walletUseCase) GetWallet(ctx context.Context, userID string) (*entity.Wallet, error) {
	seller, err := lookupSeller(ctx, uc.ledgerRepo, userID)
	if err != nil {
		uc.logger.Error("Failed to get seller: %v", err)
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	var wallet *entity.Wallet
	if seller != nil {
		wallet, err = uc.ledgerRepo.GetOrCreateWallet(ctx, userID)
	} else {
		wallet, err = uc.ledgerRepo.GetWalletByUserID(ctx, userID)
	}
	if err != nil {
		if apperr.KindOf(err) != apperr.KindNotFound {
			uc.logger.Error("Failed to get wallet: %v", err)
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	if seller == nil {
		return wallet, nil
	}

	orders, err := uc.ledgerRepo.ListSellerOrders(ctx, seller.ID,
		entity.OrderProcessing, entity.OrderShipped, entity.OrderDelivered)
	if err != nil {
		uc.logger.Error("Failed to list seller orders: %v", err)
		return nil, fmt.Errorf("failed to compute earnings: %w", err)
	}

	wallet.PendingBalance, wallet.TotalEarnings = ComputeEarnings(orders)
	return wallet, nil
}

// ComputeEarnings returns the seller share of in-flight orders (processing, shipped)
// and of delivered orders.
func ComputeEarnings(orders []*entity.SellerOrder) (pending, total money.Amount) {
	var inFlight, delivered money.Amount
	for _, o := range orders {
		switch o.Status {
		case entity.OrderProcessing, entity.OrderShipped:
			inFlight += o.TotalAmount
		case entity.OrderDelivered:
			delivered += o.TotalAmount
		}
	}
	return entity.SellerShare(inFlight), entity.SellerShare(delivered)
}

// GetTransactions merges withdrawals and delivered-order earnings, newest first.
// Lookup failures are logged and contribute nothing.
func (uc *walletUseCase) GetTransactions(ctx context.Context, userID string) []*entity.Transaction {
	transactions := make([]*entity.Transaction, 0)
	transactions = append(transactions, uc.withdrawalTransactions(ctx, userID)...)
	transactions = append(transactions, uc.earningTransactions(ctx, userID)...)

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})
	return transactions
}

func (uc *walletUseCase) withdrawalTransactions(ctx context.Context, userID string) []*entity.Transaction {
	wallet, err := uc.ledgerRepo.GetWalletByUserID(ctx, userID)
	if err != nil {
		if apperr.KindOf(err) != apperr.KindNotFound {
			uc.logger.Warn("Transaction history: failed to get wallet for %s: %v", userID, err)
		}
		return nil
	}

	withdrawals, err := uc.ledgerRepo.ListWithdrawalsByWallet(ctx, wallet.ID)
	if err != nil {
		uc.logger.Warn("Transaction history: failed to list withdrawals for %s: %v", userID, err)
		return nil
	}

	transactions := make([]*entity.Transaction, 0, len(withdrawals))
	for _, w := range withdrawals {
		transactions = append(transactions, &entity.Transaction{
			ID:        w.ID,
			Type:      entity.TransactionWithdrawal,
			Amount:    w.Amount.Neg(),
			Status:    string(w.Status),
			CreatedAt: w.CreatedAt,
		})
	}
	return transactions
}

func (uc *walletUseCase) earningTransactions(ctx context.Context, userID string) []*entity.Transaction {
	seller, err := lookupSeller(ctx, uc.ledgerRepo, userID)
	if err != nil {
		uc.logger.Warn("Transaction history: failed to get seller for %s: %v", userID, err)
		return nil
	}
	if seller == nil {
		return nil
	}

	orders, err := uc.ledgerRepo.ListSellerOrders(ctx, seller.ID, entity.OrderDelivered)
	if err != nil {
		uc.logger.Warn("Transaction history: failed to list orders for %s: %v", userID, err)
		return nil
	}

	transactions := make([]*entity.Transaction, 0, len(orders))
	for _, o := range orders {
		transactions = append(transactions, &entity.Transaction{
			ID:        o.ID,
			Type:      entity.TransactionEarning,
			Amount:    entity.SellerShare(o.TotalAmount),
			Status:    "completed",
			CreatedAt: o.CreatedAt,
		})
	}
	return transactions
}

// AdjustBalance applies a manual credit or debit. The resulting balance may not be negative.
func (uc *walletUseCase) AdjustBalance(ctx context.Context, userID string, delta money.Amount, adminID, note string) (*entity.Wallet, error) {
	if delta == 0 {
		return nil, apperr.Validation("amount must not be zero")
	}

	wallet, err := uc.ledgerRepo.GetOrCreateWallet(ctx, userID)
	if err != nil {
		if apperr.KindOf(err) != apperr.KindNotFound {
			uc.logger.Error("Failed to get wallet: %v", err)
		}
		return nil, fmt.Errorf("failed to adjust wallet: %w", err)
	}

	if wallet.Balance+delta < 0 {
		return nil, entity.ErrInsufficientBalance
	}

	updated, err := uc.ledgerRepo.UpdateWalletBalance(ctx, wallet.ID, delta)
	if err != nil {
		if !errors.Is(err, entity.ErrInsufficientBalance) {
			uc.logger.Error("Failed to update wallet balance: %v", err)
		}
		return nil, fmt.Errorf("failed to adjust wallet: %w", err)
	}

	uc.logger.Info("Wallet %s adjusted by %s by admin %s", updated.ID, delta, adminID)
	publish(ctx, uc.publisher, uc.logger, queue.NewEvent(queue.WalletAdjusted, userID, map[string]interface{}{
		"wallet_id": updated.ID,
		"amount":    delta,
		"balance":   updated.Balance,
		"note":      note,
	}))
	return updated, nil
}

// lookupSeller returns nil without error when userID has no seller profile.
func lookupSeller(ctx context.Context, repo persistent.LedgerRepository, userID string) (*entity.Seller, error) {
	seller, err := repo.GetSellerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrSellerNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return seller, nil
}

// publish sends event on a best-effort basis after the ledger change is committed.
func publish(ctx context.Context, publisher queue.Publisher, log *logger.Logger, event queue.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn("Failed to publish %s event: %v", event.Type, err)
	}
}
