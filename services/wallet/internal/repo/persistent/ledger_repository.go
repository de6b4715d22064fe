package persistent

import (
	"context"
	"errors"
	"time"

	"tiktok-shop/pkg/money"
	"tiktok-shop/services/wallet/internal/entity"
	"tiktok-shop/services/wallet/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerRepository is the storage boundary of wallets, banking profiles and withdrawals.
// Balance-changing operations are single conditional statements so that concurrent
// requests cannot overdraw a wallet or resolve a withdrawal twice.
type LedgerRepository interface {
	GetWalletByUserID(ctx context.Context, userID string) (*entity.Wallet, error)
	GetOrCreateWallet(ctx context.Context, userID string) (*entity.Wallet, error)
	// UpdateWalletBalance applies balance += delta and returns the updated wallet.
	UpdateWalletBalance(ctx context.Context, walletID string, delta money.Amount) (*entity.Wallet, error)

	GetSellerByUserID(ctx context.Context, userID string) (*entity.Seller, error)
	GetBankingProfile(ctx context.Context, sellerID string) (*entity.BankingProfile, error)
	UpsertBankingProfile(ctx context.Context, profile *entity.BankingProfile) (*entity.BankingProfile, error)

	// CreateWithdrawal stores a pending withdrawal and debits its wallet in one transaction.
	CreateWithdrawal(ctx context.Context, withdrawal *entity.Withdrawal) (*entity.Withdrawal, error)
	GetWithdrawal(ctx context.Context, id string) (*entity.Withdrawal, error)
	ListWithdrawalsByWallet(ctx context.Context, walletID string) ([]*entity.Withdrawal, error)
	ListWithdrawalsByStatus(ctx context.Context, status entity.WithdrawalStatus) ([]*entity.Withdrawal, error)
	// ResolveWithdrawal moves a pending withdrawal to status. Rejection refunds the wallet
	// in the same transaction.
	ResolveWithdrawal(ctx context.Context, id string, status entity.WithdrawalStatus, reviewerID, note string) (*entity.Withdrawal, error)
	ListStatementLines(ctx context.Context, from, to time.Time) ([]*entity.StatementLine, error)

	ListSellerOrders(ctx context.Context, sellerID string, statuses ...entity.OrderStatus) ([]*entity.SellerOrder, error)
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) GetWalletByUserID(ctx context.Context, userID string) (*entity.Wallet, error) {
	var walletModel model.WalletModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&walletModel).Error; err != nil {
		return nil, translate("failed to get wallet", err, entity.ErrWalletNotFound)
	}
	return ToWalletEntity(&walletModel), nil
}

func (r *ledgerRepository) GetOrCreateWallet(ctx context.Context, userID string) (*entity.Wallet, error) {
	walletModel := model.WalletModel{UserID: userID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(&walletModel).Error
	if err != nil {
		return nil, translate("failed to create wallet", err, entity.ErrUserNotFound)
	}
	return r.GetWalletByUserID(ctx, userID)
}

func (r *ledgerRepository) UpdateWalletBalance(ctx context.Context, walletID string, delta money.Amount) (*entity.Wallet, error) {
	return applyBalanceDelta(r.db.WithContext(ctx), walletID, delta)
}

func applyBalanceDelta(tx *gorm.DB, walletID string, delta money.Amount) (*entity.Wallet, error) {
	var walletModel model.WalletModel
	res := balanceDelta(tx, &walletModel, walletID, int64(delta))
	if res.Error != nil {
		return nil, translate("failed to update wallet balance", res.Error, nil)
	}
	if res.RowsAffected == 0 {
		return nil, entity.ErrWalletNotFound
	}
	return ToWalletEntity(&walletModel), nil
}

func (r *ledgerRepository) GetSellerByUserID(ctx context.Context, userID string) (*entity.Seller, error) {
	var sellerModel model.SellerModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&sellerModel).Error; err != nil {
		return nil, translate("failed to get seller", err, entity.ErrSellerNotFound)
	}
	return ToSellerEntity(&sellerModel), nil
}

func (r *ledgerRepository) GetBankingProfile(ctx context.Context, sellerID string) (*entity.BankingProfile, error) {
	var profileModel model.BankingProfileModel
	if err := r.db.WithContext(ctx).Where("seller_id = ?", sellerID).First(&profileModel).Error; err != nil {
		return nil, translate("failed to get banking profile", err, entity.ErrBankInfoMissing)
	}
	return ToBankingProfileEntity(&profileModel), nil
}

func (r *ledgerRepository) UpsertBankingProfile(ctx context.Context, profile *entity.BankingProfile) (*entity.BankingProfile, error) {
	profileModel := ToBankingProfileModel(profile)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "seller_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"bank_name", "account_number", "account_name", "updated_at"}),
		}).
		Create(profileModel).Error
	if err != nil {
		return nil, translate("failed to save banking profile", err, nil)
	}
	return r.GetBankingProfile(ctx, profile.SellerID)
}

func (r *ledgerRepository) CreateWithdrawal(ctx context.Context, withdrawal *entity.Withdrawal) (*entity.Withdrawal, error) {
	withdrawalModel := ToWithdrawalModel(withdrawal)
	withdrawalModel.Status = string(entity.WithdrawalPending)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(withdrawalModel).Error; err != nil {
			return err
		}

		res := escrowDebit(tx, withdrawalModel.WalletID, withdrawalModel.Amount)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.WalletModel{}).Where("id = ?", withdrawalModel.WalletID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return entity.ErrWalletNotFound
			}
			return entity.ErrInsufficientBalance
		}
		return nil
	})
	if err != nil {
		return nil, translate("failed to create withdrawal", err, nil)
	}

	return r.GetWithdrawal(ctx, withdrawalModel.ID)
}

func (r *ledgerRepository) withdrawalQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.WithdrawalModel{}).
		Select("withdrawals.*, wallets.user_id AS user_id").
		Joins("JOIN wallets ON wallets.id = withdrawals.wallet_id")
}

func (r *ledgerRepository) GetWithdrawal(ctx context.Context, id string) (*entity.Withdrawal, error) {
	var row model.WithdrawalRow
	if err := r.withdrawalQuery(ctx).Where("withdrawals.id = ?", id).Take(&row).Error; err != nil {
		return nil, translate("failed to get withdrawal", err, entity.ErrWithdrawalNotFound)
	}
	return toWithdrawalRowEntity(&row), nil
}

func (r *ledgerRepository) ListWithdrawalsByWallet(ctx context.Context, walletID string) ([]*entity.Withdrawal, error) {
	var rows []model.WithdrawalRow
	err := r.withdrawalQuery(ctx).
		Where("withdrawals.wallet_id = ?", walletID).
		Order("withdrawals.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, translate("failed to list withdrawals", err, nil)
	}
	return toWithdrawalEntities(rows), nil
}

func (r *ledgerRepository) ListWithdrawalsByStatus(ctx context.Context, status entity.WithdrawalStatus) ([]*entity.Withdrawal, error) {
	var rows []model.WithdrawalRow
	err := r.withdrawalQuery(ctx).
		Where("withdrawals.status = ?", string(status)).
		Order("withdrawals.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translate("failed to list withdrawals", err, nil)
	}
	return toWithdrawalEntities(rows), nil
}

func toWithdrawalEntities(rows []model.WithdrawalRow) []*entity.Withdrawal {
	withdrawals := make([]*entity.Withdrawal, len(rows))
	for i := range rows {
		withdrawals[i] = toWithdrawalRowEntity(&rows[i])
	}
	return withdrawals
}

func (r *ledgerRepository) ResolveWithdrawal(ctx context.Context, id string, status entity.WithdrawalStatus, reviewerID, note string) (*entity.Withdrawal, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var withdrawalModel model.WithdrawalModel
		if err := tx.Where("id = ?", id).First(&withdrawalModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrWithdrawalNotFound
			}
			return err
		}

		now := time.Now().UTC()
		updates := map[string]interface{}{
			"status":      string(status),
			"reviewed_at": now,
			"note":        note,
			"updated_at":  now,
		}
		if reviewerID != "" {
			updates["reviewed_by"] = reviewerID
		}

		res := resolvePending(tx, id, updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entity.ErrAlreadyProcessed
		}

		if status == entity.WithdrawalRejected {
			if _, err := applyBalanceDelta(tx, withdrawalModel.WalletID, money.Amount(withdrawalModel.Amount)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, translate("failed to resolve withdrawal", err, entity.ErrWithdrawalNotFound)
	}

	return r.GetWithdrawal(ctx, id)
}

func (r *ledgerRepository) ListStatementLines(ctx context.Context, from, to time.Time) ([]*entity.StatementLine, error) {
	var rows []model.StatementRow
	err := r.db.WithContext(ctx).
		Table("withdrawals AS w").
		Select("w.id AS withdrawal_id, s.id AS seller_id, s.shop_name, b.bank_name, b.account_number, b.account_name, w.amount, w.reviewed_at").
		Joins("JOIN banking_profiles AS b ON b.id = w.banking_id").
		Joins("JOIN sellers AS s ON s.id = b.seller_id").
		Where("w.status = ? AND w.reviewed_at >= ? AND w.reviewed_at < ?", string(entity.WithdrawalApproved), from, to).
		Order("w.reviewed_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translate("failed to list approved withdrawals", err, nil)
	}

	lines := make([]*entity.StatementLine, len(rows))
	for i := range rows {
		lines[i] = toStatementLine(&rows[i])
	}
	return lines, nil
}

func (r *ledgerRepository) ListSellerOrders(ctx context.Context, sellerID string, statuses ...entity.OrderStatus) ([]*entity.SellerOrder, error) {
	sellerOrderIDs := r.db.Table("order_items").Select("order_id").Where("seller_id = ?", sellerID)

	query := r.db.WithContext(ctx).Where("id IN (?)", sellerOrderIDs)
	if len(statuses) > 0 {
		names := make([]string, len(statuses))
		for i, s := range statuses {
			names[i] = string(s)
		}
		query = query.Where("status IN ?", names)
	}

	var orderModels []model.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, translate("failed to list seller orders", err, nil)
	}

	orders := make([]*entity.SellerOrder, len(orderModels))
	for i := range orderModels {
		orders[i] = ToSellerOrderEntity(&orderModels[i])
	}
	return orders, nil
}

// The three statements below carry the ledger invariants. Each changes at most one row
// and the caller reads RowsAffected instead of checking state beforehand.

// balanceDelta adds delta to the balance and scans the updated row into dest.
func balanceDelta(tx *gorm.DB, dest *model.WalletModel, walletID string, delta int64) *gorm.DB {
	return tx.Model(dest).
		Clauses(clause.Returning{}).
		Where("id = ?", walletID).
		Update("balance", gorm.Expr("balance + ?", delta))
}

// escrowDebit subtracts amount only while the balance still covers it.
func escrowDebit(tx *gorm.DB, walletID string, amount int64) *gorm.DB {
	return tx.Model(&model.WalletModel{}).
		Where("id = ? AND balance >= ?", walletID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
}

// resolvePending applies updates only to a withdrawal that is still pending.
func resolvePending(tx *gorm.DB, id string, updates map[string]interface{}) *gorm.DB {
	return tx.Model(&model.WithdrawalModel{}).
		Where("id = ? AND status = ?", id, string(entity.WithdrawalPending)).
		Updates(updates)
}
