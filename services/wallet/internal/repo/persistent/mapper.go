package persistent

import (
	"tiktok-shop/pkg/money"
	"tiktok-shop/services/wallet/internal/entity"
	"tiktok-shop/services/wallet/internal/model"
)

func ToWalletEntity(m *model.WalletModel) *entity.Wallet {
	if m == nil {
		return nil
	}

	return &entity.Wallet{
		ID:        m.ID,
		UserID:    m.UserID,
		Balance:   money.Amount(m.Balance),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToSellerEntity(m *model.SellerModel) *entity.Seller {
	if m == nil {
		return nil
	}

	return &entity.Seller{
		ID:        m.ID,
		UserID:    m.UserID,
		ShopName:  m.ShopName,
		CreatedAt: m.CreatedAt,
	}
}

func ToBankingProfileEntity(m *model.BankingProfileModel) *entity.BankingProfile {
	if m == nil {
		return nil
	}

	return &entity.BankingProfile{
		ID:            m.ID,
		SellerID:      m.SellerID,
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
		AccountName:   m.AccountName,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToBankingProfileModel(e *entity.BankingProfile) *model.BankingProfileModel {
	if e == nil {
		return nil
	}

	return &model.BankingProfileModel{
		ID:            e.ID,
		SellerID:      e.SellerID,
		BankName:      e.BankName,
		AccountNumber: e.AccountNumber,
		AccountName:   e.AccountName,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToWithdrawalEntity(m *model.WithdrawalModel) *entity.Withdrawal {
	if m == nil {
		return nil
	}

	w := &entity.Withdrawal{
		ID:         m.ID,
		WalletID:   m.WalletID,
		BankingID:  m.BankingID,
		Amount:     money.Amount(m.Amount),
		Status:     entity.WithdrawalStatus(m.Status),
		ReviewedAt: m.ReviewedAt,
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.ReviewedBy != nil {
		w.ReviewedBy = *m.ReviewedBy
	}
	return w
}

func ToWithdrawalModel(e *entity.Withdrawal) *model.WithdrawalModel {
	if e == nil {
		return nil
	}

	m := &model.WithdrawalModel{
		ID:         e.ID,
		WalletID:   e.WalletID,
		BankingID:  e.BankingID,
		Amount:     int64(e.Amount),
		Status:     string(e.Status),
		ReviewedAt: e.ReviewedAt,
		Note:       e.Note,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
	if e.ReviewedBy != "" {
		reviewer := e.ReviewedBy
		m.ReviewedBy = &reviewer
	}
	return m
}

func toWithdrawalRowEntity(r *model.WithdrawalRow) *entity.Withdrawal {
	w := ToWithdrawalEntity(&r.WithdrawalModel)
	w.UserID = r.UserID
	return w
}

func ToSellerOrderEntity(m *model.OrderModel) *entity.SellerOrder {
	if m == nil {
		return nil
	}

	return &entity.SellerOrder{
		ID:          m.ID,
		Status:      entity.OrderStatus(m.Status),
		TotalAmount: money.Amount(m.TotalAmount),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toStatementLine(r *model.StatementRow) *entity.StatementLine {
	return &entity.StatementLine{
		WithdrawalID:  r.WithdrawalID,
		SellerID:      r.SellerID,
		ShopName:      r.ShopName,
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
		AccountName:   r.AccountName,
		Amount:        money.Amount(r.Amount),
		ReviewedAt:    r.ReviewedAt,
	}
}
