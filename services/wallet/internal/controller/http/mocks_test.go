package http

import (
	"context"
	"time"

	"tiktok-shop/pkg/money"
	"tiktok-shop/services/wallet/internal/entity"
	"tiktok-shop/services/wallet/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type MockWalletUseCase struct {
	mock.Mock
}

func (m *MockWalletUseCase) GetWallet(ctx context.Context, userID string) (*entity.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Wallet), args.Error(1)
}

func (m *MockWalletUseCase) GetTransactions(ctx context.Context, userID string) []*entity.Transaction {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entity.Transaction)
}

func (m *MockWalletUseCase) AdjustBalance(ctx context.Context, userID string, delta money.Amount, adminID, note string) (*entity.Wallet, error) {
	args := m.Called(ctx, userID, delta, adminID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Wallet), args.Error(1)
}

type MockWithdrawalUseCase struct {
	mock.Mock
}

func (m *MockWithdrawalUseCase) RequestWithdrawal(ctx context.Context, userID string, amount money.Amount) (*entity.Withdrawal, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalUseCase) ListWithdrawals(ctx context.Context, userID string) ([]*entity.Withdrawal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalUseCase) ListPending(ctx context.Context) ([]*entity.Withdrawal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalUseCase) Approve(ctx context.Context, id, adminID, note string) (*entity.Withdrawal, error) {
	args := m.Called(ctx, id, adminID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalUseCase) Reject(ctx context.Context, id, adminID, note string) (*entity.Withdrawal, error) {
	args := m.Called(ctx, id, adminID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Withdrawal), args.Error(1)
}

type MockStatementUseCase struct {
	mock.Mock
}

func (m *MockStatementUseCase) ExportStatement(ctx context.Context, from, to time.Time) (*entity.Statement, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Statement), args.Error(1)
}

type MockBankingUseCase struct {
	mock.Mock
}

func (m *MockBankingUseCase) GetBankingProfile(ctx context.Context, userID string) (*entity.BankingProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BankingProfile), args.Error(1)
}

func (m *MockBankingUseCase) SaveBankingProfile(ctx context.Context, userID string, input usecase.BankingInput) (*entity.BankingProfile, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BankingProfile), args.Error(1)
}

var (
	_ usecase.WalletUseCase     = (*MockWalletUseCase)(nil)
	_ usecase.WithdrawalUseCase = (*MockWithdrawalUseCase)(nil)
	_ usecase.StatementUseCase  = (*MockStatementUseCase)(nil)
	_ usecase.BankingUseCase    = (*MockBankingUseCase)(nil)
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
	return gin.New()
}

// asUser sets the identity AuthMiddleware would have placed on the context.
func asUser(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}
