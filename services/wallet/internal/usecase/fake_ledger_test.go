package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"tiktok-shop/pkg/apperr"
	"tiktok-shop/pkg/money"
	"tiktok-shop/pkg/queue"
	"tiktok-shop/services/wallet/internal/entity"
	"tiktok-shop/services/wallet/internal/repo/persistent"

	"github.com/google/uuid"
)

var errStorageDown = apperr.Storage("failed to query", errors.New("connection refused"))

// fakeLedger is an in-memory LedgerRepository with the same atomicity as the SQL one.
// Keep it in step with the guarded statements in repo/persistent/ledger_repository.go:
//   - CreateWithdrawal debits only WHERE balance >= amount, in the same transaction as the insert
//   - ResolveWithdrawal updates only WHERE status = 'pending'; a reject refunds in that transaction
//   - UpdateWalletBalance applies balance + delta and returns the updated row (RETURNING)
//
// Their rendered SQL is checked in repo/persistent/ledger_sql_test.go.
type fakeLedger struct {
	mu          sync.Mutex
	clock       time.Time
	wallets     map[string]*entity.Wallet // by wallet id
	sellers     map[string]*entity.Seller // by user id
	banking     map[string]*entity.BankingProfile
	withdrawals map[string]*entity.Withdrawal
	orders      map[string][]*entity.SellerOrder // by seller id

	// users that GetOrCreateWallet treats as missing, like the wallets.user_id foreign key
	missingUsers map[string]bool

	failWithdrawals bool
	failOrders      bool
}

var _ persistent.LedgerRepository = (*fakeLedger)(nil)

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		clock:       time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		wallets:     map[string]*entity.Wallet{},
		sellers:     map[string]*entity.Seller{},
		banking:     map[string]*entity.BankingProfile{},
		withdrawals: map[string]*entity.Withdrawal{},
		orders:      map[string][]*entity.SellerOrder{},
	}
}

func (f *fakeLedger) tick() time.Time {
	f.clock = f.clock.Add(time.Minute)
	return f.clock
}

// addSeller registers a seller with a wallet holding balance and a banking profile.
func (f *fakeLedger) addSeller(userID string, balance money.Amount) *entity.Seller {
	f.mu.Lock()
	defer f.mu.Unlock()

	seller := &entity.Seller{ID: "seller-" + userID, UserID: userID, ShopName: "shop " + userID}
	f.sellers[userID] = seller
	f.wallets["wallet-"+userID] = &entity.Wallet{ID: "wallet-" + userID, UserID: userID, Balance: balance}
	f.banking[seller.ID] = &entity.BankingProfile{ID: "bank-" + userID, SellerID: seller.ID, BankName: "ACB", AccountNumber: "0123456789", AccountName: "SELLER"}
	return seller
}

func (f *fakeLedger) addOrder(sellerID string, status entity.OrderStatus, total money.Amount) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.tick()
	f.orders[sellerID] = append(f.orders[sellerID], &entity.SellerOrder{
		ID: uuid.New().String(), Status: status, TotalAmount: total, CreatedAt: now, UpdatedAt: now,
	})
}

func (f *fakeLedger) balance(userID string) money.Amount {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.wallets {
		if w.UserID == userID {
			return w.Balance
		}
	}
	return -1
}

func (f *fakeLedger) withdrawalCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.withdrawals)
}

func (f *fakeLedger) walletByUser(userID string) *entity.Wallet {
	for _, w := range f.wallets {
		if w.UserID == userID {
			return w
		}
	}
	return nil
}

func (f *fakeLedger) withUserID(w *entity.Withdrawal) *entity.Withdrawal {
	cp := *w
	if wallet, ok := f.wallets[w.WalletID]; ok {
		cp.UserID = wallet.UserID
	}
	return &cp
}

func (f *fakeLedger) GetWalletByUserID(_ context.Context, userID string) (*entity.Wallet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w := f.walletByUser(userID); w != nil {
		cp := *w
		return &cp, nil
	}
	return nil, entity.ErrWalletNotFound
}

func (f *fakeLedger) GetOrCreateWallet(ctx context.Context, userID string) (*entity.Wallet, error) {
	f.mu.Lock()
	if f.missingUsers[userID] {
		f.mu.Unlock()
		return nil, entity.ErrUserNotFound
	}
	if f.walletByUser(userID) == nil {
		id := uuid.New().String()
		f.wallets[id] = &entity.Wallet{ID: id, UserID: userID, CreatedAt: f.tick()}
	}
	f.mu.Unlock()
	return f.GetWalletByUserID(ctx, userID)
}

func (f *fakeLedger) UpdateWalletBalance(_ context.Context, walletID string, delta money.Amount) (*entity.Wallet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.wallets[walletID]
	if !ok {
		return nil, entity.ErrWalletNotFound
	}
	w.Balance += delta
	cp := *w
	return &cp, nil
}

func (f *fakeLedger) GetSellerByUserID(_ context.Context, userID string) (*entity.Seller, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.sellers[userID]; ok {
		return s, nil
	}
	return nil, entity.ErrSellerNotFound
}

func (f *fakeLedger) GetBankingProfile(_ context.Context, sellerID string) (*entity.BankingProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.banking[sellerID]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, entity.ErrBankInfoMissing
}

func (f *fakeLedger) UpsertBankingProfile(_ context.Context, profile *entity.BankingProfile) (*entity.BankingProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.banking[profile.SellerID]
	now := f.tick()
	if !ok {
		cp := *profile
		cp.ID = uuid.New().String()
		cp.CreatedAt = now
		cp.UpdatedAt = now
		f.banking[profile.SellerID] = &cp
		out := cp
		return &out, nil
	}
	existing.BankName = profile.BankName
	existing.AccountNumber = profile.AccountNumber
	existing.AccountName = profile.AccountName
	existing.UpdatedAt = now
	out := *existing
	return &out, nil
}

func (f *fakeLedger) CreateWithdrawal(_ context.Context, withdrawal *entity.Withdrawal) (*entity.Withdrawal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.wallets[withdrawal.WalletID]
	if !ok {
		return nil, entity.ErrWalletNotFound
	}
	if w.Balance < withdrawal.Amount {
		return nil, entity.ErrInsufficientBalance
	}
	w.Balance -= withdrawal.Amount

	now := f.tick()
	stored := *withdrawal
	stored.ID = uuid.New().String()
	stored.Status = entity.WithdrawalPending
	stored.CreatedAt = now
	stored.UpdatedAt = now
	f.withdrawals[stored.ID] = &stored
	return f.withUserID(&stored), nil
}

func (f *fakeLedger) GetWithdrawal(_ context.Context, id string) (*entity.Withdrawal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w, ok := f.withdrawals[id]; ok {
		return f.withUserID(w), nil
	}
	return nil, entity.ErrWithdrawalNotFound
}

func (f *fakeLedger) ListWithdrawalsByWallet(_ context.Context, walletID string) ([]*entity.Withdrawal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWithdrawals {
		return nil, errStorageDown
	}
	var out []*entity.Withdrawal
	for _, w := range f.withdrawals {
		if w.WalletID == walletID {
			out = append(out, f.withUserID(w))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeLedger) ListWithdrawalsByStatus(_ context.Context, status entity.WithdrawalStatus) ([]*entity.Withdrawal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWithdrawals {
		return nil, errStorageDown
	}
	var out []*entity.Withdrawal
	for _, w := range f.withdrawals {
		if w.Status == status {
			out = append(out, f.withUserID(w))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeLedger) ResolveWithdrawal(_ context.Context, id string, status entity.WithdrawalStatus, reviewerID, note string) (*entity.Withdrawal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.withdrawals[id]
	if !ok {
		return nil, entity.ErrWithdrawalNotFound
	}
	if w.Status != entity.WithdrawalPending {
		return nil, entity.ErrAlreadyProcessed
	}
	if status == entity.WithdrawalRejected {
		wallet, ok := f.wallets[w.WalletID]
		if !ok {
			return nil, entity.ErrWalletNotFound
		}
		wallet.Balance += w.Amount
	}

	now := f.tick()
	w.Status = status
	w.ReviewedBy = reviewerID
	w.ReviewedAt = &now
	w.Note = note
	w.UpdatedAt = now
	return f.withUserID(w), nil
}

func (f *fakeLedger) ListStatementLines(_ context.Context, from, to time.Time) ([]*entity.StatementLine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWithdrawals {
		return nil, errStorageDown
	}
	var lines []*entity.StatementLine
	for _, w := range f.withdrawals {
		if w.Status != entity.WithdrawalApproved || w.ReviewedAt == nil {
			continue
		}
		if w.ReviewedAt.Before(from) || !w.ReviewedAt.Before(to) {
			continue
		}
		line := &entity.StatementLine{WithdrawalID: w.ID, Amount: w.Amount, ReviewedAt: *w.ReviewedAt}
		for _, b := range f.banking {
			if b.ID == w.BankingID {
				line.SellerID = b.SellerID
				line.BankName = b.BankName
				line.AccountNumber = b.AccountNumber
				line.AccountName = b.AccountName
			}
		}
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ReviewedAt.Before(lines[j].ReviewedAt) })
	return lines, nil
}

func (f *fakeLedger) ListSellerOrders(_ context.Context, sellerID string, statuses ...entity.OrderStatus) ([]*entity.SellerOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOrders {
		return nil, errStorageDown
	}
	var out []*entity.SellerOrder
	for _, o := range f.orders[sellerID] {
		if len(statuses) == 0 {
			out = append(out, o)
			continue
		}
		for _, s := range statuses {
			if o.Status == s {
				out = append(out, o)
				break
			}
		}
	}
	return out, nil
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []queue.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event queue.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}
