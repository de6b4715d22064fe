package persistent

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"tiktok-shop/pkg/apperr"
	"tiktok-shop/services/wallet/internal/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	checkViolation := &pgconn.PgError{Code: "23514", ConstraintName: "wallets_balance_non_negative"}
	badUUID := &pgconn.PgError{Code: "22P02"}
	missingUser := &pgconn.PgError{Code: "23503", ConstraintName: "wallets_user_id_fkey"}

	assert.NoError(t, translate("op", nil, entity.ErrWalletNotFound))
	assert.ErrorIs(t, translate("op", gorm.ErrRecordNotFound, entity.ErrWalletNotFound), entity.ErrWalletNotFound)
	assert.ErrorIs(t, translate("op", fmt.Errorf("exec: %w", checkViolation), nil), entity.ErrInsufficientBalance)
	assert.ErrorIs(t, translate("op", badUUID, entity.ErrWithdrawalNotFound), entity.ErrWithdrawalNotFound)
	assert.ErrorIs(t, translate("op", entity.ErrAlreadyProcessed, nil), entity.ErrAlreadyProcessed)
	assert.ErrorIs(t, translate("op", fmt.Errorf("insert: %w", missingUser), entity.ErrUserNotFound), entity.ErrUserNotFound)
	assert.ErrorIs(t, translate("op", badUUID, entity.ErrUserNotFound), entity.ErrUserNotFound)
	assert.Equal(t, http.StatusNotFound, apperr.HTTPStatus(translate("op", missingUser, entity.ErrUserNotFound)))

	err := translate("failed to list withdrawals", errors.New("connection reset"), nil)
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
	assert.Equal(t, "internal error", apperr.Message(err))

	err = translate("op", badUUID, nil)
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
}
