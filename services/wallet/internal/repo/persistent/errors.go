package persistent

import (
	"errors"

	"tiktok-shop/pkg/apperr"
	"tiktok-shop/services/wallet/internal/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	// pgCheckViolation is raised by the wallets_balance_non_negative constraint.
	pgCheckViolation = "23514"
	// pgInvalidText is raised when an id is not a valid uuid.
	pgInvalidText = "22P02"
	// pgForeignKeyViolation is raised when a referenced row does not exist.
	pgForeignKeyViolation = "23503"
)

// translate maps driver errors onto the apperr taxonomy.
// notFound is returned for gorm.ErrRecordNotFound, for ids that cannot exist and
// for references to missing rows.
func translate(op string, err error, notFound error) error {
	if err == nil {
		return nil
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgCheckViolation:
			return entity.ErrInsufficientBalance
		case (pgErr.Code == pgInvalidText || pgErr.Code == pgForeignKeyViolation) && notFound != nil:
			return notFound
		}
	}

	return apperr.Storage(op, err)
}
