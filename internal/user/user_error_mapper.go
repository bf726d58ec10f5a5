package user

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/resource"
	usererrors "github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/user/errors"
)

// mapRepositoryError classifies store failures. A lost create race surfaces
// through the unique index as the same conflict the existence check reports,
// and unsupported lookup criteria collapse into not-found per the read
// contract.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}
	if errors.Is(err, resource.ErrUnknownField) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_users_identity" {
				return usererrors.ErrUserAlreadyExists
			}
		case "23503":
			return usererrors.ErrManagerNotFound
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_users_identity") {
		return usererrors.ErrUserAlreadyExists
	}

	return err
}
