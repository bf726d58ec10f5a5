package account

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	accounterrors "github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/account/errors"
	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/resource"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return accounterrors.ErrAccountNotFound
	}
	if errors.Is(err, resource.ErrUnknownField) {
		return accounterrors.ErrAccountNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_accounts_employee_period" {
				return accounterrors.ErrAccountAlreadyExists
			}
		case "23503":
			return accounterrors.ErrEmployeeNotFound
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_accounts_employee_period") {
		return accounterrors.ErrAccountAlreadyExists
	}

	return err
}
