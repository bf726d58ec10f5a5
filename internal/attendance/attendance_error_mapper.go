package attendance

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	attendanceerrors "github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/attendance/errors"
	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/resource"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrAttendanceNotFound
	}
	if errors.Is(err, resource.ErrUnknownField) {
		return attendanceerrors.ErrAttendanceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_attendance_employee_date" {
				return attendanceerrors.ErrAttendanceAlreadyExists
			}
		case "23503":
			return attendanceerrors.ErrEmployeeNotFound
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attendance_employee_date") {
		return attendanceerrors.ErrAttendanceAlreadyExists
	}

	return err
}
