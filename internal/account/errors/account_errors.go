package accounterrors

import (
	"net/http"

	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/shared/apperror"
)

var (
	ErrAccountNotFound = apperror.New(
		apperror.CodeNotFound,
		"Account not found",
		http.StatusNotFound,
	)
	ErrAccountAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Account for this employee and period already exists",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Employee does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Salary must be a decimal with at most 10 digits and 2 decimal places",
		http.StatusBadRequest,
	)
)
