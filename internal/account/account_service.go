package account

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	accounterrors "github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/account/errors"
	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/shared/contextutil"
)

type Service interface {
	Create(ctx context.Context, req CreateAccountRequest) (AccountResponse, error)
	IsDuplicate(ctx context.Context, req CreateAccountRequest) (bool, error)
	Find(ctx context.Context, criteria map[string]string) ([]AccountResponse, error)
	Update(ctx context.Context, id uint, req UpdateAccountRequest) (AccountResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("account.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("account.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAccountRequest) (AccountResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create account requested",
		zap.String("actor", contextutil.GetUserID(ctx)),
		zap.Uint("employee", req.Employee),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create account begin tx failed", zap.Error(err))
		return AccountResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsBy(ctx, identityCriteria(req))
	if err != nil {
		log.Error("create account uniqueness check failed", zap.Error(err))
		return AccountResponse{}, mapRepositoryError(err)
	}
	if exists {
		log.Warn("create account duplicate period",
			zap.Uint("employee", req.Employee),
			zap.Int("month", req.Month),
			zap.Int("year", req.Year),
		)
		return AccountResponse{}, accounterrors.ErrAccountAlreadyExists
	}

	salary, err := parseSalary(req.Salary)
	if err != nil {
		return AccountResponse{}, err
	}

	row := &Account{
		EmployeeID: req.Employee,
		Month:      req.Month,
		Year:       req.Year,
		Salary:     salary,
	}

	if err := qtx.Create(ctx, row); err != nil {
		log.Error("create account persist failed", zap.Error(err))
		return AccountResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("create account commit failed", zap.Error(err))
		return AccountResponse{}, err
	}

	log.Info("create account success", zap.Uint("account_id", row.ID))
	return mapToResponse(*row), nil
}

// IsDuplicate checks (employee, month, year) outside any transaction; the
// duplicate verdict is reported ahead of field validation.
func (s *service) IsDuplicate(ctx context.Context, req CreateAccountRequest) (bool, error) {
	exists, err := s.repo.ExistsBy(ctx, identityCriteria(req))
	if err != nil {
		return false, mapRepositoryError(err)
	}
	return exists, nil
}

func (s *service) Find(ctx context.Context, criteria map[string]string) ([]AccountResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("find accounts requested", zap.Int("criteria", len(criteria)))
	rows, err := s.repo.Find(ctx, criteria)
	if err != nil {
		log.Error("find accounts failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]AccountResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateAccountRequest) (AccountResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update account requested", zap.Uint("account_id", id))

	salary, err := parseSalary(req.Salary)
	if err != nil {
		return AccountResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update account begin tx failed", zap.Error(err))
		return AccountResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		log.Warn("update account fetch existing failed", zap.Uint("account_id", id), zap.Error(err))
		return AccountResponse{}, mapRepositoryError(err)
	}

	row.EmployeeID = req.Employee
	row.Month = req.Month
	row.Year = req.Year
	row.Salary = salary

	if err := qtx.Update(ctx, row); err != nil {
		log.Error("update account persist failed", zap.Error(err))
		return AccountResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update account commit failed", zap.Error(err))
		return AccountResponse{}, err
	}

	log.Info("update account success", zap.Uint("account_id", id))
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete account requested", zap.Uint("account_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete account begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		log.Warn("delete account fetch existing failed", zap.Uint("account_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		log.Error("delete account failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("delete account commit failed", zap.Error(err))
		return err
	}

	log.Info("delete account success", zap.Uint("account_id", id))
	return nil
}

func identityCriteria(req CreateAccountRequest) map[string]string {
	return map[string]string{
		"employee": strconv.FormatUint(uint64(req.Employee), 10),
		"month":    strconv.Itoa(req.Month),
		"year":     strconv.Itoa(req.Year),
	}
}

// parseSalary enforces the numeric(10,2) contract: at most 2 fractional
// digits, strictly below 10^8, never negative.
func parseSalary(v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, accounterrors.ErrInvalidSalary
	}
	if d.IsNegative() {
		return decimal.Zero, accounterrors.ErrInvalidSalary
	}
	if d.Exponent() < -2 {
		return decimal.Zero, accounterrors.ErrInvalidSalary
	}
	if d.Cmp(decimal.New(1, 8)) >= 0 {
		return decimal.Zero, accounterrors.ErrInvalidSalary
	}
	return d, nil
}

func mapToResponse(a Account) AccountResponse {
	return AccountResponse{
		ID:       a.ID,
		Employee: a.EmployeeID,
		Month:    a.Month,
		Year:     a.Year,
		Salary:   a.Salary.StringFixed(2),
	}
}
