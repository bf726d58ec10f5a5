package account_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/account"
	accounterrors "github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/account/errors"
	resourceMock "github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/resource/mock"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service account.Service
	repo    *resourceMock.MockRepository[account.Account]
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := resourceMock.NewMockRepository[account.Account](ctrl)

	svc := account.NewService(db, repo)

	return &serviceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func validCreateRequest() account.CreateAccountRequest {
	return account.CreateAccountRequest{
		Employee: 3,
		Month:    3,
		Year:     2026,
		Salary:   "5200.50",
	}
}

func TestAccountService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			ExistsBy(ctx, map[string]string{"employee": "3", "month": "3", "year": "2026"}).
			Return(false, nil)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, row *account.Account) error {
				assert.Equal(t, uint(3), row.EmployeeID)
				assert.True(t, row.Salary.Equal(decimal.RequireFromString("5200.50")))
				row.ID = 21
				return nil
			})

		resp, err := deps.service.Create(ctx, validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, uint(21), resp.ID)
		assert.Equal(t, "5200.50", resp.Salary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate employee and period", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			ExistsBy(ctx, gomock.Any()).
			Return(true, nil)

		_, err := deps.service.Create(ctx, validCreateRequest())

		assert.ErrorIs(t, err, accounterrors.ErrAccountAlreadyExists)
	})

	t.Run("invalid salary", func(t *testing.T) {
		for _, salary := range []string{
			"not-a-number",
			"-100.00",
			"100.005",
			"100000000.00",
		} {
			deps := setupServiceTest(t)

			req := validCreateRequest()
			req.Salary = salary

			expectTx(t, deps.sqlMock, false)

			deps.repo.EXPECT().
				WithTx(gomock.Any()).
				Return(deps.repo)

			deps.repo.EXPECT().
				ExistsBy(ctx, gomock.Any()).
				Return(false, nil)

			_, err := deps.service.Create(ctx, req)

			assert.ErrorIs(t, err, accounterrors.ErrInvalidSalary, "salary %q", salary)
			deps.db.Close()
		}
	})

	t.Run("largest representable salary is accepted", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.Salary = "99999999.99"

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			ExistsBy(ctx, gomock.Any()).
			Return(false, nil)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(nil)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "99999999.99", resp.Salary)
	})

	t.Run("missing employee maps foreign key violation", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			ExistsBy(ctx, gomock.Any()).
			Return(false, nil)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23503"})

		_, err := deps.service.Create(ctx, validCreateRequest())

		assert.ErrorIs(t, err, accounterrors.ErrEmployeeNotFound)
	})
}

func TestAccountService_IsDuplicate(t *testing.T) {
	ctx := context.Background()

	t.Run("matches on employee and period", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			ExistsBy(ctx, map[string]string{"employee": "3", "month": "3", "year": "2026"}).
			Return(true, nil)

		exists, err := deps.service.IsDuplicate(ctx, validCreateRequest())
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("absent period is not a duplicate", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			ExistsBy(ctx, gomock.Any()).
			Return(false, nil)

		exists, err := deps.service.IsDuplicate(ctx, validCreateRequest())
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestAccountService_Find(t *testing.T) {
	ctx := context.Background()

	t.Run("renders salary with two decimal places", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			Find(ctx, map[string]string{"year": "2026"}).
			Return([]account.Account{
				{ID: 21, EmployeeID: 3, Month: 3, Year: 2026, Salary: decimal.RequireFromString("5200.5")},
			}, nil)

		res, err := deps.service.Find(ctx, map[string]string{"year": "2026"})

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "5200.50", res[0].Salary)
	})
}

func TestAccountService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("full replacement", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := account.UpdateAccountRequest{
			Employee: 4,
			Month:    4,
			Year:     2026,
			Salary:   "5400.00",
		}

		existing := &account.Account{
			ID:         21,
			EmployeeID: 3,
			Month:      3,
			Year:       2026,
			Salary:     decimal.RequireFromString("5200.50"),
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, uint(21)).
			Return(existing, nil)

		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, row *account.Account) error {
				assert.Equal(t, uint(4), row.EmployeeID)
				assert.Equal(t, 4, row.Month)
				assert.True(t, row.Salary.Equal(decimal.RequireFromString("5400")))
				return nil
			})

		resp, err := deps.service.Update(ctx, 21, req)

		assert.NoError(t, err)
		assert.Equal(t, "5400.00", resp.Salary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid salary fails before the store is touched", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, 21, account.UpdateAccountRequest{
			Employee: 4,
			Month:    4,
			Year:     2026,
			Salary:   "4.999",
		})

		assert.ErrorIs(t, err, accounterrors.ErrInvalidSalary)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, uint(404)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, 404, account.UpdateAccountRequest{
			Employee: 4,
			Month:    4,
			Year:     2026,
			Salary:   "5400.00",
		})

		assert.ErrorIs(t, err, accounterrors.ErrAccountNotFound)
	})
}

func TestAccountService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, uint(21)).
			Return(&account.Account{ID: 21}, nil)

		deps.repo.EXPECT().
			Delete(ctx, uint(21)).
			Return(nil)

		err := deps.service.Delete(ctx, 21)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, uint(404)).
			Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, 404)

		assert.ErrorIs(t, err, accounterrors.ErrAccountNotFound)
	})
}
