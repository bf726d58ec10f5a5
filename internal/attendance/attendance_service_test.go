package attendance_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/attendance"
	attendanceerrors "github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/attendance/errors"
	resourceMock "github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/resource/mock"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service attendance.Service
	repo    *resourceMock.MockRepository[attendance.Attendance]
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := resourceMock.NewMockRepository[attendance.Attendance](ctrl)

	svc := attendance.NewService(db, repo)

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

func validCreateRequest() attendance.CreateAttendanceRequest {
	return attendance.CreateAttendanceRequest{
		Employee:    3,
		CheckInTime: "2026-03-02T08:58:00Z",
		Date:        "2026-03-02",
	}
}

func TestAttendanceService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		checkOut := "2026-03-02T17:05:00Z"
		req := validCreateRequest()
		req.CheckOutTime = &checkOut

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			ExistsBy(ctx, map[string]string{"employee": "3", "date": "2026-03-02"}).
			Return(false, nil)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, row *attendance.Attendance) error {
				assert.Equal(t, uint(3), row.EmployeeID)
				assert.Equal(t, "2026-03-02", row.Date.Format("2006-01-02"))
				assert.NotNil(t, row.CheckOutTime)
				row.ID = 11
				return nil
			})

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, uint(11), resp.ID)
		assert.Equal(t, "2026-03-02T08:58:00Z", resp.CheckInTime)
		assert.NotNil(t, resp.CheckOutTime)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate employee and date", func(t *testing.T) {
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

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceAlreadyExists)
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		checkOut := "2026-03-02T07:00:00Z"
		req := validCreateRequest()
		req.CheckOutTime = &checkOut

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			ExistsBy(ctx, gomock.Any()).
			Return(false, nil)

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, attendanceerrors.ErrCheckOutBeforeCheckIn)
	})

	t.Run("malformed check-in timestamp", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.CheckInTime = "08:58"

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			ExistsBy(ctx, gomock.Any()).
			Return(false, nil)

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidTimestamp)
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

		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
	})
}

func TestAttendanceService_IsDuplicate(t *testing.T) {
	ctx := context.Background()

	t.Run("matches on employee and date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			ExistsBy(ctx, map[string]string{"employee": "3", "date": "2026-03-02"}).
			Return(true, nil)

		exists, err := deps.service.IsDuplicate(ctx, validCreateRequest())
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("absent record is not a duplicate", func(t *testing.T) {
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

func TestAttendanceService_Find(t *testing.T) {
	ctx := context.Background()

	t.Run("maps rows to responses", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		in := time.Date(2026, 3, 2, 8, 58, 0, 0, time.UTC)
		day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

		deps.repo.EXPECT().
			Find(ctx, map[string]string{"employee": "3"}).
			Return([]attendance.Attendance{
				{ID: 11, EmployeeID: 3, CheckInTime: in, Date: day},
			}, nil)

		res, err := deps.service.Find(ctx, map[string]string{"employee": "3"})

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "2026-03-02", res[0].Date)
		assert.Nil(t, res[0].CheckOutTime)
	})
}

func TestAttendanceService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("full replacement", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		checkOut := "2026-03-02T18:00:00Z"
		req := attendance.UpdateAttendanceRequest{
			Employee:     4,
			CheckInTime:  "2026-03-02T09:10:00Z",
			CheckOutTime: &checkOut,
			Date:         "2026-03-02",
		}

		existing := &attendance.Attendance{
			ID:          11,
			EmployeeID:  3,
			CheckInTime: time.Date(2026, 3, 2, 8, 58, 0, 0, time.UTC),
			Date:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, uint(11)).
			Return(existing, nil)

		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, row *attendance.Attendance) error {
				assert.Equal(t, uint(4), row.EmployeeID)
				assert.NotNil(t, row.CheckOutTime)
				return nil
			})

		resp, err := deps.service.Update(ctx, 11, req)

		assert.NoError(t, err)
		assert.Equal(t, uint(4), resp.Employee)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("validation happens before the record is fetched", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := attendance.UpdateAttendanceRequest{
			Employee:    4,
			CheckInTime: "not-a-timestamp",
			Date:        "2026-03-02",
		}

		_, err := deps.service.Update(ctx, 11, req)

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidTimestamp)
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

		_, err := deps.service.Update(ctx, 404, attendance.UpdateAttendanceRequest{
			Employee:    4,
			CheckInTime: "2026-03-02T09:10:00Z",
			Date:        "2026-03-02",
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
	})
}

func TestAttendanceService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, uint(11)).
			Return(&attendance.Attendance{ID: 11}, nil)

		deps.repo.EXPECT().
			Delete(ctx, uint(11)).
			Return(nil)

		err := deps.service.Delete(ctx, 11)

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

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
	})
}
