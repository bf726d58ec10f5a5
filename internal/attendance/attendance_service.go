package attendance

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"go.uber.org/zap"

	attendanceerrors "github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/attendance/errors"
	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/shared/contextutil"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	IsDuplicate(ctx context.Context, req CreateAttendanceRequest) (bool, error)
	Find(ctx context.Context, criteria map[string]string) ([]AttendanceResponse, error)
	Update(ctx context.Context, id uint, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create attendance requested",
		zap.String("actor", contextutil.GetUserID(ctx)),
		zap.Uint("employee", req.Employee),
		zap.String("date", req.Date),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsBy(ctx, identityCriteria(req))
	if err != nil {
		log.Error("create attendance uniqueness check failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if exists {
		log.Warn("create attendance duplicate",
			zap.Uint("employee", req.Employee),
			zap.String("date", req.Date),
		)
		return AttendanceResponse{}, attendanceerrors.ErrAttendanceAlreadyExists
	}

	row, err := buildRecord(req.Employee, req.CheckInTime, req.CheckOutTime, req.Date)
	if err != nil {
		return AttendanceResponse{}, err
	}

	if err := qtx.Create(ctx, row); err != nil {
		log.Error("create attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("create attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	log.Info("create attendance success", zap.Uint("attendance_id", row.ID))
	return mapToResponse(*row), nil
}

// IsDuplicate checks (employee, date) outside any transaction; the duplicate
// verdict is reported ahead of field validation.
func (s *service) IsDuplicate(ctx context.Context, req CreateAttendanceRequest) (bool, error) {
	exists, err := s.repo.ExistsBy(ctx, identityCriteria(req))
	if err != nil {
		return false, mapRepositoryError(err)
	}
	return exists, nil
}

func (s *service) Find(ctx context.Context, criteria map[string]string) ([]AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("find attendance requested", zap.Int("criteria", len(criteria)))
	rows, err := s.repo.Find(ctx, criteria)
	if err != nil {
		log.Error("find attendance failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update attendance requested", zap.Uint("attendance_id", id))

	replacement, err := buildRecord(req.Employee, req.CheckInTime, req.CheckOutTime, req.Date)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		log.Warn("update attendance fetch existing failed", zap.Uint("attendance_id", id), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	row.EmployeeID = replacement.EmployeeID
	row.CheckInTime = replacement.CheckInTime
	row.CheckOutTime = replacement.CheckOutTime
	row.Date = replacement.Date

	if err := qtx.Update(ctx, row); err != nil {
		log.Error("update attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	log.Info("update attendance success", zap.Uint("attendance_id", id))
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete attendance requested", zap.Uint("attendance_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete attendance begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		log.Warn("delete attendance fetch existing failed", zap.Uint("attendance_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		log.Error("delete attendance failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("delete attendance commit failed", zap.Error(err))
		return err
	}

	log.Info("delete attendance success", zap.Uint("attendance_id", id))
	return nil
}

func identityCriteria(req CreateAttendanceRequest) map[string]string {
	return map[string]string{
		"employee": strconv.FormatUint(uint64(req.Employee), 10),
		"date":     req.Date,
	}
}

func buildRecord(employee uint, checkIn string, checkOut *string, date string) (*Attendance, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDateFormat
	}
	in, err := time.Parse(time.RFC3339, checkIn)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidTimestamp
	}

	var out *time.Time
	if checkOut != nil && *checkOut != "" {
		t, err := time.Parse(time.RFC3339, *checkOut)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidTimestamp
		}
		if t.Before(in) {
			return nil, attendanceerrors.ErrCheckOutBeforeCheckIn
		}
		out = &t
	}

	return &Attendance{
		EmployeeID:   employee,
		CheckInTime:  in,
		CheckOutTime: out,
		Date:         day,
	}, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:          a.ID,
		Employee:    a.EmployeeID,
		CheckInTime: a.CheckInTime.Format(time.RFC3339),
		Date:        a.Date.Format(dateLayout),
	}
	if a.CheckOutTime != nil {
		v := a.CheckOutTime.Format(time.RFC3339)
		resp.CheckOutTime = &v
	}
	return resp
}
