package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"

	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/events"
	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/messaging/kafka"
	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/shared/contextutil"
	usererrors "github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/user/errors"
)

const OptionsCacheKey = "users:options"

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	IsDuplicate(ctx context.Context, req CreateUserRequest) (bool, error)
	Find(ctx context.Context, criteria map[string]string) ([]UserResponse, error)
	Options(ctx context.Context) ([]UserOption, error)
	Update(ctx context.Context, id uint, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create user requested",
		zap.String("actor", contextutil.GetUserID(ctx)),
		zap.String("username", req.Username),
		zap.String("email", req.Email),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create user begin tx failed", zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// The duplicate check runs before field parsing; duplicate detection
	// and field validation are independent gates.
	exists, err := qtx.ExistsBy(ctx, identityCriteria(req))
	if err != nil {
		log.Error("create user uniqueness check failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}
	if exists {
		log.Warn("create user duplicate identity",
			zap.String("username", req.Username),
			zap.String("email", req.Email),
		)
		return UserResponse{}, usererrors.ErrUserAlreadyExists
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidDateFormat
	}
	joining, err := time.Parse(dateLayout, req.JoiningDate)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidDateFormat
	}
	termination, err := parseOptionalDate(req.TerminationDate)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidDateFormat
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("create user hash password failed", zap.Error(err))
		return UserResponse{}, err
	}

	row := &User{
		Username:             req.Username,
		Email:                req.Email,
		Password:             string(hashed),
		Department:           req.Department,
		Position:             req.Position,
		ManagerID:            req.Manager,
		DateOfBirth:          dob,
		Address:              req.Address,
		PhoneNumber:          req.PhoneNumber,
		EmergencyContactInfo: req.EmergencyContactInfo,
		JoiningDate:          joining,
		TerminationDate:      termination,
		SkillsExpertise:      req.SkillsExpertise,
	}

	if err := qtx.Create(ctx, row); err != nil {
		log.Error("create user persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		if err := s.queueLifecycleEvent(ctx, tx, rid, events.UserCreatedEventType, row); err != nil {
			return UserResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("create user commit failed", zap.Error(err))
		return UserResponse{}, err
	}

	s.invalidateOptionsCache(ctx)
	log.Info("create user success", zap.Uint("user_id", row.ID))

	return mapToResponse(*row), nil
}

// IsDuplicate checks the identity triple outside any transaction. Handlers
// consult it when binding fails on a decoded body, so a duplicate payload
// gets the conflict verdict even when other fields would not validate.
func (s *service) IsDuplicate(ctx context.Context, req CreateUserRequest) (bool, error) {
	exists, err := s.repo.ExistsBy(ctx, identityCriteria(req))
	if err != nil {
		return false, mapRepositoryError(err)
	}
	return exists, nil
}

func (s *service) Find(ctx context.Context, criteria map[string]string) ([]UserResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("find users requested", zap.Int("criteria", len(criteria)))
	rows, err := s.repo.Find(ctx, criteria)
	if err != nil {
		log.Error("find users failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]UserResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Options(ctx context.Context) ([]UserOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var opts []UserOption
			if json.Unmarshal([]byte(cached), &opts) == nil {
				return opts, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		rows, err := s.repo.Find(ctx, nil)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		opts := make([]UserOption, len(rows))
		for i, r := range rows {
			opts[i] = UserOption{
				ID:         r.ID,
				Username:   r.Username,
				Department: r.Department,
				Position:   r.Position,
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(opts); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, jsonData, 1*time.Hour)
			}
		}

		return opts, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]UserOption), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateUserRequest) (UserResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update user requested",
		zap.String("actor", contextutil.GetUserID(ctx)),
		zap.Uint("user_id", id),
	)

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidDateFormat
	}
	joining, err := time.Parse(dateLayout, req.JoiningDate)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidDateFormat
	}
	termination, err := parseOptionalDate(req.TerminationDate)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update user begin tx failed", zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		log.Warn("update user fetch existing failed", zap.Uint("user_id", id), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("update user hash password failed", zap.Error(err))
		return UserResponse{}, err
	}

	// Full replacement, not a merge.
	row.Username = req.Username
	row.Email = req.Email
	row.Password = string(hashed)
	row.Department = req.Department
	row.Position = req.Position
	row.ManagerID = req.Manager
	row.DateOfBirth = dob
	row.Address = req.Address
	row.PhoneNumber = req.PhoneNumber
	row.EmergencyContactInfo = req.EmergencyContactInfo
	row.JoiningDate = joining
	row.TerminationDate = termination
	row.SkillsExpertise = req.SkillsExpertise

	if err := qtx.Update(ctx, row); err != nil {
		log.Error("update user persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update user commit failed", zap.Error(err))
		return UserResponse{}, err
	}

	s.invalidateOptionsCache(ctx)
	log.Info("update user success", zap.Uint("user_id", id))

	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete user requested",
		zap.String("actor", contextutil.GetUserID(ctx)),
		zap.Uint("user_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete user begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		log.Warn("delete user fetch existing failed", zap.Uint("user_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	// Attendance and account rows cascade at the store; dependents that name
	// this user as manager get their reference nulled.
	if err := qtx.Delete(ctx, id); err != nil {
		log.Error("delete user failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if s.outbox != nil {
		if err := s.queueLifecycleEvent(ctx, tx, rid, events.UserDeletedEventType, row); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("delete user commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx)
	log.Info("delete user success", zap.Uint("user_id", id))
	return nil
}

func (s *service) queueLifecycleEvent(
	ctx context.Context,
	tx *sql.Tx,
	rid string,
	eventType string,
	row *User,
) error {
	event := events.UserLifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		UserID:     row.ID,
		Username:   row.Username,
		Department: row.Department,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal lifecycle event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "user",
		AggregateID:   strconv.FormatUint(uint64(row.ID), 10),
		EventType:     eventType,
		Topic:         events.UserLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("queue lifecycle event failed",
			zap.Uint("user_id", row.ID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate user options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

func identityCriteria(req CreateUserRequest) map[string]string {
	return map[string]string{
		"username":     req.Username,
		"email":        req.Email,
		"phone_number": req.PhoneNumber,
	}
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:                   u.ID,
		Username:             u.Username,
		Email:                u.Email,
		Department:           u.Department,
		Position:             u.Position,
		Manager:              u.ManagerID,
		DateOfBirth:          u.DateOfBirth.Format(dateLayout),
		Address:              u.Address,
		PhoneNumber:          u.PhoneNumber,
		EmergencyContactInfo: u.EmergencyContactInfo,
		JoiningDate:          u.JoiningDate.Format(dateLayout),
		SkillsExpertise:      u.SkillsExpertise,
	}
	if u.TerminationDate != nil {
		v := u.TerminationDate.Format(dateLayout)
		resp.TerminationDate = &v
	}
	return resp
}

func parseOptionalDate(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
