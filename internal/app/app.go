package app

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/account"
	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/attendance"
	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/messaging/kafka"
	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/shared/connection"
	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/user"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	// Users first so the attendance/account FKs and their cascade rules land.
	if err := gormDB.AutoMigrate(&user.User{}, &attendance.Attendance{}, &account.Account{}); err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	if err := kafka.MigrateOutboxTable(context.Background(), sqlDB); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		zap.L().Warn("redis unavailable, user options cache disabled", zap.Error(err))
		redisClient = nil
	}

	return registerModules(router, sqlDB, gormDB, redisClient)
}
