package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/account"
	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/attendance"
	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/messaging/kafka"
	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/middleware"
	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/user"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	accountRepo := account.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	userService := user.NewServiceWithOutbox(db, userRepo, outboxRepo, rdb)
	attendanceService := attendance.NewService(db, attendanceRepo)
	accountService := account.NewService(db, accountRepo)

	// --- Handlers ---
	userHandler := user.NewHandler(userService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	accountHandler := account.NewHandler(accountService)

	// --- Routes ---
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	api.Use(middleware.RateLimitByIP(rate.Limit(20), 40))
	{
		user.RegisterRoutes(api, userHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		account.RegisterRoutes(api, accountHandler)
	}

	return nil
}
