package account

import (
	"github.com/gin-gonic/gin"

	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	accounts := r.Group("/accounts")
	accounts.Use(middleware.AuthMiddleware())
	{
		accounts.GET("", h.Overview)
		accounts.POST("/create", h.Create)
		accounts.GET("/all", h.GetAll)
		accounts.POST("/update/:id", h.Update)
		accounts.DELETE("/:id/delete", h.Delete)
		accounts.GET("/hello", h.Hello)

		// Mutations answer trailing-slash form directly instead of a 307.
		accounts.POST("/create/", h.Create)
		accounts.POST("/update/:id/", h.Update)
		accounts.DELETE("/:id/delete/", h.Delete)
	}
}
