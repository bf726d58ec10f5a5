package user

import (
	"github.com/gin-gonic/gin"

	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("", h.Overview)
		users.POST("/create", h.Create)
		users.GET("/all", h.GetAll)
		users.GET("/options", h.Options)
		users.POST("/update/:id", h.Update)
		users.DELETE("/:id/delete", h.Delete)
		users.GET("/hello", h.Hello)

		// Mutations answer trailing-slash form directly instead of a 307.
		users.POST("/create/", h.Create)
		users.POST("/update/:id/", h.Update)
		users.DELETE("/:id/delete/", h.Delete)
	}
}
