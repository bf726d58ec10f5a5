package attendance

import (
	"github.com/gin-gonic/gin"

	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendances := r.Group("/attendance")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.GET("", h.Overview)
		attendances.POST("/create", h.Create)
		attendances.GET("/all", h.GetAll)
		attendances.POST("/update/:id", h.Update)
		attendances.DELETE("/:id/delete", h.Delete)
		attendances.GET("/hello", h.Hello)

		// Mutations answer trailing-slash form directly instead of a 307.
		attendances.POST("/create/", h.Create)
		attendances.POST("/update/:id/", h.Update)
		attendances.DELETE("/:id/delete/", h.Delete)
	}
}
