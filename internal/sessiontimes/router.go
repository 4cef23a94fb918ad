package sessiontimes

import (
	"majestic/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSessionTimeRoutes(router *gin.RouterGroup, controller Controller) {
	public := router.Group("/session-times")
	{
		public.GET("", controller.ListSessionTimes)
		public.GET("/:id", controller.GetSessionTime)
	}

	admin := router.Group("/admin/session-times")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateSessionTime)
		admin.PUT("/:id", controller.UpdateSessionTime)
		admin.DELETE("/:id", controller.DeleteSessionTime)
	}
}
