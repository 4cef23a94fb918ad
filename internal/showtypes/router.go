package showtypes

import (
	"majestic/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupShowTypeRoutes(router *gin.RouterGroup, controller Controller) {
	public := router.Group("/show-types")
	{
		public.GET("", controller.ListShowTypes)
		public.GET("/:id", controller.GetShowType)
	}

	admin := router.Group("/admin/show-types")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateShowType)
		admin.PUT("/:id", controller.UpdateShowType)
		admin.DELETE("/:id", controller.DeleteShowType)
	}
}
