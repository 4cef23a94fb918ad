package events

import (
	"majestic/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupEventRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes
	public := router.Group("/events")
	{
		public.GET("", controller.ListEvents)
		public.GET("/:id", controller.GetEvent)
	}

	home := router.Group("/home")
	{
		home.GET("/content", controller.GetHomeContent)
		home.GET("/catalogue", controller.GetCatalogue)
	}

	// Admin routes
	admin := router.Group("/admin/events")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateEvent)
		admin.PUT("/:id", controller.UpdateEvent)
		admin.POST("/:id/poster", controller.UpdatePoster)
		admin.DELETE("/:id", controller.DeleteEvent)
	}
}
