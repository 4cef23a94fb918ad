package affiche

import (
	"majestic/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAfficheRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes
	public := router.Group("/affiche")
	{
		public.GET("", controller.ListAffiches)
		public.GET("/:id", controller.GetAffiche)
	}

	// Admin routes
	admin := router.Group("/admin/affiche")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateAffiche)
		admin.PUT("/:id", controller.UpdateAffiche)
		admin.DELETE("/:id", controller.DeleteAffiche)
	}
}
