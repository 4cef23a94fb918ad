package homehero

import (
	"majestic/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupHeroRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes
	public := router.Group("/home-hero")
	{
		public.GET("", controller.ListHeroes)
		public.GET("/:id", controller.GetHero)
	}

	// Admin routes
	admin := router.Group("/admin/home-hero")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateHero)
		admin.PUT("/:id", controller.UpdateHero)
		admin.PUT("/:id/order", controller.ReorderHero)
		admin.DELETE("/:id", controller.DeleteHero)
	}
}
