package pricing

import (
	"majestic/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupPricingRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - the front-end reads tiers when rendering seat maps
	public := router.Group("/pricing")
	{
		public.GET("", controller.ListPricing)
		public.GET("/:id", controller.GetPricing)
	}

	// Admin routes
	admin := router.Group("/admin/pricing")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreatePricing)
		admin.PUT("/:id", controller.UpdatePricing)
		admin.DELETE("/:id", controller.DeletePricing)
	}
}
