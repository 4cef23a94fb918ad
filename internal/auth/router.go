package auth

import (
	"majestic/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(router *gin.RouterGroup, controller Controller) {
	public := router.Group("/auth")
	{
		public.POST("/register", controller.Register)
		public.POST("/login", controller.Login)
		public.POST("/refresh", controller.RefreshToken)
	}

	protected := router.Group("/auth")
	protected.Use(middleware.JWTAuth())
	{
		protected.GET("/me", controller.Me)
		protected.POST("/change-password", controller.ChangePassword)
	}

	admin := router.Group("/admin/staff")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateStaff)
	}
}
