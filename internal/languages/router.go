package languages

import (
	"majestic/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupLanguageRoutes(router *gin.RouterGroup, controller Controller) {
	public := router.Group("/languages")
	{
		public.GET("", controller.ListLanguages)
		public.GET("/:id", controller.GetLanguage)
	}

	admin := router.Group("/admin/languages")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateLanguage)
		admin.PUT("/:id", controller.UpdateLanguage)
		admin.DELETE("/:id", controller.DeleteLanguage)
	}
}
