package uploads

import (
	"majestic/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupUploadRoutes(router *gin.RouterGroup, controller Controller) {
	admin := router.Group("/admin/uploads")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.UploadImage)
	}
}
