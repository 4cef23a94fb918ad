package rooms

import (
	"majestic/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoomRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - the seat picker needs the layout
	public := router.Group("/rooms")
	{
		public.GET("", controller.ListRooms)
		public.GET("/:id", controller.GetRoom)
	}

	admin := router.Group("/admin/rooms")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateRoom)
		admin.PUT("/:id", controller.UpdateRoom)
		admin.DELETE("/:id", controller.DeleteRoom)
	}
}
