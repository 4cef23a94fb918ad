package sessions

import (
	"majestic/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSessionRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes
	public := router.Group("/sessions")
	{
		public.GET("", controller.ListSessions)
		public.GET("/:id", controller.GetSession)
		public.GET("/by-date/:date", controller.GetSessionsByDay)
		public.GET("/program", controller.GetProgram)
		public.GET("/event/:eventId", controller.GetSessionsByEvent)
	}

	// Staff routes - ticket office and door staff move seat inventory
	staff := router.Group("/staff/sessions")
	staff.Use(middleware.JWTAuth(), middleware.RequireStaff())
	{
		staff.POST("/:id/sell", controller.SellTickets)
		staff.POST("/:id/release", controller.ReleaseTickets)
	}

	// Admin routes
	admin := router.Group("/admin/sessions")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateSession)
		admin.PUT("/:id", controller.UpdateSession)
		admin.DELETE("/:id", controller.DeleteSession)
	}
}
