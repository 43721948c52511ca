package routes

import (
	"github.com/mark-blue-evans/purescan/controllers"
	"github.com/mark-blue-evans/purescan/middlewares"
	"github.com/mark-blue-evans/purescan/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub, ps *services.PushService) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Everything else requires a valid token
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/scan", controllers.ScanProduct)
		api.GET("/products/search", controllers.SearchProducts)

		api.GET("/history", controllers.GetHistory)
		api.DELETE("/history/:id", controllers.DeleteScan)

		api.GET("/grocery", controllers.GetGroceryList)
		api.POST("/grocery", controllers.AddGroceryItem)
		api.DELETE("/grocery/:id", controllers.DeleteGroceryItem)

		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)

		api.POST("/photos", controllers.UploadProductPhoto)

		dc := controllers.NewDeviceController(ps)
		api.POST("/devices", dc.Register)

		rc := controllers.NewRealtimeController(rt)
		api.GET("/ws", rc.FeedWS)
	}

	return r
}
