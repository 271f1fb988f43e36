package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/devops-squad/wishlists/controllers"
	"github.com/devops-squad/wishlists/utils"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(wc *controllers.WishlistController, ic *controllers.WishlistItemController) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	router.GET("/", controllers.Index)
	router.GET("/health", controllers.Health)

	wishlists := router.Group("/wishlists")
	{
		wishlists.GET("", wc.List)
		wishlists.POST("", utils.RequireJSON(), wc.Create)
		wishlists.GET("/:id", wc.Get)
		wishlists.PUT("/:id", utils.RequireJSON(), wc.Update)
		wishlists.DELETE("/:id", wc.Delete)
		wishlists.PUT("/:id/publish", wc.Publish)
		wishlists.PUT("/:id/unpublish", wc.Unpublish)

		items := wishlists.Group("/:id/items")
		{
			items.GET("", ic.List)
			items.POST("", utils.RequireJSON(), ic.Create)
			items.GET("/:item_id", ic.Get)
			items.PUT("/:item_id", utils.RequireJSON(), ic.Update)
			items.DELETE("/:item_id", ic.Delete)
		}
	}

	return router
}
