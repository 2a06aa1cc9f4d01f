package routes

import (
	"miniclip/controllers"
	"miniclip/middleware"
	"miniclip/services/catalog"
	"miniclip/utils"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures every route of the app around the injected
// moderation service.
func SetupRoutes(router *gin.Engine, moderation *catalog.Moderation) {
	router.Use(utils.Logger())

	router.Static("/screenshots", "./static/screenshots")
	router.StaticFile("/styles.css", "./static/styles.css")

	router.GET("/", controllers.Home(moderation))
	router.GET("/search", controllers.Search(moderation))
	router.GET("/game/:id", controllers.GameDetail(moderation))

	router.GET("/submit", controllers.SubmitForm())
	router.POST("/submit", controllers.Submit(moderation))
	router.GET("/submit/success", controllers.SubmitSuccess())

	router.GET("/admin/login", controllers.LoginForm())
	router.POST("/admin/login", controllers.Login())

	// Every admin route sits behind the session check, the mutation POSTs
	// included, so an unauthenticated request never reaches a store.
	admin := router.Group("/admin")
	admin.Use(middleware.AuthRequired)
	{
		admin.GET("", controllers.Dashboard(moderation))
		admin.POST("/approve", controllers.Approve(moderation))
		admin.POST("/reject", controllers.Reject(moderation))
		admin.POST("/delete", controllers.Delete(moderation))
		admin.POST("/logout", controllers.Logout())
	}
}
