package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/PrayerWall/controllers"
	"github.com/PrayerWall/middlewares"
	"github.com/PrayerWall/storage"
)

func SetupRouter(store storage.Storage, metrics *middlewares.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestLogger())
	router.Use(metrics.Middleware())

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	ctl := controllers.New(store)
	api := router.Group("/api")
	{
		// prayer routes
		api.GET("/prayers", ctl.GetPrayers)
		api.POST("/prayers", ctl.CreatePrayer)
		api.POST("/prayers/lift-up", ctl.LiftUpPrayer)
		api.GET("/prayers/:prayer_id/status", ctl.GetPrayerStatus)
		api.GET("/prayers/:prayer_id/comments", ctl.GetPrayerComments)
		api.POST("/prayers/:prayer_id/comments", ctl.CreatePrayerComment)

		// bookmark routes
		api.GET("/bookmarks/prayers", ctl.GetBookmarkedPrayers)
		api.POST("/bookmarks", ctl.CreateBookmark)
		api.DELETE("/bookmarks/:prayer_id", ctl.DeleteBookmark)

		api.GET("/daily-inspiration", ctl.GetDailyInspiration)

		// question routes
		api.GET("/questions", ctl.GetQuestions)
		api.POST("/questions", ctl.CreateQuestion)
		api.GET("/questions/:question_id/comments", ctl.GetQuestionComments)
		api.POST("/questions/:question_id/comments", ctl.CreateQuestionComment)

		api.GET("/health", ctl.Health)
	}

	return router
}
