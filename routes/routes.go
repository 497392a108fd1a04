package routes

import (
	"github.com/ferbta/babyverse/controllers"
	"github.com/ferbta/babyverse/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Cron endpoint guards itself with CRON_SECRET, not a user session
	r.GET("/cron/check-reminders", controllers.CheckReminders)

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		user := api.Group("/user")
		{
			user.GET("/settings", controllers.GetSettings)
			user.PATCH("/settings", controllers.UpdateSettings)
		}

		children := api.Group("/children")
		{
			children.GET("", controllers.ListChildren)
			children.POST("", controllers.CreateChild)
			children.GET("/:id", controllers.GetChild)
			children.PATCH("/:id", controllers.UpdateChild)
			children.DELETE("/:id", controllers.DeleteChild)

			children.GET("/:id/growth", controllers.ListGrowthRecords)
			children.POST("/:id/growth", controllers.CreateGrowthRecord)

			children.GET("/:id/milestones", controllers.ListMilestones)
			children.POST("/:id/milestones", controllers.CreateMilestone)
			children.PATCH("/:id/milestones/:milestoneId", controllers.UpdateMilestone)
			children.DELETE("/:id/milestones/:milestoneId", controllers.DeleteMilestone)

			children.GET("/:id/nutrition", controllers.ListFeedingLogs)
			children.POST("/:id/nutrition", controllers.CreateFeedingLog)

			children.GET("/:id/media", controllers.ListMedia)
			children.POST("/:id/media", controllers.UploadMedia)
			children.DELETE("/:id/media/:mediaId", controllers.DeleteMedia)
		}

		vaccinations := api.Group("/vaccinations")
		{
			vaccinations.GET("", controllers.ListVaccinations)
			vaccinations.POST("", controllers.CreateVaccination)
			vaccinations.PATCH("/:id", controllers.UpdateVaccination)
			vaccinations.DELETE("/:id", controllers.DeleteVaccination)
		}

		reminders := api.Group("/reminders")
		{
			reminders.GET("", controllers.ListReminders)
			reminders.POST("", controllers.CreateReminder)
			reminders.PUT("/:id", controllers.UpdateReminder)
			reminders.DELETE("/:id", controllers.DeleteReminder)
			reminders.POST("/sync-vaccinations", controllers.SyncVaccinationReminders)
		}
	}

	return r
}
