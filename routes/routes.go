package routes

import (
	"os"
	"strings"

	"caregiver-backend/config"
	"caregiver-backend/controllers"
	"caregiver-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "CareGiver API", "version": "1.0.0", "status": "running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Patient routes
		patients := api.Group("/patients")
		{
			patients.POST("", controllers.CreatePatient)
			patients.GET("", controllers.GetPatients)
			patients.GET("/:id", controllers.GetPatient)
			patients.PUT("/:id", controllers.UpdatePatient)
		}

		// Medication routes
		medications := api.Group("/medications")
		{
			medications.POST("", controllers.CreateMedication)
			medications.GET("", controllers.GetMedications)
			medications.PUT("/:id", controllers.UpdateMedication)
			medications.DELETE("/:id", controllers.DeleteMedication)
		}

		// Reminder (medication schedule) routes
		reminders := api.Group("/reminders")
		{
			reminders.POST("", controllers.CreateReminder)
			reminders.GET("", controllers.GetReminders)
			reminders.GET("/:id", controllers.GetReminder)
			reminders.PUT("/:id", controllers.UpdateReminder)
			reminders.DELETE("/:id", controllers.DeleteReminder)
		}

		// Check-in routes
		checkins := api.Group("/checkins")
		{
			checkins.POST("", controllers.CreateCheckIn)
			checkins.GET("", controllers.GetCheckIns)
			checkins.GET("/:id", controllers.GetCheckIn)
			checkins.PUT("/:id", controllers.UpdateCheckIn)
			checkins.DELETE("/:id", controllers.DeleteCheckIn)
		}

		// Adherence log routes
		adherence := api.Group("/adherence")
		{
			adherence.POST("", controllers.CreateAdherenceLog)
			adherence.GET("", controllers.GetAdherenceLogs)
		}

		// Symptom log routes
		symptoms := api.Group("/symptoms")
		{
			symptoms.POST("", controllers.CreateSymptomLog)
			symptoms.GET("", controllers.GetSymptomLogs)
		}

		// Push subscription routes
		subscriptions := api.Group("/subscriptions")
		{
			subscriptions.POST("", controllers.Subscribe)
			subscriptions.DELETE("", controllers.Unsubscribe)
			subscriptions.GET("/vapid-public-key", controllers.GetVAPIDPublicKey)
			subscriptions.POST("/test", controllers.TestPush)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Legacy single-patient routes
		api.GET("/patient", controllers.GetPatientInfo)
		api.PUT("/patient", controllers.UpdatePatientInfo)
	}

	return r
}
