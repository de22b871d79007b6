package main

import (
	"fmt"
	"log"
	"os"

	"caregiver-backend/config"
	"caregiver-backend/controllers"
	"caregiver-backend/models"
	"caregiver-backend/routes"
	"caregiver-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.InitLogger()
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Medication{},
		&models.MedicationSchedule{},
		&models.PushSubscription{},
		&models.CheckIn{},
		&models.AdherenceLog{},
		&models.SymptomLog{},
		&models.PatientInfo{},
	)
}

func main() {
	defer config.Logger.Sync()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	reminderSvc := services.NewReminderService(
		services.NewGormScheduleStore(config.DB),
		services.NewWebPushSender(),
		config.Logger,
	)
	reminderSvc.StartScheduler()
	defer reminderSvc.Stop()

	controllers.ReminderSvc = reminderSvc

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
