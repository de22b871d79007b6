package controllers

import (
	"net/http"
	"time"

	"caregiver-backend/config"
	"caregiver-backend/models"
	"caregiver-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview returns today's care activity at a glance
func GetDashboardOverview(c *gin.Context) {
	dayStart := time.Now().UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var checkinsToday int64
	if err := config.DB.Model(&models.CheckIn{}).
		Where("timestamp >= ? AND timestamp < ?", dayStart, dayEnd).
		Count(&checkinsToday).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count check-ins")
		return
	}

	var activeMedications int64
	if err := config.DB.Model(&models.Medication{}).
		Where("active = ?", true).
		Count(&activeMedications).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count medications")
		return
	}

	var activeSchedules int64
	if err := config.DB.Model(&models.MedicationSchedule{}).
		Where("active = ?", true).
		Count(&activeSchedules).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count schedules")
		return
	}

	var dosesTakenToday int64
	if err := config.DB.Model(&models.AdherenceLog{}).
		Where("status = ? AND taken_at >= ? AND taken_at < ?", "taken", dayStart, dayEnd).
		Count(&dosesTakenToday).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count adherence logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checkins_today":     checkinsToday,
		"active_medications": activeMedications,
		"active_schedules":   activeSchedules,
		"doses_taken_today":  dosesTakenToday,
	})
}
