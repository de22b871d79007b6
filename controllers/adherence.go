// controllers/adherence.go
package controllers

import (
	"net/http"
	"time"

	"caregiver-backend/config"
	"caregiver-backend/models"
	"caregiver-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateAdherenceLogInput defines the expected JSON structure
type CreateAdherenceLogInput struct {
	ScheduleID   *uuid.UUID `json:"schedule_id"`
	MedicationID uuid.UUID  `json:"medication_id" binding:"required"`
	Status       string     `json:"status" binding:"required,oneof=taken skipped missed"`
	Notes        string     `json:"notes"`
	TakenAt      *time.Time `json:"taken_at"`
}

// CreateAdherenceLog records whether a scheduled dose was taken
func CreateAdherenceLog(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return
	}

	var input CreateAdherenceLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	log := models.AdherenceLog{
		ScheduleID:   input.ScheduleID,
		MedicationID: input.MedicationID,
		UserID:       &userID,
		Status:       input.Status,
		Notes:        input.Notes,
	}
	if input.TakenAt != nil {
		log.TakenAt = *input.TakenAt
	}

	if err := config.DB.Create(&log).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create adherence log")
		return
	}

	c.JSON(http.StatusCreated, log)
}

// GetAdherenceLogs retrieves adherence logs filtered by schedule or date
func GetAdherenceLogs(c *gin.Context) {
	query := config.DB.Model(&models.AdherenceLog{}).Preload("Medication")

	if scheduleID := c.Query("schedule_id"); scheduleID != "" {
		scheduleUUID, err := uuid.Parse(scheduleID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid schedule ID format")
			return
		}
		query = query.Where("schedule_id = ?", scheduleUUID)
	}

	if date := c.Query("date"); date != "" {
		dayStart, err := time.Parse("2006-01-02", date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		query = query.Where("taken_at >= ? AND taken_at < ?", dayStart, dayStart.AddDate(0, 0, 1))
	}

	var logs []models.AdherenceLog
	if err := query.Order("taken_at DESC").Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve adherence logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}
