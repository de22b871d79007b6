package controllers

import (
	"errors"
	"net/http"
	"time"

	"caregiver-backend/config"
	"caregiver-backend/models"
	"caregiver-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateCheckInInput defines the expected JSON structure
type CreateCheckInInput struct {
	PatientID uuid.UUID    `json:"patient_id" binding:"required"`
	Category  string       `json:"category" binding:"required"`
	Data      models.JSONB `json:"data" binding:"required"`
	Timestamp *time.Time   `json:"timestamp"`
}

// UpdateCheckInInput defines the expected JSON structure
type UpdateCheckInInput struct {
	Category *string       `json:"category"`
	Data     *models.JSONB `json:"data"`
}

// CreateCheckIn records a care check-in for a patient
func CreateCheckIn(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return
	}

	var input CreateCheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	checkin := models.CheckIn{
		UserID:    &userID,
		PatientID: input.PatientID,
		Category:  input.Category,
		Data:      input.Data,
	}
	if input.Timestamp != nil {
		checkin.Timestamp = *input.Timestamp
	}

	if err := config.DB.Create(&checkin).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create check-in")
		return
	}

	c.JSON(http.StatusCreated, checkin)
}

// GetCheckIns retrieves check-ins filtered by date, category, user or patient
func GetCheckIns(c *gin.Context) {
	query := config.DB.Model(&models.CheckIn{}).Preload("User")

	if date := c.Query("date"); date != "" {
		dayStart, err := time.Parse("2006-01-02", date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		query = query.Where("timestamp >= ? AND timestamp < ?", dayStart, dayStart.AddDate(0, 0, 1))
	}

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	if userID := c.Query("user_id"); userID != "" {
		userUUID, err := uuid.Parse(userID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
			return
		}
		query = query.Where("user_id = ?", userUUID)
	}

	if patientID := c.Query("patient_id"); patientID != "" {
		patientUUID, err := uuid.Parse(patientID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid patient ID format")
			return
		}
		query = query.Where("patient_id = ?", patientUUID)
	}

	var checkins []models.CheckIn
	if err := query.Order("timestamp DESC").Find(&checkins).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve check-ins")
		return
	}

	c.JSON(http.StatusOK, checkins)
}

// GetCheckIn retrieves a specific check-in by ID
func GetCheckIn(c *gin.Context) {
	checkinUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid check-in ID format")
		return
	}

	var checkin models.CheckIn
	if err := config.DB.Preload("User").First(&checkin, "id = ?", checkinUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Check-in not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, checkin)
}

// UpdateCheckIn updates an existing check-in
func UpdateCheckIn(c *gin.Context) {
	checkinUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid check-in ID format")
		return
	}

	var input UpdateCheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var checkin models.CheckIn
	if err := config.DB.First(&checkin, "id = ?", checkinUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Check-in not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Category != nil {
		checkin.Category = *input.Category
	}
	if input.Data != nil {
		checkin.Data = *input.Data
	}

	if err := config.DB.Save(&checkin).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update check-in")
		return
	}

	c.JSON(http.StatusOK, checkin)
}

// DeleteCheckIn deletes a check-in
func DeleteCheckIn(c *gin.Context) {
	checkinUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid check-in ID format")
		return
	}

	result := config.DB.Where("id = ?", checkinUUID).Delete(&models.CheckIn{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete check-in")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Check-in not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Check-in deleted successfully"})
}
