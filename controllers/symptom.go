// controllers/symptom.go
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

// CreateSymptomLogInput defines the expected JSON structure
type CreateSymptomLogInput struct {
	PatientID  uuid.UUID  `json:"patient_id" binding:"required"`
	Symptom    string     `json:"symptom" binding:"required"`
	Severity   int        `json:"severity" binding:"required,min=1,max=5"`
	Notes      string     `json:"notes"`
	ObservedAt *time.Time `json:"observed_at"`
}

// CreateSymptomLog records an observed symptom for a patient
func CreateSymptomLog(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return
	}

	var input CreateSymptomLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	log := models.SymptomLog{
		PatientID: input.PatientID,
		UserID:    &userID,
		Symptom:   input.Symptom,
		Severity:  input.Severity,
		Notes:     input.Notes,
	}
	if input.ObservedAt != nil {
		log.ObservedAt = *input.ObservedAt
	}

	if err := config.DB.Create(&log).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create symptom log")
		return
	}

	c.JSON(http.StatusCreated, log)
}

// GetSymptomLogs retrieves symptom logs filtered by patient or date
func GetSymptomLogs(c *gin.Context) {
	query := config.DB.Model(&models.SymptomLog{})

	if patientID := c.Query("patient_id"); patientID != "" {
		patientUUID, err := uuid.Parse(patientID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid patient ID format")
			return
		}
		query = query.Where("patient_id = ?", patientUUID)
	}

	if date := c.Query("date"); date != "" {
		dayStart, err := time.Parse("2006-01-02", date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		query = query.Where("observed_at >= ? AND observed_at < ?", dayStart, dayStart.AddDate(0, 0, 1))
	}

	var logs []models.SymptomLog
	if err := query.Order("observed_at DESC").Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve symptom logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}
