package controllers

import (
	"errors"
	"net/http"

	"caregiver-backend/config"
	"caregiver-backend/models"
	"caregiver-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdatePatientInfoInput defines the expected JSON structure
type UpdatePatientInfoInput struct {
	Name             *string `json:"name"`
	Age              *int    `json:"age"`
	Allergies        *string `json:"allergies"`
	EmergencyContact *string `json:"emergency_contact"`
	Doctor           *string `json:"doctor"`
}

// GetPatientInfo returns the legacy single-patient summary, creating a
// default row on first access as older frontend builds expect
func GetPatientInfo(c *gin.Context) {
	var info models.PatientInfo
	err := config.DB.First(&info).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		age := 75
		info = models.PatientInfo{
			Name:      "Patient Name",
			Age:       &age,
			Allergies: "None",
		}
		if err := config.DB.Create(&info).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create patient info")
			return
		}
	} else if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, info)
}

// UpdatePatientInfo updates the legacy single-patient summary
func UpdatePatientInfo(c *gin.Context) {
	var input UpdatePatientInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var info models.PatientInfo
	err := config.DB.First(&info).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if input.Name != nil {
		info.Name = *input.Name
	}
	if input.Age != nil {
		info.Age = input.Age
	}
	if input.Allergies != nil {
		info.Allergies = *input.Allergies
	}
	if input.EmergencyContact != nil {
		info.EmergencyContact = *input.EmergencyContact
	}
	if input.Doctor != nil {
		info.Doctor = *input.Doctor
	}

	if err := config.DB.Save(&info).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update patient info")
		return
	}

	c.JSON(http.StatusOK, info)
}
