package controllers

import (
	"errors"
	"net/http"

	"caregiver-backend/config"
	"caregiver-backend/models"
	"caregiver-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateMedicationInput defines the expected JSON structure
type CreateMedicationInput struct {
	PatientID uuid.UUID `json:"patient_id" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	Dosage    string    `json:"dosage" binding:"required"`
	Frequency string    `json:"frequency"`
	Active    *bool     `json:"active"`
}

// UpdateMedicationInput defines the expected JSON structure
type UpdateMedicationInput struct {
	Name      *string `json:"name"`
	Dosage    *string `json:"dosage"`
	Frequency *string `json:"frequency"`
	Active    *bool   `json:"active"`
}

// CreateMedication creates a new medication for a patient
func CreateMedication(c *gin.Context) {
	var input CreateMedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// The medication must belong to an existing patient
	var patient models.Patient
	if err := config.DB.First(&patient, "id = ?", input.PatientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Patient not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	medication := models.Medication{
		PatientID: input.PatientID,
		Name:      input.Name,
		Dosage:    input.Dosage,
		Frequency: input.Frequency,
		Active:    true,
	}
	if input.Active != nil {
		medication.Active = *input.Active
	}

	if err := config.DB.Create(&medication).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create medication")
		return
	}

	c.JSON(http.StatusCreated, medication)
}

// GetMedications retrieves medications, optionally filtered by patient and
// active flag
func GetMedications(c *gin.Context) {
	query := config.DB.Model(&models.Medication{})

	if patientID := c.Query("patient_id"); patientID != "" {
		patientUUID, err := uuid.Parse(patientID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid patient ID format")
			return
		}
		query = query.Where("patient_id = ?", patientUUID)
	}

	if c.Query("active_only") == "true" {
		query = query.Where("active = ?", true)
	}

	var medications []models.Medication
	if err := query.Find(&medications).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve medications")
		return
	}

	c.JSON(http.StatusOK, medications)
}

// UpdateMedication updates an existing medication
func UpdateMedication(c *gin.Context) {
	medicationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid medication ID format")
		return
	}

	var input UpdateMedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var medication models.Medication
	if err := config.DB.First(&medication, "id = ?", medicationUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Medication not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		medication.Name = *input.Name
	}
	if input.Dosage != nil {
		medication.Dosage = *input.Dosage
	}
	if input.Frequency != nil {
		medication.Frequency = *input.Frequency
	}
	if input.Active != nil {
		medication.Active = *input.Active
	}

	if err := config.DB.Save(&medication).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update medication")
		return
	}

	c.JSON(http.StatusOK, medication)
}

// DeleteMedication soft deletes a medication
func DeleteMedication(c *gin.Context) {
	medicationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid medication ID format")
		return
	}

	result := config.DB.Where("id = ?", medicationUUID).Delete(&models.Medication{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete medication")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Medication not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Medication deleted successfully"})
}
