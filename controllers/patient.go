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

// CreatePatientInput defines the expected JSON structure for creating a patient
type CreatePatientInput struct {
	Name             string `json:"name" binding:"required"`
	Age              *int   `json:"age"`
	Allergies        string `json:"allergies"`
	EmergencyContact string `json:"emergency_contact"`
	Doctor           string `json:"doctor"`
}

// UpdatePatientInput defines the expected JSON structure for updating a patient
type UpdatePatientInput struct {
	Name             *string `json:"name"`
	Age              *int    `json:"age"`
	Allergies        *string `json:"allergies"`
	EmergencyContact *string `json:"emergency_contact"`
	Doctor           *string `json:"doctor"`
}

// CreatePatient creates a new patient record
func CreatePatient(c *gin.Context) {
	var input CreatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	patient := models.Patient{
		Name:             input.Name,
		Age:              input.Age,
		Allergies:        input.Allergies,
		EmergencyContact: input.EmergencyContact,
		Doctor:           input.Doctor,
	}

	if err := config.DB.Create(&patient).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create patient")
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// GetPatients retrieves all patients
func GetPatients(c *gin.Context) {
	var patients []models.Patient
	if err := config.DB.Find(&patients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve patients")
		return
	}

	c.JSON(http.StatusOK, patients)
}

// GetPatient retrieves a specific patient by ID
func GetPatient(c *gin.Context) {
	patientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid patient ID format")
		return
	}

	var patient models.Patient
	if err := config.DB.First(&patient, "id = ?", patientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Patient not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, patient)
}

// UpdatePatient updates an existing patient
func UpdatePatient(c *gin.Context) {
	patientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid patient ID format")
		return
	}

	var input UpdatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var patient models.Patient
	if err := config.DB.First(&patient, "id = ?", patientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Patient not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		patient.Name = *input.Name
	}
	if input.Age != nil {
		patient.Age = input.Age
	}
	if input.Allergies != nil {
		patient.Allergies = *input.Allergies
	}
	if input.EmergencyContact != nil {
		patient.EmergencyContact = *input.EmergencyContact
	}
	if input.Doctor != nil {
		patient.Doctor = *input.Doctor
	}

	if err := config.DB.Save(&patient).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update patient")
		return
	}

	c.JSON(http.StatusOK, patient)
}
