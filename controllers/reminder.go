// controllers/reminder.go
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

// CreateReminderInput defines the expected JSON structure for a medication
// schedule. TimeOfDay is local wall-clock time in Timezone.
type CreateReminderInput struct {
	MedicationID   uuid.UUID  `json:"medication_id" binding:"required"`
	PatientID      *uuid.UUID `json:"patient_id"`
	TimeOfDay      string     `json:"time_of_day" binding:"required"`
	RecurrenceRule string     `json:"recurrence_rule" binding:"omitempty,oneof=daily weekly custom"`
	DayOfWeek      *string    `json:"day_of_week"`
	Timezone       *string    `json:"timezone"`
	Active         *bool      `json:"active"`
}

// UpdateReminderInput defines the expected JSON structure
type UpdateReminderInput struct {
	TimeOfDay      *string `json:"time_of_day"`
	RecurrenceRule *string `json:"recurrence_rule" binding:"omitempty,oneof=daily weekly custom"`
	DayOfWeek      *string `json:"day_of_week"`
	Timezone       *string `json:"timezone"`
	Active         *bool   `json:"active"`
}

func validateScheduleFields(c *gin.Context, timeOfDay, recurrence string, dayOfWeek, timezone *string) bool {
	if !utils.ValidateTimeOfDay(timeOfDay) {
		utils.RespondWithError(c, http.StatusBadRequest, "time_of_day must be a zero-padded 24h HH:MM string")
		return false
	}
	if recurrence == models.RecurrenceWeekly {
		if dayOfWeek == nil || !utils.ValidateWeekday(*dayOfWeek) {
			utils.RespondWithError(c, http.StatusBadRequest, "weekly schedules require a lowercase day_of_week")
			return false
		}
	}
	if timezone != nil && !utils.ValidateTimezone(*timezone) {
		utils.RespondWithError(c, http.StatusBadRequest, "timezone must be a valid IANA identifier")
		return false
	}
	return true
}

// CreateReminder creates a medication schedule owned by the current user
func CreateReminder(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return
	}

	var input CreateReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	recurrence := input.RecurrenceRule
	if recurrence == "" {
		recurrence = models.RecurrenceDaily
	}

	if !validateScheduleFields(c, input.TimeOfDay, recurrence, input.DayOfWeek, input.Timezone) {
		return
	}

	var medication models.Medication
	if err := config.DB.First(&medication, "id = ?", input.MedicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Medication not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	schedule := models.MedicationSchedule{
		MedicationID:   input.MedicationID,
		UserID:         &userID,
		PatientID:      input.PatientID,
		TimeOfDay:      input.TimeOfDay,
		RecurrenceRule: recurrence,
		DayOfWeek:      input.DayOfWeek,
		Timezone:       input.Timezone,
		Active:         true,
	}
	if input.Active != nil {
		schedule.Active = *input.Active
	}

	// BeforeSave normalizes day_of_week for non-weekly rules
	if err := config.DB.Create(&schedule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create reminder")
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// GetReminders retrieves all schedules owned by the current user
func GetReminders(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return
	}

	var schedules []models.MedicationSchedule
	if err := config.DB.Preload("Medication").
		Where("user_id = ?", userID).
		Find(&schedules).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reminders")
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// GetReminder retrieves a specific schedule by ID
func GetReminder(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return
	}

	scheduleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	var schedule models.MedicationSchedule
	if err := config.DB.Preload("Medication").
		Where("user_id = ? AND id = ?", userID, scheduleUUID).
		First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reminder not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// UpdateReminder updates an existing schedule
func UpdateReminder(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return
	}

	scheduleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	var input UpdateReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var schedule models.MedicationSchedule
	if err := config.DB.Where("user_id = ? AND id = ?", userID, scheduleUUID).
		First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reminder not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.TimeOfDay != nil {
		schedule.TimeOfDay = *input.TimeOfDay
	}
	if input.RecurrenceRule != nil {
		schedule.RecurrenceRule = *input.RecurrenceRule
	}
	if input.DayOfWeek != nil {
		schedule.DayOfWeek = input.DayOfWeek
	}
	if input.Timezone != nil {
		schedule.Timezone = input.Timezone
	}
	if input.Active != nil {
		schedule.Active = *input.Active
	}

	if !validateScheduleFields(c, schedule.TimeOfDay, schedule.RecurrenceRule, schedule.DayOfWeek, schedule.Timezone) {
		return
	}

	if err := config.DB.Save(&schedule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update reminder")
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// DeleteReminder deletes a schedule
func DeleteReminder(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return
	}

	scheduleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userID, scheduleUUID).
		Delete(&models.MedicationSchedule{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete reminder")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Reminder not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}
