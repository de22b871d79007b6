// controllers/subscription.go
package controllers

import (
	"errors"
	"net/http"
	"os"

	"caregiver-backend/config"
	"caregiver-backend/models"
	"caregiver-backend/services"
	"caregiver-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReminderSvc is set from main so the test-push endpoint can exercise the
// same dispatcher the scheduler uses.
var ReminderSvc *services.ReminderService

// SubscribeInput mirrors the browser PushSubscription JSON shape
type SubscribeInput struct {
	Endpoint string `json:"endpoint" binding:"required,url"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

// UnsubscribeInput identifies a subscription by its endpoint
type UnsubscribeInput struct {
	Endpoint string `json:"endpoint" binding:"required"`
}

// Subscribe registers (or refreshes) a push subscription for the current
// user. Re-subscribing with an existing endpoint updates the keys in place,
// so a browser rotating its keys never produces duplicates.
func Subscribe(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return
	}

	var input SubscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var sub models.PushSubscription
	err := config.DB.Where("user_id = ? AND endpoint = ?", userID, input.Endpoint).First(&sub).Error

	switch {
	case err == nil:
		sub.P256dh = input.Keys.P256dh
		sub.Auth = input.Keys.Auth
		if err := config.DB.Save(&sub).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update subscription")
			return
		}
		c.JSON(http.StatusOK, sub)

	case errors.Is(err, gorm.ErrRecordNotFound):
		sub = models.PushSubscription{
			UserID:   userID,
			Endpoint: input.Endpoint,
			P256dh:   input.Keys.P256dh,
			Auth:     input.Keys.Auth,
		}
		if err := config.DB.Create(&sub).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create subscription")
			return
		}
		c.JSON(http.StatusCreated, sub)

	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

// Unsubscribe removes the current user's subscription for an endpoint
func Unsubscribe(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return
	}

	var input UnsubscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	result := config.DB.Where("user_id = ? AND endpoint = ?", userID, input.Endpoint).
		Delete(&models.PushSubscription{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete subscription")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Subscription not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription removed successfully"})
}

// GetVAPIDPublicKey returns the key the frontend needs to subscribe
func GetVAPIDPublicKey(c *gin.Context) {
	key := os.Getenv("VAPID_PUBLIC_KEY")
	if key == "" {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Push notifications are not configured")
		return
	}
	c.JSON(http.StatusOK, gin.H{"public_key": key})
}

// TestPush sends a test notification to all of the caller's devices
func TestPush(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return
	}

	if ReminderSvc == nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Reminder service not running")
		return
	}

	sent, failed := ReminderSvc.NotifyUser(c.Request.Context(), userID,
		"Test Notification", "Push notifications are working.")

	c.JSON(http.StatusOK, gin.H{"sent": sent, "failed": failed})
}
