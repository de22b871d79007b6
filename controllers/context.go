package controllers

import (
	"net/http"

	"caregiver-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CurrentUserID pulls the authenticated user id that AuthMiddleware stored in
// the context. Aborts with 401 when it is absent or malformed.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}

	s, ok := v.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid user ID in context")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(s)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid user ID format")
		return uuid.Nil, false
	}

	return id, true
}
