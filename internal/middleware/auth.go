package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/eldon922/ekklesia-be/internal/services"

	"github.com/gin-gonic/gin"
)

// EventAuth guards mutating routes on protected events. Events without
// a secret pass through; protected events require a Bearer token from
// the unlock endpoint, scoped to the same event.
func EventAuth(authService *services.AuthService, eventService *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
			return
		}

		event, err := eventService.GetEvent(uint(eventID))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}

		if !event.Protected {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		tokenEventID, err := authService.ValidateToken(parts[1])
		if err != nil || tokenEventID != uint(eventID) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Next()
	}
}
