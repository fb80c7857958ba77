package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"travelworld-backend/domain"
	"travelworld-backend/services"
)

type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
	logger           *logrus.Logger
}

func NewAnalyticsHandler(analyticsService services.AnalyticsService, logger *logrus.Logger) AnalyticsHandler {
	return AnalyticsHandler{analyticsService: analyticsService, logger: logger}
}

func (h *AnalyticsHandler) UpdateActiveUsers(c *gin.Context) {
	var req domain.ActiveUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to decode JSON"})
		return
	}

	if req.Action != domain.ActionJoin && req.Action != domain.ActionLeave {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be \"join\" or \"leave\""})
		return
	}

	count, err := h.analyticsService.UpdateActiveUsers(c.Request.Context(), req.Action)
	if err != nil {
		h.logger.WithError(err).Error("Failed to update active users counter")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update active users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "activeUsers": count})
}
