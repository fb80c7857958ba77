package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"travelworld-backend/domain"
	"travelworld-backend/services"
)

type DestinationsHandler struct {
	destinationService services.DestinationService
	logger             *logrus.Logger
}

func NewDestinationsHandler(destinationService services.DestinationService, logger *logrus.Logger) DestinationsHandler {
	return DestinationsHandler{destinationService: destinationService, logger: logger}
}

func (h *DestinationsHandler) GetAll(c *gin.Context) {
	destinations, err := h.destinationService.GetAll(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list destinations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get destinations"})
		return
	}
	if destinations == nil {
		destinations = domain.Destinations{}
	}
	c.JSON(http.StatusOK, destinations)
}

func (h *DestinationsHandler) GetFeatured(c *gin.Context) {
	destinations, err := h.destinationService.GetFeatured(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list featured destinations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get destinations"})
		return
	}
	if destinations == nil {
		destinations = domain.Destinations{}
	}
	c.JSON(http.StatusOK, destinations)
}

func (h *DestinationsHandler) GetByID(c *gin.Context) {
	destination, err := h.destinationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == services.ErrDestinationNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
			return
		}
		h.logger.WithError(err).Error("Failed to get destination")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get destination"})
		return
	}
	c.JSON(http.StatusOK, destination)
}

func (h *DestinationsHandler) Seed(c *gin.Context) {
	var destinations domain.Destinations
	if err := c.ShouldBindJSON(&destinations); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to decode JSON"})
		return
	}

	inserted, err := h.destinationService.Seed(c.Request.Context(), destinations)
	if err != nil {
		h.logger.WithError(err).Error("Failed to seed destinations")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "inserted": inserted})
}
