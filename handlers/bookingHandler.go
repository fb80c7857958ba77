package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"travelworld-backend/config"
	"travelworld-backend/domain"
	"travelworld-backend/services"
	"travelworld-backend/utils"
)

type BookingHandler struct {
	bookingService services.BookingService
	cfg            *config.Config
	logger         *logrus.Logger
}

func NewBookingHandler(bookingService services.BookingService, cfg *config.Config, logger *logrus.Logger) BookingHandler {
	return BookingHandler{bookingService: bookingService, cfg: cfg, logger: logger}
}

// CreateBooking validates the request and hands it to the booking pipeline.
// Validation short-circuits before any side effect; once validation passes
// the response is 200 regardless of how the notification attempts went.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req domain.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to decode JSON"})
		return
	}

	if field := req.FirstMissingField(); field != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: " + field})
		return
	}

	if !utils.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a valid email address"})
		return
	}

	response, err := h.bookingService.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create booking")
		body := gin.H{"error": "Failed to create booking"}
		if !h.cfg.IsProduction() {
			body["details"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
		return
	}

	c.JSON(http.StatusOK, response)
}
