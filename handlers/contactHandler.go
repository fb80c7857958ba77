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

type ContactHandler struct {
	notificationService services.NotificationService
	cfg                 *config.Config
	logger              *logrus.Logger
}

func NewContactHandler(notificationService services.NotificationService, cfg *config.Config, logger *logrus.Logger) ContactHandler {
	return ContactHandler{notificationService: notificationService, cfg: cfg, logger: logger}
}

func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var msg domain.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to decode JSON"})
		return
	}

	if field := msg.FirstMissingField(); field != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: " + field})
		return
	}

	if !utils.IsValidEmail(msg.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a valid email address"})
		return
	}

	h.notificationService.SendContactEmails(c.Request.Context(), &msg)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for contacting us. We will get back to you soon.",
	})
}

// SubmitNewsletter echoes operationResults only outside production; in
// production the diagnostic detail stays server-side.
func (h *ContactHandler) SubmitNewsletter(c *gin.Context) {
	var signup domain.NewsletterSignup
	if err := c.ShouldBindJSON(&signup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to decode JSON"})
		return
	}

	if signup.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: email"})
		return
	}

	if !utils.IsValidEmail(signup.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a valid email address"})
		return
	}

	results := h.notificationService.SendNewsletterEmails(c.Request.Context(), signup.Email)

	response := gin.H{
		"success":   true,
		"message":   "You are subscribed to the newsletter.",
		"emailSent": results.UserEmailSent(),
	}
	if !h.cfg.IsProduction() {
		response["operationResults"] = results
	}
	c.JSON(http.StatusOK, response)
}
