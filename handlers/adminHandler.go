package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"travelworld-backend/config"
	"travelworld-backend/domain"
	errs "travelworld-backend/error"
	"travelworld-backend/services"
	"travelworld-backend/utils"
)

type AdminHandler struct {
	bookingService     services.BookingService
	destinationService services.DestinationService
	analyticsService   services.AnalyticsService
	mailer             utils.Mailer
	cfg                *config.Config
	logger             *logrus.Logger
}

func NewAdminHandler(bookingService services.BookingService, destinationService services.DestinationService,
	analyticsService services.AnalyticsService, mailer utils.Mailer, cfg *config.Config, logger *logrus.Logger) AdminHandler {
	return AdminHandler{
		bookingService:     bookingService,
		destinationService: destinationService,
		analyticsService:   analyticsService,
		mailer:             mailer,
		cfg:                cfg,
		logger:             logger,
	}
}

// GetDashboard aggregates real numbers from the store. When the store is
// unreachable the caller gets an explicit 503; fabricated fallback data is
// never served.
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	total, byStatus, recent, err := h.bookingService.Stats(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Dashboard booking stats unavailable")
		errs.ReturnJSONError(c.Writer, "Data unavailable", http.StatusServiceUnavailable)
		return
	}

	destinationCount, err := h.destinationService.Count(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Dashboard destination count unavailable")
		errs.ReturnJSONError(c.Writer, "Data unavailable", http.StatusServiceUnavailable)
		return
	}

	activeUsers, err := h.analyticsService.CurrentActiveUsers(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Dashboard active users unavailable")
		errs.ReturnJSONError(c.Writer, "Data unavailable", http.StatusServiceUnavailable)
		return
	}

	if recent == nil {
		recent = []*domain.Booking{}
	}

	c.JSON(http.StatusOK, domain.DashboardStats{
		TotalBookings:     total,
		BookingsByStatus:  byStatus,
		TotalDestinations: destinationCount,
		ActiveUsers:       activeUsers,
		RecentBookings:    recent,
	})
}

func (h *AdminHandler) GetBookings(c *gin.Context) {
	bookings, err := h.bookingService.GetAllBookings(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Booking listing unavailable")
		errs.ReturnJSONError(c.Writer, "Data unavailable", http.StatusServiceUnavailable)
		return
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

type emailDiagnostics struct {
	EmailUserSet    bool                `json:"emailUserSet"`
	EmailPassSet    bool                `json:"emailPassSet"`
	EmailPassLength int                 `json:"emailPassLength"`
	AdminEmailSet   bool                `json:"adminEmailSet"`
	SMTPHost        string              `json:"smtpHost"`
	SMTPPort        int                 `json:"smtpPort"`
	Environment     string              `json:"environment"`
	Verification    *utils.VerifyResult `json:"verification,omitempty"`
	Recommendations []string            `json:"recommendations"`
}

// GetEmailDiagnostics reports configuration presence and, when credentials
// exist, performs one live SMTP handshake. Secret values are never echoed,
// only presence and length metadata.
func (h *AdminHandler) GetEmailDiagnostics(c *gin.Context) {
	diagnostics := emailDiagnostics{
		EmailUserSet:    h.cfg.EmailUser != "",
		EmailPassSet:    h.cfg.EmailPass != "",
		EmailPassLength: len(h.cfg.EmailPass),
		AdminEmailSet:   h.cfg.AdminEmail != "",
		SMTPHost:        h.cfg.SMTPHost,
		SMTPPort:        h.cfg.SMTPPort,
		Environment:     h.cfg.Environment,
		Recommendations: []string{},
	}

	if !diagnostics.EmailUserSet {
		diagnostics.Recommendations = append(diagnostics.Recommendations, "Set EMAIL_USER to the sender address")
	}
	if !diagnostics.EmailPassSet {
		diagnostics.Recommendations = append(diagnostics.Recommendations, "Set EMAIL_PASS to the sender secret")
	}
	if diagnostics.EmailPassSet && strings.Contains(h.cfg.SMTPHost, "gmail") && diagnostics.EmailPassLength != 16 {
		diagnostics.Recommendations = append(diagnostics.Recommendations, "Gmail app passwords are 16 characters - use an app-specific password, not the account password")
	}
	if !diagnostics.AdminEmailSet {
		diagnostics.Recommendations = append(diagnostics.Recommendations, "Set ADMIN_EMAIL to receive booking and contact notifications")
	}

	if h.mailer.Configured() {
		result := h.mailer.Verify()
		diagnostics.Verification = &result
	}

	c.JSON(http.StatusOK, diagnostics)
}
