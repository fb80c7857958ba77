package routes

import (
	"github.com/gin-gonic/gin"

	"travelworld-backend/config"
	"travelworld-backend/handlers"
)

type AdminRouteHandler struct {
	adminHandler        handlers.AdminHandler
	destinationsHandler handlers.DestinationsHandler
	cfg                 *config.Config
}

func NewAdminRouteHandler(adminHandler handlers.AdminHandler, destinationsHandler handlers.DestinationsHandler, cfg *config.Config) AdminRouteHandler {
	return AdminRouteHandler{adminHandler: adminHandler, destinationsHandler: destinationsHandler, cfg: cfg}
}

func (ar *AdminRouteHandler) AdminRoute(rg *gin.RouterGroup) {
	router := rg.Group("/admin")
	router.Use(MiddlewareContentTypeSet)
	router.Use(AdminAuth(ar.cfg))
	router.GET("/dashboard", ar.adminHandler.GetDashboard)
	router.GET("/bookings", ar.adminHandler.GetBookings)
	router.GET("/email-diagnostics", ar.adminHandler.GetEmailDiagnostics)
	router.POST("/destinations/seed", ar.destinationsHandler.Seed)
}
