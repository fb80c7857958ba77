package routes

import (
	"github.com/gin-gonic/gin"

	"travelworld-backend/handlers"
)

type AnalyticsRouteHandler struct {
	analyticsHandler handlers.AnalyticsHandler
}

func NewAnalyticsRouteHandler(analyticsHandler handlers.AnalyticsHandler) AnalyticsRouteHandler {
	return AnalyticsRouteHandler{analyticsHandler: analyticsHandler}
}

func (ar *AnalyticsRouteHandler) AnalyticsRoute(rg *gin.RouterGroup) {
	router := rg.Group("/analytics")
	router.Use(MiddlewareContentTypeSet)
	router.POST("/active-users", ar.analyticsHandler.UpdateActiveUsers)
}
