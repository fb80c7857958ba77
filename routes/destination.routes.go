package routes

import (
	"github.com/gin-gonic/gin"

	"travelworld-backend/handlers"
)

type DestinationRouteHandler struct {
	destinationsHandler handlers.DestinationsHandler
}

func NewDestinationRouteHandler(destinationsHandler handlers.DestinationsHandler) DestinationRouteHandler {
	return DestinationRouteHandler{destinationsHandler: destinationsHandler}
}

func (dr *DestinationRouteHandler) DestinationRoute(rg *gin.RouterGroup) {
	router := rg.Group("/destinations")
	router.Use(MiddlewareContentTypeSet)
	router.GET("", dr.destinationsHandler.GetAll)
	router.GET("/featured", dr.destinationsHandler.GetFeatured)
	router.GET("/:id", dr.destinationsHandler.GetByID)
}
