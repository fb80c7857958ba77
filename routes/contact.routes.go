package routes

import (
	"github.com/gin-gonic/gin"

	"travelworld-backend/handlers"
)

type ContactRouteHandler struct {
	contactHandler handlers.ContactHandler
}

func NewContactRouteHandler(contactHandler handlers.ContactHandler) ContactRouteHandler {
	return ContactRouteHandler{contactHandler: contactHandler}
}

func (cr *ContactRouteHandler) ContactRoute(rg *gin.RouterGroup) {
	rg.POST("/contact", MiddlewareContentTypeSet, cr.contactHandler.SubmitContact)
	rg.POST("/newsletter", MiddlewareContentTypeSet, cr.contactHandler.SubmitNewsletter)
}
