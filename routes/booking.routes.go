package routes

import (
	"github.com/gin-gonic/gin"

	"travelworld-backend/handlers"
)

type BookingRouteHandler struct {
	bookingHandler handlers.BookingHandler
}

func NewBookingRouteHandler(bookingHandler handlers.BookingHandler) BookingRouteHandler {
	return BookingRouteHandler{bookingHandler: bookingHandler}
}

func (br *BookingRouteHandler) BookingRoute(rg *gin.RouterGroup) {
	router := rg.Group("/bookings")
	router.Use(MiddlewareContentTypeSet)
	router.POST("", br.bookingHandler.CreateBooking)
}
