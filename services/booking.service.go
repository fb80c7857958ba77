package services

import (
	"context"

	"travelworld-backend/domain"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *domain.BookingRequest) (*domain.BookingResponse, error)
	GetAllBookings(ctx context.Context) ([]*domain.Booking, error)
	Stats(ctx context.Context) (int64, map[string]int64, []*domain.Booking, error)
}
