package services

import (
	"context"

	"travelworld-backend/domain"
)

type DestinationService interface {
	GetAll(ctx context.Context) (domain.Destinations, error)
	GetByID(ctx context.Context, id string) (*domain.Destination, error)
	GetFeatured(ctx context.Context) (domain.Destinations, error)
	Seed(ctx context.Context, destinations domain.Destinations) (int, error)
	Count(ctx context.Context) (int64, error)
}
