package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"travelworld-backend/cache"
	"travelworld-backend/domain"
	"travelworld-backend/utils"
)

var ErrDestinationNotFound = errors.New("destination not found")

type DestinationServiceImpl struct {
	collection *mongo.Collection
	cache      *cache.DestinationCache
	logger     *logrus.Logger
	Tracer     trace.Tracer
}

func NewDestinationServiceImpl(collection *mongo.Collection, destinationCache *cache.DestinationCache, logger *logrus.Logger, tracer trace.Tracer) DestinationService {
	return &DestinationServiceImpl{collection: collection, cache: destinationCache, logger: logger, Tracer: tracer}
}

func (s *DestinationServiceImpl) GetAll(ctx context.Context) (domain.Destinations, error) {
	ctx, span := s.Tracer.Start(ctx, "DestinationService.GetAll")
	defer span.End()

	return s.find(ctx, bson.M{})
}

func (s *DestinationServiceImpl) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	ctx, span := s.Tracer.Start(ctx, "DestinationService.GetByID")
	defer span.End()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrDestinationNotFound
	}

	var destination domain.Destination
	err = s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&destination)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrDestinationNotFound
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return &destination, nil
}

// GetFeatured serves from the Redis cache when warm and falls back to Mongo,
// repopulating the cache on the way out. Cache failures are logged, never
// surfaced.
func (s *DestinationServiceImpl) GetFeatured(ctx context.Context) (domain.Destinations, error) {
	ctx, span := s.Tracer.Start(ctx, "DestinationService.GetFeatured")
	defer span.End()

	if cached, err := s.cache.GetFeatured(ctx); err == nil {
		return cached, nil
	}

	destinations, err := s.find(ctx, bson.M{"featured": true})
	if err != nil {
		return nil, err
	}

	if err := s.cache.PostFeatured(destinations, ctx); err != nil {
		s.logger.Warn("Could not cache featured destinations: ", err)
	}
	return destinations, nil
}

// Seed inserts the provided destinations once: when the collection already
// holds documents it is a no-op.
func (s *DestinationServiceImpl) Seed(ctx context.Context, destinations domain.Destinations) (int, error) {
	ctx, span := s.Tracer.Start(ctx, "DestinationService.Seed")
	defer span.End()

	existing, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	if len(destinations) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, 0, len(destinations))
	for _, destination := range destinations {
		if err := utils.ValidateStruct(destination); err != nil {
			return 0, err
		}
		destination.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
		docs = append(docs, destination)
	}

	result, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	s.cache.InvalidateFeatured(ctx)
	return len(result.InsertedIDs), nil
}

func (s *DestinationServiceImpl) Count(ctx context.Context) (int64, error) {
	ctx, span := s.Tracer.Start(ctx, "DestinationService.Count")
	defer span.End()

	return s.collection.CountDocuments(ctx, bson.M{})
}

func (s *DestinationServiceImpl) find(ctx context.Context, filter bson.M) (domain.Destinations, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var destinations domain.Destinations
	for cursor.Next(ctx) {
		var destination domain.Destination
		if err := cursor.Decode(&destination); err != nil {
			return nil, err
		}
		destinations = append(destinations, &destination)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return destinations, nil
}
