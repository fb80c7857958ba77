package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"travelworld-backend/domain"
)

type AnalyticsServiceImpl struct {
	collection *mongo.Collection
	Tracer     trace.Tracer
}

func NewAnalyticsServiceImpl(collection *mongo.Collection, tracer trace.Tracer) AnalyticsService {
	return &AnalyticsServiceImpl{collection: collection, Tracer: tracer}
}

// UpdateActiveUsers applies a join or leave delta to the single counter
// document as one atomic upsert. Never read-then-write: concurrent joins and
// leaves must not lose updates.
func (s *AnalyticsServiceImpl) UpdateActiveUsers(ctx context.Context, action string) (int64, error) {
	ctx, span := s.Tracer.Start(ctx, "AnalyticsService.UpdateActiveUsers")
	defer span.End()

	var update interface{}
	switch action {
	case domain.ActionJoin:
		update = joinUpdate()
	case domain.ActionLeave:
		update = leaveUpdate()
	default:
		return 0, fmt.Errorf("unknown action %q", action)
	}

	filter := bson.M{"type": domain.ActiveUsersKey}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter domain.ActiveUsers
	if err := s.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	return counter.Count, nil
}

func (s *AnalyticsServiceImpl) CurrentActiveUsers(ctx context.Context) (int64, error) {
	ctx, span := s.Tracer.Start(ctx, "AnalyticsService.CurrentActiveUsers")
	defer span.End()

	var counter domain.ActiveUsers
	err := s.collection.FindOne(ctx, bson.M{"type": domain.ActiveUsersKey}).Decode(&counter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	return counter.Count, nil
}

func joinUpdate() bson.M {
	return bson.M{
		"$inc":         bson.M{"count": 1},
		"$currentDate": bson.M{"updated_at": true},
	}
}

// leaveUpdate is a pipeline update so the decrement can be floored at zero
// inside the atomic operation.
func leaveUpdate() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"type": domain.ActiveUsersKey,
			"count": bson.M{"$max": bson.A{
				0,
				bson.M{"$subtract": bson.A{bson.M{"$ifNull": bson.A{"$count", 0}}, 1}},
			}},
			"updated_at": "$$NOW",
		}}},
	}
}
