package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.opentelemetry.io/otel/trace"

	"travelworld-backend/domain"
)

func TestUpdateActiveUsersRejectsUnknownAction(t *testing.T) {
	service := &AnalyticsServiceImpl{Tracer: trace.NewNoopTracerProvider().Tracer("")}

	count, err := service.UpdateActiveUsers(context.Background(), "refresh")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "refresh")
	assert.Equal(t, int64(0), count)
}

func TestJoinUpdateIncrementsAtomically(t *testing.T) {
	update := joinUpdate()

	inc, ok := update["$inc"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, 1, inc["count"])

	stamp, ok := update["$currentDate"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, true, stamp["updated_at"])
}

func TestLeaveUpdateFloorsAtZero(t *testing.T) {
	pipeline := leaveUpdate()
	assert.Len(t, pipeline, 1)

	stage := pipeline[0]
	assert.Equal(t, "$set", stage[0].Key)

	set, ok := stage[0].Value.(bson.M)
	assert.True(t, ok)
	assert.Equal(t, domain.ActiveUsersKey, set["type"])
	assert.Equal(t, "$$NOW", set["updated_at"])

	count, ok := set["count"].(bson.M)
	assert.True(t, ok)
	floor, ok := count["$max"].(bson.A)
	assert.True(t, ok)
	assert.Equal(t, 0, floor[0], "decrement must never go below zero")
}
