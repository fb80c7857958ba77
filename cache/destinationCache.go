package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"travelworld-backend/config"
	"travelworld-backend/domain"
)

const (
	featuredKey = "destinations:featured"
	featuredTTL = 60 * time.Second
)

type DestinationCache struct {
	cli    *redis.Client
	logger *logrus.Logger
	Tracer trace.Tracer
}

// Construct Redis client
func New(cfg *config.Config, logger *logrus.Logger, tracer trace.Tracer) *DestinationCache {
	redisAddress := fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort)

	client := redis.NewClient(&redis.Options{
		Addr: redisAddress,
	})

	return &DestinationCache{
		cli:    client,
		logger: logger,
		Tracer: tracer,
	}
}

func (dc *DestinationCache) Ping() {
	val, _ := dc.cli.Ping().Result()
	dc.logger.Debug("Redis ping: ", val)
}

func (dc *DestinationCache) PostFeatured(destinations domain.Destinations, ctx context.Context) error {
	ctx, span := dc.Tracer.Start(ctx, "DestinationCache.PostFeatured")
	defer span.End()

	payload, err := json.Marshal(destinations)
	if err != nil {
		span.SetStatus(codes.Error, "Error encoding destinations: "+err.Error())
		return err
	}

	if err := dc.cli.Set(featuredKey, payload, featuredTTL).Err(); err != nil {
		span.SetStatus(codes.Error, "Error setting destinations in Redis: "+err.Error())
		return err
	}
	return nil
}

func (dc *DestinationCache) GetFeatured(ctx context.Context) (domain.Destinations, error) {
	ctx, span := dc.Tracer.Start(ctx, "DestinationCache.GetFeatured")
	defer span.End()

	payload, err := dc.cli.Get(featuredKey).Bytes()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var destinations domain.Destinations
	if err := json.Unmarshal(payload, &destinations); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	dc.logger.Debug("Featured destinations cache hit")
	return destinations, nil
}

func (dc *DestinationCache) InvalidateFeatured(ctx context.Context) {
	ctx, span := dc.Tracer.Start(ctx, "DestinationCache.InvalidateFeatured")
	defer span.End()

	if err := dc.cli.Del(featuredKey).Err(); err != nil {
		dc.logger.Warn("Could not invalidate featured destinations cache: ", err)
	}
}
