package services

import (
	"context"
)

type AnalyticsService interface {
	UpdateActiveUsers(ctx context.Context, action string) (int64, error)
	CurrentActiveUsers(ctx context.Context) (int64, error)
}
