package services

import (
	"context"

	"travelworld-backend/domain"
)

type NotificationService interface {
	SendContactEmails(ctx context.Context, msg *domain.ContactMessage) domain.OperationResults
	SendNewsletterEmails(ctx context.Context, email string) domain.OperationResults
}
