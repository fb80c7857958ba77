package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"travelworld-backend/domain"
	"travelworld-backend/utils"
)

type NotificationServiceImpl struct {
	mailer utils.Mailer
	logger *logrus.Logger
	Tracer trace.Tracer
}

func NewNotificationServiceImpl(mailer utils.Mailer, logger *logrus.Logger, tracer trace.Tracer) NotificationService {
	return &NotificationServiceImpl{mailer: mailer, logger: logger, Tracer: tracer}
}

func (s *NotificationServiceImpl) SendContactEmails(ctx context.Context, msg *domain.ContactMessage) domain.OperationResults {
	ctx, span := s.Tracer.Start(ctx, "NotificationService.SendContactEmails")
	defer span.End()

	return s.dispatchPair(
		msg.Email,
		"We received your message",
		utils.ContactConfirmationEmail(msg),
		"New contact message: "+msg.Subject,
		utils.ContactAdminEmail(msg),
	)
}

func (s *NotificationServiceImpl) SendNewsletterEmails(ctx context.Context, email string) domain.OperationResults {
	ctx, span := s.Tracer.Start(ctx, "NotificationService.SendNewsletterEmails")
	defer span.End()

	return s.dispatchPair(
		email,
		"Welcome to the TravelWorld newsletter",
		utils.NewsletterConfirmationEmail(email),
		"New newsletter subscriber",
		utils.NewsletterAdminEmail(email),
	)
}

// dispatchPair runs the user acknowledgement and the admin notice as two
// independent one-shot attempts, user first, and records each outcome.
func (s *NotificationServiceImpl) dispatchPair(userEmail, userSubject, userHTML, adminSubject, adminHTML string) domain.OperationResults {
	results := domain.NewOperationResults()

	if !s.mailer.Configured() {
		results.UserEmail = domain.StatusSkipped(domain.ReasonMissingCredentials)
		results.AdminEmail = domain.StatusSkipped(domain.ReasonMissingCredentials)
		s.logger.Warn("Email credentials missing, notifications skipped")
		return results
	}

	userResult := s.mailer.SendToUser(userEmail, userSubject, userHTML)
	if userResult.Success {
		results.UserEmail = domain.StatusSuccess
	} else {
		results.UserEmail = domain.StatusFailed(userResult.Error)
	}

	if !s.mailer.AdminConfigured() {
		results.AdminEmail = domain.StatusSkipped(domain.ReasonAdminEmailNotSet)
	} else {
		adminResult := s.mailer.SendToAdmin(adminSubject, adminHTML, userEmail)
		if adminResult.Success {
			results.AdminEmail = domain.StatusSuccess
		} else {
			results.AdminEmail = domain.StatusFailed(adminResult.Error)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"user_email":  results.UserEmail,
		"admin_email": results.AdminEmail,
	}).Info("Notification emails dispatched")

	return results
}
