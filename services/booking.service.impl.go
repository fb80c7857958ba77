package services

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"travelworld-backend/domain"
	"travelworld-backend/utils"
)

type BookingServiceImpl struct {
	collection *mongo.Collection
	mailer     utils.Mailer
	logger     *logrus.Logger
	Tracer     trace.Tracer
}

func NewBookingServiceImpl(collection *mongo.Collection, mailer utils.Mailer, logger *logrus.Logger, tracer trace.Tracer) BookingService {
	return &BookingServiceImpl{collection: collection, mailer: mailer, logger: logger, Tracer: tracer}
}

// CreateBooking persists the booking first and then attempts notifications.
// Email delivery is best-effort telemetry: a failed or skipped send never
// fails the booking, only the persist step can.
func (s *BookingServiceImpl) CreateBooking(ctx context.Context, req *domain.BookingRequest) (*domain.BookingResponse, error) {
	ctx, span := s.Tracer.Start(ctx, "BookingService.CreateBooking")
	defer span.End()

	booking := &domain.Booking{
		BookingID:       utils.GenerateBookingID(),
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		Destination:     strings.TrimSpace(req.Destination),
		TravelDate:      strings.TrimSpace(req.TravelDate),
		Travelers:       req.Travelers,
		TotalAmount:     strings.TrimSpace(req.TotalAmount),
		PaymentMethod:   strings.TrimSpace(req.PaymentMethod),
		Status:          domain.BookingPending,
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
		CreatedAt:       primitive.NewDateTimeFromTime(time.Now()),
	}

	if _, err := s.collection.InsertOne(ctx, booking); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	results, emailSent, adminNotified := s.notify(booking)

	s.logger.WithFields(logrus.Fields{
		"booking_id":  booking.BookingID,
		"user_email":  results.UserEmail,
		"admin_email": results.AdminEmail,
	}).Info("Booking created")

	return &domain.BookingResponse{
		Success:          true,
		BookingID:        booking.BookingID,
		Message:          "Booking received. We will confirm availability by email.",
		EmailSent:        emailSent,
		AdminNotified:    adminNotified,
		OperationResults: results,
	}, nil
}

// notify runs the two independent dispatch attempts, user first. Each outcome
// is recorded on its own; neither attempt can abort the other.
func (s *BookingServiceImpl) notify(booking *domain.Booking) (domain.OperationResults, bool, bool) {
	results := domain.NewOperationResults()

	if !s.mailer.Configured() {
		results.UserEmail = domain.StatusSkipped(domain.ReasonMissingCredentials)
		results.AdminEmail = domain.StatusSkipped(domain.ReasonMissingCredentials)
		s.logger.WithField("booking_id", booking.BookingID).Warn("Email credentials missing, notifications skipped")
		return results, false, false
	}

	userResult := s.mailer.SendToUser(booking.Email, "Your TravelWorld booking "+booking.BookingID, utils.BookingConfirmationEmail(booking))
	if userResult.Success {
		results.UserEmail = domain.StatusSuccess
	} else {
		results.UserEmail = domain.StatusFailed(userResult.Error)
	}

	adminNotified := false
	if !s.mailer.AdminConfigured() {
		results.AdminEmail = domain.StatusSkipped(domain.ReasonAdminEmailNotSet)
	} else {
		adminResult := s.mailer.SendToAdmin("New booking "+booking.BookingID, utils.BookingAdminEmail(booking), booking.Email)
		if adminResult.Success {
			results.AdminEmail = domain.StatusSuccess
			adminNotified = true
		} else {
			results.AdminEmail = domain.StatusFailed(adminResult.Error)
		}
	}

	return results, userResult.Success, adminNotified
}

func (s *BookingServiceImpl) GetAllBookings(ctx context.Context) ([]*domain.Booking, error) {
	ctx, span := s.Tracer.Start(ctx, "BookingService.GetAllBookings")
	defer span.End()

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []*domain.Booking
	for cursor.Next(ctx) {
		var booking domain.Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, err
		}
		bookings = append(bookings, &booking)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Stats returns the booking aggregates for the admin dashboard: total count,
// counts grouped by status and the five most recent bookings.
func (s *BookingServiceImpl) Stats(ctx context.Context) (int64, map[string]int64, []*domain.Booking, error) {
	ctx, span := s.Tracer.Start(ctx, "BookingService.Stats")
	defer span.End()

	total, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, nil, nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, nil, nil, err
	}
	defer cursor.Close(ctx)

	byStatus := make(map[string]int64)
	for cursor.Next(ctx) {
		var group struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&group); err != nil {
			return 0, nil, nil, err
		}
		byStatus[group.ID] = group.Count
	}
	if err := cursor.Err(); err != nil {
		return 0, nil, nil, err
	}

	recentOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(5)
	recentCursor, err := s.collection.Find(ctx, bson.M{}, recentOptions)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, nil, nil, err
	}
	defer recentCursor.Close(ctx)

	var recent []*domain.Booking
	for recentCursor.Next(ctx) {
		var booking domain.Booking
		if err := recentCursor.Decode(&booking); err != nil {
			return 0, nil, nil, err
		}
		recent = append(recent, &booking)
	}
	if err := recentCursor.Err(); err != nil {
		return 0, nil, nil, err
	}

	return total, byStatus, recent, nil
}
