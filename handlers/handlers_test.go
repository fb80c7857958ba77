package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"travelworld-backend/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return body
}

type fakeBookingService struct {
	called   bool
	request  *domain.BookingRequest
	response *domain.BookingResponse
	err      error

	bookings []*domain.Booking
	total    int64
	byStatus map[string]int64
	statsErr error
}

func (f *fakeBookingService) CreateBooking(ctx context.Context, req *domain.BookingRequest) (*domain.BookingResponse, error) {
	f.called = true
	f.request = req
	return f.response, f.err
}

func (f *fakeBookingService) GetAllBookings(ctx context.Context) ([]*domain.Booking, error) {
	return f.bookings, f.statsErr
}

func (f *fakeBookingService) Stats(ctx context.Context) (int64, map[string]int64, []*domain.Booking, error) {
	return f.total, f.byStatus, f.bookings, f.statsErr
}

type fakeNotificationService struct {
	contactCalled    bool
	newsletterCalled bool
	lastMessage      *domain.ContactMessage
	lastEmail        string
	results          domain.OperationResults
}

func (f *fakeNotificationService) SendContactEmails(ctx context.Context, msg *domain.ContactMessage) domain.OperationResults {
	f.contactCalled = true
	f.lastMessage = msg
	return f.results
}

func (f *fakeNotificationService) SendNewsletterEmails(ctx context.Context, email string) domain.OperationResults {
	f.newsletterCalled = true
	f.lastEmail = email
	return f.results
}

type fakeAnalyticsService struct {
	lastAction string
	count      int64
	err        error
}

func (f *fakeAnalyticsService) UpdateActiveUsers(ctx context.Context, action string) (int64, error) {
	f.lastAction = action
	return f.count, f.err
}

func (f *fakeAnalyticsService) CurrentActiveUsers(ctx context.Context) (int64, error) {
	return f.count, f.err
}
