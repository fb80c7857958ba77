package utils

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"travelworld-backend/domain"
)

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		BookingID:   "BK-1A2B3C4D",
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john@x.com",
		Destination: "Paris",
		TravelDate:  "2025-06-01",
		Travelers:   2,
		Status:      domain.BookingPending,
	}
}

func TestBookingConfirmationEmailFallbacks(t *testing.T) {
	// all optional fields omitted
	html := BookingConfirmationEmail(sampleBooking())

	assert.Contains(t, html, "BK-1A2B3C4D")
	assert.Contains(t, html, "Paris")
	assert.Contains(t, html, "Not provided")
	assert.Contains(t, html, fmt.Sprintf("%d", time.Now().Year()))
}

func TestBookingAdminEmailMasksPayment(t *testing.T) {
	booking := sampleBooking()
	booking.PaymentMethod = "DE89370400440532013000"
	html := BookingAdminEmail(booking)

	assert.Contains(t, html, "3000")
	assert.NotContains(t, html, "DE89370400440532013000")
}

func TestBookingAdminEmailWithoutOptionalFields(t *testing.T) {
	html := BookingAdminEmail(sampleBooking())

	assert.Contains(t, html, "John Doe")
	assert.Contains(t, html, "john@x.com")
	// phone, total amount, payment method and special requests all omitted
	assert.Equal(t, 4, strings.Count(html, "Not provided"))
}

func TestContactTemplates(t *testing.T) {
	msg := &domain.ContactMessage{
		Name:    "Jane",
		Email:   "jane@x.com",
		Subject: "Group discount",
		Message: "Do you offer discounts for groups of 10?",
	}

	user := ContactConfirmationEmail(msg)
	assert.Contains(t, user, "Jane")
	assert.Contains(t, user, "Group discount")

	admin := ContactAdminEmail(msg)
	assert.Contains(t, admin, "jane@x.com")
	assert.Contains(t, admin, "Not provided") // phone omitted
}

func TestNewsletterTemplates(t *testing.T) {
	assert.Contains(t, NewsletterConfirmationEmail("sub@x.com"), "sub@x.com")
	assert.Contains(t, NewsletterAdminEmail("sub@x.com"), "sub@x.com")
}
