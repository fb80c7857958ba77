package utils

import (
	"fmt"
	"strings"
	"time"

	"travelworld-backend/domain"
)

// Notification templates. Pure string building, no templating engine: each
// function maps one domain record to a deterministic HTML document with a
// heading, a key/value block and a footer. Missing optional fields render as
// "Not provided" instead of failing.

const fallbackText = "Not provided"

func orFallback(value string) string {
	if strings.TrimSpace(value) == "" {
		return fallbackText
	}
	return value
}

func field(label, value string) string {
	return fmt.Sprintf("<p><strong>%s:</strong> %s</p>", label, value)
}

func wrap(heading, body string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2 style="color: #1a6fb0;">%s</h2>
%s
<hr/>
<p style="color: #888; font-size: 12px;">&copy; %d TravelWorld. All rights reserved.</p>
</div>`, heading, body, time.Now().Year())
}

func BookingConfirmationEmail(b *domain.Booking) string {
	var body strings.Builder
	body.WriteString(fmt.Sprintf("<p>Hi %s,</p><p>we have received your booking request. Our team will confirm availability shortly.</p>", b.FirstName))
	body.WriteString(field("Booking ID", b.BookingID))
	body.WriteString(field("Destination", b.Destination))
	body.WriteString(field("Travel date", b.TravelDate))
	body.WriteString(field("Travelers", fmt.Sprintf("%d", b.Travelers)))
	body.WriteString(field("Total amount", orFallback(b.TotalAmount)))
	body.WriteString(field("Special requests", orFallback(b.SpecialRequests)))
	body.WriteString("<p>Payment is settled by bank transfer. Please quote your booking ID as the transfer reference.</p>")
	return wrap("Booking received", body.String())
}

func BookingAdminEmail(b *domain.Booking) string {
	var body strings.Builder
	body.WriteString(field("Booking ID", b.BookingID))
	body.WriteString(field("Customer", b.FirstName+" "+b.LastName))
	body.WriteString(field("Email", b.Email))
	body.WriteString(field("Phone", orFallback(b.Phone)))
	body.WriteString(field("Destination", b.Destination))
	body.WriteString(field("Travel date", b.TravelDate))
	body.WriteString(field("Travelers", fmt.Sprintf("%d", b.Travelers)))
	body.WriteString(field("Total amount", orFallback(b.TotalAmount)))
	payment := b.PaymentMethod
	if payment != "" {
		payment = MaskTail(payment, 4)
	}
	body.WriteString(field("Payment method", orFallback(payment)))
	body.WriteString(field("Special requests", orFallback(b.SpecialRequests)))
	return wrap("New booking "+b.BookingID, body.String())
}

func ContactConfirmationEmail(m *domain.ContactMessage) string {
	var body strings.Builder
	body.WriteString(fmt.Sprintf("<p>Hi %s,</p><p>thanks for reaching out. We received your message and will reply as soon as possible.</p>", m.Name))
	body.WriteString(field("Subject", m.Subject))
	body.WriteString(field("Message", m.Message))
	return wrap("We got your message", body.String())
}

func ContactAdminEmail(m *domain.ContactMessage) string {
	var body strings.Builder
	body.WriteString(field("Name", m.Name))
	body.WriteString(field("Email", m.Email))
	body.WriteString(field("Phone", orFallback(m.Phone)))
	body.WriteString(field("Subject", m.Subject))
	body.WriteString(field("Message", m.Message))
	return wrap("New contact message", body.String())
}

func NewsletterConfirmationEmail(email string) string {
	var body strings.Builder
	body.WriteString("<p>You are now subscribed to the TravelWorld newsletter. Expect travel deals and destination guides in your inbox.</p>")
	body.WriteString(field("Subscribed address", email))
	return wrap("Welcome aboard", body.String())
}

func NewsletterAdminEmail(email string) string {
	var body strings.Builder
	body.WriteString(field("New subscriber", email))
	return wrap("Newsletter signup", body.String())
}
