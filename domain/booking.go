package domain

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookingID       string             `bson:"booking_id" json:"bookingId"`
	FirstName       string             `bson:"first_name" json:"firstName"`
	LastName        string             `bson:"last_name" json:"lastName"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Destination     string             `bson:"destination" json:"destination"`
	TravelDate      string             `bson:"travel_date" json:"travelDate"`
	Travelers       int                `bson:"travelers" json:"travelers"`
	TotalAmount     string             `bson:"total_amount,omitempty" json:"totalAmount,omitempty"`
	PaymentMethod   string             `bson:"payment_method,omitempty" json:"paymentMethod,omitempty"`
	Status          BookingStatus      `bson:"status" json:"status"`
	SpecialRequests string             `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
	CreatedAt       primitive.DateTime `bson:"created_at" json:"createdAt"`
}

type BookingRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Destination     string `json:"destination"`
	TravelDate      string `json:"travelDate"`
	Travelers       int    `json:"travelers"`
	TotalAmount     string `json:"totalAmount"`
	PaymentMethod   string `json:"paymentMethod"`
	SpecialRequests string `json:"specialRequests"`
}

// FirstMissingField returns the name of the first required field that is
// empty, or "" when the request is complete.
func (r *BookingRequest) FirstMissingField() string {
	switch {
	case strings.TrimSpace(r.FirstName) == "":
		return "firstName"
	case strings.TrimSpace(r.LastName) == "":
		return "lastName"
	case strings.TrimSpace(r.Email) == "":
		return "email"
	case strings.TrimSpace(r.Destination) == "":
		return "destination"
	case strings.TrimSpace(r.TravelDate) == "":
		return "travelDate"
	case r.Travelers < 1:
		return "travelers"
	}
	return ""
}

type BookingResponse struct {
	Success          bool             `json:"success"`
	BookingID        string           `json:"bookingId"`
	Message          string           `json:"message"`
	EmailSent        bool             `json:"emailSent"`
	AdminNotified    bool             `json:"adminNotified"`
	OperationResults OperationResults `json:"operationResults"`
}
