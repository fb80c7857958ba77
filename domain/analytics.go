package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// ActiveUsersKey identifies the single counter document in the analytics
// collection.
const ActiveUsersKey = "activeUsers"

const (
	ActionJoin  = "join"
	ActionLeave = "leave"
)

// ActiveUsers is a bare global gauge of open sessions. It carries no
// per-user identity and is used for display only.
type ActiveUsers struct {
	Type      string             `bson:"type" json:"type"`
	Count     int64              `bson:"count" json:"count"`
	UpdatedAt primitive.DateTime `bson:"updated_at" json:"updatedAt"`
}

type ActiveUsersRequest struct {
	Action string `json:"action"`
}

type DashboardStats struct {
	TotalBookings     int64            `json:"totalBookings"`
	BookingsByStatus  map[string]int64 `json:"bookingsByStatus"`
	TotalDestinations int64            `json:"totalDestinations"`
	ActiveUsers       int64            `json:"activeUsers"`
	RecentBookings    []*Booking       `json:"recentBookings"`
}
