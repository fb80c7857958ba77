package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Destination struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description string             `bson:"description" json:"description"`
	Location    string             `bson:"location" json:"location" validate:"required"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	Rating      float64            `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	Image       string             `bson:"image" json:"image"`
	Featured    bool               `bson:"featured" json:"featured"`
	Activities  []string           `bson:"activities" json:"activities"`
	Duration    string             `bson:"duration" json:"duration"`
	CreatedAt   primitive.DateTime `bson:"created_at" json:"createdAt"`
}

type Destinations []*Destination
