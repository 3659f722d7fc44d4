package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	Date         string             `bson:"date" json:"date"` // ISO-8601, stored as given
	VenueID      string             `bson:"venue_id" json:"venue_id"`
	MaxAttendees int                `bson:"max_attendees" json:"max_attendees" validate:"gte=0"`
}
