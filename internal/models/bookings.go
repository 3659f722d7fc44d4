package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const BookingsColName = "bookings"

// Booking references its event and attendee by plain string id. Existence of
// either is deliberately not verified, and quantity is never checked against
// venue capacity or event max_attendees.
type Booking struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	EventID    string             `bson:"event_id" json:"event_id"`
	AttendeeID string             `bson:"attendee_id" json:"attendee_id"`
	TicketType string             `bson:"ticket_type" json:"ticket_type"`
	Quantity   int                `bson:"quantity" json:"quantity" validate:"gt=0"`
	BookedAt   time.Time          `bson:"booked_at,omitempty" json:"booked_at,omitempty"`
}

type BookingsRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (primitive.ObjectID, error)
	ListBookings(ctx context.Context) ([]*Booking, error)
	GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error)
	UpdateBooking(ctx context.Context, id primitive.ObjectID, booking *Booking) error
	DeleteBooking(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (primitive.ObjectID, error) {
	col := mdb.GetCollection(ctx, BookingsColName)

	result, err := col.InsertOne(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting booking: %v", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id, nil
}

func (mdb *MongodbRepo) ListBookings(ctx context.Context) ([]*Booking, error) {
	col := mdb.GetCollection(ctx, BookingsColName)

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	bookings := []*Booking{}
	for cursor.Next(ctx) {
		var booking Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("error decoding booking: %v", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return bookings, nil
}

func (mdb *MongodbRepo) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error) {
	col := mdb.GetCollection(ctx, BookingsColName)

	var booking Booking
	err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("booking %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error finding booking: %v", err)
	}
	return &booking, nil
}

func (mdb *MongodbRepo) UpdateBooking(ctx context.Context, id primitive.ObjectID, booking *Booking) error {
	col := mdb.GetCollection(ctx, BookingsColName)

	update := bson.M{"$set": bson.M{
		"event_id":    booking.EventID,
		"attendee_id": booking.AttendeeID,
		"ticket_type": booking.TicketType,
		"quantity":    booking.Quantity,
	}}

	result, err := col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating booking: %v", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %w", ErrNotFound)
	}
	return nil
}

func (mdb *MongodbRepo) DeleteBooking(ctx context.Context, id primitive.ObjectID) error {
	col := mdb.GetCollection(ctx, BookingsColName)

	result, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting booking: %v", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("booking %w", ErrNotFound)
	}
	return nil
}
