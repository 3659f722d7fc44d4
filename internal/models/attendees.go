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

const AttendeesColName = "attendees"

type Attendee struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone,omitempty"` // optional
	RegisteredAt time.Time          `bson:"registered_at,omitempty" json:"registered_at,omitempty"`
}

type AttendeesRepo interface {
	CreateAttendee(ctx context.Context, attendee *Attendee) (primitive.ObjectID, error)
	ListAttendees(ctx context.Context) ([]*Attendee, error)
	GetAttendeeByID(ctx context.Context, id primitive.ObjectID) (*Attendee, error)
	UpdateAttendee(ctx context.Context, id primitive.ObjectID, attendee *Attendee) error
	DeleteAttendee(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateAttendee(ctx context.Context, attendee *Attendee) (primitive.ObjectID, error) {
	col := mdb.GetCollection(ctx, AttendeesColName)

	result, err := col.InsertOne(ctx, attendee)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting attendee: %v", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id, nil
}

func (mdb *MongodbRepo) ListAttendees(ctx context.Context) ([]*Attendee, error) {
	col := mdb.GetCollection(ctx, AttendeesColName)

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding attendees: %v", err)
	}
	defer cursor.Close(ctx)

	attendees := []*Attendee{}
	for cursor.Next(ctx) {
		var attendee Attendee
		if err := cursor.Decode(&attendee); err != nil {
			return nil, fmt.Errorf("error decoding attendee: %v", err)
		}
		attendees = append(attendees, &attendee)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return attendees, nil
}

func (mdb *MongodbRepo) GetAttendeeByID(ctx context.Context, id primitive.ObjectID) (*Attendee, error) {
	col := mdb.GetCollection(ctx, AttendeesColName)

	var attendee Attendee
	err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&attendee)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("attendee %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error finding attendee: %v", err)
	}
	return &attendee, nil
}

// UpdateAttendee replaces the attendee fields wholesale; registered_at is left
// as written at creation time.
func (mdb *MongodbRepo) UpdateAttendee(ctx context.Context, id primitive.ObjectID, attendee *Attendee) error {
	col := mdb.GetCollection(ctx, AttendeesColName)

	update := bson.M{"$set": bson.M{
		"name":  attendee.Name,
		"email": attendee.Email,
		"phone": attendee.Phone,
	}}

	result, err := col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating attendee: %v", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("attendee %w", ErrNotFound)
	}
	return nil
}

func (mdb *MongodbRepo) DeleteAttendee(ctx context.Context, id primitive.ObjectID) error {
	col := mdb.GetCollection(ctx, AttendeesColName)

	result, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting attendee: %v", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("attendee %w", ErrNotFound)
	}
	return nil
}
