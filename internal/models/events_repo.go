package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const EventsColName = "events"

type EventsRepo interface {
	CreateEvent(ctx context.Context, event *Event) (primitive.ObjectID, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error)
	UpdateEvent(ctx context.Context, id primitive.ObjectID, event *Event) error
	DeleteEvent(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) (primitive.ObjectID, error) {
	col := mdb.GetCollection(ctx, EventsColName)

	result, err := col.InsertOne(ctx, event)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting event: %v", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id, nil
}

func (mdb *MongodbRepo) ListEvents(ctx context.Context) ([]*Event, error) {
	col := mdb.GetCollection(ctx, EventsColName)

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding events: %v", err)
	}
	defer cursor.Close(ctx)

	events := []*Event{}
	for cursor.Next(ctx) {
		var event Event
		if err := cursor.Decode(&event); err != nil {
			return nil, fmt.Errorf("error decoding event: %v", err)
		}
		events = append(events, &event)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return events, nil
}

func (mdb *MongodbRepo) GetEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error) {
	col := mdb.GetCollection(ctx, EventsColName)

	var event Event
	err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("event %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error finding event: %v", err)
	}
	return &event, nil
}

// UpdateEvent replaces every entity field of the matching document. A field
// absent from the incoming body therefore reverts to its zero value.
func (mdb *MongodbRepo) UpdateEvent(ctx context.Context, id primitive.ObjectID, event *Event) error {
	col := mdb.GetCollection(ctx, EventsColName)

	update := bson.M{"$set": bson.M{
		"name":          event.Name,
		"description":   event.Description,
		"date":          event.Date,
		"venue_id":      event.VenueID,
		"max_attendees": event.MaxAttendees,
	}}

	result, err := col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating event: %v", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("event %w", ErrNotFound)
	}
	return nil
}

func (mdb *MongodbRepo) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	col := mdb.GetCollection(ctx, EventsColName)

	result, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting event: %v", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("event %w", ErrNotFound)
	}
	return nil
}
