package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const VenuesColName = "venues"

type VenuesRepo interface {
	CreateVenue(ctx context.Context, venue *Venue) (primitive.ObjectID, error)
	ListVenues(ctx context.Context) ([]*Venue, error)
	GetVenueByID(ctx context.Context, id primitive.ObjectID) (*Venue, error)
	UpdateVenue(ctx context.Context, id primitive.ObjectID, venue *Venue) error
	DeleteVenue(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateVenue(ctx context.Context, venue *Venue) (primitive.ObjectID, error) {
	col := mdb.GetCollection(ctx, VenuesColName)

	result, err := col.InsertOne(ctx, venue)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting venue: %v", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id, nil
}

func (mdb *MongodbRepo) ListVenues(ctx context.Context) ([]*Venue, error) {
	col := mdb.GetCollection(ctx, VenuesColName)

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding venues: %v", err)
	}
	defer cursor.Close(ctx)

	venues := []*Venue{}
	for cursor.Next(ctx) {
		var venue Venue
		if err := cursor.Decode(&venue); err != nil {
			return nil, fmt.Errorf("error decoding venue: %v", err)
		}
		venues = append(venues, &venue)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return venues, nil
}

func (mdb *MongodbRepo) GetVenueByID(ctx context.Context, id primitive.ObjectID) (*Venue, error) {
	col := mdb.GetCollection(ctx, VenuesColName)

	var venue Venue
	err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&venue)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("venue %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error finding venue: %v", err)
	}
	return &venue, nil
}

func (mdb *MongodbRepo) UpdateVenue(ctx context.Context, id primitive.ObjectID, venue *Venue) error {
	col := mdb.GetCollection(ctx, VenuesColName)

	update := bson.M{"$set": bson.M{
		"name":     venue.Name,
		"address":  venue.Address,
		"capacity": venue.Capacity,
	}}

	result, err := col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating venue: %v", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("venue %w", ErrNotFound)
	}
	return nil
}

func (mdb *MongodbRepo) DeleteVenue(ctx context.Context, id primitive.ObjectID) error {
	col := mdb.GetCollection(ctx, VenuesColName)

	result, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting venue: %v", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("venue %w", ErrNotFound)
	}
	return nil
}
