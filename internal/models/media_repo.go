package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MediaRepo interface {
	InsertMedia(ctx context.Context, media *Media) (primitive.ObjectID, error)
	ListMediaByOwner(ctx context.Context, kind MediaKind, ownerID string) ([]*Media, error)
	GetMediaByID(ctx context.Context, kind MediaKind, id primitive.ObjectID) (*Media, error)
}

func (mdb *MongodbRepo) InsertMedia(ctx context.Context, media *Media) (primitive.ObjectID, error) {
	col := mdb.GetCollection(ctx, media.MediaType.Collection())

	result, err := col.InsertOne(ctx, media)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting %s: %v", media.MediaType, err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id, nil
}

// ListMediaByOwner returns the metadata of every record owned by the given
// entity, newest upload first. The payload is excluded via projection so
// listings stay cheap even with large files inline.
func (mdb *MongodbRepo) ListMediaByOwner(ctx context.Context, kind MediaKind, ownerID string) ([]*Media, error) {
	col := mdb.GetCollection(ctx, kind.Collection())

	opts := options.Find().
		SetSort(bson.D{{Key: "uploaded_at", Value: -1}}).
		SetProjection(bson.M{"content": 0})

	cursor, err := col.Find(ctx, bson.M{kind.OwnerField(): ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding %s records: %v", kind, err)
	}
	defer cursor.Close(ctx)

	records := []*Media{}
	for cursor.Next(ctx) {
		var media Media
		if err := cursor.Decode(&media); err != nil {
			return nil, fmt.Errorf("error decoding %s record: %v", kind, err)
		}
		records = append(records, &media)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return records, nil
}

func (mdb *MongodbRepo) GetMediaByID(ctx context.Context, kind MediaKind, id primitive.ObjectID) (*Media, error) {
	col := mdb.GetCollection(ctx, kind.Collection())

	var media Media
	err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&media)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s %w", kind, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error finding %s: %v", kind, err)
	}
	return &media, nil
}
