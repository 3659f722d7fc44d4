package models

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

// DatabaseName is the MongoDB database holding every collection.
const DatabaseName = "event_management_db"

type MongodbRepo struct {
	mongodbClient *mongo.Client
	database      string
}

func MongodbNewRepo(mongodbClient *mongo.Client, database string) *MongodbRepo {
	if database == "" {
		database = DatabaseName
	}
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		database:      database,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, colName string) *mongo.Collection {
	return mdb.mongodbClient.Database(mdb.database).Collection(colName)
}
