package database

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	mongoClient *mongo.Client
	mongoOnce   sync.Once
	mongoErr    error
)

// ConnectMongo opens the process-wide MongoDB client. The client is created
// at most once per process and reused across requests; the pool is sized to
// a single connection and never explicitly closed between requests.
func ConnectMongo(uri string) (*mongo.Client, error) {
	mongoOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		opts := options.Client().
			ApplyURI(uri).
			SetMaxPoolSize(1).
			SetServerSelectionTimeout(5 * time.Second).
			SetConnectTimeout(5 * time.Second)

		mongoClient, mongoErr = mongo.Connect(ctx, opts)
		if mongoErr != nil {
			return
		}
		mongoErr = mongoClient.Ping(ctx, readpref.Primary())
	})
	return mongoClient, mongoErr
}
