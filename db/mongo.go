package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

type collectionDocument struct {
	Key       string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoBackend keeps one document per collection key.
type MongoBackend struct {
	coll *mongo.Collection
}

func NewMongoBackend(coll *mongo.Collection) *MongoBackend {
	return &MongoBackend{coll: coll}
}

// OpenMongo connects and pings the primary. The caller disconnects the client.
func OpenMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	const op = "db.OpenMongo"

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}
	return client, nil
}

func (b *MongoBackend) Read(ctx context.Context, key string) ([]byte, error) {
	const op = "db.MongoBackend.Read"

	var doc collectionDocument
	err := b.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return []byte(doc.Payload), nil
}

func (b *MongoBackend) Write(ctx context.Context, key string, payload []byte) error {
	const op = "db.MongoBackend.Write"

	update := bson.M{"$set": bson.M{
		"payload":   string(payload),
		"updatedAt": time.Now().UTC(),
	}}
	_, err := b.coll.UpdateOne(ctx, bson.M{"_id": key}, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
