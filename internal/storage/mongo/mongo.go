// Package mongo provides a MongoDB-backed implementation of the
// storage.Store interface.
//
// Document field names keep their historical mixed naming ("payment_method"
// but "contactNumber") so databases written by earlier versions of the
// tracker keep working.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbdlabs/sbd/internal/storage"
)

// Ensure MongoStore implements storage.Store
var _ storage.Store = (*MongoStore)(nil)

// MongoStore implements storage.Store using MongoDB, one collection per
// record type.
type MongoStore struct {
	client      *mongo.Client
	expenses    *mongo.Collection
	goals       *mongo.Collection
	restaurants *mongo.Collection
}

// New connects to MongoDB at the given URI and pings it to verify the
// connection before returning a store bound to the named database.
func New(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(database)
	return &MongoStore{
		client:      client,
		expenses:    db.Collection("expenses"),
		goals:       db.Collection("goals"),
		restaurants: db.Collection("restaurants"),
	}, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// objectID parses a hex record ID into an ObjectID.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid record id %q: %w", id, err)
	}
	return oid, nil
}
