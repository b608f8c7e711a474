package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/hostelhub/hostelhub/internal/pkg/apperrors"
	"github.com/hostelhub/hostelhub/internal/pkg/logger"
)

// Mongo implements Store on top of a MongoDB database.
type Mongo struct {
	db *mongo.Database
}

// NewMongo wraps an already-connected database handle.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

// Connect dials MongoDB, verifies the connection with a ping and
// returns the client together with the named database.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info().Str("database", dbName).Msg("Connected to MongoDB")
	return client, client.Database(dbName), nil
}

func (m *Mongo) Insert(ctx context.Context, collection string, doc bson.M) (string, error) {
	now := time.Now().UTC()
	doc["created_at"] = now
	doc["updated_at"] = now

	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		logger.Error().Err(err).Str("collection", collection).Msg("Insert failed")
		return "", fmt.Errorf("error inserting into %s: %w", collection, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

func (m *Mongo) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	var doc bson.M
	err := m.db.Collection(collection).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Str("collection", collection).Msg("FindOne failed")
		return nil, fmt.Errorf("error querying %s: %w", collection, err)
	}
	return doc, nil
}

func (m *Mongo) FindAll(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	cur, err := m.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Str("collection", collection).Msg("Find failed")
		return nil, fmt.Errorf("error querying %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding %s results: %w", collection, err)
	}
	return docs, nil
}

func (m *Mongo) UpdateOne(ctx context.Context, collection string, filter, set bson.M) (bool, error) {
	patch := make(bson.M, len(set)+1)
	for k, v := range set {
		patch[k] = v
	}
	patch["updated_at"] = time.Now().UTC()

	res, err := m.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": patch})
	if err != nil {
		logger.Error().Err(err).Str("collection", collection).Msg("UpdateOne failed")
		return false, fmt.Errorf("error updating %s: %w", collection, err)
	}
	return res.MatchedCount > 0, nil
}

func (m *Mongo) DeleteOne(ctx context.Context, collection string, filter bson.M) (bool, error) {
	res, err := m.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Str("collection", collection).Msg("DeleteOne failed")
		return false, fmt.Errorf("error deleting from %s: %w", collection, err)
	}
	return res.DeletedCount > 0, nil
}

func (m *Mongo) IncrementField(ctx context.Context, collection string, filter bson.M, field string, delta int) error {
	_, err := m.db.Collection(collection).UpdateOne(ctx, filter, bson.M{
		"$inc": bson.M{field: delta},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		logger.Error().Err(err).Str("collection", collection).Str("field", field).Msg("IncrementField failed")
		return fmt.Errorf("error incrementing %s.%s: %w", collection, field, err)
	}
	return nil
}

func (m *Mongo) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := m.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing collections: %w", err)
	}
	return names, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.db.Client().Ping(ctx, readpref.Primary())
}

// Name returns the database name, used by the health endpoint.
func (m *Mongo) Name() string {
	return m.db.Name()
}
