// Package counterstore allocates integer identifiers. Each collection has
// one document {_id: <collection>, seq: n} in the counters collection;
// Next increments it atomically and returns the new value.
package counterstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Collection = "counters"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

type counter struct {
	Name string `bson:"_id"`
	Seq  int64  `bson:"seq"`
}

// Next returns the next identifier for name, starting at 1.
func (s *Store) Next(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c counter
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&c)
	if err != nil {
		return 0, fmt.Errorf("next id for %s: %w", name, err)
	}
	return c.Seq, nil
}

// Current returns the last identifier handed out for name, or 0.
func (s *Store) Current(ctx context.Context, name string) (int64, error) {
	var c counter
	err := s.c.FindOne(ctx, bson.M{"_id": name}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return c.Seq, nil
}
