// internal/app/store/lessons/lessonstore.go
package lessonstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	counterstore "github.com/dalemusser/ukrconnect/internal/app/store/counters"
	"github.com/dalemusser/ukrconnect/internal/app/store/storeutil"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Collection = "lessons"

var ErrNotFound = errors.New("lesson not found")

type Store struct {
	c   *mongo.Collection
	ids *counterstore.Store
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection), ids: counterstore.New(db)}
}

// Create inserts a lesson. ContentFormat defaults to html.
func (s *Store) Create(ctx context.Context, l models.Lesson) (models.Lesson, error) {
	if l.ContentFormat == "" {
		l.ContentFormat = models.ContentFormatHTML
	}
	if err := storeutil.Check(l); err != nil {
		return models.Lesson{}, err
	}

	id, err := s.ids.Next(ctx, Collection)
	if err != nil {
		return models.Lesson{}, err
	}
	l.ID = id
	l.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, l); err != nil {
		return models.Lesson{}, fmt.Errorf("insert lesson: %w", err)
	}
	return l, nil
}

// GetByID returns ErrNotFound (wrapping mongo.ErrNoDocuments) when no
// lesson has id.
func (s *Store) GetByID(ctx context.Context, id int64) (models.Lesson, error) {
	var l models.Lesson
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Lesson{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		return models.Lesson{}, err
	}
	return l, nil
}

// List returns every lesson ordered by OrderIndex, ties broken by
// insertion order.
func (s *Store) List(ctx context.Context) ([]models.Lesson, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "order_index", Value: 1},
		{Key: "_id", Value: 1},
	})
	return storeutil.FindAll[models.Lesson](ctx, s.c, bson.M{}, opts)
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
