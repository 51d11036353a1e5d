// internal/app/store/events/eventstore.go
package eventstore

import (
	"context"
	"fmt"
	"time"

	counterstore "github.com/dalemusser/ukrconnect/internal/app/store/counters"
	"github.com/dalemusser/ukrconnect/internal/app/store/storeutil"
	"github.com/dalemusser/ukrconnect/internal/app/system/contentfilter"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Collection = "events"

// DefaultPastLimit caps the past-events listing.
const DefaultPastLimit = 10

var KeywordFields = []string{"title", "description"}

type Store struct {
	c   *mongo.Collection
	ids *counterstore.Store
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection), ids: counterstore.New(db)}
}

func (s *Store) Create(ctx context.Context, e models.Event) (models.Event, error) {
	if err := storeutil.Check(e); err != nil {
		return models.Event{}, err
	}

	id, err := s.ids.Next(ctx, Collection)
	if err != nil {
		return models.Event{}, err
	}
	e.ID = id
	e.Date = e.Date.UTC()
	e.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.Event{}, fmt.Errorf("insert event: %w", err)
	}
	return e, nil
}

// Upcoming returns events dated at or after now, soonest first. A limit
// of 0 returns all of them.
func (s *Store) Upcoming(ctx context.Context, now time.Time, limit int64) ([]models.Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(limit)
	return storeutil.FindAll[models.Event](ctx, s.c, bson.M{"date": bson.M{"$gte": now}}, opts)
}

// Past returns events dated strictly before now, most recent first.
func (s *Store) Past(ctx context.Context, now time.Time, limit int64) ([]models.Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)
	return storeutil.FindAll[models.Event](ctx, s.c, bson.M{"date": bson.M{"$lt": now}}, opts)
}

// Window is the events page split at a single instant.
type Window struct {
	Now      time.Time
	Upcoming []models.Event
	Past     []models.Event
}

// Partition splits events at now: every upcoming event and at most
// pastLimit past ones. Every stored event falls in exactly one half
// unless the past half was truncated.
func (s *Store) Partition(ctx context.Context, now time.Time, pastLimit int64) (Window, error) {
	up, err := s.Upcoming(ctx, now, 0)
	if err != nil {
		return Window{}, fmt.Errorf("upcoming events: %w", err)
	}
	past, err := s.Past(ctx, now, pastLimit)
	if err != nil {
		return Window{}, fmt.Errorf("past events: %w", err)
	}
	return Window{Now: now, Upcoming: up, Past: past}, nil
}

// Search returns at most limit events whose title or description
// contains q, in insertion order.
func (s *Store) Search(ctx context.Context, q string, limit int64) ([]models.Event, error) {
	opts := storeutil.NaturalOrder().SetLimit(limit)
	return storeutil.FindAll[models.Event](ctx, s.c, contentfilter.Keyword(q, KeywordFields...), opts)
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
