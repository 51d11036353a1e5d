// internal/app/store/heritage/heritagestore.go
package heritagestore

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
)

const Collection = "heritage_info"

var KeywordFields = []string{"title", "content"}

type Store struct {
	c   *mongo.Collection
	ids *counterstore.Store
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection), ids: counterstore.New(db)}
}

func (s *Store) Create(ctx context.Context, v models.HeritageInfo) (models.HeritageInfo, error) {
	if err := storeutil.Check(v); err != nil {
		return models.HeritageInfo{}, err
	}

	id, err := s.ids.Next(ctx, Collection)
	if err != nil {
		return models.HeritageInfo{}, err
	}
	v.ID = id
	v.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, v); err != nil {
		return models.HeritageInfo{}, fmt.Errorf("insert heritage entry: %w", err)
	}
	return v, nil
}

// List returns the records in category (every record for "all"),
// in insertion order.
func (s *Store) List(ctx context.Context, category string) ([]models.HeritageInfo, error) {
	return storeutil.FindAll[models.HeritageInfo](ctx, s.c, contentfilter.Category(category), storeutil.NaturalOrder())
}

// First returns the first n records in insertion order.
func (s *Store) First(ctx context.Context, n int64) ([]models.HeritageInfo, error) {
	return storeutil.FindAll[models.HeritageInfo](ctx, s.c, bson.M{}, storeutil.NaturalOrder().SetLimit(n))
}

// Search returns at most limit records whose title or content contains q.
func (s *Store) Search(ctx context.Context, q string, limit int64) ([]models.HeritageInfo, error) {
	opts := storeutil.NaturalOrder().SetLimit(limit)
	return storeutil.FindAll[models.HeritageInfo](ctx, s.c, contentfilter.Keyword(q, KeywordFields...), opts)
}

// Categories returns the distinct stored categories, sorted.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	return storeutil.DistinctStrings(ctx, s.c, "category")
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
