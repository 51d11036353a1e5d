// internal/app/store/translations/translationstore.go
package translationstore

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

const Collection = "translations"

// KeywordFields are the fields a keyword lookup matches against.
var KeywordFields = []string{"ukrainian", "english"}

type Store struct {
	c   *mongo.Collection
	ids *counterstore.Store
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection), ids: counterstore.New(db)}
}

// Create validates t, assigns an ID and CreatedAt, and inserts it.
// DifficultyLevel defaults to beginner.
func (s *Store) Create(ctx context.Context, t models.Translation) (models.Translation, error) {
	if t.DifficultyLevel == "" {
		t.DifficultyLevel = models.DifficultyBeginner
	}
	if err := storeutil.Check(t); err != nil {
		return models.Translation{}, err
	}

	id, err := s.ids.Next(ctx, Collection)
	if err != nil {
		return models.Translation{}, err
	}
	t.ID = id
	t.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Translation{}, fmt.Errorf("insert translation: %w", err)
	}
	return t, nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (models.Translation, error) {
	var t models.Translation
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		return models.Translation{}, err
	}
	return t, nil
}

// Lookup returns translations in the given category whose ukrainian or
// english text contains search. category "all" matches every record and
// an empty search matches every text; results are in insertion order and
// uncapped.
func (s *Store) Lookup(ctx context.Context, category, search string) ([]models.Translation, error) {
	filter := contentfilter.And(
		contentfilter.Category(category),
		contentfilter.Keyword(search, KeywordFields...),
	)
	return storeutil.FindAll[models.Translation](ctx, s.c, filter, storeutil.NaturalOrder())
}

// Search returns at most limit translations matching q, in insertion
// order. A limit of 0 means no limit.
func (s *Store) Search(ctx context.Context, q string, limit int64) ([]models.Translation, error) {
	opts := storeutil.NaturalOrder().SetLimit(limit)
	return storeutil.FindAll[models.Translation](ctx, s.c, contentfilter.Keyword(q, KeywordFields...), opts)
}

// ListForAdmin returns every translation ordered by category, then
// ukrainian text.
func (s *Store) ListForAdmin(ctx context.Context) ([]models.Translation, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "category", Value: 1},
		{Key: "ukrainian", Value: 1},
		{Key: "_id", Value: 1},
	})
	return storeutil.FindAll[models.Translation](ctx, s.c, bson.M{}, opts)
}

// Categories returns the distinct stored categories, sorted.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	return storeutil.DistinctStrings(ctx, s.c, "category")
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
