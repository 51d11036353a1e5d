package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	communitystore "github.com/dalemusser/ukrconnect/internal/app/store/community"
	eventstore "github.com/dalemusser/ukrconnect/internal/app/store/events"
	heritagestore "github.com/dalemusser/ukrconnect/internal/app/store/heritage"
	lessonstore "github.com/dalemusser/ukrconnect/internal/app/store/lessons"
	resourcestore "github.com/dalemusser/ukrconnect/internal/app/store/resources"
	translationstore "github.com/dalemusser/ukrconnect/internal/app/store/translations"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures creates test records through the real stores, so IDs and
// timestamps are assigned the same way the application assigns them.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) CreateTranslation(ctx context.Context, ukrainian, english, category string) models.Translation {
	f.t.Helper()
	tr, err := translationstore.New(f.db).Create(ctx, models.Translation{
		Ukrainian: ukrainian,
		English:   english,
		Category:  category,
	})
	if err != nil {
		f.t.Fatalf("create translation %q: %v", english, err)
	}
	return tr
}

func (f *Fixtures) CreateLesson(ctx context.Context, title string, order int) models.Lesson {
	f.t.Helper()
	l, err := lessonstore.New(f.db).Create(ctx, models.Lesson{
		Title:       title,
		Description: title + " description",
		Content:     "<p>" + title + "</p>",
		Level:       models.DifficultyBeginner,
		OrderIndex:  order,
	})
	if err != nil {
		f.t.Fatalf("create lesson %q: %v", title, err)
	}
	return l
}

func (f *Fixtures) CreateCommunity(ctx context.Context, title, content, category string) models.CommunityInfo {
	f.t.Helper()
	c, err := communitystore.New(f.db).Create(ctx, models.CommunityInfo{
		Title:    title,
		Content:  content,
		Category: category,
	})
	if err != nil {
		f.t.Fatalf("create community entry %q: %v", title, err)
	}
	return c
}

func (f *Fixtures) CreateHeritage(ctx context.Context, title, content, category string) models.HeritageInfo {
	f.t.Helper()
	h, err := heritagestore.New(f.db).Create(ctx, models.HeritageInfo{
		Title:    title,
		Content:  content,
		Category: category,
	})
	if err != nil {
		f.t.Fatalf("create heritage entry %q: %v", title, err)
	}
	return h
}

func (f *Fixtures) CreateEvent(ctx context.Context, title string, date time.Time) models.Event {
	f.t.Helper()
	e, err := eventstore.New(f.db).Create(ctx, models.Event{
		Title:       title,
		Description: title + " description",
		Date:        date,
		Category:    "cultural",
	})
	if err != nil {
		f.t.Fatalf("create event %q: %v", title, err)
	}
	return e
}

func (f *Fixtures) CreateResource(ctx context.Context, title, description, category string) models.Resource {
	f.t.Helper()
	r, err := resourcestore.New(f.db).Create(ctx, models.Resource{
		Title:       title,
		Description: description,
		Category:    category,
	})
	if err != nil {
		f.t.Fatalf("create resource %q: %v", title, err)
	}
	return r
}
