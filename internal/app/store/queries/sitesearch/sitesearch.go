// internal/app/store/queries/sitesearch/sitesearch.go
package sitesearch

import (
	"context"
	"fmt"

	communitystore "github.com/dalemusser/ukrconnect/internal/app/store/community"
	eventstore "github.com/dalemusser/ukrconnect/internal/app/store/events"
	heritagestore "github.com/dalemusser/ukrconnect/internal/app/store/heritage"
	resourcestore "github.com/dalemusser/ukrconnect/internal/app/store/resources"
	translationstore "github.com/dalemusser/ukrconnect/internal/app/store/translations"
	"github.com/dalemusser/ukrconnect/internal/app/system/contentfilter"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// PerTypeLimit caps each entity type's result list.
const PerTypeLimit = 10

// Finder returns at most limit records of one type whose searchable
// fields contain q, in insertion order.
type Finder[T any] interface {
	Search(ctx context.Context, q string, limit int64) ([]T, error)
}

// Results holds one independent list per searched entity type. Lessons
// are not searched.
type Results struct {
	Query        string
	Translations []models.Translation
	Community    []models.CommunityInfo
	Heritage     []models.HeritageInfo
	Events       []models.Event
	Resources    []models.Resource
}

// Total is the number of hits across all types.
func (r Results) Total() int {
	return len(r.Translations) + len(r.Community) + len(r.Heritage) + len(r.Events) + len(r.Resources)
}

func (r Results) Empty() bool { return r.Total() == 0 }

type Service struct {
	translations Finder[models.Translation]
	community    Finder[models.CommunityInfo]
	heritage     Finder[models.HeritageInfo]
	events       Finder[models.Event]
	resources    Finder[models.Resource]
	limit        int64
}

// New wires the service to the content stores in db. A limit <= 0 uses
// PerTypeLimit.
func New(db *mongo.Database, limit int64) *Service {
	return NewWithFinders(
		translationstore.New(db),
		communitystore.New(db),
		heritagestore.New(db),
		eventstore.New(db),
		resourcestore.New(db),
		limit,
	)
}

func NewWithFinders(
	translations Finder[models.Translation],
	community Finder[models.CommunityInfo],
	heritage Finder[models.HeritageInfo],
	events Finder[models.Event],
	resources Finder[models.Resource],
	limit int64,
) *Service {
	if limit <= 0 {
		limit = PerTypeLimit
	}
	return &Service{
		translations: translations,
		community:    community,
		heritage:     heritage,
		events:       events,
		resources:    resources,
		limit:        limit,
	}
}

// Run searches every entity type for q, one after another. An empty q,
// or one that is not valid UTF-8, returns empty Results without touching
// storage; q is otherwise used verbatim (no trimming, no case folding).
func (s *Service) Run(ctx context.Context, q string) (Results, error) {
	res := Results{Query: q}
	if q == "" || !contentfilter.Usable(q) {
		return res, nil
	}

	var err error
	if res.Translations, err = find(ctx, s.translations, q, s.limit); err != nil {
		return Results{}, fmt.Errorf("search translations: %w", err)
	}
	if res.Community, err = find(ctx, s.community, q, s.limit); err != nil {
		return Results{}, fmt.Errorf("search community: %w", err)
	}
	if res.Heritage, err = find(ctx, s.heritage, q, s.limit); err != nil {
		return Results{}, fmt.Errorf("search heritage: %w", err)
	}
	if res.Events, err = find(ctx, s.events, q, s.limit); err != nil {
		return Results{}, fmt.Errorf("search events: %w", err)
	}
	if res.Resources, err = find(ctx, s.resources, q, s.limit); err != nil {
		return Results{}, fmt.Errorf("search resources: %w", err)
	}
	return res, nil
}

func find[T any](ctx context.Context, f Finder[T], q string, limit int64) ([]T, error) {
	items, err := f.Search(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	if int64(len(items)) > limit {
		items = items[:limit]
	}
	return items, nil
}
