package sitesearch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dalemusser/ukrconnect/internal/domain/models"
)

// fakeFinder matches q against fields of its records the way the stores do.
type fakeFinder[T any] struct {
	items  []T
	fields func(T) []string
	calls  int
	limits []int64
	err    error
}

func (f *fakeFinder[T]) Search(_ context.Context, q string, limit int64) ([]T, error) {
	f.calls++
	f.limits = append(f.limits, limit)
	if f.err != nil {
		return nil, f.err
	}
	var out []T
	for _, it := range f.items {
		for _, field := range f.fields(it) {
			if strings.Contains(field, q) {
				out = append(out, it)
				break
			}
		}
	}
	return out, nil
}

type fakes struct {
	tr  *fakeFinder[models.Translation]
	com *fakeFinder[models.CommunityInfo]
	her *fakeFinder[models.HeritageInfo]
	ev  *fakeFinder[models.Event]
	res *fakeFinder[models.Resource]
}

func newFakes() fakes {
	return fakes{
		tr:  &fakeFinder[models.Translation]{fields: func(t models.Translation) []string { return []string{t.Ukrainian, t.English} }},
		com: &fakeFinder[models.CommunityInfo]{fields: func(c models.CommunityInfo) []string { return []string{c.Title, c.Content} }},
		her: &fakeFinder[models.HeritageInfo]{fields: func(h models.HeritageInfo) []string { return []string{h.Title, h.Content} }},
		ev:  &fakeFinder[models.Event]{fields: func(e models.Event) []string { return []string{e.Title, e.Description} }},
		res: &fakeFinder[models.Resource]{fields: func(r models.Resource) []string { return []string{r.Title, r.Description} }},
	}
}

func (f fakes) service(limit int64) *Service {
	return NewWithFinders(f.tr, f.com, f.her, f.ev, f.res, limit)
}

func TestRun_EmptyQueryDoesNoLookups(t *testing.T) {
	f := newFakes()
	res, err := f.service(0).Run(context.Background(), "")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !res.Empty() {
		t.Error("expected empty results")
	}
	if f.tr.calls+f.com.calls+f.her.calls+f.ev.calls+f.res.calls != 0 {
		t.Error("empty query must not reach storage")
	}
}

func TestRun_InvalidUTF8MatchesNothing(t *testing.T) {
	f := newFakes()
	f.tr.err = errors.New("regular expression is invalid UTF-8")

	res, err := f.service(0).Run(context.Background(), "Ки\xff")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !res.Empty() || res.Query != "Ки\xff" {
		t.Errorf("res = %+v, want empty results echoing the query", res)
	}
	if f.tr.calls+f.com.calls+f.her.calls+f.ev.calls+f.res.calls != 0 {
		t.Error("a query that is not valid UTF-8 must not reach storage")
	}
}

func TestRun_AggregatesPerType(t *testing.T) {
	f := newFakes()
	f.tr.items = []models.Translation{{ID: 1, Ukrainian: "Україна", English: "Ukraine"}, {ID: 2, English: "Hello"}}
	f.com.items = []models.CommunityInfo{{ID: 1, Title: "Ukrainian Center", Content: "x"}}
	f.her.items = []models.HeritageInfo{{ID: 1, Title: "Pysanky", Content: "A Ukrainian tradition"}}
	f.ev.items = []models.Event{{ID: 1, Title: "Picnic", Description: "family"}}
	f.res.items = []models.Resource{{ID: 1, Title: "Ukrainian Credit Union"}}

	res, err := f.service(0).Run(context.Background(), "Ukrain")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Query != "Ukrain" {
		t.Errorf("Query = %q", res.Query)
	}
	if len(res.Translations) != 1 || len(res.Community) != 1 || len(res.Heritage) != 1 || len(res.Resources) != 1 {
		t.Errorf("unexpected per-type counts: %+v", res)
	}
	if res.Events == nil || len(res.Events) != 0 {
		t.Errorf("events: want empty non-nil slice, got %v", res.Events)
	}
	if res.Total() != 4 {
		t.Errorf("Total = %d, want 4", res.Total())
	}
}

func TestRun_CaseSensitive(t *testing.T) {
	f := newFakes()
	f.tr.items = []models.Translation{{ID: 1, English: "Ukrainian"}}

	res, _ := f.service(0).Run(context.Background(), "ukrainian")
	if len(res.Translations) != 0 {
		t.Error("lowercase query should not match capitalized text")
	}
}

func TestRun_TruncatesToLimit(t *testing.T) {
	f := newFakes()
	for i := int64(1); i <= 15; i++ {
		f.ev.items = append(f.ev.items, models.Event{ID: i, Title: "Festival"})
	}

	res, err := f.service(0).Run(context.Background(), "Festival")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(res.Events) != PerTypeLimit {
		t.Fatalf("events: got %d, want %d", len(res.Events), PerTypeLimit)
	}
	if res.Events[0].ID != 1 || res.Events[9].ID != 10 {
		t.Errorf("truncation should keep the first records in order, got %d..%d", res.Events[0].ID, res.Events[9].ID)
	}
	if f.ev.limits[0] != PerTypeLimit {
		t.Errorf("limit passed to store = %d, want %d", f.ev.limits[0], PerTypeLimit)
	}
}

func TestRun_CustomLimit(t *testing.T) {
	f := newFakes()
	for i := int64(1); i <= 5; i++ {
		f.res.items = append(f.res.items, models.Resource{ID: i, Title: "Office"})
	}
	res, _ := f.service(3).Run(context.Background(), "Office")
	if len(res.Resources) != 3 {
		t.Errorf("got %d, want 3", len(res.Resources))
	}
}

func TestRun_StorageErrorIsWrapped(t *testing.T) {
	f := newFakes()
	boom := errors.New("connection refused")
	f.her.err = boom

	_, err := f.service(0).Run(context.Background(), "x")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
	if !strings.Contains(err.Error(), "search heritage") {
		t.Errorf("error should name the entity type: %v", err)
	}
	if f.ev.calls != 0 {
		t.Error("search should stop at the first failure")
	}
}
