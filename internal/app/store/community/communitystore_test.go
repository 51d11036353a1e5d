package communitystore_test

import (
	"errors"
	"testing"

	communitystore "github.com/dalemusser/ukrconnect/internal/app/store/community"
	"github.com/dalemusser/ukrconnect/internal/app/store/storeutil"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"github.com/dalemusser/ukrconnect/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStore_List_CategoryFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := communitystore.New(db)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.CreateCommunity(ctx, "Cultural Center", "Museum and library", "cultural_centers")
	f.CreateCommunity(ctx, "St. Josaphat", "Ukrainian Catholic parish", "religious")
	f.CreateCommunity(ctx, "Hall", "Community hall", "cultural_centers")

	all, err := store.List(ctx, "all")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all: got %d, want 3", len(all))
	}

	centers, _ := store.List(ctx, "cultural_centers")
	if len(centers) != 2 || centers[0].Title != "Cultural Center" || centers[1].Title != "Hall" {
		t.Errorf("cultural_centers: got %+v", centers)
	}

	none, err := store.List(ctx, "sports")
	if err != nil {
		t.Fatalf("unknown category should not error: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("sports: want empty non-nil slice, got %v", none)
	}

	partial, _ := store.List(ctx, "cultural")
	if len(partial) != 0 {
		t.Error("category match must be exact, not prefix")
	}
}

func TestStore_FirstAndSearch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := communitystore.New(db)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, title := range []string{"One", "Two", "Three", "Four"} {
		f.CreateCommunity(ctx, title, "Ukrainian community "+title, "organizations")
	}

	first, err := store.First(ctx, 3)
	if err != nil {
		t.Fatalf("First failed: %v", err)
	}
	if len(first) != 3 || first[0].Title != "One" || first[2].Title != "Three" {
		t.Errorf("First(3) = %+v", first)
	}

	hits, err := store.Search(ctx, "community Fo", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(hits) != 1 || hits[0].Title != "Four" {
		t.Errorf("Search matched content wrong: %+v", hits)
	}
}

func TestStore_Create_Invalid(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := communitystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.CommunityInfo{Title: "No content", Category: "media"})
	if !errors.Is(err, storeutil.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if n, _ := store.Count(ctx, bson.M{}); n != 0 {
		t.Errorf("count = %d, want 0", n)
	}
}
