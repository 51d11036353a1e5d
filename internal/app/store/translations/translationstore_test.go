package translationstore_test

import (
	"errors"
	"testing"

	"github.com/dalemusser/ukrconnect/internal/app/store/storeutil"
	translationstore "github.com/dalemusser/ukrconnect/internal/app/store/translations"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"github.com/dalemusser/ukrconnect/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := translationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Translation{
		Ukrainian:     "Привіт",
		English:       "Hi",
		Pronunciation: "Pry-vit",
		Category:      "greetings",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("first ID = %d, want 1", created.ID)
	}
	if created.DifficultyLevel != "beginner" {
		t.Errorf("DifficultyLevel = %q, want beginner", created.DifficultyLevel)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Ukrainian != "Привіт" || got.Pronunciation != "Pry-vit" {
		t.Errorf("round trip mismatch: %+v", got)
	}

	second := testutil.NewFixtures(t, db).CreateTranslation(ctx, "Так", "Yes", "conversation")
	if second.ID != 2 {
		t.Errorf("second ID = %d, want 2", second.ID)
	}
}

func TestStore_Create_RejectsMissingFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := translationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.Translation{English: "Hi", Category: "greetings"})
	if !errors.Is(err, storeutil.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}

	n, _ := store.Count(ctx, bson.M{})
	if n != 0 {
		t.Errorf("count = %d, want 0 after rejected create", n)
	}
}

func seedLookup(t *testing.T, f *testutil.Fixtures) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f.CreateTranslation(ctx, "Допоможіть!", "Help!", "emergency")
	f.CreateTranslation(ctx, "Викличте поліцію", "Call the police", "emergency")
	f.CreateTranslation(ctx, "Мені потрібен лікар", "I need a doctor", "healthcare")
	f.CreateTranslation(ctx, "Привіт", "Hi", "greetings")
}

func TestStore_Lookup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := translationstore.New(db)
	seedLookup(t, testutil.NewFixtures(t, db))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	tests := []struct {
		name     string
		category string
		search   string
		want     []string
	}{
		{"all no search", "all", "", []string{"Help!", "Call the police", "I need a doctor", "Hi"}},
		{"empty category is exact", "", "", nil},
		{"category only", "emergency", "", []string{"Help!", "Call the police"}},
		{"search english", "all", "doctor", []string{"I need a doctor"}},
		{"search ukrainian", "all", "поліц", []string{"Call the police"}},
		{"category and search", "emergency", "Help", []string{"Help!"}},
		{"search outside category", "greetings", "doctor", nil},
		{"unknown category", "sports", "", nil},
		{"case sensitive", "all", "help", nil},
		{"metacharacters literal", "all", "Help.", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Lookup(ctx, tt.category, tt.search)
			if err != nil {
				t.Fatalf("Lookup failed: %v", err)
			}
			if got == nil {
				t.Fatal("Lookup must return an empty slice, not nil")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results, want %d", len(got), len(tt.want))
			}
			for i, w := range tt.want {
				if got[i].English != w {
					t.Errorf("result[%d] = %q, want %q", i, got[i].English, w)
				}
			}
		})
	}
}

func TestStore_Search_Limit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := translationstore.New(db)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 12; i++ {
		f.CreateTranslation(ctx, "Слово", "Word", "conversation")
	}

	got, err := store.Search(ctx, "Word", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("got %d, want 10", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].ID <= got[i-1].ID {
			t.Errorf("results not in insertion order at %d", i)
		}
	}
}

func TestStore_ListForAdmin_Order(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := translationstore.New(db)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.CreateTranslation(ctx, "Б", "b", "housing")
	f.CreateTranslation(ctx, "В", "v", "emergency")
	f.CreateTranslation(ctx, "А", "a", "housing")

	got, err := store.ListForAdmin(ctx)
	if err != nil {
		t.Fatalf("ListForAdmin failed: %v", err)
	}
	want := []string{"v", "a", "b"}
	for i, w := range want {
		if got[i].English != w {
			t.Errorf("result[%d] = %q, want %q", i, got[i].English, w)
		}
	}
}

func TestStore_Categories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := translationstore.New(db)
	seedLookup(t, testutil.NewFixtures(t, db))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	want := []string{"emergency", "greetings", "healthcare"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
