package home

import (
	"net/http/httptest"
	"testing"
	"time"

	uierrors "github.com/dalemusser/ukrconnect/internal/app/features/errors"
	"github.com/dalemusser/ukrconnect/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return NewHandler(db, uierrors.NewErrorLogger(logger), logger), testutil.NewFixtures(t, db)
}

func TestLoad_EmptyDatabase(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	data, err := h.load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(data.Events)+len(data.Community)+len(data.Heritage) != 0 {
		t.Errorf("expected empty previews, got %+v", data)
	}
}

func TestLoad_CapsEachSection(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }

	fx.CreateEvent(ctx, "Past", now.AddDate(0, 0, -1))
	for i := 5; i > 0; i-- {
		fx.CreateEvent(ctx, "Upcoming", now.AddDate(0, 0, i))
		fx.CreateCommunity(ctx, "Centre", "A community centre.", "cultural_centers")
		fx.CreateHeritage(ctx, "Holodomor", "History.", "history")
	}

	data, err := h.load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(data.Events) != 3 || len(data.Community) != 3 || len(data.Heritage) != 3 {
		t.Fatalf("sizes = %d/%d/%d, want 3/3/3", len(data.Events), len(data.Community), len(data.Heritage))
	}
	// Soonest first, past events excluded.
	if !data.Events[0].Date.Equal(now.AddDate(0, 0, 1)) {
		t.Errorf("first event date = %v, want %v", data.Events[0].Date, now.AddDate(0, 0, 1))
	}
	if data.Community[0].ID >= data.Community[1].ID {
		t.Errorf("community preview not in insertion order: %d, %d", data.Community[0].ID, data.Community[1].ID)
	}
}

func TestServeRoot_DoesNotPanicOnLogic(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	func() {
		defer func() {
			if r := recover(); r != nil {
				// Template rendering may panic in tests
			}
		}()
		h.ServeRoot(rec, httptest.NewRequest("GET", "/", nil))
	}()
}
