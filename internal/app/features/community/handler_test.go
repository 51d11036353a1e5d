package community

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/ukrconnect/internal/app/features/errors"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"github.com/dalemusser/ukrconnect/internal/testutil"
	"go.uber.org/zap"
)

func TestToItem(t *testing.T) {
	got := toItem(models.CommunityInfo{
		Title:    "Holy Family Ukrainian Catholic Church",
		Content:  "Sunday Divine Liturgy.\n\nAll welcome.",
		Category: "religious",
		Phone:    "(204) 338-6088",
	}, 0)

	if got.CategoryLabel != "Religious Organizations" {
		t.Errorf("CategoryLabel = %q", got.CategoryLabel)
	}
	if !strings.Contains(string(got.Content), "<p>All welcome.</p>") {
		t.Errorf("plain text content not paragraphed: %q", got.Content)
	}
}

func TestToItem_SanitizesHTMLContent(t *testing.T) {
	got := toItem(models.CommunityInfo{
		Title:    "Centre",
		Content:  `<p>Open daily</p><script>alert(1)</script>`,
		Category: "cultural_centers",
	}, 0)
	if strings.Contains(string(got.Content), "<script>") {
		t.Errorf("script survived sanitizing: %q", got.Content)
	}
}

func TestServeList_StoreFailure(t *testing.T) {
	logger := zap.NewNop()
	h := NewHandler(testutil.UnreachableDB(t), uierrors.NewErrorLogger(logger), logger)

	rec := httptest.NewRecorder()
	func() {
		defer func() { _ = recover() }()
		h.ServeList(rec, httptest.NewRequest("GET", "/community?category=media", nil))
	}()
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestServeList_WithData(t *testing.T) {
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	h := NewHandler(db, uierrors.NewErrorLogger(logger), logger)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateCommunity(ctx, "Oseredok", "Ukrainian Cultural and Educational Centre.", "cultural_centers")

	rec := httptest.NewRecorder()
	func() {
		defer func() { _ = recover() }()
		h.ServeList(rec, httptest.NewRequest("GET", "/community", nil))
	}()
	if rec.Code == http.StatusInternalServerError {
		t.Errorf("unexpected 500")
	}
}
