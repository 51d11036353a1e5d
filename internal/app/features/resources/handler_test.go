package resources

import (
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/dalemusser/ukrconnect/internal/app/features/errors"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"github.com/dalemusser/ukrconnect/internal/testutil"
	"go.uber.org/zap"
)

func TestToItem_Labels(t *testing.T) {
	got := toItem(models.Resource{
		Title:    "Service Canada Centre",
		Category: "government",
		Hours:    "Mon-Fri 8:30-4:30",
	}, 0)
	if got.CategoryLabel != "Government Services" {
		t.Errorf("CategoryLabel = %q", got.CategoryLabel)
	}
	if got.Description != "" {
		t.Errorf("empty description should render empty, got %q", got.Description)
	}
	if got.Hours != "Mon-Fri 8:30-4:30" {
		t.Errorf("Hours = %q", got.Hours)
	}
}

func TestServeList_StoreFailure(t *testing.T) {
	logger := zap.NewNop()
	h := NewHandler(testutil.UnreachableDB(t), uierrors.NewErrorLogger(logger), logger)

	rec := httptest.NewRecorder()
	func() {
		defer func() { _ = recover() }()
		h.ServeList(rec, httptest.NewRequest("GET", "/resources?category=legal", nil))
	}()
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
