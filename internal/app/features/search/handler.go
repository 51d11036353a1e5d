package search

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/ukrconnect/internal/app/features/errors"
	"github.com/dalemusser/ukrconnect/internal/app/store/queries/sitesearch"
	"github.com/dalemusser/ukrconnect/internal/app/system/contentfilter"
	"github.com/dalemusser/ukrconnect/internal/app/system/timeouts"
	"github.com/dalemusser/ukrconnect/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Search *sitesearch.Service
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(svc *sitesearch.Service, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Search: svc, ErrLog: errLog, Log: logger}
}

type resultsData struct {
	viewdata.BaseVM
	sitesearch.Results
}

// ServeResults handles GET /search?q=. A missing or empty q sends the
// visitor back to the home page. Longer queries are cut to
// query.MaxSearchLen bytes; spaces are kept.
func (h *Handler) ServeResults(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	q = contentfilter.Clip(q, query.MaxSearchLen)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Search.Run(ctx, q)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "site search failed", err, "Search is unavailable right now.", "/")
		return
	}
	h.Log.Debug("site search", zap.String("q", q), zap.Int("hits", res.Total()))

	templates.Render(w, r, "search_results", resultsData{
		BaseVM:  viewdata.NewBaseVM(r, "Search: "+q, "/"),
		Results: res,
	})
}
