package admin

import (
	"context"
	"net/http"

	communitystore "github.com/dalemusser/ukrconnect/internal/app/store/community"
	eventstore "github.com/dalemusser/ukrconnect/internal/app/store/events"
	heritagestore "github.com/dalemusser/ukrconnect/internal/app/store/heritage"
	lessonstore "github.com/dalemusser/ukrconnect/internal/app/store/lessons"
	resourcestore "github.com/dalemusser/ukrconnect/internal/app/store/resources"
	translationstore "github.com/dalemusser/ukrconnect/internal/app/store/translations"
	"github.com/dalemusser/ukrconnect/internal/app/system/timeouts"
	"github.com/dalemusser/ukrconnect/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson"
)

type contentCount struct {
	Label string
	Count int64
	Link  string
}

type dashboardData struct {
	viewdata.BaseVM
	Counts []contentCount
	GateOn bool
}

type counter interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
}

// ServeDashboard shows how much of each content type is stored.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	sections := []struct {
		label string
		link  string
		store counter
	}{
		{"Translations", "/admin/translations", translationstore.New(h.DB)},
		{"Lessons", "/lessons", lessonstore.New(h.DB)},
		{"Community entries", "/community", communitystore.New(h.DB)},
		{"Heritage articles", "/heritage", heritagestore.New(h.DB)},
		{"Events", "/events", eventstore.New(h.DB)},
		{"Resources", "/resources", resourcestore.New(h.DB)},
	}

	counts := make([]contentCount, 0, len(sections))
	for _, s := range sections {
		n, err := s.store.Count(ctx, bson.M{})
		if err != nil {
			h.ErrLog.LogServerError(w, r, "count content failed", err, "A database error occurred.", "/")
			return
		}
		counts = append(counts, contentCount{Label: s.label, Count: n, Link: s.link})
	}

	templates.Render(w, r, "admin_dashboard", dashboardData{
		BaseVM: viewdata.NewBaseVM(r, "Admin", "/").WithFlashes(h.SessionMgr.Flashes(w, r)),
		Counts: counts,
		GateOn: h.SessionMgr.AdminGateEnabled(),
	})
}
