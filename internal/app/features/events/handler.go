package events

import (
	"context"
	"net/http"
	"time"

	uierrors "github.com/dalemusser/ukrconnect/internal/app/features/errors"
	eventstore "github.com/dalemusser/ukrconnect/internal/app/store/events"
	"github.com/dalemusser/ukrconnect/internal/app/system/timeouts"
	"github.com/dalemusser/ukrconnect/internal/app/system/viewdata"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB        *mongo.Database
	PastLimit int64
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger

	now func() time.Time
}

// NewHandler builds the events handler. pastLimit caps the past-events
// list; values below 1 use eventstore.DefaultPastLimit.
func NewHandler(db *mongo.Database, pastLimit int64, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	if pastLimit < 1 {
		pastLimit = eventstore.DefaultPastLimit
	}
	return &Handler{DB: db, PastLimit: pastLimit, ErrLog: errLog, Log: logger, now: time.Now}
}

type eventItem struct {
	Title         string
	Description   string
	When          string
	Location      string
	Organizer     string
	ContactInfo   string
	CategoryLabel string
}

type listData struct {
	viewdata.BaseVM
	Upcoming []eventItem
	Past     []eventItem
}

func toItem(e models.Event, _ int) eventItem {
	it := eventItem{
		Title:       e.Title,
		Description: e.Description,
		When:        e.Date.Format("Monday, January 2, 2006 at 3:04 PM"),
		Location:    e.Location,
		Organizer:   e.Organizer,
		ContactInfo: e.ContactInfo,
	}
	if e.Category != "" {
		it.CategoryLabel = models.CategoryLabel(models.KindEvent, e.Category)
	}
	return it
}

// ServeList splits events at the current instant into upcoming (soonest
// first, all of them) and past (most recent first, capped).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	win, err := eventstore.New(h.DB).Partition(ctx, h.now().UTC(), h.PastLimit)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list events failed", err, "A database error occurred.", "/")
		return
	}

	templates.Render(w, r, "events_list", listData{
		BaseVM:   viewdata.NewBaseVM(r, "Community Events", "/"),
		Upcoming: lo.Map(win.Upcoming, toItem),
		Past:     lo.Map(win.Past, toItem),
	})
}
