package home

import (
	"context"
	"fmt"
	"net/http"
	"time"

	uierrors "github.com/dalemusser/ukrconnect/internal/app/features/errors"
	communitystore "github.com/dalemusser/ukrconnect/internal/app/store/community"
	eventstore "github.com/dalemusser/ukrconnect/internal/app/store/events"
	heritagestore "github.com/dalemusser/ukrconnect/internal/app/store/heritage"
	"github.com/dalemusser/ukrconnect/internal/app/system/timeouts"
	"github.com/dalemusser/ukrconnect/internal/app/system/viewdata"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// previewSize is how many entries of each section the landing page shows.
const previewSize = 3

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	DB     *mongo.Database
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger

	now func() time.Time
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		ErrLog: errLog,
		Log:    logger,
		now:    time.Now,
	}
}

type homeData struct {
	viewdata.BaseVM
	Events    []models.Event
	Community []models.CommunityInfo
	Heritage  []models.HeritageInfo
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	data, err := h.load(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load home page failed", err, "A database error occurred.", "/")
		return
	}
	data.BaseVM = viewdata.NewBaseVM(r, "Welcome", "/")

	templates.Render(w, r, "home", data)
}

// load fetches the preview sections of the landing page.
func (h *Handler) load(ctx context.Context) (homeData, error) {
	var (
		data homeData
		err  error
	)
	if data.Events, err = eventstore.New(h.DB).Upcoming(ctx, h.now().UTC(), previewSize); err != nil {
		return homeData{}, fmt.Errorf("upcoming events: %w", err)
	}
	if data.Community, err = communitystore.New(h.DB).First(ctx, previewSize); err != nil {
		return homeData{}, fmt.Errorf("community preview: %w", err)
	}
	if data.Heritage, err = heritagestore.New(h.DB).First(ctx, previewSize); err != nil {
		return homeData{}, fmt.Errorf("heritage preview: %w", err)
	}
	return data, nil
}
