package community

import (
	"context"
	"html/template"
	"net/http"

	uierrors "github.com/dalemusser/ukrconnect/internal/app/features/errors"
	communitystore "github.com/dalemusser/ukrconnect/internal/app/store/community"
	"github.com/dalemusser/ukrconnect/internal/app/system/contentfilter"
	"github.com/dalemusser/ukrconnect/internal/app/system/htmlsanitize"
	"github.com/dalemusser/ukrconnect/internal/app/system/timeouts"
	"github.com/dalemusser/ukrconnect/internal/app/system/viewdata"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the community directory (cultural centres, churches,
// organizations, businesses).
type Handler struct {
	DB     *mongo.Database
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{DB: db, ErrLog: errLog, Log: logger}
}

type entryItem struct {
	Title         string
	CategoryLabel string
	Content       template.HTML
	Address       string
	Phone         string
	Website       string
	ContactInfo   string
}

type listData struct {
	viewdata.BaseVM
	Category        string
	CategoryOptions []models.Option
	Entries         []entryItem
}

func toItem(c models.CommunityInfo, _ int) entryItem {
	return entryItem{
		Title:         c.Title,
		CategoryLabel: models.CategoryLabel(models.KindCommunity, c.Category),
		Content:       htmlsanitize.PrepareForDisplay(c.Content),
		Address:       c.Address,
		Phone:         c.Phone,
		Website:       c.Website,
		ContactInfo:   c.ContactInfo,
	}
}

// ServeList handles GET /community?category=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	category := contentfilter.CategoryParam(r.URL.Query())

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := communitystore.New(h.DB)
	entries, err := store.List(ctx, category)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list community entries failed", err, "A database error occurred.", "/")
		return
	}
	cats, err := store.Categories(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list community categories failed", err, "A database error occurred.", "/")
		return
	}

	templates.Render(w, r, "community_list", listData{
		BaseVM:          viewdata.NewBaseVM(r, "Community", "/"),
		Category:        category,
		CategoryOptions: models.LabelOptions(models.KindCommunity, cats),
		Entries:         lo.Map(entries, toItem),
	})
}
