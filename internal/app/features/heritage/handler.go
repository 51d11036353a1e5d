package heritage

import (
	"context"
	"html/template"
	"net/http"

	uierrors "github.com/dalemusser/ukrconnect/internal/app/features/errors"
	heritagestore "github.com/dalemusser/ukrconnect/internal/app/store/heritage"
	"github.com/dalemusser/ukrconnect/internal/app/system/contentfilter"
	"github.com/dalemusser/ukrconnect/internal/app/system/htmlsanitize"
	"github.com/dalemusser/ukrconnect/internal/app/system/timeouts"
	"github.com/dalemusser/ukrconnect/internal/app/system/viewdata"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB     *mongo.Database
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{DB: db, ErrLog: errLog, Log: logger}
}

type articleItem struct {
	Title         string
	CategoryLabel string
	Period        string
	Content       template.HTML
}

type listData struct {
	viewdata.BaseVM
	Category        string
	CategoryOptions []models.Option
	Articles        []articleItem
}

// ServeList handles GET /heritage?category=. The filter lists the tags
// actually stored, which for heritage go beyond the form categories.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	category := contentfilter.CategoryParam(r.URL.Query())

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := heritagestore.New(h.DB)
	rows, err := store.List(ctx, category)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list heritage failed", err, "A database error occurred.", "/")
		return
	}
	cats, err := store.Categories(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list heritage categories failed", err, "A database error occurred.", "/")
		return
	}

	articles := make([]articleItem, 0, len(rows))
	for _, a := range rows {
		articles = append(articles, articleItem{
			Title:         a.Title,
			CategoryLabel: models.CategoryLabel(models.KindHeritage, a.Category),
			Period:        a.HistoricalPeriod,
			Content:       htmlsanitize.PrepareForDisplay(a.Content),
		})
	}

	templates.Render(w, r, "heritage_list", listData{
		BaseVM:          viewdata.NewBaseVM(r, "Ukrainian Heritage", "/"),
		Category:        category,
		CategoryOptions: models.LabelOptions(models.KindHeritage, cats),
		Articles:        articles,
	})
}
