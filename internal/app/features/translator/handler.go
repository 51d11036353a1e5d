package translator

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/ukrconnect/internal/app/features/errors"
	translationstore "github.com/dalemusser/ukrconnect/internal/app/store/translations"
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

type pageData struct {
	viewdata.BaseVM
	Category        string
	CategoryOptions []models.Option
}

// ServePage renders the translator shell. Results are fetched by
// translator.js from the JSON API.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cats, err := translationstore.New(h.DB).Categories(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list translation categories failed", err, "A database error occurred.", "/")
		return
	}

	templates.Render(w, r, "translator", pageData{
		BaseVM:          viewdata.NewBaseVM(r, "Translator", "/"),
		Category:        "all",
		CategoryOptions: models.LabelOptions(models.KindTranslation, cats),
	})
}
