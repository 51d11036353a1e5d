package resources

import (
	"context"
	"net/http"

	resourcestore "github.com/dalemusser/ukrconnect/internal/app/store/resources"
	"github.com/dalemusser/ukrconnect/internal/app/system/contentfilter"
	"github.com/dalemusser/ukrconnect/internal/app/system/timeouts"
	"github.com/dalemusser/ukrconnect/internal/app/system/viewdata"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/samber/lo"
)

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	category := contentfilter.CategoryParam(r.URL.Query())

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := resourcestore.New(h.DB)
	found, err := store.List(ctx, category)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list resources failed", err, "A database error occurred.", "/")
		return
	}
	cats, err := store.Categories(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list resource categories failed", err, "A database error occurred.", "/")
		return
	}

	templates.Render(w, r, "resources_list", listData{
		BaseVM:          viewdata.NewBaseVM(r, "Resources", "/"),
		Category:        category,
		CategoryOptions: models.LabelOptions(models.KindResource, cats),
		Resources:       lo.Map(found, toItem),
	})
}
