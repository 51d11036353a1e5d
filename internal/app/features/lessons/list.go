package lessons

import (
	"context"
	"net/http"

	lessonstore "github.com/dalemusser/ukrconnect/internal/app/store/lessons"
	"github.com/dalemusser/ukrconnect/internal/app/system/timeouts"
	"github.com/dalemusser/ukrconnect/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/samber/lo"
)

// ServeList renders every lesson in curriculum order.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := lessonstore.New(h.DB).List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list lessons failed", err, "A database error occurred.", "/")
		return
	}

	templates.Render(w, r, "lessons_list", listData{
		BaseVM:  viewdata.NewBaseVM(r, "Ukrainian Lessons", "/"),
		Lessons: lo.Map(all, toItem),
	})
}
