package lessons

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	uierrors "github.com/dalemusser/ukrconnect/internal/app/features/errors"
	lessonstore "github.com/dalemusser/ukrconnect/internal/app/store/lessons"
	"github.com/dalemusser/ukrconnect/internal/app/system/richtext"
	"github.com/dalemusser/ukrconnect/internal/app/system/timeouts"
	"github.com/dalemusser/ukrconnect/internal/app/system/viewdata"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeView renders one lesson. Ids that are not integers, or that match
// no lesson, get the 404 page.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		uierrors.RenderNotFound(w, r, "That lesson does not exist.", "/lessons")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	lesson, err := lessonstore.New(h.DB).GetByID(ctx, id)
	if errors.Is(err, lessonstore.ErrNotFound) {
		uierrors.RenderNotFound(w, r, "That lesson does not exist.", "/lessons")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load lesson failed", err, "A database error occurred.", "/lessons")
		return
	}

	content, err := richtext.Render(lesson.Content, lesson.ContentFormat)
	if err != nil {
		h.Log.Warn("lesson content did not render; showing escaped text",
			zap.Int64("lesson_id", lesson.ID), zap.Error(err))
		content = richtext.Plain(lesson.Content)
	}

	templates.Render(w, r, "lessons_view", viewData{
		BaseVM:     viewdata.NewBaseVM(r, lesson.Title, "/lessons"),
		Lesson:     lesson,
		LevelLabel: models.DifficultyLabel(lesson.Level),
		Content:    content,
	})
}
