package admin

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/ukrconnect/internal/app/store/storeutil"
	translationstore "github.com/dalemusser/ukrconnect/internal/app/store/translations"
	"github.com/dalemusser/ukrconnect/internal/app/system/inputval"
	"github.com/dalemusser/ukrconnect/internal/app/system/timeouts"
	"github.com/dalemusser/ukrconnect/internal/app/system/viewdata"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"
)

const flashTranslationAdded = "Translation added successfully!"

// translationForm is the admin entry form. Field names in error maps
// follow the json tags, which match the form input names.
type translationForm struct {
	Ukrainian       string `json:"ukrainian"`
	English         string `json:"english"`
	Pronunciation   string `json:"pronunciation"`
	Category        string `json:"category"`
	Subcategory     string `json:"subcategory"`
	DifficultyLevel string `json:"difficulty_level"`
}

func (f translationForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Ukrainian, validation.Required, validation.RuneLength(1, 500)),
		validation.Field(&f.English, validation.Required, validation.RuneLength(1, 500)),
		validation.Field(&f.Pronunciation, validation.RuneLength(0, 500)),
		validation.Field(&f.Category, validation.Required,
			inputval.OneOf(models.Values(models.TranslationCategories))),
		validation.Field(&f.Subcategory, validation.RuneLength(0, 100)),
		validation.Field(&f.DifficultyLevel, inputval.OneOf(models.Values(models.DifficultyLevels))),
	)
}

func (f translationForm) model() models.Translation {
	return models.Translation{
		Ukrainian:       f.Ukrainian,
		English:         f.English,
		Pronunciation:   f.Pronunciation,
		Category:        f.Category,
		Subcategory:     f.Subcategory,
		DifficultyLevel: f.DifficultyLevel,
	}
}

func parseTranslationForm(r *http.Request) translationForm {
	return translationForm{
		Ukrainian:       inputval.Clean(r.PostFormValue("ukrainian")),
		English:         inputval.Clean(r.PostFormValue("english")),
		Pronunciation:   inputval.Clean(r.PostFormValue("pronunciation")),
		Category:        inputval.Clean(r.PostFormValue("category")),
		Subcategory:     inputval.Clean(r.PostFormValue("subcategory")),
		DifficultyLevel: inputval.Clean(r.PostFormValue("difficulty_level")),
	}
}

type translationsData struct {
	viewdata.BaseVM
	Form         translationForm
	Errors       map[string]string
	Categories   []models.Option
	Difficulties []models.Option
	Translations []translationRow
}

type translationRow struct {
	ID            int64
	Ukrainian     string
	English       string
	Pronunciation string
	CategoryLabel string
	Difficulty    string
}

func toRow(t models.Translation) translationRow {
	return translationRow{
		ID:            t.ID,
		Ukrainian:     t.Ukrainian,
		English:       t.English,
		Pronunciation: t.Pronunciation,
		CategoryLabel: models.CategoryLabel(models.KindTranslation, t.Category),
		Difficulty:    models.DifficultyLabel(t.DifficultyLevel),
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /admin/translations                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeTranslations(w http.ResponseWriter, r *http.Request) {
	flashes := h.SessionMgr.Flashes(w, r)
	h.renderTranslations(w, r, translationForm{DifficultyLevel: models.DifficultyBeginner}, nil, flashes)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /admin/translations                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleCreateTranslation inserts one translation. Invalid input
// re-renders the form with the submitted values and per-field messages;
// nothing is stored.
func (h *Handler) HandleCreateTranslation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse translation form failed", err, "The form could not be read.", "/admin/translations")
		return
	}
	form := parseTranslationForm(r)

	if err := form.Validate(); err != nil {
		h.renderTranslations(w, r, form, inputval.FieldErrors(err), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := translationstore.New(h.DB).Create(ctx, form.model())
	if errors.Is(err, storeutil.ErrInvalid) {
		h.renderTranslations(w, r, form, inputval.FieldErrors(err), nil)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "insert translation failed", err, "A database error occurred.", "/admin/translations")
		return
	}
	h.Log.Info("translation added",
		zap.Int64("id", created.ID),
		zap.String("category", created.Category))

	if err := h.SessionMgr.AddFlash(w, r, flashTranslationAdded); err != nil {
		h.Log.Warn("could not save flash", zap.Error(err))
	}
	http.Redirect(w, r, "/admin/translations", http.StatusSeeOther)
}

func (h *Handler) renderTranslations(w http.ResponseWriter, r *http.Request, form translationForm, errs map[string]string, flashes []string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := translationstore.New(h.DB).ListForAdmin(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list translations failed", err, "A database error occurred.", "/admin")
		return
	}
	rows := make([]translationRow, 0, len(all))
	for _, t := range all {
		rows = append(rows, toRow(t))
	}

	templates.Render(w, r, "admin_translations", translationsData{
		BaseVM:       viewdata.NewBaseVM(r, "Manage Translations", "/admin").WithFlashes(flashes),
		Form:         form,
		Errors:       errs,
		Categories:   models.TranslationCategories,
		Difficulties: models.DifficultyLevels,
		Translations: rows,
	})
}
