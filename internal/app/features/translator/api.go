package translator

import (
	"context"
	"encoding/json"
	"net/http"

	translationstore "github.com/dalemusser/ukrconnect/internal/app/store/translations"
	"github.com/dalemusser/ukrconnect/internal/app/system/contentfilter"
	"github.com/dalemusser/ukrconnect/internal/app/system/timeouts"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// translationDTO is the public shape of a translation in the JSON API.
type translationDTO struct {
	ID            int64  `json:"id"`
	Ukrainian     string `json:"ukrainian"`
	English       string `json:"english"`
	Pronunciation string `json:"pronunciation"`
	Category      string `json:"category"`
	Subcategory   string `json:"subcategory"`
}

func toDTO(t models.Translation, _ int) translationDTO {
	return translationDTO{
		ID:            t.ID,
		Ukrainian:     t.Ukrainian,
		English:       t.English,
		Pronunciation: t.Pronunciation,
		Category:      t.Category,
		Subcategory:   t.Subcategory,
	}
}

// ServeAPI handles GET /api/translations?category=&search=.
//
// category defaults to "all" when absent and is otherwise matched
// exactly; search is a case-sensitive substring of either language, used
// as given up to query.MaxSearchLen bytes. Every match is returned in
// insertion order. A search that is not valid UTF-8 matches nothing.
func (h *Handler) ServeAPI(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	category := contentfilter.CategoryParam(values)
	search := contentfilter.Clip(values.Get("search"), query.MaxSearchLen)

	w.Header().Set("Content-Type", "application/json")

	if !contentfilter.Usable(search) {
		_ = json.NewEncoder(w).Encode([]translationDTO{})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	found, err := translationstore.New(h.DB).Lookup(ctx, category, search)
	if err != nil {
		h.Log.Error("translation lookup failed",
			zap.Error(err),
			zap.String("category", category),
			zap.String("search", search))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "translation lookup failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(lo.Map(found, toDTO))
}
