package seed

import (
	"testing"

	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"github.com/samber/lo"
)

func TestDatasetSizes(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"translations", len(Translations()), 40},
		{"lessons", len(Lessons()), 3},
		{"community", len(Community()), 3},
		{"heritage", len(Heritage()), 46},
		{"resources", len(Resources()), 3},
		{"events", len(Events()), 23},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s: %d records, want %d", tc.name, tc.got, tc.want)
		}
	}
}

// Run matches stored records by title, so titles must be unique per dataset.
func TestDatasetTitlesUnique(t *testing.T) {
	check := func(kind string, titles []string) {
		t.Helper()
		seen := make(map[string]bool, len(titles))
		for _, title := range titles {
			if seen[title] {
				t.Errorf("%s: duplicate title %q", kind, title)
			}
			seen[title] = true
		}
	}
	check("lessons", lo.Map(Lessons(), func(v models.Lesson, _ int) string { return v.Title }))
	check("community", lo.Map(Community(), func(v models.CommunityInfo, _ int) string { return v.Title }))
	check("heritage", lo.Map(Heritage(), func(v models.HeritageInfo, _ int) string { return v.Title }))
	check("resources", lo.Map(Resources(), func(v models.Resource, _ int) string { return v.Title }))
	check("events", lo.Map(Events(), func(v models.Event, _ int) string { return v.Title }))
}

// Every record must pass the same validation the stores apply.
func TestDatasetsValidate(t *testing.T) {
	check := func(kind string, i int, v interface{ Validate() error }) {
		t.Helper()
		if err := v.Validate(); err != nil {
			t.Errorf("%s[%d]: %v", kind, i, err)
		}
	}
	for i, v := range Translations() {
		check("translation", i, v)
	}
	for i, v := range Lessons() {
		check("lesson", i, v)
	}
	for i, v := range Community() {
		check("community", i, v)
	}
	for i, v := range Heritage() {
		check("heritage", i, v)
	}
	for i, v := range Resources() {
		check("resource", i, v)
	}
	for i, v := range Events() {
		check("event", i, v)
	}
}

func TestTranslationCategoriesAreFormCategories(t *testing.T) {
	for _, tr := range Translations() {
		if !models.IsCategory(models.KindTranslation, tr.Category) {
			t.Errorf("%q has unknown category %q", tr.English, tr.Category)
		}
		if tr.DifficultyLevel != tr.Subcategory {
			t.Errorf("%q: difficulty %q != subcategory %q", tr.English, tr.DifficultyLevel, tr.Subcategory)
		}
	}
}

func TestLessonsOrdered(t *testing.T) {
	for i, l := range Lessons() {
		if l.OrderIndex != i+1 {
			t.Errorf("lesson %q has order %d, want %d", l.Title, l.OrderIndex, i+1)
		}
	}
}

func TestEventsIn2025(t *testing.T) {
	for _, e := range Events() {
		if e.Date.Year() != 2025 {
			t.Errorf("%q dated %v", e.Title, e.Date)
		}
	}
}
