package lessons

import (
	"html/template"

	"github.com/dalemusser/ukrconnect/internal/app/system/viewdata"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
)

type lessonItem struct {
	ID          int64
	Title       string
	Description string
	LevelLabel  string
}

type listData struct {
	viewdata.BaseVM
	Lessons []lessonItem
}

type viewData struct {
	viewdata.BaseVM
	Lesson     models.Lesson
	LevelLabel string
	Content    template.HTML
}

func toItem(l models.Lesson, _ int) lessonItem {
	return lessonItem{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		LevelLabel:  models.DifficultyLabel(l.Level),
	}
}
