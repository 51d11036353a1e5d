package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Lesson content formats.
const (
	ContentFormatHTML     = "html"
	ContentFormatMarkdown = "markdown"
)

// Lesson is an ordered language lesson. Content is rich text in the
// format named by ContentFormat and is sanitized before display.
type Lesson struct {
	ID            int64     `bson:"_id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	Content       string    `bson:"content" json:"content"`
	ContentFormat string    `bson:"content_format" json:"content_format"`
	Level         string    `bson:"level" json:"level"`
	OrderIndex    int       `bson:"order_index" json:"order_index"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

func (l Lesson) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Title, validation.Required, validation.RuneLength(1, 200)),
		validation.Field(&l.Content, validation.Required),
		validation.Field(&l.ContentFormat, validation.In(ContentFormatHTML, ContentFormatMarkdown)),
		validation.Field(&l.Level, validation.Required, validation.RuneLength(1, 20)),
	)
}
