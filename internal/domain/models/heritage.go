package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// HeritageInfo is a heritage article. HistoricalPeriod is a free-text
// label such as "1890s-present".
type HeritageInfo struct {
	ID               int64     `bson:"_id" json:"id"`
	Title            string    `bson:"title" json:"title"`
	Content          string    `bson:"content" json:"content"`
	Category         string    `bson:"category" json:"category"`
	HistoricalPeriod string    `bson:"historical_period,omitempty" json:"historical_period,omitempty"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

func (h HeritageInfo) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Title, validation.Required, validation.RuneLength(1, 200)),
		validation.Field(&h.Content, validation.Required),
		validation.Field(&h.Category, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&h.HistoricalPeriod, validation.RuneLength(0, 100)),
	)
}
