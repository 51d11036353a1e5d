package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Translation is a single Ukrainian phrase with its English meaning.
type Translation struct {
	ID              int64     `bson:"_id" json:"id"`
	Ukrainian       string    `bson:"ukrainian" json:"ukrainian"`
	English         string    `bson:"english" json:"english"`
	Pronunciation   string    `bson:"pronunciation,omitempty" json:"pronunciation,omitempty"`
	Category        string    `bson:"category" json:"category"`
	Subcategory     string    `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	DifficultyLevel string    `bson:"difficulty_level" json:"difficulty_level"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// Validate checks the stored shape of a translation. Category is only
// required to be present; form input is checked against the enumeration
// separately.
func (t Translation) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Ukrainian, validation.Required, validation.RuneLength(1, 500)),
		validation.Field(&t.English, validation.Required, validation.RuneLength(1, 500)),
		validation.Field(&t.Pronunciation, validation.RuneLength(0, 500)),
		validation.Field(&t.Category, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&t.Subcategory, validation.RuneLength(0, 100)),
		validation.Field(&t.DifficultyLevel, validation.RuneLength(0, 20)),
	)
}
