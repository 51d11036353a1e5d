package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Event is a dated community event. Category is optional.
type Event struct {
	ID          int64     `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Date        time.Time `bson:"date" json:"date"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	Organizer   string    `bson:"organizer,omitempty" json:"organizer,omitempty"`
	ContactInfo string    `bson:"contact_info,omitempty" json:"contact_info,omitempty"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

func (e Event) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Title, validation.Required, validation.RuneLength(1, 200)),
		validation.Field(&e.Date, validation.Required),
		validation.Field(&e.Location, validation.RuneLength(0, 300)),
		validation.Field(&e.Organizer, validation.RuneLength(0, 200)),
		validation.Field(&e.ContactInfo, validation.RuneLength(0, 300)),
		validation.Field(&e.Category, validation.RuneLength(0, 100)),
	)
}
