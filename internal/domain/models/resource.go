package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Resource is a practical service listing (government offices, clinics,
// legal aid, banks and so on).
type Resource struct {
	ID          int64     `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Category    string    `bson:"category" json:"category"`
	ContactInfo string    `bson:"contact_info,omitempty" json:"contact_info,omitempty"`
	Website     string    `bson:"website,omitempty" json:"website,omitempty"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Hours       string    `bson:"hours,omitempty" json:"hours,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

func (r Resource) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, 200)),
		validation.Field(&r.Category, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&r.Website, validation.RuneLength(0, 300)),
		validation.Field(&r.Address, validation.RuneLength(0, 300)),
		validation.Field(&r.Phone, validation.RuneLength(0, 50)),
		validation.Field(&r.Hours, validation.RuneLength(0, 200)),
	)
}
