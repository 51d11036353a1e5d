package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CommunityInfo is a community directory entry (centers, churches,
// organizations, businesses).
type CommunityInfo struct {
	ID          int64     `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Content     string    `bson:"content" json:"content"`
	Category    string    `bson:"category" json:"category"`
	ContactInfo string    `bson:"contact_info,omitempty" json:"contact_info,omitempty"`
	Website     string    `bson:"website,omitempty" json:"website,omitempty"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

func (c CommunityInfo) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required, validation.RuneLength(1, 200)),
		validation.Field(&c.Content, validation.Required),
		validation.Field(&c.Category, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&c.Website, validation.RuneLength(0, 300)),
		validation.Field(&c.Address, validation.RuneLength(0, 300)),
		validation.Field(&c.Phone, validation.RuneLength(0, 50)),
	)
}
