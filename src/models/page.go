package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Page is a CMS document backing one public site page (home, about,
// contact...). Sections are free-form blocks the frontend renders.
type Page struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug      string             `bson:"slug" json:"slug" validate:"required"`
	Title     string             `bson:"title" json:"title" validate:"required"`
	Sections  []PageSection      `bson:"sections,omitempty" json:"sections,omitempty"`
	Published bool               `bson:"published" json:"published"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

type PageSection struct {
	Key     string                 `bson:"key" json:"key"`
	Heading string                 `bson:"heading,omitempty" json:"heading,omitempty"`
	Body    string                 `bson:"body,omitempty" json:"body,omitempty"`
	Props   map[string]interface{} `bson:"props,omitempty" json:"props,omitempty"`
}
