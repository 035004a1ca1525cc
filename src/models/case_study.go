package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CaseStudy is a client-work showcase entry.
type CaseStudy struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title" validate:"required"`
	Slug       string             `bson:"slug" json:"slug" validate:"required"`
	Client     string             `bson:"client,omitempty" json:"client,omitempty"`
	Industry   string             `bson:"industry,omitempty" json:"industry,omitempty"`
	Summary    string             `bson:"summary,omitempty" json:"summary,omitempty"`
	Body       string             `bson:"body,omitempty" json:"body,omitempty"`
	CoverImage string             `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Services   []string           `bson:"services,omitempty" json:"services,omitempty"`
	Featured   bool               `bson:"featured" json:"featured"`
	Published  bool               `bson:"published" json:"published"`
	CreatedAt  time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}
