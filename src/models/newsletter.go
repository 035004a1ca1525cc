package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsletterSubscriber is one signup from the footer widget.
type NewsletterSubscriber struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email            string             `bson:"email" json:"email"`
	Subscribed       bool               `bson:"subscribed" json:"subscribed"`
	UnsubscribeToken string             `bson:"unsubscribeToken" json:"-"`
	Source           string             `bson:"source,omitempty" json:"source,omitempty"`
	SentToHubSpot    bool               `bson:"sentToHubSpot" json:"sentToHubSpot"`
	HubSpotContactID string             `bson:"hubspotContactId,omitempty" json:"hubspotContactId,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// NewsletterSubscribeRequest is the signup payload.
type NewsletterSubscribeRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Source string `json:"source"`
}
