package newsletter

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"Agency-Backend/src/database"
	"Agency-Backend/src/models"
	"Agency-Backend/src/services/contacts"

	"Agency-Backend/src/services/hubspot"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrTokenNotFound = errors.New("unsubscribe token not found")

// Subscribe registers an email for the newsletter. Re-subscribing an
// existing address is a no-op that re-activates it. CRM sync is
// best-effort here, a HubSpot failure never blocks the signup.
func Subscribe(ctx context.Context, req *models.NewsletterSubscribeRequest) (*models.NewsletterSubscriber, bool, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	now := time.Now()

	var sub models.NewsletterSubscriber
	err := database.NewsletterCollection.FindOne(ctx, bson.M{"email": email}).Decode(&sub)
	if err == nil {
		if !sub.Subscribed {
			update := bson.M{"$set": bson.M{"subscribed": true, "updatedAt": now}}
			if _, err := database.NewsletterCollection.UpdateOne(ctx, bson.M{"_id": sub.ID}, update); err != nil {
				return nil, false, err
			}
			sub.Subscribed = true
		}
		return &sub, false, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, false, err
	}

	sub = models.NewsletterSubscriber{
		ID:               primitive.NewObjectID(),
		Email:            email,
		Subscribed:       true,
		UnsubscribeToken: uuid.NewString(),
		Source:           req.Source,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := database.NewsletterCollection.InsertOne(ctx, sub); err != nil {
		return nil, false, err
	}

	syncSubscriber(ctx, &sub)

	return &sub, true, nil
}

// syncSubscriber pushes the signup to HubSpot, logging failures
// instead of surfacing them.
func syncSubscriber(ctx context.Context, sub *models.NewsletterSubscriber) {
	props := hubspot.ContactProperties{
		Email:  sub.Email,
		Source: sub.Source,
	}
	contactID, err := contacts.CRM().UpsertContactByEmail(ctx, props)
	if err != nil {
		log.Println("newsletter hubspot sync failed for", sub.Email, ":", err)
		return
	}

	update := bson.M{"$set": bson.M{
		"sentToHubSpot":    true,
		"hubspotContactId": contactID,
		"updatedAt":        time.Now(),
	}}
	if _, err := database.NewsletterCollection.UpdateOne(ctx, bson.M{"email": sub.Email}, update); err != nil {
		log.Println("newsletter sync-state save failed for", sub.Email, ":", err)
		return
	}
	sub.SentToHubSpot = true
	sub.HubSpotContactID = contactID
}

// Unsubscribe deactivates the subscriber owning the token.
func Unsubscribe(ctx context.Context, token string) error {
	update := bson.M{"$set": bson.M{"subscribed": false, "updatedAt": time.Now()}}
	res, err := database.NewsletterCollection.UpdateOne(ctx, bson.M{"unsubscribeToken": token}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrTokenNotFound
	}
	return nil
}
