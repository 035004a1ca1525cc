package pages

import (
	"context"
	"errors"
	"time"

	"Agency-Backend/src/database"
	"Agency-Backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound      = errors.New("page not found")
	ErrSlugTaken     = errors.New("a page with this slug already exists")
	ErrInvalidPageID = errors.New("invalid page ID")
)

// CreatePage stores a new CMS page. Slugs are unique, one document per
// public page.
func CreatePage(ctx context.Context, page *models.Page) error {
	count, err := database.PageCollection.CountDocuments(ctx, bson.M{"slug": page.Slug})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugTaken
	}

	page.ID = primitive.NewObjectID()
	now := time.Now()
	page.CreatedAt = now
	page.UpdatedAt = now

	_, err = database.PageCollection.InsertOne(ctx, page)
	return err
}

// GetPages lists all CMS pages for the dashboard.
func GetPages(ctx context.Context) ([]models.Page, error) {
	opts := options.Find().SetSort(bson.D{{Key: "slug", Value: 1}})
	cursor, err := database.PageCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []models.Page
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetPageBySlug fetches one published page for the public site.
func GetPageBySlug(ctx context.Context, slug string) (*models.Page, error) {
	var page models.Page
	err := database.PageCollection.FindOne(ctx, bson.M{"slug": slug, "published": true}).Decode(&page)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &page, nil
}

// UpdatePage replaces a page's content.
func UpdatePage(ctx context.Context, id string, page *models.Page) (*models.Page, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidPageID
	}

	var existing models.Page
	err = database.PageCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	page.ID = existing.ID
	page.CreatedAt = existing.CreatedAt
	page.UpdatedAt = time.Now()

	if _, err := database.PageCollection.ReplaceOne(ctx, bson.M{"_id": objID}, page); err != nil {
		return nil, err
	}
	return page, nil
}

// DeletePage removes a CMS page.
func DeletePage(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidPageID
	}

	res, err := database.PageCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
