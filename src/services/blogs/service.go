package blogs

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

var ErrNotFound = errors.New("blog post not found")

// CreatePost stores a new article. PublishedAt is stamped on first
// publish.
func CreatePost(ctx context.Context, post *models.BlogPost) error {
	post.ID = primitive.NewObjectID()
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Published && post.PublishedAt == nil {
		post.PublishedAt = &now
	}

	_, err := database.BlogCollection.InsertOne(ctx, post)
	return err
}

// GetPosts lists articles with paging and optional title search.
// publicOnly restricts to published posts for the public site.
func GetPosts(ctx context.Context, params models.PaginationParams, publicOnly bool) (*models.PaginatedResponse, error) {
	filter := bson.M{}
	if publicOnly {
		filter["published"] = true
	}
	if params.Search != "" {
		filter["title"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := database.BlogCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := database.BlogCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.BlogPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(posts, total, params), nil
}

// GetPostBySlug fetches one published article for the public site.
func GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := database.BlogCollection.FindOne(ctx, bson.M{"slug": slug, "published": true}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetPostByID fetches one article regardless of publish state.
func GetPostByID(ctx context.Context, id string) (*models.BlogPost, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid blog post ID")
	}

	var post models.BlogPost
	err = database.BlogCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// UpdatePost replaces an article's editable fields.
func UpdatePost(ctx context.Context, id string, post *models.BlogPost) (*models.BlogPost, error) {
	existing, err := GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	post.ID = existing.ID
	post.CreatedAt = existing.CreatedAt
	post.UpdatedAt = now
	post.PublishedAt = existing.PublishedAt
	if post.Published && post.PublishedAt == nil {
		post.PublishedAt = &now
	}

	if _, err := database.BlogCollection.ReplaceOne(ctx, bson.M{"_id": existing.ID}, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes an article.
func DeletePost(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid blog post ID")
	}

	res, err := database.BlogCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
