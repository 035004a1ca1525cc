package cases

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

var ErrNotFound = errors.New("case study not found")

// CreateCaseStudy stores a new client-work entry.
func CreateCaseStudy(ctx context.Context, cs *models.CaseStudy) error {
	cs.ID = primitive.NewObjectID()
	now := time.Now()
	cs.CreatedAt = now
	cs.UpdatedAt = now

	_, err := database.CaseStudyCollection.InsertOne(ctx, cs)
	return err
}

// GetCaseStudies lists entries with paging; publicOnly restricts to
// published ones, featuredOnly to the homepage highlights.
func GetCaseStudies(ctx context.Context, params models.PaginationParams, publicOnly, featuredOnly bool) (*models.PaginatedResponse, error) {
	filter := bson.M{}
	if publicOnly {
		filter["published"] = true
	}
	if featuredOnly {
		filter["featured"] = true
	}
	if params.Search != "" {
		regex := bson.M{"$regex": params.Search, "$options": "i"}
		filter["$or"] = []bson.M{{"title": regex}, {"client": regex}, {"industry": regex}}
	}

	total, err := database.CaseStudyCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := database.CaseStudyCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var studies []models.CaseStudy
	if err := cursor.All(ctx, &studies); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(studies, total, params), nil
}

// GetCaseStudyBySlug fetches one published entry.
func GetCaseStudyBySlug(ctx context.Context, slug string) (*models.CaseStudy, error) {
	var cs models.CaseStudy
	err := database.CaseStudyCollection.FindOne(ctx, bson.M{"slug": slug, "published": true}).Decode(&cs)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cs, nil
}

// GetCaseStudyByID fetches one entry regardless of publish state.
func GetCaseStudyByID(ctx context.Context, id string) (*models.CaseStudy, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid case study ID")
	}

	var cs models.CaseStudy
	err = database.CaseStudyCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&cs)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cs, nil
}

// UpdateCaseStudy replaces an entry's editable fields.
func UpdateCaseStudy(ctx context.Context, id string, cs *models.CaseStudy) (*models.CaseStudy, error) {
	existing, err := GetCaseStudyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cs.ID = existing.ID
	cs.CreatedAt = existing.CreatedAt
	cs.UpdatedAt = time.Now()

	if _, err := database.CaseStudyCollection.ReplaceOne(ctx, bson.M{"_id": existing.ID}, cs); err != nil {
		return nil, err
	}
	return cs, nil
}

// DeleteCaseStudy removes an entry.
func DeleteCaseStudy(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid case study ID")
	}

	res, err := database.CaseStudyCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
