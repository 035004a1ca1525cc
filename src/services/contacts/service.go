package contacts

import (
	"context"
	"errors"
	"strings"
	"time"

	"Agency-Backend/src/database"
	"Agency-Backend/src/models"
	"Agency-Backend/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNoIdentity    = errors.New("at least one of email or phone is required")
	ErrInvalidStatus = errors.New("invalid status value")
	ErrNotFound      = errors.New("submission not found")
)

// applyRequest writes every non-empty request field onto the record
// and flags it in fieldsFilled.
func applyRequest(s *models.Submission, fields map[string]string) {
	for name, value := range fields {
		if !hasTrimmed(value) {
			continue
		}
		setFieldValue(s, name, strings.TrimSpace(value))
		markFilled(s, name)
	}
}

func requestFields(req *models.PartialSubmissionRequest) map[string]string {
	return map[string]string{
		FieldEmail:            strings.ToLower(strings.TrimSpace(req.Email)),
		FieldPhone:            utils.NormalizePhone(req.Phone),
		FieldFirstname:        req.Firstname,
		FieldLastname:         req.Lastname,
		FieldName:             req.Name,
		FieldCompany:          req.Company,
		FieldMessage:          req.Message,
		FieldBriefDescription: req.BriefDescription,
	}
}

// UpsertPartial finds an existing partial record by exact email OR
// exact phone and folds the new fields into it, or creates a fresh
// partial record when nothing matches. Returns the persisted record
// and whether it was newly created.
func UpsertPartial(ctx context.Context, req *models.PartialSubmissionRequest) (*models.Submission, bool, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := utils.NormalizePhone(req.Phone)

	if email == "" && phone == "" {
		return nil, false, ErrNoIdentity
	}

	fields := requestFields(req)

	var identity []bson.M
	if email != "" {
		identity = append(identity, bson.M{"email": email})
	}
	if phone != "" {
		identity = append(identity, bson.M{"phone": phone})
	}
	filter := bson.M{
		"submissionStatus": models.SubmissionPartial,
		"$or":              identity,
	}

	now := time.Now()
	var record models.Submission
	err := database.SubmissionCollection.FindOne(ctx, filter).Decode(&record)
	created := false
	if err != nil {
		if err != mongo.ErrNoDocuments {
			return nil, false, err
		}
		record = models.Submission{
			ID:               primitive.NewObjectID(),
			SubmissionStatus: models.SubmissionPartial,
			Status:           models.StatusPending,
			CreatedAt:        now,
		}
		created = true
	}

	applyRequest(&record, fields)

	if req.Source != "" {
		record.Source = req.Source
	}
	if req.Page != "" {
		record.Page = req.Page
	}
	if req.CountryCode != "" {
		record.CountryCode = req.CountryCode
		record.CountryName = req.CountryName
	}

	record.Status = record.Status.Normalize()
	record.UpdatedAt = now

	opts := options.Replace().SetUpsert(true)
	if _, err := database.SubmissionCollection.ReplaceOne(ctx, bson.M{"_id": record.ID}, record, opts); err != nil {
		return nil, false, err
	}

	return &record, created, nil
}

// CreateSubmission stores a full contact-form submission as a complete
// record. Complete records never take part in partial merging.
func CreateSubmission(ctx context.Context, req *models.ContactSubmissionRequest) (*models.Submission, error) {
	now := time.Now()
	record := models.Submission{
		ID:               primitive.NewObjectID(),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:            utils.NormalizePhone(req.Phone),
		Firstname:        req.Firstname,
		Lastname:         req.Lastname,
		Name:             req.Name,
		Company:          req.Company,
		Message:          req.Message,
		BriefDescription: req.BriefDescription,
		SubmissionStatus: models.SubmissionComplete,
		Status:           models.StatusPending,
		Source:           req.Source,
		Page:             req.Page,
		CountryCode:      req.CountryCode,
		CountryName:      req.CountryName,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	for _, name := range allFields() {
		if fieldValue(&record, name) != "" {
			markFilled(&record, name)
		}
	}

	if _, err := database.SubmissionCollection.InsertOne(ctx, record); err != nil {
		return nil, err
	}
	return &record, nil
}

// GetSubmissions lists records for the dashboard, newest first by
// default, optionally filtered by workflow status.
func GetSubmissions(ctx context.Context, params models.PaginationParams, status models.Status) (*models.PaginatedResponse, error) {
	filter := bson.M{}
	if status != "" {
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
		filter["status"] = status
	}
	if params.Search != "" {
		regex := bson.M{"$regex": params.Search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"email": regex},
			{"name": regex},
			{"company": regex},
			{"message": regex},
		}
	}

	total, err := database.SubmissionCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := database.SubmissionCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.Submission
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(records, total, params), nil
}

// GetSubmissionByID fetches one record.
func GetSubmissionByID(ctx context.Context, id string) (*models.Submission, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid submission ID")
	}

	var record models.Submission
	err = database.SubmissionCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// UpdateSubmissionStatus moves a record through the workflow. The
// status must be a member of the enum.
func UpdateSubmissionStatus(ctx context.Context, id string, status models.Status) (*models.Submission, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid submission ID")
	}

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var record models.Submission
	err = database.SubmissionCollection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// DeleteSubmission removes a record permanently.
func DeleteSubmission(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid submission ID")
	}

	res, err := database.SubmissionCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
