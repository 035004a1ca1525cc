package contacts

import (
	"context"
	"sort"
	"time"

	"Agency-Backend/src/database"
	"Agency-Backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Merge variant names, also used in job payloads and reports.
const (
	VariantCleanup    = "cleanup-duplicates"
	VariantDuplicates = "merge-duplicates"
	VariantPartials   = "merge-partials"
)

// MergeGroup collapses one duplicate group into a single record. The
// oldest record by createdAt is kept; fields are copied first-write-wins
// so a populated keep field is never overwritten; fieldsFilled is the
// OR union of every member.
func MergeGroup(group []models.Submission) (models.Submission, []models.Submission) {
	sorted := make([]models.Submission, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	keep := sorted[0]
	absorbed := sorted[1:]

	for i := range absorbed {
		absorbFields(&keep, &absorbed[i])
	}
	keep.Status = keep.Status.Normalize()
	keep.UpdatedAt = time.Now()

	return keep, absorbed
}

// absorbFields copies fields present on absorb but empty on keep and
// unions the fieldsFilled flags.
func absorbFields(keep, absorb *models.Submission) {
	for _, name := range allFields() {
		if fieldValue(keep, name) == "" && fieldValue(absorb, name) != "" {
			setFieldValue(keep, name, fieldValue(absorb, name))
		}
	}

	if keep.Source == "" {
		keep.Source = absorb.Source
	}
	if keep.Page == "" {
		keep.Page = absorb.Page
	}
	if keep.CountryCode == "" {
		keep.CountryCode = absorb.CountryCode
		keep.CountryName = absorb.CountryName
	}

	// CRM sync state follows whichever member already reached HubSpot.
	if !keep.SentToHubSpot && absorb.SentToHubSpot {
		keep.SentToHubSpot = true
		keep.HubSpotContactID = absorb.HubSpotContactID
		keep.HubSpotSyncDate = absorb.HubSpotSyncDate
	}

	for name, filled := range absorb.FieldsFilled {
		if filled {
			markFilled(keep, name)
		}
	}
}

// loadPartials fetches every partial record ordered oldest first.
// Complete records never participate in a merge.
func loadPartials(ctx context.Context) ([]models.Submission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := database.SubmissionCollection.Find(ctx,
		bson.M{"submissionStatus": models.SubmissionPartial}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.Submission
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// runMerge executes one grouping pass against the store. The kept
// record is saved before the absorbed ones are deleted, a mid-batch
// failure leaves duplicates behind instead of losing merged data. Any
// write failure aborts the whole batch.
func runMerge(ctx context.Context, variant string, match Matcher, dryRun bool, report *models.MergeReport) error {
	records, err := loadPartials(ctx)
	if err != nil {
		return err
	}

	groups := GroupDuplicates(records, match)
	report.Variant = variant
	report.DryRun = dryRun
	report.GroupsFound += len(groups)

	for _, group := range groups {
		keep, absorbed := MergeGroup(group)
		report.RecordsMerged += len(group)
		report.KeptIDs = append(report.KeptIDs, keep.ID.Hex())

		if dryRun {
			continue
		}

		_, err := database.SubmissionCollection.ReplaceOne(ctx, bson.M{"_id": keep.ID}, keep)
		if err != nil {
			return err
		}

		ids := make([]primitive.ObjectID, 0, len(absorbed))
		for _, a := range absorbed {
			ids = append(ids, a.ID)
		}
		res, err := database.SubmissionCollection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return err
		}
		report.RecordsDeleted += int(res.DeletedCount)
	}

	return nil
}

// CleanupDuplicates runs variant A: one pass grouping by exact email,
// then a second independent pass grouping by exact phone.
func CleanupDuplicates(ctx context.Context, dryRun bool) (*models.MergeReport, error) {
	report := &models.MergeReport{}
	if err := runMerge(ctx, VariantCleanup, EmailMatcher, dryRun, report); err != nil {
		return nil, err
	}
	if err := runMerge(ctx, VariantCleanup, PhoneMatcher, dryRun, report); err != nil {
		return nil, err
	}
	return report, nil
}

// MergeDuplicates runs variant B: seed-based email-OR-phone grouping.
func MergeDuplicates(ctx context.Context) (*models.MergeReport, error) {
	report := &models.MergeReport{}
	if err := runMerge(ctx, VariantDuplicates, IdentityMatcher, false, report); err != nil {
		return nil, err
	}
	return report, nil
}

// MergePartials runs variant C: composite source+page+countryCode
// grouping.
func MergePartials(ctx context.Context, dryRun bool) (*models.MergeReport, error) {
	report := &models.MergeReport{}
	if err := runMerge(ctx, VariantPartials, ProvenanceMatcher, dryRun, report); err != nil {
		return nil, err
	}
	return report, nil
}

// FixStatuses coerces every out-of-enum status to pending in one bulk
// write and returns how many records were repaired.
func FixStatuses(ctx context.Context) (int64, error) {
	valid := models.AllStatuses()
	filter := bson.M{"status": bson.M{"$nin": valid}}
	update := bson.M{"$set": bson.M{"status": models.StatusPending, "updatedAt": time.Now()}}

	res, err := database.SubmissionCollection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
