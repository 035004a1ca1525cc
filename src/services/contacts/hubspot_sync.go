package contacts

import (
	"context"
	"log"
	"sync"
	"time"

	"Agency-Backend/src/database"
	"Agency-Backend/src/models"
	"Agency-Backend/src/services/hubspot"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	crm     hubspot.API
	crmOnce sync.Once
)

// CRM returns the shared HubSpot client, built lazily so the .env file
// is loaded first.
func CRM() hubspot.API {
	crmOnce.Do(func() {
		if crm == nil {
			crm = hubspot.NewClientFromEnv()
		}
	})
	return crm
}

// SetCRM swaps the CRM client, used by tests.
func SetCRM(api hubspot.API) {
	crmOnce.Do(func() {})
	crm = api
}

// contactProps flattens a submission into HubSpot contact properties.
func contactProps(s *models.Submission) hubspot.ContactProperties {
	firstname := s.Firstname
	if firstname == "" && s.Name != "" {
		firstname = s.Name
	}
	message := s.Message
	if message == "" {
		message = s.BriefDescription
	}
	return hubspot.ContactProperties{
		Email:     s.Email,
		Phone:     s.Phone,
		Firstname: firstname,
		Lastname:  s.Lastname,
		Company:   s.Company,
		Message:   message,
		Country:   s.CountryName,
		Source:    s.Source,
	}
}

// SyncToHubSpot pushes one record to the CRM. Idempotent: a record
// already flagged sentToHubSpot is returned untouched with synced=false.
// The record must carry at least one identity field.
func SyncToHubSpot(ctx context.Context, id string) (*models.Submission, bool, error) {
	record, err := GetSubmissionByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	synced, err := syncRecord(ctx, record)
	if err != nil {
		return nil, false, err
	}
	return record, synced, nil
}

// syncRecord pushes record to the CRM and persists the sync state.
// Returns false without touching the CRM when the record is already
// flagged sentToHubSpot.
func syncRecord(ctx context.Context, record *models.Submission) (bool, error) {
	if !record.HasIdentity() {
		return false, ErrNoIdentity
	}

	if record.SentToHubSpot {
		return false, nil
	}

	contactID, err := CRM().UpsertContactByEmail(ctx, contactProps(record))
	if err != nil {
		return false, err
	}

	now := time.Now()
	record.SentToHubSpot = true
	record.HubSpotContactID = contactID
	record.HubSpotSyncDate = &now
	record.Status = models.StatusPartialLeadSent
	record.UpdatedAt = now

	update := bson.M{"$set": bson.M{
		"sentToHubSpot":    true,
		"hubspotContactId": contactID,
		"hubspotSyncDate":  now,
		"status":           models.StatusPartialLeadSent,
		"updatedAt":        now,
	}}
	if _, err := database.SubmissionCollection.UpdateOne(ctx, bson.M{"_id": record.ID}, update); err != nil {
		return false, err
	}

	return true, nil
}

// SyncPendingPartials pushes every unsent partial record that carries
// an identity field. Per-record failures are logged and skipped, this
// runs from the background worker where sync is best-effort.
func SyncPendingPartials(ctx context.Context) (int, error) {
	filter := bson.M{
		"submissionStatus": models.SubmissionPartial,
		"sentToHubSpot":    bson.M{"$ne": true},
		"$or": []bson.M{
			{"email": bson.M{"$nin": []interface{}{nil, ""}}},
			{"phone": bson.M{"$nin": []interface{}{nil, ""}}},
		},
	}

	cursor, err := database.SubmissionCollection.Find(ctx, filter)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var records []models.Submission
	if err := cursor.All(ctx, &records); err != nil {
		return 0, err
	}

	synced := 0
	for i := range records {
		if _, ok, err := SyncToHubSpot(ctx, records[i].ID.Hex()); err != nil {
			log.Println("hubspot sync failed for", records[i].ID.Hex(), ":", err)
		} else if ok {
			synced++
		}
	}
	return synced, nil
}
