package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Agency-Backend/src/services/contacts"

	"github.com/hibiken/asynq"
)

// HandleLeadCleanupTask runs the requested merge variant as a
// background batch. Overlapping invocations are not mutually excluded,
// the HTTP endpoints share the same property.
func HandleLeadCleanupTask(ctx context.Context, t *asynq.Task) error {
	var payload LeadJobPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	var err error
	switch payload.Variant {
	case contacts.VariantDuplicates:
		_, err = contacts.MergeDuplicates(ctx)
	case contacts.VariantPartials:
		_, err = contacts.MergePartials(ctx, false)
	default:
		_, err = contacts.CleanupDuplicates(ctx, false)
	}
	if err != nil {
		log.Println("lead cleanup task failed:", err)
		return err
	}

	log.Println("lead cleanup task finished, variant:", payload.Variant)
	return nil
}

// HandleLeadCRMSyncTask pushes every pending partial lead to HubSpot.
func HandleLeadCRMSyncTask(ctx context.Context, t *asynq.Task) error {
	synced, err := contacts.SyncPendingPartials(ctx)
	if err != nil {
		log.Println("lead CRM sync task failed:", err)
		return err
	}
	log.Println("lead CRM sync task finished, synced:", synced)
	return nil
}
