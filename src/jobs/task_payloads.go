package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	TypeLeadCleanup  = "leads:cleanup"
	TypeLeadCRMSync  = "leads:crm-sync"
	TypeWelcomeEmail = "newsletter:welcome"
)

type LeadJobPayload struct {
	Variant string `json:"variant"`
}

type WelcomeEmailPayload struct {
	Email            string `json:"email"`
	UnsubscribeToken string `json:"unsubscribe_token"`
}

// NewLeadCleanupTask builds a dedup/merge batch task for one variant.
func NewLeadCleanupTask(variant string) (*asynq.Task, error) {
	payload, err := json.Marshal(LeadJobPayload{Variant: variant})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeLeadCleanup, payload), nil
}

// NewLeadCRMSyncTask builds a push-pending-leads-to-HubSpot task.
func NewLeadCRMSyncTask() (*asynq.Task, error) {
	return asynq.NewTask(TypeLeadCRMSync, nil), nil
}

// NewWelcomeEmailTask builds a newsletter welcome email task.
func NewWelcomeEmailTask(email, token string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{Email: email, UnsubscribeToken: token})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeWelcomeEmail, payload), nil
}
