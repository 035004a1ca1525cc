package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is one visitor contact attempt, partial or complete.
type Submission struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Identity fields; at least one must be present for the record to
	// be actionable.
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`

	// Profile fields, filled in over one or more partial captures.
	Firstname        string `bson:"firstname,omitempty" json:"firstname,omitempty"`
	Lastname         string `bson:"lastname,omitempty" json:"lastname,omitempty"`
	Name             string `bson:"name,omitempty" json:"name,omitempty"`
	Company          string `bson:"company,omitempty" json:"company,omitempty"`
	Message          string `bson:"message,omitempty" json:"message,omitempty"`
	BriefDescription string `bson:"brief_description,omitempty" json:"brief_description,omitempty"`

	// FieldsFilled accumulates via union on merge, flags never go
	// back to false.
	FieldsFilled map[string]bool `bson:"fieldsFilled,omitempty" json:"fieldsFilled,omitempty"`

	SubmissionStatus SubmissionState `bson:"submissionStatus" json:"submissionStatus"`
	Status           Status          `bson:"status" json:"status"`

	// CRM sync state; SentToHubSpot implies HubSpotContactID is set.
	SentToHubSpot    bool       `bson:"sentToHubSpot" json:"sentToHubSpot"`
	HubSpotContactID string     `bson:"hubspotContactId,omitempty" json:"hubspotContactId,omitempty"`
	HubSpotSyncDate  *time.Time `bson:"hubspotSyncDate,omitempty" json:"hubspotSyncDate,omitempty"`

	// Provenance, non-authoritative.
	Source      string `bson:"source,omitempty" json:"source,omitempty"`
	Page        string `bson:"page,omitempty" json:"page,omitempty"`
	CountryCode string `bson:"countryCode,omitempty" json:"countryCode,omitempty"`
	CountryName string `bson:"countryName,omitempty" json:"countryName,omitempty"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// HasIdentity reports whether the record carries at least one identity
// field.
func (s *Submission) HasIdentity() bool {
	return s.Email != "" || s.Phone != ""
}

// PartialSubmissionRequest is the lead-capture widget payload.
type PartialSubmissionRequest struct {
	Email            string `json:"email" validate:"omitempty,email"`
	Phone            string `json:"phone"`
	Firstname        string `json:"firstname"`
	Lastname         string `json:"lastname"`
	Name             string `json:"name"`
	Company          string `json:"company"`
	Message          string `json:"message"`
	BriefDescription string `json:"brief_description"`
	Source           string `json:"source"`
	Page             string `json:"page"`
	CountryCode      string `json:"countryCode"`
	CountryName      string `json:"countryName"`
}

// ContactSubmissionRequest is the full contact-form payload.
type ContactSubmissionRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone"`
	Firstname        string `json:"firstname"`
	Lastname         string `json:"lastname"`
	Name             string `json:"name"`
	Company          string `json:"company"`
	Message          string `json:"message" validate:"required"`
	BriefDescription string `json:"brief_description"`
	Source           string `json:"source"`
	Page             string `json:"page"`
	CountryCode      string `json:"countryCode"`
	CountryName      string `json:"countryName"`
}

// MergeReport summarizes one merge-job run (or dry run).
type MergeReport struct {
	Variant        string   `json:"variant"`
	GroupsFound    int      `json:"groupsFound"`
	RecordsMerged  int      `json:"recordsMerged"`
	RecordsDeleted int      `json:"recordsDeleted"`
	KeptIDs        []string `json:"keptIds,omitempty"`
	DryRun         bool     `json:"dryRun"`
}

// HubSpotSyncRequest names the record to push to the CRM.
type HubSpotSyncRequest struct {
	ID string `json:"id" validate:"required"`
}
