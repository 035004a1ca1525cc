package contacts

import (
	"context"
	"testing"
	"time"

	"Agency-Backend/src/models"
	"Agency-Backend/src/services/hubspot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCRM struct {
	calls int
}

func (c *countingCRM) UpsertContactByEmail(ctx context.Context, props hubspot.ContactProperties) (string, error) {
	c.calls++
	return "hs-fake", nil
}

func TestContactPropsFallbacks(t *testing.T) {
	s := &models.Submission{
		Email:            "a@x.com",
		Name:             "Jo Doe",
		BriefDescription: "needs a new site",
		CountryName:      "Germany",
		Source:           "widget",
	}

	props := contactProps(s)

	// name stands in for a missing firstname, brief_description for a
	// missing message
	assert.Equal(t, "Jo Doe", props.Firstname)
	assert.Equal(t, "needs a new site", props.Message)
	assert.Equal(t, "Germany", props.Country)
	assert.Equal(t, "widget", props.Source)
}

func TestContactPropsPrefersExplicitFields(t *testing.T) {
	s := &models.Submission{
		Email:     "a@x.com",
		Firstname: "Jo",
		Name:      "ignored",
		Message:   "call me",
	}

	props := contactProps(s)

	assert.Equal(t, "Jo", props.Firstname)
	assert.Equal(t, "call me", props.Message)
}

func TestSyncRecordIsIdempotent(t *testing.T) {
	crm := &countingCRM{}
	SetCRM(crm)

	syncDate := time.Now().Add(-time.Hour)
	record := &models.Submission{
		Email:            "a@x.com",
		SentToHubSpot:    true,
		HubSpotContactID: "hs-123",
		HubSpotSyncDate:  &syncDate,
	}

	synced, err := syncRecord(context.Background(), record)

	require.NoError(t, err)
	assert.False(t, synced)
	// already-sent record never reaches the CRM and keeps its state
	assert.Zero(t, crm.calls)
	assert.Equal(t, "hs-123", record.HubSpotContactID)
}

func TestSyncRecordRequiresIdentity(t *testing.T) {
	crm := &countingCRM{}
	SetCRM(crm)

	_, err := syncRecord(context.Background(), &models.Submission{Firstname: "Jo"})

	require.ErrorIs(t, err, ErrNoIdentity)
	assert.Zero(t, crm.calls)
}
