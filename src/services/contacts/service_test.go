package contacts

import (
	"context"
	"testing"

	"Agency-Backend/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertPartialRejectsMissingIdentity(t *testing.T) {
	// rejected before any database access, so no connection is needed
	_, created, err := UpsertPartial(context.Background(), &models.PartialSubmissionRequest{})

	require.ErrorIs(t, err, ErrNoIdentity)
	assert.False(t, created)
}

func TestUpsertPartialRejectsWhitespaceIdentity(t *testing.T) {
	req := &models.PartialSubmissionRequest{
		Email:     "   ",
		Firstname: "Jo",
	}

	_, _, err := UpsertPartial(context.Background(), req)

	require.ErrorIs(t, err, ErrNoIdentity)
}
