package contacts

import (
	"testing"
	"time"

	"Agency-Backend/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partialAt(created time.Time, mutate func(*models.Submission)) models.Submission {
	s := models.Submission{
		SubmissionStatus: models.SubmissionPartial,
		Status:           models.StatusPending,
		CreatedAt:        created,
	}
	if mutate != nil {
		mutate(&s)
	}
	return s
}

func TestMergeGroupOldestRecordWins(t *testing.T) {
	older := partialAt(time.Now().Add(-2*time.Hour), func(s *models.Submission) {
		s.Email = "a@x.com"
		s.Firstname = "Jo"
	})
	newer := partialAt(time.Now(), func(s *models.Submission) {
		s.Email = "a@x.com"
		s.Firstname = "Joanna"
		s.Lastname = "Doe"
	})

	keep, absorbed := MergeGroup([]models.Submission{newer, older})

	require.Len(t, absorbed, 1)
	assert.Equal(t, older.CreatedAt, keep.CreatedAt)
	// keep's populated field survives, missing field is copied in
	assert.Equal(t, "Jo", keep.Firstname)
	assert.Equal(t, "Doe", keep.Lastname)
}

func TestMergeGroupNeverOverwritesPopulatedField(t *testing.T) {
	a := partialAt(time.Now().Add(-time.Hour), func(s *models.Submission) {
		s.Email = "a@x.com"
		s.Company = "Acme"
		s.Message = "call me"
	})
	b := partialAt(time.Now(), func(s *models.Submission) {
		s.Email = "a@x.com"
		s.Company = "Globex"
		s.Phone = "+15550102030"
	})

	keep, _ := MergeGroup([]models.Submission{a, b})

	assert.Equal(t, "Acme", keep.Company)
	assert.Equal(t, "call me", keep.Message)
	assert.Equal(t, "+15550102030", keep.Phone)
}

func TestMergeGroupFieldsFilledUnion(t *testing.T) {
	a := partialAt(time.Now().Add(-time.Hour), func(s *models.Submission) {
		s.Email = "a@x.com"
		s.FieldsFilled = map[string]bool{"email": true, "firstname": true}
	})
	b := partialAt(time.Now(), func(s *models.Submission) {
		s.Email = "a@x.com"
		s.FieldsFilled = map[string]bool{"email": true, "lastname": true, "company": true}
	})

	keep, _ := MergeGroup([]models.Submission{a, b})

	want := map[string]bool{"email": true, "firstname": true, "lastname": true, "company": true}
	assert.Equal(t, want, keep.FieldsFilled)

	// no previously-true flag went false
	for name, filled := range a.FieldsFilled {
		if filled {
			assert.True(t, keep.FieldsFilled[name], "flag %q was dropped", name)
		}
	}
}

func TestMergeGroupCarriesCRMSyncState(t *testing.T) {
	syncDate := time.Now().Add(-30 * time.Minute)
	a := partialAt(time.Now().Add(-time.Hour), func(s *models.Submission) {
		s.Email = "a@x.com"
	})
	b := partialAt(time.Now(), func(s *models.Submission) {
		s.Email = "a@x.com"
		s.SentToHubSpot = true
		s.HubSpotContactID = "hs-123"
		s.HubSpotSyncDate = &syncDate
	})

	keep, _ := MergeGroup([]models.Submission{a, b})

	assert.True(t, keep.SentToHubSpot)
	assert.Equal(t, "hs-123", keep.HubSpotContactID)
	require.NotNil(t, keep.HubSpotSyncDate)
}

func TestGroupDuplicatesByEmail(t *testing.T) {
	records := []models.Submission{
		partialAt(time.Now(), func(s *models.Submission) { s.Email = "a@x.com" }),
		partialAt(time.Now(), func(s *models.Submission) { s.Email = "b@x.com" }),
		partialAt(time.Now(), func(s *models.Submission) { s.Email = "a@x.com" }),
	}

	groups := GroupDuplicates(records, EmailMatcher)

	require.Len(t, groups, 1)
	assert.Len(t, groups[0], 2)
}

func TestGroupDuplicatesEmptyFieldNeverMatches(t *testing.T) {
	records := []models.Submission{
		partialAt(time.Now(), nil),
		partialAt(time.Now(), nil),
		partialAt(time.Now(), nil),
	}

	assert.Empty(t, GroupDuplicates(records, EmailMatcher))
	assert.Empty(t, GroupDuplicates(records, PhoneMatcher))
	assert.Empty(t, GroupDuplicates(records, IdentityMatcher))
}

func TestDisjointIdentityRecordsAreNotMerged(t *testing.T) {
	// one record knows only the email, the other only the phone; they
	// share nothing, so neither variant may group them
	records := []models.Submission{
		partialAt(time.Now().Add(-time.Hour), func(s *models.Submission) { s.Email = "a@x.com" }),
		partialAt(time.Now(), func(s *models.Submission) { s.Phone = "+1555" }),
	}

	assert.Empty(t, GroupDuplicates(records, EmailMatcher))
	assert.Empty(t, GroupDuplicates(records, PhoneMatcher))
	assert.Empty(t, GroupDuplicates(records, IdentityMatcher))
}

func TestIdentityMatcherEvaluatesAgainstSeedOnly(t *testing.T) {
	// r2 links to the seed by email; r3 shares r2's phone but not the
	// seed's fields, so it stays outside the group
	seed := partialAt(time.Now().Add(-2*time.Hour), func(s *models.Submission) { s.Email = "a@x.com" })
	r2 := partialAt(time.Now().Add(-time.Hour), func(s *models.Submission) {
		s.Email = "a@x.com"
		s.Phone = "+15550102030"
	})
	r3 := partialAt(time.Now(), func(s *models.Submission) { s.Phone = "+15550102030" })

	groups := GroupDuplicates([]models.Submission{seed, r2, r3}, IdentityMatcher)

	require.Len(t, groups, 1)
	assert.Len(t, groups[0], 2)
}

func TestProvenanceMatcherGroupsByCompositeKey(t *testing.T) {
	mk := func(source, page, cc string) models.Submission {
		return partialAt(time.Now(), func(s *models.Submission) {
			s.Source = source
			s.Page = page
			s.CountryCode = cc
		})
	}

	records := []models.Submission{
		mk("widget", "/pricing", "US"),
		mk("widget", "/pricing", "US"),
		mk("widget", "/pricing", "DE"),
		mk("footer", "/pricing", "US"),
	}

	groups := GroupDuplicates(records, ProvenanceMatcher)

	require.Len(t, groups, 1)
	assert.Len(t, groups[0], 2)
}

func TestProvenanceMatcherRequiresFullKey(t *testing.T) {
	// two distinct visitors sharing only the source must never be
	// merged into one record
	records := []models.Submission{
		partialAt(time.Now().Add(-time.Hour), func(s *models.Submission) {
			s.Email = "a@x.com"
			s.Source = "widget"
		}),
		partialAt(time.Now(), func(s *models.Submission) {
			s.Email = "b@x.com"
			s.Source = "widget"
		}),
	}

	assert.Empty(t, GroupDuplicates(records, ProvenanceMatcher))
}

func TestProvenanceMatcherIgnoresBlankProvenance(t *testing.T) {
	records := []models.Submission{
		partialAt(time.Now(), func(s *models.Submission) { s.Email = "a@x.com" }),
		partialAt(time.Now(), func(s *models.Submission) { s.Email = "b@x.com" }),
	}

	assert.Empty(t, GroupDuplicates(records, ProvenanceMatcher))
}

func TestMergeGroupNormalizesStatus(t *testing.T) {
	a := partialAt(time.Now().Add(-time.Hour), func(s *models.Submission) {
		s.Email = "a@x.com"
		s.Status = models.Status("corrupt-value")
	})
	b := partialAt(time.Now(), func(s *models.Submission) { s.Email = "a@x.com" })

	keep, _ := MergeGroup([]models.Submission{a, b})

	assert.Equal(t, models.StatusPending, keep.Status)
}
