package contacts

import "Agency-Backend/src/models"

// Matcher decides whether candidate belongs to the duplicate group
// seeded by seed. All merge variants share one grouping algorithm and
// differ only in the matcher they plug in.
type Matcher func(seed, candidate *models.Submission) bool

// EmailMatcher groups records sharing a non-empty exact email.
func EmailMatcher(seed, candidate *models.Submission) bool {
	return seed.Email != "" && seed.Email == candidate.Email
}

// PhoneMatcher groups records sharing a non-empty exact phone.
func PhoneMatcher(seed, candidate *models.Submission) bool {
	return seed.Phone != "" && seed.Phone == candidate.Phone
}

// IdentityMatcher groups records sharing the seed's email OR phone.
// Matching is evaluated against the original seed fields only, records
// absorbed into the group do not extend it.
func IdentityMatcher(seed, candidate *models.Submission) bool {
	return EmailMatcher(seed, candidate) || PhoneMatcher(seed, candidate)
}

// ProvenanceMatcher groups records captured from the same
// source+page+countryCode. A weaker heuristic than identity matching,
// exposed for the merge-partials admin job. All three key fields must
// be populated, a partial provenance key is never enough to merge two
// visitors.
func ProvenanceMatcher(seed, candidate *models.Submission) bool {
	if seed.Source == "" || seed.Page == "" || seed.CountryCode == "" {
		return false
	}
	return seed.Source == candidate.Source &&
		seed.Page == candidate.Page &&
		seed.CountryCode == candidate.CountryCode
}

// GroupDuplicates partitions records into duplicate groups. The first
// unclaimed record seeds a group and every later unclaimed record
// matching that seed joins it. Groups of size 1 are dropped.
func GroupDuplicates(records []models.Submission, match Matcher) [][]models.Submission {
	claimed := make([]bool, len(records))
	var groups [][]models.Submission

	for i := range records {
		if claimed[i] {
			continue
		}
		group := []models.Submission{records[i]}
		claimed[i] = true

		for j := i + 1; j < len(records); j++ {
			if claimed[j] {
				continue
			}
			if match(&records[i], &records[j]) {
				group = append(group, records[j])
				claimed[j] = true
			}
		}

		if len(group) > 1 {
			groups = append(groups, group)
		}
	}

	return groups
}
