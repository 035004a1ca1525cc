package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), "expected %q to be valid", s)
	}

	invalid := []Status{"", "new", "PENDING", "done", "partial-lead-sent"}
	for _, s := range invalid {
		assert.False(t, s.IsValid(), "expected %q to be invalid", s)
	}
}

func TestStatusNormalize(t *testing.T) {
	assert.Equal(t, StatusPending, Status("garbage").Normalize())
	assert.Equal(t, StatusPending, Status("").Normalize())

	// valid statuses pass through untouched
	for _, s := range AllStatuses() {
		assert.Equal(t, s, s.Normalize())
	}
}

func TestStatusDomainClosure(t *testing.T) {
	// every normalized value is a member of the enum
	inputs := []Status{"pending", "weird", "", "archived", "REPLIED", "closed"}
	for _, s := range inputs {
		assert.True(t, s.Normalize().IsValid())
	}
}
