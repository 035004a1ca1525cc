package models

// Status is the business workflow state of a submission. Any value
// outside this set is a data defect repaired by the fix-status pass.
type Status string

const (
	StatusPending         Status = "pending"
	StatusInProgress      Status = "in-progress"
	StatusCompleted       Status = "completed"
	StatusRead            Status = "read"
	StatusReplied         Status = "replied"
	StatusClosed          Status = "closed"
	StatusPartialLeadSent Status = "partial_lead_sent"
	StatusArchived        Status = "archived"
)

// AllStatuses - every valid workflow status, in no particular order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusInProgress,
		StatusCompleted,
		StatusRead,
		StatusReplied,
		StatusClosed,
		StatusPartialLeadSent,
		StatusArchived,
	}
}

// IsValid reports whether s is a member of the status enum.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusRead,
		StatusReplied, StatusClosed, StatusPartialLeadSent, StatusArchived:
		return true
	}
	return false
}

// Normalize coerces an invalid status to pending.
func (s Status) Normalize() Status {
	if !s.IsValid() {
		return StatusPending
	}
	return s
}

// SubmissionState tracks whether a record is a partial capture or a
// full form submission. A complete record is never merged away.
type SubmissionState string

const (
	SubmissionPartial  SubmissionState = "partial"
	SubmissionComplete SubmissionState = "complete"
)
