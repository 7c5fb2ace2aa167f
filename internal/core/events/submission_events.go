package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventSubmissionCreated  = "submission.created"
	EventSubmissionApproved = "submission.approved"
	EventSubmissionRejected = "submission.rejected"
)

// SubmissionEvent describes a lifecycle change on one achievement record.
type SubmissionEvent struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      SubmissionData `json:"data"`
}

type SubmissionData struct {
	SubmissionID int64  `json:"submission_id"`
	Category     string `json:"category"`
	FacultyID    int64  `json:"faculty_id"`
	Department   string `json:"department"`
	Title        string `json:"title"`
	DecidedBy    int64  `json:"decided_by,omitempty"`
}

func NewSubmissionEvent(eventType string, data SubmissionData) SubmissionEvent {
	return SubmissionEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}
}

func (e SubmissionEvent) EventType() string { return e.Type }

func (e SubmissionEvent) EventID() string { return e.ID }

func (e SubmissionEvent) OccurredAt() time.Time { return e.Timestamp }

func (e SubmissionEvent) Payload() interface{} { return e.Data }
