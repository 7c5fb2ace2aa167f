package submission

import (
	"fmt"
	"time"

	"github.com/adelicia-js/milestone-monitor-sub001/internal/faculty"
)

// Category tags the four kinds of achievement records. Each category
// persists to its own table but shares the same lifecycle.
type Category string

const (
	CategoryConference Category = "conference"
	CategoryJournal    Category = "journal"
	CategoryPatent     Category = "patent"
	CategoryWorkshop   Category = "workshop"
)

// Categories returns all categories in the fixed presentation order:
// conferences, journals, workshops, patents.
func Categories() []Category {
	return []Category{CategoryConference, CategoryJournal, CategoryWorkshop, CategoryPatent}
}

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryConference, CategoryJournal, CategoryPatent, CategoryWorkshop:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Status is the verification state stored in the is_verified column.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionApprove, ActionReject:
		return Action(s), nil
	}
	return "", fmt.Errorf("action must be %q or %q", ActionApprove, ActionReject)
}

// Submission is the unified record shape across all four categories:
// shared control fields plus a category-specific payload.
type Submission struct {
	ID          int64      `json:"id"`
	FacultyID   int64      `json:"faculty_id"`
	Department  string     `json:"department"`
	Category    Category   `json:"category"`
	Status      Status     `json:"is_verified"`
	Payload     Payload    `json:"payload"`
	SubmittedAt time.Time  `json:"submitted_at"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewSubmission builds a pending record owned by the submitting faculty.
// The department is denormalized from the owner at submission time and
// never changes afterwards.
func NewSubmission(owner *faculty.Faculty, payload Payload) *Submission {
	now := time.Now()
	return &Submission{
		FacultyID:   owner.ID,
		Department:  owner.Department,
		Category:    payload.SubmissionCategory(),
		Status:      StatusPending,
		Payload:     payload,
		SubmittedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *Submission) IsDecided() bool {
	return s.Status == StatusApproved || s.Status == StatusRejected
}

func (s *Submission) Approve() {
	s.Status = StatusApproved
	now := time.Now()
	s.DecidedAt = &now
	s.UpdatedAt = now
}

func (s *Submission) Reject() {
	s.Status = StatusRejected
	now := time.Now()
	s.DecidedAt = &now
	s.UpdatedAt = now
}

// ResetForReview puts an edited record back into the review queue.
// Any content edit requires re-review, whatever the previous decision was.
func (s *Submission) ResetForReview() {
	s.Status = StatusPending
	s.DecidedAt = nil
	s.UpdatedAt = time.Now()
}

func (s *Submission) OwnedBy(f *faculty.Faculty) bool {
	return s.FacultyID == f.ID
}

// PendingSubmissions groups the review queue by category. The sequences
// are kept separate, never merged or sorted against each other.
type PendingSubmissions struct {
	Conferences []*Submission `json:"conferences"`
	Journals    []*Submission `json:"journals"`
	Workshops   []*Submission `json:"workshops"`
	Patents     []*Submission `json:"patents"`
}

func (p *PendingSubmissions) Total() int {
	return len(p.Conferences) + len(p.Journals) + len(p.Workshops) + len(p.Patents)
}
