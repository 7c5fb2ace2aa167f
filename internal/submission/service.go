package submission

import (
	"context"
	"log/slog"
	"time"

	"github.com/adelicia-js/milestone-monitor-sub001/internal"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/core/events"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/faculty"
)

// SearchOptions narrows a category listing. Zero values mean "no filter".
type SearchOptions struct {
	FacultyID  int64
	Department string
	Status     Status
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// Repository defines the data access methods for submissions. Every method
// dispatches on category to the matching table.
type Repository interface {
	Create(s *Submission) error
	GetByID(c Category, id int64) (*Submission, error)
	ListPendingByDepartment(department string) (*PendingSubmissions, error)
	Search(c Category, opts SearchOptions) ([]*Submission, error)
	UpdatePayload(s *Submission) error
	UpdateStatus(c Category, id int64, status Status, decidedAt *time.Time) error
	Delete(c Category, id int64) error
}

// EventPublisher is the slice of the event bus the workflow needs.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Service is the approval workflow engine. Caller identity is always an
// explicit parameter; the engine never reads ambient session state.
type Service struct {
	repo   Repository
	events EventPublisher
	logger *slog.Logger
}

func NewService(repo Repository, publisher EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		events: publisher,
		logger: logger,
	}
}

// Submit creates a new pending record owned by the caller. Any authenticated
// account may submit; the department is stamped from the caller.
func (s *Service) Submit(caller *faculty.Faculty, payload Payload) (*Submission, error) {
	if err := payload.Validate(); err != nil {
		s.logger.Warn("submission validation failed",
			"error", err, "faculty_id", caller.ID, "category", payload.SubmissionCategory())
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	sub := NewSubmission(caller, payload)
	if err := s.repo.Create(sub); err != nil {
		s.logger.Error("failed to create submission",
			"error", err, "faculty_id", caller.ID, "category", sub.Category)
		return nil, internal.NewBackendError("failed to create submission", err)
	}

	s.logger.Info("submission created",
		"submission_id", sub.ID,
		"category", sub.Category,
		"faculty_id", caller.ID,
		"department", sub.Department)

	s.publish(events.EventSubmissionCreated, sub, 0)

	return sub, nil
}

// ListPending returns the caller's department review queue, grouped by
// category. HOD only.
func (s *Service) ListPending(caller *faculty.Faculty) (*PendingSubmissions, error) {
	if !caller.CanReview() {
		s.logger.Warn("list pending denied: caller is not hod",
			"faculty_id", caller.ID, "role", caller.Role)
		return nil, internal.ErrHODRequired
	}

	pending, err := s.repo.ListPendingByDepartment(caller.Department)
	if err != nil {
		s.logger.Error("failed to list pending submissions",
			"error", err, "department", caller.Department)
		return nil, internal.NewBackendError("failed to list pending submissions", err)
	}

	return pending, nil
}

// Decide applies an approve/reject decision. The caller must be an HOD of
// the record's department; the department check is enforced here as well as
// in ListPending, so a decision can never cross departments even when the
// record id leaks. Re-deciding an already-decided record is a state no-op
// but is still logged and re-published.
func (s *Service) Decide(caller *faculty.Faculty, c Category, id int64, action Action) (*Submission, error) {
	sub, err := s.repo.GetByID(c, id)
	if err != nil {
		return nil, err
	}

	if !caller.CanReview() {
		s.logger.Warn("decision denied: caller is not hod",
			"submission_id", id, "faculty_id", caller.ID, "role", caller.Role)
		return nil, internal.ErrHODRequired
	}
	if !caller.SameDepartment(sub.Department) {
		s.logger.Warn("decision denied: cross-department attempt",
			"submission_id", id,
			"record_department", sub.Department,
			"caller_department", caller.Department,
			"faculty_id", caller.ID)
		return nil, internal.ErrDepartmentMismatch
	}

	switch action {
	case ActionApprove:
		sub.Approve()
	case ActionReject:
		sub.Reject()
	default:
		return nil, internal.NewValidationError("action must be approve or reject", internal.ErrCodeInvalidAction)
	}

	if err := s.repo.UpdateStatus(c, id, sub.Status, sub.DecidedAt); err != nil {
		s.logger.Error("failed to store decision", "error", err, "submission_id", id)
		return nil, internal.NewBackendError("failed to store decision", err)
	}

	s.logger.Info("submission decided",
		"submission_id", id,
		"category", c,
		"action", action,
		"status", sub.Status,
		"decided_by", caller.ID)

	eventType := events.EventSubmissionApproved
	if action == ActionReject {
		eventType = events.EventSubmissionRejected
	}
	s.publish(eventType, sub, caller.ID)

	return sub, nil
}

// Edit replaces the payload of an owned record and force-resets it to
// pending: any content change requires re-review.
func (s *Service) Edit(caller *faculty.Faculty, c Category, id int64, payload Payload) (*Submission, error) {
	sub, err := s.repo.GetByID(c, id)
	if err != nil {
		return nil, err
	}

	if !sub.OwnedBy(caller) {
		s.logger.Warn("edit denied: caller does not own record",
			"submission_id", id, "owner_id", sub.FacultyID, "caller_id", caller.ID)
		return nil, internal.ErrNotOwner
	}

	if err := payload.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	wasDecided := sub.IsDecided()
	sub.Payload = payload
	sub.ResetForReview()

	if err := s.repo.UpdatePayload(sub); err != nil {
		s.logger.Error("failed to update submission", "error", err, "submission_id", id)
		return nil, internal.NewBackendError("failed to update submission", err)
	}

	s.logger.Info("submission edited",
		"submission_id", id,
		"category", c,
		"faculty_id", caller.ID,
		"resubmitted", wasDecided)

	if wasDecided {
		s.publish(events.EventSubmissionCreated, sub, 0)
	}

	return sub, nil
}

// Delete removes a record permanently. Owners may delete their own records;
// an HOD may delete any record in their department. No soft delete.
func (s *Service) Delete(caller *faculty.Faculty, c Category, id int64) error {
	sub, err := s.repo.GetByID(c, id)
	if err != nil {
		return err
	}

	allowed := sub.OwnedBy(caller) || (caller.CanReview() && caller.SameDepartment(sub.Department))
	if !allowed {
		s.logger.Warn("delete denied",
			"submission_id", id, "caller_id", caller.ID, "owner_id", sub.FacultyID)
		return internal.ErrNotOwner
	}

	if err := s.repo.Delete(c, id); err != nil {
		s.logger.Error("failed to delete submission", "error", err, "submission_id", id)
		return internal.NewBackendError("failed to delete submission", err)
	}

	s.logger.Info("submission deleted",
		"submission_id", id, "category", c, "deleted_by", caller.ID)

	return nil
}

// ListOwn returns the caller's own records, one category at a time.
func (s *Service) ListOwn(caller *faculty.Faculty, c Category, limit, offset int) ([]*Submission, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	subs, err := s.repo.Search(c, SearchOptions{
		FacultyID: caller.ID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		s.logger.Error("failed to list own submissions",
			"error", err, "faculty_id", caller.ID, "category", c)
		return nil, internal.NewBackendError("failed to list submissions", err)
	}

	return subs, nil
}

func (s *Service) publish(eventType string, sub *Submission, decidedBy int64) {
	if s.events == nil {
		return
	}

	ev := events.NewSubmissionEvent(eventType, events.SubmissionData{
		SubmissionID: sub.ID,
		Category:     string(sub.Category),
		FacultyID:    sub.FacultyID,
		Department:   sub.Department,
		Title:        sub.Payload.Title(),
		DecidedBy:    decidedBy,
	})

	if err := s.events.Publish(context.Background(), ev); err != nil {
		s.logger.Error("failed to publish event",
			"event_type", eventType, "submission_id", sub.ID, "error", err)
	}
}
