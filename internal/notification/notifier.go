package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adelicia-js/milestone-monitor-sub001/internal/core/events"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/faculty"
)

// FacultyDirectory resolves recipients for outgoing mail.
type FacultyDirectory interface {
	GetByID(id int64) (*faculty.Faculty, error)
	ListByDepartmentRole(department, role string) ([]*faculty.Faculty, error)
}

// Subscriber is the registration slice of the event bus.
type Subscriber interface {
	Subscribe(eventType string, handler events.Handler)
}

// Notifier turns submission lifecycle events into email. Delivery is best
// effort: a failed send is logged and swallowed, it never surfaces to the
// workflow that published the event.
type Notifier struct {
	mailer    MailSender
	directory FacultyDirectory
	logger    *slog.Logger
}

func NewNotifier(mailer MailSender, directory FacultyDirectory, logger *slog.Logger) *Notifier {
	return &Notifier{
		mailer:    mailer,
		directory: directory,
		logger:    logger,
	}
}

// Register attaches the notifier to the event bus.
func (n *Notifier) Register(bus Subscriber) {
	bus.Subscribe(events.EventSubmissionCreated, n.HandleCreated)
	bus.Subscribe(events.EventSubmissionApproved, n.HandleDecision)
	bus.Subscribe(events.EventSubmissionRejected, n.HandleDecision)
}

// HandleCreated mails the department's HODs that a record is waiting for
// review.
func (n *Notifier) HandleCreated(ctx context.Context, event events.Event) error {
	data, ok := event.Payload().(events.SubmissionData)
	if !ok {
		n.logger.Warn("unexpected event payload", "event_type", event.EventType())
		return nil
	}

	hods, err := n.directory.ListByDepartmentRole(data.Department, faculty.RoleHOD)
	if err != nil {
		n.logger.Error("failed to resolve department hods",
			"error", err, "department", data.Department, "submission_id", data.SubmissionID)
		return nil
	}
	if len(hods) == 0 {
		n.logger.Warn("no hod on record for department, skipping review notice",
			"department", data.Department, "submission_id", data.SubmissionID)
		return nil
	}

	recipients := make([]string, 0, len(hods))
	for _, hod := range hods {
		recipients = append(recipients, hod.Email)
	}

	subject := fmt.Sprintf("New %s submission pending review", data.Category)
	body := fmt.Sprintf(
		"<p>A new %s record, <strong>%s</strong>, was submitted in the %s department and is waiting for your review.</p>",
		data.Category, data.Title, data.Department)

	if err := n.mailer.Send(recipients, subject, body); err != nil {
		n.logger.Error("failed to send review notice",
			"error", err, "submission_id", data.SubmissionID, "recipients", len(recipients))
	}
	return nil
}

// HandleDecision mails the record's owner the outcome of a review.
func (n *Notifier) HandleDecision(ctx context.Context, event events.Event) error {
	data, ok := event.Payload().(events.SubmissionData)
	if !ok {
		n.logger.Warn("unexpected event payload", "event_type", event.EventType())
		return nil
	}

	owner, err := n.directory.GetByID(data.FacultyID)
	if err != nil {
		n.logger.Error("failed to resolve record owner",
			"error", err, "faculty_id", data.FacultyID, "submission_id", data.SubmissionID)
		return nil
	}

	outcome := "approved"
	if event.EventType() == events.EventSubmissionRejected {
		outcome = "rejected"
	}

	subject := fmt.Sprintf("Your %s submission was %s", data.Category, outcome)
	body := fmt.Sprintf(
		"<p>Your %s record, <strong>%s</strong>, has been %s by your head of department.</p>",
		data.Category, data.Title, outcome)

	if err := n.mailer.Send([]string{owner.Email}, subject, body); err != nil {
		n.logger.Error("failed to send decision notice",
			"error", err, "submission_id", data.SubmissionID, "faculty_id", owner.ID)
	}
	return nil
}
