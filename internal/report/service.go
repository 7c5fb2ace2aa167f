package report

import (
	"log/slog"

	"github.com/adelicia-js/milestone-monitor-sub001/internal"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/faculty"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/submission"
)

// SubmissionSource is the read slice of the submission repository the
// report builder needs.
type SubmissionSource interface {
	Search(c submission.Category, opts submission.SearchOptions) ([]*submission.Submission, error)
}

// Service builds achievement reports. Editors may report across any
// department; HODs are pinned to their own department regardless of the
// requested filter. Everyone else is denied.
type Service struct {
	source SubmissionSource
	logger *slog.Logger
}

func NewService(source SubmissionSource, logger *slog.Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
	}
}

// Generate produces a report for the given filter, scoped to what the
// caller is allowed to see.
func (s *Service) Generate(caller *faculty.Faculty, filter Filter) (*Report, error) {
	if !caller.CanViewReports() {
		s.logger.Warn("report denied: caller has no report access",
			"faculty_id", caller.ID, "role", caller.Role)
		return nil, internal.ErrReportAccess
	}

	// HODs only ever see their own department, whatever the filter asked for.
	if caller.IsHOD() && !caller.IsEditor() {
		filter.Department = caller.Department
	}

	categories := submission.Categories()
	if filter.Category != "" {
		categories = []submission.Category{filter.Category}
	}

	rpt := newReport(filter.Department)

	for _, c := range categories {
		subs, err := s.source.Search(c, submission.SearchOptions{
			Department: filter.Department,
			Status:     filter.Status,
			From:       filter.From,
			To:         filter.To,
		})
		if err != nil {
			s.logger.Error("failed to query report data",
				"error", err, "category", c, "department", filter.Department)
			return nil, internal.NewBackendError("failed to generate report", err)
		}
		rpt.add(c, subs)
	}

	s.logger.Info("report generated",
		"requested_by", caller.ID,
		"department", filter.Department,
		"records", rpt.Totals.Overall)

	return rpt, nil
}
