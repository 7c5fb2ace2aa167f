package report

import (
	"time"

	"github.com/adelicia-js/milestone-monitor-sub001/internal/submission"
)

// Filter narrows a report. Department is mandatory for HOD callers and
// optional for editors; the rest are optional.
type Filter struct {
	Department string
	Category   submission.Category
	Status     submission.Status
	From       *time.Time
	To         *time.Time
}

// Totals aggregates record counts for a generated report.
type Totals struct {
	ByCategory map[string]int `json:"by_category"`
	ByStatus   map[string]int `json:"by_status"`
	Overall    int            `json:"overall"`
}

// Report is a department-wide or institution-wide achievement listing with
// per-category breakdowns and aggregate counts.
type Report struct {
	Department  string                   `json:"department,omitempty"`
	GeneratedAt time.Time                `json:"generated_at"`
	Conferences []*submission.Submission `json:"conferences"`
	Journals    []*submission.Submission `json:"journals"`
	Workshops   []*submission.Submission `json:"workshops"`
	Patents     []*submission.Submission `json:"patents"`
	Totals      Totals                   `json:"totals"`
}

func newReport(department string) *Report {
	return &Report{
		Department:  department,
		GeneratedAt: time.Now(),
		Conferences: []*submission.Submission{},
		Journals:    []*submission.Submission{},
		Workshops:   []*submission.Submission{},
		Patents:     []*submission.Submission{},
		Totals: Totals{
			ByCategory: map[string]int{},
			ByStatus:   map[string]int{},
		},
	}
}

func (r *Report) add(c submission.Category, subs []*submission.Submission) {
	switch c {
	case submission.CategoryConference:
		r.Conferences = subs
	case submission.CategoryJournal:
		r.Journals = subs
	case submission.CategoryWorkshop:
		r.Workshops = subs
	case submission.CategoryPatent:
		r.Patents = subs
	}

	r.Totals.ByCategory[string(c)] = len(subs)
	for _, sub := range subs {
		r.Totals.ByStatus[string(sub.Status)]++
	}
	r.Totals.Overall += len(subs)
}
