package submission

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Payload is the category-specific half of a submission. Implementations
// double as the create/edit request bodies; Validate enforces required-field
// presence at creation, nothing more.
type Payload interface {
	SubmissionCategory() Category
	Title() string
	Validate() error
}

type ConferencePayload struct {
	PaperTitle     string     `json:"paper_title"`
	ConferenceName string     `json:"conference_name"`
	Venue          string     `json:"venue,omitempty"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	CertificateURL *string    `json:"certificate_url,omitempty"`
}

func (p *ConferencePayload) SubmissionCategory() Category { return CategoryConference }

func (p *ConferencePayload) Title() string { return p.PaperTitle }

func (p *ConferencePayload) Validate() error {
	if strings.TrimSpace(p.PaperTitle) == "" {
		return errors.New("paper_title is required")
	}
	if strings.TrimSpace(p.ConferenceName) == "" {
		return errors.New("conference_name is required")
	}
	if p.StartDate.IsZero() {
		return errors.New("start_date is required")
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return errors.New("end_date cannot be before start_date")
	}
	return nil
}

type JournalPayload struct {
	PaperTitle      string    `json:"paper_title"`
	JournalName     string    `json:"journal_name"`
	ISSN            string    `json:"issn,omitempty"`
	VolumeIssue     string    `json:"volume_issue,omitempty"`
	PublicationDate time.Time `json:"publication_date"`
	ArticleLink     *string   `json:"article_link,omitempty"`
	CertificateURL  *string   `json:"certificate_url,omitempty"`
}

func (p *JournalPayload) SubmissionCategory() Category { return CategoryJournal }

func (p *JournalPayload) Title() string { return p.PaperTitle }

func (p *JournalPayload) Validate() error {
	if strings.TrimSpace(p.PaperTitle) == "" {
		return errors.New("paper_title is required")
	}
	if strings.TrimSpace(p.JournalName) == "" {
		return errors.New("journal_name is required")
	}
	if p.PublicationDate.IsZero() {
		return errors.New("publication_date is required")
	}
	return nil
}

type PatentPayload struct {
	PatentTitle       string     `json:"patent_title"`
	ApplicationNumber string     `json:"application_number"`
	PatentOffice      string     `json:"patent_office,omitempty"`
	FilingDate        time.Time  `json:"filing_date"`
	GrantDate         *time.Time `json:"grant_date,omitempty"`
	CertificateURL    *string    `json:"certificate_url,omitempty"`
}

func (p *PatentPayload) SubmissionCategory() Category { return CategoryPatent }

func (p *PatentPayload) Title() string { return p.PatentTitle }

func (p *PatentPayload) Validate() error {
	if strings.TrimSpace(p.PatentTitle) == "" {
		return errors.New("patent_title is required")
	}
	if strings.TrimSpace(p.ApplicationNumber) == "" {
		return errors.New("application_number is required")
	}
	if p.FilingDate.IsZero() {
		return errors.New("filing_date is required")
	}
	if p.GrantDate != nil && p.GrantDate.Before(p.FilingDate) {
		return errors.New("grant_date cannot be before filing_date")
	}
	return nil
}

type WorkshopPayload struct {
	WorkshopName   string     `json:"workshop_name"`
	Organizer      string     `json:"organizer"`
	Venue          string     `json:"venue,omitempty"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	CertificateURL *string    `json:"certificate_url,omitempty"`
}

func (p *WorkshopPayload) SubmissionCategory() Category { return CategoryWorkshop }

func (p *WorkshopPayload) Title() string { return p.WorkshopName }

func (p *WorkshopPayload) Validate() error {
	if strings.TrimSpace(p.WorkshopName) == "" {
		return errors.New("workshop_name is required")
	}
	if strings.TrimSpace(p.Organizer) == "" {
		return errors.New("organizer is required")
	}
	if p.StartDate.IsZero() {
		return errors.New("start_date is required")
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return errors.New("end_date cannot be before start_date")
	}
	return nil
}

// NewPayload returns an empty payload of the given category, ready to be
// decoded into.
func NewPayload(c Category) (Payload, error) {
	switch c {
	case CategoryConference:
		return &ConferencePayload{}, nil
	case CategoryJournal:
		return &JournalPayload{}, nil
	case CategoryPatent:
		return &PatentPayload{}, nil
	case CategoryWorkshop:
		return &WorkshopPayload{}, nil
	}
	return nil, fmt.Errorf("unknown category %q", c)
}

// DecodePayload unmarshals a request body into the category's payload shape.
func DecodePayload(c Category, data []byte) (Payload, error) {
	payload, err := NewPayload(c)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, payload); err != nil {
		return nil, fmt.Errorf("malformed %s payload: %w", c, err)
	}
	return payload, nil
}
