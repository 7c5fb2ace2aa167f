package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/adelicia-js/milestone-monitor-sub001/internal"
	subDatamodel "github.com/adelicia-js/milestone-monitor-sub001/internal/core/datamodel/submission"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/submission"
	"gorm.io/gorm"
)

// SubmissionRepository implements submission.Repository using GORM, routing
// each category to its own table.
type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(s *submission.Submission) error {
	switch p := s.Payload.(type) {
	case *submission.ConferencePayload:
		model := conferenceToModel(s, p)
		if err := r.db.Create(model).Error; err != nil {
			return err
		}
		s.ID = model.ID
	case *submission.JournalPayload:
		model := journalToModel(s, p)
		if err := r.db.Create(model).Error; err != nil {
			return err
		}
		s.ID = model.ID
	case *submission.PatentPayload:
		model := patentToModel(s, p)
		if err := r.db.Create(model).Error; err != nil {
			return err
		}
		s.ID = model.ID
	case *submission.WorkshopPayload:
		model := workshopToModel(s, p)
		if err := r.db.Create(model).Error; err != nil {
			return err
		}
		s.ID = model.ID
	default:
		return fmt.Errorf("unsupported payload type %T", s.Payload)
	}
	return nil
}

func (r *SubmissionRepository) GetByID(c submission.Category, id int64) (*submission.Submission, error) {
	switch c {
	case submission.CategoryConference:
		var model subDatamodel.Conference
		if err := r.first(&model, id); err != nil {
			return nil, err
		}
		return conferenceFromModel(&model), nil
	case submission.CategoryJournal:
		var model subDatamodel.Journal
		if err := r.first(&model, id); err != nil {
			return nil, err
		}
		return journalFromModel(&model), nil
	case submission.CategoryPatent:
		var model subDatamodel.Patent
		if err := r.first(&model, id); err != nil {
			return nil, err
		}
		return patentFromModel(&model), nil
	case submission.CategoryWorkshop:
		var model subDatamodel.Workshop
		if err := r.first(&model, id); err != nil {
			return nil, err
		}
		return workshopFromModel(&model), nil
	}
	return nil, fmt.Errorf("unknown category %q", c)
}

func (r *SubmissionRepository) first(dest interface{}, id int64) error {
	err := r.db.Where("id = ?", id).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return internal.ErrSubmissionNotFound
	}
	return err
}

// ListPendingByDepartment returns the grouped review queue. Each category
// stays its own sequence, ordered oldest-first within the category.
func (r *SubmissionRepository) ListPendingByDepartment(department string) (*submission.PendingSubmissions, error) {
	pending := &submission.PendingSubmissions{
		Conferences: []*submission.Submission{},
		Journals:    []*submission.Submission{},
		Workshops:   []*submission.Submission{},
		Patents:     []*submission.Submission{},
	}

	opts := submission.SearchOptions{
		Department: department,
		Status:     submission.StatusPending,
	}

	for _, c := range submission.Categories() {
		subs, err := r.Search(c, opts)
		if err != nil {
			return nil, err
		}
		switch c {
		case submission.CategoryConference:
			pending.Conferences = subs
		case submission.CategoryJournal:
			pending.Journals = subs
		case submission.CategoryWorkshop:
			pending.Workshops = subs
		case submission.CategoryPatent:
			pending.Patents = subs
		}
	}

	return pending, nil
}

func (r *SubmissionRepository) Search(c submission.Category, opts submission.SearchOptions) ([]*submission.Submission, error) {
	query := r.db.Order("submitted_at ASC")

	if opts.FacultyID != 0 {
		query = query.Where("faculty_id = ?", opts.FacultyID)
	}
	if opts.Department != "" {
		query = query.Where("department = ?", opts.Department)
	}
	if opts.Status != "" {
		query = query.Where("is_verified = ?", string(opts.Status))
	}
	if opts.From != nil {
		query = query.Where("submitted_at >= ?", *opts.From)
	}
	if opts.To != nil {
		query = query.Where("submitted_at <= ?", *opts.To)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}

	switch c {
	case submission.CategoryConference:
		var models []*subDatamodel.Conference
		if err := query.Find(&models).Error; err != nil {
			return nil, err
		}
		result := make([]*submission.Submission, len(models))
		for i, m := range models {
			result[i] = conferenceFromModel(m)
		}
		return result, nil
	case submission.CategoryJournal:
		var models []*subDatamodel.Journal
		if err := query.Find(&models).Error; err != nil {
			return nil, err
		}
		result := make([]*submission.Submission, len(models))
		for i, m := range models {
			result[i] = journalFromModel(m)
		}
		return result, nil
	case submission.CategoryPatent:
		var models []*subDatamodel.Patent
		if err := query.Find(&models).Error; err != nil {
			return nil, err
		}
		result := make([]*submission.Submission, len(models))
		for i, m := range models {
			result[i] = patentFromModel(m)
		}
		return result, nil
	case submission.CategoryWorkshop:
		var models []*subDatamodel.Workshop
		if err := query.Find(&models).Error; err != nil {
			return nil, err
		}
		result := make([]*submission.Submission, len(models))
		for i, m := range models {
			result[i] = workshopFromModel(m)
		}
		return result, nil
	}
	return nil, fmt.Errorf("unknown category %q", c)
}

// UpdatePayload rewrites the payload columns together with the reset status.
// Control columns faculty_id and department are never touched.
func (r *SubmissionRepository) UpdatePayload(s *submission.Submission) error {
	updates := map[string]interface{}{
		"is_verified": string(s.Status),
		"decided_at":  s.DecidedAt,
		"updated_at":  time.Now(),
	}

	switch p := s.Payload.(type) {
	case *submission.ConferencePayload:
		updates["paper_title"] = p.PaperTitle
		updates["conference_name"] = p.ConferenceName
		updates["venue"] = p.Venue
		updates["start_date"] = p.StartDate
		updates["end_date"] = p.EndDate
		updates["certificate_url"] = p.CertificateURL
		return r.applyUpdates(&subDatamodel.Conference{}, s.ID, updates)
	case *submission.JournalPayload:
		updates["paper_title"] = p.PaperTitle
		updates["journal_name"] = p.JournalName
		updates["issn"] = p.ISSN
		updates["volume_issue"] = p.VolumeIssue
		updates["publication_date"] = p.PublicationDate
		updates["article_link"] = p.ArticleLink
		updates["certificate_url"] = p.CertificateURL
		return r.applyUpdates(&subDatamodel.Journal{}, s.ID, updates)
	case *submission.PatentPayload:
		updates["patent_title"] = p.PatentTitle
		updates["application_number"] = p.ApplicationNumber
		updates["patent_office"] = p.PatentOffice
		updates["filing_date"] = p.FilingDate
		updates["grant_date"] = p.GrantDate
		updates["certificate_url"] = p.CertificateURL
		return r.applyUpdates(&subDatamodel.Patent{}, s.ID, updates)
	case *submission.WorkshopPayload:
		updates["workshop_name"] = p.WorkshopName
		updates["organizer"] = p.Organizer
		updates["venue"] = p.Venue
		updates["start_date"] = p.StartDate
		updates["end_date"] = p.EndDate
		updates["certificate_url"] = p.CertificateURL
		return r.applyUpdates(&subDatamodel.Workshop{}, s.ID, updates)
	}
	return fmt.Errorf("unsupported payload type %T", s.Payload)
}

func (r *SubmissionRepository) UpdateStatus(c submission.Category, id int64, status submission.Status, decidedAt *time.Time) error {
	updates := map[string]interface{}{
		"is_verified": string(status),
		"decided_at":  decidedAt,
		"updated_at":  time.Now(),
	}

	model, err := modelForCategory(c)
	if err != nil {
		return err
	}
	return r.applyUpdates(model, id, updates)
}

func (r *SubmissionRepository) Delete(c submission.Category, id int64) error {
	model, err := modelForCategory(c)
	if err != nil {
		return err
	}

	result := r.db.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrSubmissionNotFound
	}
	return nil
}

func (r *SubmissionRepository) applyUpdates(model interface{}, id int64, updates map[string]interface{}) error {
	result := r.db.Model(model).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrSubmissionNotFound
	}
	return nil
}

func modelForCategory(c submission.Category) (interface{}, error) {
	switch c {
	case submission.CategoryConference:
		return &subDatamodel.Conference{}, nil
	case submission.CategoryJournal:
		return &subDatamodel.Journal{}, nil
	case submission.CategoryPatent:
		return &subDatamodel.Patent{}, nil
	case submission.CategoryWorkshop:
		return &subDatamodel.Workshop{}, nil
	}
	return nil, fmt.Errorf("unknown category %q", c)
}
