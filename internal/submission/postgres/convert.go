package postgres

import (
	subDatamodel "github.com/adelicia-js/milestone-monitor-sub001/internal/core/datamodel/submission"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/submission"
)

func conferenceToModel(s *submission.Submission, p *submission.ConferencePayload) *subDatamodel.Conference {
	return &subDatamodel.Conference{
		ID:             s.ID,
		FacultyID:      s.FacultyID,
		Department:     s.Department,
		IsVerified:     string(s.Status),
		PaperTitle:     p.PaperTitle,
		ConferenceName: p.ConferenceName,
		Venue:          p.Venue,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		CertificateURL: p.CertificateURL,
		SubmittedAt:    s.SubmittedAt,
		DecidedAt:      s.DecidedAt,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func conferenceFromModel(m *subDatamodel.Conference) *submission.Submission {
	return &submission.Submission{
		ID:         m.ID,
		FacultyID:  m.FacultyID,
		Department: m.Department,
		Category:   submission.CategoryConference,
		Status:     submission.Status(m.IsVerified),
		Payload: &submission.ConferencePayload{
			PaperTitle:     m.PaperTitle,
			ConferenceName: m.ConferenceName,
			Venue:          m.Venue,
			StartDate:      m.StartDate,
			EndDate:        m.EndDate,
			CertificateURL: m.CertificateURL,
		},
		SubmittedAt: m.SubmittedAt,
		DecidedAt:   m.DecidedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func journalToModel(s *submission.Submission, p *submission.JournalPayload) *subDatamodel.Journal {
	return &subDatamodel.Journal{
		ID:              s.ID,
		FacultyID:       s.FacultyID,
		Department:      s.Department,
		IsVerified:      string(s.Status),
		PaperTitle:      p.PaperTitle,
		JournalName:     p.JournalName,
		ISSN:            p.ISSN,
		VolumeIssue:     p.VolumeIssue,
		PublicationDate: p.PublicationDate,
		ArticleLink:     p.ArticleLink,
		CertificateURL:  p.CertificateURL,
		SubmittedAt:     s.SubmittedAt,
		DecidedAt:       s.DecidedAt,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func journalFromModel(m *subDatamodel.Journal) *submission.Submission {
	return &submission.Submission{
		ID:         m.ID,
		FacultyID:  m.FacultyID,
		Department: m.Department,
		Category:   submission.CategoryJournal,
		Status:     submission.Status(m.IsVerified),
		Payload: &submission.JournalPayload{
			PaperTitle:      m.PaperTitle,
			JournalName:     m.JournalName,
			ISSN:            m.ISSN,
			VolumeIssue:     m.VolumeIssue,
			PublicationDate: m.PublicationDate,
			ArticleLink:     m.ArticleLink,
			CertificateURL:  m.CertificateURL,
		},
		SubmittedAt: m.SubmittedAt,
		DecidedAt:   m.DecidedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func patentToModel(s *submission.Submission, p *submission.PatentPayload) *subDatamodel.Patent {
	return &subDatamodel.Patent{
		ID:                s.ID,
		FacultyID:         s.FacultyID,
		Department:        s.Department,
		IsVerified:        string(s.Status),
		PatentTitle:       p.PatentTitle,
		ApplicationNumber: p.ApplicationNumber,
		PatentOffice:      p.PatentOffice,
		FilingDate:        p.FilingDate,
		GrantDate:         p.GrantDate,
		CertificateURL:    p.CertificateURL,
		SubmittedAt:       s.SubmittedAt,
		DecidedAt:         s.DecidedAt,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func patentFromModel(m *subDatamodel.Patent) *submission.Submission {
	return &submission.Submission{
		ID:         m.ID,
		FacultyID:  m.FacultyID,
		Department: m.Department,
		Category:   submission.CategoryPatent,
		Status:     submission.Status(m.IsVerified),
		Payload: &submission.PatentPayload{
			PatentTitle:       m.PatentTitle,
			ApplicationNumber: m.ApplicationNumber,
			PatentOffice:      m.PatentOffice,
			FilingDate:        m.FilingDate,
			GrantDate:         m.GrantDate,
			CertificateURL:    m.CertificateURL,
		},
		SubmittedAt: m.SubmittedAt,
		DecidedAt:   m.DecidedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func workshopToModel(s *submission.Submission, p *submission.WorkshopPayload) *subDatamodel.Workshop {
	return &subDatamodel.Workshop{
		ID:             s.ID,
		FacultyID:      s.FacultyID,
		Department:     s.Department,
		IsVerified:     string(s.Status),
		WorkshopName:   p.WorkshopName,
		Organizer:      p.Organizer,
		Venue:          p.Venue,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		CertificateURL: p.CertificateURL,
		SubmittedAt:    s.SubmittedAt,
		DecidedAt:      s.DecidedAt,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func workshopFromModel(m *subDatamodel.Workshop) *submission.Submission {
	return &submission.Submission{
		ID:         m.ID,
		FacultyID:  m.FacultyID,
		Department: m.Department,
		Category:   submission.CategoryWorkshop,
		Status:     submission.Status(m.IsVerified),
		Payload: &submission.WorkshopPayload{
			WorkshopName:   m.WorkshopName,
			Organizer:      m.Organizer,
			Venue:          m.Venue,
			StartDate:      m.StartDate,
			EndDate:        m.EndDate,
			CertificateURL: m.CertificateURL,
		},
		SubmittedAt: m.SubmittedAt,
		DecidedAt:   m.DecidedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
