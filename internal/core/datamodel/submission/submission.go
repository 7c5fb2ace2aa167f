package submission

import "time"

// Each submission category persists to its own table. The control columns
// (faculty_id, department, is_verified, submitted_at, decided_at) are
// identical across the four tables; only the payload columns differ.

type Conference struct {
	ID             int64      `gorm:"primaryKey"`
	FacultyID      int64      `gorm:"column:faculty_id;not null"`
	Department     string     `gorm:"column:department;not null"`
	IsVerified     string     `gorm:"column:is_verified;not null;default:PENDING"`
	PaperTitle     string     `gorm:"column:paper_title;not null"`
	ConferenceName string     `gorm:"column:conference_name;not null"`
	Venue          string     `gorm:"column:venue"`
	StartDate      time.Time  `gorm:"column:start_date"`
	EndDate        *time.Time `gorm:"column:end_date"`
	CertificateURL *string    `gorm:"column:certificate_url"`
	SubmittedAt    time.Time  `gorm:"column:submitted_at"`
	DecidedAt      *time.Time `gorm:"column:decided_at"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (Conference) TableName() string {
	return "conferences"
}

type Journal struct {
	ID              int64      `gorm:"primaryKey"`
	FacultyID       int64      `gorm:"column:faculty_id;not null"`
	Department      string     `gorm:"column:department;not null"`
	IsVerified      string     `gorm:"column:is_verified;not null;default:PENDING"`
	PaperTitle      string     `gorm:"column:paper_title;not null"`
	JournalName     string     `gorm:"column:journal_name;not null"`
	ISSN            string     `gorm:"column:issn"`
	VolumeIssue     string     `gorm:"column:volume_issue"`
	PublicationDate time.Time  `gorm:"column:publication_date"`
	ArticleLink     *string    `gorm:"column:article_link"`
	CertificateURL  *string    `gorm:"column:certificate_url"`
	SubmittedAt     time.Time  `gorm:"column:submitted_at"`
	DecidedAt       *time.Time `gorm:"column:decided_at"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (Journal) TableName() string {
	return "journals"
}

type Patent struct {
	ID                int64      `gorm:"primaryKey"`
	FacultyID         int64      `gorm:"column:faculty_id;not null"`
	Department        string     `gorm:"column:department;not null"`
	IsVerified        string     `gorm:"column:is_verified;not null;default:PENDING"`
	PatentTitle       string     `gorm:"column:patent_title;not null"`
	ApplicationNumber string     `gorm:"column:application_number;not null"`
	PatentOffice      string     `gorm:"column:patent_office"`
	FilingDate        time.Time  `gorm:"column:filing_date"`
	GrantDate         *time.Time `gorm:"column:grant_date"`
	CertificateURL    *string    `gorm:"column:certificate_url"`
	SubmittedAt       time.Time  `gorm:"column:submitted_at"`
	DecidedAt         *time.Time `gorm:"column:decided_at"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (Patent) TableName() string {
	return "patents"
}

type Workshop struct {
	ID             int64      `gorm:"primaryKey"`
	FacultyID      int64      `gorm:"column:faculty_id;not null"`
	Department     string     `gorm:"column:department;not null"`
	IsVerified     string     `gorm:"column:is_verified;not null;default:PENDING"`
	WorkshopName   string     `gorm:"column:workshop_name;not null"`
	Organizer      string     `gorm:"column:organizer;not null"`
	Venue          string     `gorm:"column:venue"`
	StartDate      time.Time  `gorm:"column:start_date"`
	EndDate        *time.Time `gorm:"column:end_date"`
	CertificateURL *string    `gorm:"column:certificate_url"`
	SubmittedAt    time.Time  `gorm:"column:submitted_at"`
	DecidedAt      *time.Time `gorm:"column:decided_at"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (Workshop) TableName() string {
	return "workshops"
}
