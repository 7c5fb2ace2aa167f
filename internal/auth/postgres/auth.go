package postgres

import (
	"errors"
	"time"

	"github.com/adelicia-js/milestone-monitor-sub001/internal"
	authDatamodel "github.com/adelicia-js/milestone-monitor-sub001/internal/core/datamodel/auth"
	"gorm.io/gorm"
)

// IdentityRepository implements auth.IdentityRepository using GORM.
type IdentityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

func (r *IdentityRepository) GetCredentialsByEmail(email string) (string, int64, error) {
	var identity authDatamodel.Identity
	err := r.db.Where("email = ?", email).First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, internal.ErrInvalidCredentials
		}
		return "", 0, err
	}
	return identity.PasswordHash, identity.FacultyID, nil
}

func (r *IdentityRepository) CreateIdentity(facultyID int64, email, passwordHash string) error {
	now := time.Now()
	return r.db.Create(&authDatamodel.Identity{
		FacultyID:    facultyID,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}).Error
}

func (r *IdentityRepository) DeleteIdentity(facultyID int64) error {
	result := r.db.Where("faculty_id = ?", facultyID).Delete(&authDatamodel.Identity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrFacultyNotFound
	}
	return nil
}

func (r *IdentityRepository) UpdatePassword(facultyID int64, passwordHash string) error {
	result := r.db.Model(&authDatamodel.Identity{}).
		Where("faculty_id = ?", facultyID).
		Updates(map[string]interface{}{
			"password_hash": passwordHash,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrFacultyNotFound
	}
	return nil
}
