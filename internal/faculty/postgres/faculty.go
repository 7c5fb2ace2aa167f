package postgres

import (
	"errors"
	"time"

	"github.com/adelicia-js/milestone-monitor-sub001/internal"
	facultyDatamodel "github.com/adelicia-js/milestone-monitor-sub001/internal/core/datamodel/faculty"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/faculty"
	"gorm.io/gorm"
)

// FacultyRepository implements faculty.Repository using GORM.
type FacultyRepository struct {
	db *gorm.DB
}

func NewFacultyRepository(db *gorm.DB) *FacultyRepository {
	return &FacultyRepository{db: db}
}

func (r *FacultyRepository) Create(f *faculty.Faculty) error {
	model := faculty.ToDataModel(f)
	if err := r.db.Create(model).Error; err != nil {
		return err
	}
	f.ID = model.ID
	return nil
}

func (r *FacultyRepository) GetByID(id int64) (*faculty.Faculty, error) {
	var model facultyDatamodel.Faculty
	err := r.db.Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrFacultyNotFound
		}
		return nil, err
	}
	return faculty.FromDataModel(&model), nil
}

func (r *FacultyRepository) GetByEmail(email string) (*faculty.Faculty, error) {
	var model facultyDatamodel.Faculty
	err := r.db.Where("faculty_email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrFacultyNotFound
		}
		return nil, err
	}
	return faculty.FromDataModel(&model), nil
}

func (r *FacultyRepository) ListByDepartment(department string) ([]*faculty.Faculty, error) {
	var models []*facultyDatamodel.Faculty
	err := r.db.Where("faculty_department = ?", department).
		Order("faculty_name ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return faculty.FromDataModelSlice(models), nil
}

func (r *FacultyRepository) ListByDepartmentRole(department, role string) ([]*faculty.Faculty, error) {
	var models []*facultyDatamodel.Faculty
	err := r.db.Where("faculty_department = ? AND faculty_role = ?", department, role).
		Order("faculty_name ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return faculty.FromDataModelSlice(models), nil
}

func (r *FacultyRepository) Update(f *faculty.Faculty) error {
	f.UpdatedAt = time.Now()
	return r.db.Save(faculty.ToDataModel(f)).Error
}

func (r *FacultyRepository) Delete(id int64) error {
	result := r.db.Where("id = ?", id).Delete(&facultyDatamodel.Faculty{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrFacultyNotFound
	}
	return nil
}
