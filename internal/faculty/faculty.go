package faculty

import (
	"context"
	"time"

	facultyDatamodel "github.com/adelicia-js/milestone-monitor-sub001/internal/core/datamodel/faculty"
)

const (
	RoleStaff  = "staff"
	RoleHOD    = "hod"
	RoleEditor = "editor"
)

func ValidRole(role string) bool {
	return role == RoleStaff || role == RoleHOD || role == RoleEditor
}

// Faculty is the account entity. JSON field names keep the faculty_ prefix
// the persisted schema uses, so API consumers see the same shape as the data.
type Faculty struct {
	ID         int64     `json:"faculty_id"`
	Name       string    `json:"faculty_name"`
	Department string    `json:"faculty_department"`
	Role       string    `json:"faculty_role"`
	Email      string    `json:"faculty_email"`
	Phone      string    `json:"faculty_phone,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (f *Faculty) IsHOD() bool {
	return f.Role == RoleHOD
}

func (f *Faculty) IsEditor() bool {
	return f.Role == RoleEditor
}

// CanReview reports whether this account may approve or reject submissions.
func (f *Faculty) CanReview() bool {
	return f.IsHOD()
}

// CanViewReports reports whether this account may generate reports.
func (f *Faculty) CanViewReports() bool {
	return f.IsHOD() || f.IsEditor()
}

func (f *Faculty) SameDepartment(department string) bool {
	return f.Department == department
}

type ctxKey struct{}

// NewContext stores the authenticated faculty on the request context.
// The auth middleware is the only writer; handlers read via FromContext.
func NewContext(ctx context.Context, f *Faculty) context.Context {
	return context.WithValue(ctx, ctxKey{}, f)
}

func FromContext(ctx context.Context) (*Faculty, bool) {
	f, ok := ctx.Value(ctxKey{}).(*Faculty)
	return f, ok && f != nil
}

func ToDataModel(f *Faculty) *facultyDatamodel.Faculty {
	return &facultyDatamodel.Faculty{
		ID:         f.ID,
		Name:       f.Name,
		Department: f.Department,
		Role:       f.Role,
		Email:      f.Email,
		Phone:      f.Phone,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}

func FromDataModel(f *facultyDatamodel.Faculty) *Faculty {
	return &Faculty{
		ID:         f.ID,
		Name:       f.Name,
		Department: f.Department,
		Role:       f.Role,
		Email:      f.Email,
		Phone:      f.Phone,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}

func FromDataModelSlice(models []*facultyDatamodel.Faculty) []*Faculty {
	result := make([]*Faculty, len(models))
	for i, m := range models {
		result[i] = FromDataModel(m)
	}
	return result
}
