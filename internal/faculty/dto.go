package faculty

import (
	"errors"
	"fmt"
	"strings"
)

// CreateFacultyDTO is the request payload for registering a staff member.
// Department is never accepted from the client; it is forced to the
// creating HOD's department.
type CreateFacultyDTO struct {
	Name     string `json:"faculty_name"`
	Email    string `json:"faculty_email"`
	Role     string `json:"faculty_role"`
	Phone    string `json:"faculty_phone,omitempty"`
	Password string `json:"password"`
}

func (dto CreateFacultyDTO) Validate() error {
	if strings.TrimSpace(dto.Name) == "" {
		return errors.New("faculty_name is required")
	}
	if strings.TrimSpace(dto.Email) == "" {
		return errors.New("faculty_email is required")
	}
	if !strings.Contains(dto.Email, "@") {
		return errors.New("faculty_email must be a valid email address")
	}
	if dto.Role == "" {
		return errors.New("faculty_role is required")
	}
	if !ValidRole(dto.Role) {
		return fmt.Errorf("faculty_role must be one of %s, %s, %s", RoleStaff, RoleHOD, RoleEditor)
	}
	if len(dto.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

// UpdateFacultyDTO carries profile edits. Nil fields are left unchanged.
// Role changes are HOD-only and rejected for self-service updates.
type UpdateFacultyDTO struct {
	Name  *string `json:"faculty_name,omitempty"`
	Phone *string `json:"faculty_phone,omitempty"`
	Role  *string `json:"faculty_role,omitempty"`
}

func (dto UpdateFacultyDTO) Validate() error {
	if dto.Name == nil && dto.Phone == nil && dto.Role == nil {
		return errors.New("no fields to update")
	}
	if dto.Name != nil && strings.TrimSpace(*dto.Name) == "" {
		return errors.New("faculty_name cannot be empty")
	}
	if dto.Role != nil && !ValidRole(*dto.Role) {
		return fmt.Errorf("faculty_role must be one of %s, %s, %s", RoleStaff, RoleHOD, RoleEditor)
	}
	return nil
}

type ResetPasswordDTO struct {
	NewPassword string `json:"new_password"`
}

func (dto ResetPasswordDTO) Validate() error {
	if len(dto.NewPassword) < 8 {
		return errors.New("new_password must be at least 8 characters")
	}
	return nil
}
