package faculty

import (
	"log/slog"
	"time"

	"github.com/adelicia-js/milestone-monitor-sub001/internal"
)

// Repository defines the data access methods for faculty accounts.
type Repository interface {
	Create(f *Faculty) error
	GetByID(id int64) (*Faculty, error)
	GetByEmail(email string) (*Faculty, error)
	ListByDepartment(department string) ([]*Faculty, error)
	ListByDepartmentRole(department, role string) ([]*Faculty, error)
	Update(f *Faculty) error
	Delete(id int64) error
}

// IdentityStore is the slice of the auth service the account lifecycle needs:
// register credentials on create, revoke on delete, rotate on password reset.
type IdentityStore interface {
	RegisterIdentity(facultyID int64, email, password string) error
	RevokeIdentity(facultyID int64) error
	SetPassword(facultyID int64, newPassword string) error
}

type Service struct {
	repo       Repository
	identities IdentityStore
	logger     *slog.Logger
}

func NewService(repo Repository, identities IdentityStore, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		identities: identities,
		logger:     logger,
	}
}

// Create registers a new faculty account inside the caller's department.
// Only HODs may create accounts, and never outside their own department.
func (s *Service) Create(caller *Faculty, dto CreateFacultyDTO) (*Faculty, error) {
	if !caller.IsHOD() {
		s.logger.Warn("create faculty denied: caller is not hod",
			"caller_id", caller.ID, "caller_role", caller.Role)
		return nil, internal.ErrHODRequired
	}

	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	if existing, err := s.repo.GetByEmail(dto.Email); err == nil && existing != nil {
		return nil, internal.ErrEmailTaken
	}

	now := time.Now()
	account := &Faculty{
		Name:       dto.Name,
		Department: caller.Department,
		Role:       dto.Role,
		Email:      dto.Email,
		Phone:      dto.Phone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(account); err != nil {
		s.logger.Error("failed to create faculty account", "error", err, "email", dto.Email)
		return nil, internal.NewBackendError("failed to create faculty account", err)
	}

	if err := s.identities.RegisterIdentity(account.ID, account.Email, dto.Password); err != nil {
		s.logger.Error("failed to register auth identity", "error", err, "faculty_id", account.ID)
		return nil, internal.NewBackendError("failed to register login credentials", err)
	}

	s.logger.Info("faculty account created",
		"faculty_id", account.ID,
		"department", account.Department,
		"role", account.Role,
		"created_by", caller.ID)

	return account, nil
}

// Get returns one account. Self-lookup is always allowed; otherwise the
// caller must be an HOD of the target's department.
func (s *Service) Get(caller *Faculty, id int64) (*Faculty, error) {
	account, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if caller.ID != account.ID {
		if !caller.IsHOD() {
			return nil, internal.ErrHODRequired
		}
		if !caller.SameDepartment(account.Department) {
			return nil, internal.ErrDepartmentMismatch
		}
	}

	return account, nil
}

// List returns the caller's department roster. HOD only.
func (s *Service) List(caller *Faculty) ([]*Faculty, error) {
	if !caller.IsHOD() {
		s.logger.Warn("list faculty denied: caller is not hod", "caller_id", caller.ID)
		return nil, internal.ErrHODRequired
	}

	accounts, err := s.repo.ListByDepartment(caller.Department)
	if err != nil {
		s.logger.Error("failed to list faculty", "error", err, "department", caller.Department)
		return nil, internal.NewBackendError("failed to list faculty", err)
	}

	return accounts, nil
}

// Update applies profile edits. Self-service updates may touch name and
// phone; role changes require an HOD of the target's department.
func (s *Service) Update(caller *Faculty, id int64, dto UpdateFacultyDTO) (*Faculty, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	account, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	isSelf := caller.ID == account.ID
	isDeptHOD := caller.IsHOD() && caller.SameDepartment(account.Department)

	if !isSelf && !isDeptHOD {
		if !caller.IsHOD() {
			return nil, internal.ErrHODRequired
		}
		return nil, internal.ErrDepartmentMismatch
	}

	if dto.Role != nil && !isDeptHOD {
		s.logger.Warn("role change denied: caller is not a department hod",
			"caller_id", caller.ID, "target_id", id)
		return nil, internal.ErrHODRequired
	}

	if dto.Name != nil {
		account.Name = *dto.Name
	}
	if dto.Phone != nil {
		account.Phone = *dto.Phone
	}
	if dto.Role != nil {
		account.Role = *dto.Role
	}
	account.UpdatedAt = time.Now()

	if err := s.repo.Update(account); err != nil {
		s.logger.Error("failed to update faculty", "error", err, "faculty_id", id)
		return nil, internal.NewBackendError("failed to update faculty", err)
	}

	s.logger.Info("faculty account updated", "faculty_id", id, "updated_by", caller.ID)

	return account, nil
}

// Delete removes an account and then best-effort revokes its auth identity.
// A failed revocation is logged and tolerated; the record deletion is not
// rolled back (two sequential remote calls, no atomicity guarantee).
func (s *Service) Delete(caller *Faculty, id int64) error {
	if !caller.IsHOD() {
		s.logger.Warn("delete faculty denied: caller is not hod", "caller_id", caller.ID)
		return internal.ErrHODRequired
	}
	if caller.ID == id {
		return internal.NewValidationError("cannot delete your own account", internal.ErrCodeValidationFailed)
	}

	account, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	if !caller.SameDepartment(account.Department) {
		return internal.ErrDepartmentMismatch
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete faculty", "error", err, "faculty_id", id)
		return internal.NewBackendError("failed to delete faculty", err)
	}

	if err := s.identities.RevokeIdentity(id); err != nil {
		s.logger.Error("identity revocation failed after account deletion; orphaned identity",
			"error", err, "faculty_id", id)
	}

	s.logger.Info("faculty account deleted", "faculty_id", id, "deleted_by", caller.ID)

	return nil
}

// ResetPassword rotates credentials. Allowed for self, or for an HOD acting
// on an account in their own department.
func (s *Service) ResetPassword(caller *Faculty, id int64, dto ResetPasswordDTO) error {
	if err := dto.Validate(); err != nil {
		return internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	account, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	if caller.ID != account.ID {
		if !caller.IsHOD() {
			return internal.ErrHODRequired
		}
		if !caller.SameDepartment(account.Department) {
			return internal.ErrDepartmentMismatch
		}
	}

	if err := s.identities.SetPassword(id, dto.NewPassword); err != nil {
		s.logger.Error("failed to reset password", "error", err, "faculty_id", id)
		return internal.NewBackendError("failed to reset password", err)
	}

	s.logger.Info("password reset", "faculty_id", id, "reset_by", caller.ID)

	return nil
}
