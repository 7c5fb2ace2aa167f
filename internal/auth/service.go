package auth

import (
	"log/slog"

	"github.com/adelicia-js/milestone-monitor-sub001/internal"
	"golang.org/x/crypto/bcrypt"
)

// IdentityRepository stores login credentials, keyed by faculty id.
type IdentityRepository interface {
	GetCredentialsByEmail(email string) (passwordHash string, facultyID int64, err error)
	CreateIdentity(facultyID int64, email, passwordHash string) error
	DeleteIdentity(facultyID int64) error
	UpdatePassword(facultyID int64, passwordHash string) error
}

// Service performs authentication and owns the identity lifecycle. It also
// satisfies faculty.IdentityStore so account management can cascade into it.
type Service struct {
	identities IdentityRepository
	tokens     TokenGenerator
	bcryptCost int
	logger     *slog.Logger
}

func NewService(identities IdentityRepository, tokens TokenGenerator, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		identities: identities,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Authenticate validates credentials and returns a token pair.
func (s *Service) Authenticate(dto LoginDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	storedHash, facultyID, err := s.identities.GetCredentialsByEmail(dto.Email)
	if err != nil {
		s.logger.Warn("login failed: unknown email", "email", dto.Email)
		return AuthTokens{}, internal.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(dto.Password)); err != nil {
		s.logger.Warn("login failed: password mismatch", "faculty_id", facultyID)
		return AuthTokens{}, internal.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateAccessToken(facultyID, dto.Email)
	if err != nil {
		return AuthTokens{}, internal.NewBackendError("failed to issue token", err)
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(facultyID, dto.Email)
	if err != nil {
		return AuthTokens{}, internal.NewBackendError("failed to issue token", err)
	}

	s.logger.Info("login succeeded", "faculty_id", facultyID)

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshTokens validates a refresh token and rotates the pair.
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	accessToken, err := s.tokens.GenerateAccessToken(claims.FacultyID, claims.Email)
	if err != nil {
		return AuthTokens{}, internal.NewBackendError("failed to issue token", err)
	}

	newRefreshToken, err := s.tokens.GenerateRefreshToken(claims.FacultyID, claims.Email)
	if err != nil {
		return AuthTokens{}, internal.NewBackendError("failed to issue token", err)
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.ValidateAccessToken(tokenString)
}

// RegisterIdentity creates credentials for a new faculty account.
func (s *Service) RegisterIdentity(facultyID int64, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return err
	}
	return s.identities.CreateIdentity(facultyID, email, string(hash))
}

// RevokeIdentity removes the credentials row; the session tokens already
// issued expire on their own.
func (s *Service) RevokeIdentity(facultyID int64) error {
	return s.identities.DeleteIdentity(facultyID)
}

// SetPassword replaces the stored hash for an existing identity.
func (s *Service) SetPassword(facultyID int64, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return err
	}
	return s.identities.UpdatePassword(facultyID, string(hash))
}
