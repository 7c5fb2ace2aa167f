package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/adelicia-js/milestone-monitor-sub001/internal"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/faculty"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/transport"
	"github.com/adelicia-js/milestone-monitor-sub001/pkg/logger"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (AuthTokens, error)
	RefreshTokens(refreshToken string) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

// FacultyDirectory resolves the authenticated account so the middleware can
// attach role and department to the request context.
type FacultyDirectory interface {
	GetByID(id int64) (*faculty.Faculty, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Faculty FacultyDirectory
}

func NewHandler(svc ServiceAPI, directory FacultyDirectory) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
		Faculty:     directory,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens, err := h.Service.Authenticate(dto)
	if err != nil {
		h.Logger.Error("authentication failed", "error", err)

		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, tokens)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var dto RefreshTokenDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	tokens, err := h.Service.RefreshTokens(dto.RefreshToken)
	if err != nil {
		h.Logger.Error("token refresh failed", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, tokens)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := h.ExtractTokenFromHeader(r)
	if token == "" {
		h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
		return
	}

	if _, err := h.Service.ValidateAccessToken(token); err != nil {
		h.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AuthMiddleware validates the bearer token and loads the full faculty
// account (role, department) into the request context.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.Logger.Warn("auth middleware: token rejected", "error", err)
			h.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		account, err := h.Faculty.GetByID(claims.FacultyID)
		if err != nil {
			// Account may have been deleted after the token was issued.
			h.Logger.Warn("auth middleware: account lookup failed",
				"faculty_id", claims.FacultyID, "error", err)
			h.WriteError(w, http.StatusUnauthorized, "account no longer exists")
			return
		}

		ctx := faculty.NewContext(r.Context(), account)
		ctx = internal.ContextWithFacultyID(ctx, account.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
