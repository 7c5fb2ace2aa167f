package report

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/adelicia-js/milestone-monitor-sub001/internal/faculty"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/submission"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/transport"
	"github.com/adelicia-js/milestone-monitor-sub001/pkg/logger"
)

type ServiceAPI interface {
	Generate(caller *faculty.Faculty, filter Filter) (*Report, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// GenerateReport handles GET /reports with optional department, category,
// status, from and to query parameters. Dates use YYYY-MM-DD.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	caller, ok := faculty.FromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	filter := Filter{
		Department: r.URL.Query().Get("department"),
	}

	if categoryStr := r.URL.Query().Get("category"); categoryStr != "" {
		c, err := submission.ParseCategory(categoryStr)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		filter.Category = c
	}

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := submission.Status(statusStr)
		if status != submission.StatusPending &&
			status != submission.StatusApproved &&
			status != submission.StatusRejected {
			h.WriteError(w, http.StatusBadRequest, "status must be PENDING, APPROVED or REJECTED")
			return
		}
		filter.Status = status
	}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "from must be a YYYY-MM-DD date")
			return
		}
		filter.From = &from
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "to must be a YYYY-MM-DD date")
			return
		}
		// Inclusive end of day.
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &to
	}

	rpt, err := h.Service.Generate(caller, filter)
	if err != nil {
		h.Logger.Error("GenerateReport: service error",
			"error", err, "caller_id", caller.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, rpt)
}
