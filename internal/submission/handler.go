package submission

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/adelicia-js/milestone-monitor-sub001/internal/faculty"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/transport"
	"github.com/adelicia-js/milestone-monitor-sub001/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Submit(caller *faculty.Faculty, payload Payload) (*Submission, error)
	ListPending(caller *faculty.Faculty) (*PendingSubmissions, error)
	Decide(caller *faculty.Faculty, c Category, id int64, action Action) (*Submission, error)
	Edit(caller *faculty.Faculty, c Category, id int64, payload Payload) (*Submission, error)
	Delete(caller *faculty.Faculty, c Category, id int64) error
	ListOwn(caller *faculty.Faculty, c Category, limit, offset int) ([]*Submission, error)
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

// CreateSubmission handles POST /submissions/{category}.
func (h *Handler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	caller, ok := faculty.FromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	c, err := ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	payload, ok := h.decodePayload(w, r, c)
	if !ok {
		return
	}

	sub, err := h.Service.Submit(caller, payload)
	if err != nil {
		h.Logger.Error("CreateSubmission: service error",
			"error", err, "faculty_id", caller.ID, "category", c)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateSubmission: submission created",
		"submission_id", sub.ID,
		"category", c,
		"faculty_id", caller.ID,
		"status", sub.Status)

	h.WriteJSON(w, http.StatusCreated, sub)
}

// ListOwnSubmissions handles GET /submissions?category=&limit=&offset=.
// Without a category filter all four categories are returned in the fixed
// category order.
func (h *Handler) ListOwnSubmissions(w http.ResponseWriter, r *http.Request) {
	caller, ok := faculty.FromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := 20
	offset := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}

	categories := Categories()
	if categoryStr := r.URL.Query().Get("category"); categoryStr != "" {
		c, err := ParseCategory(categoryStr)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		categories = []Category{c}
	}

	subs := []*Submission{}
	for _, c := range categories {
		part, err := h.Service.ListOwn(caller, c, limit, offset)
		if err != nil {
			h.Logger.Error("ListOwnSubmissions: service error",
				"error", err, "faculty_id", caller.ID, "category", c)
			h.HandleServiceError(w, err)
			return
		}
		subs = append(subs, part...)
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"submissions": subs,
		"limit":       limit,
		"offset":      offset,
	})
}

// ListPendingSubmissions handles GET /submissions/pending for HODs.
func (h *Handler) ListPendingSubmissions(w http.ResponseWriter, r *http.Request) {
	caller, ok := faculty.FromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	pending, err := h.Service.ListPending(caller)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"pending": pending,
		"total":   pending.Total(),
	})
}

// ApproveSubmission handles PATCH /submissions/{category}/{id}/approve.
func (h *Handler) ApproveSubmission(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, ActionApprove)
}

// RejectSubmission handles PATCH /submissions/{category}/{id}/reject.
func (h *Handler) RejectSubmission(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, ActionReject)
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, action Action) {
	caller, ok := faculty.FromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	c, id, ok := h.recordParams(w, r)
	if !ok {
		return
	}

	sub, err := h.Service.Decide(caller, c, id, action)
	if err != nil {
		h.Logger.Error("decide: service error",
			"error", err, "submission_id", id, "category", c, "action", action, "caller_id", caller.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("decide: decision applied",
		"submission_id", id, "category", c, "action", action, "decided_by", caller.ID)

	h.WriteJSON(w, http.StatusOK, sub)
}

// UpdateSubmission handles PATCH /submissions/{category}/{id}: replaces the
// payload and sends the record back to review.
func (h *Handler) UpdateSubmission(w http.ResponseWriter, r *http.Request) {
	caller, ok := faculty.FromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	c, id, ok := h.recordParams(w, r)
	if !ok {
		return
	}

	payload, ok := h.decodePayload(w, r, c)
	if !ok {
		return
	}

	sub, err := h.Service.Edit(caller, c, id, payload)
	if err != nil {
		h.Logger.Error("UpdateSubmission: service error",
			"error", err, "submission_id", id, "category", c, "caller_id", caller.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, sub)
}

// DeleteSubmission handles DELETE /submissions/{category}/{id}.
func (h *Handler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	caller, ok := faculty.FromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	c, id, ok := h.recordParams(w, r)
	if !ok {
		return
	}

	if err := h.Service.Delete(caller, c, id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) recordParams(w http.ResponseWriter, r *http.Request) (Category, int64, bool) {
	c, err := ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return "", 0, false
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid submission ID")
		return "", 0, false
	}

	return c, id, true
}

func (h *Handler) decodePayload(w http.ResponseWriter, r *http.Request, c Category) (Payload, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "failed to read request body")
		return nil, false
	}

	payload, err := DecodePayload(c, body)
	if err != nil {
		h.Logger.Error("invalid payload body", "error", err, "category", c)
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return payload, true
}
