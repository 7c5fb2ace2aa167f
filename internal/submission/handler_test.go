package submission_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/go-chi/chi"

	"github.com/adelicia-js/milestone-monitor-sub001/internal/faculty"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/submission"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newSubmissionTestRouter(handler *submission.Handler, caller *faculty.Faculty) *chi.Mux {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if caller != nil {
				r = r.WithContext(faculty.NewContext(r.Context(), caller))
			}
			next.ServeHTTP(w, r)
		})
	})
	router.Get("/submissions", handler.ListOwnSubmissions)
	router.Get("/submissions/pending", handler.ListPendingSubmissions)
	router.Post("/submissions/{category}", handler.CreateSubmission)
	router.Patch("/submissions/{category}/{id}", handler.UpdateSubmission)
	router.Delete("/submissions/{category}/{id}", handler.DeleteSubmission)
	router.Patch("/submissions/{category}/{id}/approve", handler.ApproveSubmission)
	router.Patch("/submissions/{category}/{id}/reject", handler.RejectSubmission)
	return router
}

var _ = Describe("SubmissionHandler", func() {
	var (
		handler  *submission.Handler
		service  *submission.Service
		mockRepo *mockSubmissionRepository
		staff    *faculty.Faculty
		hod      *faculty.Faculty
	)

	BeforeEach(func() {
		mockRepo = newMockSubmissionRepository()
		service = submission.NewService(mockRepo, &mockEventPublisher{}, testLogger())
		handler = submission.NewHandler(service)

		staff = &faculty.Faculty{ID: 1, Name: "Divya Menon", Department: "Physics", Role: faculty.RoleStaff, Email: "divya@college.edu"}
		hod = &faculty.Faculty{ID: 2, Name: "Meera Pillai", Department: "Physics", Role: faculty.RoleHOD, Email: "meera.hod@college.edu"}
	})

	Describe("CreateSubmission", func() {
		It("should create a conference record and return 201", func() {
			router := newSubmissionTestRouter(handler, staff)
			body, _ := json.Marshal(validConferencePayload())

			req := httptest.NewRequest(http.MethodPost, "/submissions/conference", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			Expect(rec.Body.String()).To(ContainSubstring(`"is_verified":"PENDING"`))
			Expect(rec.Body.String()).To(ContainSubstring(`"department":"Physics"`))
		})

		It("should reject an unknown category with 400", func() {
			router := newSubmissionTestRouter(handler, staff)

			req := httptest.NewRequest(http.MethodPost, "/submissions/grants", bytes.NewReader([]byte(`{}`)))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject an invalid payload with 400", func() {
			router := newSubmissionTestRouter(handler, staff)

			req := httptest.NewRequest(http.MethodPost, "/submissions/conference", bytes.NewReader([]byte(`{"paper_title":""}`)))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 401 without an authenticated caller", func() {
			router := newSubmissionTestRouter(handler, nil)
			body, _ := json.Marshal(validConferencePayload())

			req := httptest.NewRequest(http.MethodPost, "/submissions/conference", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("decision endpoints", func() {
		var createdID int64

		BeforeEach(func() {
			created, err := service.Submit(staff, validConferencePayload())
			Expect(err).ToNot(HaveOccurred())
			createdID = created.ID
		})

		It("should approve a pending record as the department HOD", func() {
			router := newSubmissionTestRouter(handler, hod)

			req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/submissions/conference/%d/approve", createdID), nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`"is_verified":"APPROVED"`))
		})

		It("should reject a pending record as the department HOD", func() {
			router := newSubmissionTestRouter(handler, hod)

			req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/submissions/conference/%d/reject", createdID), nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`"is_verified":"REJECTED"`))
		})

		It("should return 403 when a staff member tries to approve", func() {
			router := newSubmissionTestRouter(handler, staff)

			req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/submissions/conference/%d/approve", createdID), nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("should return 404 for a missing record", func() {
			router := newSubmissionTestRouter(handler, hod)

			req := httptest.NewRequest(http.MethodPatch, "/submissions/conference/9999/approve", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 400 for a non-numeric id", func() {
			router := newSubmissionTestRouter(handler, hod)

			req := httptest.NewRequest(http.MethodPatch, "/submissions/conference/abc/approve", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("UpdateSubmission", func() {
		It("should reset an approved record to pending on edit", func() {
			created, err := service.Submit(staff, validConferencePayload())
			Expect(err).ToNot(HaveOccurred())
			_, err = service.Decide(hod, submission.CategoryConference, created.ID, submission.ActionApprove)
			Expect(err).ToNot(HaveOccurred())

			router := newSubmissionTestRouter(handler, staff)
			body, _ := json.Marshal(validConferencePayload())

			req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/submissions/conference/%d", created.ID), bytes.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`"is_verified":"PENDING"`))
		})
	})

	Describe("DeleteSubmission", func() {
		It("should delete an owned record and return 204", func() {
			created, err := service.Submit(staff, validConferencePayload())
			Expect(err).ToNot(HaveOccurred())

			router := newSubmissionTestRouter(handler, staff)

			req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/submissions/conference/%d", created.ID), nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNoContent))
		})
	})

	Describe("ListPendingSubmissions", func() {
		It("should return the grouped queue with a total", func() {
			_, err := service.Submit(staff, validConferencePayload())
			Expect(err).ToNot(HaveOccurred())

			router := newSubmissionTestRouter(handler, hod)

			req := httptest.NewRequest(http.MethodGet, "/submissions/pending", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`"total":1`))
		})
	})

	Describe("ListOwnSubmissions", func() {
		It("should filter by category when requested", func() {
			_, err := service.Submit(staff, validConferencePayload())
			Expect(err).ToNot(HaveOccurred())

			router := newSubmissionTestRouter(handler, staff)

			req := httptest.NewRequest(http.MethodGet, "/submissions?category=patent", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`"submissions":[]`))
		})

		It("should reject a bad category filter", func() {
			router := newSubmissionTestRouter(handler, staff)

			req := httptest.NewRequest(http.MethodGet, "/submissions?category=thesis", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
