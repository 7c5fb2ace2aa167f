package submission_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/adelicia-js/milestone-monitor-sub001/internal"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/core/events"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/faculty"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/submission"
)

func TestSubmissionService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Submission Service Suite")
}

type recordKey struct {
	category submission.Category
	id       int64
}

// Mock repository for testing
type mockSubmissionRepository struct {
	records           map[recordKey]*submission.Submission
	createError       error
	getError          error
	updateError       error
	updateStatusError error
	deleteError       error
	searchError       error
	nextID            int64
}

func newMockSubmissionRepository() *mockSubmissionRepository {
	return &mockSubmissionRepository{
		records: make(map[recordKey]*submission.Submission),
		nextID:  1,
	}
}

func (m *mockSubmissionRepository) Create(s *submission.Submission) error {
	if m.createError != nil {
		return m.createError
	}
	s.ID = m.nextID
	m.nextID++
	m.records[recordKey{s.Category, s.ID}] = s
	return nil
}

func (m *mockSubmissionRepository) GetByID(c submission.Category, id int64) (*submission.Submission, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	s, exists := m.records[recordKey{c, id}]
	if !exists {
		return nil, internal.ErrSubmissionNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *mockSubmissionRepository) ListPendingByDepartment(department string) (*submission.PendingSubmissions, error) {
	if m.searchError != nil {
		return nil, m.searchError
	}

	pending := &submission.PendingSubmissions{
		Conferences: []*submission.Submission{},
		Journals:    []*submission.Submission{},
		Workshops:   []*submission.Submission{},
		Patents:     []*submission.Submission{},
	}
	for _, s := range m.records {
		if s.Department != department || s.Status != submission.StatusPending {
			continue
		}
		switch s.Category {
		case submission.CategoryConference:
			pending.Conferences = append(pending.Conferences, s)
		case submission.CategoryJournal:
			pending.Journals = append(pending.Journals, s)
		case submission.CategoryWorkshop:
			pending.Workshops = append(pending.Workshops, s)
		case submission.CategoryPatent:
			pending.Patents = append(pending.Patents, s)
		}
	}
	return pending, nil
}

func (m *mockSubmissionRepository) Search(c submission.Category, opts submission.SearchOptions) ([]*submission.Submission, error) {
	if m.searchError != nil {
		return nil, m.searchError
	}

	result := []*submission.Submission{}
	for key, s := range m.records {
		if key.category != c {
			continue
		}
		if opts.FacultyID != 0 && s.FacultyID != opts.FacultyID {
			continue
		}
		if opts.Department != "" && s.Department != opts.Department {
			continue
		}
		if opts.Status != "" && s.Status != opts.Status {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (m *mockSubmissionRepository) UpdatePayload(s *submission.Submission) error {
	if m.updateError != nil {
		return m.updateError
	}
	key := recordKey{s.Category, s.ID}
	if _, exists := m.records[key]; !exists {
		return internal.ErrSubmissionNotFound
	}
	copied := *s
	m.records[key] = &copied
	return nil
}

func (m *mockSubmissionRepository) UpdateStatus(c submission.Category, id int64, status submission.Status, decidedAt *time.Time) error {
	if m.updateStatusError != nil {
		return m.updateStatusError
	}
	s, exists := m.records[recordKey{c, id}]
	if !exists {
		return internal.ErrSubmissionNotFound
	}
	s.Status = status
	s.DecidedAt = decidedAt
	return nil
}

func (m *mockSubmissionRepository) Delete(c submission.Category, id int64) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	key := recordKey{c, id}
	if _, exists := m.records[key]; !exists {
		return internal.ErrSubmissionNotFound
	}
	delete(m.records, key)
	return nil
}

// Mock event publisher that records everything it is handed
type mockEventPublisher struct {
	published    []events.Event
	publishError error
}

func (m *mockEventPublisher) Publish(ctx context.Context, event events.Event) error {
	if m.publishError != nil {
		return m.publishError
	}
	m.published = append(m.published, event)
	return nil
}

func validConferencePayload() *submission.ConferencePayload {
	return &submission.ConferencePayload{
		PaperTitle:     "Quantum Error Correction at Scale",
		ConferenceName: "ICQP 2025",
		Venue:          "Geneva",
		StartDate:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

var _ = Describe("SubmissionService", func() {
	var (
		service   *submission.Service
		mockRepo  *mockSubmissionRepository
		publisher *mockEventPublisher
		logger    *slog.Logger

		physicsStaff *faculty.Faculty
		physicsHOD   *faculty.Faculty
		mathsHOD     *faculty.Faculty
		editor       *faculty.Faculty
	)

	BeforeEach(func() {
		mockRepo = newMockSubmissionRepository()
		publisher = &mockEventPublisher{}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = submission.NewService(mockRepo, publisher, logger)

		physicsStaff = &faculty.Faculty{ID: 1, Name: "Arjun Nair", Department: "Physics", Role: faculty.RoleStaff, Email: "arjun@college.edu"}
		physicsHOD = &faculty.Faculty{ID: 2, Name: "Meera Pillai", Department: "Physics", Role: faculty.RoleHOD, Email: "meera.hod@college.edu"}
		mathsHOD = &faculty.Faculty{ID: 3, Name: "Ravi Shankar", Department: "Mathematics", Role: faculty.RoleHOD, Email: "ravi.hod@college.edu"}
		editor = &faculty.Faculty{ID: 4, Name: "Tom Varghese", Department: "Administration", Role: faculty.RoleEditor, Email: "tom.editor@college.edu"}
	})

	Describe("Submit", func() {
		Context("when the payload is valid", func() {
			It("should create a pending record stamped with the caller's department", func() {
				result, err := service.Submit(physicsStaff, validConferencePayload())

				Expect(err).ToNot(HaveOccurred())
				Expect(result).ToNot(BeNil())
				Expect(result.ID).To(BeNumerically(">", 0))
				Expect(result.FacultyID).To(Equal(physicsStaff.ID))
				Expect(result.Department).To(Equal("Physics"))
				Expect(result.Category).To(Equal(submission.CategoryConference))
				Expect(result.Status).To(Equal(submission.StatusPending))
				Expect(result.DecidedAt).To(BeNil())
			})

			It("should publish a created event", func() {
				result, err := service.Submit(physicsStaff, validConferencePayload())

				Expect(err).ToNot(HaveOccurred())
				Expect(publisher.published).To(HaveLen(1))
				Expect(publisher.published[0].EventType()).To(Equal(events.EventSubmissionCreated))

				data, ok := publisher.published[0].Payload().(events.SubmissionData)
				Expect(ok).To(BeTrue())
				Expect(data.SubmissionID).To(Equal(result.ID))
				Expect(data.Department).To(Equal("Physics"))
			})

			It("should allow an HOD to submit their own records", func() {
				result, err := service.Submit(physicsHOD, validConferencePayload())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.FacultyID).To(Equal(physicsHOD.ID))
				Expect(result.Status).To(Equal(submission.StatusPending))
			})
		})

		Context("when validation fails", func() {
			It("should return a validation error for a missing title", func() {
				payload := validConferencePayload()
				payload.PaperTitle = ""

				result, err := service.Submit(physicsStaff, payload)

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("paper_title"))
				Expect(result).To(BeNil())
				Expect(publisher.published).To(BeEmpty())
			})

			It("should return a validation error for an inverted date range", func() {
				payload := validConferencePayload()
				endDate := payload.StartDate.AddDate(0, 0, -2)
				payload.EndDate = &endDate

				result, err := service.Submit(physicsStaff, payload)

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("end_date"))
				Expect(result).To(BeNil())
			})
		})

		Context("when the repository fails", func() {
			It("should return a backend error and publish nothing", func() {
				mockRepo.createError = errors.New("database error")

				result, err := service.Submit(physicsStaff, validConferencePayload())

				Expect(err).To(HaveOccurred())
				Expect(result).To(BeNil())
				Expect(publisher.published).To(BeEmpty())
			})
		})
	})

	Describe("Decide", func() {
		var created *submission.Submission

		BeforeEach(func() {
			var err error
			created, err = service.Submit(physicsStaff, validConferencePayload())
			Expect(err).ToNot(HaveOccurred())
			publisher.published = nil
		})

		Context("when the department HOD approves", func() {
			It("should mark the record approved with a decision timestamp", func() {
				result, err := service.Decide(physicsHOD, submission.CategoryConference, created.ID, submission.ActionApprove)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Status).To(Equal(submission.StatusApproved))
				Expect(result.DecidedAt).ToNot(BeNil())

				stored, _ := mockRepo.GetByID(submission.CategoryConference, created.ID)
				Expect(stored.Status).To(Equal(submission.StatusApproved))
			})

			It("should publish an approved event carrying the decider", func() {
				_, err := service.Decide(physicsHOD, submission.CategoryConference, created.ID, submission.ActionApprove)

				Expect(err).ToNot(HaveOccurred())
				Expect(publisher.published).To(HaveLen(1))
				Expect(publisher.published[0].EventType()).To(Equal(events.EventSubmissionApproved))

				data := publisher.published[0].Payload().(events.SubmissionData)
				Expect(data.DecidedBy).To(Equal(physicsHOD.ID))
				Expect(data.FacultyID).To(Equal(physicsStaff.ID))
			})
		})

		Context("when the department HOD rejects", func() {
			It("should mark the record rejected and publish a rejected event", func() {
				result, err := service.Decide(physicsHOD, submission.CategoryConference, created.ID, submission.ActionReject)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Status).To(Equal(submission.StatusRejected))
				Expect(result.DecidedAt).ToNot(BeNil())
				Expect(publisher.published[0].EventType()).To(Equal(events.EventSubmissionRejected))
			})
		})

		Context("when the caller is not an HOD", func() {
			It("should deny a staff member", func() {
				result, err := service.Decide(physicsStaff, submission.CategoryConference, created.ID, submission.ActionApprove)

				Expect(err).To(Equal(internal.ErrHODRequired))
				Expect(result).To(BeNil())
			})

			It("should deny an editor", func() {
				result, err := service.Decide(editor, submission.CategoryConference, created.ID, submission.ActionApprove)

				Expect(err).To(Equal(internal.ErrHODRequired))
				Expect(result).To(BeNil())
			})
		})

		Context("when the HOD belongs to another department", func() {
			It("should deny the decision and leave the record pending", func() {
				result, err := service.Decide(mathsHOD, submission.CategoryConference, created.ID, submission.ActionApprove)

				Expect(err).To(Equal(internal.ErrDepartmentMismatch))
				Expect(result).To(BeNil())

				stored, _ := mockRepo.GetByID(submission.CategoryConference, created.ID)
				Expect(stored.Status).To(Equal(submission.StatusPending))
				Expect(publisher.published).To(BeEmpty())
			})
		})

		Context("when the record does not exist", func() {
			It("should return not found before any role check", func() {
				result, err := service.Decide(physicsStaff, submission.CategoryConference, 9999, submission.ActionApprove)

				Expect(err).To(Equal(internal.ErrSubmissionNotFound))
				Expect(result).To(BeNil())
			})
		})

		Context("when re-deciding an already approved record", func() {
			It("should keep the approved status", func() {
				_, err := service.Decide(physicsHOD, submission.CategoryConference, created.ID, submission.ActionApprove)
				Expect(err).ToNot(HaveOccurred())

				result, err := service.Decide(physicsHOD, submission.CategoryConference, created.ID, submission.ActionApprove)
				Expect(err).ToNot(HaveOccurred())
				Expect(result.Status).To(Equal(submission.StatusApproved))
			})
		})
	})

	Describe("Edit", func() {
		var created *submission.Submission

		BeforeEach(func() {
			var err error
			created, err = service.Submit(physicsStaff, validConferencePayload())
			Expect(err).ToNot(HaveOccurred())
			publisher.published = nil
		})

		Context("when the owner edits a pending record", func() {
			It("should replace the payload and stay pending", func() {
				updated := validConferencePayload()
				updated.PaperTitle = "Revised: Quantum Error Correction at Scale"

				result, err := service.Edit(physicsStaff, submission.CategoryConference, created.ID, updated)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Status).To(Equal(submission.StatusPending))
				Expect(result.Payload.Title()).To(Equal("Revised: Quantum Error Correction at Scale"))
				Expect(publisher.published).To(BeEmpty())
			})
		})

		Context("when the owner edits an approved record", func() {
			It("should reset it to pending and clear the decision timestamp", func() {
				_, err := service.Decide(physicsHOD, submission.CategoryConference, created.ID, submission.ActionApprove)
				Expect(err).ToNot(HaveOccurred())
				publisher.published = nil

				result, err := service.Edit(physicsStaff, submission.CategoryConference, created.ID, validConferencePayload())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Status).To(Equal(submission.StatusPending))
				Expect(result.DecidedAt).To(BeNil())
			})

			It("should re-publish a created event so reviewers are notified again", func() {
				_, err := service.Decide(physicsHOD, submission.CategoryConference, created.ID, submission.ActionReject)
				Expect(err).ToNot(HaveOccurred())
				publisher.published = nil

				_, err = service.Edit(physicsStaff, submission.CategoryConference, created.ID, validConferencePayload())

				Expect(err).ToNot(HaveOccurred())
				Expect(publisher.published).To(HaveLen(1))
				Expect(publisher.published[0].EventType()).To(Equal(events.EventSubmissionCreated))
			})
		})

		Context("when the caller does not own the record", func() {
			It("should deny another staff member", func() {
				other := &faculty.Faculty{ID: 99, Department: "Physics", Role: faculty.RoleStaff}

				result, err := service.Edit(other, submission.CategoryConference, created.ID, validConferencePayload())

				Expect(err).To(Equal(internal.ErrNotOwner))
				Expect(result).To(BeNil())
			})

			It("should deny even the department HOD", func() {
				result, err := service.Edit(physicsHOD, submission.CategoryConference, created.ID, validConferencePayload())

				Expect(err).To(Equal(internal.ErrNotOwner))
				Expect(result).To(BeNil())
			})
		})

		Context("when the replacement payload is invalid", func() {
			It("should return a validation error and keep the stored record", func() {
				bad := validConferencePayload()
				bad.ConferenceName = ""

				result, err := service.Edit(physicsStaff, submission.CategoryConference, created.ID, bad)

				Expect(err).To(HaveOccurred())
				Expect(result).To(BeNil())

				stored, _ := mockRepo.GetByID(submission.CategoryConference, created.ID)
				Expect(stored.Payload.Title()).To(Equal("Quantum Error Correction at Scale"))
			})
		})
	})

	Describe("Delete", func() {
		var created *submission.Submission

		BeforeEach(func() {
			var err error
			created, err = service.Submit(physicsStaff, validConferencePayload())
			Expect(err).ToNot(HaveOccurred())
		})

		It("should let the owner delete their record", func() {
			err := service.Delete(physicsStaff, submission.CategoryConference, created.ID)

			Expect(err).ToNot(HaveOccurred())
			_, err = mockRepo.GetByID(submission.CategoryConference, created.ID)
			Expect(err).To(Equal(internal.ErrSubmissionNotFound))
		})

		It("should let the department HOD delete any department record", func() {
			err := service.Delete(physicsHOD, submission.CategoryConference, created.ID)

			Expect(err).ToNot(HaveOccurred())
		})

		It("should deny an HOD from another department", func() {
			err := service.Delete(mathsHOD, submission.CategoryConference, created.ID)

			Expect(err).To(Equal(internal.ErrNotOwner))
			_, getErr := mockRepo.GetByID(submission.CategoryConference, created.ID)
			Expect(getErr).ToNot(HaveOccurred())
		})

		It("should deny an unrelated staff member", func() {
			other := &faculty.Faculty{ID: 77, Department: "Physics", Role: faculty.RoleStaff}

			err := service.Delete(other, submission.CategoryConference, created.ID)

			Expect(err).To(Equal(internal.ErrNotOwner))
		})

		It("should return not found for a missing record", func() {
			err := service.Delete(physicsStaff, submission.CategoryConference, 9999)

			Expect(err).To(Equal(internal.ErrSubmissionNotFound))
		})
	})

	Describe("ListPending", func() {
		BeforeEach(func() {
			_, err := service.Submit(physicsStaff, validConferencePayload())
			Expect(err).ToNot(HaveOccurred())

			mathsStaff := &faculty.Faculty{ID: 10, Department: "Mathematics", Role: faculty.RoleStaff}
			_, err = service.Submit(mathsStaff, &submission.WorkshopPayload{
				WorkshopName: "Numerical Methods Bootcamp",
				Organizer:    "SIAM",
				StartDate:    time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should scope the queue to the caller's department", func() {
			pending, err := service.ListPending(physicsHOD)

			Expect(err).ToNot(HaveOccurred())
			Expect(pending.Conferences).To(HaveLen(1))
			Expect(pending.Workshops).To(BeEmpty())
			Expect(pending.Total()).To(Equal(1))
		})

		It("should show the other department's queue to its own HOD", func() {
			pending, err := service.ListPending(mathsHOD)

			Expect(err).ToNot(HaveOccurred())
			Expect(pending.Workshops).To(HaveLen(1))
			Expect(pending.Conferences).To(BeEmpty())
		})

		It("should exclude decided records", func() {
			pending, err := service.ListPending(physicsHOD)
			Expect(err).ToNot(HaveOccurred())
			id := pending.Conferences[0].ID

			_, err = service.Decide(physicsHOD, submission.CategoryConference, id, submission.ActionApprove)
			Expect(err).ToNot(HaveOccurred())

			pending, err = service.ListPending(physicsHOD)
			Expect(err).ToNot(HaveOccurred())
			Expect(pending.Total()).To(Equal(0))
		})

		It("should deny non-HOD callers", func() {
			pending, err := service.ListPending(physicsStaff)

			Expect(err).To(Equal(internal.ErrHODRequired))
			Expect(pending).To(BeNil())
		})
	})

	Describe("ListOwn", func() {
		BeforeEach(func() {
			_, err := service.Submit(physicsStaff, validConferencePayload())
			Expect(err).ToNot(HaveOccurred())

			other := &faculty.Faculty{ID: 42, Department: "Physics", Role: faculty.RoleStaff}
			_, err = service.Submit(other, validConferencePayload())
			Expect(err).ToNot(HaveOccurred())
		})

		It("should only return the caller's records", func() {
			result, err := service.ListOwn(physicsStaff, submission.CategoryConference, 20, 0)

			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].FacultyID).To(Equal(physicsStaff.ID))
		})

		It("should return an empty list for a category with no records", func() {
			result, err := service.ListOwn(physicsStaff, submission.CategoryPatent, 20, 0)

			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(BeEmpty())
		})
	})
})
