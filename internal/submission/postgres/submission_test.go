package postgres

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adelicia-js/milestone-monitor-sub001/internal"
	subDatamodel "github.com/adelicia-js/milestone-monitor-sub001/internal/core/datamodel/submission"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/faculty"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/submission"
)

func TestSubmissionRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "SubmissionRepository Suite")
}

var _ = Describe("SubmissionRepository", func() {
	var (
		db   *gorm.DB
		repo *SubmissionRepository

		owner *faculty.Faculty
	)

	newConference := func() *submission.Submission {
		return submission.NewSubmission(owner, &submission.ConferencePayload{
			PaperTitle:     "Spin Chains in Low Dimensions",
			ConferenceName: "APS March Meeting",
			Venue:          "Chicago",
			StartDate:      time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		})
	}

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&subDatamodel.Conference{},
			&subDatamodel.Journal{},
			&subDatamodel.Patent{},
			&subDatamodel.Workshop{},
		)
		Expect(err).NotTo(HaveOccurred())

		repo = NewSubmissionRepository(db)

		owner = &faculty.Faculty{ID: 1, Department: "Physics", Role: faculty.RoleStaff}
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		err = sqlDB.Close()
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Create", func() {
		It("should create a conference record and assign an ID", func() {
			sub := newConference()

			err := repo.Create(sub)
			Expect(err).NotTo(HaveOccurred())
			Expect(sub.ID).To(BeNumerically(">", 0))
		})

		It("should route each category to its own table", func() {
			workshop := submission.NewSubmission(owner, &submission.WorkshopPayload{
				WorkshopName: "GPU Programming",
				Organizer:    "NVIDIA DLI",
				StartDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			})

			err := repo.Create(workshop)
			Expect(err).NotTo(HaveOccurred())

			var conferenceCount, workshopCount int64
			db.Model(&subDatamodel.Conference{}).Count(&conferenceCount)
			db.Model(&subDatamodel.Workshop{}).Count(&workshopCount)
			Expect(conferenceCount).To(Equal(int64(0)))
			Expect(workshopCount).To(Equal(int64(1)))
		})
	})

	Describe("GetByID", func() {
		var created *submission.Submission

		BeforeEach(func() {
			created = newConference()
			Expect(repo.Create(created)).To(Succeed())
		})

		It("should retrieve the record with its payload", func() {
			retrieved, err := repo.GetByID(submission.CategoryConference, created.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.ID).To(Equal(created.ID))
			Expect(retrieved.FacultyID).To(Equal(owner.ID))
			Expect(retrieved.Department).To(Equal("Physics"))
			Expect(retrieved.Status).To(Equal(submission.StatusPending))
			Expect(retrieved.Payload.Title()).To(Equal("Spin Chains in Low Dimensions"))
		})

		It("should return ErrSubmissionNotFound for a missing ID", func() {
			retrieved, err := repo.GetByID(submission.CategoryConference, 99999)

			Expect(err).To(Equal(internal.ErrSubmissionNotFound))
			Expect(retrieved).To(BeNil())
		})

		It("should not find the record under another category", func() {
			retrieved, err := repo.GetByID(submission.CategoryJournal, created.ID)

			Expect(err).To(Equal(internal.ErrSubmissionNotFound))
			Expect(retrieved).To(BeNil())
		})
	})

	Describe("UpdateStatus", func() {
		var created *submission.Submission

		BeforeEach(func() {
			created = newConference()
			Expect(repo.Create(created)).To(Succeed())
		})

		It("should persist a decision", func() {
			decidedAt := time.Now()

			err := repo.UpdateStatus(submission.CategoryConference, created.ID, submission.StatusApproved, &decidedAt)
			Expect(err).NotTo(HaveOccurred())

			retrieved, err := repo.GetByID(submission.CategoryConference, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.Status).To(Equal(submission.StatusApproved))
			Expect(retrieved.DecidedAt).NotTo(BeNil())
		})

		It("should clear decided_at when resetting to pending", func() {
			decidedAt := time.Now()
			Expect(repo.UpdateStatus(submission.CategoryConference, created.ID, submission.StatusApproved, &decidedAt)).To(Succeed())

			err := repo.UpdateStatus(submission.CategoryConference, created.ID, submission.StatusPending, nil)
			Expect(err).NotTo(HaveOccurred())

			retrieved, _ := repo.GetByID(submission.CategoryConference, created.ID)
			Expect(retrieved.Status).To(Equal(submission.StatusPending))
			Expect(retrieved.DecidedAt).To(BeNil())
		})

		It("should return ErrSubmissionNotFound for a missing record", func() {
			err := repo.UpdateStatus(submission.CategoryConference, 99999, submission.StatusApproved, nil)

			Expect(err).To(Equal(internal.ErrSubmissionNotFound))
		})
	})

	Describe("UpdatePayload", func() {
		It("should rewrite payload columns and status together", func() {
			created := newConference()
			Expect(repo.Create(created)).To(Succeed())

			created.Payload = &submission.ConferencePayload{
				PaperTitle:     "Spin Chains in Low Dimensions (revised)",
				ConferenceName: "APS March Meeting",
				StartDate:      time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
			}
			created.ResetForReview()

			err := repo.UpdatePayload(created)
			Expect(err).NotTo(HaveOccurred())

			retrieved, _ := repo.GetByID(submission.CategoryConference, created.ID)
			Expect(retrieved.Payload.Title()).To(Equal("Spin Chains in Low Dimensions (revised)"))
			Expect(retrieved.Status).To(Equal(submission.StatusPending))
		})
	})

	Describe("ListPendingByDepartment", func() {
		BeforeEach(func() {
			Expect(repo.Create(newConference())).To(Succeed())

			mathsOwner := &faculty.Faculty{ID: 2, Department: "Mathematics"}
			mathsSub := submission.NewSubmission(mathsOwner, &submission.JournalPayload{
				PaperTitle:      "On Prime Gaps",
				JournalName:     "Annals of Mathematics",
				PublicationDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			})
			Expect(repo.Create(mathsSub)).To(Succeed())
		})

		It("should group pending records by category for one department", func() {
			pending, err := repo.ListPendingByDepartment("Physics")

			Expect(err).NotTo(HaveOccurred())
			Expect(pending.Conferences).To(HaveLen(1))
			Expect(pending.Journals).To(BeEmpty())
			Expect(pending.Total()).To(Equal(1))
		})

		It("should exclude decided records", func() {
			pending, _ := repo.ListPendingByDepartment("Physics")
			id := pending.Conferences[0].ID
			decidedAt := time.Now()
			Expect(repo.UpdateStatus(submission.CategoryConference, id, submission.StatusApproved, &decidedAt)).To(Succeed())

			pending, err := repo.ListPendingByDepartment("Physics")
			Expect(err).NotTo(HaveOccurred())
			Expect(pending.Total()).To(Equal(0))
		})
	})

	Describe("Search", func() {
		BeforeEach(func() {
			first := newConference()
			Expect(repo.Create(first)).To(Succeed())

			second := newConference()
			second.SubmittedAt = second.SubmittedAt.Add(time.Hour)
			Expect(repo.Create(second)).To(Succeed())
		})

		It("should order results oldest first", func() {
			results, err := repo.Search(submission.CategoryConference, submission.SearchOptions{
				FacultyID: owner.ID,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(results[0].SubmittedAt.Before(results[1].SubmittedAt)).To(BeTrue())
		})

		It("should honor limit and offset", func() {
			results, err := repo.Search(submission.CategoryConference, submission.SearchOptions{
				FacultyID: owner.ID,
				Limit:     1,
				Offset:    1,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(1))
		})

		It("should filter by submission window", func() {
			cutoff := time.Now().Add(30 * time.Minute)
			results, err := repo.Search(submission.CategoryConference, submission.SearchOptions{
				From: &cutoff,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(1))
		})
	})

	Describe("Delete", func() {
		It("should remove the record", func() {
			created := newConference()
			Expect(repo.Create(created)).To(Succeed())

			err := repo.Delete(submission.CategoryConference, created.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.GetByID(submission.CategoryConference, created.ID)
			Expect(err).To(Equal(internal.ErrSubmissionNotFound))
		})

		It("should return ErrSubmissionNotFound for a missing record", func() {
			err := repo.Delete(submission.CategoryConference, 99999)

			Expect(err).To(Equal(internal.ErrSubmissionNotFound))
		})
	})
})
