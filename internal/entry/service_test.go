package entry_test

import (
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pharmalife/timetracker/internal"
	periodModel "github.com/pharmalife/timetracker/internal/core/datamodel/period"
	workerModel "github.com/pharmalife/timetracker/internal/core/datamodel/worker"
	"github.com/pharmalife/timetracker/internal/entry"
	entrystore "github.com/pharmalife/timetracker/internal/entry/store"
	"github.com/pharmalife/timetracker/internal/storage"
)

// Mock worker lookup for testing
type mockWorkerFinder struct {
	workers map[string]*workerModel.Worker
}

func (m *mockWorkerFinder) Get(id string) (*workerModel.Worker, error) {
	return m.workers[id], nil
}

// Mock period resolution for testing
type mockPeriodResolver struct {
	period *periodModel.Period
}

func (m *mockPeriodResolver) ResolveDate(date string) (*periodModel.Period, error) {
	if m.period != nil && m.period.Contains(date) {
		return m.period, nil
	}
	return nil, nil
}

var _ = Describe("CalculateDuration", func() {
	It("computes decimal hours for a same-day range", func() {
		Expect(entry.CalculateDuration("09:00", "17:00")).To(Equal(8.0))
		Expect(entry.CalculateDuration("09:00", "09:30")).To(Equal(0.5))
		Expect(entry.CalculateDuration("08:15", "12:35")).To(Equal(4.33))
	})

	It("wraps shifts that cross midnight", func() {
		Expect(entry.CalculateDuration("22:00", "06:00")).To(Equal(8.0))
		Expect(entry.CalculateDuration("23:30", "00:15")).To(Equal(0.75))
	})

	It("treats identical times as a zero-length shift", func() {
		Expect(entry.CalculateDuration("09:00", "09:00")).To(Equal(0.0))
	})

	It("returns zero when either time is missing", func() {
		Expect(entry.CalculateDuration("", "17:00")).To(Equal(0.0))
		Expect(entry.CalculateDuration("09:00", "")).To(Equal(0.0))
	})
})

var _ = Describe("EntryService", func() {
	var (
		svc      *entry.Service
		repo     *entrystore.Repository
		workers  *mockWorkerFinder
		resolver *mockPeriodResolver
	)

	BeforeEach(func() {
		repo = entrystore.NewRepository(storage.NewMemoryStore())
		workers = &mockWorkerFinder{workers: map[string]*workerModel.Worker{
			"w1": {ID: "w1", Name: "Sarah Chen", Role: workerModel.RolePA, Active: true},
		}}
		resolver = &mockPeriodResolver{period: &periodModel.Period{
			ID:        "2024-P1",
			PeriodNum: 1,
			Year:      2024,
			StartDate: "2024-01-01",
			EndDate:   "2024-01-14",
			Label:     "Period 1: Jan 1 - Jan 14",
		}}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		svc = entry.NewService(repo, workers, resolver, logger)
	})

	Describe("Create", func() {
		It("snapshots the worker name and resolved period", func() {
			e, err := svc.Create(entry.CreateEntryDTO{
				UserID:    "w1",
				Date:      "2024-01-05",
				StartTime: "09:00",
				EndTime:   "17:00",
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(e.ID).ToNot(BeEmpty())
			Expect(e.UserName).To(Equal("Sarah Chen"))
			Expect(e.Duration).To(Equal(8.0))
			Expect(e.Period).ToNot(BeNil())
			Expect(e.Period.ID).To(Equal("2024-P1"))
		})

		It("stores a nil period for dates outside every period", func() {
			e, err := svc.Create(entry.CreateEntryDTO{
				UserID:    "w1",
				Date:      "2023-06-01",
				StartTime: "09:00",
				EndTime:   "17:00",
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(e.Period).To(BeNil())
		})

		It("rejects a second entry for the same worker and date", func() {
			_, err := svc.Create(entry.CreateEntryDTO{
				UserID:    "w1",
				Date:      "2024-01-05",
				StartTime: "09:00",
				EndTime:   "12:00",
			})
			Expect(err).ToNot(HaveOccurred())

			_, err = svc.Create(entry.CreateEntryDTO{
				UserID:    "w1",
				Date:      "2024-01-05",
				StartTime: "13:00",
				EndTime:   "17:00",
			})
			Expect(err).To(Equal(internal.ErrDuplicateEntry))
		})

		It("allows the same worker on different dates", func() {
			_, err := svc.Create(entry.CreateEntryDTO{
				UserID:    "w1",
				Date:      "2024-01-05",
				StartTime: "09:00",
				EndTime:   "17:00",
			})
			Expect(err).ToNot(HaveOccurred())

			_, err = svc.Create(entry.CreateEntryDTO{
				UserID:    "w1",
				Date:      "2024-01-06",
				StartTime: "09:00",
				EndTime:   "17:00",
			})
			Expect(err).ToNot(HaveOccurred())
		})

		It("fails for an unknown worker", func() {
			_, err := svc.Create(entry.CreateEntryDTO{
				UserID:    "ghost",
				Date:      "2024-01-05",
				StartTime: "09:00",
				EndTime:   "17:00",
			})

			Expect(err).To(Equal(internal.ErrWorkerNotFound))
		})

		It("rejects malformed dates and times", func() {
			_, err := svc.Create(entry.CreateEntryDTO{
				UserID:    "w1",
				Date:      "01/05/2024",
				StartTime: "09:00",
				EndTime:   "17:00",
			})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidDate))

			_, err = svc.Create(entry.CreateEntryDTO{
				UserID:    "w1",
				Date:      "2024-01-05",
				StartTime: "9am",
				EndTime:   "17:00",
			})
			appErr, ok = internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidTime))
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			for _, d := range []struct{ user, date, start, end string }{
				{"w1", "2024-01-05", "09:00", "17:00"},
				{"w1", "2024-01-06", "09:00", "17:00"},
			} {
				_, err := svc.Create(entry.CreateEntryDTO{
					UserID:    d.user,
					Date:      d.date,
					StartTime: d.start,
					EndTime:   d.end,
				})
				Expect(err).ToNot(HaveOccurred())
			}
		})

		It("orders entries newest first", func() {
			entries, err := svc.List("")

			Expect(err).ToNot(HaveOccurred())
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Date).To(Equal("2024-01-06"))
			Expect(entries[1].Date).To(Equal("2024-01-05"))
		})

		It("filters by worker id", func() {
			entries, err := svc.List("w1")
			Expect(err).ToNot(HaveOccurred())
			Expect(entries).To(HaveLen(2))

			entries, err = svc.List("other")
			Expect(err).ToNot(HaveOccurred())
			Expect(entries).To(BeEmpty())
		})
	})

	Describe("Delete", func() {
		It("removes an entry and tolerates repeat deletes", func() {
			e, err := svc.Create(entry.CreateEntryDTO{
				UserID:    "w1",
				Date:      "2024-01-05",
				StartTime: "09:00",
				EndTime:   "17:00",
			})
			Expect(err).ToNot(HaveOccurred())

			Expect(svc.Delete(e.ID)).To(Succeed())
			Expect(svc.Delete(e.ID)).To(Succeed())

			entries, err := svc.List("")
			Expect(err).ToNot(HaveOccurred())
			Expect(entries).To(BeEmpty())
		})

		It("frees the date for a new entry", func() {
			e, err := svc.Create(entry.CreateEntryDTO{
				UserID:    "w1",
				Date:      "2024-01-05",
				StartTime: "09:00",
				EndTime:   "17:00",
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(svc.Delete(e.ID)).To(Succeed())

			_, err = svc.Create(entry.CreateEntryDTO{
				UserID:    "w1",
				Date:      "2024-01-05",
				StartTime: "10:00",
				EndTime:   "18:00",
			})
			Expect(err).ToNot(HaveOccurred())
		})
	})
})
