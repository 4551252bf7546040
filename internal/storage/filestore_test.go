package storage_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	entryModel "github.com/pharmalife/timetracker/internal/core/datamodel/entry"
	periodModel "github.com/pharmalife/timetracker/internal/core/datamodel/period"
	workerModel "github.com/pharmalife/timetracker/internal/core/datamodel/worker"
	"github.com/pharmalife/timetracker/internal/storage"
)

var _ = Describe("FileStore", func() {
	var (
		store   *storage.FileStore
		dataDir string
	)

	BeforeEach(func() {
		var err error
		dataDir, err = os.MkdirTemp("", "filestore-test-*")
		Expect(err).ToNot(HaveOccurred())

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		store = storage.NewFileStore(dataDir, logger)
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dataDir)).To(Succeed())
	})

	It("round-trips a collection preserving order", func() {
		in := []*workerModel.Worker{
			{ID: "w1", Name: "Sarah Chen", Role: workerModel.RoleMOA, Active: true},
			{ID: "w2", Name: "James Okafor", Role: workerModel.RolePA, Active: false},
		}
		Expect(store.Save(storage.Workers, in)).To(Succeed())

		var out []*workerModel.Worker
		Expect(store.Load(storage.Workers, &out)).To(Succeed())

		Expect(out).To(HaveLen(2))
		Expect(out[0].ID).To(Equal("w1"))
		Expect(out[1].ID).To(Equal("w2"))
		Expect(out[1].Active).To(BeFalse())
	})

	It("loads an absent collection as empty without error", func() {
		var out []*workerModel.Worker
		Expect(store.Load(storage.Workers, &out)).To(Succeed())
		Expect(out).To(BeEmpty())
	})

	It("treats a corrupt file as an empty collection", func() {
		path := filepath.Join(dataDir, string(storage.Entries)+".json")
		Expect(os.WriteFile(path, []byte("{not json"), 0o644)).To(Succeed())

		var out []*entryModel.Entry
		Expect(store.Load(storage.Entries, &out)).To(Succeed())
		Expect(out).To(BeEmpty())
	})

	It("recovers after the next save overwrites a corrupt file", func() {
		path := filepath.Join(dataDir, string(storage.Entries)+".json")
		Expect(os.WriteFile(path, []byte("{not json"), 0o644)).To(Succeed())

		in := []*entryModel.Entry{{ID: "e1", UserID: "w1", Date: "2024-01-05", Duration: 8}}
		Expect(store.Save(storage.Entries, in)).To(Succeed())

		var out []*entryModel.Entry
		Expect(store.Load(storage.Entries, &out)).To(Succeed())
		Expect(out).To(HaveLen(1))
		Expect(out[0].ID).To(Equal("e1"))
	})

	It("round-trips an entry's nested period snapshot", func() {
		in := []*entryModel.Entry{{
			ID:       "e1",
			UserID:   "w1",
			UserName: "Sarah Chen",
			Date:     "2024-01-05",
			Duration: 8,
			Period: &periodModel.Period{
				ID:        "2024-P1",
				PeriodNum: 1,
				Year:      2024,
				StartDate: "2024-01-01",
				EndDate:   "2024-01-14",
				Label:     "Period 1: Jan 1 - Jan 14",
			},
		}}
		Expect(store.Save(storage.Entries, in)).To(Succeed())

		var out []*entryModel.Entry
		Expect(store.Load(storage.Entries, &out)).To(Succeed())
		Expect(out[0].Period).ToNot(BeNil())
		Expect(out[0].Period.ID).To(Equal("2024-P1"))
		Expect(out[0].Period.Label).To(Equal("Period 1: Jan 1 - Jan 14"))
	})

	It("defaults the active flag to true for records written without one", func() {
		path := filepath.Join(dataDir, string(storage.Workers)+".json")
		Expect(os.WriteFile(path, []byte(`[{"id":"w1","name":"Sarah Chen","role":"MOA"}]`), 0o644)).To(Succeed())

		var out []*workerModel.Worker
		Expect(store.Load(storage.Workers, &out)).To(Succeed())
		Expect(out).To(HaveLen(1))
		Expect(out[0].Active).To(BeTrue())
	})

	It("clears the destination slice before loading", func() {
		stale := []*workerModel.Worker{{ID: "stale"}}
		Expect(store.Load(storage.Workers, &stale)).To(Succeed())
		Expect(stale).To(BeEmpty())
	})

	It("pings while the data dir is reachable", func() {
		Expect(store.Ping(context.Background())).To(Succeed())
	})
})

var _ = Describe("MemoryStore", func() {
	var store *storage.MemoryStore

	BeforeEach(func() {
		store = storage.NewMemoryStore()
	})

	It("round-trips a collection", func() {
		in := []*periodModel.Period{
			{ID: "2024-P1", PeriodNum: 1, Year: 2024, StartDate: "2024-01-01", EndDate: "2024-01-14"},
		}
		Expect(store.Save(storage.Periods, in)).To(Succeed())

		var out []*periodModel.Period
		Expect(store.Load(storage.Periods, &out)).To(Succeed())
		Expect(out).To(HaveLen(1))
		Expect(out[0].ID).To(Equal("2024-P1"))
	})

	It("loads an absent collection as empty", func() {
		var out []*periodModel.Period
		Expect(store.Load(storage.Periods, &out)).To(Succeed())
		Expect(out).To(BeEmpty())
	})

	It("keeps collections independent", func() {
		Expect(store.Save(storage.Workers, []*workerModel.Worker{{ID: "w1", Name: "Sarah Chen"}})).To(Succeed())

		var out []*periodModel.Period
		Expect(store.Load(storage.Periods, &out)).To(Succeed())
		Expect(out).To(BeEmpty())
	})
})
