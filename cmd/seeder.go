package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	workerModel "github.com/pharmalife/timetracker/internal/core/datamodel/worker"
	"github.com/pharmalife/timetracker/internal/period"
	periodstore "github.com/pharmalife/timetracker/internal/period/store"
	"github.com/pharmalife/timetracker/internal/storage"
	workerstore "github.com/pharmalife/timetracker/internal/worker/store"
	"github.com/pharmalife/timetracker/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the store with periods and sample resources",
	Long:  `Generate the pay period sequence for a year and optionally seed demo resources for development.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		logger.Init(cfg.Logging.Level, cfg.Logging.Format)
		store, err := initStore(cfg.Storage, logger.L())
		if err != nil {
			log.Fatalf("failed to init storage: %v", err)
		}

		year := seedYear
		if year == 0 {
			year = time.Now().Year()
		}

		periodRepo := periodstore.NewRepository(store)
		existing, err := periodRepo.All()
		if err != nil {
			log.Fatalf("failed to read periods: %v", err)
		}

		for _, p := range existing {
			if p.Year == year {
				log.Fatalf("periods for %d already exist; refusing to overwrite", year)
			}
		}

		periods := append(existing, period.GenerateYear(year)...)
		if err := periodRepo.ReplaceAll(periods); err != nil {
			log.Fatalf("failed to save periods: %v", err)
		}
		fmt.Printf("Seeded %d periods for %d\n", len(periods)-len(existing), year)

		if seedDemo {
			seedDemoWorkers(store)
		}
	},
}

func seedDemoWorkers(store storage.RecordStore) {
	workerRepo := workerstore.NewRepository(store)

	existing, err := workerRepo.All()
	if err != nil {
		log.Fatalf("failed to read workers: %v", err)
	}
	if len(existing) > 0 {
		fmt.Println("resources already exist; skipping demo seed")
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	demo := []*workerModel.Worker{
		{ID: uuid.NewString(), Name: "Alice Tan", Role: workerModel.RoleRPH, Active: true, Password: string(hash), AssignedApps: workerModel.DefaultAssignedApps},
		{ID: uuid.NewString(), Name: "Ben Ortiz", Role: workerModel.RoleMOA, Active: true, AssignedApps: workerModel.DefaultAssignedApps},
		{ID: uuid.NewString(), Name: "Cora Ngu", Role: workerModel.RolePA, Active: true, AssignedApps: workerModel.DefaultAssignedApps},
	}

	for _, w := range demo {
		if err := workerRepo.Create(w); err != nil {
			log.Fatalf("failed to seed resource %s: %v", w.Name, err)
		}
		fmt.Println("Seeded resource:", w.Name)
	}
}
