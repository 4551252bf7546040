package rest

import (
	"log/slog"

	"github.com/go-chi/chi"

	"github.com/pharmalife/timetracker/internal/auth"
	"github.com/pharmalife/timetracker/internal/entry"
	"github.com/pharmalife/timetracker/internal/payment"
	"github.com/pharmalife/timetracker/internal/period"
	"github.com/pharmalife/timetracker/internal/storage"
	"github.com/pharmalife/timetracker/internal/summary"
	"github.com/pharmalife/timetracker/internal/transport/middleware"
	"github.com/pharmalife/timetracker/internal/worker"
)

// RegisterAllRoutes mounts the API under /api/v1. Login and health are open;
// everything else sits behind the session token middleware.
func RegisterAllRoutes(
	router *chi.Mux,
	store storage.Pinger,
	allowedOrigins string,
	authHandler *auth.Handler,
	workerHandler *worker.Handler,
	periodHandler *period.Handler,
	entryHandler *entry.Handler,
	paymentHandler *payment.Handler,
	summaryHandler *summary.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(store)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Post("/auth/login", authHandler.Login)

		// Protected routes that require a session
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Route("/workers", func(wr chi.Router) {
				wr.Get("/", workerHandler.ListWorkers)
				wr.Post("/", workerHandler.CreateWorker)
				wr.Get("/{id}", workerHandler.GetWorker)
				wr.Patch("/{id}", workerHandler.UpdateWorker)
				wr.Delete("/{id}", workerHandler.DeleteWorker)
			})

			pr.Route("/periods", func(pdr chi.Router) {
				pdr.Get("/", periodHandler.ListPeriods)
				pdr.Patch("/{id}/dates", periodHandler.UpdateDates)

				pdr.Get("/{id}/payments", paymentHandler.PeriodOverview)
				pdr.Put("/{id}/payments/{userId}", paymentHandler.SetStatus)
			})

			pr.Route("/entries", func(er chi.Router) {
				er.Get("/", entryHandler.ListEntries)
				er.Post("/", entryHandler.CreateEntry)
				er.Delete("/{id}", entryHandler.DeleteEntry)
			})

			pr.Get("/summary", summaryHandler.GetSummary)
		})
	})
}
