package payment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	paymentModel "github.com/pharmalife/timetracker/internal/core/datamodel/payment"
	"github.com/pharmalife/timetracker/internal/transport"
	"github.com/pharmalife/timetracker/pkg/logger"
)

type ServiceAPI interface {
	SetStatus(periodID, userID string, dto SetStatusDTO) (*paymentModel.Payment, error)
	GetStatus(periodID, userID string) (*paymentModel.Payment, error)
	PeriodOverview(periodID string) ([]*OverviewRow, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     service,
	}
}

// PeriodOverview serves the payment sheet for one period.
func (h *Handler) PeriodOverview(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "id")

	rows, err := h.Service.PeriodOverview(periodID)
	if err != nil {
		h.Logger.Error("PeriodOverview: service error", "error", err, "period_id", periodID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"payments": rows})
}

// SetStatus saves status and notes for one (period, worker) pair.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "id")
	userID := chi.URLParam(r, "userId")

	var dto SetStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SetStatus: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.Service.SetStatus(periodID, userID, dto)
	if err != nil {
		h.Logger.Error("SetStatus: service error", "error", err, "period_id", periodID, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("SetStatus: payment saved", "period_id", periodID, "user_id", userID, "status", saved.Status)
	h.WriteJSON(w, http.StatusOK, saved)
}
