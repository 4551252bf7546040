package period

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	periodModel "github.com/pharmalife/timetracker/internal/core/datamodel/period"
	"github.com/pharmalife/timetracker/internal/transport"
	"github.com/pharmalife/timetracker/pkg/logger"
)

type ServiceAPI interface {
	List() ([]*periodModel.Period, error)
	UpdateDates(id, startDate, endDate string) (*periodModel.Period, error)
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

func (h *Handler) ListPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.Service.List()
	if err != nil {
		h.Logger.Error("ListPeriods: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"periods": periods})
}

type updateDatesDTO struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (h *Handler) UpdateDates(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "id")

	var dto updateDatesDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateDates: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.UpdateDates(periodID, dto.StartDate, dto.EndDate)
	if err != nil {
		h.Logger.Error("UpdateDates: service error", "error", err, "period_id", periodID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("UpdateDates: period updated", "period_id", periodID, "label", updated.Label)
	h.WriteJSON(w, http.StatusOK, updated)
}
