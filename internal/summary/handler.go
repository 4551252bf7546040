package summary

import (
	"net/http"

	"github.com/pharmalife/timetracker/internal/transport"
	"github.com/pharmalife/timetracker/pkg/logger"
)

type ServiceAPI interface {
	Build() ([]*PeriodSummary, error)
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

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Service.Build()
	if err != nil {
		h.Logger.Error("GetSummary: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"summary": summaries})
}
