package worker

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	workerModel "github.com/pharmalife/timetracker/internal/core/datamodel/worker"
	"github.com/pharmalife/timetracker/internal/transport"
	"github.com/pharmalife/timetracker/pkg/logger"
)

type ServiceAPI interface {
	List() ([]*workerModel.Worker, error)
	Get(id string) (*workerModel.Worker, error)
	Create(dto CreateWorkerDTO) (*workerModel.Worker, error)
	Update(id string, dto UpdateWorkerDTO) (*workerModel.Worker, error)
	Delete(id string) error
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

func (h *Handler) ListWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.Service.List()
	if err != nil {
		h.Logger.Error("ListWorkers: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"workers": ToViewSlice(workers)})
}

func (h *Handler) GetWorker(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")

	found, err := h.Service.Get(workerID)
	if err != nil {
		h.Logger.Error("GetWorker: service error", "error", err, "worker_id", workerID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToView(found))
}

func (h *Handler) CreateWorker(w http.ResponseWriter, r *http.Request) {
	var dto CreateWorkerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateWorker: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(dto)
	if err != nil {
		h.Logger.Error("CreateWorker: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateWorker: worker created", "worker_id", created.ID, "name", created.Name)
	h.WriteJSON(w, http.StatusCreated, ToView(created))
}

func (h *Handler) UpdateWorker(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")

	var dto UpdateWorkerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateWorker: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.Update(workerID, dto)
	if err != nil {
		h.Logger.Error("UpdateWorker: service error", "error", err, "worker_id", workerID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToView(updated))
}

func (h *Handler) DeleteWorker(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")

	if err := h.Service.Delete(workerID); err != nil {
		h.Logger.Error("DeleteWorker: service error", "error", err, "worker_id", workerID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
