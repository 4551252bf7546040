package entry

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	entryModel "github.com/pharmalife/timetracker/internal/core/datamodel/entry"
	"github.com/pharmalife/timetracker/internal/transport"
	"github.com/pharmalife/timetracker/pkg/logger"
)

type ServiceAPI interface {
	Create(dto CreateEntryDTO) (*entryModel.Entry, error)
	List(userID string) ([]*entryModel.Entry, error)
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

func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var dto CreateEntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateEntry: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(dto)
	if err != nil {
		h.Logger.Error("CreateEntry: service error", "error", err, "user_id", dto.UserID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateEntry: entry created",
		"entry_id", created.ID,
		"user_id", created.UserID,
		"date", created.Date)

	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	entries, err := h.Service.List(userID)
	if err != nil {
		h.Logger.Error("ListEntries: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}

func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "id")

	if err := h.Service.Delete(entryID); err != nil {
		h.Logger.Error("DeleteEntry: service error", "error", err, "entry_id", entryID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
