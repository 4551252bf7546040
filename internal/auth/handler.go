package auth

import (
	"encoding/json"
	"net/http"

	"github.com/pharmalife/timetracker/internal"
	"github.com/pharmalife/timetracker/internal/transport"
	"github.com/pharmalife/timetracker/pkg/logger"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (SessionResponse, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.Service.Authenticate(dto)
	if err != nil {
		h.Logger.Error("authentication failed", "error", err, "name", dto.Name)

		switch err {
		case ErrInvalidCredentials:
			h.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		case ErrWorkerInactive:
			h.WriteError(w, http.StatusUnauthorized, "resource is inactive")
		default:
			if _, ok := err.(ValidationError); ok {
				h.WriteError(w, http.StatusBadRequest, err.Error())
			} else {
				h.WriteError(w, http.StatusInternalServerError, "internal server error")
			}
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, session)
}

// AuthMiddleware validates the bearer token and stores the worker identity
// in the request context.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := h.Service.ValidateToken(token)
		if err != nil {
			switch err {
			case ErrTokenExpired:
				h.WriteError(w, http.StatusUnauthorized, "token has expired")
			default:
				h.WriteError(w, http.StatusUnauthorized, "invalid token")
			}
			return
		}

		ctx := internal.ContextWithWorkerID(r.Context(), claims.WorkerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
