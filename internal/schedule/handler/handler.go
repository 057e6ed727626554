// Package handler exposes the schedule over HTTP: one public read route
// and the four admin mutations. The admin secret check lives in
// middleware, not here.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adev-backend/internal/schedule/models"
	dErrors "adev-backend/pkg/domain-errors"
	"adev-backend/pkg/platform/httputil"
	"adev-backend/pkg/requestcontext"
)

// Service is the schedule contract consumed by this handler.
type Service interface {
	GetSchedule(ctx context.Context) (*models.Schedule, error)
	CreateCulto(ctx context.Context, nome, dia, horario string) (int64, error)
	DeleteCulto(ctx context.Context, id int64) (int64, error)
	CreateEvento(ctx context.Context, nome, data, descricao string) (int64, error)
	DeleteEvento(ctx context.Context, id int64) (int64, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the public schedule route.
func (h *Handler) Register(r chi.Router) {
	r.Get("/programacao", h.handleGetSchedule)
}

// RegisterAdmin mounts the write routes. The caller wraps the router in
// the admin secret middleware before handing it over.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/cultos", h.handleCreateCulto)
	r.Delete("/cultos/{id}", h.handleDeleteCulto)
	r.Post("/eventos", h.handleCreateEvento)
	r.Delete("/eventos/{id}", h.handleDeleteEvento)
}

func (h *Handler) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sched, err := h.service.GetSchedule(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "schedule read failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sched)
}

type createCultoRequest struct {
	Nome    string `json:"nome"`
	Dia     string `json:"dia"`
	Horario string `json:"horario"`
}

func (h *Handler) handleCreateCulto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createCultoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Corpo da requisição inválido."))
		return
	}

	id, err := h.service.CreateCulto(ctx, req.Nome, req.Dia, req.Horario)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]int64{"id": id})
}

func (h *Handler) handleDeleteCulto(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	affected, err := h.service.DeleteCulto(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]int64{"changes": affected})
}

type createEventoRequest struct {
	Nome      string `json:"nome"`
	Data      string `json:"data"`
	Descricao string `json:"descricao"`
}

func (h *Handler) handleCreateEvento(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createEventoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Corpo da requisição inválido."))
		return
	}

	id, err := h.service.CreateEvento(ctx, req.Nome, req.Data, req.Descricao)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]int64{"id": id})
}

func (h *Handler) handleDeleteEvento(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	affected, err := h.service.DeleteEvento(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]int64{"changes": affected})
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Identificador inválido."))
		return 0, false
	}
	return id, true
}
