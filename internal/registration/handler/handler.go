// Package handler is the thin HTTP layer for visitor registration. It
// decodes the request and delegates to the service; transport concerns
// stay here, business rules stay there.
package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adev-backend/internal/registration/models"
	dErrors "adev-backend/pkg/domain-errors"
	"adev-backend/pkg/platform/httputil"
	"adev-backend/pkg/requestcontext"
)

// Service is the registration workflow contract consumed by this handler.
type Service interface {
	Submit(ctx context.Context, req *models.RegistrationRequest, rawPayload []byte) (string, error)
}

const maxBodySize = 1 << 20 // 1 MiB

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the public registration route.
func (h *Handler) Register(r chi.Router) {
	r.Post("/cadastro", h.handleSubmit)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// The raw body is kept because the webhook receives it verbatim.
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Corpo da requisição inválido."))
		return
	}

	var req models.RegistrationRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		h.logger.WarnContext(ctx, "invalid registration body",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Corpo da requisição inválido."))
		return
	}

	message, err := h.service.Submit(ctx, &req, raw)
	if err != nil {
		if !dErrors.Is(err, dErrors.CodeConflict) {
			h.logger.ErrorContext(ctx, "registration failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": message})
}
